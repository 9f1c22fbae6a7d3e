package demo

import (
	"math"
)

// runIntegerLimits derives the integer extremes from shifts and
// complements and checks them against the math package constants.
// The unsigned intermediate matters: 1 << 31 does not fit in an
// int32 constant, but the same bit pattern held in a uint32 variable
// reinterprets exactly when converted at runtime.
func runIntegerLimits(ctx *Context) error {
	signBit := uint32(1) << 31
	maxFromBits := int32(^signBit)
	minFromBits := int32(signBit)

	ctx.Printf("Maximum int32 values:\n")
	ctx.Printf("  ^(1 << 31) over uint32 = %d\n", maxFromBits)
	ctx.Printf("  math.MaxInt32 (standard) = %d\n", math.MaxInt32)
	ctx.Trace("max int32", maxFromBits)

	ctx.Printf("\nMinimum int32 values:\n")
	ctx.Printf("  int32(1 << 31) = %d\n", minFromBits)
	ctx.Printf("  math.MinInt32 (standard) = %d\n", math.MinInt32)
	ctx.Trace("min int32", minFromBits)

	ctx.Printf("\nMaximum int64 values:\n")
	ctx.Printf("  ^(1 << 63) over uint64 = %d\n", int64(^uint64(1<<63)))
	ctx.Printf("  math.MaxInt64 (standard) = %d\n", int64(math.MaxInt64))

	if maxFromBits != math.MaxInt32 || minFromBits != math.MinInt32 {
		ctx.Printf("\nWARNING: derived limits disagree with the standard constants\n")
	} else {
		ctx.Printf("\nDerived limits match the standard constants.\n")
	}
	return nil
}
