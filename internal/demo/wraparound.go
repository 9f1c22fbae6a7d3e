package demo

import (
	"math"
)

// runWraparound shows the wrapping behavior at the 8-bit boundaries.
// Unlike C, where signed overflow is undefined, Go defines every one
// of these results: integers wrap in two's complement and shift
// counts >= the width simply shift everything out.
func runWraparound(ctx *Context) error {
	ctx.Printf("uint8 overflow:\n")
	maxU8 := uint8(math.MaxUint8)
	ctx.Printf("  MaxUint8 = %d\n", maxU8)
	ctx.Printf("  MaxUint8 + 1 = %d (wraps to 0)\n", maxU8+1)
	ctx.Trace("uint8 255+1", maxU8+1)

	ctx.Printf("\nint8 overflow and underflow:\n")
	maxI8 := int8(math.MaxInt8)
	minI8 := int8(math.MinInt8)
	ctx.Printf("  MaxInt8 = %d\n", maxI8)
	ctx.Printf("  MaxInt8 + 1 = %d (wraps to MinInt8)\n", maxI8+1)
	ctx.Printf("  MinInt8 = %d\n", minI8)
	ctx.Printf("  MinInt8 - 1 = %d (wraps to MaxInt8)\n", minI8-1)
	ctx.Trace("int8 127+1", maxI8+1)
	ctx.Trace("int8 -128-1", minI8-1)

	ctx.Printf("\nShifting a uint8 off the end:\n")
	for shift := uint(0); shift <= 8; shift++ {
		v := uint8(1) << shift
		ctx.Printf("  1 << %d = %3d (binary: %08b)\n", shift, v, v)
	}
	ctx.Printf("Shifting by the full width leaves nothing behind, so 1 << 8 is 0.\n")

	ctx.Printf("\nSigned 8-bit arithmetic in hex:\n")
	i1 := int8(0x23) // 35
	i2 := int8(0x33) // 51
	i3 := i1 - i2
	ctx.Printf("  i1 = 0x%02X (%d)\n", i1, i1)
	ctx.Printf("  i2 = 0x%02X (%d)\n", i2, i2)
	ctx.Printf("  i3 = i1 - i2 = %d\n", i3)
	ctx.Printf("  Memory image of i3: 0x%02X (-16 in two's complement is 0xF0)\n", uint8(i3))
	ctx.Trace("0x23-0x33", i3)

	return nil
}
