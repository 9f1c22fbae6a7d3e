package bitops

import "math/bits"

// Single-bit accessors. Shift counts are ordinary Go shifts: for
// n >= 32 the shifted mask is 0, so Set/Clear/Toggle degrade to
// no-ops and Test reports false instead of touching memory it does
// not own.

// SetBit32 returns x with bit n set.
func SetBit32(x uint32, n uint) uint32 {
	return x | 1<<n
}

// ClearBit32 returns x with bit n cleared.
func ClearBit32(x uint32, n uint) uint32 {
	return x &^ (1 << n)
}

// ToggleBit32 returns x with bit n flipped.
func ToggleBit32(x uint32, n uint) uint32 {
	return x ^ 1<<n
}

// TestBit32 reports whether bit n of x is set.
func TestBit32(x uint32, n uint) bool {
	return x&(1<<n) != 0
}

// PopCount32 returns the number of set bits in n. Delegates to
// math/bits, which compiles to the POPCNT instruction where the CPU
// has one; the result is identical to the textbook shift-and-mask
// loop for every 32-bit pattern.
//
// Examples:
//
//	Input       Output  Binary
//	0           0       all clear
//	15          4       1111
//	0xFFFFFFFF  32      all set
func PopCount32(n uint32) int {
	return bits.OnesCount32(n)
}

// SwapNibbles exchanges the high and low 4-bit halves of a byte:
// SwapNibbles(0xAB) = 0xBA.
func SwapNibbles(b uint8) uint8 {
	return (b&0x0F)<<4 | (b&0xF0)>>4
}

// IsOdd32 reports whether n is odd. Checking bit 0 works for
// negative values too: two's complement keeps the parity bit, so
// IsOdd32(-3) is true.
func IsOdd32(n int32) bool {
	return n&1 == 1
}

// Negate32 returns -n via the two's complement identity ^n + 1.
// Like Abs32, the boundary wraps: Negate32(math.MinInt32) is
// math.MinInt32 again.
func Negate32(n int32) int32 {
	return ^n + 1
}

// ModPowerOfTwo32 returns n % m for a power-of-2 modulus by masking
// with m - 1, trading the divide for an AND.
//
// The caller must guarantee m is a power of 2; the mask is built
// unconditionally and any other modulus produces garbage, not an
// error. Gate with IsPowerOfTwo32 when m comes from outside.
func ModPowerOfTwo32(n, m uint32) uint32 {
	return n & (m - 1)
}
