package bitops

import "math/bits"

// IsPowerOfTwo32 reports whether n is a positive power of 2.
// The test (n & (n-1)) == 0 works because:
//   - Powers of 2 have exactly one bit set
//   - Subtracting 1 from a power of 2 sets all lower bits
//   - AND of the two can only be 0 when no bit survives
//
// Examples:
//
//	Input  Output  Binary
//	16     true    10000 & 01111 = 00000
//	15     false   01111 & 01110 = 01110
//	0      false   Not positive
//	-16    false   Not positive
//
// Zero would pass the AND test (0 & -1 == 0) but has no set bit at
// all, which is why the positivity check comes first.
func IsPowerOfTwo32(n int32) bool {
	return n > 0 && (n&(n-1)) == 0
}

// NextPowerOfTwo32 returns the smallest power of 2 >= size, or 1 for
// size <= 0. Finding the highest set bit of size-1 gives the shift
// amount; the subtraction is what keeps exact powers of 2 from being
// doubled (for size 8, bits.Len32(7) is 3 and 1<<3 is 8 again, while
// bits.Len32(8) would be 4).
//
// Examples:
//
//	Input  Output
//	16     16
//	17     32
//	0      1
//	-5     1
func NextPowerOfTwo32(size int32) int32 {
	if size <= 0 {
		return 1
	}
	return int32(1 << (bits.Len32(uint32(size - 1))))
}

// NextPowerOfTwo is the int form, used for sizing buffers. Picks the
// 64-bit path when int is 64 bits wide.
func NextPowerOfTwo(size int) int {
	if size <= 0 {
		return 1
	}
	if bits.UintSize == 64 {
		return int(1 << (bits.Len64(uint64(size - 1))))
	}
	return int(1 << (bits.Len32(uint32(size - 1))))
}
