// SPDX-License-Identifier: MIT
package bitops

// Swap32 exchanges two values with the three-step XOR sequence and
// returns them in swapped order. The parameters are copies, so the
// two operands always occupy distinct storage and the equal-value
// case is safe: Swap32(7, 7) returns (7, 7).
//
// Walkthrough for Swap32(42, 24):
//
//	a = 42 ^ 24 = 50   a now holds the difference mask
//	b = 24 ^ 50 = 42   b recovers the original a
//	a = 50 ^ 42 = 24   a recovers the original b
func Swap32(a, b int32) (int32, int32) {
	a ^= b
	b ^= a
	a ^= b
	return a, b
}

// SwapInPlace32 exchanges the values behind a and b using the XOR
// sequence. When both pointers refer to the same variable the
// sequence would XOR the value with itself and zero it, so that case
// is detected and left untouched; swapping a value with itself is the
// identity anyway. Distinct variables that happen to hold equal
// values are unaffected by the guard and swap correctly.
func SwapInPlace32(a, b *int32) {
	if a == b {
		return
	}
	*a ^= *b
	*b ^= *a
	*a ^= *b
}
