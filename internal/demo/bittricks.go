// SPDX-License-Identifier: MIT
package demo

import (
	"github.com/nikhiloz/generic/pkg/bitops"
)

// runBitTricks walks through every branchless operation in pkg/bitops
// with small worked examples. The comparison section uses the
// configured operands so the same walkthrough can be replayed on any
// pair; everything else sticks to the classic teaching values.
func runBitTricks(ctx *Context) error {
	a := ctx.Cfg.Demo.OperandA
	b := ctx.Cfg.Demo.OperandB

	ctx.Printf("1. COMPARISON WITHOUT BRANCHES\n")
	ctx.Printf("------------------------------\n")

	neg := int32(-20)
	ctx.Printf("n = %d\n", neg)
	ctx.Printf("Sign mask: n >> 31 = %d\n", bitops.SignMask32(neg))
	ctx.Printf("Absolute value: (n ^ mask) - mask = %d\n", bitops.Abs32(neg))
	ctx.Trace("abs(-20)", bitops.Abs32(neg))

	ctx.Printf("\na = %d, b = %d\n", a, b)
	ctx.Printf("Max of a and b: %d\n", bitops.Max32(a, b))
	ctx.Printf("Min of a and b: %d\n", bitops.Min32(a, b))
	ctx.Trace("max", bitops.Max32(a, b))
	ctx.Trace("min", bitops.Min32(a, b))

	ctx.Printf("Same sign: (a ^ b) >= 0 = %t\n", bitops.SameSign32(a, b))
	ctx.Printf("Same sign of %d and %d: %t\n", a, -b, bitops.SameSign32(a, -b))
	ctx.Printf("Same sign of 0 and -1: %t (zero counts as non-negative)\n", bitops.SameSign32(0, -1))

	ctx.Printf("Average of %d and %d: (a & b) + ((a ^ b) >> 1) = %d\n", a, b, bitops.Average32(a, b))
	ctx.Printf("The naive (a + b) >> 1 matches here but overflows near the limits;\n")
	ctx.Printf("the masked form never does.\n")
	ctx.Trace("average", bitops.Average32(a, b))

	ctx.Printf("\n2. ARITHMETIC BY SHIFT\n")
	ctx.Printf("----------------------\n")

	n := int32(42)
	ctx.Printf("n = %d\n", n)
	ctx.Printf("Multiply by 2: n << 1 = %d\n", n<<1)
	ctx.Printf("Divide by 2: n >> 1 = %d\n", n>>1)
	ctx.Printf("Multiply by 2^3: n << 3 = %d\n", n<<3)
	ctx.Printf("Divide by 2^3: n >> 3 = %d\n", n>>3)
	ctx.Printf("Calculate 2^5: 2 << (5-1) = %d\n", 2<<(5-1))

	ctx.Printf("\n3. BIT CHECKS AND TESTS\n")
	ctx.Printf("-----------------------\n")

	m := int32(15)
	ctx.Printf("n = %d (binary: %08b)\n", m, m)
	ctx.Printf("Is odd: n & 1 == 1 = %t\n", bitops.IsOdd32(m))
	ctx.Printf("Is power of 2: %t\n", bitops.IsPowerOfTwo32(m))
	ctx.Printf("Testing 16: Is power of 2 = %t\n", bitops.IsPowerOfTwo32(16))
	ctx.Printf("Next power of 2 at or above %d: %d\n", m, bitops.NextPowerOfTwo32(m))
	ctx.Printf("Set bits in %d: %d\n", m, bitops.PopCount32(uint32(m)))
	ctx.Trace("popcount(15)", bitops.PopCount32(uint32(m)))

	ctx.Printf("\n4. VALUE EXCHANGE\n")
	ctx.Printf("-----------------\n")

	x, y := int32(42), int32(24)
	ctx.Printf("Before exchange: x = %d, y = %d\n", x, y)
	x, y = bitops.Swap32(x, y)
	ctx.Printf("After XOR exchange: x = %d, y = %d\n", x, y)
	ctx.Trace("swap(42,24)", "24,42")

	bitops.SwapInPlace32(&x, &y)
	ctx.Printf("Swapped back in place: x = %d, y = %d\n", x, y)
	bitops.SwapInPlace32(&x, &x)
	ctx.Printf("Aliased swap is a no-op: x = %d (the raw XOR identity would zero it)\n", x)

	ctx.Printf("\n5. ADVANCED IDENTITIES\n")
	ctx.Printf("----------------------\n")

	ctx.Printf("n = %d\n", m)
	ctx.Printf("n + 1 using -^n: %d\n", -^m)
	ctx.Printf("n - 1 using ^-n: %d\n", ^-m)
	ctx.Printf("Negate %d using ^n + 1: %d\n", m, bitops.Negate32(m))
	ctx.Printf("Negate %d using (n ^ -1) + 1: %d\n", m, (m^-1)+1)
	ctx.Printf("%d modulo 8: n & (8-1) = %d\n", m, bitops.ModPowerOfTwo32(uint32(m), 8))

	nibble := uint8(0xAB)
	ctx.Printf("Original byte: 0x%02X, swapped nibbles: 0x%02X\n", nibble, bitops.SwapNibbles(nibble))
	ctx.Trace("swapnibbles(0xAB)", "0xBA")

	return nil
}
