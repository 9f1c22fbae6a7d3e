package demo

import (
	"github.com/nikhiloz/generic/pkg/bitops"
)

// runSetClearTest replays the classic 224 walkthrough: clear one bit,
// put it back, flip another, and read individual positions, showing
// the byte in binary at every step.
func runSetClearTest(ctx *Context) error {
	value := uint32(224) // 11100000

	ctx.Printf("Original value: %d (binary: %08b)\n", value, value)

	value = bitops.ClearBit32(value, 5)
	ctx.Printf("After clearing bit 5: %d (binary: %08b)\n", value, value)
	ctx.Trace("clear bit 5", value)

	value = bitops.SetBit32(value, 5)
	ctx.Printf("After setting bit 5: %d (binary: %08b)\n", value, value)
	ctx.Trace("set bit 5", value)

	value = bitops.ToggleBit32(value, 0)
	ctx.Printf("After toggling bit 0: %d (binary: %08b)\n", value, value)
	value = bitops.ToggleBit32(value, 0)
	ctx.Printf("Toggled back: %d (binary: %08b)\n", value, value)

	ctx.Printf("\nReading individual bits of %d:\n", value)
	for n := uint(7); ; n-- {
		set := bitops.TestBit32(value, n)
		marker := "clear"
		if set {
			marker = "SET"
		}
		ctx.Printf("  bit %d: %s\n", n, marker)
		if n == 0 {
			break
		}
	}

	ctx.Printf("\nSet bits total: %d\n", bitops.PopCount32(value))
	return nil
}
