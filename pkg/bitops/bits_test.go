package bitops

import (
	"fmt"
	"math"
	"testing"
)

func TestSetBit32(t *testing.T) {
	tests := []struct {
		x        uint32
		n        uint
		expected uint32
	}{
		{0, 0, 1},                   // First bit
		{192, 5, 224},               // 11000000 → 11100000
		{224, 5, 224},               // Already set
		{0, 31, 1 << 31},            // Top bit
		{0xFFFFFFFF, 7, 0xFFFFFFFF}, // All set stays all set
		{5, 40, 5},                  // Out of range is a no-op
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d,bit%d→%d", tt.x, tt.n, tt.expected), func(t *testing.T) {
			result := SetBit32(tt.x, tt.n)
			if result != tt.expected {
				t.Errorf("SetBit32(%d, %d) = %d, expected %d", tt.x, tt.n, result, tt.expected)
			}
		})
	}
}

func TestClearBit32(t *testing.T) {
	tests := []struct {
		x        uint32
		n        uint
		expected uint32
	}{
		{224, 5, 192},               // 11100000 → 11000000
		{192, 5, 192},               // Already clear
		{1 << 31, 31, 0},            // Top bit
		{0xFFFFFFFF, 0, 0xFFFFFFFE}, // Bottom bit of all-ones
		{5, 40, 5},                  // Out of range is a no-op
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d,bit%d→%d", tt.x, tt.n, tt.expected), func(t *testing.T) {
			result := ClearBit32(tt.x, tt.n)
			if result != tt.expected {
				t.Errorf("ClearBit32(%d, %d) = %d, expected %d", tt.x, tt.n, result, tt.expected)
			}
		})
	}
}

func TestToggleBit32(t *testing.T) {
	tests := []struct {
		x        uint32
		n        uint
		expected uint32
	}{
		{192, 5, 224}, // Set by toggle
		{224, 5, 192}, // Clear by toggle
		{0, 31, 1 << 31},
		{5, 40, 5},    // Out of range is a no-op
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d,bit%d→%d", tt.x, tt.n, tt.expected), func(t *testing.T) {
			result := ToggleBit32(tt.x, tt.n)
			if result != tt.expected {
				t.Errorf("ToggleBit32(%d, %d) = %d, expected %d", tt.x, tt.n, result, tt.expected)
			}
			// Toggling twice restores the original word.
			if back := ToggleBit32(result, tt.n); tt.n < 32 && back != tt.x {
				t.Errorf("ToggleBit32 twice = %d, expected %d back", back, tt.x)
			}
		})
	}
}

func TestTestBit32(t *testing.T) {
	tests := []struct {
		x        uint32
		n        uint
		expected bool
	}{
		{224, 5, true},          // 11100000
		{224, 4, false},         // Gap below the set run
		{224, 7, true},          // Top of the byte
		{0, 0, false},           // Empty word
		{1 << 31, 31, true},
		{0xFFFFFFFF, 40, false}, // Out of range reads as clear
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d,bit%d→%t", tt.x, tt.n, tt.expected), func(t *testing.T) {
			result := TestBit32(tt.x, tt.n)
			if result != tt.expected {
				t.Errorf("TestBit32(%d, %d) = %v, expected %v", tt.x, tt.n, result, tt.expected)
			}
		})
	}
}

func TestPopCount32(t *testing.T) {
	tests := []struct {
		n        uint32
		expected int
	}{
		{0, 0},           // No bits
		{15, 4},          // 1111
		{16, 1},          // 10000
		{224, 3},         // 11100000
		{0xAB, 5},        // 10101011
		{0xFFFFFFFF, 32}, // Every bit
		{1 << 31, 1},     // Only the top bit
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d→%d", tt.n, tt.expected), func(t *testing.T) {
			result := PopCount32(tt.n)
			if result != tt.expected {
				t.Errorf("PopCount32(%d) = %d, expected %d", tt.n, result, tt.expected)
			}
		})
	}
}

// TestPopCount32MatchesLoop checks the delegated count against the
// textbook shift-and-mask loop over a spread of patterns.
func TestPopCount32MatchesLoop(t *testing.T) {
	patterns := []uint32{0, 1, 2, 3, 15, 16, 0xAB, 0xFF00FF00, 0x55555555,
		0xAAAAAAAA, 0xDEADBEEF, 0xFFFFFFFF, 1 << 31}
	for _, p := range patterns {
		want := 0
		for v := p; v != 0; v >>= 1 {
			want += int(v & 1)
		}
		if got := PopCount32(p); got != want {
			t.Errorf("PopCount32(%#x) = %d, expected %d", p, got, want)
		}
	}
}

func TestSwapNibbles(t *testing.T) {
	tests := []struct {
		b        uint8
		expected uint8
	}{
		{0xAB, 0xBA}, // The classic
		{0xBA, 0xAB}, // And back
		{0x00, 0x00}, // Empty
		{0xFF, 0xFF}, // Symmetric
		{0x0F, 0xF0}, // One nibble
		{0x12, 0x21},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#02x→%#02x", tt.b, tt.expected), func(t *testing.T) {
			result := SwapNibbles(tt.b)
			if result != tt.expected {
				t.Errorf("SwapNibbles(%#02x) = %#02x, expected %#02x", tt.b, result, tt.expected)
			}
			// Involution: swapping twice restores the byte.
			if back := SwapNibbles(result); back != tt.b {
				t.Errorf("SwapNibbles twice = %#02x, expected %#02x back", back, tt.b)
			}
		})
	}
}

func TestIsOdd32(t *testing.T) {
	tests := []struct {
		n        int32
		expected bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{-3, true},             // Parity bit survives two's complement
		{-4, false},
		{math.MaxInt32, true},  // 0x7FFFFFFF
		{math.MinInt32, false}, // 0x80000000
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d→%t", tt.n, tt.expected), func(t *testing.T) {
			result := IsOdd32(tt.n)
			if result != tt.expected {
				t.Errorf("IsOdd32(%d) = %v, expected %v", tt.n, result, tt.expected)
			}
		})
	}
}

func TestNegate32(t *testing.T) {
	tests := []struct {
		n        int32
		expected int32
	}{
		{0, 0},
		{1, -1},
		{-1, 1},
		{20, -20},
		{-20, 20},
		{math.MaxInt32, math.MinInt32 + 1},
		{math.MinInt32, math.MinInt32}, // Boundary wraps onto itself
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d→%d", tt.n, tt.expected), func(t *testing.T) {
			result := Negate32(tt.n)
			if result != tt.expected {
				t.Errorf("Negate32(%d) = %d, expected %d", tt.n, result, tt.expected)
			}
		})
	}
}

func TestModPowerOfTwo32(t *testing.T) {
	tests := []struct {
		n, m     uint32
		expected uint32
	}{
		{77, 8, 5},              // 77 % 8
		{77, 1, 0},              // Everything mod 1
		{15, 16, 15},            // Below the modulus
		{16, 16, 0},             // Exactly the modulus
		{0xDEADBEEF, 256, 0xEF}, // Mask keeps the low byte
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d%%%d→%d", tt.n, tt.m, tt.expected), func(t *testing.T) {
			result := ModPowerOfTwo32(tt.n, tt.m)
			if result != tt.expected {
				t.Errorf("ModPowerOfTwo32(%d, %d) = %d, expected %d", tt.n, tt.m, result, tt.expected)
			}
			if result != tt.n%tt.m {
				t.Errorf("ModPowerOfTwo32(%d, %d) = %d, %% gives %d", tt.n, tt.m, result, tt.n%tt.m)
			}
		})
	}
}

func BenchmarkPopCount32(b *testing.B) {
	var i uint32
	b.ReportAllocs()
	for b.Loop() {
		PopCount32(i)
		i++
	}
}

func BenchmarkSetBit32(b *testing.B) {
	var i uint
	b.ReportAllocs()
	for b.Loop() {
		SetBit32(224, i%32)
		i++
	}
}
