// Package utils holds shared test support: a capturing transport and
// deterministic input generators used by package tests and the
// statistics demo.
package utils

import "math/rand"

// MockTransport implements the transport interface for testing. Sent
// events are appended for later inspection instead of transmitted.
type MockTransport struct {
	Events  []any
	FailErr error // When set, Send returns this error
	Closed  bool
}

// Send stores the event for later inspection instead of transmitting.
func (m *MockTransport) Send(data any) error {
	if m.FailErr != nil {
		return m.FailErr
	}
	m.Events = append(m.Events, data)
	return nil
}

// Close marks the transport closed.
func (m *MockTransport) Close() error {
	m.Closed = true
	return nil
}

// Last returns the most recent event, or nil when nothing was sent.
func (m *MockTransport) Last() any {
	if len(m.Events) == 0 {
		return nil
	}
	return m.Events[len(m.Events)-1]
}

// RandomWords returns size pseudo-random 32-bit words from a fixed
// seed. The same seed always yields the same words, which keeps the
// statistics demo and its tests reproducible.
func RandomWords(size int, seed int64) []uint32 {
	rng := rand.New(rand.NewSource(seed))
	words := make([]uint32, size)
	for i := range words {
		words[i] = rng.Uint32()
	}
	return words
}

// PatternWords returns size words cycling through a fixed set of bit
// patterns with known population counts, for histogram edge tests.
func PatternWords(size int) []uint32 {
	patterns := []uint32{0x00000000, 0xFFFFFFFF, 0x55555555, 0xAAAAAAAA, 0x0000FFFF}
	words := make([]uint32, size)
	for i := range words {
		words[i] = patterns[i%len(patterns)]
	}
	return words
}

// FindPeakBucket returns the index of the largest count in
// counts[startBucket..endBucket], clamping the range to the slice.
// Ties keep the lowest index.
func FindPeakBucket(counts []int, startBucket, endBucket int) int {
	if len(counts) == 0 {
		return 0
	}

	if startBucket < 0 {
		startBucket = 0
	}

	if endBucket >= len(counts) {
		endBucket = len(counts) - 1
	}

	peakBucket := startBucket
	peakValue := counts[startBucket]

	for bucket := startBucket + 1; bucket <= endBucket; bucket++ {
		if counts[bucket] > peakValue {
			peakValue = counts[bucket]
			peakBucket = bucket
		}
	}

	return peakBucket
}
