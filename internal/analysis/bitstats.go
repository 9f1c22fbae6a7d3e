// SPDX-License-Identifier: MIT
/*
Package analysis computes population-count statistics over samples of
32-bit words. For uniformly random words the count of set bits
follows Binomial(32, 0.5): mean 16, standard deviation 2*sqrt(2).
Comparing a sample against those references is the working proof that
PopCount32 behaves across the whole word, not just on handpicked
patterns.
*/
package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/nikhiloz/generic/pkg/bitops"
)

// Reference values for Binomial(32, 0.5).
const (
	ExpectedMean   = 16.0
	ExpectedStdDev = 2 * math.Sqrt2
)

// Transport defines an interface for sending analysis summaries.
// Implementations should be thread-safe.
type Transport interface {
	Send(data any) error
}

// Summary is the result of one sample analysis.
type Summary struct {
	SampleSize int     // Words analyzed
	Mean       float64 // Sample mean of set bits per word
	StdDev     float64 // Sample standard deviation
	Min        int     // Smallest count seen
	Max        int     // Largest count seen
	Modal      int     // Most frequent count (ties keep the lowest)
	Histogram  [33]int // Count distribution, buckets 0..32
}

// workspace holds the pre-allocated buffer for the per-word counts.
type workspace struct {
	counts []float64
}

// BitStats analyzes word samples. Not safe for concurrent use; each
// call reuses the same workspace.
type BitStats struct {
	ws        workspace
	transport Transport
}

// NewBitStats pre-allocates for samples up to capacity words, rounded
// up to a power of 2. Larger samples still work, the buffer grows
// once. transport may be nil.
func NewBitStats(capacity int, transport Transport) *BitStats {
	capacity = bitops.NextPowerOfTwo(capacity)
	return &BitStats{
		ws:        workspace{counts: make([]float64, 0, capacity)},
		transport: transport,
	}
}

// Analyze counts the set bits of every word, fills the histogram and
// computes the sample statistics. The summary is also handed to the
// transport when one is attached. An empty sample yields a zero
// Summary and nothing is sent.
func (s *BitStats) Analyze(words []uint32) Summary {
	if len(words) == 0 {
		return Summary{}
	}

	counts := s.ws.counts[:0]
	summary := Summary{SampleSize: len(words), Min: 32}

	for _, word := range words {
		c := bitops.PopCount32(word)
		counts = append(counts, float64(c))
		summary.Histogram[c]++
		if c < summary.Min {
			summary.Min = c
		}
		if c > summary.Max {
			summary.Max = c
		}
	}
	s.ws.counts = counts

	modal := 0
	for bucket, n := range summary.Histogram {
		if n > summary.Histogram[modal] {
			modal = bucket
		}
	}
	summary.Modal = modal

	summary.Mean = stat.Mean(counts, nil)
	summary.StdDev = stat.StdDev(counts, nil)

	if s.transport != nil {
		_ = s.transport.Send(summary)
	}

	return summary
}
