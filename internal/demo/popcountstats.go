// SPDX-License-Identifier: MIT
package demo

import (
	"github.com/nikhiloz/generic/internal/analysis"
	"github.com/nikhiloz/generic/pkg/utils"
)

// runPopcountStats samples seeded random 32-bit words, counts the set
// bits of each and compares the sample statistics against the
// Binomial(32, 0.5) reference: mean 16, standard deviation 2*sqrt(2).
// The seed makes every run reproducible.
func runPopcountStats(ctx *Context) error {
	size := ctx.Cfg.Demo.SampleSize
	seed := ctx.Cfg.Demo.Seed

	words := utils.RandomWords(size, seed)

	stats := analysis.NewBitStats(size, ctx.Transport)
	summary := stats.Analyze(words)

	ctx.Printf("Sample: %d random words (seed %d)\n\n", summary.SampleSize, seed)
	ctx.Printf("Set bits per word:\n")
	ctx.Printf("  mean   %6.3f (expected %.3f)\n", summary.Mean, analysis.ExpectedMean)
	ctx.Printf("  stddev %6.3f (expected %.3f)\n", summary.StdDev, analysis.ExpectedStdDev)
	ctx.Printf("  min %d, max %d, modal %d\n", summary.Min, summary.Max, summary.Modal)
	ctx.Trace("mean", summary.Mean)
	ctx.Trace("stddev", summary.StdDev)

	ctx.Printf("\nDistribution (set bits -> words):\n")
	peak := 0
	for _, n := range summary.Histogram {
		if n > peak {
			peak = n
		}
	}
	for bucket, n := range summary.Histogram {
		if n == 0 {
			continue
		}
		bar := barWidth * n / peak
		ctx.Printf("  %2d | %-*s %d\n", bucket, barWidth, hashes[:bar], n)
	}

	return nil
}

const barWidth = 40

const hashes = "########################################"
