// SPDX-License-Identifier: MIT
package demo

import (
	"fmt"
	"strings"
)

// seriesTerms generates the alternating sequence: the first term is
// start, then the steps alternate between subtracting 8 and doubling,
// beginning with the subtraction. n <= 0 yields an empty slice.
func seriesTerms(start int32, n int) []int32 {
	if n <= 0 {
		return nil
	}
	terms := make([]int32, 0, n)
	terms = append(terms, start)
	for i := 1; i < n; i++ {
		if i&1 == 1 {
			start -= 8
		} else {
			start *= 2
		}
		terms = append(terms, start)
	}
	return terms
}

func formatSeries(terms []int32) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = fmt.Sprint(t)
	}
	return strings.Join(parts, ", ")
}

// runSeries prints the alternating series for the configured start
// and length, then two fixed examples showing how the shape changes
// with the parameters.
func runSeries(ctx *Context) error {
	n := ctx.Cfg.Demo.SeriesTerms
	start := ctx.Cfg.Demo.SeriesStart

	ctx.Printf("Alternating steps: subtract 8, then multiply by 2.\n\n")

	ctx.Printf("Generating %d terms starting from %d:\n", n, start)
	terms := seriesTerms(start, n)
	ctx.Printf("Series: %s\n", formatSeries(terms))
	if len(terms) > 0 {
		ctx.Trace("final term", terms[len(terms)-1])
	}

	ctx.Printf("\nGenerating 5 terms starting from 20:\n")
	ctx.Printf("Series: %s\n", formatSeries(seriesTerms(20, 5)))

	ctx.Printf("\nGenerating 10 terms starting from 100:\n")
	ctx.Printf("Series: %s\n", formatSeries(seriesTerms(100, 10)))

	return nil
}
