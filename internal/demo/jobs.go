package demo

import (
	"github.com/nikhiloz/generic/internal/counter"
)

// runJobs runs the serialized job exercise: every worker claims the
// next job number and does its whole unit of work inside one lock
// acquisition, so the started/finished pairs in the output can never
// interleave no matter how the workers are scheduled.
func runJobs(ctx *Context) error {
	workers := ctx.Cfg.Demo.Workers
	spins := ctx.Cfg.Demo.Spins

	ctx.Printf("Creating %d job workers (%d spins of busy work each)...\n\n", workers, spins)

	runner := &counter.JobRunner{}
	completed := runner.RunSerial(ctx.W, workers, spins)

	ctx.Printf("\nAll %d jobs completed.\n", completed)
	ctx.Trace("jobs completed", completed)

	return nil
}
