// SPDX-License-Identifier: MIT
package demo

import (
	"github.com/nikhiloz/generic/internal/counter"
	applog "github.com/nikhiloz/generic/internal/log"
	"github.com/nikhiloz/generic/internal/transport/udp"
)

// runGuardedCounter runs the two-worker tally: each worker bumps the
// counter once on entry, then one increments and the other decrements
// the same number of times, every step under the lock. The progress
// snapshots wander with the scheduler; the final value never does:
//
//	0 + (1 + N) + (1 - N) = 2
//
// When UDP tracing is enabled the counter is also sampled live by a
// snapshot publisher for the duration of the run.
func runGuardedCounter(ctx *Context) error {
	iterations := ctx.Cfg.Demo.Iterations
	stride := ctx.Cfg.Demo.Stride

	tally := &counter.TallyCounter{}

	if ctx.Cfg.Trace.UDPEnabled {
		stop := startSnapshots(ctx, tally)
		defer stop()
	}

	ctx.Printf("Initial counter value: %d\n", tally.Value())
	ctx.Printf("Loop iterations per worker: %d\n\n", iterations)

	onProgress := func(p counter.Progress) {
		switch p.Phase {
		case "start":
			ctx.Printf("[%s] starting (counter = %d)\n", p.Worker, p.Value)
		case "progress":
			ctx.Printf("[%s] progress: %d/%d (counter = %d)\n", p.Worker, p.Step, iterations, p.Value)
		case "done":
			ctx.Printf("[%s] completed %d steps (counter = %d)\n", p.Worker, p.Step, p.Value)
		}
	}

	final := counter.RunTally(tally, iterations, stride, onProgress)

	ctx.Printf("\nFinal counter value: %d\n", final)
	ctx.Printf("Expected value: 2 (each worker adds 1 up front; the loops cancel out)\n")
	ctx.Trace("final tally", final)

	return nil
}

// startSnapshots wires a UDP snapshot publisher to the live counter.
// Trace plumbing must never break a demo run, so setup failures are
// logged and swallowed. The returned func stops the publisher and
// closes the socket.
func startSnapshots(ctx *Context, tally *counter.TallyCounter) func() {
	sender, err := udp.NewUDPSender(ctx.Cfg.Trace.UDPTargetAddress)
	if err != nil {
		applog.Warnf("Counter snapshots disabled: %v", err)
		return func() {}
	}

	pub, err := udp.NewSnapshotPublisher(ctx.Cfg.Trace.UDPSendInterval, sender, tally)
	if err != nil {
		applog.Warnf("Counter snapshots disabled: %v", err)
		sender.Close()
		return func() {}
	}

	pub.Start()
	return func() {
		pub.Stop()
		sender.Close()
	}
}
