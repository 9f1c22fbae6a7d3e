// SPDX-License-Identifier: MIT
/*
Package counter implements the guarded shared-counter exercises: a
mutex-owned tally worked on by an increment and a decrement worker,
and a job runner that serializes whole units of work behind one
guard.

The tally is the classic two-thread counter: each worker bumps the
counter once on entry and then walks its loop. Because every touch of
the counter happens inside a scoped lock acquisition, the final value
is 2 for any iteration count and any interleaving:

	0 + (1 + N) + (1 - N) = 2

The interleaving itself stays nondeterministic, which is the point:
progress snapshots wander, the final value does not.
*/
package counter

import (
	"sync"
)

// TallyCounter is an int64 behind a mutex. The counter owns its
// state; there is no package-level shared value to race on.
type TallyCounter struct {
	mu    sync.Mutex
	value int64
}

// Increment adds one and returns the new value.
func (c *TallyCounter) Increment() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++
	return c.value
}

// Decrement subtracts one and returns the new value.
func (c *TallyCounter) Decrement() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value--
	return c.value
}

// Add applies an arbitrary delta and returns the new value.
func (c *TallyCounter) Add(delta int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value += delta
	return c.value
}

// Value returns the current value.
func (c *TallyCounter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Progress is one snapshot from a tally worker. Value is whatever the
// counter held right after the worker's own step; the other worker
// may move it immediately afterwards.
type Progress struct {
	Worker string // "increment" or "decrement"
	Phase  string // "start", "progress" or "done"
	Step   int64  // Loop position, 0-based
	Value  int64  // Counter value observed at this step
}

// RunTally runs the two-worker exercise on c: each worker bumps the
// counter once on entry, then performs iterations increments or
// decrements with a scoped lock per step. Snapshots are delivered
// through onProgress (serialized, may be nil) every stride steps;
// stride must be a power of 2 because the loop masks with stride-1.
// Returns the final counter value, which is always start value + 2.
func RunTally(c *TallyCounter, iterations, stride int64, onProgress func(Progress)) int64 {
	if stride < 1 {
		stride = 1
	}
	mask := stride - 1

	var cbMu sync.Mutex
	report := func(p Progress) {
		if onProgress == nil {
			return
		}
		cbMu.Lock()
		defer cbMu.Unlock()
		onProgress(p)
	}

	worker := func(name string, step func() int64) {
		last := c.Increment()
		report(Progress{Worker: name, Phase: "start", Value: last})
		for i := int64(0); i < iterations; i++ {
			last = step()
			if i&mask == 0 {
				report(Progress{Worker: name, Phase: "progress", Step: i, Value: last})
			}
		}
		report(Progress{Worker: name, Phase: "done", Step: iterations, Value: last})
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		worker("increment", c.Increment)
	}()
	go func() {
		defer wg.Done()
		worker("decrement", c.Decrement)
	}()
	wg.Wait()

	return c.Value()
}
