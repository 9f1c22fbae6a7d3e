package counter

import (
	"fmt"
	"io"
	"sync"

	"github.com/nikhiloz/generic/pkg/bitops"
)

// JobRunner serializes whole units of work behind one guard. Unlike
// the tally, where the lock scope is a single step, each worker here
// holds the lock from claiming its job number until the job is done,
// so started/finished pairs can never interleave in the output.
type JobRunner struct {
	mu   sync.Mutex
	jobs int
	sink int // Accumulated busy work, keeps the spin loop observable
}

// RunSerial starts workers goroutines. Each claims the next job
// number, prints its started line, burns spins rounds of busy work
// and prints its finished line, all inside one lock acquisition.
// Returns the number of jobs completed, which equals workers.
func (r *JobRunner) RunSerial(w io.Writer, workers, spins int) int {
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			r.runOne(w, spins)
		}()
	}
	wg.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.jobs
}

func (r *JobRunner) runOne(w io.Writer, spins int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobs++
	job := r.jobs
	fmt.Fprintf(w, "Job %d started\n", job)

	// Stand-in for real work. Summing population counts keeps the
	// loop from being optimized away.
	work := 0
	for i := 0; i < spins; i++ {
		work += bitops.PopCount32(uint32(i))
	}
	r.sink += work

	fmt.Fprintf(w, "Job %d finished\n", job)
}
