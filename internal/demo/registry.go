// SPDX-License-Identifier: MIT
/*
Package demo holds the runnable catalog of integer and concurrency
walkthroughs. Each demo is a named entry in an ordered table; the CLI
and the TUI both drive the same catalog through Run.

A demo writes its narration to the Context writer and reports its key
results through Context.Trace, which fans out to whatever transport
is attached (logging, WebSocket broadcast). Demos never call os.Exit
and never panic on bad input; anything that can fail returns an
error.
*/
package demo

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nikhiloz/generic/internal/config"
	"github.com/nikhiloz/generic/internal/transport"
)

// Demo is one catalog entry. Name is the stable identifier used on
// the command line, Title and Summary feed the list output and the
// TUI menu.
type Demo struct {
	Name    string
	Title   string
	Summary string
	Run     func(*Context) error
}

// Context carries everything a demo needs while it runs: the output
// writer, the effective configuration and an optional trace
// transport. One Context serves a whole run; the trace sequence
// number spans all demos in it.
type Context struct {
	W         io.Writer
	Cfg       *config.Config
	Transport transport.Transport // may be nil

	current string
	seq     uint32
}

// NewContext builds a run context. A nil writer discards output and
// a nil config falls back to the defaults, so tests can pass only
// what they care about.
func NewContext(w io.Writer, cfg *config.Config, t transport.Transport) *Context {
	if w == nil {
		w = io.Discard
	}
	if cfg == nil {
		cfg = config.New()
	}
	return &Context{W: w, Cfg: cfg, Transport: t}
}

// Printf writes demo narration to the context writer.
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.W, format, args...)
}

// Trace reports one key result. With no transport attached it is a
// no-op; transport errors are swallowed so a dead trace sink never
// breaks a run.
func (c *Context) Trace(label string, value any) {
	if c.Transport == nil {
		return
	}
	c.seq++
	_ = c.Transport.Send(transport.TraceEvent{
		Seq:       c.seq,
		Demo:      c.current,
		Label:     label,
		Value:     fmt.Sprint(value),
		Timestamp: time.Now().UnixNano(),
	})
}

// catalog is the single source of demo order: pure bit tricks first,
// then memory layout, then the concurrency exercises.
var catalog = []Demo{
	{
		Name:    "bit-tricks",
		Title:   "BIT TRICK OPERATIONS",
		Summary: "Branchless abs, min/max, averages, exchanges and shift arithmetic",
		Run:     runBitTricks,
	},
	{
		Name:    "set-clear-test",
		Title:   "SET, CLEAR AND TEST BITS",
		Summary: "Single-bit manipulation on a byte, shown in binary at every step",
		Run:     runSetClearTest,
	},
	{
		Name:    "integer-limits",
		Title:   "INTEGER LIMITS",
		Summary: "Deriving the int32/int64 extremes from shifts and complements",
		Run:     runIntegerLimits,
	},
	{
		Name:    "wraparound",
		Title:   "OVERFLOW AND WRAPAROUND",
		Summary: "Defined two's complement wrapping at the 8-bit boundaries",
		Run:     runWraparound,
	},
	{
		Name:    "endianness",
		Title:   "ENDIANNESS",
		Summary: "Platform byte order probe and the byte dumps of 0x12345678",
		Run:     runEndianness,
	},
	{
		Name:    "bit-fields",
		Title:   "PACKED BIT FIELDS",
		Summary: "A flag/status/counter word packed into 16 bits with shift-mask accessors",
		Run:     runBitFields,
	},
	{
		Name:    "series",
		Title:   "ALTERNATING SERIES",
		Summary: "The subtract-8 / multiply-2 sequence with configurable start and length",
		Run:     runSeries,
	},
	{
		Name:    "guarded-counter",
		Title:   "GUARDED COUNTER",
		Summary: "Two workers on one mutex-owned tally; the final value is always 2",
		Run:     runGuardedCounter,
	},
	{
		Name:    "jobs",
		Title:   "SERIALIZED JOBS",
		Summary: "Workers claim job numbers under one guard; start/finish pairs never interleave",
		Run:     runJobs,
	},
	{
		Name:    "popcount-stats",
		Title:   "POPULATION COUNT STATISTICS",
		Summary: "Set-bit distribution of a random sample against the Binomial(32, 0.5) reference",
		Run:     runPopcountStats,
	},
}

// All returns the catalog in presentation order. The slice is a copy;
// callers can reorder it freely.
func All() []Demo {
	out := make([]Demo, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the demo names in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, d := range catalog {
		names[i] = d.Name
	}
	return names
}

// Lookup finds a demo by name.
func Lookup(name string) (Demo, bool) {
	for _, d := range catalog {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// Run executes the named demos in the order given. An empty name
// list runs the whole catalog. Unknown names fail before anything
// runs, so a typo cannot leave a half-finished session.
func Run(ctx *Context, names []string) error {
	if len(names) == 0 {
		return RunAll(ctx)
	}

	selected := make([]Demo, 0, len(names))
	for _, name := range names {
		d, ok := Lookup(name)
		if !ok {
			return fmt.Errorf("unknown demo %q (valid names: %s)", name, strings.Join(Names(), ", "))
		}
		selected = append(selected, d)
	}

	for _, d := range selected {
		if err := runOne(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

// RunAll executes the whole catalog in order.
func RunAll(ctx *Context) error {
	for _, d := range catalog {
		if err := runOne(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func runOne(ctx *Context, d Demo) error {
	ctx.current = d.Name
	defer func() { ctx.current = "" }()

	ctx.Printf("========================================\n")
	ctx.Printf("    %s\n", d.Title)
	ctx.Printf("========================================\n")

	if err := d.Run(ctx); err != nil {
		return fmt.Errorf("demo %s: %w", d.Name, err)
	}
	ctx.Printf("\n")
	return nil
}
