// Package trace provides a bus that logs line transitions instead of
// driving hardware. Useful for dry runs, demos and protocol inspection.
package trace

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Bus writes one line per transition to an io.Writer:
//
//	+123.456ms LE    high
//	+123.556ms LE    low
//
// Edge-only: repeated writes of the same level are suppressed, matching what
// a logic analyzer would show.
type Bus struct {
	mu    sync.Mutex
	w     io.Writer
	start time.Time

	clock bool
	data  bool
	le    bool
	syn   bool

	// Quiet suppresses CLOCK and DATA edges, keeping only latch-enable
	// and sync activity. A full 24-bit word is 48 clock edges; at sweep
	// rates that is usually noise.
	Quiet bool
}

// New creates a trace bus writing to w.
func New(w io.Writer) *Bus {
	return &Bus{w: w, start: time.Now()}
}

func (b *Bus) transition(line string, level *bool, high bool, quiet bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if *level == high {
		return
	}
	*level = high

	if quiet && b.Quiet {
		return
	}

	state := "low"
	if high {
		state = "high"
	}
	fmt.Fprintf(b.w, "+%s %-5s %s\n", time.Since(b.start).Round(time.Microsecond), line, state)
}

// SetClock logs a serial clock transition.
func (b *Bus) SetClock(high bool) {
	b.transition("CLOCK", &b.clock, high, true)
}

// SetData logs a serial data transition.
func (b *Bus) SetData(high bool) {
	b.transition("DATA", &b.data, high, true)
}

// SetLatchEnable logs a latch-enable transition.
func (b *Bus) SetLatchEnable(high bool) {
	b.transition("LE", &b.le, high, false)
}

// SetSync logs a sync transition.
func (b *Bus) SetSync(high bool) {
	b.transition("SYNC", &b.syn, high, false)
}
