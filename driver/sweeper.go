package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/pllware/go-adf411x/sweep"
)

// Sweeper drives the complete frequency sweep: one-time chip setup followed
// by unbounded passes over the sweep table. Execution is single-threaded and
// fully synchronous; every wait is a deliberate protocol delay, and the
// sweeper assumes monopolized control of the bus for its whole lifetime.
type Sweeper struct {
	bus    Bus
	table  *sweep.Table
	config Config
}

// New creates a Sweeper over the given bus and sweep table.
//
// Example:
//
//	bus, _ := rpi.New(rpi.DefaultPins())
//	sw := driver.New(bus, table,
//	    driver.WithTiming(timing),
//	    driver.WithPassCallback(passFunc),
//	)
//	err := sw.Run(context.Background())
func New(bus Bus, table *sweep.Table, opts ...Option) *Sweeper {
	if bus == nil {
		panic("bus cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Sweeper{
		bus:    bus,
		table:  table,
		config: cfg,
	}
}

// Run executes the sweep:
//
//  1. Validate the sweep table and the timing. A failure is fatal and
//     returns a *ConfigError before anything touches the bus.
//  2. Init: send the function word, then the reference word, each followed
//     by a full extra inter-word delay. This establishes the chip's static
//     configuration before any feedback word.
//  3. Steady state, repeated until the context is cancelled: send every
//     step's feedback word in table order with SYNC asserted only on the
//     first; re-send the first step's feedback word once more (guaranteeing
//     the chip re-locks to the first frequency before the pause); pause.
//
// With a background context Run never returns; the sweep runs until
// power-down, matching the chip's open-loop design.
func (s *Sweeper) Run(ctx context.Context) error {
	if err := sweep.Validate(s.table); err != nil {
		s.logError("sweep table validation failed", "err", err)
		return &ConfigError{Stage: "sweep table", Err: err}
	}
	if err := s.config.Timing.Validate(); err != nil {
		s.logError("timing validation failed", "err", err)
		return &ConfigError{Stage: "timing", Err: err}
	}

	// Nothing may touch the bus with a dead context.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("cancelled: %w", err)
	}

	tx := newTransmitter(s.bus, s.config.Timing, s.config.Sleep)

	s.logInfo("starting sweep",
		"steps", s.table.Len(),
		"reference_word", s.table.Reference().String(),
		"function_word", s.table.Function().String(),
	)

	// One-time setup. The function and reference latches hold a single
	// static value for the whole sweep; each setup word gets a full extra
	// inter-word delay to settle.
	tx.Send(s.table.Function(), false)
	s.config.Sleep(s.config.Timing.WordDelay)
	tx.Send(s.table.Reference(), false)
	s.config.Sleep(s.config.Timing.WordDelay)

	s.logDebug("static latches programmed")

	start := time.Now()
	for pass := 1; ; pass++ {
		for i, step := range s.table.Steps {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("cancelled: %w", err)
			}
			tx.Send(step.Words.Feedback, i == 0)
		}

		// Re-assert the first step so the chip re-locks to the first
		// frequency before the inter-pass pause.
		tx.Send(s.table.Steps[0].Words.Feedback, false)

		s.reportPass(PassInfo{
			Pass:    pass,
			Steps:   s.table.Len() + 1,
			Elapsed: time.Since(start),
		})

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}
		s.config.Sleep(s.config.Timing.PassPause)
	}
}

// reportPass calls the pass callback if configured.
func (s *Sweeper) reportPass(info PassInfo) {
	if s.config.PassCallback != nil {
		s.config.PassCallback(info)
	}
}

// logDebug logs a debug message if a logger is configured.
func (s *Sweeper) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (s *Sweeper) logInfo(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (s *Sweeper) logError(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Error(msg, keysAndValues...)
	}
}
