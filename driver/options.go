package driver

import (
	"time"

	"github.com/pllware/go-adf411x/sweep"
)

// Config holds the sweeper configuration.
type Config struct {
	// Timing are the protocol delays (validated at Run time)
	Timing sweep.Timing

	// Logger is used for logging operations (optional)
	Logger Logger

	// PassCallback is called after each completed sweep pass (optional)
	PassCallback PassCallback

	// Sleep implements the protocol delays. Defaults to time.Sleep;
	// tests substitute a virtual clock.
	Sleep func(time.Duration)
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Timing: sweep.DefaultTiming(),
		Sleep:  time.Sleep,
	}
}

// Option is a functional option for configuring the Sweeper.
type Option func(*Config)

// WithTiming sets the protocol delays.
//
// Example:
//
//	sw := driver.New(bus, table, driver.WithTiming(sweep.Timing{
//	    PulseWidth: 50 * time.Microsecond,
//	    WordDelay:  500 * time.Microsecond,
//	    PassPause:  5 * time.Millisecond,
//	}))
func WithTiming(t sweep.Timing) Option {
	return func(c *Config) {
		c.Timing = t
	}
}

// WithLogger sets a logger for the sweeper operations.
//
// Example:
//
//	sw := driver.New(bus, table, driver.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithPassCallback sets a callback invoked after every sweep pass.
//
// Example:
//
//	sw := driver.New(bus, table,
//	    driver.WithPassCallback(func(p driver.PassInfo) {
//	        fmt.Printf("pass %d: %d words\n", p.Pass, p.Steps)
//	    }),
//	)
func WithPassCallback(callback PassCallback) Option {
	return func(c *Config) {
		c.PassCallback = callback
	}
}

// WithSleep replaces the delay implementation. Intended for tests that run
// the sweep against a virtual clock.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Config) {
		if sleep != nil {
			c.Sleep = sleep
		}
	}
}
