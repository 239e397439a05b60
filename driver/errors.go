package driver

import "fmt"

// ConfigError indicates the sweep program or timing failed startup
// validation. It is fatal: the sweeper refuses to start and no bus activity
// takes place. There is no degraded mode; an inconsistent program must never
// reach the chip.
type ConfigError struct {
	// Stage names the failed validation ("sweep table" or "timing")
	Stage string

	// Err is the underlying validation error
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sweep not started: %s validation failed: %v", e.Stage, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError returns true if the error is a ConfigError.
func IsConfigError(err error) bool {
	_, ok := err.(*ConfigError)
	return ok
}
