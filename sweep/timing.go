package sweep

import (
	"fmt"
	"time"
)

// MaxDelay is the largest programmable delay. Delays are driven by a 16-bit
// microsecond timer, so every interval must fit in 16383 microseconds.
const MaxDelay = 16383 * time.Microsecond

// Timing holds the fixed protocol delays. Supplied once at startup and never
// mutated; Validate must pass before any transmission.
type Timing struct {
	// PulseWidth is how long latch-enable (and sync) are held asserted
	PulseWidth time.Duration

	// WordDelay is the total time from the start of one word's enable
	// pulse to the start of the next. Must be strictly greater than
	// PulseWidth.
	WordDelay time.Duration

	// PassPause is the idle time between sweep passes
	PassPause time.Duration
}

// DefaultTiming returns the timing used by the reference sweep:
// a 100us enable pulse, 1ms between words, 10ms between passes.
func DefaultTiming() Timing {
	return Timing{
		PulseWidth: 100 * time.Microsecond,
		WordDelay:  1000 * time.Microsecond,
		PassPause:  10 * time.Millisecond,
	}
}

// Validate checks the timing against the 16-bit microsecond timer bound:
// 0 <= PulseWidth < WordDelay <= 16383us and PassPause <= 16383us, all in
// whole microseconds. This is a startup-time check; the delays are constants
// and are never re-validated at runtime.
func (t Timing) Validate() error {
	for _, d := range []struct {
		name string
		val  time.Duration
	}{
		{"pulse width", t.PulseWidth},
		{"word delay", t.WordDelay},
		{"pass pause", t.PassPause},
	} {
		if d.val < 0 {
			return fmt.Errorf("%s must not be negative, got %v", d.name, d.val)
		}
		if d.val > MaxDelay {
			return fmt.Errorf("%s %v overflows the 16-bit microsecond timer (max %v)", d.name, d.val, MaxDelay)
		}
		if d.val%time.Microsecond != 0 {
			return fmt.Errorf("%s %v is not a whole number of microseconds", d.name, d.val)
		}
	}

	if t.PulseWidth >= t.WordDelay {
		return fmt.Errorf("pulse width %v must be strictly less than word delay %v",
			t.PulseWidth, t.WordDelay)
	}

	return nil
}
