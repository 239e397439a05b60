package latch

import "fmt"

// RangeError reports a configuration selector outside its enumerated domain.
// The codec does not clamp; the caller must supply valid selectors.
type RangeError struct {
	// Field is the name of the offending selector
	Field string

	// Value is the supplied value
	Value int

	// Min is the smallest valid value
	Min int

	// Max is the largest valid value
	Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s out of range: got %d, valid range is %d-%d",
		e.Field, e.Value, e.Min, e.Max)
}

// IsRangeError returns true if the error is a RangeError.
func IsRangeError(err error) bool {
	_, ok := err.(*RangeError)
	return ok
}

// CounterError reports a divider counter value that cannot be programmed into
// the chip, either because it overflows its bit field or because it violates
// the dual-modulus operating window (A < P and A <= B).
type CounterError struct {
	// Counter names the counter ("R", "N", "B" or "A")
	Counter string

	// Value is the computed counter value. Held as a float so ratios too
	// large for any hardware counter are still reported exactly.
	Value float64

	// Reason describes the violated constraint
	Reason string
}

func (e *CounterError) Error() string {
	return fmt.Sprintf("%s counter value %.0f invalid: %s", e.Counter, e.Value, e.Reason)
}

// IsCounterError returns true if the error is a CounterError.
func IsCounterError(err error) bool {
	_, ok := err.(*CounterError)
	return ok
}
