package sweep

import (
	"fmt"

	"github.com/pllware/go-adf411x/latch"
)

// InconsistentTableError reports a sweep step whose reference or function
// word differs from the first step's. The chip supports only a single static
// value for each across a sweep; there is no mechanism to change them
// mid-sweep without risking a transient misconfiguration, so this is a fatal
// configuration error, not a recoverable condition.
type InconsistentTableError struct {
	// Step is the index of the offending step
	Step int

	// Latch names the diverging latch ("reference" or "function")
	Latch string

	// Got is the offending step's word
	Got latch.Word

	// Want is the first step's word
	Want latch.Word
}

func (e *InconsistentTableError) Error() string {
	return fmt.Sprintf("sweep table inconsistent: step %d %s word is %v, first step has %v",
		e.Step, e.Latch, e.Got, e.Want)
}

// Validate is the one-time consistency pass over a sweep table. Each step's
// words are computed independently when the table is built; Validate asserts
// byte-for-byte that the reference and function words are identical across
// all steps. On failure the caller must not transmit anything: an
// inconsistent program risks an undefined chip state with no way to detect
// or correct it afterwards.
func Validate(t *Table) error {
	if t == nil {
		return fmt.Errorf("sweep table cannot be nil")
	}
	if len(t.Steps) == 0 {
		return fmt.Errorf("sweep table is empty")
	}

	first := t.Steps[0].Words
	for i, step := range t.Steps[1:] {
		if step.Words.Reference != first.Reference {
			return &InconsistentTableError{
				Step:  i + 1,
				Latch: "reference",
				Got:   step.Words.Reference,
				Want:  first.Reference,
			}
		}
		if step.Words.Function != first.Function {
			return &InconsistentTableError{
				Step:  i + 1,
				Latch: "function",
				Got:   step.Words.Function,
				Want:  first.Function,
			}
		}
	}

	return nil
}
