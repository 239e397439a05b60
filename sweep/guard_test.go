package sweep

import (
	"errors"
	"testing"
)

func TestValidatePasses(t *testing.T) {
	table, err := Build(referencePlan(), referenceConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := Validate(table); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateSingleStep(t *testing.T) {
	plan := &Plan{RefMHz: 100, PfdKHz: 1250, Targets: []float64{10500}}
	table, err := Build(plan, referenceConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := Validate(table); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateDetectsSingleBitDrift(t *testing.T) {
	// A mismatch of even one bit in a later step's reference or function
	// word must fail, never silently pass.
	tests := []struct {
		name      string
		corrupt   func(*Table)
		wantLatch string
		wantStep  int
	}{
		{
			name: "reference word drift",
			corrupt: func(tb *Table) {
				tb.Steps[3].Words.Reference ^= 1 << 4
			},
			wantLatch: "reference",
			wantStep:  3,
		},
		{
			name: "function word drift",
			corrupt: func(tb *Table) {
				tb.Steps[17].Words.Function ^= 1 << 22
			},
			wantLatch: "function",
			wantStep:  17,
		},
		{
			name: "drift in second step",
			corrupt: func(tb *Table) {
				tb.Steps[1].Words.Function ^= 1 << 2
			},
			wantLatch: "function",
			wantStep:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Build(referencePlan(), referenceConfig())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.corrupt(table)

			err = Validate(table)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var mismatch *InconsistentTableError
			if !errors.As(err, &mismatch) {
				t.Fatalf("expected *InconsistentTableError, got %T", err)
			}
			if mismatch.Latch != tt.wantLatch {
				t.Errorf("Latch = %q, want %q", mismatch.Latch, tt.wantLatch)
			}
			if mismatch.Step != tt.wantStep {
				t.Errorf("Step = %d, want %d", mismatch.Step, tt.wantStep)
			}
		})
	}
}

func TestValidateEmptyAndNil(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) = nil, want error")
	}
	if err := Validate(&Table{}); err == nil {
		t.Error("Validate(empty) = nil, want error")
	}
}
