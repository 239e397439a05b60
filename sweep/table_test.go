package sweep

import (
	"strings"
	"testing"

	"github.com/pllware/go-adf411x/latch"
)

// referencePlan is the documented X-band sweep: 10500 down to 10415 MHz in
// 5 MHz steps against a 100 MHz reference and 1250 kHz comparison frequency.
func referencePlan() *Plan {
	targets := make([]float64, 0, 18)
	for f := 10500.0; f >= 10415; f -= 5 {
		targets = append(targets, f)
	}
	return &Plan{RefMHz: 100, PfdKHz: 1250, Targets: targets}
}

func referenceConfig() latch.ChipConfig {
	return latch.ChipConfig{
		PrescalerIndex: 1,
		RefMode:        latch.RefModeTest,
		Current1:       3,
		Current2:       3,
	}
}

func TestBuild(t *testing.T) {
	table, err := Build(referencePlan(), referenceConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.Len() != 18 {
		t.Fatalf("Len() = %d, want 18", table.Len())
	}

	if table.Reference() != 0x910140 {
		t.Errorf("Reference() = %v, want 0x910140", table.Reference())
	}
	if table.Function() != 0x4D8002 {
		t.Errorf("Function() = %v, want 0x4D8002", table.Function())
	}

	// First transmitted entry is the 10500 MHz step.
	_, mid, lo := table.Steps[0].Words.Feedback.Bytes()
	if mid != 0x83 || lo != 0x11 {
		t.Errorf("first feedback mid/lo = {0x%02X, 0x%02X}, want {0x83, 0x11}", mid, lo)
	}

	// Last entry is the 10415 MHz step.
	_, mid, lo = table.Steps[table.Len()-1].Words.Feedback.Bytes()
	if mid != 0x82 || lo != 0x0D {
		t.Errorf("last feedback mid/lo = {0x%02X, 0x%02X}, want {0x82, 0x0D}", mid, lo)
	}
}

func TestBuildPreservesOrder(t *testing.T) {
	plan := referencePlan()
	table, err := Build(plan, referenceConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, step := range table.Steps {
		if step.TargetMHz != plan.Targets[i] {
			t.Errorf("step %d target = %g, want %g", i, step.TargetMHz, plan.Targets[i])
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		plan   *Plan
		cfg    latch.ChipConfig
		errMsg string
	}{
		{
			name:   "nil plan",
			plan:   nil,
			errMsg: "plan cannot be nil",
		},
		{
			name:   "no targets",
			plan:   &Plan{RefMHz: 100, PfdKHz: 1250},
			errMsg: "no target frequencies",
		},
		{
			name:   "bad selector",
			plan:   referencePlan(),
			cfg:    latch.ChipConfig{PrescalerIndex: 7},
			errMsg: "prescaler index out of range",
		},
		{
			name:   "uncomputable target names its index",
			plan:   &Plan{RefMHz: 100, PfdKHz: 1250, Targets: []float64{10500, 9e9}},
			cfg:    referenceConfig(),
			errMsg: "target 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.plan, tt.cfg)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %v, want substring %q", err, tt.errMsg)
			}
		})
	}
}
