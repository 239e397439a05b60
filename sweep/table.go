package sweep

import (
	"fmt"

	"github.com/pllware/go-adf411x/latch"
)

// Step is one entry of a sweep table: a target frequency and the three latch
// words computed for it. Only the feedback word varies across a valid table;
// the reference and function words must be sweep-invariant (see Validate).
type Step struct {
	// TargetMHz is the output frequency this step programs
	TargetMHz float64

	// Words are the latch words computed for this step
	Words latch.Words
}

// Table is an ordered, precomputed sweep program. It is built once at
// startup and read-only thereafter; it must not be resized or reordered
// after Validate has passed.
type Table struct {
	// RefMHz is the reference frequency the table was built against
	RefMHz float64

	// PfdKHz is the comparison frequency the table was built against
	PfdKHz float64

	// Config is the chip configuration the table was built against
	Config latch.ChipConfig

	// Steps are the sweep entries in transmission order
	Steps []Step
}

// Build computes a sweep table from a plan, one latch computation per target
// frequency. The resulting table preserves the plan's order.
//
// Example:
//
//	plan, _ := sweep.Parse("xband.plan")
//	table, err := sweep.Build(plan, latch.ChipConfig{PrescalerIndex: 1})
func Build(plan *Plan, cfg latch.ChipConfig) (*Table, error) {
	if plan == nil {
		return nil, fmt.Errorf("plan cannot be nil")
	}
	if len(plan.Targets) == 0 {
		return nil, fmt.Errorf("plan has no target frequencies")
	}

	table := &Table{
		RefMHz: plan.RefMHz,
		PfdKHz: plan.PfdKHz,
		Config: cfg,
		Steps:  make([]Step, 0, len(plan.Targets)),
	}

	for i, target := range plan.Targets {
		words, err := latch.Compute(target, plan.RefMHz, plan.PfdKHz, cfg)
		if err != nil {
			return nil, fmt.Errorf("target %d (%g MHz): %w", i, target, err)
		}
		table.Steps = append(table.Steps, Step{
			TargetMHz: target,
			Words:     words,
		})
	}

	return table, nil
}

// Reference returns the sweep-invariant reference counter word
// (the first step's; Validate guarantees all steps agree).
func (t *Table) Reference() latch.Word {
	return t.Steps[0].Words.Reference
}

// Function returns the sweep-invariant function latch word.
func (t *Table) Function() latch.Word {
	return t.Steps[0].Words.Function
}

// Len returns the number of sweep steps.
func (t *Table) Len() int {
	return len(t.Steps)
}
