package latch

// ChipConfig holds the static configuration selectors that shape the
// reference and function latch words. Every selector has an enumerated valid
// range; out-of-range values are a caller error reported by Validate, never
// silently clamped.
//
// The zero value is a valid configuration: prescaler 8/9, charge pump at
// minimum current, everything else off.
type ChipConfig struct {
	// PrescalerIndex selects the dual-modulus prescaler: P = 8 << index.
	// Valid range 0-3 (8/9 through 64/65).
	PrescalerIndex uint8

	// RefMode selects the reference latch operating mode
	// (RefModeNormal or RefModeTest)
	RefMode uint8

	// CounterReset holds the R and N counters in reset while 1
	CounterReset uint8

	// PowerDown1 is the soft power-down control (0 or 1)
	PowerDown1 uint8

	// Muxout selects the signal on the muxout pin (0-7)
	Muxout uint8

	// Polarity sets the phase-detector polarity (0 negative, 1 positive)
	Polarity uint8

	// CPThreeState puts the charge pump into three-state while 1
	CPThreeState uint8

	// FastlockMode selects the fastlock behavior (0-3)
	FastlockMode uint8

	// TimerCounter selects the fastlock timeout (0-15)
	TimerCounter uint8

	// Current1 is the first charge-pump current setting (0-7)
	Current1 uint8

	// Current2 is the second charge-pump current setting (0-7)
	Current2 uint8

	// PowerDown2 is the hard power-down control (0 or 1)
	PowerDown2 uint8
}

// Validate checks every selector against its enumerated range.
// Returns a *RangeError naming the first offending field, or nil.
func (c ChipConfig) Validate() error {
	fields := []struct {
		name string
		val  uint8
		max  uint8
	}{
		{"prescaler index", c.PrescalerIndex, PrescalerIndexMax},
		{"reference mode", c.RefMode, RefModeTest},
		{"counter reset", c.CounterReset, 1},
		{"power-down 1", c.PowerDown1, 1},
		{"muxout", c.Muxout, MuxoutMax},
		{"polarity", c.Polarity, 1},
		{"charge-pump three-state", c.CPThreeState, 1},
		{"fastlock mode", c.FastlockMode, FastlockMax},
		{"timer counter", c.TimerCounter, TimerMax},
		{"current setting 1", c.Current1, CurrentMax},
		{"current setting 2", c.Current2, CurrentMax},
		{"power-down 2", c.PowerDown2, 1},
	}

	for _, f := range fields {
		if f.val > f.max {
			return &RangeError{
				Field: f.name,
				Value: int(f.val),
				Max:   int(f.max),
			}
		}
	}

	return nil
}

// Prescaler returns the dual-modulus prescaler value P for this
// configuration.
func (c ChipConfig) Prescaler() uint32 {
	return 8 << c.PrescalerIndex
}
