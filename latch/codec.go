package latch

import (
	"fmt"
	"math"
)

// Compute converts a target output frequency into the three 24-bit latch
// words that program the synthesizer.
//
// Units: targetMHz and refMHz in megahertz, pfdKHz (the phase-detector
// comparison frequency) in kilohertz.
//
// The divider math truncates toward zero at every step. This exactly
// reproduces the behavior of the hardware counters and must not be replaced
// with rounding:
//
//	effOut = target / 4                  (fixed output prescale stage)
//	P      = 8 << prescalerIndex         (dual-modulus prescaler)
//	R      = trunc(ref*1000 / pfd)       (reference divide ratio)
//	N      = trunc(effOut*1000 / pfd)    (feedback divide ratio)
//	B      = N / P
//	A      = N - B*P                     (swallow count)
//
// Compute is a pure function: identical inputs always yield byte-identical
// words. It returns a *RangeError for an out-of-range selector and a
// *CounterError when a computed divider cannot be programmed, including
// violations of the dual-modulus window (A must be below P and not above B).
func Compute(targetMHz, refMHz, pfdKHz float64, cfg ChipConfig) (Words, error) {
	if targetMHz <= 0 {
		return Words{}, fmt.Errorf("target frequency must be positive, got %g MHz", targetMHz)
	}
	if refMHz <= 0 {
		return Words{}, fmt.Errorf("reference frequency must be positive, got %g MHz", refMHz)
	}
	if pfdKHz <= 0 {
		return Words{}, fmt.Errorf("comparison frequency must be positive, got %g kHz", pfdKHz)
	}
	if err := cfg.Validate(); err != nil {
		return Words{}, err
	}

	p := cfg.Prescaler()

	// Range-check the ratios as floats before narrowing. Converting an
	// oversized float to uint32 wraps, which would turn an absurd target
	// into a plausible-looking word with no error.
	rf := math.Trunc(refMHz * 1000 / pfdKHz)
	nf := math.Trunc(targetMHz / OutputPrescale * 1000 / pfdKHz)

	if rf < RMin || rf > RMax {
		return Words{}, &CounterError{
			Counter: "R",
			Value:   rf,
			Reason:  fmt.Sprintf("must be within %d-%d", RMin, RMax),
		}
	}
	if nf > math.MaxUint32 {
		return Words{}, &CounterError{
			Counter: "N",
			Value:   nf,
			Reason:  "exceeds the 32-bit divider bound",
		}
	}

	r := uint32(rf)
	n := uint32(nf)
	b := n / p
	a := n - b*p

	if b > BMax {
		return Words{}, &CounterError{
			Counter: "B",
			Value:   float64(b),
			Reason:  fmt.Sprintf("exceeds 13-bit maximum %d", BMax),
		}
	}
	// a < p holds by construction for valid prescaler indexes (p <= 64 and
	// AMax = 63), but the dual-modulus window also requires a <= b.
	if a > AMax {
		return Words{}, &CounterError{
			Counter: "A",
			Value:   float64(a),
			Reason:  fmt.Sprintf("exceeds 6-bit maximum %d", AMax),
		}
	}
	if a > b {
		return Words{}, &CounterError{
			Counter: "A",
			Value:   float64(a),
			Reason:  fmt.Sprintf("swallow count above B counter %d, outside the dual-modulus window", b),
		}
	}

	return Words{
		Reference: Word(r<<RShift | refModeBits[cfg.RefMode] | TagReference),
		Function:  Word(functionBits(cfg) | TagFunction),
		Feedback:  Word(b<<BShift | a<<AShift | TagFeedback),
	}, nil
}

// functionBits assembles the function latch payload from the configuration
// selectors at their fixed offsets.
func functionBits(c ChipConfig) uint32 {
	return uint32(c.CounterReset)<<CounterResetBit |
		uint32(c.PowerDown1)<<PowerDown1Bit |
		uint32(c.Muxout)<<MuxoutShift |
		uint32(c.Polarity)<<PolarityBit |
		uint32(c.CPThreeState)<<CPThreeStateBit |
		uint32(c.FastlockMode)<<FastlockShift |
		uint32(c.TimerCounter)<<TimerShift |
		uint32(c.Current1)<<Current1Shift |
		uint32(c.Current2)<<Current2Shift |
		uint32(c.PowerDown2)<<PowerDown2Bit |
		uint32(c.PrescalerIndex)<<PrescalerShift
}
