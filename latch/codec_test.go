package latch

import (
	"errors"
	"strings"
	"testing"
)

// sweepConfig is the chip configuration used by the reference sweep data:
// prescaler 16/17, charge pump {3,3}, reference latch in test mode.
func sweepConfig() ChipConfig {
	return ChipConfig{
		PrescalerIndex: 1,
		RefMode:        RefModeTest,
		Current1:       3,
		Current2:       3,
	}
}

func TestComputeGoldenWords(t *testing.T) {
	words, err := Compute(10500, 100, 1250, sweepConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if words.Reference != 0x910140 {
		t.Errorf("reference word = %v, want 0x910140", words.Reference)
	}
	if words.Function != 0x4D8002 {
		t.Errorf("function word = %v, want 0x4D8002", words.Function)
	}

	// 10500 MHz -> effOut 2625 MHz -> N 2100 -> B 131, A 4 with P=16
	hi, mid, lo := words.Feedback.Bytes()
	if hi != 0x00 || mid != 0x83 || lo != 0x11 {
		t.Errorf("feedback bytes = {0x%02X, 0x%02X, 0x%02X}, want {0x00, 0x83, 0x11}",
			hi, mid, lo)
	}
}

func TestComputeFeedbackCounters(t *testing.T) {
	tests := []struct {
		name      string
		targetMHz float64
		wantMid   byte
		wantLo    byte
	}{
		// N = trunc(target/4*1000/1250), B = N/16, A = N mod 16
		{name: "sweep top 10500 MHz", targetMHz: 10500, wantMid: 0x83, wantLo: 0x11},
		{name: "sweep bottom 10415 MHz", targetMHz: 10415, wantMid: 0x82, wantLo: 0x0D},
		{name: "one step down 10495 MHz", targetMHz: 10495, wantMid: 0x83, wantLo: 0x0D},
		{name: "10460 MHz", targetMHz: 10460, wantMid: 0x82, wantLo: 0x31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := Compute(tt.targetMHz, 100, 1250, sweepConfig())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			_, mid, lo := words.Feedback.Bytes()
			if mid != tt.wantMid || lo != tt.wantLo {
				t.Errorf("feedback mid/lo = {0x%02X, 0x%02X}, want {0x%02X, 0x%02X}",
					mid, lo, tt.wantMid, tt.wantLo)
			}
		})
	}
}

func TestComputeDestinationTags(t *testing.T) {
	// Tag bits are determined solely by latch kind, never by payload.
	inputs := []struct {
		targetMHz float64
		refMHz    float64
		pfdKHz    float64
		cfg       ChipConfig
	}{
		{10500, 100, 1250, sweepConfig()},
		{10415, 100, 1250, sweepConfig()},
		{6000, 10, 200, ChipConfig{PrescalerIndex: 2}},
		{2600, 25, 1000, ChipConfig{PrescalerIndex: 3, Polarity: 1, Muxout: 4}},
	}

	for _, in := range inputs {
		words, err := Compute(in.targetMHz, in.refMHz, in.pfdKHz, in.cfg)
		if err != nil {
			t.Fatalf("Compute(%g, %g, %g): unexpected error: %v",
				in.targetMHz, in.refMHz, in.pfdKHz, err)
		}

		if tag := words.Reference.Tag(); tag != TagReference {
			t.Errorf("reference tag = %#02b, want %#02b", tag, TagReference)
		}
		if tag := words.Feedback.Tag(); tag != TagFeedback {
			t.Errorf("feedback tag = %#02b, want %#02b", tag, TagFeedback)
		}
		if tag := words.Function.Tag(); tag != TagFunction {
			t.Errorf("function tag = %#02b, want %#02b", tag, TagFunction)
		}
	}
}

func TestComputeIsPure(t *testing.T) {
	first, err := Compute(10500, 100, 1250, sweepConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := Compute(10500, 100, 1250, sweepConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("identical inputs produced different words: %+v vs %+v", first, second)
	}
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name      string
		targetMHz float64
		refMHz    float64
		pfdKHz    float64
		cfg       ChipConfig
		errMsg    string
	}{
		{
			name:      "zero target frequency",
			targetMHz: 0, refMHz: 100, pfdKHz: 1250,
			cfg:    sweepConfig(),
			errMsg: "target frequency must be positive",
		},
		{
			name:      "negative reference frequency",
			targetMHz: 10500, refMHz: -1, pfdKHz: 1250,
			cfg:    sweepConfig(),
			errMsg: "reference frequency must be positive",
		},
		{
			name:      "zero comparison frequency",
			targetMHz: 10500, refMHz: 100, pfdKHz: 0,
			cfg:    sweepConfig(),
			errMsg: "comparison frequency must be positive",
		},
		{
			name:      "prescaler index out of range",
			targetMHz: 10500, refMHz: 100, pfdKHz: 1250,
			cfg:    ChipConfig{PrescalerIndex: 4},
			errMsg: "prescaler index out of range",
		},
		{
			name:      "reference ratio overflows 14 bits",
			targetMHz: 10500, refMHz: 100, pfdKHz: 1,
			cfg:    sweepConfig(),
			errMsg: "R counter value 100000 invalid",
		},
		{
			name:      "feedback ratio overflows 13-bit B",
			targetMHz: 600000, refMHz: 100, pfdKHz: 1250,
			cfg:    ChipConfig{},
			errMsg: "B counter value",
		},
		{
			name:      "feedback ratio past the 32-bit divider bound",
			targetMHz: 21474838980, refMHz: 100, pfdKHz: 1250,
			cfg:    sweepConfig(),
			errMsg: "N counter value 4294967796 invalid",
		},
		{
			name:      "swallow count above B counter",
			targetMHz: 28, refMHz: 100, pfdKHz: 1000,
			cfg:    ChipConfig{PrescalerIndex: 3},
			errMsg: "outside the dual-modulus window",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.targetMHz, tt.refMHz, tt.pfdKHz, tt.cfg)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %v, want substring %q", err, tt.errMsg)
			}
		})
	}
}

func TestComputeRejectsDividerWrap(t *testing.T) {
	// 21474838980 MHz needs N = 2^32 + 500; a wrapping uint32 conversion
	// would turn that into N = 500 and emit a small, plausible-looking
	// feedback word with no error.
	_, err := Compute(21474838980, 100, 1250, sweepConfig())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var counterErr *CounterError
	if !errors.As(err, &counterErr) {
		t.Fatalf("expected *CounterError, got %T", err)
	}
	if counterErr.Counter != "N" || counterErr.Value != 4294967796 {
		t.Errorf("CounterError = %+v, want N counter value 4294967796", counterErr)
	}
}

func TestComputeErrorTypes(t *testing.T) {
	_, err := Compute(10500, 100, 1250, ChipConfig{Muxout: 9})
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected *RangeError, got %T", err)
	}
	if rangeErr.Field != "muxout" || rangeErr.Value != 9 {
		t.Errorf("RangeError = %+v, want field muxout value 9", rangeErr)
	}

	_, err = Compute(10500, 100, 1, sweepConfig())
	var counterErr *CounterError
	if !errors.As(err, &counterErr) {
		t.Fatalf("expected *CounterError, got %T", err)
	}
	if counterErr.Counter != "R" {
		t.Errorf("CounterError.Counter = %q, want R", counterErr.Counter)
	}
}
