// Package latch implements the 24-bit latch word encoding for ADF411x-style
// integer-N frequency synthesizers.
//
// # Word Layout
//
// The chip is programmed through three internal latches, each loaded from a
// 24-bit word shifted in most-significant bit first. The two
// least-significant bits of every word form a destination tag that the chip's
// internal demultiplexer uses to route the word, independent of arrival
// order:
//
//	Latch              Tag   Carries
//	Reference counter  0b00  R divide ratio + upper control bits
//	Feedback counter   0b01  B (high-speed) and A (swallow) counters
//	Function/control   0b10  charge-pump, lock-detect, power-down, prescaler
//
// # Register Computation
//
// Use Compute to turn a target output frequency into the three words:
//
//	cfg := latch.ChipConfig{PrescalerIndex: 1, Current1: 3, Current2: 3}
//	words, err := latch.Compute(10500, 100, 1250, cfg)
//	// words.Reference, words.Function, words.Feedback
//
// All divider math truncates toward zero, exactly reproducing the hardware
// counter behavior. Compute is pure: no I/O, no timing, and identical inputs
// always produce byte-identical words.
//
// # Error Handling
//
// Out-of-range configuration selectors yield a *RangeError; computed divider
// values that cannot be programmed (field overflow, or a swallow count
// outside the dual-modulus window A < P, A <= B) yield a *CounterError.
package latch
