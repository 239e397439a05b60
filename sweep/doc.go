// Package sweep provides the sweep program model: the host-supplied plan, the
// precomputed table of latch words, the one-time consistency guard and the
// protocol timing constants.
//
// # Plan Format
//
// A sweep plan is a line-oriented text file. Blank lines and '#' comments are
// skipped. The first significant line holds the reference frequency (MHz) and
// comparison frequency (kHz); every following line is one target frequency in
// MHz, in transmission order:
//
//	# X-band sweep, 10500 down to 10415 in 5 MHz steps
//	100.000 1250.000
//	10500
//	10495
//	10490
//	...
//
// # Building and Validating
//
//	plan, err := sweep.Parse("xband.plan")
//	table, err := sweep.Build(plan, cfg)
//	if err := sweep.Validate(table); err != nil {
//	    // fatal: do not transmit anything
//	}
//
// Validate asserts that the reference and function words are byte-for-byte
// identical across all steps. The chip only supports a single static value
// for each during a sweep, so a mismatch is a fatal configuration error and
// the table must not be transmitted.
//
// # Timing
//
// Timing holds the three protocol delays (enable pulse width, inter-word
// delay, inter-pass pause), all bounded by a 16-bit microsecond timer. The
// pulse width must be strictly less than the inter-word delay. Timing is
// validated once at startup, never at runtime.
package sweep
