// Package driver transmits sweep programs to the synthesizer with the
// protocol's timing contract.
//
// # Overview
//
// Two layers:
//   - Transmitter shifts a single 24-bit latch word onto the 3-wire bus
//     (MSB-first, clock idle low, rising-edge sample) and commits it with a
//     timed latch-enable pulse.
//   - Sweeper runs the full program: validate, program the static function
//     and reference latches once, then loop over the feedback words forever.
//
// # Basic Usage
//
//	plan, err := sweep.Parse("xband.plan")
//	table, err := sweep.Build(plan, cfg)
//
//	bus, err := rpi.New(rpi.DefaultPins())
//	sw := driver.New(bus, table)
//	err = sw.Run(context.Background())
//
// Run returns only on a fatal configuration error or when the context is
// cancelled; with a background context the sweep runs until power-down.
//
// # Timing Contract
//
// Latch-enable is held for exactly Timing.PulseWidth, and the time from the
// start of one word's enable pulse to the start of the next equals
// Timing.WordDelay, within the delay mechanism's resolution. SYNC is
// asserted together with latch-enable on the first word of each pass only.
//
// # Concurrency
//
// There is exactly one logical thread of control. Every wait is a blocking
// protocol delay, not a yield point, and the bus is exclusively owned by the
// running sweep. No locking, no retries; the protocol has no acknowledgement
// channel to retry against.
//
// # Hardware Independence
//
// The Bus interface is the abstraction boundary: four named output lines.
// The bus/rpi, bus/mcp2221 and bus/trace packages provide implementations;
// any other can be supplied, including mocks for testing.
package driver
