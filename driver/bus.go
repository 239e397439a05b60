package driver

// Bus is the 3-wire serial interface to the synthesizer plus the auxiliary
// sync output. All four lines are output-only; the protocol has no
// acknowledgement channel.
//
// Implementations toggle physical or simulated lines. The abstraction
// boundary is the named signals, not the method of toggling them: bus/rpi
// drives Raspberry Pi GPIO, bus/mcp2221 a USB GPIO bridge, bus/trace a log.
//
// The driver guarantees single-threaded access: calls are never concurrent.
type Bus interface {
	// SetClock drives the serial clock line. Idle level is low; the
	// receiver samples DATA on the rising edge.
	SetClock(high bool)

	// SetData drives the serial data line. The driver sets DATA before
	// raising CLOCK.
	SetData(high bool)

	// SetLatchEnable drives the latch-enable line. A timed high pulse
	// commits the shifted-in word to its destination latch.
	SetLatchEnable(high bool)

	// SetSync drives the auxiliary sync line marking the start of each
	// sweep pass for external observers.
	SetSync(high bool)
}
