package driver

import (
	"time"

	"github.com/pllware/go-adf411x/latch"
	"github.com/pllware/go-adf411x/sweep"
)

// Transmitter shifts latch words onto the bus with the configured timing.
// It assumes exclusive ownership of the bus; no call suspends for any reason
// other than the protocol's own delays.
type Transmitter struct {
	bus    Bus
	timing sweep.Timing
	sleep  func(time.Duration)
}

// NewTransmitter creates a Transmitter over the given bus. The timing must
// have passed Validate.
func NewTransmitter(bus Bus, timing sweep.Timing) *Transmitter {
	return newTransmitter(bus, timing, time.Sleep)
}

func newTransmitter(bus Bus, timing sweep.Timing, sleep func(time.Duration)) *Transmitter {
	if bus == nil {
		panic("bus cannot be nil")
	}
	return &Transmitter{
		bus:    bus,
		timing: timing,
		sleep:  sleep,
	}
}

// Send pushes one 24-bit word into the chip's shift register and commits it,
// in strict order:
//
//  1. Shift out the three bytes, most-significant byte first, each bit
//     most-significant first, DATA valid before the rising CLOCK edge.
//  2. Assert LATCH-ENABLE (and SYNC when assertSync is true).
//  3. Hold for exactly the configured pulse width.
//  4. De-assert both lines.
//  5. Idle out the remainder of the inter-word delay before returning.
//
// Failure is not modeled; the bus has no acknowledgement channel.
func (t *Transmitter) Send(w latch.Word, assertSync bool) {
	hi, mid, lo := w.Bytes()
	t.shiftOut(hi)
	t.shiftOut(mid)
	t.shiftOut(lo)

	t.bus.SetLatchEnable(true)
	if assertSync {
		t.bus.SetSync(true)
	}
	t.sleep(t.timing.PulseWidth)

	t.bus.SetLatchEnable(false)
	if assertSync {
		t.bus.SetSync(false)
	}
	t.sleep(t.timing.WordDelay - t.timing.PulseWidth)
}

// shiftOut clocks one byte onto the bus, most-significant bit first,
// clock idle low.
func (t *Transmitter) shiftOut(b byte) {
	for bit := 7; bit >= 0; bit-- {
		t.bus.SetData(b>>uint(bit)&1 == 1)
		t.bus.SetClock(true)
		t.bus.SetClock(false)
	}
}
