// Package rpi drives the synthesizer bus from Raspberry Pi GPIO using
// memory-mapped pins.
//
// Wiring uses GPIO (BCM) pin numbers:
//
//	pins := rpi.Pins{Clock: 11, Data: 10, LatchEnable: 8, Sync: 25}
//	bus, err := rpi.New(pins)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bus.Close()
//
//	sw := driver.New(bus, table)
package rpi

import (
	"fmt"

	"github.com/warthog618/gpio"
)

// Pins names the GPIO (BCM) pin numbers carrying the four bus signals.
type Pins struct {
	Clock       int
	Data        int
	LatchEnable int
	Sync        int
}

// DefaultPins returns the wiring used by the reference adapter board:
// the SPI0 header pins for clock/data/latch-enable and GPIO25 for sync.
func DefaultPins() Pins {
	return Pins{Clock: 11, Data: 10, LatchEnable: 8, Sync: 25}
}

// Bus is a driver.Bus over Raspberry Pi GPIO.
type Bus struct {
	clock *gpio.Pin
	data  *gpio.Pin
	le    *gpio.Pin
	sync  *gpio.Pin
}

// New memory-maps the GPIO block and claims the four pins as outputs,
// all driven low (clock idle low, latches disabled).
func New(pins Pins) (*Bus, error) {
	if err := gpio.Open(); err != nil {
		return nil, fmt.Errorf("failed to open GPIO: %w", err)
	}

	b := &Bus{
		clock: gpio.NewPin(pins.Clock),
		data:  gpio.NewPin(pins.Data),
		le:    gpio.NewPin(pins.LatchEnable),
		sync:  gpio.NewPin(pins.Sync),
	}
	for _, p := range []*gpio.Pin{b.clock, b.data, b.le, b.sync} {
		p.Output()
		p.Low()
	}

	return b, nil
}

// SetClock drives the serial clock line.
func (b *Bus) SetClock(high bool) {
	b.clock.Write(gpio.Level(high))
}

// SetData drives the serial data line.
func (b *Bus) SetData(high bool) {
	b.data.Write(gpio.Level(high))
}

// SetLatchEnable drives the latch-enable line.
func (b *Bus) SetLatchEnable(high bool) {
	b.le.Write(gpio.Level(high))
}

// SetSync drives the auxiliary sync line.
func (b *Bus) SetSync(high bool) {
	b.sync.Write(gpio.Level(high))
}

// Close returns all lines low and unmaps the GPIO block.
func (b *Bus) Close() error {
	for _, p := range []*gpio.Pin{b.clock, b.data, b.le, b.sync} {
		p.Low()
	}
	return gpio.Close()
}
