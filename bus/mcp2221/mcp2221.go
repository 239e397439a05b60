// Package mcp2221 drives the synthesizer bus through an MCP2221A USB-to-GPIO
// bridge, for hosts without native GPIO.
//
// The bridge exposes four GP pins, exactly the four bus signals:
//
//	bus, err := mcp2221.New(mcp2221.DefaultPins())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bus.Close()
//
// Note that every line transition is a USB HID transaction; the achievable
// edge rate is far below native GPIO. Use generous word delays.
package mcp2221

import (
	"fmt"

	mcp "github.com/ardnew/mcp2221a"
)

// Pins assigns the four bus signals to the bridge's GP pins (0-3).
type Pins struct {
	Clock       byte
	Data        byte
	LatchEnable byte
	Sync        byte
}

// DefaultPins maps the signals in GP order: clock GP0, data GP1,
// latch-enable GP2, sync GP3.
func DefaultPins() Pins {
	return Pins{Clock: 0, Data: 1, LatchEnable: 2, Sync: 3}
}

// Bus is a driver.Bus over an MCP2221A bridge.
type Bus struct {
	dev     *mcp.MCP2221A
	pins    Pins
	lastErr error
}

// New opens the first attached MCP2221A and configures all four GP pins as
// GPIO outputs driven low.
func New(pins Pins) (*Bus, error) {
	dev, err := mcp.New(0, mcp.VID, mcp.PID)
	if err != nil {
		return nil, fmt.Errorf("failed to open MCP2221A: %w", err)
	}

	b := &Bus{dev: dev, pins: pins}
	for _, p := range []byte{pins.Clock, pins.Data, pins.LatchEnable, pins.Sync} {
		if err := dev.GPIO.SetConfig(p, mcp.WordClr, mcp.ModeGPIO, mcp.DirOutput); err != nil {
			_ = dev.Close()
			return nil, fmt.Errorf("failed to configure GP%d: %w", p, err)
		}
	}

	return b, nil
}

// set drives one pin, recording the first transport failure. The latch
// protocol has no failure model; Err exposes the sticky error for callers
// that want to check after the fact.
func (b *Bus) set(pin byte, high bool) {
	val := byte(mcp.WordClr)
	if high {
		val = mcp.WordSet
	}
	if err := b.dev.GPIO.Set(pin, val); err != nil && b.lastErr == nil {
		b.lastErr = fmt.Errorf("GP%d: %w", pin, err)
	}
}

// SetClock drives the serial clock line.
func (b *Bus) SetClock(high bool) {
	b.set(b.pins.Clock, high)
}

// SetData drives the serial data line.
func (b *Bus) SetData(high bool) {
	b.set(b.pins.Data, high)
}

// SetLatchEnable drives the latch-enable line.
func (b *Bus) SetLatchEnable(high bool) {
	b.set(b.pins.LatchEnable, high)
}

// SetSync drives the auxiliary sync line.
func (b *Bus) SetSync(high bool) {
	b.set(b.pins.Sync, high)
}

// Err returns the first transport error seen since the bus was opened, if
// any. The sweep itself never consults it.
func (b *Bus) Err() error {
	return b.lastErr
}

// Close releases the USB device.
func (b *Bus) Close() error {
	return b.dev.Close()
}
