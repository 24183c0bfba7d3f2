// Package platform defines the primitives an L0 controller consumes from
// the board it runs on.
package platform

import "time"

// Bus is the parallel digital output bus.
type Bus interface {
	SetBus(v byte)
}

// SetBusFunc is the func form of Bus.
type SetBusFunc func(byte)

// SetBus implements Bus.
func (f SetBusFunc) SetBus(v byte) {
	f(v)
}

// Delayer is the timing primitive used by pulse generators.
// Delay must not yield to a scheduler for an unbounded time; a
// non-positive duration returns immediately.
type Delayer interface {
	Delay(time.Duration)
}

// DelayFunc is the func form of Delayer.
type DelayFunc func(time.Duration)

// Delay implements Delayer.
func (f DelayFunc) Delay(d time.Duration) {
	f(d)
}

// ByteHandler is invoked once per received command byte, in the
// receive-interrupt context. It must not block or call a Delayer.
type ByteHandler interface {
	HandleByte(b byte)
}

// HandleByteFunc is the func form of ByteHandler.
type HandleByteFunc func(byte)

// HandleByte implements ByteHandler.
func (f HandleByteFunc) HandleByte(b byte) {
	f(b)
}

// Platform is everything the controller needs from the board.
type Platform interface {
	Bus
	Delayer

	// ConfigureOutput configures the output bus lines as outputs.
	ConfigureOutput() error
	// EnableReceiveInterrupt registers the handler for received bytes.
	EnableReceiveInterrupt(ByteHandler) error
	// EnableGlobalInterrupts starts delivering received bytes.
	EnableGlobalInterrupts() error
}
