package actuator

import (
	"time"

	"github.com/robotalks/actuator.go/pkg/l0/platform"
)

// Servo bus values.
const (
	SelectNone byte = 0
	SelectX    byte = 1
	SelectY    byte = 2
)

// Servo timing.
const (
	ServoBuffer  = 550 * time.Microsecond
	ServoTick    = 180 * time.Microsecond
	ServoIdleGap = 10 * time.Millisecond
)

// ServoGenerator produces the two-axis pulse-position frame.
type ServoGenerator struct {
	State *ServoState
}

// NewServoGenerator creates a ServoGenerator.
func NewServoGenerator(s *ServoState) *ServoGenerator {
	return &ServoGenerator{State: s}
}

// Cycle runs one frame: X pulse, Y pulse, idle gap.
func (g *ServoGenerator) Cycle(bus platform.Bus, delayer platform.Delayer) {
	pulse(bus, delayer, SelectX, g.State.XPulseCount())
	pulse(bus, delayer, SelectY, g.State.YPulseCount())
	bus.SetBus(SelectNone)
	delayer.Delay(ServoIdleGap)
}

func pulse(bus platform.Bus, delayer platform.Delayer, sel byte, count int) {
	bus.SetBus(sel)
	delayer.Delay(ServoBuffer)
	delayer.Delay(time.Duration(count) * ServoTick)
}

// FramePeriod computes the frame period for the given pulse counts.
// Negative counts contribute nothing, as the delay primitive returns
// immediately for them.
func FramePeriod(x, y int) time.Duration {
	period := 2*ServoBuffer + ServoIdleGap
	for _, n := range []int{x, y} {
		if n > 0 {
			period += time.Duration(n) * ServoTick
		}
	}
	return period
}
