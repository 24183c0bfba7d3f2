package actuator

import (
	"time"

	"github.com/robotalks/actuator.go/pkg/l0/platform"
)

// DefaultMotorTick is the duration of one motor timing tick.
const DefaultMotorTick = 2 * time.Microsecond

// MotorGenerator produces the directional PWM signal.
type MotorGenerator struct {
	State *MotorState
	Tick  time.Duration

	// StrictOffGuard keys the off phase on offDuration != 0 instead of
	// the firmware's onDuration != MotorPeriod. The two agree while
	// onDuration + offDuration == MotorPeriod holds.
	StrictOffGuard bool
}

// NewMotorGenerator creates a MotorGenerator with DefaultMotorTick.
func NewMotorGenerator(s *MotorState) *MotorGenerator {
	return &MotorGenerator{State: s, Tick: DefaultMotorTick}
}

// Cycle runs one on phase and one off phase.
func (g *MotorGenerator) Cycle(bus platform.Bus, delayer platform.Delayer) {
	g.onPhase(bus, delayer)
	g.offPhase(bus, delayer)
}

func (g *MotorGenerator) onPhase(bus platform.Bus, delayer platform.Delayer) {
	on := g.State.OnDuration()
	if on == NeutralOnDuration {
		return
	}
	bus.SetBus(byte(g.State.OutputLevel() + g.State.LEDMask()))
	delayer.Delay(g.ticks(on))
}

func (g *MotorGenerator) offPhase(bus platform.Bus, delayer platform.Delayer) {
	var off int
	if g.StrictOffGuard {
		if off = g.State.OffDuration(); off == 0 {
			return
		}
	} else {
		if g.State.OnDuration() == MotorPeriod {
			return
		}
		off = g.State.OffDuration()
	}
	bus.SetBus(byte(g.State.LEDMask()))
	delayer.Delay(g.ticks(off))
}

func (g *MotorGenerator) ticks(n int) time.Duration {
	return time.Duration(n) * g.Tick
}
