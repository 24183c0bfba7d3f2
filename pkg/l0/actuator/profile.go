package actuator

import (
	"github.com/robotalks/actuator.go/pkg/l0/platform"
)

// Profile names.
const (
	ProfileMotor = "motor"
	ProfileServo = "servo"
)

// Profile pairs a decoder with the generator reading its state.
type Profile interface {
	Name() string
	// Decoder is registered as the receive interrupt handler.
	Decoder() platform.ByteHandler
	// Cycle produces one full output cycle.
	Cycle(platform.Bus, platform.Delayer)
	// Snapshot returns a JSON-friendly copy of the control state.
	Snapshot() interface{}
}

// Motor is the dual-channel directional PWM profile.
type Motor struct {
	State     *MotorState
	Decode    *MotorDecoder
	Generator *MotorGenerator
}

// NewMotor creates a Motor profile with power-on state.
func NewMotor() *Motor {
	s := NewMotorState()
	return &Motor{
		State:     s,
		Decode:    NewMotorDecoder(s),
		Generator: NewMotorGenerator(s),
	}
}

// Name implements Profile.
func (m *Motor) Name() string { return ProfileMotor }

// Decoder implements Profile.
func (m *Motor) Decoder() platform.ByteHandler { return m.Decode }

// Cycle implements Profile.
func (m *Motor) Cycle(bus platform.Bus, delayer platform.Delayer) {
	m.Generator.Cycle(bus, delayer)
}

// Snapshot implements Profile.
func (m *Motor) Snapshot() interface{} { return m.State.Snapshot() }

// Servo is the two-axis pulse-position profile.
type Servo struct {
	State     *ServoState
	Decode    *ServoDecoder
	Generator *ServoGenerator
}

// NewServo creates a Servo profile with both axes at 0.
func NewServo() *Servo {
	s := NewServoState()
	return &Servo{
		State:     s,
		Decode:    NewServoDecoder(s),
		Generator: NewServoGenerator(s),
	}
}

// Name implements Profile.
func (s *Servo) Name() string { return ProfileServo }

// Decoder implements Profile.
func (s *Servo) Decoder() platform.ByteHandler { return s.Decode }

// Cycle implements Profile.
func (s *Servo) Cycle(bus platform.Bus, delayer platform.Delayer) {
	s.Generator.Cycle(bus, delayer)
}

// Snapshot implements Profile.
func (s *Servo) Snapshot() interface{} { return s.State.Snapshot() }
