package actuator

import "sync/atomic"

// Motor output levels.
const (
	LevelIdle    = 0
	LevelReverse = 5
	LevelForward = 9
)

// LED masks.
const (
	LEDDisabled = 0
	LEDEnabled  = 2
)

// Motor timing in ticks.
const (
	// MotorPeriod is onDuration + offDuration after every drive command.
	MotorPeriod = 20
	// NeutralOnDuration marks the motors idle; the on phase is skipped.
	NeutralOnDuration = 10
)

// MotorState is the control state shared by MotorDecoder and
// MotorGenerator.
type MotorState struct {
	onDuration  atomic.Int32
	offDuration atomic.Int32
	outputLevel atomic.Int32
	ledMask     atomic.Int32
}

// MotorSnapshot is a copy of MotorState for display.
type MotorSnapshot struct {
	OnDuration  int `json:"on"`
	OffDuration int `json:"off"`
	OutputLevel int `json:"level"`
	LEDMask     int `json:"led"`
}

// NewMotorState creates a MotorState with power-on defaults.
func NewMotorState() *MotorState {
	s := &MotorState{}
	s.onDuration.Store(NeutralOnDuration)
	s.offDuration.Store(MotorPeriod - NeutralOnDuration)
	s.outputLevel.Store(LevelIdle)
	s.ledMask.Store(LEDEnabled)
	return s
}

// OnDuration loads onDuration.
func (s *MotorState) OnDuration() int { return int(s.onDuration.Load()) }

// OffDuration loads offDuration.
func (s *MotorState) OffDuration() int { return int(s.offDuration.Load()) }

// OutputLevel loads outputLevel.
func (s *MotorState) OutputLevel() int { return int(s.outputLevel.Load()) }

// LEDMask loads ledMask.
func (s *MotorState) LEDMask() int { return int(s.ledMask.Load()) }

// Snapshot loads every field independently. The result is not a
// consistent view if the decoder runs concurrently.
func (s *MotorState) Snapshot() MotorSnapshot {
	return MotorSnapshot{
		OnDuration:  s.OnDuration(),
		OffDuration: s.OffDuration(),
		OutputLevel: s.OutputLevel(),
		LEDMask:     s.LEDMask(),
	}
}

// ServoState is the control state shared by ServoDecoder and
// ServoGenerator.
type ServoState struct {
	xPulseCount atomic.Int32
	yPulseCount atomic.Int32
}

// ServoSnapshot is a copy of ServoState for display.
type ServoSnapshot struct {
	XPulseCount int `json:"x"`
	YPulseCount int `json:"y"`
}

// NewServoState creates a ServoState with both axes at 0.
func NewServoState() *ServoState {
	return &ServoState{}
}

// XPulseCount loads xPulseCount.
func (s *ServoState) XPulseCount() int { return int(s.xPulseCount.Load()) }

// YPulseCount loads yPulseCount.
func (s *ServoState) YPulseCount() int { return int(s.yPulseCount.Load()) }

// Snapshot loads both fields independently.
func (s *ServoState) Snapshot() ServoSnapshot {
	return ServoSnapshot{
		XPulseCount: s.XPulseCount(),
		YPulseCount: s.YPulseCount(),
	}
}
