package actuator

import (
	"sync"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/robotalks/actuator.go/pkg/l0/protocol"
)

// MotorDecoder decodes motor commands into MotorState.
// Out-of-range magnitudes are accepted as-is.
type MotorDecoder struct {
	State *MotorState

	count atomic.Uint64
	lock  sync.Mutex
}

// NewMotorDecoder creates a MotorDecoder.
func NewMotorDecoder(s *MotorState) *MotorDecoder {
	return &MotorDecoder{State: s}
}

// HandleByte implements platform.ByteHandler.
func (d *MotorDecoder) HandleByte(b byte) {
	// bytes may arrive from more than one host source, keep each
	// invocation whole. The generator never takes this lock.
	d.lock.Lock()
	defer d.lock.Unlock()
	d.count.Add(1)

	s := d.State
	tag := protocol.MotorTag(b)
	switch tag {
	case protocol.TagLEDToggle:
		if s.ledMask.Load() == LEDEnabled {
			s.ledMask.Store(LEDDisabled)
		} else {
			s.ledMask.Store(LEDEnabled)
		}
	case protocol.TagReverse:
		d.drive(LevelReverse, protocol.Magnitude(tag, b))
	default:
		// bytes below 32 give a negative magnitude.
		d.drive(LevelForward, protocol.Magnitude(tag, b))
	}
	if glog.V(4) {
		glog.Infof("motor cmd %d: %s", b, tag)
	}
}

func (d *MotorDecoder) drive(level, magnitude int) {
	on := int32(magnitude + NeutralOnDuration)
	d.State.outputLevel.Store(int32(level))
	d.State.onDuration.Store(on)
	d.State.offDuration.Store(MotorPeriod - on)
}

// Count returns the number of bytes decoded.
func (d *MotorDecoder) Count() uint64 {
	return d.count.Load()
}

// ServoDecoder decodes servo commands into ServoState.
type ServoDecoder struct {
	State *ServoState

	count atomic.Uint64
	lock  sync.Mutex
}

// NewServoDecoder creates a ServoDecoder.
func NewServoDecoder(s *ServoState) *ServoDecoder {
	return &ServoDecoder{State: s}
}

// HandleByte implements platform.ByteHandler.
func (d *ServoDecoder) HandleByte(b byte) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.count.Add(1)

	tag := protocol.ServoTag(b)
	switch tag {
	case protocol.TagXAxis:
		d.State.xPulseCount.Store(int32(protocol.MaxMagnitude - protocol.Magnitude(tag, b)))
	case protocol.TagYAxis:
		d.State.yPulseCount.Store(int32(protocol.MaxMagnitude - protocol.Magnitude(tag, b)))
	}
	if glog.V(4) {
		glog.Infof("servo cmd %d: %s", b, tag)
	}
}

// Count returns the number of bytes decoded, ignored ones included.
func (d *ServoDecoder) Count() uint64 {
	return d.count.Load()
}
