// Package sim provides a virtual platform for running L0 controllers
// without hardware or real time.
package sim

import (
	"sync"
	"time"

	"github.com/robotalks/actuator.go/pkg/l0/platform"
)

// Segment is a run of constant bus output.
// Duration is the sum of instructed delays while the bus held Value and
// may be negative if a generator instructed negative delays.
type Segment struct {
	Value    byte
	Duration time.Duration
}

// Init call names recorded by Platform.
const (
	CallConfigureOutput        = "configure-output"
	CallEnableReceiveInterrupt = "enable-receive-interrupt"
	CallEnableGlobalInterrupts = "enable-global-interrupts"
)

// Platform implements platform.Platform over a virtual clock.
type Platform struct {
	// OnDelay is called before each delay elapses, with the virtual time
	// at which the delay starts. Tests use it to inject bytes mid-phase.
	OnDelay func(p *Platform, now time.Duration)

	now        time.Duration
	bus        byte
	segments   []Segment
	delays     []time.Duration
	calls      []string
	handler    platform.ByteHandler
	interrupts bool
	lock       sync.Mutex
}

// New creates a Platform.
func New() *Platform {
	return &Platform{}
}

// ConfigureOutput implements Platform.
func (p *Platform) ConfigureOutput() error {
	p.lock.Lock()
	p.calls = append(p.calls, CallConfigureOutput)
	p.lock.Unlock()
	return nil
}

// EnableReceiveInterrupt implements Platform.
func (p *Platform) EnableReceiveInterrupt(h platform.ByteHandler) error {
	p.lock.Lock()
	p.calls = append(p.calls, CallEnableReceiveInterrupt)
	p.handler = h
	p.lock.Unlock()
	return nil
}

// EnableGlobalInterrupts implements Platform.
func (p *Platform) EnableGlobalInterrupts() error {
	p.lock.Lock()
	p.calls = append(p.calls, CallEnableGlobalInterrupts)
	p.interrupts = true
	p.lock.Unlock()
	return nil
}

// SetBus implements Bus.
func (p *Platform) SetBus(v byte) {
	p.lock.Lock()
	p.bus = v
	p.segments = append(p.segments, Segment{Value: v})
	p.lock.Unlock()
}

// Delay implements Delayer. The virtual clock only moves forward.
func (p *Platform) Delay(d time.Duration) {
	p.lock.Lock()
	now, hook := p.now, p.OnDelay
	p.lock.Unlock()
	if hook != nil {
		hook(p, now)
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.delays = append(p.delays, d)
	if n := len(p.segments); n > 0 {
		p.segments[n-1].Duration += d
	}
	if d > 0 {
		p.now += d
	}
}

// Inject delivers bytes to the receive handler as the interrupt would.
// It returns false if interrupts are not enabled yet, and the bytes are
// dropped.
func (p *Platform) Inject(bs ...byte) bool {
	p.lock.Lock()
	h, enabled := p.handler, p.interrupts
	p.lock.Unlock()
	if h == nil || !enabled {
		return false
	}
	for _, b := range bs {
		h.HandleByte(b)
	}
	return true
}

// Now returns the virtual time.
func (p *Platform) Now() time.Duration {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.now
}

// Bus returns the current bus value.
func (p *Platform) Bus() byte {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.bus
}

// Segments returns recorded bus segments.
func (p *Platform) Segments() []Segment {
	p.lock.Lock()
	defer p.lock.Unlock()
	return append([]Segment(nil), p.segments...)
}

// Delays returns every instructed delay in order.
func (p *Platform) Delays() []time.Duration {
	p.lock.Lock()
	defer p.lock.Unlock()
	return append([]time.Duration(nil), p.delays...)
}

// Calls returns the init calls in order.
func (p *Platform) Calls() []string {
	p.lock.Lock()
	defer p.lock.Unlock()
	return append([]string(nil), p.calls...)
}

// Reset clears recorded segments and delays, keeping clock and handler.
func (p *Platform) Reset() {
	p.lock.Lock()
	p.segments, p.delays = nil, nil
	p.lock.Unlock()
}
