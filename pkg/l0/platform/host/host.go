// Package host runs an L0 controller on a Linux host: the receive
// interrupt is emulated by a reader goroutine and outputs are traced.
package host

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/actuator.go/pkg/framework"
	"github.com/robotalks/actuator.go/pkg/l0/platform"
)

// ErrNotConfigured indicates the init sequence was not followed.
var ErrNotConfigured = errors.New("output bus not configured")

// Platform implements platform.Platform on a host.
type Platform struct {
	// Source provides command bytes, e.g. a serial port. Optional.
	Source io.Reader
	// Delayer is the timing primitive, SpinDelayer by default.
	Delayer platform.Delayer
	// Output receives bus writes. Optional.
	Output platform.Bus

	bus        atomic.Uint32
	configured atomic.Bool
	enabled    atomic.Bool
	received   atomic.Uint64
	dropped    atomic.Uint64
	handler    platform.ByteHandler
	lock       sync.RWMutex
}

// New creates a Platform reading command bytes from src.
func New(src io.Reader) *Platform {
	return &Platform{Source: src, Delayer: platform.SpinDelayer{}}
}

// ConfigureOutput implements Platform.
func (p *Platform) ConfigureOutput() error {
	p.configured.Store(true)
	return nil
}

// EnableReceiveInterrupt implements Platform.
func (p *Platform) EnableReceiveInterrupt(h platform.ByteHandler) error {
	if !p.configured.Load() {
		return ErrNotConfigured
	}
	p.lock.Lock()
	p.handler = h
	p.lock.Unlock()
	return nil
}

// EnableGlobalInterrupts implements Platform.
func (p *Platform) EnableGlobalInterrupts() error {
	p.enabled.Store(true)
	return nil
}

// SetBus implements Bus.
func (p *Platform) SetBus(v byte) {
	if old := p.bus.Swap(uint32(v)); old != uint32(v) && glog.V(4) {
		glog.Infof("BUS %02x", v)
	}
	if out := p.Output; out != nil {
		out.SetBus(v)
	}
}

// Delay implements Delayer.
func (p *Platform) Delay(d time.Duration) {
	if p.Delayer != nil {
		p.Delayer.Delay(d)
		return
	}
	platform.SpinDelayer{}.Delay(d)
}

// Bus returns the last value written to the bus.
func (p *Platform) Bus() byte {
	return byte(p.bus.Load())
}

// HandleByte delivers a received byte to the registered handler. Bytes
// received before interrupts are enabled are dropped. It implements
// platform.ByteHandler so other transports can feed the same path.
func (p *Platform) HandleByte(b byte) {
	p.lock.RLock()
	h := p.handler
	p.lock.RUnlock()
	if h == nil || !p.enabled.Load() {
		p.dropped.Add(1)
		glog.V(2).Infof("dropped byte %d: interrupts disabled", b)
		return
	}
	p.received.Add(1)
	h.HandleByte(b)
}

// Received returns the number of bytes delivered to the handler.
func (p *Platform) Received() uint64 {
	return p.received.Load()
}

// Dropped returns the number of bytes dropped.
func (p *Platform) Dropped() uint64 {
	return p.dropped.Load()
}

// Run implements Runnable. It reads Source until EOF and then waits for
// ctx, so a closed source never stops the rest of the controller.
func (p *Platform) Run(ctx context.Context) error {
	if p.Source != nil {
		var err error
		if closer, ok := p.Source.(io.Closer); ok {
			err = fx.RunWithContextCloser(ctx, closer, p.readLoop)
		} else {
			err = fx.RunWithContext(ctx, p.readLoop)
		}
		if err != nil {
			return err
		}
	}
	<-ctx.Done()
	return ctx.Err()
}

func (p *Platform) readLoop() error {
	buf := make([]byte, 64)
	for {
		n, err := p.Source.Read(buf)
		for _, b := range buf[:n] {
			p.HandleByte(b)
		}
		if err == io.EOF {
			glog.Info("command source closed")
			return nil
		}
		if err != nil {
			return err
		}
	}
}
