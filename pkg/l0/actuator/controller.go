package actuator

import (
	"context"

	"github.com/golang/glog"

	"github.com/robotalks/actuator.go/pkg/l0/platform"
)

// Controller runs a Profile on a Platform.
type Controller struct {
	Platform platform.Platform
	Profile  Profile
}

// NewController creates a Controller.
func NewController(p platform.Platform, profile Profile) *Controller {
	return &Controller{Platform: p, Profile: profile}
}

// Name implements framework.Named.
func (c *Controller) Name() string {
	return "actuator/" + c.Profile.Name()
}

// Init configures the platform in firmware order: output bus, receive
// interrupt with the profile decoder, then global interrupts.
func (c *Controller) Init() error {
	if err := c.Platform.ConfigureOutput(); err != nil {
		return &InitError{Step: "configure output", Err: err}
	}
	c.Platform.SetBus(0)
	if err := c.Platform.EnableReceiveInterrupt(c.Profile.Decoder()); err != nil {
		return &InitError{Step: "enable receive interrupt", Err: err}
	}
	if err := c.Platform.EnableGlobalInterrupts(); err != nil {
		return &InitError{Step: "enable global interrupts", Err: err}
	}
	return nil
}

// Run implements Runnable. It initializes the platform and then cycles
// the generator until ctx is done. ctx is only checked between cycles.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Init(); err != nil {
		return err
	}
	glog.Infof("%s: generator started", c.Name())
	for {
		select {
		case <-ctx.Done():
			glog.Infof("%s: generator stopped", c.Name())
			return ctx.Err()
		default:
		}
		c.Profile.Cycle(c.Platform, c.Platform)
	}
}
