package actuator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/actuator.go/pkg/l0/platform"
	"github.com/robotalks/actuator.go/pkg/l0/platform/sim"
)

func TestControllerRun(t *testing.T) {
	m := NewMotor()
	m.Generator.Tick = testTick
	p := sim.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var delays int
	p.OnDelay = func(p *sim.Platform, now time.Duration) {
		delays++
		switch delays {
		case 1:
			p.Inject(70)
		case 3:
			cancel()
		}
	}
	err := NewController(p, m).Run(ctx)
	require.Equal(t, context.Canceled, err)
	require.Equal(t, []string{
		sim.CallConfigureOutput,
		sim.CallEnableReceiveInterrupt,
		sim.CallEnableGlobalInterrupts,
	}, p.Calls())
	// cancellation is only observed between cycles.
	require.Equal(t, []sim.Segment{
		{Value: 0},
		seg(2, 10),
		seg(7, 16),
		seg(2, 4),
	}, p.Segments())
}

type failingPlatform struct {
	*sim.Platform
	err error
}

func (p *failingPlatform) EnableReceiveInterrupt(platform.ByteHandler) error {
	return p.err
}

func TestControllerInitError(t *testing.T) {
	cause := errors.New("no SPI")
	p := &failingPlatform{Platform: sim.New(), err: cause}
	err := NewController(p, NewServo()).Run(context.Background())
	require.Error(t, err)
	var initErr *InitError
	require.True(t, errors.As(err, &initErr))
	require.Equal(t, "enable receive interrupt", initErr.Step)
	require.True(t, errors.Is(err, cause))
	require.Empty(t, p.Delays())
}

func TestControllerName(t *testing.T) {
	require.Equal(t, "actuator/motor", NewController(sim.New(), NewMotor()).Name())
	require.Equal(t, "actuator/servo", NewController(sim.New(), NewServo()).Name())
}

func TestConfigNewProfile(t *testing.T) {
	conf := NewConfig()
	conf.Profile = ProfileMotor
	conf.MotorTick = 5 * time.Microsecond
	conf.StrictOffGuard = true
	p, err := conf.NewProfile()
	require.NoError(t, err)
	m, ok := p.(*Motor)
	require.True(t, ok)
	require.Equal(t, 5*time.Microsecond, m.Generator.Tick)
	require.True(t, m.Generator.StrictOffGuard)
	require.Equal(t, m.State.Snapshot(), m.Snapshot())

	conf.Profile = ProfileServo
	p, err = conf.NewProfile()
	require.NoError(t, err)
	require.Equal(t, ProfileServo, p.Name())
	require.Equal(t, ServoSnapshot{}, p.Snapshot())

	conf.Profile = "stepper"
	_, err = conf.NewProfile()
	require.True(t, errors.Is(err, ErrUnknownProfile))
}
