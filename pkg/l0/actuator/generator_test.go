package actuator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/actuator.go/pkg/l0/platform/sim"
)

const testTick = time.Microsecond

func newMotorOnSim(t *testing.T, strict bool) (*Motor, *sim.Platform) {
	m := NewMotor()
	m.Generator.Tick = testTick
	m.Generator.StrictOffGuard = strict
	p := sim.New()
	require.NoError(t, NewController(p, m).Init())
	p.Reset()
	return m, p
}

func seg(v byte, ticks int) sim.Segment {
	return sim.Segment{Value: v, Duration: time.Duration(ticks) * testTick}
}

func TestMotorGeneratorCycle(t *testing.T) {
	testCases := []struct {
		name   string
		in     []byte
		expect []sim.Segment
	}{
		{"power on neutral", nil, []sim.Segment{seg(2, 10)}},
		{"neutral reverse", []byte{64}, []sim.Segment{seg(2, 10)}},
		{"reverse", []byte{70}, []sim.Segment{seg(7, 16), seg(2, 4)}},
		{"forward", []byte{35}, []sim.Segment{seg(11, 13), seg(2, 7)}},
		{"full duty skips off phase", []byte{74}, []sim.Segment{seg(7, 20)}},
		{"led off", []byte{128, 70}, []sim.Segment{seg(5, 16), seg(0, 4)}},
		{"led off neutral", []byte{128}, []sim.Segment{seg(0, 10)}},
		{"forward max byte", []byte{63}, []sim.Segment{seg(11, 41), seg(2, -21)}},
		{"forward underflow", []byte{0}, []sim.Segment{seg(11, -22), seg(2, 42)}},
	}
	for _, tc := range testCases {
		for _, strict := range []bool{false, true} {
			name := tc.name
			if strict {
				name += " strict"
			}
			t.Run(name, func(t *testing.T) {
				m, p := newMotorOnSim(t, strict)
				require.True(t, p.Inject(tc.in...) || len(tc.in) == 0)
				m.Cycle(p, p)
				require.Equal(t, tc.expect, p.Segments())
			})
		}
	}
}

func TestMotorGeneratorScenario(t *testing.T) {
	m, p := newMotorOnSim(t, false)
	p.Inject(200)
	p.Inject(200, 70, 200)
	require.Equal(t, MotorSnapshot{
		OnDuration:  16,
		OffDuration: 4,
		OutputLevel: LevelReverse,
		LEDMask:     LEDDisabled,
	}, m.State.Snapshot())
	m.Cycle(p, p)
	require.Equal(t, []sim.Segment{seg(5, 16), seg(0, 4)}, p.Segments())
}

// The firmware guards the off phase on onDuration rather than
// offDuration. The guards only disagree when the duty invariant is
// broken, which the decoder never does.
func TestMotorGeneratorOffGuardQuirk(t *testing.T) {
	for _, strict := range []bool{false, true} {
		m, p := newMotorOnSim(t, strict)
		m.State.outputLevel.Store(LevelForward)
		m.State.onDuration.Store(MotorPeriod)
		m.State.offDuration.Store(5)
		m.Cycle(p, p)
		if strict {
			require.Equal(t, []sim.Segment{seg(11, 20), seg(2, 5)}, p.Segments())
		} else {
			require.Equal(t, []sim.Segment{seg(11, 20)}, p.Segments())
		}

		p.Reset()
		m.State.onDuration.Store(15)
		m.State.offDuration.Store(0)
		m.Cycle(p, p)
		if strict {
			require.Equal(t, []sim.Segment{seg(11, 15)}, p.Segments())
		} else {
			require.Equal(t, []sim.Segment{seg(11, 15), seg(2, 0)}, p.Segments())
		}
	}
}

func TestMotorGeneratorPhaseLatency(t *testing.T) {
	m, p := newMotorOnSim(t, false)
	p.Inject(70)
	var injected bool
	p.OnDelay = func(p *sim.Platform, now time.Duration) {
		if !injected {
			injected = true
			// arrives during the on phase.
			p.Inject(66)
		}
	}
	m.Cycle(p, p)
	// on phase keeps its captured 16 ticks, off phase sees the new 8.
	require.Equal(t, []sim.Segment{seg(7, 16), seg(2, 8)}, p.Segments())

	p.Reset()
	m.Cycle(p, p)
	require.Equal(t, []sim.Segment{seg(7, 12), seg(2, 8)}, p.Segments())
}

func TestMotorGeneratorNonNegativeForValidCommands(t *testing.T) {
	var cmds []byte
	for b := 32; b <= 42; b++ {
		cmds = append(cmds, byte(b))
	}
	for b := 64; b <= 74; b++ {
		cmds = append(cmds, byte(b))
	}
	for _, b := range cmds {
		m, p := newMotorOnSim(t, false)
		p.Inject(b)
		m.Cycle(p, p)
		for _, d := range p.Delays() {
			require.Truef(t, d >= 0, "byte %d delay %v", b, d)
		}
		var total time.Duration
		for _, s := range p.Segments() {
			total += s.Duration
		}
		if m.State.OnDuration() == NeutralOnDuration {
			require.Equal(t, 10*testTick, total)
		} else {
			require.Equal(t, MotorPeriod*testTick, total)
		}
	}
}

func newServoOnSim(t *testing.T) (*Servo, *sim.Platform) {
	s := NewServo()
	p := sim.New()
	require.NoError(t, NewController(p, s).Init())
	p.Reset()
	return s, p
}

func TestServoGeneratorCycle(t *testing.T) {
	testCases := []struct {
		name   string
		in     []byte
		expect []sim.Segment
	}{
		{
			name: "power on",
			expect: []sim.Segment{
				{Value: SelectX, Duration: ServoBuffer},
				{Value: SelectY, Duration: ServoBuffer},
				{Value: SelectNone, Duration: ServoIdleGap},
			},
		},
		{
			name: "both axes",
			in:   []byte{70, 40},
			expect: []sim.Segment{
				{Value: SelectX, Duration: ServoBuffer + 4*ServoTick},
				{Value: SelectY, Duration: ServoBuffer + 2*ServoTick},
				{Value: SelectNone, Duration: ServoIdleGap},
			},
		},
		{
			name: "ignored bytes",
			in:   []byte{64, 5, 31},
			expect: []sim.Segment{
				{Value: SelectX, Duration: ServoBuffer + 10*ServoTick},
				{Value: SelectY, Duration: ServoBuffer},
				{Value: SelectNone, Duration: ServoIdleGap},
			},
		},
		{
			name: "negative count",
			in:   []byte{63},
			expect: []sim.Segment{
				{Value: SelectX, Duration: ServoBuffer},
				{Value: SelectY, Duration: ServoBuffer - 21*ServoTick},
				{Value: SelectNone, Duration: ServoIdleGap},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, p := newServoOnSim(t)
			p.Inject(tc.in...)
			s.Cycle(p, p)
			require.Equal(t, tc.expect, p.Segments())
			require.Equal(t, FramePeriod(s.State.XPulseCount(), s.State.YPulseCount()), p.Now())
		})
	}
}

func TestServoGeneratorPhaseLatency(t *testing.T) {
	s, p := newServoOnSim(t)
	p.Inject(70, 40)
	var injected bool
	p.OnDelay = func(p *sim.Platform, now time.Duration) {
		if !injected {
			injected = true
			// X buffer in progress.
			p.Inject(64, 32)
		}
	}
	s.Cycle(p, p)
	require.Equal(t, []sim.Segment{
		{Value: SelectX, Duration: ServoBuffer + 4*ServoTick},
		{Value: SelectY, Duration: ServoBuffer + 10*ServoTick},
		{Value: SelectNone, Duration: ServoIdleGap},
	}, p.Segments())
}

func TestFramePeriod(t *testing.T) {
	require.Equal(t, 11100*time.Microsecond, FramePeriod(0, 0))
	require.Equal(t, 14700*time.Microsecond, FramePeriod(10, 10))
	require.Equal(t, FramePeriod(0, 0), FramePeriod(-5, -181))
	require.True(t, FramePeriod(10, 10) > ServoIdleGap)
}
