package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSpinDelayer(t *testing.T) {
	start := time.Now()
	SpinDelayer{}.Delay(2 * time.Millisecond)
	require.True(t, time.Since(start) >= 2*time.Millisecond)

	start = time.Now()
	SpinDelayer{}.Delay(-time.Second)
	require.True(t, time.Since(start) < time.Second)
}

func TestFuncAdapters(t *testing.T) {
	var got []byte
	var delays []time.Duration
	var bus Bus = SetBusFunc(func(v byte) { got = append(got, v) })
	var delayer Delayer = DelayFunc(func(d time.Duration) { delays = append(delays, d) })
	var handler ByteHandler = HandleByteFunc(func(b byte) { bus.SetBus(b) })

	handler.HandleByte(7)
	delayer.Delay(time.Microsecond)
	require.Equal(t, []byte{7}, got)
	require.Equal(t, []time.Duration{time.Microsecond}, delays)
}
