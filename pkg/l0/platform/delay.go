package platform

import "time"

// SpinDelayer busy-waits on the monotonic clock.
type SpinDelayer struct{}

// Delay implements Delayer.
func (SpinDelayer) Delay(d time.Duration) {
	if d <= 0 {
		return
	}
	start := time.Now()
	for time.Since(start) < d {
	}
}

// NopDelayer returns immediately.
type NopDelayer struct{}

// Delay implements Delayer.
func (NopDelayer) Delay(time.Duration) {}
