package test

import (
	"testing"
	"time"

	clocktesting "k8s.io/utils/clock/testing"
)

// NewSteppingClock returns a fake clock that is stepped by interval whenever something waits on
// it. The stepping stops when the test ends.
func NewSteppingClock(t *testing.T, interval time.Duration) *clocktesting.FakeClock {
	fc := clocktesting.NewFakeClock(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	done := make(chan struct{})
	t.Cleanup(func() { close(done) })

	go func() {
		for {
			select {
			case <-done:
				return
			default:
				if fc.HasWaiters() {
					fc.Step(interval)
				}
				time.Sleep(time.Millisecond)
			}
		}
	}()

	return fc
}

// Polls returns the number of intervals the clock has been stepped since start
func Polls(fc *clocktesting.FakeClock, start time.Time, interval time.Duration) int {
	return int(fc.Since(start) / interval)
}
