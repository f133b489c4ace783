package poll_test

import (
	"context"
	"testing"
	"time"

	"github.com/nais/springapps-orchestrator/internal/poll"
	"github.com/stretchr/testify/assert"
	clocktesting "k8s.io/utils/clock/testing"
)

func TestWait(t *testing.T) {
	t.Run("returns when the interval has passed", func(t *testing.T) {
		fc := clocktesting.NewFakeClock(time.Now())
		done := make(chan error)
		go func() {
			done <- poll.Wait(context.Background(), fc, 10*time.Second)
		}()

		for !fc.HasWaiters() {
			time.Sleep(time.Millisecond)
		}
		fc.Step(10 * time.Second)
		assert.NoError(t, <-done)
	})

	t.Run("returns when the context is canceled", func(t *testing.T) {
		fc := clocktesting.NewFakeClock(time.Now())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, poll.Wait(ctx, fc, time.Hour), context.Canceled)
	})
}
