package poll

import (
	"context"
	"time"

	"k8s.io/utils/clock"
)

// Wait blocks for d on c, or until ctx is done
func Wait(ctx context.Context, c clock.Clock, d time.Duration) error {
	t := c.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C():
		return nil
	}
}
