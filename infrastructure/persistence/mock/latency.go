package mock

import (
	"context"
	"math/rand/v2"
	"time"
)

// simulateLatency sleeps for a bounded random interval so that generated
// response latencies look realistic. The sleep is cancellable: if the
// request context is done first, its error is returned and no further
// work happens.
func simulateLatency(ctx context.Context, min, max time.Duration) error {
	if max <= min {
		return nil
	}
	delay := min + time.Duration(rand.Int64N(int64(max-min)))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
