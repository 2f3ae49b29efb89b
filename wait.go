package macperms

import (
	"context"
	"time"
)

// DefaultWaitInterval is the polling interval used by Wait when interval
// is not positive.
const DefaultWaitInterval = 500 * time.Millisecond

// Wait polls the check for p until it reports granted or ctx is done.
// It never re-sends the request; pair it with a prior Request call when a
// prompt should be shown.
func Wait(ctx context.Context, c Checker, p Permission, env HostEnv, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultWaitInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		ok, err := Check(c, p, env)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
