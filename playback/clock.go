package playback

import (
	"context"
	"time"
)

// Clock is the scheduler's only view of wall time, swappable in tests.
type Clock interface {
	Now() time.Time
	// Sleep suspends for d or until ctx is done, whichever comes first.
	Sleep(ctx context.Context, d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
