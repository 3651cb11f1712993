package out

import (
	"context"
	"time"

	"hunttrack/internal/modules/achievement/domain"
)

type UnlockStore interface {
	Unlocked(ctx context.Context) (map[string]time.Time, error)
	Unlock(ctx context.Context, ids []string, at time.Time) error
}

type ProgressSource interface {
	Progress(ctx context.Context) (domain.Progress, error)
}
