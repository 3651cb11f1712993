package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	achievementout "hunttrack/internal/modules/achievement/adapter/out"
	apperrors "hunttrack/internal/platform/errors"
	"hunttrack/internal/platform/sqlstore"
)

func TestUnlockStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := sqlstore.Open(ctx, sqlstore.Options{Path: filepath.Join(t.TempDir(), "hunttrack.db")})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	unlocks := achievementout.NewDBRUnlockStore(store.Session(), nil)
	at := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	if err := unlocks.Unlock(ctx, []string{"time_30", "streak_3"}, at); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	got, err := unlocks.Unlocked(ctx)
	if err != nil {
		t.Fatalf("unlocked: %v", err)
	}
	if len(got) != 2 || !got["streak_3"].Equal(at) {
		t.Fatalf("unexpected unlocks: %v", got)
	}

	// a duplicate id rolls the whole batch back
	err = unlocks.Unlock(ctx, []string{"time_75", "time_30"}, at)
	if !apperrors.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
	got, _ = unlocks.Unlocked(ctx)
	if _, ok := got["time_75"]; ok {
		t.Fatalf("partial batch was committed")
	}
}
