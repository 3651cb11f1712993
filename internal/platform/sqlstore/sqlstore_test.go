package sqlstore_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gocraft/dbr/v2"
	"go.uber.org/zap"

	"hunttrack/internal/platform/sqlstore"
)

func TestOpenSQLiteCreatesSchema(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "hunttrack.db")
	store, err := sqlstore.Open(context.Background(), sqlstore.Options{Path: path, Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if store.Driver() != sqlstore.DriverSQLite {
		t.Fatalf("unexpected driver %s", store.Driver())
	}
	for _, table := range []string{"job_applications", "study_logs", "achievement_unlocks"} {
		var count int
		err := store.Session().Select("COUNT(*)").From(table).LoadOneContext(context.Background(), &count)
		if err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
	}

	// reopening must not fail on existing tables
	again, err := sqlstore.Open(context.Background(), sqlstore.Options{Path: path})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	_ = again.Close()
}

func TestInTxRollsBackOnError(t *testing.T) {
	t.Parallel()
	store, err := sqlstore.Open(context.Background(), sqlstore.Options{Path: filepath.Join(t.TempDir(), "tx.db")})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	ctx := context.Background()
	boom := errors.New("boom")

	err = sqlstore.InTx(ctx, store.Session(), func(tx *dbr.Tx) error {
		if _, err := tx.InsertInto("achievement_unlocks").
			Pair("id", "study_30h").
			Pair("unlocked_at", "2026-01-01T00:00:00Z").
			ExecContext(ctx); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	var count int
	if err := store.Session().Select("COUNT(*)").From("achievement_unlocks").LoadOneContext(ctx, &count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback, found %d rows", count)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	t.Parallel()
	if _, err := sqlstore.Open(context.Background(), sqlstore.Options{Driver: "mysql"}); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := sqlstore.Open(context.Background(), sqlstore.Options{Driver: sqlstore.DriverPostgres}); err == nil {
		t.Fatalf("expected missing dsn error")
	}
}
