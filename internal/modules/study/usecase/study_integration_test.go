package usecase_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	studyout "hunttrack/internal/modules/study/adapter/out"
	"hunttrack/internal/modules/study/dto"
	studyin "hunttrack/internal/modules/study/port/in"
	"hunttrack/internal/modules/study/service"
	"hunttrack/internal/modules/study/usecase"
	apperrors "hunttrack/internal/platform/errors"
	"hunttrack/internal/platform/sqlstore"
	"hunttrack/internal/platform/tx"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type fakeID struct{ n int }

func (f *fakeID) New() string {
	f.n++
	return fmt.Sprintf("log-%03d", f.n)
}

type countingListener struct{ calls int }

func (c *countingListener) StudyLogsChanged(context.Context) { c.calls++ }

func newInteractor(t *testing.T, clk *fakeClock) (studyin.Usecase, *countingListener) {
	t.Helper()
	store, err := sqlstore.Open(context.Background(), sqlstore.Options{Path: filepath.Join(t.TempDir(), "study.db")})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	listener := &countingListener{}
	svc := service.NewStudyService(clk, &fakeID{}, tx.NewSerialManager(), studyout.NewDBRRepository(store.Session(), nil))
	return usecase.NewInteractor(svc, listener), listener
}

func TestLogParsesDurationsAndDefaultsToToday(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 4, 9, 20, 0, 0, 0, time.UTC)}}
	uc, listener := newInteractor(t, clk)
	ctx := context.Background()

	out, err := uc.Log(ctx, dto.LogInput{Duration: "1h 30m", TopicNotes: "system design"})
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if out.Minutes != 90 || out.Date != "2026-04-09" || out.ID != "log-001" {
		t.Fatalf("unexpected output: %+v", out)
	}

	plain, err := uc.Log(ctx, dto.LogInput{Date: "2026-04-08", Minutes: 45})
	if err != nil {
		t.Fatalf("log minutes: %v", err)
	}
	if plain.Minutes != 45 {
		t.Fatalf("expected 45, got %d", plain.Minutes)
	}
	if listener.calls != 2 {
		t.Fatalf("expected 2 notifications, got %d", listener.calls)
	}

	if _, err := uc.Log(ctx, dto.LogInput{Minutes: -1}); !apperrors.IsValidation(err) {
		t.Fatalf("expected negative minutes rejected, got %v", err)
	}
	if _, err := uc.Log(ctx, dto.LogInput{Duration: "a while"}); !apperrors.IsValidation(err) {
		t.Fatalf("expected bad duration rejected, got %v", err)
	}
	if _, err := uc.Log(ctx, dto.LogInput{Date: "2026-04-10", Minutes: 10}); !apperrors.IsValidation(err) {
		t.Fatalf("expected future date rejected, got %v", err)
	}
}

func TestMultipleLogsPerDateAreKeptAndOrdered(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 4, 9, 20, 0, 0, 0, time.UTC)}}
	uc, _ := newInteractor(t, clk)
	ctx := context.Background()
	for _, in := range []dto.LogInput{
		{Date: "2026-04-07", Minutes: 20},
		{Date: "2026-04-05", Minutes: 30},
		{Date: "2026-04-07", Minutes: 40},
	} {
		if _, err := uc.Log(ctx, in); err != nil {
			t.Fatalf("log: %v", err)
		}
	}
	logs, err := uc.List(ctx, dto.ListInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(logs))
	}
	if logs[0].Date != "2026-04-05" || logs[1].ID != "log-001" || logs[2].ID != "log-003" {
		t.Fatalf("unexpected order: %+v", logs)
	}

	ranged, err := uc.List(ctx, dto.ListInput{From: "2026-04-06", To: "2026-04-07"})
	if err != nil {
		t.Fatalf("ranged: %v", err)
	}
	if len(ranged) != 2 {
		t.Fatalf("expected 2 logs in range, got %d", len(ranged))
	}
}

func TestUpdateDeleteAndReset(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{
		time.Date(2026, 4, 9, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 9, 9, 0, 0, 0, time.UTC),
	}}
	uc, _ := newInteractor(t, clk)
	ctx := context.Background()
	created, err := uc.Log(ctx, dto.LogInput{Minutes: 25, TopicNotes: "sql"})
	if err != nil {
		t.Fatalf("log: %v", err)
	}

	duration := "0:50"
	updated, err := uc.Update(ctx, dto.UpdateInput{ID: created.ID, Duration: &duration})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Minutes != 50 || updated.TopicNotes != "sql" || updated.LastUpdated != "2026-04-09T09:00:00Z" {
		t.Fatalf("unexpected update: %+v", updated)
	}

	negative := -3
	if _, err := uc.Update(ctx, dto.UpdateInput{ID: created.ID, Minutes: &negative}); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	got, err := uc.Get(ctx, created.ID)
	if err != nil || got.Minutes != 50 {
		t.Fatalf("rejected update must not persist: %+v %v", got, err)
	}

	if _, err := uc.Update(ctx, dto.UpdateInput{ID: "missing", Minutes: &negative}); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := uc.Delete(ctx, "missing"); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	reset, err := uc.Reset(ctx)
	if err != nil || reset.Deleted != 0 {
		t.Fatalf("reset: %+v %v", reset, err)
	}
}
