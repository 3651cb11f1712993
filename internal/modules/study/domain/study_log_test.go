package domain_test

import (
	"testing"
	"time"

	"hunttrack/internal/modules/study/domain"
	apperrors "hunttrack/internal/platform/errors"
)

func TestStudyLogValidate(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 2, 3, 18, 0, 0, 0, time.UTC)
	valid := domain.StudyLog{ID: "s1", Date: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), Minutes: 0, LastUpdated: now}
	if err := valid.Validate(); err != nil {
		t.Fatalf("zero minutes is valid: %v", err)
	}

	negative := valid
	negative.Minutes = -5
	if err := negative.Validate(); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	future := valid
	future.Date = now.AddDate(0, 0, 1)
	if err := future.Validate(); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	missing := valid
	missing.Date = time.Time{}
	if err := missing.Validate(); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplyTruncatesDateAndTrimsNotes(t *testing.T) {
	t.Parallel()
	base := domain.StudyLog{ID: "s1", Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), Minutes: 30, TopicNotes: "graphs"}
	when := time.Date(2026, 2, 2, 22, 15, 0, 0, time.UTC)
	notes := "  dynamic programming  "
	got := base.Apply(domain.Patch{Date: &when, TopicNotes: &notes})
	if !got.Date.Equal(time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)) || got.TopicNotes != "dynamic programming" || got.Minutes != 30 {
		t.Fatalf("unexpected apply result: %+v", got)
	}
}
