package domain

import (
	"strings"
	"time"

	"hunttrack/internal/platform/clock"
	apperrors "hunttrack/internal/platform/errors"
)

// StudyLog records minutes studied on a calendar day. Several logs may share
// a date; readers sum them.
type StudyLog struct {
	ID          string
	Date        time.Time
	Minutes     int
	TopicNotes  string
	LastUpdated time.Time
}

type Patch struct {
	Date       *time.Time
	Minutes    *int
	TopicNotes *string
}

func (p Patch) Empty() bool {
	return p.Date == nil && p.Minutes == nil && p.TopicNotes == nil
}

func (l StudyLog) Apply(p Patch) StudyLog {
	if p.Date != nil {
		l.Date = *p.Date
	}
	if p.Minutes != nil {
		l.Minutes = *p.Minutes
	}
	if p.TopicNotes != nil {
		l.TopicNotes = *p.TopicNotes
	}
	return l.Normalize()
}

func (l StudyLog) Normalize() StudyLog {
	l.TopicNotes = strings.TrimSpace(l.TopicNotes)
	if !l.Date.IsZero() {
		l.Date = clock.Day(l.Date)
	}
	return l
}

func (l StudyLog) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return apperrors.Invalid("id", "required")
	}
	if l.Date.IsZero() {
		return apperrors.Invalid("date", "required")
	}
	if l.Minutes < 0 {
		return apperrors.Invalid("minutes_studied", "must not be negative, got %d", l.Minutes)
	}
	if l.LastUpdated.IsZero() {
		return apperrors.Invalid("last_updated", "required")
	}
	if l.Date.After(clock.Day(l.LastUpdated)) {
		return apperrors.Invalid("date", "%s is in the future", l.Date.Format(clock.DateLayout))
	}
	return nil
}

// Filter bounds a listing by inclusive calendar days.
type Filter struct {
	From *time.Time
	To   *time.Time
}

func (f Filter) Validate() error {
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return apperrors.Invalid("date range", "from %s is after to %s", f.From.Format(clock.DateLayout), f.To.Format(clock.DateLayout))
	}
	return nil
}
