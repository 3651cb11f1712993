package clock_test

import (
	"testing"
	"time"

	"hunttrack/internal/platform/clock"
)

func TestDayAndWeekStart(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 10, 17, 22, 45, 0, 0, time.UTC) // Saturday
	if got := clock.Day(at); !got.Equal(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected day: %s", got)
	}
	if got := clock.WeekStart(at); !got.Equal(time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected monday 2026-10-12, got %s", got)
	}
	sunday := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	if got := clock.WeekStart(sunday); !got.Equal(time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("sunday belongs to the week opened on monday, got %s", got)
	}
	if _, err := clock.ParseDate("17/10/2026"); err == nil {
		t.Fatalf("expected layout error")
	}
}
