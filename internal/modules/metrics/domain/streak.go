package domain

import (
	"sort"
	"time"

	"hunttrack/internal/platform/clock"
)

// StreakAt counts consecutive qualifying days ending at day, inclusive. A day
// qualifies when its total reaches minimum. A non-qualifying day yields 0.
func StreakAt(totals []DayTotal, day time.Time, minimum int) int {
	if minimum < 1 {
		minimum = 1
	}
	index := indexTotals(totals)
	streak := 0
	for cursor := clock.Day(day); index[dateKey(cursor)] >= minimum; cursor = cursor.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// CurrentStreak anchors at today when today has a total, otherwise at the
// most recent logged day if it is at most graceDays old. Anything older
// means the streak has lapsed.
func CurrentStreak(totals []DayTotal, today time.Time, minimum, graceDays int) int {
	if len(totals) == 0 {
		return 0
	}
	today = clock.Day(today)
	index := indexTotals(totals)
	if _, ok := index[dateKey(today)]; ok {
		return StreakAt(totals, today, minimum)
	}
	latest := time.Time{}
	for _, t := range totals {
		day := clock.Day(t.Date)
		if day.After(today) {
			continue
		}
		if day.After(latest) {
			latest = day
		}
	}
	if latest.IsZero() {
		return 0
	}
	if today.Sub(latest) > time.Duration(graceDays)*24*time.Hour {
		return 0
	}
	return StreakAt(totals, latest, minimum)
}

// LongestStreak is the longest run of consecutive qualifying days.
func LongestStreak(totals []DayTotal, minimum int) int {
	if minimum < 1 {
		minimum = 1
	}
	ordered := append([]DayTotal(nil), totals...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Date.Before(ordered[j].Date) })
	longest, run := 0, 0
	var prev time.Time
	for _, t := range ordered {
		day := clock.Day(t.Date)
		if t.Minutes < minimum {
			run = 0
			prev = time.Time{}
			continue
		}
		if !prev.IsZero() && day.Equal(prev.AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		prev = day
		if run > longest {
			longest = run
		}
	}
	return longest
}
