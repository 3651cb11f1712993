// Package domain derives dashboard aggregates from a read snapshot of the
// record store. Every function is pure; nothing here is cached.
package domain

import (
	"fmt"
	"sort"
	"time"

	"hunttrack/internal/platform/clock"
)

// ApplicationRecord is the slice of a job application the metrics read.
type ApplicationRecord struct {
	Status      string
	AppliedDate time.Time
	LastUpdated time.Time
}

type StudyRecord struct {
	Date    time.Time
	Minutes int
}

type StatusCount struct {
	Status string
	Count  int
}

// StatusDistribution counts applications per status in configured order.
// Every configured status appears, zero or not. Stored statuses that are no
// longer configured follow in name order so the counts always add up to
// len(applications).
func StatusDistribution(statuses []string, applications []ApplicationRecord) []StatusCount {
	counts := make(map[string]int, len(statuses))
	for _, a := range applications {
		counts[a.Status]++
	}
	out := make([]StatusCount, 0, len(statuses))
	seen := make(map[string]struct{}, len(statuses))
	for _, status := range statuses {
		out = append(out, StatusCount{Status: status, Count: counts[status]})
		seen[status] = struct{}{}
	}
	extra := make([]string, 0)
	for status := range counts {
		if _, ok := seen[status]; !ok {
			extra = append(extra, status)
		}
	}
	sort.Strings(extra)
	for _, status := range extra {
		out = append(out, StatusCount{Status: status, Count: counts[status]})
	}
	return out
}

type WeekCount struct {
	WeekStart time.Time
	Label     string
	Count     int
}

// WeeklyTrend buckets applications by the ISO week of their applied date,
// zero-filling every week between the first and the last observed one.
func WeeklyTrend(applications []ApplicationRecord) []WeekCount {
	if len(applications) == 0 {
		return []WeekCount{}
	}
	counts := map[string]int{}
	first, last := time.Time{}, time.Time{}
	for _, a := range applications {
		start := clock.WeekStart(a.AppliedDate)
		counts[dateKey(start)]++
		if first.IsZero() || start.Before(first) {
			first = start
		}
		if last.IsZero() || start.After(last) {
			last = start
		}
	}
	out := []WeekCount{}
	for week := first; !week.After(last); week = week.AddDate(0, 0, 7) {
		out = append(out, WeekCount{WeekStart: week, Label: WeekLabel(week), Count: counts[dateKey(week)]})
	}
	return out
}

// WeekLabel renders the ISO week of day as "2026-W07".
func WeekLabel(day time.Time) string {
	year, week := day.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

type DayTotal struct {
	Date    time.Time
	Minutes int
}

// DailyTotals sums minutes per calendar day, ascending. Several logs on one
// day add up.
func DailyTotals(logs []StudyRecord) []DayTotal {
	sums := map[string]int{}
	days := map[string]time.Time{}
	for _, l := range logs {
		day := clock.Day(l.Date)
		key := dateKey(day)
		sums[key] += l.Minutes
		days[key] = day
	}
	out := make([]DayTotal, 0, len(sums))
	for key, day := range days {
		out = append(out, DayTotal{Date: day, Minutes: sums[key]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Series returns the totals of the n days ending at end, zero-filled.
func Series(totals []DayTotal, end time.Time, n int) []DayTotal {
	index := indexTotals(totals)
	end = clock.Day(end)
	out := make([]DayTotal, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		out = append(out, DayTotal{Date: day, Minutes: index[dateKey(day)]})
	}
	return out
}

// DayProgress is the day's total minus the daily target.
func DayProgress(totals []DayTotal, day time.Time, dailyTarget int) int {
	return indexTotals(totals)[dateKey(clock.Day(day))] - dailyTarget
}

// WeekMinutes sums the ISO week (Monday through Sunday) containing day.
func WeekMinutes(totals []DayTotal, day time.Time) int {
	index := indexTotals(totals)
	start := clock.WeekStart(day)
	sum := 0
	for i := 0; i < 7; i++ {
		sum += index[dateKey(start.AddDate(0, 0, i))]
	}
	return sum
}

// WeekProgress is WeekMinutes minus seven daily targets.
func WeekProgress(totals []DayTotal, day time.Time, dailyTarget int) int {
	return WeekMinutes(totals, day) - 7*dailyTarget
}

func indexTotals(totals []DayTotal) map[string]int {
	index := make(map[string]int, len(totals))
	for _, t := range totals {
		index[dateKey(t.Date)] += t.Minutes
	}
	return index
}

func dateKey(t time.Time) string {
	return t.Format(clock.DateLayout)
}
