package domain

import (
	"math"
	"strings"
	"time"

	"hunttrack/internal/platform/clock"
)

const (
	ConsistencyWindowDays = 28
	ChartDays             = 14
)

// Params carries the configured targets and status groups. It is built once
// from configuration.
type Params struct {
	Statuses          []string
	InterviewStatuses []string
	ClosedStatuses    []string
	DailyTarget       int
	WeeklyGoal        int
	StreakMinimum     int
	StreakGraceDays   int
}

type ApplicationStats struct {
	Total             int
	Active            int
	Interviews        int
	InterviewRate     float64
	Responded         int
	AvgResponseDays   float64
	RatePerWeek       float64
	ThisWeek          int
	WeeklyGoal        int
	GoalProgress      float64
	RemainingThisWeek int
}

type StudyStats struct {
	TotalMinutes     int
	StudyDays        int
	AvgMinutesPerDay float64
	TodayMinutes     int
	WeekMinutes      int
	DailyTarget      int
	DayProgress      int
	WeekProgress     int
	TargetProgress   float64
	CurrentStreak    int
	LongestStreak    int
	ConsistencyPct   float64
}

// Snapshot is every aggregate the dashboard shows, computed at one instant.
type Snapshot struct {
	Today        time.Time
	Distribution []StatusCount
	WeeklyTrend  []WeekCount
	DailyTotals  []DayTotal
	Recent       []DayTotal
	Applications ApplicationStats
	Study        StudyStats
}

func (s Snapshot) HasData() bool {
	return s.Applications.Total > 0 || len(s.DailyTotals) > 0
}

// Named exposes the scalar aggregates under stable names for rule matching.
func (s Snapshot) Named() map[string]float64 {
	hasData := 0.0
	if s.HasData() {
		hasData = 1
	}
	return map[string]float64{
		"current_streak":         float64(s.Study.CurrentStreak),
		"longest_streak":         float64(s.Study.LongestStreak),
		"today_minutes":          float64(s.Study.TodayMinutes),
		"week_minutes":           float64(s.Study.WeekMinutes),
		"day_progress":           float64(s.Study.DayProgress),
		"week_progress":          float64(s.Study.WeekProgress),
		"study_progress":         s.Study.TargetProgress,
		"consistency":            s.Study.ConsistencyPct,
		"total_study_minutes":    float64(s.Study.TotalMinutes),
		"application_progress":   s.Applications.GoalProgress,
		"applications_this_week": float64(s.Applications.ThisWeek),
		"total_applications":     float64(s.Applications.Total),
		"active_applications":    float64(s.Applications.Active),
		"interview_rate":         s.Applications.InterviewRate,
		"has_data":               hasData,
	}
}

// Compute derives the full snapshot. Empty input gives zero aggregates.
func Compute(params Params, today time.Time, applications []ApplicationRecord, logs []StudyRecord) Snapshot {
	today = clock.Day(today)
	totals := DailyTotals(logs)
	return Snapshot{
		Today:        today,
		Distribution: StatusDistribution(params.Statuses, applications),
		WeeklyTrend:  WeeklyTrend(applications),
		DailyTotals:  totals,
		Recent:       Series(totals, today, ChartDays),
		Applications: ComputeApplicationStats(params, today, applications),
		Study:        ComputeStudyStats(params, today, totals),
	}
}

func ComputeApplicationStats(params Params, today time.Time, applications []ApplicationRecord) ApplicationStats {
	stats := ApplicationStats{Total: len(applications), WeeklyGoal: params.WeeklyGoal}
	interview := toSet(params.InterviewStatuses)
	closed := toSet(params.ClosedStatuses)
	initial := ""
	if len(params.Statuses) > 0 {
		initial = params.Statuses[0]
	}
	weekStart := clock.WeekStart(today)
	weekEnd := weekStart.AddDate(0, 0, 7)
	first := time.Time{}
	responseDays := 0.0
	for _, a := range applications {
		applied := clock.Day(a.AppliedDate)
		status := strings.ToLower(a.Status)
		if _, ok := closed[status]; !ok {
			stats.Active++
		}
		if _, ok := interview[status]; ok {
			stats.Interviews++
		}
		if !strings.EqualFold(a.Status, initial) && !a.LastUpdated.IsZero() {
			stats.Responded++
			days := clock.Day(a.LastUpdated).Sub(applied).Hours() / 24
			if days < 0 {
				days = 0
			}
			responseDays += days
		}
		if !applied.Before(weekStart) && applied.Before(weekEnd) {
			stats.ThisWeek++
		}
		if first.IsZero() || applied.Before(first) {
			first = applied
		}
	}
	if stats.Total > 0 {
		stats.InterviewRate = round1(float64(stats.Interviews) / float64(stats.Total) * 100)
		weeks := today.Sub(first).Hours() / 24 / 7
		if weeks < 1 {
			weeks = 1
		}
		stats.RatePerWeek = round1(float64(stats.Total) / weeks)
	}
	if stats.Responded > 0 {
		stats.AvgResponseDays = round1(responseDays / float64(stats.Responded))
	}
	if params.WeeklyGoal > 0 {
		stats.GoalProgress = round2(float64(stats.ThisWeek) / float64(params.WeeklyGoal))
		if remaining := params.WeeklyGoal - stats.ThisWeek; remaining > 0 {
			stats.RemainingThisWeek = remaining
		}
	}
	return stats
}

func ComputeStudyStats(params Params, today time.Time, totals []DayTotal) StudyStats {
	index := indexTotals(totals)
	stats := StudyStats{DailyTarget: params.DailyTarget}
	for _, t := range totals {
		stats.TotalMinutes += t.Minutes
		if t.Minutes > 0 {
			stats.StudyDays++
		}
	}
	if stats.StudyDays > 0 {
		stats.AvgMinutesPerDay = round1(float64(stats.TotalMinutes) / float64(stats.StudyDays))
	}
	stats.TodayMinutes = index[dateKey(today)]
	stats.WeekMinutes = WeekMinutes(totals, today)
	stats.DayProgress = DayProgress(totals, today, params.DailyTarget)
	stats.WeekProgress = WeekProgress(totals, today, params.DailyTarget)
	if params.DailyTarget > 0 {
		stats.TargetProgress = round2(float64(stats.TodayMinutes) / float64(params.DailyTarget))
	}
	stats.CurrentStreak = CurrentStreak(totals, today, params.StreakMinimum, params.StreakGraceDays)
	stats.LongestStreak = LongestStreak(totals, params.StreakMinimum)

	minimum := params.StreakMinimum
	if minimum < 1 {
		minimum = 1
	}
	active := 0
	for _, t := range Series(totals, today, ConsistencyWindowDays) {
		if t.Minutes >= minimum {
			active++
		}
	}
	stats.ConsistencyPct = round1(float64(active) / ConsistencyWindowDays * 100)
	return stats
}

// toSet keys statuses by lower case, matching how the status set compares them.
func toSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
