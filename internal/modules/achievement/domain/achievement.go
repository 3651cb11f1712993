package domain

import (
	"fmt"
	"sort"
	"time"
)

type Kind string

const (
	KindStudyTime Kind = "study_time"
	KindStreak    Kind = "streak"
)

// Milestone is a threshold that unlocks once. Study time thresholds are in
// minutes, streak thresholds in days.
type Milestone struct {
	ID          string
	Kind        Kind
	Threshold   int
	Title       string
	Description string
}

// Progress is what milestones are measured against.
type Progress struct {
	TotalMinutes  int
	LongestStreak int
}

func (m Milestone) value(p Progress) int {
	if m.Kind == KindStreak {
		return p.LongestStreak
	}
	return p.TotalMinutes
}

func (m Milestone) Reached(p Progress) bool {
	return m.Threshold > 0 && m.value(p) >= m.Threshold
}

// Fraction reports how far p is toward the milestone, capped at 1.
func (m Milestone) Fraction(p Progress) float64 {
	if m.Threshold <= 0 {
		return 0
	}
	f := float64(m.value(p)) / float64(m.Threshold)
	if f > 1 {
		return 1
	}
	return f
}

var hourTitles = map[int]string{
	30:  "Getting Started",
	75:  "Quarter Way There",
	150: "Halfway Point",
	225: "Final Stretch",
	300: "Fully Prepared",
}

var streakTitles = map[int]string{
	3:  "Consistency Begins",
	7:  "Solid Week",
	14: "Two Week Marathon",
	30: "Monthly Dedication",
}

// Milestones builds the catalogue from configured thresholds, study time
// first, each kind ascending. Non-positive and repeated thresholds are
// dropped.
func Milestones(studyHours, streakDays []int) []Milestone {
	out := []Milestone{}
	for _, h := range uniqueSorted(studyHours) {
		title, ok := hourTitles[h]
		if !ok {
			title = fmt.Sprintf("%d Hours In", h)
		}
		out = append(out, Milestone{
			ID:          fmt.Sprintf("time_%d", h),
			Kind:        KindStudyTime,
			Threshold:   h * 60,
			Title:       title,
			Description: fmt.Sprintf("Log %d hours of study time", h),
		})
	}
	for _, d := range uniqueSorted(streakDays) {
		title, ok := streakTitles[d]
		if !ok {
			title = fmt.Sprintf("%d Day Run", d)
		}
		out = append(out, Milestone{
			ID:          fmt.Sprintf("streak_%d", d),
			Kind:        KindStreak,
			Threshold:   d,
			Title:       title,
			Description: fmt.Sprintf("Study %d days in a row", d),
		})
	}
	return out
}

func uniqueSorted(values []int) []int {
	seen := map[int]struct{}{}
	out := []int{}
	for _, v := range values {
		if v <= 0 {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Status is a milestone together with its unlock state.
type Status struct {
	Milestone  Milestone
	Unlocked   bool
	UnlockedAt time.Time
	Fraction   float64
}
