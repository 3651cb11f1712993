package domain

import (
	"fmt"
	"strings"
	"time"

	"hunttrack/internal/platform/clock"
	"hunttrack/internal/platform/minutes"
)

// ApplicationRow and StudyRow hold records in their exported text form.
type ApplicationRow struct {
	ID             string
	Company        string
	Role           string
	Status         string
	AppliedDate    string
	ResumeRef      string
	CoverLetterRef string
	Notes          string
	LastUpdated    string
}

type StudyRow struct {
	ID          string
	Date        string
	Minutes     int
	TopicNotes  string
	LastUpdated string
}

var ApplicationHeader = []string{"id", "company", "role", "status", "applied_date", "resume_ref", "cover_letter_ref", "notes", "last_updated"}

var StudyHeader = []string{"id", "date", "minutes_studied", "topic_notes", "last_updated"}

func (r ApplicationRow) Fields() []string {
	return []string{r.ID, r.Company, r.Role, r.Status, r.AppliedDate, r.ResumeRef, r.CoverLetterRef, r.Notes, r.LastUpdated}
}

func (r StudyRow) Fields() []string {
	return []string{r.ID, r.Date, fmt.Sprint(r.Minutes), r.TopicNotes, r.LastUpdated}
}

// Highlights are the dashboard figures quoted in a weekly report.
type Highlights struct {
	WeeklyGoal    int
	DailyTarget   int
	CurrentStreak int
	LongestStreak int
	Feedback      string
}

// Week is the ISO week, Monday to Sunday, containing a day.
type Week struct {
	Start time.Time
	End   time.Time
}

func WeekOf(day time.Time) Week {
	start := clock.WeekStart(day)
	return Week{Start: start, End: start.AddDate(0, 0, 6)}
}

func (w Week) Label() string {
	year, week := w.Start.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// WeeklyReport is the generated part of a weekly markdown report.
type WeeklyReport struct {
	Week         Week
	Applications []ApplicationRow
	Study        []StudyRow
	Highlights   Highlights
}

func (r WeeklyReport) StudyMinutes() int {
	total := 0
	for _, s := range r.Study {
		total += s.Minutes
	}
	return total
}

// Meta is the frontmatter the report owns. Other keys in an existing file are
// left alone.
func (r WeeklyReport) Meta(generatedAt time.Time) map[string]any {
	return map[string]any{
		"type":          "weekly-report",
		"week":          r.Week.Label(),
		"week_start":    r.Week.Start.Format(clock.DateLayout),
		"week_end":      r.Week.End.Format(clock.DateLayout),
		"applications":  len(r.Applications),
		"study_minutes": r.StudyMinutes(),
		"generated_at":  generatedAt.UTC().Format(time.RFC3339),
	}
}

// Heading starts a new report file. The reflections section belongs to the
// user.
func (r WeeklyReport) Heading() string {
	return fmt.Sprintf("# Week %s\n\n## Reflections\n\n", r.Week.Label())
}

// Markdown renders the metrics block.
func (r WeeklyReport) Markdown() string {
	var b strings.Builder
	h := r.Highlights
	fmt.Fprintf(&b, "## Applications (%d", len(r.Applications))
	if h.WeeklyGoal > 0 {
		fmt.Fprintf(&b, " of %d goal", h.WeeklyGoal)
	}
	b.WriteString(")\n\n")
	if len(r.Applications) == 0 {
		b.WriteString("No applications this week.\n")
	} else {
		b.WriteString("| Applied | Company | Role | Status |\n|---|---|---|---|\n")
		for _, a := range r.Applications {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", a.AppliedDate, cell(a.Company), cell(a.Role), a.Status)
		}
	}

	fmt.Fprintf(&b, "\n## Study (%s", minutes.Format(r.StudyMinutes()))
	if h.DailyTarget > 0 {
		fmt.Fprintf(&b, " of %s target", minutes.Format(7*h.DailyTarget))
	}
	b.WriteString(")\n\n")
	perDay := map[string]int{}
	for _, s := range r.Study {
		perDay[s.Date] += s.Minutes
	}
	for d := r.Week.Start; !d.After(r.Week.End); d = d.AddDate(0, 0, 1) {
		key := d.Format(clock.DateLayout)
		fmt.Fprintf(&b, "- %s %s: %s\n", d.Format("Mon"), key, minutes.Format(perDay[key]))
	}

	fmt.Fprintf(&b, "\nCurrent streak: %d days (longest %d)\n", h.CurrentStreak, h.LongestStreak)
	if h.Feedback != "" {
		fmt.Fprintf(&b, "\n> %s\n", h.Feedback)
	}
	return b.String()
}

func cell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "|", "\\|"), "\n", " ")
}
