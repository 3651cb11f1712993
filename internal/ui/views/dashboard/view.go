package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	metricsdto "hunttrack/internal/modules/metrics/dto"
	"hunttrack/internal/platform/minutes"
	"hunttrack/internal/ui/components"
	"hunttrack/internal/ui/theme"
)

type DashboardPort interface {
	Dashboard(ctx context.Context) (metricsdto.DashboardOutput, error)
}

type LoadedMsg struct {
	Dashboard metricsdto.DashboardOutput
	Err       error
}

type Model struct {
	port    DashboardPort
	data    metricsdto.DashboardOutput
	err     error
	view    viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port DashboardPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, view: viewport.New(0, 0), spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Refresh(), m.spinner.Tick)
}

// Refresh recomputes the dashboard from storage.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		d, err := m.port.Dashboard(context.Background())
		return LoadedMsg{Dashboard: d, Err: err}
	}
}

// Data is the last loaded dashboard.
func (m Model) Data() metricsdto.DashboardOutput { return m.data }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.view.Width, m.view.Height = msg.Width, msg.Height
		m.view.SetContent(m.render())
	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.data = msg.Dashboard
		}
		m.view.SetContent(m.render())
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.spinner.View()+" Crunching numbers…")
	}
	return m.view.View()
}

func (m Model) render() string {
	if m.err != nil {
		return theme.Bad.Render("dashboard: " + m.err.Error())
	}
	d := m.data
	half := max((m.width-4)/2, 30)

	feedback := theme.Pane.Width(m.width - 4).Render(theme.Hot.Render(d.Feedback.Message))

	apps := d.Applications
	appCard := theme.Pane.Width(half - 2).Render(strings.Join([]string{
		theme.Title.Render("Applications"),
		fmt.Sprintf("total %d   active %d   interviews %d (%.1f%%)", apps.Total, apps.Active, apps.Interviews, apps.InterviewRate),
		fmt.Sprintf("this week %d/%d  %s", apps.ThisWeek, apps.WeeklyGoal, components.Gauge(apps.GoalProgress, 16)),
		fmt.Sprintf("avg response %.1f days   %.1f per week", apps.AvgResponseDays, apps.RatePerWeek),
	}, "\n"))

	st := d.Study
	studyCard := theme.Pane.Width(half - 2).Render(strings.Join([]string{
		theme.Title.Render("Study"),
		fmt.Sprintf("today %s / %s  %s", minutes.Format(st.TodayMinutes), minutes.Format(st.DailyTarget), theme.Signed(st.DayProgress, minutes.Format(st.DayProgress))),
		fmt.Sprintf("week %s  %s", minutes.Format(st.WeekMinutes), theme.Signed(st.WeekProgress, minutes.Format(st.WeekProgress))),
		fmt.Sprintf("streak %d days (best %d)   consistency %.1f%%", st.CurrentStreak, st.LongestStreak, st.ConsistencyPct),
		fmt.Sprintf("total %s over %d days", minutes.Format(st.TotalMinutes), st.StudyDays),
	}, "\n"))

	statusBars := make([]components.Bar, 0, len(d.Distribution))
	for i, s := range d.Distribution {
		statusBars = append(statusBars, components.Bar{Label: s.Status, Value: s.Count, Color: theme.StatusColor(i)})
	}
	statusPane := theme.Pane.Width(half - 2).Render(theme.Title.Render("By status") + "\n" + components.HBars(statusBars, half-24))

	weeks := d.WeeklyTrend
	if len(weeks) > 8 {
		weeks = weeks[len(weeks)-8:]
	}
	weekBars := make([]components.Bar, 0, len(weeks))
	for _, w := range weeks {
		weekBars = append(weekBars, components.Bar{Label: w.Week, Value: w.Count, Color: theme.Lavender})
	}
	trendPane := theme.Pane.Width(half - 2).Render(theme.Title.Render("Weekly applications") + "\n" + components.HBars(weekBars, half-24))

	dayBars := make([]components.Bar, 0, len(d.RecentStudy))
	for _, day := range d.RecentStudy {
		label := day.Date
		if t, err := time.Parse("2006-01-02", day.Date); err == nil {
			label = t.Format("02")
		}
		color := theme.Teal
		if st.DailyTarget > 0 && day.Minutes >= st.DailyTarget {
			color = theme.Green
		}
		dayBars = append(dayBars, components.Bar{Label: label, Value: day.Minutes, Color: color})
	}
	studyPane := theme.Pane.Width(m.width - 4).Render(theme.Title.Render("Study minutes, last 14 days") + "\n" + components.Columns(dayBars, 6, 3))

	return lipgloss.JoinVertical(lipgloss.Left,
		feedback,
		lipgloss.JoinHorizontal(lipgloss.Top, appCard, studyCard),
		lipgloss.JoinHorizontal(lipgloss.Top, statusPane, trendPane),
		studyPane,
		theme.Muted.Render("generated "+d.GeneratedAt),
	)
}
