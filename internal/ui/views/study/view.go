package study

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	studydto "hunttrack/internal/modules/study/dto"
	"hunttrack/internal/platform/minutes"
	"hunttrack/internal/ui/theme"
)

type StudyPort interface {
	List(ctx context.Context, input studydto.ListInput) ([]studydto.StudyLogOutput, error)
}

type LoadedMsg struct {
	Logs []studydto.StudyLogOutput
	Err  error
}

type Model struct {
	port   StudyPort
	table  table.Model
	logs   []studydto.StudyLogOutput
	err    error
	width  int
	height int
}

func New(port StudyPort) Model {
	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(theme.Sapphire).Bold(true).BorderForeground(theme.Surface1)
	styles.Selected = styles.Selected.Foreground(theme.Base).Background(theme.Lavender)
	t.SetStyles(styles)
	return Model{port: port, table: t}
}

func columns(width int) []table.Column {
	notes := max(width-12-10-4-8, 10)
	return []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Time", Width: 10},
		{Title: "Notes", Width: notes},
	}
}

func (m Model) Init() tea.Cmd { return m.Refresh() }

func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		logs, err := m.port.List(context.Background(), studydto.ListInput{})
		return LoadedMsg{Logs: logs, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetColumns(columns(m.width))
		m.table.SetHeight(max(m.height-4, 3))
	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.logs = msg.Logs
			m.table.SetRows(rows(msg.Logs))
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// rows lists the newest entries first.
func rows(logs []studydto.StudyLogOutput) []table.Row {
	out := make([]table.Row, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		l := logs[i]
		out = append(out, table.Row{l.Date, minutes.Format(l.Minutes), strings.ReplaceAll(l.TopicNotes, "\n", " ")})
	}
	return out
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Bad.Render("study logs: " + m.err.Error())
	}
	total := 0
	for _, l := range m.logs {
		total += l.Minutes
	}
	header := theme.Title.Render(fmt.Sprintf("Study log (%d entries, %s)", len(m.logs), minutes.Format(total)))
	if len(m.logs) == 0 {
		return header + "\n\n" + theme.Muted.Render("Nothing logged yet. Try  :study:log 45m reading")
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.table.View(), theme.Muted.Render(":study:log <duration> [notes]"))
}
