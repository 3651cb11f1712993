package applications

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appdto "hunttrack/internal/modules/application/dto"
	"hunttrack/internal/ui/theme"
)

type ApplicationPort interface {
	List(ctx context.Context, input appdto.ListInput) ([]appdto.ApplicationOutput, error)
}

type LoadedMsg struct {
	Applications []appdto.ApplicationOutput
	Err          error
}

type item struct{ app appdto.ApplicationOutput }

func (i item) Title() string       { return i.app.Company + " · " + i.app.Role }
func (i item) Description() string { return fmt.Sprintf("%s  %s", i.app.AppliedDate, i.app.Status) }
func (i item) FilterValue() string { return i.app.Company + " " + i.app.Role + " " + i.app.Status }

type Model struct {
	port   ApplicationPort
	list   list.Model
	detail viewport.Model
	width  int
	height int
}

func New(port ApplicationPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Applications"
	l.Styles.Title = theme.Title
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)
	return Model{port: port, list: l, detail: vp}
}

func (m Model) Init() tea.Cmd { return m.Refresh() }

func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		apps, err := m.port.List(context.Background(), appdto.ListInput{})
		return LoadedMsg{Applications: apps, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		listW := m.width * 45 / 100
		m.list.SetSize(listW, m.height)
		m.detail.Width = m.width - listW - 4
		m.detail.Height = m.height - 4
	case LoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Applications: " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = fmt.Sprintf("Applications (%d)", len(msg.Applications))
		items := make([]list.Item, 0, len(msg.Applications))
		// newest first
		for i := len(msg.Applications) - 1; i >= 0; i-- {
			items = append(items, item{app: msg.Applications[i]})
		}
		cmds = append(cmds, m.list.SetItems(items))
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	m.detail.SetContent(m.renderDetail())
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	listW := m.width * 45 / 100
	left := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	right := theme.Pane.Width(m.width - listW - 2).Height(m.height - 2).Render(m.detail.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) Filtering() bool { return m.list.FilterState() == list.Filtering }

// Selected returns the highlighted application.
func (m Model) Selected() (appdto.ApplicationOutput, bool) {
	if it, ok := m.list.SelectedItem().(item); ok {
		return it.app, true
	}
	return appdto.ApplicationOutput{}, false
}

func (m Model) renderDetail() string {
	a, ok := m.Selected()
	if !ok {
		return theme.Muted.Render("No applications yet. Try  :app:add Acme | Backend Engineer")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(a.Company) + "\n")
	sb.WriteString(a.Role + "\n\n")
	row := func(label, value string) {
		if value != "" {
			sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-13s", label)) + value + "\n")
		}
	}
	row("status", theme.Hot.Render(a.Status))
	row("applied", a.AppliedDate)
	row("updated", a.LastUpdated)
	row("resume", a.ResumeRef)
	row("cover letter", a.CoverLetterRef)
	row("id", a.ID)
	if a.Notes != "" {
		sb.WriteString("\n" + a.Notes + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render(":app:status "+a.ID+" <status>"))
	return sb.String()
}
