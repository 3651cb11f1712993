package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	achievementdto "hunttrack/internal/modules/achievement/dto"
	appdto "hunttrack/internal/modules/application/dto"
	metricsdto "hunttrack/internal/modules/metrics/dto"
	studydto "hunttrack/internal/modules/study/dto"
	"hunttrack/internal/ui/components"
	"hunttrack/internal/ui/theme"
	achievementsview "hunttrack/internal/ui/views/achievements"
	applicationsview "hunttrack/internal/ui/views/applications"
	dashboardview "hunttrack/internal/ui/views/dashboard"
	studyview "hunttrack/internal/ui/views/study"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type ApplicationPort interface {
	Add(ctx context.Context, input appdto.AddInput) (appdto.ApplicationOutput, error)
	Update(ctx context.Context, input appdto.UpdateInput) (appdto.ApplicationOutput, error)
	List(ctx context.Context, input appdto.ListInput) ([]appdto.ApplicationOutput, error)
}

type StudyPort interface {
	Log(ctx context.Context, input studydto.LogInput) (studydto.StudyLogOutput, error)
	List(ctx context.Context, input studydto.ListInput) ([]studydto.StudyLogOutput, error)
}

type MetricsPort interface {
	Dashboard(ctx context.Context) (metricsdto.DashboardOutput, error)
	Publish(ctx context.Context) (metricsdto.DashboardOutput, error)
}

type AchievementPort interface {
	Check(ctx context.Context) ([]achievementdto.AchievementOutput, error)
	List(ctx context.Context) ([]achievementdto.AchievementOutput, error)
}

type Ports struct {
	Applications ApplicationPort
	Study        StudyPort
	Metrics      MetricsPort
	Achievements AchievementPort
}

// ─── tabs ────────────────────────────────────────────────────────────────────

type tabID int

const (
	tabDashboard tabID = iota
	tabApplications
	tabStudy
	tabAchievements
	tabCount
)

var tabLabels = [tabCount]string{"Dashboard", "Applications", "Study", "Achievements"}

func tabByName(name string) (tabID, bool) {
	for i, label := range tabLabels {
		if strings.EqualFold(label, name) {
			return tabID(i), true
		}
	}
	return 0, false
}

// ─── messages ────────────────────────────────────────────────────────────────

// writeDoneMsg reports a palette action. Successful writes refresh every tab.
type writeDoneMsg struct {
	status string
	err    error
	wrote  bool
}

// ─── keys ────────────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Palette, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tab, k.Refresh}, {k.Palette, k.Help, k.Quit}}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model routes input between tabs and runs palette commands. Views only read;
// every write goes through a palette command.
type Model struct {
	ports Ports

	dashView    dashboardview.Model
	appView     applicationsview.Model
	studyView   studyview.Model
	achieveView achievementsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(ports Ports) Model {
	return Model{
		ports:       ports,
		dashView:    dashboardview.New(ports.Metrics),
		appView:     applicationsview.New(ports.Applications),
		studyView:   studyview.New(ports.Study),
		achieveView: achievementsview.New(ports.Achievements),
		activeTab:   tabDashboard,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.dashView.Init(), m.appView.Init(), m.studyView.Init(), m.achieveView.Init())
}

func (m Model) refreshAll() tea.Cmd {
	return tea.Batch(m.dashView.Refresh(), m.appView.Refresh(), m.studyView.Refresh(), m.achieveView.Refresh())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	// loads are routed to their view whichever tab is showing
	case dashboardview.LoadedMsg:
		var cmd tea.Cmd
		m.dashView, cmd = m.dashView.Update(msg)
		return m, cmd
	case applicationsview.LoadedMsg:
		var cmd tea.Cmd
		m.appView, cmd = m.appView.Update(msg)
		return m, cmd
	case studyview.LoadedMsg:
		var cmd tea.Cmd
		m.studyView, cmd = m.studyView.Update(msg)
		return m, cmd
	case achievementsview.LoadedMsg:
		var cmd tea.Cmd
		m.achieveView, cmd = m.achieveView.Update(msg)
		return m, cmd

	case writeDoneMsg:
		if msg.err != nil {
			m.status = theme.Bad.Render(msg.err.Error())
			return m, nil
		}
		m.status = msg.status
		if msg.wrote {
			return m, m.refreshAll()
		}
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if !m.appView.Filtering() {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "tab":
				m.activeTab = (m.activeTab + 1) % tabCount
				return m, nil
			case "shift+tab":
				m.activeTab = (m.activeTab + tabCount - 1) % tabCount
				return m, nil
			case "?":
				m.showHelp = true
				return m, nil
			case ":":
				return m, m.palette.Open()
			case "r":
				m.status = "refreshing"
				return m, m.refreshAll()
			}
		}
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case tabDashboard:
		m.dashView, cmd = m.dashView.Update(msg)
	case tabApplications:
		m.appView, cmd = m.appView.Update(msg)
	case tabStudy:
		m.studyView, cmd = m.studyView.Update(msg)
	case tabAchievements:
		m.achieveView, cmd = m.achieveView.Update(msg)
	}
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabApplications:
		return m.appView.View()
	case tabStudy:
		return m.studyView.View()
	case tabAchievements:
		return m.achieveView.View()
	default:
		return m.dashView.View()
	}
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		style := theme.Muted
		if i == m.activeTab {
			style = theme.Hot
		}
		parts[i] = style.Render(" " + tabLabels[i] + " ")
	}
	bar := "hunttrack  " + strings.Join(parts, theme.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	d := m.dashView.Data()
	if d.Today != "" {
		left = theme.Hot.Render(fmt.Sprintf("🔥 %d", d.Study.CurrentStreak)) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  ::command  r:refresh  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(left+strings.Repeat(" ", gap)+right)
}

// ─── palette ─────────────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "app:status":
		if len(parts) < 3 {
			m.status = "usage: app:status <id|.> <status>"
			return m, nil
		}
		id := parts[1]
		if id == "." {
			selected, ok := m.appView.Selected()
			if !ok {
				m.status = "no application selected"
				return m, nil
			}
			id = selected.ID
		}
		return m, m.setStatusCmd(id, strings.Join(parts[2:], " "))

	case "app:add":
		company, role, ok := strings.Cut(rest, "|")
		if !ok {
			m.status = "usage: app:add <company> | <role>"
			return m, nil
		}
		return m, m.addApplicationCmd(strings.TrimSpace(company), strings.TrimSpace(role))

	case "study:log":
		if len(parts) < 2 {
			m.status = "usage: study:log <duration> [notes]"
			return m, nil
		}
		duration, notes := splitDuration(rest)
		return m, m.logStudyCmd(duration, notes)

	case "achievements:check":
		m.activeTab = tabAchievements
		return m, m.checkAchievementsCmd()

	case "publish":
		return m, m.publishCmd()

	case "refresh":
		m.status = "refreshing"
		return m, m.refreshAll()

	case "tab":
		if tab, ok := tabByName(rest); ok {
			m.activeTab = tab
			return m, nil
		}
		m.status = "unknown tab: " + rest

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// splitDuration takes the leading duration off rest. "1h 30m reading" keeps
// the two-part duration together.
func splitDuration(rest string) (string, string) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", ""
	}
	n := 1
	if len(fields) > 1 && strings.HasSuffix(fields[0], "h") && strings.HasSuffix(fields[1], "m") && isDigits(strings.TrimSuffix(fields[1], "m")) {
		n = 2
	}
	return strings.Join(fields[:n], " "), strings.Join(fields[n:], " ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: max(m.height-3, 1)}
	m.dashView, _ = m.dashView.Update(sz)
	m.appView, _ = m.appView.Update(sz)
	m.studyView, _ = m.studyView.Update(sz)
	m.achieveView, _ = m.achieveView.Update(sz)
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) setStatusCmd(id, status string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.ports.Applications.Update(context.Background(), appdto.UpdateInput{ID: id, Status: &status})
		if err != nil {
			return writeDoneMsg{err: err}
		}
		return writeDoneMsg{status: fmt.Sprintf("%s → %s", out.Company, out.Status), wrote: true}
	}
}

func (m Model) addApplicationCmd(company, role string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.ports.Applications.Add(context.Background(), appdto.AddInput{Company: company, Role: role})
		if err != nil {
			return writeDoneMsg{err: err}
		}
		return writeDoneMsg{status: "added " + out.Company, wrote: true}
	}
}

func (m Model) logStudyCmd(duration, notes string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.ports.Study.Log(context.Background(), studydto.LogInput{Duration: duration, TopicNotes: notes})
		if err != nil {
			return writeDoneMsg{err: err}
		}
		return writeDoneMsg{status: fmt.Sprintf("logged %d min on %s", out.Minutes, out.Date), wrote: true}
	}
}

func (m Model) checkAchievementsCmd() tea.Cmd {
	return func() tea.Msg {
		fresh, err := m.ports.Achievements.Check(context.Background())
		if err != nil {
			return writeDoneMsg{err: err}
		}
		if len(fresh) == 0 {
			return writeDoneMsg{status: "no new achievements", wrote: true}
		}
		titles := make([]string, 0, len(fresh))
		for _, a := range fresh {
			titles = append(titles, a.Title)
		}
		return writeDoneMsg{status: "unlocked: " + strings.Join(titles, ", "), wrote: true}
	}
}

func (m Model) publishCmd() tea.Cmd {
	return func() tea.Msg {
		if _, err := m.ports.Metrics.Publish(context.Background()); err != nil {
			return writeDoneMsg{err: err}
		}
		return writeDoneMsg{status: "dashboard published"}
	}
}
