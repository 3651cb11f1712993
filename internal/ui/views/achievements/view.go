package achievements

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	achievementdto "hunttrack/internal/modules/achievement/dto"
	"hunttrack/internal/ui/components"
	"hunttrack/internal/ui/theme"
)

type AchievementPort interface {
	List(ctx context.Context) ([]achievementdto.AchievementOutput, error)
}

type LoadedMsg struct {
	Items []achievementdto.AchievementOutput
	Err   error
}

type Model struct {
	port  AchievementPort
	items []achievementdto.AchievementOutput
	err   error
	width int
}

func New(port AchievementPort) Model { return Model{port: port} }

func (m Model) Init() tea.Cmd { return m.Refresh() }

func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		items, err := m.port.List(context.Background())
		return LoadedMsg{Items: items, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case LoadedMsg:
		m.items, m.err = msg.Items, msg.Err
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Bad.Render("achievements: " + m.err.Error())
	}
	unlocked := 0
	for _, a := range m.items {
		if a.Unlocked {
			unlocked++
		}
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("Achievements %d/%d", unlocked, len(m.items))) + "\n\n")
	gaugeW := max(m.width/4, 10)
	for _, a := range m.items {
		mark := theme.Muted.Render("○")
		title := theme.Muted.Render(a.Title)
		if a.Unlocked {
			mark = theme.Good.Render("●")
			title = theme.Hot.Render(a.Title)
		}
		sb.WriteString(fmt.Sprintf("%s %s  %s %3.0f%%\n", mark, title, components.Gauge(a.Progress, gaugeW), a.Progress*100))
		detail := a.Description
		if a.Unlocked && a.UnlockedAt != "" {
			detail += "  unlocked " + a.UnlockedAt
		}
		sb.WriteString("   " + theme.Muted.Render(detail) + "\n")
	}
	return sb.String()
}
