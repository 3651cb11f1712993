package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hunttrack/internal/ui/theme"
)

// PaletteSubmitMsg carries the trimmed command line when enter is pressed.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is sent when the palette is dismissed with esc.
type PaletteCancelMsg struct{}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// hints must stay in sync with the switch in app/model.go executePalette.
var paletteHints = []string{
	"app:status <id> <status>",
	"app:add <company> | <role>",
	"study:log <duration> [notes]",
	"achievements:check",
	"publish",
	"refresh",
	"tab <dashboard|applications|study|achievements>",
}

const historyLimit = 20

// Palette is a command line overlay. Up and down walk previously submitted
// commands.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
	history []string
	cursor  int
}

// NewPalette returns a hidden palette with an empty history.
func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "study:log 1h30m graphs"
	ti.CharLimit = 256
	return Palette{input: ti}
}

// Visible reports whether the palette is open.
func (p Palette) Visible() bool { return p.visible }

// Open shows the palette with a blank line and focuses the input.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.cursor = len(p.history)
	p.input.SetValue("")
	return p.input.Focus()
}

// SetWidth sets the outer width used by View.
func (p *Palette) SetWidth(w int) { p.width = w }

// Update handles keys while visible and ignores everything otherwise.
func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.close()
			p.remember(val)
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "up":
			if p.cursor > 0 {
				p.cursor--
				p.input.SetValue(p.history[p.cursor])
				p.input.CursorEnd()
			}
			return p, nil
		case "down":
			if p.cursor < len(p.history)-1 {
				p.cursor++
				p.input.SetValue(p.history[p.cursor])
			} else {
				p.cursor = len(p.history)
				p.input.SetValue("")
			}
			p.input.CursorEnd()
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

func (p *Palette) remember(val string) {
	if val == "" || (len(p.history) > 0 && p.history[len(p.history)-1] == val) {
		return
	}
	p.history = append(p.history, val)
	if len(p.history) > historyLimit {
		p.history = p.history[len(p.history)-historyLimit:]
	}
}

// Matches returns the hints for what has been typed so far.
func Matches(typed string) []string {
	typed = strings.ToLower(strings.TrimSpace(typed))
	out := []string{}
	for _, h := range paletteHints {
		verb := strings.Fields(h)[0]
		if typed == "" || strings.HasPrefix(h, typed) || strings.HasPrefix(typed, verb+" ") {
			out = append(out, h)
		}
	}
	return out
}

// View renders the input and the hints matching it, or nothing when hidden.
func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if hints := Matches(p.input.Value()); len(hints) > 0 {
		sb.WriteString("\n")
		for _, h := range hints {
			sb.WriteString(hintStyle.Render("  "+h) + "\n")
		}
	}
	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
