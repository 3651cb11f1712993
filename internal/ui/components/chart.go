package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hunttrack/internal/ui/theme"
)

// Bar is one labelled value in a chart.
type Bar struct {
	Label string
	Value int
	Color lipgloss.Color
}

const barGlyph = "█"

// HBars renders one row per bar, scaled so the largest value spans width
// cells. Non-zero values always get at least one cell.
func HBars(bars []Bar, width int) string {
	if len(bars) == 0 {
		return theme.Muted.Render("no data")
	}
	labelW, maxV := 0, 0
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
		maxV = max(maxV, b.Value)
	}
	width = max(width, 1)
	rows := make([]string, 0, len(bars))
	for _, b := range bars {
		n := scale(b.Value, maxV, width)
		style := lipgloss.NewStyle().Foreground(b.Color)
		if b.Color == "" {
			style = style.Foreground(theme.Sapphire)
		}
		label := b.Label + strings.Repeat(" ", labelW-lipgloss.Width(b.Label))
		rows = append(rows, fmt.Sprintf("%s %s %d", label, style.Render(strings.Repeat(barGlyph, n)), b.Value))
	}
	return strings.Join(rows, "\n")
}

var levels = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// Columns renders values as vertical columns height rows tall with labels
// under each column. Labels are truncated to the column width.
func Columns(bars []Bar, height, colWidth int) string {
	if len(bars) == 0 {
		return theme.Muted.Render("no data")
	}
	height = max(height, 1)
	colWidth = max(colWidth, 1)
	maxV := 0
	for _, b := range bars {
		maxV = max(maxV, b.Value)
	}
	steps := len(levels) - 1
	lines := make([]string, height)
	for row := 0; row < height; row++ {
		var sb strings.Builder
		floor := (height - 1 - row) * steps
		for _, b := range bars {
			units := scale(b.Value, maxV, height*steps)
			cell := units - floor
			switch {
			case cell <= 0:
				sb.WriteString(strings.Repeat(" ", colWidth))
			case cell >= steps:
				sb.WriteString(colorOf(b).Render(strings.Repeat(levels[steps], colWidth)))
			default:
				sb.WriteString(colorOf(b).Render(strings.Repeat(levels[cell], colWidth)))
			}
			sb.WriteString(" ")
		}
		lines[row] = strings.TrimRight(sb.String(), " ")
	}
	var labels strings.Builder
	for _, b := range bars {
		label := b.Label
		if lipgloss.Width(label) > colWidth {
			label = string([]rune(label)[:colWidth])
		}
		labels.WriteString(label + strings.Repeat(" ", colWidth-lipgloss.Width(label)) + " ")
	}
	return strings.Join(lines, "\n") + "\n" + theme.Muted.Render(strings.TrimRight(labels.String(), " "))
}

// Gauge renders fraction (clamped to 0..1) as a filled track width cells wide.
func Gauge(fraction float64, width int) string {
	width = max(width, 1)
	fraction = min(max(fraction, 0), 1)
	filled := int(fraction*float64(width) + 0.5)
	return theme.Good.Render(strings.Repeat(barGlyph, filled)) +
		theme.Muted.Render(strings.Repeat("░", width-filled))
}

func colorOf(b Bar) lipgloss.Style {
	if b.Color == "" {
		return lipgloss.NewStyle().Foreground(theme.Sapphire)
	}
	return lipgloss.NewStyle().Foreground(b.Color)
}

func scale(v, maxV, width int) int {
	if v <= 0 || maxV <= 0 {
		return 0
	}
	n := v * width / maxV
	if n == 0 {
		n = 1
	}
	return n
}
