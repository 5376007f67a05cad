package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pattern/internal/core"
)

// colorStyles maps palette colors to lipgloss styles. ColorBlack doubles as
// "default text": runes drawn with it render unstyled.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorBlack:     lipgloss.NewStyle(),
	core.ColorDarkGray:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorOrange:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorCyan:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrown:     lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorPink:      lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	core.ColorLime:      lipgloss.NewStyle().Foreground(lipgloss.Color("118")),
	core.ColorPurple:    lipgloss.NewStyle().Foreground(lipgloss.Color("93")),
	core.ColorTeal:      lipgloss.NewStyle().Foreground(lipgloss.Color("30")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorLightGray: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorBlack]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
