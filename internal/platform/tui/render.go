package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-runner/internal/core"
)

type cellColors struct {
	fg, bg color.RGBA
}

// styleCache holds one lipgloss style per foreground/background pair.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) get(fg, bg color.RGBA) lipgloss.Style {
	k := cellColors{fg, bg}
	if s, ok := c[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(core.Hex(fg))).
		Background(lipgloss.Color(core.Hex(bg)))
	c[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.Get(x, y)
			fg, bg := cell.FG, cell.BG

			run.Reset()
			for x < s.Width() {
				cell = s.Get(x, y)
				if cell.FG != fg || cell.BG != bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(fg, bg).Render(run.String()))
		}
	}
	return sb.String()
}
