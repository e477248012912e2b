package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shield-duel/internal/core"
)

// colorCodes maps core.Color to terminal color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// ScreenRenderer turns a Screen buffer into styled terminal output.
// Each SSH session gets its own renderer so color support is detected
// per client rather than from the server's stdout.
type ScreenRenderer struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewScreenRenderer builds the color styles for r.
// A nil renderer uses lipgloss's default renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &ScreenRenderer{
		styles: make(map[core.Color]lipgloss.Style, len(colorCodes)),
		plain:  r.NewStyle(),
	}
	for c, code := range colorCodes {
		sr.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return sr
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if s, ok := sr.styles[c]; ok {
		return s
	}
	return sr.plain
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
