package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/minefield/internal/core"
)

// palette holds one lipgloss style per core.Color, indexed by the colour value.
var palette = buildPalette()

func buildPalette() []lipgloss.Style {
	ansi := map[core.Color]string{
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

	p := make([]lipgloss.Style, core.ColorCursor+1)
	for c := range p {
		if code, ok := ansi[core.Color(c)]; ok {
			p[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		} else {
			p[c] = lipgloss.NewStyle()
		}
	}
	p[core.ColorCursor] = lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(true)
	return p
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns a Screen into styled terminal text, one line per row.
// Each row is emitted as runs of equal colour so a mostly uniform grid costs
// a handful of escape sequences per line.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var out, run strings.Builder
	current := core.ColorDefault

	flush := func() {
		if run.Len() > 0 {
			out.WriteString(styleFor(current).Render(run.String()))
			run.Reset()
		}
	}

	for x := range s.Width() {
		c := s.GetCell(x, y)
		if c.Color != current {
			flush()
			current = c.Color
		}
		run.WriteRune(c.Rune)
	}
	flush()
	return out.String()
}
