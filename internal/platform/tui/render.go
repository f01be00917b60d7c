package tui

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sprite-demo/internal/core"
)

// halfBlock draws the upper pixel as foreground and the lower as background.
const halfBlock = '▀'

// PaintHalfBlocks copies img into s at two pixels per cell. img should be
// s.Width() × 2*s.Height(); pixels outside it are left untouched.
func PaintHalfBlocks(s *core.Screen, img *image.RGBA) {
	b := img.Bounds()
	for y := 0; y < s.Height(); y++ {
		top, bottom := b.Min.Y+2*y, b.Min.Y+2*y+1
		if bottom >= b.Max.Y {
			break
		}
		for x := 0; x < s.Width() && b.Min.X+x < b.Max.X; x++ {
			u := img.RGBAAt(b.Min.X+x, top)
			l := img.RGBAAt(b.Min.X+x, bottom)
			s.Set(x, y, core.Cell{
				Rune: halfBlock,
				FG:   core.RGB(u.R, u.G, u.B),
				BG:   core.RGB(l.R, l.G, l.B),
			})
		}
	}
}

type colorPair struct {
	fg, bg core.Color
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[colorPair]lipgloss.Style)
	styleFor := func(p colorPair) lipgloss.Style {
		st, ok := styles[p]
		if !ok {
			st = lipgloss.NewStyle().
				Foreground(lipgloss.Color(p.fg.Hex())).
				Background(lipgloss.Color(p.bg.Hex()))
			styles[p] = st
		}
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.Get(x, y)
			start := colorPair{cell.FG, cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.Get(x, y)
				if (colorPair{cell.FG, cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
