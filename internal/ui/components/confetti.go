package components

import (
	"math/rand/v2"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/ui/theme"
)

var confettiGlyphs = []string{"*", "✦", "•", "◆", "▪", "✧", "~"}

// Confetti renders rows of scattered colored glyphs. The same frame always
// renders the same pattern so animation is driven by the caller's tick.
func Confetti(width, rows, frame int) string {
	if width <= 0 || rows <= 0 {
		return ""
	}
	r := rand.New(rand.NewPCG(uint64(frame), 0x9e3779b97f4a7c15))

	lines := make([]string, rows)
	for y := range rows {
		var b strings.Builder
		for x := 0; x < width; x++ {
			// Roughly one cell in six carries a glyph.
			if r.IntN(6) != 0 {
				b.WriteByte(' ')
				continue
			}
			g := confettiGlyphs[r.IntN(len(confettiGlyphs))]
			c := theme.ConfettiColors[r.IntN(len(theme.ConfettiColors))]
			b.WriteString(lipgloss.NewStyle().Foreground(c).Render(g))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
