package home

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/ui/theme"
)

// MascotVariant is Ace's mood.
type MascotVariant int

const (
	MascotIdle MascotVariant = iota
	// MascotCelebrating shows once a badge has been earned.
	MascotCelebrating
	// MascotWaving greets a player who has not finished a game yet.
	MascotWaving
)

// faces holds the eyes and mouth for each mood.
var faces = map[MascotVariant][2]string{
	MascotIdle:        {"◉ ◉", " ▽ "},
	MascotCelebrating: {"★ ★", " ▿ "},
	MascotWaving:      {"◠ ◠", " ◡ "},
}

// RenderMascot draws Ace, a playing card with a face.
func RenderMascot(v MascotVariant) string {
	f, ok := faces[v]
	if !ok {
		f = faces[MascotIdle]
	}

	lines := []string{
		"╭───────╮",
		"│A      │",
		"│  " + f[0] + "  │",
		"│  " + f[1] + "  │",
		"│      ♠│",
		"╰───────╯",
	}

	var fg color.Color = theme.Primary
	switch v {
	case MascotCelebrating:
		fg = theme.ArcadeYellow
		lines = append(lines, "  \\ ✦ /")
	case MascotWaving:
		fg = theme.ArcadeCyan
		lines[1] += " o/"
		lines[2] += " /"
	}

	return lipgloss.NewStyle().Foreground(fg).Render(strings.Join(lines, "\n"))
}
