// Package shell renders the chrome shared by every game: title, level
// progress, score, the flashing points badge, confetti and the
// finished-state call to action.
package shell

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/ui/components"
	"github.com/abhisek/playdeck/internal/ui/theme"
)

// Props is everything the shell needs from a game. It holds no behavior.
type Props struct {
	Title       string
	Subtitle    string
	Level       int // 1-based, 0 when there are no levels
	TotalLevels int
	Score       int
	Coins       int

	FlashPoints *int
	Confetti    bool
	// Frame drives the confetti animation.
	Frame int

	Finished    bool
	Passed      bool
	NextEnabled bool
	HasNext     bool
	PassScore   int
}

// Render wraps body in the game chrome at the given size.
func Render(p Props, body string, width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(p.Title)
	if p.Subtitle != "" {
		title += "\n" + theme.Muted.Render(p.Subtitle)
	}
	sections = append(sections, title)
	sections = append(sections, statusLine(p, cw))

	if p.Confetti {
		sections = append(sections, components.Confetti(cw, 2, p.Frame))
	}

	sections = append(sections, body)

	if p.Finished {
		sections = append(sections, finishedBanner(p, cw))
	}

	content := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(sections, "\n\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func statusLine(p Props, cw int) string {
	score := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
		Render(fmt.Sprintf("Score %d", p.Score))
	coins := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).
		Render(fmt.Sprintf("● %d", p.Coins))

	right := score + "  " + coins
	if p.FlashPoints != nil {
		right = theme.Flash.Render(fmt.Sprintf("+%d", *p.FlashPoints)) + "  " + right
	}

	barWidth := max(cw-lipgloss.Width(right)-2, 16)
	bar := components.LevelMeter(p.Level, p.TotalLevels, barWidth).View()

	return bar + "  " + right
}

func finishedBanner(p Props, cw int) string {
	var msg string
	var fg = theme.Success
	switch {
	case p.Passed && p.PassScore > 0:
		msg = "🏅 Badge earned!"
	case p.Passed:
		msg = "🎉 All done!"
	default:
		msg = fmt.Sprintf("So close! You need %d points. Try again?", p.PassScore)
		fg = theme.Accent
	}

	lines := []string{lipgloss.NewStyle().Foreground(fg).Bold(true).Render(msg)}

	var actions []string
	switch {
	case p.HasNext && p.NextEnabled:
		actions = append(actions, theme.ButtonActive.Render("▸ [n] Next game"))
	case p.HasNext:
		actions = append(actions, theme.Muted.Render("🔒 Next game"))
	}
	actions = append(actions, theme.Muted.Render("[r] Try again   [s] Summary"))
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, withGaps(actions)...))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func withGaps(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, "   ")
		}
		out = append(out, p)
	}
	return out
}
