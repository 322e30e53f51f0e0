package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/game"
	"github.com/abhisek/playdeck/internal/rewards"
	"github.com/abhisek/playdeck/internal/router"
	"github.com/abhisek/playdeck/internal/screen"
	"github.com/abhisek/playdeck/internal/ui/layout"
	"github.com/abhisek/playdeck/internal/ui/theme"
)

// SummaryScreen displays the results of one run.
type SummaryScreen struct {
	summary   game.Summary
	passScore int
	badges    []rewards.Badge
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary game.Summary, passScore int, badges []rewards.Badge) *SummaryScreen {
	return &SummaryScreen{summary: summary, passScore: passScore, badges: badges}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to game"},
		{Key: "h", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "h":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	headline := "Game complete!"
	if sum.Answered < sum.Total {
		headline = "Game in progress"
	}
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), headline))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), sum.GameTitle))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Time: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d        Correct: %d/%d        Accuracy: %.0f%%",
		sum.Score, sum.Correct, sum.Answered, sum.Accuracy*100)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), statsLine))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow),
		fmt.Sprintf("● %d coins   ★ %d xp   ⚡ best streak %d", sum.Coins, sum.XP, sum.BestStreak)))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Bold(true).Foreground(verdictColor(sum.Passed)), verdict(sum, s.passScore)))
	b.WriteString("\n")

	if len(s.badges) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", max(min(width-8, 60), 0)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Badges")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, badge := range s.badges {
			line := fmt.Sprintf("  %s %s %s: %s",
				badge.Type.Icon(),
				badge.Rarity.DisplayName(),
				badge.Type.DisplayName(),
				badge.Reason)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Tier(badge.Rarity.Rank())).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func verdict(sum game.Summary, passScore int) string {
	switch {
	case sum.Perfect:
		return "🌟 Perfect run!"
	case sum.Passed && passScore > 0:
		return fmt.Sprintf("🏅 Badge earned (needed %d)", passScore)
	case sum.Passed:
		return "🎉 Well played!"
	default:
		return fmt.Sprintf("Keep practicing: %d of %d points needed", sum.Score, passScore)
	}
}

func verdictColor(passed bool) color.Color {
	if passed {
		return theme.Success
	}
	return theme.Accent
}
