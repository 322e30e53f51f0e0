// Package history lists the runs finished since the app started.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/rewards"
	"github.com/abhisek/playdeck/internal/router"
	"github.com/abhisek/playdeck/internal/screen"
	"github.com/abhisek/playdeck/internal/ui/layout"
	"github.com/abhisek/playdeck/internal/ui/theme"
)

// HistoryScreen displays finished runs and the badges each one earned.
type HistoryScreen struct {
	runs     []rewards.Run
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen from the wallet's runs.
func New(wallet *rewards.Wallet) *HistoryScreen {
	s := &HistoryScreen{expanded: make(map[int]bool)}
	if wallet != nil {
		s.runs = wallet.Runs()
	}
	return s
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.runs)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.runs) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games finished yet. Go play!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, run := range s.runs {
		sum := run.Summary
		mins := int(sum.Duration.Minutes())
		secs := int(sum.Duration.Seconds()) % 60

		result := "✗"
		if sum.Passed {
			result = "✓"
		}

		badgeStr := ""
		if n := len(run.Badges); n > 0 {
			badgeStr = fmt.Sprintf("  %d badge", n)
			if n > 1 {
				badgeStr += "s"
			}
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s %s  %-24s  %d:%02d  score %d  %.0f%% accuracy%s",
			prefix, run.At.Format("15:04"), result, sum.GameTitle, mins, secs,
			sum.Score, sum.Accuracy*100, badgeStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			if len(run.Badges) == 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("    No badges this run")))
				b.WriteString("\n")
				continue
			}
			for _, badge := range run.Badges {
				badgeLine := fmt.Sprintf("    %s %s %s: %s",
					badge.Type.Icon(), badge.Rarity.DisplayName(), badge.Type.DisplayName(), badge.Reason)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.Tier(badge.Rarity.Rank())).Render(badgeLine)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
