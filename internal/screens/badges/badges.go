// Package badges shows the badges earned this session, grouped by type.
package badges

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

// BadgesScreen displays the learner's badge collection.
type BadgesScreen struct {
	wallet       *rewards.Wallet
	all          []rewards.Badge
	selectedType int // index into AllBadgeTypes
	scrollOffset int
}

var _ screen.Screen = (*BadgesScreen)(nil)
var _ screen.KeyHintProvider = (*BadgesScreen)(nil)

// New creates a new BadgesScreen. A nil wallet shows an empty collection.
func New(wallet *rewards.Wallet) *BadgesScreen {
	s := &BadgesScreen{wallet: wallet}
	if wallet != nil {
		s.all = wallet.Badges()
	}
	return s
}

func (s *BadgesScreen) Init() tea.Cmd {
	return nil
}

func (s *BadgesScreen) Title() string {
	return "Badges"
}

func (s *BadgesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch type"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			types := rewards.AllBadgeTypes()
			s.selectedType = (s.selectedType + 1) % len(types)
			s.scrollOffset = 0
		case "shift+tab":
			types := rewards.AllBadgeTypes()
			s.selectedType = (s.selectedType - 1 + len(types)) % len(types)
			s.scrollOffset = 0
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.filtered())-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *BadgesScreen) View(width, height int) string {
	var b strings.Builder

	total := fmt.Sprintf("\nTotal: %d badges", len(s.all))
	if s.wallet != nil {
		total += fmt.Sprintf("   ● %d coins   ★ %d xp", s.wallet.Coins(), s.wallet.XP())
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(total + "\n"))
	b.WriteString("\n")

	// Type tabs.
	var tabs []string
	for i, t := range rewards.AllBadgeTypes() {
		label := fmt.Sprintf("%s %s (%d)", t.Icon(), t.DisplayName(), s.countByType(t))
		if i == s.selectedType {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "   ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	filtered := s.filtered()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No badges of this type yet"))
		return b.String()
	}

	maxVisible := max(height-10, 3)
	start := s.scrollOffset
	end := min(start+maxVisible, len(filtered))

	for _, badge := range filtered[start:end] {
		what := badge.Reason
		if badge.GameTitle != "" && badge.Type != rewards.BadgeComplete {
			what = badge.GameTitle + ": " + badge.Reason
		}
		line := fmt.Sprintf("  %-10s %-36s %s",
			badge.Rarity.DisplayName(), what, badge.AwardedAt.Format("15:04"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Tier(badge.Rarity.Rank())).Render(line)))
		b.WriteString("\n")
	}

	if end < len(filtered) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(filtered)-end)))
	}

	return b.String()
}

func (s *BadgesScreen) filtered() []rewards.Badge {
	selected := rewards.AllBadgeTypes()[s.selectedType]
	var out []rewards.Badge
	for _, b := range s.all {
		if b.Type == selected {
			out = append(out, b)
		}
	}
	return out
}

func (s *BadgesScreen) countByType(t rewards.BadgeType) int {
	count := 0
	for _, b := range s.all {
		if b.Type == t {
			count++
		}
	}
	return count
}
