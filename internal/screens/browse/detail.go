package browse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/catalog"
	"github.com/abhisek/playdeck/internal/game"
	"github.com/abhisek/playdeck/internal/router"
	"github.com/abhisek/playdeck/internal/screen"
	"github.com/abhisek/playdeck/internal/screens/play"
	"github.com/abhisek/playdeck/internal/ui/layout"
	"github.com/abhisek/playdeck/internal/ui/theme"
)

// GameDetailScreen shows the rules and rewards of a single game.
type GameDetailScreen struct {
	deps   play.Deps
	game   *game.Game
	status gameStatus
}

var _ screen.Screen = (*GameDetailScreen)(nil)
var _ screen.KeyHintProvider = (*GameDetailScreen)(nil)

func newGameDetail(deps play.Deps, g *game.Game, status gameStatus) *GameDetailScreen {
	return &GameDetailScreen{deps: deps, game: g, status: status}
}

func (d *GameDetailScreen) Init() tea.Cmd { return nil }
func (d *GameDetailScreen) Title() string { return d.game.Title }

func (d *GameDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		p := play.New(d.deps, d.game)
		return d, func() tea.Msg { return router.ReplaceScreenMsg{Screen: p} }
	}
	return d, nil
}

func (d *GameDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *GameDetailScreen) View(width, height int) string {
	g := d.game
	contentWidth := min(width-8, 70)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", g.Kind.Icon(), g.Title)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %s %s", d.status.Icon(), d.status.Label())))
	b.WriteString("\n\n")

	if g.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render(g.Description))
		b.WriteString("\n\n")
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)
	field := func(name, value string) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %-10s ", name+":")) + valStyle.Render(value) + "\n")
	}

	topic := catalog.Topic(g.Topic)
	field("Topic", topic.Icon()+" "+topic.DisplayName())
	field("Type", g.Kind.DisplayName())
	field("Levels", fmt.Sprintf("%d", g.TotalLevels()))
	if g.Policy.PassScore > 0 {
		field("Badge at", fmt.Sprintf("%d points", g.Policy.PassScore))
	}
	if g.CoinsPerLevel > 0 {
		field("Coins", fmt.Sprintf("%d per correct answer", g.CoinsPerLevel))
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Rules"))
	b.WriteString("\n")
	for _, rule := range rules(g) {
		b.WriteString(dimStyle.Render("  • " + rule))
		b.WriteString("\n")
	}

	if d.deps.Catalog != nil {
		if next, ok := d.deps.Catalog.Next(g.ID); ok {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render(fmt.Sprintf("  → Up next: %s", next.Title)))
			b.WriteString("\n")
		}
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}

// rules describes how g is played and scored.
func rules(g *game.Game) []string {
	var out []string
	switch g.Kind {
	case game.KindReflex:
		out = append(out, "Answer before the clock runs out")
	case game.KindJournal:
		out = append(out, "Write your own answer, every thoughtful reply counts")
	case game.KindStory:
		out = append(out, "Your choices decide where the story goes")
	case game.KindMatch:
		out = append(out, "Find the partner for each card")
	default:
		out = append(out, "Pick the best answer")
	}
	out = append(out, "Your first answer counts")
	if g.Policy.Gate == game.GateScore {
		out = append(out, fmt.Sprintf("Reach %d points to unlock the next game", g.Policy.PassScore))
	}
	if g.Policy.Tally == game.TallyAdvance {
		out = append(out, "Points are added when you move on")
	}
	return out
}
