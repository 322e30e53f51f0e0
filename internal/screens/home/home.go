package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/playdeck/internal/game"
	"github.com/abhisek/playdeck/internal/router"
	"github.com/abhisek/playdeck/internal/screen"
	"github.com/abhisek/playdeck/internal/screens/badges"
	"github.com/abhisek/playdeck/internal/screens/browse"
	"github.com/abhisek/playdeck/internal/screens/history"
	"github.com/abhisek/playdeck/internal/screens/play"
	"github.com/abhisek/playdeck/internal/ui/components"
	"github.com/abhisek/playdeck/internal/ui/layout"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps play.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps play.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	empty := deps.Catalog == nil || deps.Catalog.Len() == 0
	items := []components.MenuItem{
		{Label: "PLAY", Disabled: empty, Action: func() tea.Cmd {
			g := h.suggest()
			if g == nil {
				return nil
			}
			s := play.New(h.deps, g)
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}},
		{Label: "BROWSE GAMES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(h.deps)}
			}
		}},
		{Label: "BADGES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: badges.New(h.deps.Wallet)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.deps.Wallet)}
			}
		}},
		{Label: "EXIT GAME", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100
	tiny := termHeight < 24

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, width, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant(), cw))
	}
	sections = append(sections, renderStatsBar(h.stats(), cw, compact))

	if tiny {
		sections = append(sections, renderArcadeMenuCompact(h.menu.Items, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Items, h.menu.Selected, cw))
	}

	if g := h.suggest(); g != nil && !tiny {
		sections = append(sections, renderSuggestion(g.Title, cw))
	}

	return components.TableFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// suggest picks the game PLAY starts: the first unplayed game, then the
// first game not yet passed, then the first game in the catalog.
func (h *HomeScreen) suggest() *game.Game {
	cat := h.deps.Catalog
	if cat == nil {
		return nil
	}
	w := h.deps.Wallet
	if w == nil {
		return cat.First()
	}

	var unpassed *game.Game
	for _, g := range cat.Games() {
		best, played := w.BestScore(g.ID)
		if !played {
			return g
		}
		if unpassed == nil && !g.Policy.Passed(best) {
			unpassed = g
		}
	}
	if unpassed != nil {
		return unpassed
	}
	return cat.First()
}

func (h *HomeScreen) stats() stats {
	var s stats
	if h.deps.Catalog != nil {
		s.games = h.deps.Catalog.Len()
		if w := h.deps.Wallet; w != nil {
			for _, g := range h.deps.Catalog.Games() {
				if _, ok := w.BestScore(g.ID); ok {
					s.played++
				}
			}
		}
	}
	if w := h.deps.Wallet; w != nil {
		s.coins = w.Coins()
		s.xp = w.XP()
		s.badges = len(w.Badges())
	}
	return s
}

func (h *HomeScreen) mascotVariant() MascotVariant {
	s := h.stats()
	switch {
	case s.badges > 0:
		return MascotCelebrating
	case s.played == 0:
		return MascotWaving
	default:
		return MascotIdle
	}
}
