// Package welcome deals a hand of topic cards before handing over to home.
package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/router"
	"github.com/abhisek/playdeck/internal/screen"
	"github.com/abhisek/playdeck/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	// dealEvery is how many ticks pass between two cards landing.
	dealEvery = 4
	// settleTicks is the pause after the last card before the banner shows.
	settleTicks = 6
	cardWidth   = 12
)

// Card is one face-up card in the opening hand.
type Card struct {
	Icon  string
	Label string
}

type tickMsg time.Time

// WelcomeScreen deals one card per topic, then shows the banner. Any key
// moves on to the screen built by next.
type WelcomeScreen struct {
	next    func() screen.Screen
	hand    []Card
	ticks   int
	leaving bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that deals hand and then waits for a key.
func New(next func() screen.Screen, hand []Card) *WelcomeScreen {
	return &WelcomeScreen{next: next, hand: hand}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.leaving {
			return w, nil
		}
		w.ticks++
		return w, tick()
	case tea.KeyPressMsg:
		return w, w.leave()
	}
	return w, nil
}

func (w *WelcomeScreen) leave() tea.Cmd {
	if w.leaving {
		return nil
	}
	w.leaving = true
	s := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
}

// dealt reports how many cards are on the table.
func (w *WelcomeScreen) dealt() int {
	n := w.ticks / dealEvery
	if n > len(w.hand) {
		n = len(w.hand)
	}
	return n
}

func (w *WelcomeScreen) bannerShown() bool {
	return w.ticks >= len(w.hand)*dealEvery+settleTicks
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	if len(w.hand) > 0 {
		sections = append(sections, renderHand(w.hand, w.dealt(), w.ticks))
	}

	if w.bannerShown() {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).Bold(true).
			Render("Play a game, learn something new!"))
		if len(w.hand) > 0 {
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("%d topics in the deck", len(w.hand))))
		}
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).Italic(true).
			Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}

// renderHand draws dealt cards face up and the rest as card backs.
func renderHand(hand []Card, dealt, ticks int) string {
	cards := make([]string, 0, len(hand))
	for i, c := range hand {
		if i < dealt {
			cards = append(cards, faceUp(c, i == dealt-1 && ticks%2 == 0))
		} else {
			cards = append(cards, faceDown())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func faceUp(c Card, fresh bool) string {
	border := theme.Primary
	if fresh {
		border = theme.ArcadeYellow
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).BorderForeground(border).
		Width(cardWidth).Align(lipgloss.Center).Margin(0, 1).
		Foreground(theme.Text).
		Render(c.Icon + "\n\n" + c.Label)
}

func faceDown() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).BorderForeground(theme.TextDim).
		Width(cardWidth).Align(lipgloss.Center).Margin(0, 1).
		Foreground(theme.TextDim).
		Render("░░░\n░░░\n░░░")
}
