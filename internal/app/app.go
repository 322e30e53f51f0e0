// Package app hosts the root Bubble Tea model: a screen router framed by
// the header and footer.
package app

import (
	"fmt"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/router"
	"github.com/abhisek/playdeck/internal/screen"
	"github.com/abhisek/playdeck/internal/screens/home"
	"github.com/abhisek/playdeck/internal/screens/play"
	"github.com/abhisek/playdeck/internal/screens/welcome"
	"github.com/abhisek/playdeck/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Deps play.Deps
	// StartGame opens this game on top of the home screen when set.
	StartGame string
	// SkipWelcome goes straight to the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   play.Deps
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel. The initial stack is the welcome
// splash, the home screen, or home with a game on top.
func newAppModel(opts Options) (AppModel, error) {
	deps := opts.Deps
	homeScreen := home.New(deps)

	var r *router.Router
	switch {
	case opts.StartGame != "":
		if deps.Catalog == nil {
			return AppModel{}, fmt.Errorf("start game %q: no catalog", opts.StartGame)
		}
		g, err := deps.Catalog.Get(opts.StartGame)
		if err != nil {
			return AppModel{}, err
		}
		r = router.New(homeScreen)
		r.Push(play.New(deps, g))
	case opts.SkipWelcome:
		r = router.New(homeScreen)
	default:
		r = router.New(welcome.New(func() screen.Screen { return homeScreen }, hand(deps)))
	}

	return AppModel{deps: deps, router: r}, nil
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	h := layout.Header{Title: title}
	if w := m.deps.Wallet; w != nil {
		h.Coins, h.XP, h.Badges = w.Coins(), w.XP(), len(w.Badges())
	}
	header := layout.RenderHeader(h, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// footerHints prefers the active screen's own hints.
func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits. Every
// screen still on the stack is closed on the way out so no game timer
// outlives the program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	defer model.router.Close()

	p := tea.NewProgram(model)
	_, err = p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	log.Printf("app: exited cleanly")
	return nil
}

// hand builds the welcome cards from the catalog's topics.
func hand(deps play.Deps) []welcome.Card {
	if deps.Catalog == nil {
		return nil
	}
	var cards []welcome.Card
	for _, t := range deps.Catalog.Topics() {
		cards = append(cards, welcome.Card{Icon: t.Icon(), Label: t.DisplayName()})
	}
	return cards
}
