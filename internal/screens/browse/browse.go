// Package browse lists the catalog by topic and starts games from it.
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

type rowKind int

const (
	rowTopicHeader rowKind = iota
	rowGame
)

type row struct {
	kind  rowKind
	topic catalog.Topic
	game  *game.Game
}

// BrowseScreen displays the catalog organized by topic.
type BrowseScreen struct {
	deps         play.Deps
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates a new BrowseScreen over deps.Catalog.
func New(deps play.Deps) *BrowseScreen {
	var rows []row
	if deps.Catalog != nil {
		for _, topic := range deps.Catalog.Topics() {
			rows = append(rows, row{kind: rowTopicHeader, topic: topic})
			for _, g := range deps.Catalog.ByTopic(topic) {
				rows = append(rows, row{kind: rowGame, topic: topic, game: g})
			}
		}
	}

	s := &BrowseScreen{deps: deps, rows: rows}

	// Set cursor to first game row
	for i, r := range s.rows {
		if r.kind == rowGame {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (s *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextTopic()
		case "shift+tab":
			s.prevTopic()
		case "enter", "p":
			return s, s.playSelected()
		case "i":
			return s, s.showDetail()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *BrowseScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\nNo games in the catalog")
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowTopicHeader:
			lines = append(lines, renderTopicHeader(r.topic, width))
		case rowGame:
			lines = append(lines, s.renderGameRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *BrowseScreen) Title() string {
	return "Browse Games"
}

// KeyHints returns the key binding hints for the footer.
func (s *BrowseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Topic"},
		{Key: "Enter", Description: "Play"},
		{Key: "i", Description: "Info"},
		{Key: "Esc", Description: "Back"},
	}
}

// Selected returns the game under the cursor, or nil when the catalog is empty.
func (s *BrowseScreen) Selected() *game.Game {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	return s.rows[s.cursor].game
}

// moveCursor moves the cursor by delta, skipping topic headers.
func (s *BrowseScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowGame {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextTopic jumps the cursor to the first game in the next topic.
func (s *BrowseScreen) nextTopic() {
	if len(s.rows) == 0 {
		return
	}
	current := s.rows[s.cursor].topic
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowGame && s.rows[i].topic != current {
			s.cursor = i
			return
		}
	}
}

// prevTopic jumps the cursor to the first game in the previous topic.
func (s *BrowseScreen) prevTopic() {
	if len(s.rows) == 0 {
		return
	}
	current := s.rows[s.cursor].topic

	var prev catalog.Topic
	found := false
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowGame && s.rows[i].topic != current {
			prev = s.rows[i].topic
			found = true
			break
		}
	}
	if !found {
		return
	}
	for i, r := range s.rows {
		if r.kind == rowGame && r.topic == prev {
			s.cursor = i
			return
		}
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *BrowseScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Keep the topic header above the cursor on screen when possible
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowTopicHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *BrowseScreen) playSelected() tea.Cmd {
	g := s.Selected()
	if g == nil {
		return nil
	}
	p := play.New(s.deps, g)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: p}
	}
}

func (s *BrowseScreen) showDetail() tea.Cmd {
	g := s.Selected()
	if g == nil {
		return nil
	}
	d := newGameDetail(s.deps, g, statusOf(g, s.deps.Wallet))
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: d}
	}
}

func renderTopicHeader(t catalog.Topic, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TopicColor(string(t))).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(t.Icon() + " " + strings.ToUpper(t.DisplayName()))
}

func (s *BrowseScreen) renderGameRow(r row, selected bool, width int) string {
	g := r.game
	st := statusOf(g, s.deps.Wallet)

	kindWidth := 10
	labelWidth := 9
	nameWidth := max(width-4-3-kindWidth-labelWidth-6, 10)

	name := g.Title
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	var nameStyle, kindStyle, labelStyle lipgloss.Style
	switch {
	case selected:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		kindStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case st.Passed:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
		kindStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Success)
	case st.Played:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		kindStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	default:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		kindStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		labelStyle = lipgloss.NewStyle().Foreground(theme.ArcadeCyan)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		st.Icon(),
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		kindStyle.Render(fmt.Sprintf("%-*s", kindWidth, g.Kind.DisplayName())),
		labelStyle.Render(fmt.Sprintf("%*s", labelWidth, st.Label())),
	)
}
