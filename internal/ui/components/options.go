package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/game"
	"github.com/abhisek/playdeck/internal/ui/theme"
)

// OptionChosenMsg is emitted when the learner picks an option.
type OptionChosenMsg struct {
	OptionID string
}

// OptionList is a numbered list of answer options. Once Picked or Revealed
// is set the list is locked and renders per-option result styling.
type OptionList struct {
	Options []game.Option
	Cursor  int
	Picked  string
	// Revealed locks the list without a pick, e.g. after a timeout.
	Revealed bool
}

// NewOptionList creates a list with the cursor on the first option.
func NewOptionList(options []game.Option) OptionList {
	return OptionList{Options: options}
}

// Locked reports whether an answer has been recorded.
func (l OptionList) Locked() bool {
	return l.Picked != "" || l.Revealed
}

// Update moves the cursor and emits OptionChosenMsg on Enter or a number key.
func (l OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if l.Locked() || len(l.Options) == 0 {
		return l, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
		return l, nil
	case "down", "j":
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
		return l, nil
	case "enter":
		return l, l.choose(l.Cursor)
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		i := int(key[0] - '1')
		if i < len(l.Options) {
			l.Cursor = i
			return l, l.choose(i)
		}
	}
	return l, nil
}

func (l OptionList) choose(i int) tea.Cmd {
	id := l.Options[i].ID
	return func() tea.Msg { return OptionChosenMsg{OptionID: id} }
}

// View renders the options, one per line.
func (l OptionList) View() string {
	var b strings.Builder
	for i, o := range l.Options {
		label := o.Label
		if o.Emoji != "" {
			label = o.Emoji + "  " + label
		}

		prefix := "  "
		if !l.Locked() && i == l.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, label)

		var style lipgloss.Style
		switch {
		case l.Locked() && o.Correct:
			style = theme.Correct
			line += "  ✓"
		case l.Locked() && o.ID == l.Picked:
			style = theme.Incorrect
			line += "  ✗"
		case l.Locked():
			style = theme.Muted
		case i == l.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
