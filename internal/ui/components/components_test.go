package components

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/game"
)

func testOptions() []game.Option {
	return []game.Option{
		{ID: "a", Label: "Apple", Emoji: "🍎", Correct: true},
		{ID: "b", Label: "Brick"},
		{ID: "c", Label: "Cloud"},
	}
}

func chosen(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(OptionChosenMsg)
	if !ok {
		t.Fatalf("expected OptionChosenMsg, got %T", cmd())
	}
	return msg.OptionID
}

func TestOptionListNumberKey(t *testing.T) {
	l := NewOptionList(testOptions())
	l, cmd := l.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if got := chosen(t, cmd); got != "b" {
		t.Errorf("chose %q, want b", got)
	}
	if l.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", l.Cursor)
	}
}

func TestOptionListOutOfRangeNumber(t *testing.T) {
	l := NewOptionList(testOptions())
	_, cmd := l.Update(tea.KeyPressMsg{Code: '9', Text: "9"})
	if cmd != nil {
		t.Error("out-of-range number should not choose")
	}
}

func TestOptionListArrowsAndEnter(t *testing.T) {
	l := NewOptionList(testOptions())
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if l.Cursor != 2 {
		t.Fatalf("Cursor = %d, want 2 (clamped)", l.Cursor)
	}
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := chosen(t, cmd); got != "b" {
		t.Errorf("chose %q, want b", got)
	}
}

func TestOptionListLocked(t *testing.T) {
	l := NewOptionList(testOptions())
	l.Picked = "b"
	_, cmd := l.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	if cmd != nil {
		t.Error("locked list should ignore keys")
	}

	view := l.View()
	if !strings.Contains(view, "Apple  ✓") {
		t.Errorf("correct option not marked:\n%s", view)
	}
	if !strings.Contains(view, "Brick  ✗") {
		t.Errorf("wrong pick not marked:\n%s", view)
	}
	if strings.Contains(view, "Cloud  ") {
		t.Errorf("untouched option should carry no mark:\n%s", view)
	}
}

func TestConfettiDeterministic(t *testing.T) {
	a := Confetti(30, 2, 7)
	b := Confetti(30, 2, 7)
	if a != b {
		t.Error("same frame should render the same confetti")
	}
	if lipgloss.Height(a) != 2 {
		t.Errorf("height = %d, want 2", lipgloss.Height(a))
	}
	if Confetti(0, 2, 1) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestLevelMeter(t *testing.T) {
	m := LevelMeter(2, 4, 40)
	if m.Fill != 0.5 {
		t.Errorf("Fill = %f, want 0.5", m.Fill)
	}
	if !strings.Contains(m.View(), "Level 2/4") {
		t.Error("missing level label")
	}
	if LevelMeter(0, 0, 40).Fill != 0 {
		t.Error("empty game should show zero progress")
	}
}

func TestCountdownMeter(t *testing.T) {
	m := CountdownMeter(1500*time.Millisecond, 3*time.Second, 40)
	if m.Fill != 0.5 {
		t.Errorf("Fill = %f, want 0.5", m.Fill)
	}
	if !strings.Contains(m.View(), "1.5s") {
		t.Error("missing seconds left")
	}
	if CountdownMeter(time.Second, 0, 40).Fill != 0 {
		t.Error("no limit should show an empty meter")
	}
	if w := lipgloss.Width(m.View()); w != 40 {
		t.Errorf("width = %d, want 40", w)
	}
}

func TestOptionListRevealed(t *testing.T) {
	l := NewOptionList(testOptions())
	l.Revealed = true
	if !l.Locked() {
		t.Fatal("revealed list should be locked")
	}
	view := l.View()
	if !strings.Contains(view, "Apple  ✓") || strings.Contains(view, "✗") {
		t.Errorf("timeout should only mark the correct option:\n%s", view)
	}
}

func TestMenuButtonStates(t *testing.T) {
	if !strings.Contains(MenuButton("PLAY", ButtonSelected, 20), "▸ PLAY") {
		t.Error("selected button should carry the cursor")
	}
	for _, st := range []ButtonState{ButtonIdle, ButtonDisabled} {
		out := MenuButton("PLAY", st, 20)
		if strings.Contains(out, "▸") || !strings.Contains(out, "PLAY") {
			t.Errorf("state %d rendered %q", st, out)
		}
	}
}

func TestContentWidthClamps(t *testing.T) {
	if got := ContentWidth(10); got != 20 {
		t.Errorf("ContentWidth(10) = %d, want 20", got)
	}
	if got := ContentWidth(200); got != 64 {
		t.Errorf("ContentWidth(200) = %d, want 64", got)
	}
	if got := ContentWidth(50); got != 44 {
		t.Errorf("ContentWidth(50) = %d, want 44", got)
	}
}
