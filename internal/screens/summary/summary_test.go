package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/playdeck/internal/game"
	"github.com/abhisek/playdeck/internal/rewards"
	"github.com/abhisek/playdeck/internal/router"
)

func testSummary() game.Summary {
	return game.Summary{
		RunID:      "run-1",
		GameID:     "green-water-saver",
		GameTitle:  "Water Saver",
		Topic:      "sustainability",
		Score:      4,
		Correct:    4,
		Answered:   5,
		Total:      5,
		Accuracy:   0.8,
		BestStreak: 3,
		Passed:     true,
		Coins:      40,
		XP:         4,
		Duration:   95 * time.Second,
	}
}

func testBadges() []rewards.Badge {
	return []rewards.Badge{
		{Type: rewards.BadgeComplete, Rarity: rewards.RarityEpic, Reason: "Passed Water Saver"},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), 4, nil)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), 4, testBadges())
	view := s.View(80, 24)

	for _, want := range []string{"Water Saver", "Time: 1:35", "Score: 4", "Correct: 4/5", "80%", "40 coins", "Badge earned", "Passed Water Saver"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_NotPassed(t *testing.T) {
	sum := testSummary()
	sum.Passed = false
	sum.Score = 3
	view := New(sum, 4, nil).View(80, 24)
	if !strings.Contains(view, "3 of 4 points") {
		t.Error("expected threshold message")
	}
	if strings.Contains(view, "Badges") {
		t.Error("no badges section without badges")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), 4, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestSummaryScreen_Navigation_Home(t *testing.T) {
	s := New(testSummary(), 4, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	if cmd == nil {
		t.Fatal("expected a command on h")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("expected PopToRootMsg, got %T", cmd())
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), 4, nil)
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}
