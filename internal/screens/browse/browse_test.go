package browse

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/playdeck/internal/catalog"
	"github.com/abhisek/playdeck/internal/game"
	"github.com/abhisek/playdeck/internal/rewards"
	"github.com/abhisek/playdeck/internal/router"
	"github.com/abhisek/playdeck/internal/screens/play"
)

func testGame(id, topic string) *game.Game {
	return &game.Game{
		ID:     id,
		Title:  strings.ToUpper(id),
		Topic:  topic,
		Kind:   game.KindQuiz,
		Policy: game.DefaultPolicy(),
		Questions: []game.Question{
			{ID: "q1", Prompt: "?", Options: []game.Option{{ID: "a", Label: "A", Correct: true}}},
		},
	}
}

func testDeps(t *testing.T) play.Deps {
	t.Helper()
	cat, err := catalog.New(
		testGame("civ-a", "civics"),
		testGame("civ-b", "civics"),
		testGame("health-a", "health"),
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return play.Deps{Catalog: cat, Wallet: rewards.NewWallet([]string{"civics", "health"})}
}

func key(code rune, text string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: text}
}

func TestBrowse_CursorStartsOnFirstGame(t *testing.T) {
	s := New(testDeps(t))
	if g := s.Selected(); g == nil || g.ID != "civ-a" {
		t.Fatalf("Selected = %v, want civ-a", g)
	}
}

func TestBrowse_NavigationSkipsHeaders(t *testing.T) {
	s := New(testDeps(t))

	s.Update(key(tea.KeyDown, ""))
	s.Update(key(tea.KeyDown, ""))
	if got := s.Selected().ID; got != "health-a" {
		t.Errorf("after two downs Selected = %s, want health-a", got)
	}

	s.Update(key(tea.KeyDown, ""))
	if got := s.Selected().ID; got != "health-a" {
		t.Errorf("cursor moved past the end: %s", got)
	}

	s.Update(key(tea.KeyUp, ""))
	if got := s.Selected().ID; got != "civ-b" {
		t.Errorf("after up Selected = %s, want civ-b", got)
	}
}

func TestBrowse_TopicJumps(t *testing.T) {
	s := New(testDeps(t))

	s.Update(key(tea.KeyTab, ""))
	if got := s.Selected().ID; got != "health-a" {
		t.Errorf("after tab Selected = %s, want health-a", got)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if got := s.Selected().ID; got != "civ-a" {
		t.Errorf("after shift+tab Selected = %s, want civ-a", got)
	}
}

func TestBrowse_EnterPushesPlayScreen(t *testing.T) {
	s := New(testDeps(t))

	_, cmd := s.Update(key(tea.KeyEnter, ""))
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	p, ok := push.Screen.(*play.PlayScreen)
	if !ok {
		t.Fatalf("pushed %T, want *play.PlayScreen", push.Screen)
	}
	defer p.Close()
	if p.Session().Game().ID != "civ-a" {
		t.Errorf("play screen runs %s, want civ-a", p.Session().Game().ID)
	}
}

func TestBrowse_DetailScreen(t *testing.T) {
	s := New(testDeps(t))

	_, cmd := s.Update(key('i', "i"))
	push := cmd().(router.PushScreenMsg)
	d, ok := push.Screen.(*GameDetailScreen)
	if !ok {
		t.Fatalf("pushed %T, want *GameDetailScreen", push.Screen)
	}

	view := d.View(80, 30)
	for _, want := range []string{"CIV-A", "Civics", "Pick the best answer", "Up next: CIV-B"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q", want)
		}
	}

	_, cmd = d.Update(key(tea.KeyEnter, ""))
	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	rep.Screen.(*play.PlayScreen).Close()
}

func TestBrowse_StatusFromWallet(t *testing.T) {
	deps := testDeps(t)
	deps.Wallet.Deposit(game.Summary{RunID: "r1", GameID: "civ-b", Topic: "civics", Score: 1, Passed: true})

	s := New(deps)
	view := s.View(80, 20)
	if !strings.Contains(view, "PASSED") {
		t.Error("expected PASSED label for a passed game")
	}
	if !strings.Contains(view, "NEW") {
		t.Error("expected NEW label for unplayed games")
	}
}

func TestBrowse_EmptyCatalog(t *testing.T) {
	s := New(play.Deps{})
	if s.Selected() != nil {
		t.Error("expected no selection")
	}
	if _, cmd := s.Update(key(tea.KeyEnter, "")); cmd != nil {
		t.Error("expected no command on an empty catalog")
	}
	if !strings.Contains(s.View(80, 20), "No games") {
		t.Error("expected empty message")
	}
}

func TestGameStatus(t *testing.T) {
	g := testGame("a", "health")
	g.Policy.PassScore = 3

	w := rewards.NewWallet(nil)
	if st := statusOf(g, w); st.Played || st.Label() != "NEW" {
		t.Errorf("unplayed status = %+v", st)
	}

	w.Deposit(game.Summary{RunID: "r1", GameID: "a", Score: 2})
	if st := statusOf(g, w); !st.Played || st.Passed || st.Label() != "BEST 2" {
		t.Errorf("played status = %+v label %q", st, st.Label())
	}

	w.Deposit(game.Summary{RunID: "r2", GameID: "a", Score: 3, Passed: true})
	if st := statusOf(g, w); !st.Passed || st.Icon() != "★" {
		t.Errorf("passed status = %+v", st)
	}
}
