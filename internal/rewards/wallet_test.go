package rewards

import (
	"testing"
	"time"

	"github.com/abhisek/playdeck/internal/game"
)

func summary(runID, gameID, topic string, score, correct, total int) game.Summary {
	return game.Summary{
		RunID:      runID,
		GameID:     gameID,
		GameTitle:  "Game " + gameID,
		Topic:      topic,
		Score:      score,
		Correct:    correct,
		Answered:   total,
		Total:      total,
		Accuracy:   float64(correct) / float64(total),
		BestStreak: correct,
		Passed:     correct*2 >= total,
		Perfect:    correct == total,
		Coins:      correct * 10,
		XP:         score,
	}
}

func newTestWallet() *Wallet {
	w := NewWallet([]string{"civics", "health"})
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	w.now = func() time.Time { return fixed }
	return w
}

func TestDepositCredits(t *testing.T) {
	w := newTestWallet()

	d := w.Deposit(summary("r1", "g1", "civics", 4, 4, 5))
	if d.Coins != 40 || d.XP != 4 {
		t.Errorf("deposit = %d coins %d xp, want 40/4", d.Coins, d.XP)
	}
	if w.Coins() != 40 || w.XP() != 4 {
		t.Errorf("wallet = %d coins %d xp, want 40/4", w.Coins(), w.XP())
	}

	// Passed + 4-streak, not perfect.
	if len(d.Badges) != 2 {
		t.Fatalf("badges = %d, want 2: %+v", len(d.Badges), d.Badges)
	}
	if d.Badges[0].Type != BadgeComplete || d.Badges[0].Rarity != RarityEpic {
		t.Errorf("first badge = %s/%s, want complete/epic", d.Badges[0].Type, d.Badges[0].Rarity)
	}
	if d.Badges[1].Type != BadgeStreak || d.Badges[1].Reason != "3 correct in a row!" {
		t.Errorf("second badge = %+v", d.Badges[1])
	}
	if d.Badges[0].AwardedAt.IsZero() {
		t.Error("AwardedAt not set")
	}
}

func TestDepositSameRunTwice(t *testing.T) {
	w := newTestWallet()
	sum := summary("r1", "g1", "civics", 2, 2, 2)

	w.Deposit(sum)
	d := w.Deposit(sum)
	if d.Coins != 0 || len(d.Badges) != 0 {
		t.Errorf("second deposit should be empty, got %+v", d)
	}
	if w.Coins() != 20 {
		t.Errorf("Coins = %d, want 20", w.Coins())
	}
}

func TestDepositPerfect(t *testing.T) {
	w := newTestWallet()
	d := w.Deposit(summary("r1", "g1", "civics", 2, 2, 2))

	counts := map[BadgeType]int{}
	for _, b := range d.Badges {
		counts[b.Type]++
	}
	if counts[BadgePerfect] != 1 {
		t.Errorf("expected a perfect badge, got %+v", d.Badges)
	}
	if counts[BadgeStreak] != 0 {
		t.Errorf("streak of 2 should not earn a badge")
	}
}

func TestDepositFailedRunStillPays(t *testing.T) {
	w := newTestWallet()
	d := w.Deposit(summary("r1", "g1", "civics", 1, 1, 5))

	if len(d.Badges) != 0 {
		t.Errorf("failed run earned badges: %+v", d.Badges)
	}
	if w.Coins() != 10 {
		t.Errorf("Coins = %d, want 10", w.Coins())
	}
}

func TestBestScore(t *testing.T) {
	w := newTestWallet()

	if _, ok := w.BestScore("g1"); ok {
		t.Error("unexpected best score before any run")
	}

	d := w.Deposit(summary("r1", "g1", "civics", 2, 2, 5))
	if d.NewBest {
		t.Error("first run is not a new best")
	}
	d = w.Deposit(summary("r2", "g1", "civics", 1, 1, 5))
	if d.NewBest {
		t.Error("lower score is not a new best")
	}
	d = w.Deposit(summary("r3", "g1", "civics", 4, 4, 5))
	if !d.NewBest {
		t.Error("higher score should be a new best")
	}
	if best, _ := w.BestScore("g1"); best != 4 {
		t.Errorf("BestScore = %d, want 4", best)
	}
}

func TestExplorerBadge(t *testing.T) {
	w := newTestWallet()

	w.Deposit(summary("r1", "g1", "civics", 0, 0, 2))
	d := w.Deposit(summary("r2", "g2", "health", 0, 0, 2))

	var found bool
	for _, b := range d.Badges {
		if b.Type == BadgeExplorer {
			found = true
		}
	}
	if !found {
		t.Fatal("expected explorer badge after every topic was played")
	}

	d = w.Deposit(summary("r3", "g3", "health", 0, 0, 2))
	if len(d.Badges) != 0 {
		t.Errorf("explorer badge awarded twice: %+v", d.Badges)
	}
	if w.CountByType()[BadgeExplorer] != 1 {
		t.Errorf("CountByType[explorer] = %d, want 1", w.CountByType()[BadgeExplorer])
	}
}

func TestBadgesIsCopy(t *testing.T) {
	w := newTestWallet()
	w.Deposit(summary("r1", "g1", "civics", 2, 2, 2))

	b := w.Badges()
	b[0].Reason = "changed"
	if w.Badges()[0].Reason == "changed" {
		t.Error("Badges should return a copy")
	}
}

func TestRunsNewestFirst(t *testing.T) {
	w := newTestWallet()
	w.Deposit(summary("r1", "g1", "civics", 1, 1, 2))
	w.Deposit(summary("r2", "g2", "health", 2, 2, 2))
	w.Deposit(summary("r2", "g2", "health", 2, 2, 2))

	runs := w.Runs()
	if len(runs) != 2 {
		t.Fatalf("Runs = %d, want 2 (duplicate deposit ignored)", len(runs))
	}
	if runs[0].Summary.RunID != "r2" || runs[1].Summary.RunID != "r1" {
		t.Errorf("order = %s, %s; want r2, r1", runs[0].Summary.RunID, runs[1].Summary.RunID)
	}
	if len(runs[0].Badges) == 0 {
		t.Error("expected badges recorded with the run")
	}
}
