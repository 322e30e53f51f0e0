package rewards

import (
	"fmt"
	"log"
	"time"

	"github.com/abhisek/playdeck/internal/game"
)

// Deposit is what a single finished run added to the wallet.
type Deposit struct {
	Coins  int
	XP     int
	Badges []Badge
	// NewBest is set when the run beat the previous best score for its game.
	NewBest bool
}

// Run is one finished run as recorded by the wallet.
type Run struct {
	Summary game.Summary
	Badges  []Badge
	At      time.Time
}

// Wallet accumulates coins, XP and badges across runs. It is owned by the
// UI goroutine and is not safe for concurrent use.
type Wallet struct {
	now    func() time.Time
	topics []string

	coins   int
	xp      int
	badges  []Badge
	best    map[string]int
	played  map[string]bool // topics with at least one finished run
	runs    map[string]bool // run IDs already deposited
	history []Run
}

// NewWallet creates an empty wallet. topics lists every topic in the
// catalog; finishing a game in each of them earns the explorer badge.
func NewWallet(topics []string) *Wallet {
	return &Wallet{
		now:    time.Now,
		topics: topics,
		best:   make(map[string]int),
		played: make(map[string]bool),
		runs:   make(map[string]bool),
	}
}

// Deposit credits a finished run. Depositing the same run twice is a no-op.
func (w *Wallet) Deposit(sum game.Summary) Deposit {
	if w.runs[sum.RunID] {
		return Deposit{}
	}
	w.runs[sum.RunID] = true

	d := Deposit{Coins: sum.Coins, XP: sum.XP}
	w.coins += sum.Coins
	w.xp += sum.XP

	prev, seen := w.best[sum.GameID]
	if !seen || sum.Score > prev {
		w.best[sum.GameID] = sum.Score
		d.NewBest = seen
	}

	award := func(t BadgeType, r Rarity, reason string) {
		d.Badges = append(d.Badges, Badge{
			Type:      t,
			Rarity:    r,
			GameID:    sum.GameID,
			GameTitle: sum.GameTitle,
			RunID:     sum.RunID,
			Reason:    reason,
			AwardedAt: w.now(),
		})
	}

	if sum.Passed {
		award(BadgeComplete, RunRarity(sum.Accuracy), fmt.Sprintf("Passed %s", sum.GameTitle))
	}
	if sum.Perfect {
		award(BadgePerfect, RarityEpic, fmt.Sprintf("Perfect run in %s", sum.GameTitle))
	}
	if m := StreakMilestone(sum.BestStreak); m > 0 {
		award(BadgeStreak, StreakRarity(m), fmt.Sprintf("%d correct in a row!", m))
	}

	if !w.played[sum.Topic] {
		w.played[sum.Topic] = true
		if w.exploredAll() {
			d.Badges = append(d.Badges, Badge{
				Type:      BadgeExplorer,
				Rarity:    RarityLegendary,
				RunID:     sum.RunID,
				Reason:    "Played every topic",
				AwardedAt: w.now(),
			})
		}
	}

	w.badges = append(w.badges, d.Badges...)
	w.history = append(w.history, Run{Summary: sum, Badges: d.Badges, At: w.now()})
	log.Printf("rewards: run %s of %s: +%d coins +%d xp, %d badges", sum.RunID, sum.GameID, d.Coins, d.XP, len(d.Badges))
	return d
}

func (w *Wallet) exploredAll() bool {
	if len(w.topics) == 0 {
		return false
	}
	for _, t := range w.topics {
		if !w.played[t] {
			return false
		}
	}
	return true
}

// Coins returns the total coins earned.
func (w *Wallet) Coins() int { return w.coins }

// XP returns the total experience earned.
func (w *Wallet) XP() int { return w.xp }

// Badges returns every badge in the order earned.
func (w *Wallet) Badges() []Badge {
	out := make([]Badge, len(w.badges))
	copy(out, w.badges)
	return out
}

// BestScore returns the best score recorded for a game.
func (w *Wallet) BestScore(gameID string) (int, bool) {
	s, ok := w.best[gameID]
	return s, ok
}

// CountByType returns how many badges of each type have been earned.
func (w *Wallet) CountByType() map[BadgeType]int {
	counts := make(map[BadgeType]int)
	for _, b := range w.badges {
		counts[b.Type]++
	}
	return counts
}

// Runs returns every deposited run, most recent first.
func (w *Wallet) Runs() []Run {
	out := make([]Run, len(w.history))
	for i, r := range w.history {
		out[len(w.history)-1-i] = r
	}
	return out
}
