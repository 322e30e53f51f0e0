package browse

import (
	"fmt"

	"github.com/abhisek/playdeck/internal/game"
	"github.com/abhisek/playdeck/internal/rewards"
)

// gameStatus summarizes the learner's history with one game.
type gameStatus struct {
	Played bool
	Passed bool
	Best   int
}

func statusOf(g *game.Game, w *rewards.Wallet) gameStatus {
	if w == nil {
		return gameStatus{}
	}
	best, ok := w.BestScore(g.ID)
	if !ok {
		return gameStatus{}
	}
	return gameStatus{Played: true, Passed: g.Policy.Passed(best), Best: best}
}

func (s gameStatus) Icon() string {
	switch {
	case s.Passed:
		return "★"
	case s.Played:
		return "◐"
	default:
		return "○"
	}
}

func (s gameStatus) Label() string {
	switch {
	case s.Passed:
		return "PASSED"
	case s.Played:
		return fmt.Sprintf("BEST %d", s.Best)
	default:
		return "NEW"
	}
}
