package game

import "time"

// Summary holds the data shown when a run ends.
type Summary struct {
	RunID      string
	GameID     string
	GameTitle  string
	Topic      string
	Score      int
	Correct    int
	Answered   int
	Total      int
	Accuracy   float64
	BestStreak int
	Passed     bool
	Perfect    bool
	Coins      int
	XP         int
	Duration   time.Duration
}

// Summary builds the end-of-run summary. It may be called before the run
// finishes; Passed is false until then.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var correct int
	for _, a := range s.answers {
		if a.Correct {
			correct++
		}
	}

	var accuracy float64
	if len(s.order) > 0 {
		accuracy = float64(correct) / float64(len(s.order))
	}

	end := s.finishedAt
	if end.IsZero() {
		end = s.clock.Now()
	}

	return Summary{
		RunID:      s.runID,
		GameID:     s.game.ID,
		GameTitle:  s.game.Title,
		Topic:      s.game.Topic,
		Score:      s.score,
		Correct:    correct,
		Answered:   len(s.order),
		Total:      len(s.game.Questions),
		Accuracy:   accuracy,
		BestStreak: s.bestStreak,
		Passed:     s.passedLocked(),
		Perfect:    s.phase == PhaseFinished && len(s.order) > 0 && correct == len(s.order),
		Coins:      correct * s.game.CoinsPerLevel,
		XP:         s.score,
		Duration:   end.Sub(s.startedAt),
	}
}
