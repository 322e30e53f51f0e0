package game

import (
	"time"

	"github.com/abhisek/playdeck/internal/feedback"
)

// Snapshot is a consistent, read-only view of a session for rendering.
type Snapshot struct {
	RunID    string
	Game     *Game
	Index    int
	Question *Question
	// Answer is the recorded answer for the current question, if any.
	Answer      *Answer
	Phase       Phase
	Score       int
	Correct     int
	Answered    int
	Finished    bool
	Passed      bool
	NextEnabled bool
	Feedback    feedback.State
	// Deadline is when the current question times out (zero if untimed).
	Deadline time.Time
	Streak   int
}

// CurrentLevel returns the 1-based level shown to the learner.
func (s Snapshot) CurrentLevel() int {
	if s.Game == nil || len(s.Game.Questions) == 0 {
		return 0
	}
	return s.Index + 1
}

// Coins returns the coins earned so far in this run.
func (s Snapshot) Coins() int {
	if s.Game == nil {
		return 0
	}
	return s.Correct * s.Game.CoinsPerLevel
}

// Snapshot captures the session state.
func (s *Session) Snapshot() Snapshot {
	fb := s.feedback.State()

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		RunID:       s.runID,
		Game:        s.game,
		Index:       s.index,
		Phase:       s.phase,
		Score:       s.score,
		Answered:    len(s.order),
		Finished:    s.phase == PhaseFinished,
		Passed:      s.passedLocked(),
		NextEnabled: s.nextEnabledLocked(),
		Feedback:    fb,
		Deadline:    s.deadlineAt,
		Streak:      s.streak,
	}
	for _, a := range s.answers {
		if a.Correct {
			snap.Correct++
		}
	}
	if len(s.game.Questions) > 0 {
		q := &s.game.Questions[s.index]
		snap.Question = q
		if a, ok := s.answers[q.ID]; ok {
			snap.Answer = &a
		}
	}
	if s.phase != PhaseAsking {
		snap.Deadline = time.Time{}
	}
	return snap
}
