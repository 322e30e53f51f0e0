package game

import (
	"fmt"
	"time"
)

// DefaultAdvanceDelay is the pause between an answer and the next question.
const DefaultAdvanceDelay = 1200 * time.Millisecond

// GateMode decides what unlocks forward navigation once a game finishes.
type GateMode string

const (
	// GateCompletion unlocks "next" as soon as the last question is done.
	GateCompletion GateMode = "completion"
	// GateScore unlocks "next" only when the pass score was reached.
	GateScore GateMode = "score"
)

// TallyMode decides when a correct answer's reward is added to the score.
type TallyMode string

const (
	// TallyLive adds the reward as soon as the answer is recorded.
	TallyLive TallyMode = "live"
	// TallyAdvance adds the reward when the post-answer delay ends.
	TallyAdvance TallyMode = "advance"
)

// Policy holds the per-game progression rules.
type Policy struct {
	// AdvanceDelay is the pause after an answer before moving on.
	AdvanceDelay time.Duration
	// PassScore is the score needed to pass. Zero means finishing passes.
	PassScore int
	Gate      GateMode
	Tally     TallyMode
	// Confetti raises the confetti flag on correct answers.
	Confetti bool
	// FlashOnMiss flashes zero points on wrong answers and timeouts.
	FlashOnMiss bool
	// DefaultReward is awarded for correct options without their own reward.
	DefaultReward int
}

// DefaultPolicy returns the policy most games in the catalog use.
func DefaultPolicy() Policy {
	return Policy{
		AdvanceDelay:  DefaultAdvanceDelay,
		Gate:          GateCompletion,
		Tally:         TallyLive,
		Confetti:      true,
		DefaultReward: 1,
	}
}

func (p Policy) reward() int {
	if p.DefaultReward > 0 {
		return p.DefaultReward
	}
	return 1
}

// Passed reports whether score meets the pass threshold.
func (p Policy) Passed(score int) bool {
	return score >= p.PassScore
}

// ParseGate converts a content string to a GateMode. Empty means completion.
func ParseGate(s string) (GateMode, error) {
	switch GateMode(s) {
	case "", GateCompletion:
		return GateCompletion, nil
	case GateScore:
		return GateScore, nil
	default:
		return "", fmt.Errorf("unknown gate %q: must be completion or score", s)
	}
}

// ParseTally converts a content string to a TallyMode. Empty means live.
func ParseTally(s string) (TallyMode, error) {
	switch TallyMode(s) {
	case "", TallyLive:
		return TallyLive, nil
	case TallyAdvance:
		return TallyAdvance, nil
	default:
		return "", fmt.Errorf("unknown tally %q: must be live or advance", s)
	}
}

// ParseKind converts a content string to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown game kind %q", s)
}
