// Package game defines the generic mini-game content types and the session
// engine that drives every game in the catalog.
package game

import "time"

// Kind identifies how a game is presented.
type Kind string

const (
	KindQuiz    Kind = "quiz"    // one correct option per question
	KindMatch   Kind = "match"   // pair a prompt with its matching card
	KindStory   Kind = "story"   // scenario choices that may branch forward
	KindReflex  Kind = "reflex"  // timed choice, expiry counts as a miss
	KindJournal Kind = "journal" // free-text reflection, any answer counts
)

// AllKinds returns all kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindQuiz, KindMatch, KindStory, KindReflex, KindJournal}
}

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindQuiz:
		return "Quiz"
	case KindMatch:
		return "Match Up"
	case KindStory:
		return "Story"
	case KindReflex:
		return "Quick Pick"
	case KindJournal:
		return "Journal"
	default:
		return string(k)
	}
}

// Icon returns the display icon for the kind.
func (k Kind) Icon() string {
	switch k {
	case KindQuiz:
		return "❓"
	case KindMatch:
		return "🧩"
	case KindStory:
		return "📖"
	case KindReflex:
		return "⚡"
	case KindJournal:
		return "✏️"
	default:
		return "•"
	}
}

// FreeText reports whether questions of this kind are answered with text.
func (k Kind) FreeText() bool {
	return k == KindJournal
}

// Option is one selectable answer.
type Option struct {
	ID      string
	Label   string
	Emoji   string
	Correct bool
	// Reward overrides the policy's default reward when positive.
	Reward int
	// Next jumps forward to the question with this ID instead of the
	// following one (stories).
	Next string
	// Ends finishes the game once this option's advance fires.
	Ends bool
	// Response is shown after the option is chosen.
	Response string
}

// Question is one prompt with its options. Journal questions have none.
type Question struct {
	ID      string
	Prompt  string
	Hint    string
	Options []Option
	// TimeLimit bounds how long the question stays open (reflex games).
	TimeLimit time.Duration
}

// Option returns the option with the given ID.
func (q *Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// CorrectOptions returns the IDs of all options marked correct.
func (q *Question) CorrectOptions() []string {
	var ids []string
	for _, o := range q.Options {
		if o.Correct {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// Game is one catalog entry: static, immutable content plus its policy.
type Game struct {
	ID          string
	Title       string
	Topic       string
	Kind        Kind
	Description string
	// Next is the game the learner is sent to after finishing.
	Next          string
	CoinsPerLevel int
	Policy        Policy
	Questions     []Question
}

// TotalLevels returns the number of questions.
func (g *Game) TotalLevels() int {
	return len(g.Questions)
}

// QuestionIndex returns the index of the question with id, or -1.
func (g *Game) QuestionIndex(id string) int {
	for i := range g.Questions {
		if g.Questions[i].ID == id {
			return i
		}
	}
	return -1
}

// RewardFor returns the points awarded for a correct pick of o.
func (g *Game) RewardFor(o Option) int {
	if o.Reward > 0 {
		return o.Reward
	}
	return g.Policy.reward()
}
