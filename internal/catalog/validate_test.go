package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/playdeck/internal/game"
)

func quizGame(id string) *game.Game {
	return &game.Game{
		ID:     id,
		Title:  strings.ToUpper(id),
		Topic:  string(TopicHealth),
		Kind:   game.KindQuiz,
		Policy: game.DefaultPolicy(),
		Questions: []game.Question{
			{ID: "q1", Prompt: "one", Options: []game.Option{{ID: "a", Label: "A", Correct: true}, {ID: "b", Label: "B"}}},
			{ID: "q2", Prompt: "two", Options: []game.Option{{ID: "a", Label: "A", Correct: true}, {ID: "b", Label: "B"}}},
		},
	}
}

func messages(err error) string {
	var b strings.Builder
	for _, ce := range ContentErrors(err) {
		b.WriteString(ce.Message)
		b.WriteString("\n")
	}
	return b.String()
}

func TestValidateOK(t *testing.T) {
	assert.NoError(t, Validate([]*game.Game{quizGame("a"), quizGame("b")}))
}

func TestValidateProblems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g *game.Game)
		want   string
	}{
		{"no questions", func(g *game.Game) { g.Questions = nil }, "no questions"},
		{"unknown topic", func(g *game.Game) { g.Topic = "art" }, `unknown topic "art"`},
		{"missing title", func(g *game.Game) { g.Title = "" }, "missing title"},
		{"no options", func(g *game.Game) { g.Questions[0].Options = nil }, `question "q1": no options`},
		{"no correct", func(g *game.Game) { g.Questions[1].Options[0].Correct = false }, `question "q2": no correct option`},
		{"duplicate question", func(g *game.Game) { g.Questions[1].ID = "q1" }, `duplicate question id "q1"`},
		{"duplicate option", func(g *game.Game) { g.Questions[0].Options[1].ID = "a" }, `duplicate option id "a"`},
		{"dangling branch", func(g *game.Game) { g.Questions[0].Options[1].Next = "zz" }, `branch target "zz" does not exist`},
		{"backward branch", func(g *game.Game) { g.Questions[1].Options[1].Next = "q1" }, `branch target "q1" must come later`},
		{"self branch", func(g *game.Game) { g.Questions[0].Options[1].Next = "q1" }, "must come later"},
		{"end and branch", func(g *game.Game) {
			g.Questions[0].Options[1].Next = "q2"
			g.Questions[0].Options[1].Ends = true
		}, "cannot both end and branch"},
		{"reflex without limit", func(g *game.Game) { g.Kind = game.KindReflex }, "need a time_limit"},
		{"journal with options", func(g *game.Game) { g.Kind = game.KindJournal }, "journal questions take no options"},
		{"unreachable pass", func(g *game.Game) { g.Policy.PassScore = 3 }, "higher than the best possible score 2"},
		{"score gate without pass", func(g *game.Game) { g.Policy.Gate = game.GateScore }, "score gate needs a pass_score"},
		{"dangling next", func(g *game.Game) { g.Next = "ghost" }, `next game "ghost" does not exist`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := quizGame("a")
			tt.mutate(g)
			err := Validate([]*game.Game{g})
			assert.Contains(t, messages(err), tt.want)
		})
	}
}

func TestValidateDuplicateGames(t *testing.T) {
	err := Validate([]*game.Game{quizGame("a"), quizGame("a")})
	assert.Contains(t, messages(err), "duplicate game id")
}

func TestValidateCollectsAll(t *testing.T) {
	g := quizGame("a")
	g.Topic = "art"
	g.Questions[0].Options = nil
	assert.Len(t, ContentErrors(Validate([]*game.Game{g})), 2)
}

func TestValidateReflexWithLimits(t *testing.T) {
	g := quizGame("a")
	g.Kind = game.KindReflex
	for i := range g.Questions {
		g.Questions[i].TimeLimit = 2 * time.Second
	}
	assert.NoError(t, Validate([]*game.Game{g}))
}

func TestMaxScore(t *testing.T) {
	g := &game.Game{
		Kind:   game.KindStory,
		Policy: game.DefaultPolicy(),
		Questions: []game.Question{
			{ID: "s", Options: []game.Option{
				{ID: "jump", Correct: true, Reward: 5, Next: "c"},
				{ID: "walk", Correct: true},
			}},
			{ID: "b", Options: []game.Option{{ID: "x", Correct: true, Reward: 10}}},
			{ID: "c", Options: []game.Option{
				{ID: "y", Correct: true},
				{ID: "quit", Correct: true, Reward: 3, Ends: true},
			}},
		},
	}
	// walk(1) + b(10) + quit(3) beats jump(5) + quit(3).
	assert.Equal(t, 14, maxScore(g))

	j := &game.Game{Kind: game.KindJournal, Policy: game.Policy{DefaultReward: 2}, Questions: make([]game.Question, 3)}
	assert.Equal(t, 6, maxScore(j))
}
