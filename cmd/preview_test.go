package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/playdeck/content"
	"github.com/abhisek/playdeck/internal/catalog"
	"github.com/abhisek/playdeck/internal/game"
)

func previewQuiz() *game.Game {
	g := &game.Game{
		ID:     "preview-quiz",
		Title:  "Preview Quiz",
		Topic:  "health",
		Kind:   game.KindQuiz,
		Policy: game.DefaultPolicy(),
	}
	g.Policy.PassScore = 2
	for _, id := range []string{"q1", "q2"} {
		g.Questions = append(g.Questions, game.Question{
			ID:     id,
			Prompt: "Prompt " + id,
			Options: []game.Option{
				{ID: "yes", Label: "Yes", Correct: true, Response: "Nice pick"},
				{ID: "no", Label: "No"},
			},
		})
	}
	return g
}

func TestPreviewGame(t *testing.T) {
	var out strings.Builder
	err := previewGame(previewQuiz(), strings.NewReader("7\n1\n2\n"), &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Pick a number from 1 to 2")
	assert.Contains(t, text, "Great job! +1")
	assert.Contains(t, text, "Nice pick")
	assert.Contains(t, text, "Not quite")
	assert.Contains(t, text, "score 1, 1/2 correct")
	assert.Contains(t, text, "Not passed (needed 2)")
}

func TestPreviewGameInputClosed(t *testing.T) {
	var out strings.Builder
	require.NoError(t, previewGame(previewQuiz(), strings.NewReader("1\n"), &out))
	assert.Contains(t, out.String(), "(input closed)")
}

func TestPreviewJournal(t *testing.T) {
	g := &game.Game{
		ID:        "j",
		Title:     "Journal",
		Topic:     "health",
		Kind:      game.KindJournal,
		Policy:    game.DefaultPolicy(),
		Questions: []game.Question{{ID: "j1", Prompt: "How are you?"}},
	}
	var out strings.Builder
	require.NoError(t, previewGame(g, strings.NewReader("\ngreat\n"), &out))
	assert.Contains(t, out.String(), "Write something first.")
	assert.Contains(t, out.String(), "Thanks for sharing! +1")
}

func TestContentFSDefaultsToBuiltin(t *testing.T) {
	cat, err := catalog.Load(contentFS(""))
	require.NoError(t, err)
	builtin, err := catalog.Load(content.FS())
	require.NoError(t, err)
	assert.Equal(t, builtin.Len(), cat.Len())
}
