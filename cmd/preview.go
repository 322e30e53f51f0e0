package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/playdeck/internal/game"
)

var previewCmd = &cobra.Command{
	Use:   "preview GAME_ID",
	Short: "Play a game line by line on the terminal (no TUI)",
	Long: `Play one game with plain text prompts on stdin and stdout.

This is a stateless author tool: nothing is saved, no sound, no rewards.
Useful for checking the flow of new content quickly.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeGameIDs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		g, err := cat.Get(args[0])
		if err != nil {
			return err
		}
		return previewGame(g, os.Stdin, os.Stdout)
	},
}

// previewGame runs g through a session without an advance delay, reading
// one answer per line from in.
func previewGame(g *game.Game, in io.Reader, out io.Writer) error {
	s := game.NewSession(g, game.WithAdvanceDelay(0))
	defer s.Close()

	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "%s %s (%d levels)\n\n", g.Kind.Icon(), g.Title, g.TotalLevels())

	for !s.Finished() {
		snap := s.Snapshot()
		q := snap.Question
		if q == nil {
			break
		}

		fmt.Fprintf(out, "── Level %d/%d ── score %d\n", snap.CurrentLevel(), g.TotalLevels(), snap.Score)
		fmt.Fprintln(out, q.Prompt)
		if q.Hint != "" {
			fmt.Fprintf(out, "(hint: %s)\n", q.Hint)
		}
		for i, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s %s\n", i+1, o.Emoji, o.Label)
		}
		if q.TimeLimit > 0 {
			fmt.Fprintf(out, "(%s to answer)\n", q.TimeLimit)
		}

		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		var res game.Outcome
		if g.Kind.FreeText() {
			if line == "" {
				fmt.Fprintln(out, "Write something first.")
				continue
			}
			res = s.SubmitText(q.ID, line)
		} else {
			n, err := strconv.Atoi(line)
			if err != nil || n < 1 || n > len(q.Options) {
				fmt.Fprintf(out, "Pick a number from 1 to %d.\n\n", len(q.Options))
				continue
			}
			res = s.SelectOption(q.ID, q.Options[n-1].ID)
		}

		if !res.Accepted {
			if a, ok := s.Answer(q.ID); ok && a.TimedOut {
				fmt.Fprintln(out, "⏰ Time's up!")
			}
			fmt.Fprintln(out)
			continue
		}

		switch {
		case g.Kind.FreeText():
			fmt.Fprintf(out, "Thanks for sharing! +%d\n", res.Reward)
		case res.Correct:
			fmt.Fprintf(out, "✓ Great job! +%d\n", res.Reward)
		default:
			fmt.Fprintln(out, "✗ Not quite.")
		}
		if res.Response != "" {
			fmt.Fprintln(out, res.Response)
		}
		fmt.Fprintln(out)
	}

	sum := s.Summary()
	fmt.Fprintf(out, "── Done: score %d, %d/%d correct ──\n", sum.Score, sum.Correct, sum.Answered)
	if g.Policy.PassScore > 0 {
		if sum.Passed {
			fmt.Fprintf(out, "Passed (needed %d)\n", g.Policy.PassScore)
		} else {
			fmt.Fprintf(out, "Not passed (needed %d)\n", g.Policy.PassScore)
		}
	}
	return nil
}
