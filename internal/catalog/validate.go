package catalog

import (
	"errors"
	"fmt"

	"github.com/abhisek/playdeck/internal/game"
)

// Validate checks the structural rules of a set of games that the schema
// cannot express: unique IDs, reachable branches, resolvable "next"
// links and achievable pass scores. All problems are returned joined.
func Validate(games []*game.Game) error {
	var errs []error
	ids := make(map[string]bool, len(games))
	for _, g := range games {
		if ids[g.ID] {
			errs = append(errs, &ContentError{Game: g.ID, Message: "duplicate game id"})
		}
		ids[g.ID] = true
	}

	for _, g := range games {
		for _, msg := range checkGame(g) {
			errs = append(errs, &ContentError{Game: g.ID, Message: msg})
		}
		if g.Next != "" && !ids[g.Next] {
			errs = append(errs, &ContentError{Game: g.ID, Message: fmt.Sprintf("next game %q does not exist", g.Next)})
		}
	}
	return errors.Join(errs...)
}

func checkGame(g *game.Game) []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if g.ID == "" {
		add("missing id")
	}
	if g.Title == "" {
		add("missing title")
	}
	if !knownTopic(g.Topic) {
		add("unknown topic %q", g.Topic)
	}
	if len(g.Questions) == 0 {
		add("no questions")
		return problems
	}

	qids := make(map[string]int, len(g.Questions))
	for i, q := range g.Questions {
		if _, dup := qids[q.ID]; dup {
			add("duplicate question id %q", q.ID)
		}
		qids[q.ID] = i
	}

	for i, q := range g.Questions {
		if g.Kind.FreeText() {
			if len(q.Options) > 0 {
				add("question %q: journal questions take no options", q.ID)
			}
			continue
		}
		if len(q.Options) == 0 {
			add("question %q: no options", q.ID)
			continue
		}
		if len(q.CorrectOptions()) == 0 {
			add("question %q: no correct option", q.ID)
		}
		if g.Kind == game.KindReflex && q.TimeLimit <= 0 {
			add("question %q: reflex questions need a time_limit", q.ID)
		}

		oids := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if oids[o.ID] {
				add("question %q: duplicate option id %q", q.ID, o.ID)
			}
			oids[o.ID] = true

			if o.Next == "" {
				continue
			}
			if o.Ends {
				add("question %q option %q: cannot both end and branch", q.ID, o.ID)
			}
			target, ok := qids[o.Next]
			switch {
			case !ok:
				add("question %q option %q: branch target %q does not exist", q.ID, o.ID, o.Next)
			case target <= i:
				add("question %q option %q: branch target %q must come later", q.ID, o.ID, o.Next)
			}
		}
	}

	if g.Policy.PassScore > 0 {
		if best := maxScore(g); g.Policy.PassScore > best {
			add("pass_score %d is higher than the best possible score %d", g.Policy.PassScore, best)
		}
	}
	if g.Policy.Gate == game.GateScore && g.Policy.PassScore == 0 {
		add("score gate needs a pass_score")
	}
	return problems
}

// maxScore is the best score any path through g can reach. Branches only
// go forward, so a single backward pass over the questions suffices.
func maxScore(g *game.Game) int {
	n := len(g.Questions)
	best := make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		q := g.Questions[i]
		if g.Kind.FreeText() {
			best[i] = g.RewardFor(game.Option{}) + best[i+1]
			continue
		}
		for _, o := range q.Options {
			pts := 0
			if o.Correct {
				pts = g.RewardFor(o)
			}
			rest := best[i+1]
			switch {
			case o.Ends:
				rest = 0
			case o.Next != "":
				if t := g.QuestionIndex(o.Next); t > i {
					rest = best[t]
				}
			}
			if pts+rest > best[i] {
				best[i] = pts + rest
			}
		}
	}
	return best[0]
}
