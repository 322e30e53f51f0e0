package catalog

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/playdeck/internal/game"
)

// gameFile is the on-disk YAML shape of one game.
type gameFile struct {
	Format        string         `yaml:"format"`
	ID            string         `yaml:"id"`
	Title         string         `yaml:"title"`
	Topic         string         `yaml:"topic"`
	Kind          string         `yaml:"kind"`
	Description   string         `yaml:"description"`
	Next          string         `yaml:"next"`
	CoinsPerLevel int            `yaml:"coins_per_level"`
	Policy        policyFile     `yaml:"policy"`
	Questions     []questionFile `yaml:"questions"`
}

type policyFile struct {
	AdvanceDelay  *time.Duration `yaml:"advance_delay"`
	PassScore     int            `yaml:"pass_score"`
	Gate          string         `yaml:"gate"`
	Tally         string         `yaml:"tally"`
	Confetti      *bool          `yaml:"confetti"`
	FlashOnMiss   bool           `yaml:"flash_on_miss"`
	DefaultReward int            `yaml:"default_reward"`
}

type questionFile struct {
	ID        string        `yaml:"id"`
	Prompt    string        `yaml:"prompt"`
	Hint      string        `yaml:"hint"`
	TimeLimit time.Duration `yaml:"time_limit"`
	Options   []optionFile  `yaml:"options"`
}

type optionFile struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Emoji    string `yaml:"emoji"`
	Correct  bool   `yaml:"correct"`
	Reward   int    `yaml:"reward"`
	Next     string `yaml:"next"`
	Ends     bool   `yaml:"ends"`
	Response string `yaml:"response"`
}

// Parse decodes one YAML game document. It checks the schema and the
// format version but not cross-game references.
func Parse(raw []byte) (*game.Game, error) {
	if err := ValidateDocument(raw); err != nil {
		return nil, err
	}

	var f gameFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode game: %w", err)
	}
	if err := checkFormat(f.Format); err != nil {
		return nil, err
	}
	return f.toGame()
}

func (f *gameFile) toGame() (*game.Game, error) {
	kind, err := game.ParseKind(f.Kind)
	if err != nil {
		return nil, err
	}

	policy := game.DefaultPolicy()
	if f.Policy.AdvanceDelay != nil {
		policy.AdvanceDelay = *f.Policy.AdvanceDelay
	}
	if f.Policy.Confetti != nil {
		policy.Confetti = *f.Policy.Confetti
	}
	if f.Policy.DefaultReward > 0 {
		policy.DefaultReward = f.Policy.DefaultReward
	}
	policy.PassScore = f.Policy.PassScore
	policy.FlashOnMiss = f.Policy.FlashOnMiss
	if policy.Gate, err = game.ParseGate(f.Policy.Gate); err != nil {
		return nil, err
	}
	if policy.Tally, err = game.ParseTally(f.Policy.Tally); err != nil {
		return nil, err
	}

	g := &game.Game{
		ID:            f.ID,
		Title:         f.Title,
		Topic:         f.Topic,
		Kind:          kind,
		Description:   f.Description,
		Next:          f.Next,
		CoinsPerLevel: f.CoinsPerLevel,
		Policy:        policy,
		Questions:     make([]game.Question, 0, len(f.Questions)),
	}
	for _, qf := range f.Questions {
		q := game.Question{
			ID:        qf.ID,
			Prompt:    qf.Prompt,
			Hint:      qf.Hint,
			TimeLimit: qf.TimeLimit,
		}
		for _, of := range qf.Options {
			q.Options = append(q.Options, game.Option{
				ID:       of.ID,
				Label:    of.Label,
				Emoji:    of.Emoji,
				Correct:  of.Correct,
				Reward:   of.Reward,
				Next:     of.Next,
				Ends:     of.Ends,
				Response: of.Response,
			})
		}
		g.Questions = append(g.Questions, q)
	}
	return g, nil
}
