package play

import (
	"log"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/playdeck/internal/game"
	"github.com/abhisek/playdeck/internal/rewards"
	"github.com/abhisek/playdeck/internal/router"
	"github.com/abhisek/playdeck/internal/screen"
	"github.com/abhisek/playdeck/internal/screens/summary"
	"github.com/abhisek/playdeck/internal/ui/components"
	"github.com/abhisek/playdeck/internal/ui/layout"
)

// PlayScreen runs one game session.
type PlayScreen struct {
	deps    Deps
	game    *game.Game
	session *game.Session

	// wake coalesces change notifications from the session, which may
	// arrive on timer goroutines. done stops the listener.
	wake chan struct{}
	done chan struct{}

	snap       game.Snapshot
	runID      string
	questionID string
	options    components.OptionList
	input      components.TextInput
	sounded    map[string]bool // question IDs whose answer cue played
	deposit    *rewards.Deposit
	ticking    bool
	frame      int
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.Closer = (*PlayScreen)(nil)
var _ screen.Resumer = (*PlayScreen)(nil)

// New creates a PlayScreen for g. The session starts immediately.
func New(deps Deps, g *game.Game) *PlayScreen {
	p := &PlayScreen{
		deps: deps,
		game: g,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}

	opts := []game.SessionOption{
		game.WithClock(deps.clock()),
		game.WithOnChange(p.signal),
	}
	if deps.AdvanceDelay > 0 {
		opts = append(opts, game.WithAdvanceDelay(deps.AdvanceDelay))
	}
	p.session = game.NewSession(g, opts...)
	p.sync()
	return p
}

// signal is the session's change callback. It never blocks.
func (p *PlayScreen) signal() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *PlayScreen) listen() tea.Cmd {
	wake, done := p.wake, p.done
	return func() tea.Msg {
		select {
		case <-wake:
			return sessionChangedMsg{}
		case <-done:
			return nil
		}
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{p.listen(), p.maybeTick()}
	if p.game.Kind.FreeText() && p.snap.Question != nil {
		cmds = append(cmds, p.input.Init())
	}
	return tea.Batch(cmds...)
}

func (p *PlayScreen) Title() string {
	return p.game.Kind.Icon() + " " + p.game.Title
}

// Session exposes the running session.
func (p *PlayScreen) Session() *game.Session {
	return p.session
}

// Close stops the session's timers and the change listener.
func (p *PlayScreen) Close() {
	select {
	case <-p.done:
		return
	default:
	}
	close(p.done)
	p.session.Close()
	log.Printf("play: closed %s run %s", p.game.ID, p.runID)
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.snap.Finished:
		hints := []layout.KeyHint{
			{Key: "r", Description: "Try again"},
			{Key: "s", Description: "Summary"},
		}
		if p.snap.NextEnabled && p.hasNext() {
			hints = append([]layout.KeyHint{{Key: "n", Description: "Next game"}}, hints...)
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	case p.snap.Phase == game.PhaseAnswered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	case p.game.Kind.FreeText():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Pick"},
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionChangedMsg:
		return p, tea.Batch(p.listen(), p.sync(), p.maybeTick())

	case animTickMsg:
		p.ticking = false
		p.frame++
		p.snap = p.session.Snapshot()
		return p, p.maybeTick()

	case components.OptionChosenMsg:
		if p.snap.Question == nil {
			return p, nil
		}
		out := p.session.SelectOption(p.snap.Question.ID, msg.OptionID)
		if !out.Accepted {
			return p, nil
		}
		return p, tea.Batch(p.sync(), p.maybeTick())

	case components.TextSubmittedMsg:
		if p.snap.Question == nil {
			return p, nil
		}
		p.session.SubmitText(p.snap.Question.ID, msg.Text)
		return p, tea.Batch(p.sync(), p.maybeTick())

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	// Cursor blink and other input plumbing.
	if p.game.Kind.FreeText() && p.snap.Phase == game.PhaseAsking {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.snap.Finished {
		switch key {
		case "r":
			return p, p.tryAgain()
		case "n":
			return p, p.nextGame()
		case "s", "enter":
			return p, p.showSummary()
		}
		return p, nil
	}

	if p.snap.Phase == game.PhaseAnswered {
		if key == "enter" || key == "space" || key == " " {
			p.session.SkipWait()
			return p, p.sync()
		}
		return p, nil
	}

	var cmd tea.Cmd
	if p.game.Kind.FreeText() {
		p.input, cmd = p.input.Update(msg)
	} else {
		p.options, cmd = p.options.Update(msg)
	}
	return p, cmd
}

func (p *PlayScreen) tryAgain() tea.Cmd {
	p.session.Reset()
	p.deposit = nil
	return p.sync()
}

func (p *PlayScreen) hasNext() bool {
	if p.deps.Catalog == nil {
		return false
	}
	_, ok := p.deps.Catalog.Next(p.game.ID)
	return ok
}

func (p *PlayScreen) nextGame() tea.Cmd {
	if !p.snap.NextEnabled || p.deps.Catalog == nil {
		return nil
	}
	next, ok := p.deps.Catalog.Next(p.game.ID)
	if !ok {
		return nil
	}
	s := New(p.deps, next)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
}

func (p *PlayScreen) showSummary() tea.Cmd {
	sum := p.session.Summary()
	var badges []rewards.Badge
	if p.deposit != nil {
		badges = p.deposit.Badges
	}
	s := summary.New(sum, p.game.Policy.PassScore, badges)
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

// sync pulls a fresh snapshot and reacts to what changed since the last
// one: new question widgets, answer cues and the end-of-run deposit.
func (p *PlayScreen) sync() tea.Cmd {
	snap := p.session.Snapshot()
	p.snap = snap

	var cmds []tea.Cmd
	if snap.RunID != p.runID {
		p.runID = snap.RunID
		p.sounded = make(map[string]bool)
		p.questionID = ""
	}

	if q := snap.Question; q != nil && q.ID != p.questionID {
		p.questionID = q.ID
		if p.game.Kind.FreeText() {
			p.input = components.NewTextInput("Type your answer...", 200)
			cmds = append(cmds, p.input.Init())
		} else {
			p.options = components.NewOptionList(q.Options)
		}
	}

	if a := snap.Answer; a != nil {
		p.options.Picked = a.OptionID
		p.options.Revealed = a.TimedOut
		if !p.sounded[a.QuestionID] {
			p.sounded[a.QuestionID] = true
			if a.Correct {
				p.deps.sound().Correct(a.Reward)
			} else if !p.game.Kind.FreeText() {
				p.deps.sound().Miss()
			}
		}
	}

	if snap.Finished && p.deposit == nil && p.deps.Wallet != nil {
		d := p.deps.Wallet.Deposit(p.session.Summary())
		p.deposit = &d
		if snap.Passed {
			p.deps.sound().Fanfare()
		}
	}

	return tea.Batch(cmds...)
}

// maybeTick starts the animation tick when a countdown or confetti is on
// screen and no tick is already pending.
func (p *PlayScreen) maybeTick() tea.Cmd {
	if p.ticking {
		return nil
	}
	if p.snap.Deadline.IsZero() && !p.snap.Feedback.ShowConfetti {
		return nil
	}
	p.ticking = true
	return tea.Tick(animInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Resume restarts the change listener and animation after a screen that
// was pushed on top (the summary) is popped.
func (p *PlayScreen) Resume() tea.Cmd {
	select {
	case <-p.done:
		return nil
	default:
	}
	p.ticking = false
	return tea.Batch(p.listen(), p.sync(), p.maybeTick())
}
