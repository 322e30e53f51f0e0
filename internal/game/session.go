package game

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/playdeck/internal/feedback"
	"github.com/abhisek/playdeck/internal/timer"
)

// Phase is where the session is in its question loop.
type Phase int

const (
	PhaseAsking   Phase = iota // Waiting for the learner
	PhaseAnswered              // Answer recorded, advance pending
	PhaseFinished              // Last question done
)

// Answer records how one question was resolved.
type Answer struct {
	QuestionID string
	OptionID   string // empty for text answers and timeouts
	Text       string // journal response
	Correct    bool
	Reward     int // points earned, zero when incorrect
	TimedOut   bool
	At         time.Time
}

// Outcome is the result of a selection attempt.
type Outcome struct {
	// Accepted is false when the call was ignored: the session is finished,
	// the question is not current or was already answered, or the option is
	// unknown.
	Accepted bool
	Correct  bool
	Reward   int
	Response string
	// Last is true when this answer resolves the final question.
	Last bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock schedules the session's timers on clock.
func WithClock(clock timer.Clock) SessionOption {
	return func(s *Session) { s.clock = clock }
}

// WithOnChange registers a callback invoked after every state change,
// including timer-driven ones. It runs outside the session lock and may be
// called from a timer goroutine.
func WithOnChange(f func()) SessionOption {
	return func(s *Session) { s.onChange = f }
}

// WithFeedbackWindow overrides the feedback expiry window.
func WithFeedbackWindow(d time.Duration) SessionOption {
	return func(s *Session) { s.feedbackWindow = d }
}

// WithAdvanceDelay overrides the game's advance delay.
func WithAdvanceDelay(d time.Duration) SessionOption {
	return func(s *Session) {
		s.advanceDelay = d
		s.delayOverride = true
	}
}

// Session is one learner's run through a game. It is safe for concurrent
// use: timer callbacks and UI events may arrive on different goroutines.
type Session struct {
	game           *Game
	clock          timer.Clock
	timers         *timer.Group
	feedback       *feedback.Controller
	feedbackWindow time.Duration
	advanceDelay   time.Duration
	delayOverride  bool
	onChange       func()

	mu         sync.Mutex
	runID      string
	epoch      uint64
	index      int
	score      int
	answers    map[string]Answer
	order      []string
	phase      Phase
	advance    *timer.Handle
	deadline   *timer.Handle
	deadlineAt time.Time
	streak     int
	bestStreak int
	startedAt  time.Time
	finishedAt time.Time
	closed     bool
}

// NewSession starts a run of g. The first question is open immediately.
func NewSession(g *Game, opts ...SessionOption) *Session {
	s := &Session{
		game:           g,
		clock:          timer.Real(),
		feedbackWindow: feedback.DefaultWindow,
	}
	for _, o := range opts {
		o(s)
	}
	if !s.delayOverride {
		s.advanceDelay = g.Policy.AdvanceDelay
	}

	s.timers = timer.NewGroup(s.clock)
	s.feedback = feedback.New(s.timers,
		feedback.WithWindow(s.feedbackWindow),
		feedback.WithOnChange(func(feedback.State) { s.notify() }),
	)

	s.mu.Lock()
	s.beginLocked()
	s.mu.Unlock()
	return s
}

// beginLocked resets the run state and opens the first question.
func (s *Session) beginLocked() {
	s.runID = uuid.New().String()
	s.epoch++
	s.index = 0
	s.score = 0
	s.answers = make(map[string]Answer, len(s.game.Questions))
	s.order = nil
	s.streak = 0
	s.bestStreak = 0
	s.advance = nil
	s.deadline = nil
	s.deadlineAt = time.Time{}
	s.startedAt = s.clock.Now()
	s.finishedAt = time.Time{}
	if len(s.game.Questions) == 0 {
		s.phase = PhaseFinished
		s.finishedAt = s.startedAt
		return
	}
	s.phase = PhaseAsking
	s.openLocked()
}

// openLocked arms the time limit for the current question, if any.
func (s *Session) openLocked() {
	q := &s.game.Questions[s.index]
	if q.TimeLimit <= 0 {
		s.deadlineAt = time.Time{}
		return
	}
	epoch, index := s.epoch, s.index
	s.deadlineAt = s.clock.Now().Add(q.TimeLimit)
	s.deadline = s.timers.After(q.TimeLimit, func() { s.timeout(epoch, index) })
}

// Game returns the content being played.
func (s *Session) Game() *Game {
	return s.game
}

// Feedback returns the session's feedback controller.
func (s *Session) Feedback() *feedback.Controller {
	return s.feedback
}

// SelectOption answers questionID with optionID. Only the current question
// is accepted and the first answer is final.
func (s *Session) SelectOption(questionID, optionID string) Outcome {
	s.mu.Lock()
	q, ok := s.openQuestionLocked(questionID)
	if !ok {
		s.mu.Unlock()
		return Outcome{}
	}
	opt, ok := q.Option(optionID)
	if !ok {
		s.mu.Unlock()
		log.Printf("game %s: question %s has no option %q", s.game.ID, questionID, optionID)
		return Outcome{}
	}

	ans := Answer{
		QuestionID: q.ID,
		OptionID:   opt.ID,
		Correct:    opt.Correct,
		At:         s.clock.Now(),
	}
	if opt.Correct {
		ans.Reward = s.game.RewardFor(opt)
	}
	out := s.recordLocked(ans, opt)
	out.Response = opt.Response
	s.mu.Unlock()

	s.celebrate(out.Correct, out.Reward)
	s.notify()
	return out
}

// SubmitText answers a free-text question. Blank responses are ignored;
// any other response counts as correct.
func (s *Session) SubmitText(questionID, text string) Outcome {
	text = strings.TrimSpace(text)
	if text == "" {
		return Outcome{}
	}

	s.mu.Lock()
	q, ok := s.openQuestionLocked(questionID)
	if !ok || len(q.Options) > 0 {
		s.mu.Unlock()
		return Outcome{}
	}
	ans := Answer{
		QuestionID: q.ID,
		Text:       text,
		Correct:    true,
		Reward:     s.game.Policy.reward(),
		At:         s.clock.Now(),
	}
	out := s.recordLocked(ans, Option{})
	s.mu.Unlock()

	s.celebrate(true, out.Reward)
	s.notify()
	return out
}

// openQuestionLocked returns the current question if questionID names it
// and it is still waiting for an answer.
func (s *Session) openQuestionLocked(questionID string) (*Question, bool) {
	if s.closed || s.phase != PhaseAsking {
		return nil, false
	}
	q := &s.game.Questions[s.index]
	if q.ID != questionID {
		return nil, false
	}
	if _, done := s.answers[q.ID]; done {
		return nil, false
	}
	return q, true
}

// recordLocked stores ans, updates the tally and schedules the advance.
func (s *Session) recordLocked(ans Answer, opt Option) Outcome {
	s.answers[ans.QuestionID] = ans
	s.order = append(s.order, ans.QuestionID)
	s.deadline.Cancel()
	s.deadline = nil

	if ans.Correct {
		s.streak++
		if s.streak > s.bestStreak {
			s.bestStreak = s.streak
		}
		if s.game.Policy.Tally == TallyLive || s.game.Policy.Tally == "" {
			s.score += ans.Reward
		}
	} else {
		s.streak = 0
	}

	next, last := s.nextIndexLocked(opt)
	s.phase = PhaseAnswered
	s.scheduleAdvanceLocked(ans, next, last)

	return Outcome{
		Accepted: true,
		Correct:  ans.Correct,
		Reward:   ans.Reward,
		Last:     last,
	}
}

// nextIndexLocked resolves where the session goes after the current
// question. Branches only move forward; an unknown or backward target falls
// through to the following question.
func (s *Session) nextIndexLocked(opt Option) (int, bool) {
	if opt.Ends {
		return s.index, true
	}
	next := s.index + 1
	if opt.Next != "" {
		if i := s.game.QuestionIndex(opt.Next); i > s.index {
			next = i
		} else {
			log.Printf("game %s: option %q branches to %q which is not ahead; falling through",
				s.game.ID, opt.ID, opt.Next)
		}
	}
	if next >= len(s.game.Questions) {
		return s.index, true
	}
	return next, false
}

func (s *Session) scheduleAdvanceLocked(ans Answer, next int, last bool) {
	epoch, from := s.epoch, s.index
	fire := func() { s.advanceFrom(epoch, from, ans, next, last) }
	if s.advanceDelay <= 0 {
		s.applyAdvanceLocked(ans, next, last)
		return
	}
	s.advance = s.timers.After(s.advanceDelay, fire)
}

// advanceFrom runs when the post-answer delay ends. It is dropped when the
// session was reset, closed or has already moved past question from.
func (s *Session) advanceFrom(epoch uint64, from int, ans Answer, next int, last bool) {
	s.mu.Lock()
	if s.closed || s.epoch != epoch || s.index != from || s.phase != PhaseAnswered {
		s.mu.Unlock()
		return
	}
	s.applyAdvanceLocked(ans, next, last)
	s.mu.Unlock()

	s.notify()
}

func (s *Session) applyAdvanceLocked(ans Answer, next int, last bool) {
	s.advance = nil
	if s.game.Policy.Tally == TallyAdvance && ans.Correct {
		s.score += ans.Reward
	}
	if last {
		s.phase = PhaseFinished
		s.finishedAt = s.clock.Now()
		return
	}
	s.index = next
	s.phase = PhaseAsking
	s.openLocked()
}

// timeout resolves a timed question nobody answered.
func (s *Session) timeout(epoch uint64, index int) {
	s.mu.Lock()
	if s.closed || s.epoch != epoch || s.index != index || s.phase != PhaseAsking {
		s.mu.Unlock()
		return
	}
	q := &s.game.Questions[index]
	s.deadline = nil
	out := s.recordLocked(Answer{
		QuestionID: q.ID,
		TimedOut:   true,
		At:         s.clock.Now(),
	}, Option{})
	s.mu.Unlock()

	s.celebrate(out.Correct, out.Reward)
	s.notify()
}

// SkipWait cancels the pending post-answer delay and advances now.
// Returns false if nothing was pending.
func (s *Session) SkipWait() bool {
	s.mu.Lock()
	if s.closed || s.phase != PhaseAnswered || !s.advance.Cancel() {
		s.mu.Unlock()
		return false
	}
	q := s.game.Questions[s.index]
	ans := s.answers[q.ID]
	opt, _ := q.Option(ans.OptionID)
	next, last := s.nextIndexLocked(opt)
	s.applyAdvanceLocked(ans, next, last)
	s.mu.Unlock()

	s.notify()
	return true
}

// Reset starts the game over: pending timers are cancelled, feedback is
// cleared and all answers are dropped.
func (s *Session) Reset() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.timers.CancelAll()
	s.beginLocked()
	s.mu.Unlock()

	s.feedback.Reset()
	s.notify()
}

// Close tears the session down. Pending timers never fire afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.feedback.Close()
	s.timers.Close()
}

func (s *Session) celebrate(correct bool, reward int) {
	switch {
	case correct:
		s.feedback.Trigger(reward, s.game.Policy.Confetti)
	case s.game.Policy.FlashOnMiss:
		s.feedback.Trigger(0, false)
	}
}

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// RunID identifies the current run; it changes on Reset.
func (s *Session) RunID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runID
}

// Index returns the current question index.
func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Score returns the running score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Finished reports whether the last question is done.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseFinished
}

// Passed reports whether the finished run reached the pass score.
func (s *Session) Passed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.passedLocked()
}

func (s *Session) passedLocked() bool {
	return s.phase == PhaseFinished && s.game.Policy.Passed(s.score)
}

// NextEnabled reports whether forward navigation is unlocked.
func (s *Session) NextEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextEnabledLocked()
}

func (s *Session) nextEnabledLocked() bool {
	if s.phase != PhaseFinished {
		return false
	}
	if s.game.Policy.Gate == GateScore {
		return s.passedLocked()
	}
	return true
}

// Answer returns the recorded answer for a question.
func (s *Session) Answer(questionID string) (Answer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.answers[questionID]
	return a, ok
}

// Answers returns the recorded answers in the order they were given.
func (s *Session) Answers() []Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Answer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.answers[id])
	}
	return out
}
