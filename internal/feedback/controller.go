// Package feedback owns the short-lived celebration state shown after an
// answer: a flashing point value and an optional confetti burst.
package feedback

import (
	"sync"
	"time"

	"github.com/abhisek/playdeck/internal/timer"
)

// DefaultWindow is how long feedback stays visible after the last Trigger.
const DefaultWindow = 1000 * time.Millisecond

// State is a snapshot of the controller's observable state.
// Idle is FlashPoints == nil and ShowConfetti == false.
type State struct {
	FlashPoints  *int
	ShowConfetti bool
}

// Idle reports whether the state is the rest state.
func (s State) Idle() bool {
	return s.FlashPoints == nil && !s.ShowConfetti
}

// Option configures a Controller.
type Option func(*Controller)

// WithWindow overrides the expiry window.
func WithWindow(d time.Duration) Option {
	return func(c *Controller) { c.window = d }
}

// WithOnChange registers a callback invoked after every state transition,
// including auto-expiry. It runs outside the controller lock.
func WithOnChange(f func(State)) Option {
	return func(c *Controller) { c.onChange = f }
}

// Controller provides trigger/reset with built-in auto-expiry.
type Controller struct {
	timers   *timer.Group
	window   time.Duration
	onChange func(State)

	mu       sync.Mutex
	flash    *int
	confetti bool
	expiry   *timer.Handle
	gen      uint64
	closed   bool
}

// New creates a Controller scheduling its expiry on timers. The group is
// shared with the owning component so closing either cancels the expiry.
func New(timers *timer.Group, opts ...Option) *Controller {
	c := &Controller{
		timers: timers,
		window: DefaultWindow,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Trigger flashes points and, when withConfetti is true, raises the confetti
// flag. Any pending expiry is superseded: the controller returns to Idle one
// window after the most recent call.
func (c *Controller) Trigger(points int, withConfetti bool) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	p := points
	c.flash = &p
	if withConfetti {
		c.confetti = true
	}
	c.expiry.Cancel()
	c.gen++
	gen := c.gen
	c.expiry = c.timers.After(c.window, func() { c.expire(gen) })
	st := c.stateLocked()
	c.mu.Unlock()

	c.notify(st)
}

// expire resets the state if gen is still the latest trigger.
func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	if c.closed || c.gen != gen {
		c.mu.Unlock()
		return
	}
	c.expiry = nil
	c.flash = nil
	c.confetti = false
	st := c.stateLocked()
	c.mu.Unlock()

	c.notify(st)
}

// Reset returns to Idle immediately and drops any pending expiry.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.gen++
	c.expiry.Cancel()
	c.expiry = nil
	changed := c.flash != nil || c.confetti
	c.flash = nil
	c.confetti = false
	st := c.stateLocked()
	closed := c.closed
	c.mu.Unlock()

	if changed && !closed {
		c.notify(st)
	}
}

// Close cancels the pending expiry and makes later triggers no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiry.Cancel()
	c.expiry = nil
	c.flash = nil
	c.confetti = false
	c.closed = true
}

// State returns the current observable state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Active reports whether feedback is currently visible.
func (c *Controller) Active() bool {
	return !c.State().Idle()
}

func (c *Controller) stateLocked() State {
	st := State{ShowConfetti: c.confetti}
	if c.flash != nil {
		v := *c.flash
		st.FlashPoints = &v
	}
	return st
}

func (c *Controller) notify(st State) {
	if c.onChange != nil {
		c.onChange(st)
	}
}
