package feedback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/playdeck/internal/timer"
)

func newTestController(opts ...Option) (*Controller, *timer.Fake) {
	clk := timer.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return New(timer.NewGroup(clk), opts...), clk
}

func requireIdle(t *testing.T, c *Controller) {
	t.Helper()
	st := c.State()
	assert.Nil(t, st.FlashPoints, "flash points")
	assert.False(t, st.ShowConfetti, "confetti")
	assert.True(t, st.Idle())
}

func requireActive(t *testing.T, c *Controller, points int, confetti bool) {
	t.Helper()
	st := c.State()
	require.NotNil(t, st.FlashPoints)
	assert.Equal(t, points, *st.FlashPoints)
	assert.Equal(t, confetti, st.ShowConfetti)
	assert.True(t, c.Active())
}

func TestStartsIdle(t *testing.T) {
	c, _ := newTestController()
	requireIdle(t, c)
}

func TestTriggerThenExpire(t *testing.T) {
	c, clk := newTestController()

	c.Trigger(5, true)
	requireActive(t, c, 5, true)

	clk.Advance(999 * time.Millisecond)
	requireActive(t, c, 5, true)

	clk.Advance(time.Millisecond)
	requireIdle(t, c)
}

func TestRetriggerReanchorsExpiry(t *testing.T) {
	c, clk := newTestController()

	c.Trigger(3, false)
	requireActive(t, c, 3, false)

	clk.Advance(200 * time.Millisecond)
	c.Trigger(7, true)
	requireActive(t, c, 7, true)

	// The first trigger's window would have closed here.
	clk.Advance(800 * time.Millisecond)
	requireActive(t, c, 7, true)

	clk.Advance(199 * time.Millisecond)
	requireActive(t, c, 7, true)

	clk.Advance(time.Millisecond)
	requireIdle(t, c)
	assert.Equal(t, 0, clk.Pending())
}

func TestZeroPointsIsActive(t *testing.T) {
	c, clk := newTestController()

	c.Trigger(0, false)
	requireActive(t, c, 0, false)

	clk.Advance(DefaultWindow)
	requireIdle(t, c)
}

func TestConfettiOnlyRaisedWhenRequested(t *testing.T) {
	c, clk := newTestController()

	c.Trigger(2, true)
	c.Trigger(4, false)
	// The flash follows the latest call; confetti stays up until the window closes.
	requireActive(t, c, 4, true)

	clk.Advance(DefaultWindow)
	requireIdle(t, c)
}

func TestResetIsImmediate(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Controller)
	}{
		{"from idle", func(c *Controller) {}},
		{"from active", func(c *Controller) { c.Trigger(5, true) }},
		{"after retrigger", func(c *Controller) { c.Trigger(1, false); c.Trigger(9, true) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clk := newTestController()
			tt.setup(c)

			c.Reset()
			requireIdle(t, c)

			clk.Advance(2 * DefaultWindow)
			requireIdle(t, c)
		})
	}
}

func TestResetThenTriggerGetsFullWindow(t *testing.T) {
	c, clk := newTestController()

	c.Trigger(5, true)
	clk.Advance(500 * time.Millisecond)
	c.Reset()
	c.Trigger(6, false)

	clk.Advance(999 * time.Millisecond)
	requireActive(t, c, 6, false)
	clk.Advance(time.Millisecond)
	requireIdle(t, c)
}

func TestOnChangeNotifications(t *testing.T) {
	var seen []State
	c, clk := newTestController(WithOnChange(func(s State) { seen = append(seen, s) }))

	c.Trigger(5, true)
	clk.Advance(DefaultWindow)
	c.Reset() // already idle: no notification

	require.Len(t, seen, 2)
	require.NotNil(t, seen[0].FlashPoints)
	assert.Equal(t, 5, *seen[0].FlashPoints)
	assert.True(t, seen[1].Idle())
}

func TestCustomWindow(t *testing.T) {
	c, clk := newTestController(WithWindow(250 * time.Millisecond))

	c.Trigger(1, false)
	clk.Advance(249 * time.Millisecond)
	requireActive(t, c, 1, false)
	clk.Advance(time.Millisecond)
	requireIdle(t, c)
}

func TestCloseCancelsExpiryAndDisablesTrigger(t *testing.T) {
	calls := 0
	c, clk := newTestController(WithOnChange(func(State) { calls++ }))

	c.Trigger(5, true)
	c.Close()
	requireIdle(t, c)
	assert.Equal(t, 0, clk.Pending())

	c.Trigger(8, true)
	requireIdle(t, c)

	clk.Advance(2 * DefaultWindow)
	assert.Equal(t, 1, calls, "only the first trigger should notify")
}

// Property: for any sequence of triggers, the controller is Idle or shows the
// latest points, and it is Idle exactly one window after the last trigger.
func TestTriggerSequenceProperty(t *testing.T) {
	sequences := [][]struct {
		gap    time.Duration
		points int
		conf   bool
	}{
		{{0, 1, true}},
		{{0, 1, false}, {100 * time.Millisecond, 2, false}, {100 * time.Millisecond, 3, true}},
		{{0, 10, true}, {999 * time.Millisecond, 20, false}},
		{{0, 4, false}, {1500 * time.Millisecond, 5, true}, {10 * time.Millisecond, -1, false}},
	}

	for i, seq := range sequences {
		c, clk := newTestController()
		last := 0
		for _, step := range seq {
			clk.Advance(step.gap)
			c.Trigger(step.points, step.conf)
			last = step.points

			st := c.State()
			require.NotNil(t, st.FlashPoints, "sequence %d", i)
			assert.Equal(t, last, *st.FlashPoints, "sequence %d", i)
		}

		clk.Advance(DefaultWindow - time.Millisecond)
		require.True(t, c.Active(), "sequence %d should still be active", i)
		clk.Advance(time.Millisecond)
		require.True(t, c.State().Idle(), "sequence %d should be idle", i)
	}
}
