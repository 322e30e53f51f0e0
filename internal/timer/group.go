// Package timer provides fire-once callbacks owned by a component lifecycle.
//
// A Group collects every timer a screen or engine schedules. Closing the group
// cancels whatever is still pending and turns later scheduling into a no-op,
// so no callback can touch state after its owner is torn down.
package timer

import (
	"sync"
	"time"
)

// Group owns a set of scheduled callbacks.
type Group struct {
	clock Clock

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]Stopper
	closed  bool
}

// Handle is a disposable reference to one scheduled callback.
type Handle struct {
	group *Group
	id    uint64
}

// NewGroup creates a Group scheduling on clock.
func NewGroup(clock Clock) *Group {
	if clock == nil {
		clock = Real()
	}
	return &Group{
		clock:   clock,
		pending: make(map[uint64]Stopper),
	}
}

// Clock returns the clock the group schedules on.
func (g *Group) Clock() Clock {
	return g.clock
}

// After schedules f to run once after d. The callback is skipped if the
// handle is cancelled or the group is closed before it fires. Returns nil
// when the group is already closed.
func (g *Group) After(d time.Duration, f func()) *Handle {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}

	g.nextID++
	id := g.nextID
	h := &Handle{group: g, id: id}
	g.pending[id] = g.clock.AfterFunc(d, func() {
		if !g.claim(id) {
			return
		}
		f()
	})
	return h
}

// claim removes id from the pending set and reports whether it was still live.
func (g *Group) claim(id uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return false
	}
	if _, ok := g.pending[id]; !ok {
		return false
	}
	delete(g.pending, id)
	return true
}

// Pending returns the number of live callbacks.
func (g *Group) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

// CancelAll stops every pending callback but keeps the group usable.
func (g *Group) CancelAll() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for id, s := range g.pending {
		s.Stop()
		delete(g.pending, id)
	}
}

// Close cancels every pending callback. Later calls to After return nil.
func (g *Group) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	for id, s := range g.pending {
		s.Stop()
		delete(g.pending, id)
	}
	g.closed = true
}

// Closed reports whether Close has been called.
func (g *Group) Closed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closed
}

// Cancel stops the callback. Returns true if it was still pending.
// Safe to call on a nil handle.
func (h *Handle) Cancel() bool {
	if h == nil {
		return false
	}
	g := h.group
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.pending[h.id]
	if !ok {
		return false
	}
	delete(g.pending, h.id)
	s.Stop()
	return true
}

// Active reports whether the callback is still waiting to fire.
func (h *Handle) Active() bool {
	if h == nil {
		return false
	}
	h.group.mu.Lock()
	defer h.group.mu.Unlock()
	_, ok := h.group.pending[h.id]
	return ok
}
