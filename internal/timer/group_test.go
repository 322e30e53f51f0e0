package timer

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestGroupAfterFires(t *testing.T) {
	clk := NewFake(epoch)
	g := NewGroup(clk)

	fired := 0
	h := g.After(time.Second, func() { fired++ })

	clk.Advance(999 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired early: %d", fired)
	}
	if !h.Active() {
		t.Error("expected handle active before deadline")
	}

	clk.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("expected 1 fire, got %d", fired)
	}
	if h.Active() {
		t.Error("expected handle inactive after firing")
	}
	if g.Pending() != 0 {
		t.Errorf("expected no pending, got %d", g.Pending())
	}
}

func TestHandleCancel(t *testing.T) {
	clk := NewFake(epoch)
	g := NewGroup(clk)

	fired := false
	h := g.After(time.Second, func() { fired = true })

	if !h.Cancel() {
		t.Error("expected Cancel to report pending")
	}
	if h.Cancel() {
		t.Error("second Cancel should report false")
	}

	clk.Advance(2 * time.Second)
	if fired {
		t.Error("cancelled callback fired")
	}
	if clk.Pending() != 0 {
		t.Errorf("expected fake clock to drop stopped timer, got %d", clk.Pending())
	}
}

func TestNilHandle(t *testing.T) {
	var h *Handle
	if h.Cancel() {
		t.Error("nil Cancel should be false")
	}
	if h.Active() {
		t.Error("nil Active should be false")
	}
}

func TestGroupClose(t *testing.T) {
	clk := NewFake(epoch)
	g := NewGroup(clk)

	fired := 0
	g.After(time.Second, func() { fired++ })
	g.After(2*time.Second, func() { fired++ })

	g.Close()
	if !g.Closed() {
		t.Error("expected Closed")
	}
	if h := g.After(time.Second, func() { fired++ }); h != nil {
		t.Error("After on closed group should return nil")
	}

	clk.Advance(5 * time.Second)
	if fired != 0 {
		t.Errorf("expected no fires after Close, got %d", fired)
	}
	g.Close()
}

func TestGroupCancelAllKeepsGroupUsable(t *testing.T) {
	clk := NewFake(epoch)
	g := NewGroup(clk)

	var order []string
	g.After(time.Second, func() { order = append(order, "old") })
	g.CancelAll()
	g.After(time.Second, func() { order = append(order, "new") })

	clk.Advance(time.Second)
	if len(order) != 1 || order[0] != "new" {
		t.Errorf("order = %v, want [new]", order)
	}
}

func TestFakeOrdersByDeadlineThenSchedule(t *testing.T) {
	clk := NewFake(epoch)
	g := NewGroup(clk)

	var order []int
	g.After(300*time.Millisecond, func() { order = append(order, 3) })
	g.After(100*time.Millisecond, func() { order = append(order, 1) })
	g.After(100*time.Millisecond, func() { order = append(order, 2) })

	clk.Advance(time.Second)
	want := []int{1, 2, 3}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestFakeNestedScheduling(t *testing.T) {
	clk := NewFake(epoch)
	g := NewGroup(clk)

	var at []time.Duration
	g.After(100*time.Millisecond, func() {
		at = append(at, clk.Now().Sub(epoch))
		g.After(100*time.Millisecond, func() {
			at = append(at, clk.Now().Sub(epoch))
		})
	})

	clk.Advance(250 * time.Millisecond)
	if len(at) != 2 || at[0] != 100*time.Millisecond || at[1] != 200*time.Millisecond {
		t.Errorf("fire times = %v", at)
	}
	if got := clk.Now().Sub(epoch); got != 250*time.Millisecond {
		t.Errorf("now = %v, want 250ms", got)
	}
}

func TestRealClock(t *testing.T) {
	g := NewGroup(nil)
	done := make(chan struct{})
	g.After(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("real clock callback did not fire")
	}
}
