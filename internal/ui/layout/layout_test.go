package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("narrow terminal should be too small")
	}
	if !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("short terminal should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}

func TestRenderHeaderShowsWallet(t *testing.T) {
	h := RenderHeader(Header{Title: "Play", Coins: 120, XP: 7}, 80)
	if !strings.Contains(h, "120") || !strings.Contains(h, "7 xp") {
		t.Errorf("header missing wallet totals:\n%s", h)
	}
	if !strings.Contains(h, "Play") {
		t.Errorf("header missing title:\n%s", h)
	}
	if strings.Contains(h, "🏆") {
		t.Error("badge count should be hidden until one is earned")
	}

	h = RenderHeader(Header{Title: "Play", Badges: 3}, 80)
	if !strings.Contains(h, "🏆 3") {
		t.Errorf("header missing badge count:\n%s", h)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 60)
	if !strings.Contains(f, "Esc") || !strings.Contains(f, "Back") {
		t.Errorf("footer missing hint:\n%s", f)
	}
}

func TestRenderFooterDropsOverflow(t *testing.T) {
	hints := []KeyHint{
		{Key: "1-9", Description: "Answer"},
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back to the menu"},
	}
	f := RenderFooter(hints, 30)
	if !strings.Contains(f, "Answer") {
		t.Error("first hint should always fit")
	}
	if strings.Contains(f, "Back to the menu") {
		t.Error("last hint should be dropped on a narrow footer")
	}
	if got := lipgloss.Height(f); got != 3 {
		t.Errorf("footer height = %d, want a single bordered line", got)
	}
}

func TestRenderFrameHeight(t *testing.T) {
	header := RenderHeader(Header{Title: "T"}, 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
}
