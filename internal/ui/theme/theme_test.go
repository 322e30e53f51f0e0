package theme

import "testing"

func TestTierClamps(t *testing.T) {
	if Tier(-1) != Text {
		t.Error("negative rank should use the lowest tier")
	}
	if Tier(99) != Accent {
		t.Error("large rank should use the highest tier")
	}
	if Tier(2) != Primary {
		t.Error("rank 2 should be primary")
	}
}

func TestTopicColor(t *testing.T) {
	if TopicColor("health") != Success {
		t.Error("health should be green")
	}
	if TopicColor("unknown") != Primary {
		t.Error("unknown topics fall back to primary")
	}
}
