// Package rewards turns finished game runs into coins, XP and badges.
// Everything lives in memory for the lifetime of the process.
package rewards

import "time"

// BadgeType identifies the category of achievement.
type BadgeType string

const (
	BadgeComplete BadgeType = "complete" // passed a game
	BadgePerfect  BadgeType = "perfect"  // every answer correct
	BadgeStreak   BadgeType = "streak"   // consecutive correct answers
	BadgeExplorer BadgeType = "explorer" // played a game from every topic
)

// AllBadgeTypes returns all badge types in display order.
func AllBadgeTypes() []BadgeType {
	return []BadgeType{BadgeComplete, BadgePerfect, BadgeStreak, BadgeExplorer}
}

// DisplayName returns a human-readable label for the badge type.
func (t BadgeType) DisplayName() string {
	switch t {
	case BadgeComplete:
		return "Champion"
	case BadgePerfect:
		return "Perfect"
	case BadgeStreak:
		return "Streak"
	case BadgeExplorer:
		return "Explorer"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the badge type.
func (t BadgeType) Icon() string {
	switch t {
	case BadgeComplete:
		return "🏆"
	case BadgePerfect:
		return "🌟"
	case BadgeStreak:
		return "⚡"
	case BadgeExplorer:
		return "🧭"
	default:
		return "✦"
	}
}

// Badge is a single earned badge.
type Badge struct {
	Type      BadgeType
	Rarity    Rarity
	GameID    string // empty for explorer badges
	GameTitle string
	RunID     string
	Reason    string // e.g. "Passed Water Saver"
	AwardedAt time.Time
}
