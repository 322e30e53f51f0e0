package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette tuned for dark terminals.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
	ArcadePink   = lipgloss.Color("#EC4899")
)

// ConfettiColors cycle through the confetti overlay.
var ConfettiColors = []color.Color{ArcadeYellow, ArcadeCyan, ArcadePink, Success, Accent, Primary}

// tiers color badge rarities from lowest to highest.
var tiers = []color.Color{Text, Secondary, Primary, Accent}

// Tier returns the color for a rarity rank, clamped to the known tiers.
func Tier(rank int) color.Color {
	return tiers[min(max(rank, 0), len(tiers)-1)]
}

// TopicColor gives each catalog topic its own accent. Unknown topics get
// the primary color.
func TopicColor(topic string) color.Color {
	switch topic {
	case "civics":
		return ArcadeCyan
	case "entrepreneurship":
		return ArcadeYellow
	case "health":
		return Success
	case "sustainability":
		return Secondary
	default:
		return Primary
	}
}

// Text styles
var (
	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Muted = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	// ButtonActive highlights the action a finished game offers first.
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	Flash = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(ArcadeYellow).
		Bold(true).
		Padding(0, 1)
)
