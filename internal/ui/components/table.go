package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/ui/theme"
)

// ContentWidth is the inner width shared by every box drawn on the table,
// so stacked sections line up. The frame border and padding take 6 columns.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// TableFrame draws the outer double border and centers content inside it.
func TableFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card draws content on a rounded card cw columns wide. An empty edge
// color uses the default border.
func Card(content string, cw int, edge color.Color) string {
	if edge == nil {
		edge = theme.Border
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(edge).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ButtonState is how a menu button is drawn.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

// MenuButton renders a bordered button of fixed width.
func MenuButton(label string, state ButtonState, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch state {
	case ButtonSelected:
		return style.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	case ButtonDisabled:
		return style.Foreground(theme.TextDim).
			BorderForeground(theme.Border).
			Render(label)
	default:
		return style.Foreground(theme.Text).
			BorderForeground(theme.Border).
			Render(label)
	}
}
