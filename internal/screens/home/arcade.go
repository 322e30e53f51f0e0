package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/ui/components"
	"github.com/abhisek/playdeck/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = ` ██████╗ ██╗      █████╗ ██╗   ██╗██████╗ ███████╗ ██████╗██╗  ██╗
 ██╔══██╗██║     ██╔══██╗╚██╗ ██╔╝██╔══██╗██╔════╝██╔════╝██║ ██╔╝
 ██████╔╝██║     ███████║ ╚████╔╝ ██║  ██║█████╗  ██║     █████╔╝
 ██╔═══╝ ██║     ██╔══██║  ╚██╔╝  ██║  ██║██╔══╝  ██║     ██╔═██╗
 ██║     ███████╗██║  ██║   ██║   ██████╔╝███████╗╚██████╗██║  ██╗
 ╚═╝     ╚══════╝╚═╝  ╚═╝   ╚═╝   ╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝`

const arcadeTitleCompact = "P · L · A · Y · D · E · C · K"

// titleMinWidth is the narrowest frame that fits the block-letter title.
const titleMinWidth = 72

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw, width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact || width < titleMinWidth {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	// The art is wider than cw; PlaceHorizontal leaves it untouched.
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, style.Render(arcadeTitleFull))
}

// stats is the dashboard line shown under the title.
type stats struct {
	coins, xp, badges, played, games int
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(s stats, cw int, compact bool) string {
	coinStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	xpStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s %s",
			coinStyle.Render(fmt.Sprintf("●%d", s.coins)),
			xpStyle.Render(fmt.Sprintf("★%d", s.xp)),
			badgeStyle.Render(fmt.Sprintf("🏆%d", s.badges)),
			dimStyle.Render(fmt.Sprintf("%d/%d", s.played, s.games)),
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s  %s",
			coinStyle.Render(fmt.Sprintf("● %d COINS", s.coins)),
			xpStyle.Render(fmt.Sprintf("★ %d XP", s.xp)),
			badgeStyle.Render(fmt.Sprintf("🏆 %d", s.badges)),
			dimStyle.Render(fmt.Sprintf("%d/%d PLAYED", s.played, s.games)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []components.MenuItem, selected int, cw int) string {
	var buttons []string
	for i, item := range items {
		state := components.ButtonIdle
		switch {
		case item.Disabled:
			state = components.ButtonDisabled
		case i == selected:
			state = components.ButtonSelected
		}
		buttons = append(buttons, components.MenuButton(item.Label, state, buttonWidth))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []components.MenuItem, selected int, cw int) string {
	var lines []string
	for i, item := range items {
		var line string
		switch {
		case item.Disabled:
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + item.Label)
		case i == selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + item.Label + " ")
		default:
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + item.Label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderSuggestion renders the "up next" line under the menu.
func renderSuggestion(title string, cw int) string {
	if title == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render("Up next: " + title)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
