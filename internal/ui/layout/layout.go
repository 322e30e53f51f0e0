// Package layout draws the chrome around every screen: header, footer and
// the too-small warning.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Header is what the top bar shows.
type Header struct {
	Title  string
	Coins  int
	XP     int
	Badges int
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(fmt.Sprintf(
			"Terminal too small!\n\nNeed %d x %d, have %d x %d",
			MinWidth, MinHeight, width, height,
		)))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader renders the top bar: app name, centered title, wallet.
func RenderHeader(h Header, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  🃏 Playdeck")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(h.Title)

	wallet := []string{
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(fmt.Sprintf("● %d", h.Coins)),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("★ %d xp", h.XP)),
	}
	if h.Badges > 0 {
		wallet = append(wallet, lipgloss.NewStyle().Foreground(theme.ArcadePink).Render(fmt.Sprintf("🏆 %d", h.Badges)))
	}
	right := strings.Join(wallet, "   ")

	inner := max(width-4, 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)

	return bar(width).Render(left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right)
}

// RenderFooter renders key hints, dropping trailing ones that would not fit
// on a single line.
func RenderFooter(hints []KeyHint, width int) string {
	const sep = "   "
	room := max(width-6, 0)

	var line string
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		next := part
		if line != "" {
			next = line + sep + part
		}
		if lipgloss.Width(next) > room {
			break
		}
		line = next
	}
	return bar(width).Render("  " + line)
}

// RenderFrame stacks header, content and footer, padding content so the
// frame fills height exactly.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).MaxHeight(body).Render(content),
		footer,
	)
}
