package components

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/ui/theme"
)

// Meter is a labelled horizontal bar. When Fill drops below Warn the bar
// switches to the error color.
type Meter struct {
	Label string
	Fill  float64
	Warn  float64
	Width int
}

// LevelMeter shows how far through a game the player is.
func LevelMeter(level, total, width int) Meter {
	m := Meter{Label: fmt.Sprintf("Level %d/%d", level, total), Width: width}
	if total > 0 {
		m.Fill = float64(level) / float64(total)
	}
	return m
}

// CountdownMeter drains as a timed question runs out.
func CountdownMeter(left, limit time.Duration, width int) Meter {
	m := Meter{Label: fmt.Sprintf("⏱ %.1fs", left.Seconds()), Warn: 0.25, Width: width}
	if limit > 0 {
		m.Fill = float64(left) / float64(limit)
	}
	return m
}

// View renders the meter on one line.
func (m Meter) View() string {
	label := ""
	if m.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(m.Label) + "  "
	}

	bar := max(m.Width-lipgloss.Width(label), 4)
	filled := min(max(int(float64(bar)*m.Fill), 0), bar)

	var fill color.Color = theme.Secondary
	if m.Fill < m.Warn {
		fill = theme.Error
	}
	return label +
		lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", bar-filled))
}
