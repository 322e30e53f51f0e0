package play

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/game"
	"github.com/abhisek/playdeck/internal/ui/components"
	"github.com/abhisek/playdeck/internal/ui/shell"
	"github.com/abhisek/playdeck/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	snap := p.snap
	props := shell.Props{
		Title:       p.game.Title,
		Subtitle:    p.game.Kind.DisplayName() + " · " + p.game.Description,
		Level:       snap.CurrentLevel(),
		TotalLevels: p.game.TotalLevels(),
		Score:       snap.Score,
		Coins:       snap.Coins(),
		FlashPoints: snap.Feedback.FlashPoints,
		Confetti:    snap.Feedback.ShowConfetti,
		Frame:       p.frame,
		Finished:    snap.Finished,
		Passed:      snap.Passed,
		NextEnabled: snap.NextEnabled,
		HasNext:     p.hasNext(),
		PassScore:   p.game.Policy.PassScore,
	}
	return shell.Render(props, p.renderBody(components.ContentWidth(width)), width, height)
}

func (p *PlayScreen) renderBody(cw int) string {
	q := p.snap.Question
	if q == nil {
		return theme.Hint.Render("This game has no questions yet.")
	}

	var sections []string
	sections = append(sections, p.renderPrompt(q, cw))

	if !p.snap.Deadline.IsZero() {
		sections = append(sections, p.renderCountdown(q, cw))
	}

	if p.game.Kind.FreeText() {
		sections = append(sections, p.input.View())
	} else {
		list := lipgloss.NewStyle().Align(lipgloss.Left).Render(p.options.View())
		sections = append(sections, list)
	}

	if a := p.snap.Answer; a != nil {
		sections = append(sections, p.renderResult(q, *a))
	} else if q.Hint != "" {
		sections = append(sections, theme.Hint.Render("Hint: "+q.Hint))
	}

	return strings.Join(sections, "\n\n")
}

func (p *PlayScreen) renderPrompt(q *game.Question, cw int) string {
	text := q.Prompt
	if p.game.Kind == game.KindMatch {
		text = "Match:  " + q.Prompt + "  →  ?"
	}
	style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw).Align(lipgloss.Center)
	if p.game.Kind == game.KindStory {
		return components.Card(style.Bold(false).Italic(true).Width(cw-6).Render(text), cw, theme.Secondary)
	}
	return style.Render(text)
}

func (p *PlayScreen) renderCountdown(q *game.Question, cw int) string {
	return components.CountdownMeter(p.countdownLeft(), q.TimeLimit, cw/2).View()
}

func (p *PlayScreen) renderResult(q *game.Question, a game.Answer) string {
	var msg string
	style := theme.Correct
	switch {
	case a.TimedOut:
		msg = "⏰ Time's up!"
		style = theme.Incorrect
	case p.game.Kind.FreeText():
		msg = fmt.Sprintf("Thanks for sharing! +%d", a.Reward)
	case a.Correct:
		msg = fmt.Sprintf("Great job! +%d", a.Reward)
	default:
		msg = "Not quite. Keep going!"
		style = theme.Incorrect
	}

	lines := []string{style.Render(msg)}
	if opt, ok := q.Option(a.OptionID); ok && opt.Response != "" {
		lines = append(lines, theme.Body.Render(opt.Response))
	}
	if p.snap.Phase == game.PhaseAnswered {
		lines = append(lines, theme.Hint.Render("Enter to continue"))
	}
	return strings.Join(lines, "\n")
}

// countdownLeft is the time until the current question times out.
func (p *PlayScreen) countdownLeft() time.Duration {
	if p.snap.Deadline.IsZero() {
		return 0
	}
	return max(p.snap.Deadline.Sub(p.deps.clock().Now()), 0)
}
