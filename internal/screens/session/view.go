package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mvoronov/mathmage/internal/problemgen"
	"github.com/mvoronov/mathmage/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Something went wrong: "+s.errMsg))
	}

	if s.phase == phaseQuitConfirm {
		return s.renderQuitConfirm(width, height)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	q := s.answered
	if s.phase != phaseFeedback {
		current, ok := s.state.Current()
		if !ok {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Saving your session..."))
			return b.String()
		}
		q = current
	}

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(problemgen.FormatQuestion(q)))
	b.WriteString("\n\n")

	if s.phase == phaseFeedback {
		b.WriteString(s.renderFeedback(width, q))
		return b.String()
	}

	if s.useChoices {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}

	return b.String()
}

// renderInfoLine shows question position, the live streak and the timer.
func (s *SessionScreen) renderInfoLine(width int) string {
	pos := len(s.state.Records) + 1
	if s.state.Done() {
		pos = len(s.state.Records)
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", pos, len(s.state.Questions)))

	streak := ""
	if s.state.Streak > 0 {
		streak = theme.Star.Render(fmt.Sprintf("✦ streak %d", s.state.Streak)) + "   "
	}

	timer := ""
	if s.state.Config.TimerEnabled {
		mins := int(s.elapsed.Minutes())
		secs := int(s.elapsed.Seconds()) % 60
		timer = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d:%02d", mins, secs))
	}

	right := streak + timer

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

var praise = []string{
	"Great job!",
	"You got it!",
	"Magical!",
	"Well done!",
}

func (s *SessionScreen) renderFeedback(width int, q problemgen.Question) string {
	var b strings.Builder

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch s.feedback {
	case feedbackCorrect:
		msg := praise[len(s.state.Records)%len(praise)]
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("✓ " + msg))
		if s.state.Streak >= 3 {
			b.WriteString("\n")
			b.WriteString(center.Foreground(theme.Accent).Render(
				fmt.Sprintf("✦ %d in a row!", s.state.Streak)))
		}

	case feedbackRetry:
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("✗ Not quite..."))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Text).Render("Have another try!"))

	case feedbackWrong:
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render(
			fmt.Sprintf("✗ The answer was %d", q.CorrectAnswer)))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Text).Render("You'll get the next one!"))
	}

	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Italic(true).Render("press any key to continue"))
	return b.String()
}

func (s *SessionScreen) renderQuitConfirm(width, height int) string {
	content := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Leave this session?") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Your progress so far will not be saved.") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).
			Render("[Y] Leave    [N] Keep going")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
