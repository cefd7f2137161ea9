// Package summary shows the outcome of a finished session: stars earned,
// accuracy, level progress and any newly unlocked achievements.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mvoronov/mathmage/internal/achievements"
	"github.com/mvoronov/mathmage/internal/profile"
	"github.com/mvoronov/mathmage/internal/progression"
	"github.com/mvoronov/mathmage/internal/router"
	"github.com/mvoronov/mathmage/internal/screen"
	sess "github.com/mvoronov/mathmage/internal/session"
	"github.com/mvoronov/mathmage/internal/ui/components"
	"github.com/mvoronov/mathmage/internal/ui/layout"
	"github.com/mvoronov/mathmage/internal/ui/theme"
)

// SummaryScreen displays the session outcome.
type SummaryScreen struct {
	result   profile.SessionResult
	delta    sess.ProgressDelta
	unlocked []string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result profile.SessionResult, delta sess.ProgressDelta, unlocked []string) *SummaryScreen {
	return &SummaryScreen{
		result:   result,
		delta:    delta,
		unlocked: unlocked,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Session complete!"))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Accent).Bold(true).Render(
		fmt.Sprintf("★ +%d stars", s.delta.StarsEarned)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d      Correct: %d      First try: %d      Accuracy: %.0f%%",
		s.result.TotalQuestions,
		s.result.CorrectAnswers,
		s.result.CorrectOnFirstTry,
		s.result.Accuracy()*100)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n")

	if s.result.TimeSpentMs != nil {
		secs := *s.result.TimeSpentMs / 1000
		b.WriteString(center.Foreground(theme.TextDim).Render(
			fmt.Sprintf("Time: %d:%02d", secs/60, secs%60)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Level progress toward the next rank.
	level := s.delta.NewLevel
	prevThreshold := progression.StarsForNextLevel(level - 1)
	nextThreshold := progression.StarsForNextLevel(level)
	span := nextThreshold - prevThreshold
	var pct float64
	if span > 0 {
		pct = float64(s.delta.NewTotalStars-prevThreshold) / float64(span)
	}

	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · %d / %d ★", progression.LevelName(level), s.delta.NewTotalStars, nextThreshold)))
	b.WriteString("\n")

	bar := components.ProgressBar{Percent: pct, Width: min(width-8, 40)}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if len(s.unlocked) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(center.Foreground(theme.TextDim).Render("New achievements"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, id := range s.unlocked {
			a, ok := achievements.Get(id)
			if !ok {
				continue
			}
			line := fmt.Sprintf("%s  %s — %s", a.Icon, a.Name, a.Description)
			b.WriteString(center.Foreground(theme.Success).Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}
