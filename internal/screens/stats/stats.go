// Package stats shows the learner's cumulative progress: totals, recent
// sessions and the achievement gallery.
package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mvoronov/mathmage/internal/achievements"
	"github.com/mvoronov/mathmage/internal/problemgen"
	"github.com/mvoronov/mathmage/internal/profile"
	"github.com/mvoronov/mathmage/internal/progression"
	"github.com/mvoronov/mathmage/internal/router"
	"github.com/mvoronov/mathmage/internal/screen"
	"github.com/mvoronov/mathmage/internal/ui/layout"
	"github.com/mvoronov/mathmage/internal/ui/theme"
)

const recentSessions = 8

// StatsScreen displays progress for one profile.
type StatsScreen struct {
	profile *profile.UserProfile
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(p *profile.UserProfile) *StatsScreen {
	return &StatsScreen{profile: p}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "My Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	p := s.profile
	var b strings.Builder

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(p.Name))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · Level %d", progression.LevelName(p.Progress.Level), p.Progress.Level)))
	b.WriteString("\n\n")

	totals := fmt.Sprintf("★ %d stars      Best streak: %d      Sessions: %d",
		p.Progress.TotalStars, p.Progress.BestStreak, len(p.History))
	b.WriteString(center.Foreground(theme.Text).Render(totals))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Recent sessions, newest first.
	b.WriteString(center.Foreground(theme.TextDim).Render("Recent sessions"))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	if len(p.History) == 0 {
		b.WriteString(center.Foreground(theme.TextDim).Italic(true).Render("no sessions yet"))
		b.WriteString("\n")
	}
	start := len(p.History) - recentSessions
	if start < 0 {
		start = 0
	}
	for i := len(p.History) - 1; i >= start; i-- {
		r := p.History[i]
		line := fmt.Sprintf("%s   %-14s %-10s %2d/%d correct   %.0f%%",
			r.Date.Local().Format("Jan 02 15:04"),
			opSymbols(r.Config.Operations),
			r.Config.Difficulty.DisplayName(),
			r.CorrectAnswers, r.TotalQuestions,
			r.Accuracy()*100)
		b.WriteString(center.Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Achievement gallery in catalogue order, locked ones dimmed.
	earned := 0
	for _, a := range achievements.Catalog {
		if p.Progress.HasAchievement(a.ID) {
			earned++
		}
	}
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("Achievements (%d/%d)", earned, len(achievements.Catalog))))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	for _, a := range achievements.Catalog {
		line := fmt.Sprintf("%s  %-22s %s", a.Icon, a.Name, a.Description)
		if p.Progress.HasAchievement(a.ID) {
			b.WriteString(center.Foreground(theme.Success).Render(line))
		} else {
			b.WriteString(center.Foreground(theme.TextDim).Render("🔒  " + a.Name))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func opSymbols(ops []problemgen.Operation) string {
	parts := make([]string, 0, len(ops))
	for _, op := range ops {
		parts = append(parts, problemgen.Symbol(op))
	}
	return strings.Join(parts, " ")
}
