package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mvoronov/mathmage/internal/profile"
	"github.com/mvoronov/mathmage/internal/progression"
	"github.com/mvoronov/mathmage/internal/router"
	"github.com/mvoronov/mathmage/internal/screen"
	"github.com/mvoronov/mathmage/internal/screens/settings"
	"github.com/mvoronov/mathmage/internal/screens/setup"
	"github.com/mvoronov/mathmage/internal/screens/stats"
	"github.com/mvoronov/mathmage/internal/store"
	"github.com/mvoronov/mathmage/internal/ui/components"
	"github.com/mvoronov/mathmage/internal/ui/theme"
)

const mascotIdle = `  ╭─────────╮
  │  ◉   ◉  │
  │    ▽    │
  │  ╰───╯  │
  ╰─────────╯`

// HomeScreen is the main menu shown after login.
type HomeScreen struct {
	store   store.Store
	profile *profile.UserProfile
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen for the logged-in profile.
func New(st store.Store, p *profile.UserProfile) *HomeScreen {
	h := &HomeScreen{
		store:   st,
		profile: p,
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{
			Label: "PRACTICE",
			Action: func() tea.Cmd {
				s := setup.New(st, p)
				return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
			},
		},
		{
			Label: "MY STATS",
			Action: func() tea.Cmd {
				s := stats.New(p)
				return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
			},
		},
		{
			Label: "SETTINGS",
			Action: func() tea.Cmd {
				s := settings.New(st, p)
				return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
			},
		},
		{
			Label: "EXIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	})

	return h
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	p := h.profile.Progress

	greeting := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Hello, %s!", h.profile.Name))

	levelLine := fmt.Sprintf("%s  ·  Level %d",
		progression.LevelName(p.Level), p.Level)

	nextAt := progression.StarsForNextLevel(p.Level)
	progressLine := fmt.Sprintf("★ %d / %d to the next level", p.TotalStars, nextAt)

	var sections []string
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotIdle))
	sections = append(sections, "")
	sections = append(sections, greeting)
	sections = append(sections, theme.Subtitle.Render(levelLine))
	sections = append(sections, theme.Star.Render(progressLine))
	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
