package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mvoronov/mathmage/internal/profile"
	"github.com/mvoronov/mathmage/internal/progression"
	"github.com/mvoronov/mathmage/internal/router"
	"github.com/mvoronov/mathmage/internal/screen"
	"github.com/mvoronov/mathmage/internal/screens/home"
	"github.com/mvoronov/mathmage/internal/screens/welcome"
	"github.com/mvoronov/mathmage/internal/store"
	"github.com/mvoronov/mathmage/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Store store.Store
}

// profileLoggedInMsg is emitted by the welcome screen's login callback.
type profileLoggedInMsg struct {
	profile *profile.UserProfile
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	store   store.Store
	profile *profile.UserProfile
	width   int
	height  int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	onLogin := func(p *profile.UserProfile) tea.Cmd {
		return func() tea.Msg {
			return profileLoggedInMsg{profile: p}
		}
	}
	welcomeScreen := welcome.New(opts.Store, onLogin)
	return AppModel{
		router: router.New(welcomeScreen),
		store:  opts.Store,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case profileLoggedInMsg:
		m.profile = msg.profile
		homeScreen := home.New(m.store, m.profile)
		return m, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: homeScreen}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	stars := 0
	levelName := ""
	if m.profile != nil {
		stars = m.profile.Progress.TotalStars
		levelName = progression.LevelName(m.profile.Progress.Level)
	}

	header := layout.RenderHeader(title, stars, levelName, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
