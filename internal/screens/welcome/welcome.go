package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mvoronov/mathmage/internal/profile"
	"github.com/mvoronov/mathmage/internal/screen"
	"github.com/mvoronov/mathmage/internal/store"
	"github.com/mvoronov/mathmage/internal/ui/components"
	"github.com/mvoronov/mathmage/internal/ui/layout"
	"github.com/mvoronov/mathmage/internal/ui/theme"
)

const mascotArt = `   ╭─────────╮
   │  ◉   ◉  │
   │    ▽    │
   │  ╰───╯  │
   ╰─────────╯
     + − × ÷`

const maxNameLen = 20

type profilesLoadedMsg struct {
	profiles []*profile.UserProfile
	err      error
}

type loggedInMsg struct {
	cmd tea.Cmd
	err error
}

// WelcomeScreen lets the learner pick an existing profile or create a
// new one by name.
type WelcomeScreen struct {
	store    store.Store
	onLogin  func(*profile.UserProfile) tea.Cmd
	profiles []*profile.UserProfile
	selected int
	loaded   bool
	naming   bool
	input    components.TextInput
	errMsg   string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. onLogin is invoked with the chosen profile
// once it has been persisted.
func New(st store.Store, onLogin func(*profile.UserProfile) tea.Cmd) *WelcomeScreen {
	return &WelcomeScreen{
		store:   st,
		onLogin: onLogin,
		input:   components.NewTextInput("Your name...", false, maxNameLen),
	}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.naming {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Create"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if len(w.profiles) == 0 {
		return []layout.KeyHint{
			{Key: "N", Description: "New profile"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "N", Description: "New profile"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		profiles, err := w.store.ListAll()
		return profilesLoadedMsg{profiles: profiles, err: err}
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return w, nil
		}
		w.profiles = msg.profiles
		w.loaded = true
		if len(w.profiles) == 0 {
			w.naming = true
			return w, w.input.Init()
		}
		return w, nil

	case loggedInMsg:
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return w, nil
		}
		return w, msg.cmd

	case tea.KeyMsg:
		if w.naming {
			return w.updateNaming(msg)
		}
		return w.updateList(msg)
	}

	if w.naming {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *WelcomeScreen) updateList(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if w.selected > 0 {
			w.selected--
		}
	case "down", "j":
		if w.selected < len(w.profiles)-1 {
			w.selected++
		}
	case "n":
		w.naming = true
		w.errMsg = ""
		return w, w.input.Init()
	case "enter":
		if w.selected >= 0 && w.selected < len(w.profiles) {
			return w, w.login(w.profiles[w.selected].Name)
		}
	}
	return w, nil
}

func (w *WelcomeScreen) updateNaming(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if len(w.profiles) > 0 {
			w.naming = false
			w.input.Reset()
			w.errMsg = ""
		}
		return w, nil
	case "enter":
		name := strings.TrimSpace(w.input.Value())
		if name == "" {
			w.errMsg = "Please type a name first"
			return w, nil
		}
		return w, w.login(name)
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

// login loads the profile for name, creating it on first use, and hands
// it to the app via onLogin.
func (w *WelcomeScreen) login(name string) tea.Cmd {
	return func() tea.Msg {
		p, err := w.store.Get(name)
		if err != nil {
			return loggedInMsg{err: err}
		}
		if p == nil {
			p = profile.New(name)
		}
		p.Touch()
		if err := w.store.Put(p); err != nil {
			return loggedInMsg{err: err}
		}
		return loggedInMsg{cmd: w.onLogin(p)}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotArt))
	sections = append(sections, "")
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("MathMage"))
	sections = append(sections,
		theme.Subtitle.Render("Practice your math magic!"))
	sections = append(sections, "")

	switch {
	case !w.loaded && w.errMsg == "":
		sections = append(sections, theme.Hint.Render("loading profiles..."))

	case w.naming:
		prompt := "What's your name?"
		if len(w.profiles) == 0 {
			prompt = "Let's create your first profile!"
		}
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(prompt))
		sections = append(sections, "")
		sections = append(sections, w.input.View())

	default:
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Who is playing today?"))
		sections = append(sections, "")
		for i, p := range w.profiles {
			label := fmt.Sprintf("%s  %s", p.Name,
				theme.Star.Render(fmt.Sprintf("★ %d", p.Progress.TotalStars)))
			if i == w.selected {
				sections = append(sections,
					lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+label))
			} else {
				sections = append(sections,
					lipgloss.NewStyle().Foreground(theme.Text).Render("  "+label))
			}
		}
	}

	if w.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Incorrect.Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
