// Package settings lets the learner change per-profile preferences.
// Every change is persisted immediately.
package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mvoronov/mathmage/internal/profile"
	"github.com/mvoronov/mathmage/internal/router"
	"github.com/mvoronov/mathmage/internal/screen"
	"github.com/mvoronov/mathmage/internal/store"
	"github.com/mvoronov/mathmage/internal/ui/layout"
	"github.com/mvoronov/mathmage/internal/ui/theme"
)

const (
	rowInputMode = iota
	rowSound
	rowMusic
	rowNegatives
	rowCount
)

// SettingsScreen edits the profile's preferences.
type SettingsScreen struct {
	store   store.Store
	profile *profile.UserProfile
	focus   int
	errMsg  string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen for the logged-in profile.
func New(st store.Store, p *profile.UserProfile) *SettingsScreen {
	return &SettingsScreen{store: st, profile: p}
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.focus > 0 {
			s.focus--
		}
	case "down", "j":
		if s.focus < rowCount-1 {
			s.focus++
		}
	case " ", "space", "enter", "left", "right", "h", "l":
		s.toggle()
	}
	return s, nil
}

func (s *SettingsScreen) toggle() {
	set := &s.profile.Settings
	switch s.focus {
	case rowInputMode:
		if set.InputMode == profile.InputChoices {
			set.InputMode = profile.InputKeyboard
		} else {
			set.InputMode = profile.InputChoices
		}
	case rowSound:
		set.SoundEnabled = !set.SoundEnabled
	case rowMusic:
		set.MusicEnabled = !set.MusicEnabled
	case rowNegatives:
		set.NegativeNumbers = !set.NegativeNumbers
	}

	s.profile.Touch()
	if err := s.store.Put(s.profile); err != nil {
		s.errMsg = err.Error()
	} else {
		s.errMsg = ""
	}
}

func (s *SettingsScreen) View(width, height int) string {
	set := s.profile.Settings

	inputLabel := "Multiple choice"
	if set.InputMode == profile.InputKeyboard {
		inputLabel = "Keyboard"
	}

	rows := []string{
		fmt.Sprintf("Answer input     ◂ %s ▸", inputLabel),
		fmt.Sprintf("Sound effects    %s", onOff(set.SoundEnabled)),
		fmt.Sprintf("Music            %s", onOff(set.MusicEnabled)),
		fmt.Sprintf("Negative numbers %s", onOff(set.NegativeNumbers)),
	}

	var lines []string
	lines = append(lines,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Settings"))
	lines = append(lines, "")

	for i, row := range rows {
		if i == s.focus {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+row))
		} else {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(theme.Text).Render("  "+row))
		}
	}

	lines = append(lines, "")
	lines = append(lines, theme.Hint.Render("Negative numbers mix signed values into the questions."))

	if s.errMsg != "" {
		lines = append(lines, "")
		lines = append(lines, theme.Incorrect.Render(s.errMsg))
	}

	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func onOff(v bool) string {
	if v {
		return "[on ]"
	}
	return "[off]"
}
