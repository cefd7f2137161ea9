package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mvoronov/mathmage/internal/ui/theme"
)

// MultiChoice is a multiple-choice answer selector. It supports the 4 and
// 6 option layouts used by the easy and hard difficulty bands.
type MultiChoice struct {
	Options  []int
	Selected int
}

// NewMultiChoice creates a selector over the given answer options.
func NewMultiChoice(options []int) MultiChoice {
	return MultiChoice{Options: options}
}

// Update handles keyboard navigation. Number keys select directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		return m, true
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Selected = n - 1
			return m, true
		}
	}

	return m, false
}

// Value returns the currently selected option.
func (m MultiChoice) Value() int {
	return m.Options[m.Selected]
}

// View renders the option list.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %d", prefix, i+1, opt)

		if i == m.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
