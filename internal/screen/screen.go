// Package screen defines the contract every application screen satisfies.
// Screens render only their content area; the app frame (header, footer,
// size guard) is composed around them by the root model.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mvoronov/mathmage/internal/ui/layout"
)

// Screen is one routable view in the application.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the resulting screen and
	// follow-up command. Navigation happens by returning router messages.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area at the given size, without the
	// surrounding frame.
	View(width, height int) string

	// Title is shown in the header bar.
	Title() string
}

// KeyHintProvider lets a screen override the default footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
