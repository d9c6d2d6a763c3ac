package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/adesai/stride/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Refresher is an optional interface for screens that reload their
// data when they regain focus after a pop.
type Refresher interface {
	Refresh() tea.Cmd
}

// StatusProvider is an optional interface for screens that put live
// status (e.g. a countdown) in the header's right slot.
type StatusProvider interface {
	HeaderStatus() string
}

// EscHandler is an optional interface for screens that intercept Esc
// instead of popping straight back, e.g. to confirm leaving a timed
// attempt.
type EscHandler interface {
	HandleEsc() tea.Cmd
}
