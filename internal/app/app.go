// Package app assembles the Bubble Tea program: a router-driven
// screen stack under a shared header and footer frame.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/router"
	"github.com/adesai/stride/internal/screen"
	"github.com/adesai/stride/internal/screens/home"
	quizscreen "github.com/adesai/stride/internal/screens/quiz"
	roadmapscreen "github.com/adesai/stride/internal/screens/roadmap"
	"github.com/adesai/stride/internal/ui/layout"
)

// Options carries everything the screens need, wired for either local
// or remote mode by the caller.
type Options struct {
	Curriculum *roadmap.Curriculum
	Backend    roadmapscreen.Backend

	// Practice and Exam are the attempt dependencies for regular
	// quizzes and test-out exams.
	Practice quizscreen.Deps
	Exam     quizscreen.Deps

	// Start, when set, is pushed over the home screen so a CLI
	// command can open straight into an attempt.
	Start screen.Screen
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Curriculum, opts.Backend, opts.Practice, opts.Exam)
	r := router.New(homeScreen)

	var initCmd tea.Cmd
	if opts.Start != nil {
		initCmd = r.Push(opts.Start)
	}
	return AppModel{
		router:  r,
		initCmd: initCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens with live state (a running attempt, an expanded
			// pane) decide what Esc means for them.
			if h, ok := m.router.Active().(screen.EscHandler); ok {
				return m, h.HandleEsc()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
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
	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.HeaderStatus()
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
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
