// Package home is the entry screen: a short menu over the curriculum.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	roadmaps "github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/router"
	"github.com/adesai/stride/internal/screen"
	quizscreen "github.com/adesai/stride/internal/screens/quiz"
	roadmapscreen "github.com/adesai/stride/internal/screens/roadmap"
	"github.com/adesai/stride/internal/ui/components"
	"github.com/adesai/stride/internal/ui/theme"
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	cur  *roadmaps.Curriculum
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The roadmap screen it pushes carries
// the full attempt wiring.
func New(cur *roadmaps.Curriculum, backend roadmapscreen.Backend, practice, exam quizscreen.Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "ROADMAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: roadmapscreen.New(cur, backend, practice, exam),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		cur:  cur,
		menu: components.NewMenu(items),
	}
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
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("S T R I D E")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(h.cur.Name)))
	b.WriteString("\n\n\n")

	menu := h.menu.View()
	for _, line := range strings.Split(strings.TrimRight(menu, "\n"), "\n") {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
