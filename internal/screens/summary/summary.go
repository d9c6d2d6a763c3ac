package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adesai/stride/internal/router"
	"github.com/adesai/stride/internal/scoring"
	"github.com/adesai/stride/internal/screen"
	"github.com/adesai/stride/internal/ui/layout"
	"github.com/adesai/stride/internal/ui/theme"
	"github.com/adesai/stride/internal/weaktopic"
)

// maxWeakTopics caps how many weak topics the summary lists.
const maxWeakTopics = 5

// SummaryScreen displays the authoritative result of a finished
// attempt, with the learner's weakest topics ranked below.
type SummaryScreen struct {
	result     scoring.Result
	weakTopics []weaktopic.TopicCount
	testOut    bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary for one scored attempt.
func New(result scoring.Result, testOut bool) *SummaryScreen {
	return &SummaryScreen{
		result:     result,
		weakTopics: weaktopic.Rank(result),
		testOut:    testOut,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	if s.testOut {
		return "Test-Out Result"
	}
	return "Quiz Result"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result
	var b strings.Builder

	verdict := theme.Correct.Render("Passed")
	if !res.Passed {
		verdict = theme.Incorrect.Render("Not passed")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d/%d        %d%%        Time: %d min",
		res.Score, res.TotalQuestions, res.Percentage, res.TimeTakenMinutes)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	if len(s.weakTopics) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Topics to review")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for i, tc := range s.weakTopics {
			if i >= maxWeakTopics {
				break
			}
			noun := "mistakes"
			if tc.Count == 1 {
				noun = "mistake"
			}
			line := fmt.Sprintf("  %s    %d %s", tc.Topic, tc.Count, noun)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
