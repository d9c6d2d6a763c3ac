package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	session "github.com/adesai/stride/internal/quiz"
	"github.com/adesai/stride/internal/ui/theme"
)

// lowTimeSeconds is when the countdown turns urgent.
const lowTimeSeconds = 60

func (s *QuizScreen) View(width, height int) string {
	if s.loadErr != nil {
		return renderCentered(width,
			theme.Incorrect.Render("Could not start: "+s.loadErr.Error()),
			theme.Hint.Render("Press any key to go back"))
	}

	sess := s.ctrl.Session()
	if sess == nil || sess.Status == session.StatusLoading {
		return renderCentered(width, theme.Subtitle.Render("Loading questions..."))
	}

	var b strings.Builder
	b.WriteString(s.renderStatusLine(sess, width))
	b.WriteString("\n\n")
	b.WriteString(s.renderQuestion(sess, width))

	if s.showBanner {
		b.WriteString("\n")
		b.WriteString(renderBanner(s.ctrl.LastError, width))
	}
	if s.quitConfirm {
		b.WriteString("\n")
		b.WriteString(renderQuitConfirm(width))
	}
	if s.submitConfirm {
		b.WriteString("\n")
		b.WriteString(renderSubmitConfirm(width))
	}
	if sess.Status == session.StatusSubmitting {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Subtitle.Render("Submitting...")))
	}
	return b.String()
}

func (s *QuizScreen) renderStatusLine(sess *session.Session, width int) string {
	pos := fmt.Sprintf("Question %d of %d", sess.Current+1, len(sess.Questions))
	answered := fmt.Sprintf("%d answered", sess.AnsweredCount())

	timerStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if sess.RemainingSeconds <= lowTimeSeconds {
		timerStyle = theme.Incorrect
	}
	timer := timerStyle.Render(formatClock(sess.RemainingSeconds))

	line := lipgloss.NewStyle().Foreground(theme.TextDim).Render(pos) +
		"    " + timer + "    " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(answered)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func (s *QuizScreen) renderQuestion(sess *session.Session, width int) string {
	q := sess.CurrentQuestion()
	if q == nil {
		return ""
	}

	text := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(min(width-8, 72)).
		Render(q.Text)

	block := text + "\n\n" + s.options.View()
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func renderBanner(err error, width int) string {
	detail := "submission failed"
	if err != nil {
		detail = err.Error()
	}
	msg := theme.Warning.Render("Submit failed: ") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(detail) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("   [R]etry  [D]ismiss")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1).
		Render(msg)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

func renderQuitConfirm(width int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Text).Render("Leave this attempt? ") +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Progress is saved for 30 minutes.   [Y]es  [N]o")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1).
		Render(msg)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

func renderSubmitConfirm(width int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Text).Render("Submit with no answers? ") +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Every question will count as wrong.   [Y]es  [N]o")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1).
		Render(msg)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

func renderCentered(width int, lines ...string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	for _, l := range lines {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, l))
		b.WriteString("\n")
	}
	return b.String()
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
