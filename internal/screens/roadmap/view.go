package roadmap

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	roadmaps "github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/testout"
	"github.com/adesai/stride/internal/ui/components"
	"github.com/adesai/stride/internal/ui/theme"
)

func (s *RoadmapScreen) View(width, height int) string {
	if s.loadErr != nil {
		return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("Could not load progress: "+s.loadErr.Error()))
	}
	if !s.loaded {
		return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Subtitle.Render("Loading progress..."))
	}

	if s.detail {
		return s.renderDetail(width)
	}
	return s.renderList(width)
}

func (s *RoadmapScreen) renderList(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	idx := 0
	for yi := range s.cur.Years {
		b.WriteString(s.renderYearHeader(yi, width))
		b.WriteString("\n")
		for ; idx < len(s.cards) && s.cards[idx].yearIdx == yi; idx++ {
			b.WriteString(s.renderCardRow(idx, width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Warning.Render(s.notice)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *RoadmapScreen) renderYearHeader(yi, width int) string {
	y := s.cur.Years[yi]
	yp := roadmaps.YearProgress{YearNumber: y.Number}
	if s.overview != nil && yi < len(s.overview.Years) {
		yp = s.overview.Years[yi]
	}

	label := fmt.Sprintf("Year %d", yp.YearNumber)
	state := string(yp.Status)
	stateStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	switch yp.Status {
	case roadmaps.StatusCompleted:
		stateStyle = theme.Correct
	case roadmaps.StatusLocked:
		state = fmt.Sprintf("locked · needs %d%% of year %d", y.RequiredProgress, yp.YearNumber-1)
	}

	bar := components.NewProgressBar("", float64(yp.CompletionPercent)/100, true, min(width/2, 44))
	line := theme.Title.Render(label) + "  " + bar.View() + "  " + stateStyle.Render(state)
	return "  " + line
}

func (s *RoadmapScreen) renderCardRow(idx, width int) string {
	c := s.cards[idx]
	locked := s.yearLocked(c)

	prefix := "    "
	if idx == s.cursor {
		prefix = "  ▸ "
	}

	name := c.entry.Name
	if c.hub != nil {
		name = fmt.Sprintf("%s (%s track)", c.entry.Name, c.hub.Name)
	}

	var status string
	if c.entry.TechStackHub {
		status = "choose a track →"
	} else {
		comp := s.overview.Completion[c.entry.Slug]
		status = fmt.Sprintf("%d/%d subtopics", comp.Done, comp.Total)
		status += "   " + s.testOutLabel(c.entry.Slug)
	}

	line := fmt.Sprintf("%s%-32s %s", prefix, name, status)

	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case locked:
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
	case idx == s.cursor:
		style = theme.Selected
	}
	return style.Render(line)
}

// testOutLabel renders the card's exam state inline.
func (s *RoadmapScreen) testOutLabel(slug string) string {
	switch e := s.elig[slug]; e.State {
	case testout.StatePassed:
		return "test-out passed ✓"
	case testout.StateCooldown:
		return fmt.Sprintf("test-out in %dm", e.RemainingMinutes)
	default:
		return "test-out ready"
	}
}

func (s *RoadmapScreen) renderDetail(width int) string {
	c, ok := s.selected()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(theme.Title.Render(c.entry.Name))
	b.WriteString("\n\n")

	if c.entry.TechStackHub {
		b.WriteString("  " + theme.Subtitle.Render("Pick one track; only the chosen track counts toward unlocking.") + "\n\n")
		for i, tr := range c.entry.Tracks {
			b.WriteString(s.renderDetailRow(i, tr.Name, false))
		}
	} else {
		done := map[string]bool{}
		for _, n := range s.overview.DoneNodes[c.entry.Slug] {
			done[n] = true
		}
		for i, sub := range c.entry.Subtopics {
			b.WriteString(s.renderDetailRow(i, sub, done[sub]))
		}
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Warning.Render(s.notice)))
	}
	return b.String()
}

func (s *RoadmapScreen) renderDetailRow(i int, label string, done bool) string {
	prefix := "    "
	if i == s.subCursor {
		prefix = "  ▸ "
	}
	marker := "○"
	if done {
		marker = "●"
	}

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if done {
		style = lipgloss.NewStyle().Foreground(theme.Success)
	}
	if i == s.subCursor {
		style = style.Bold(true)
	}
	return style.Render(fmt.Sprintf("%s%s %s", prefix, marker, label)) + "\n"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
