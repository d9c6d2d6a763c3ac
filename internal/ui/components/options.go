package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/adesai/stride/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// OptionList renders the answer options of one question. Correctness
// is never revealed here; grading happens after submission.
type OptionList struct {
	Options []string

	// Cursor is the highlighted option.
	Cursor int

	// Chosen is the recorded answer for this question, empty if none.
	Chosen string
}

// NewOptionList creates an option list with the cursor on the chosen
// answer when one exists.
func NewOptionList(options []string, chosen string) OptionList {
	cursor := 0
	for i, opt := range options {
		if chosen != "" && opt == chosen {
			cursor = i
			break
		}
	}
	return OptionList{Options: options, Cursor: cursor, Chosen: chosen}
}

// Move shifts the cursor by delta, clamped to bounds.
func (o OptionList) Move(delta int) OptionList {
	o.Cursor += delta
	if o.Cursor < 0 {
		o.Cursor = 0
	}
	if max := len(o.Options) - 1; o.Cursor > max {
		o.Cursor = max
	}
	return o
}

// Current returns the option text under the cursor.
func (o OptionList) Current() string {
	if o.Cursor < 0 || o.Cursor >= len(o.Options) {
		return ""
	}
	return o.Options[o.Cursor]
}

// View renders the options with cursor and chosen markers.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}
		marker := " "
		if o.Chosen != "" && opt == o.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == o.Cursor:
			style = theme.Selected
		case o.Chosen != "" && opt == o.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		s += style.Render(line) + "\n"
	}
	return s
}
