package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adesai/stride/internal/app"
	"github.com/adesai/stride/internal/roadmap"
	quizscreen "github.com/adesai/stride/internal/screens/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <roadmap>",
	Short: "Start a timed quiz for one roadmap",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := buildWiring(cmd)
		if err != nil {
			return err
		}
		defer w.Close()

		entry, err := lookupUnlocked(cmd, w, args[0])
		if err != nil {
			return err
		}
		if entry.TechStackHub {
			return fmt.Errorf("%s is a track hub; pick one of its tracks", entry.Slug)
		}

		w.opts.Start = quizscreen.New(w.opts.Practice, entry.Slug, entry.Name, false)
		return app.Run(w.opts)
	},
}

// lookupUnlocked resolves a roadmap slug and verifies its year is not
// locked for the acting user.
func lookupUnlocked(cmd *cobra.Command, w *wiring, slug string) (*roadmap.Entry, error) {
	entry, year := w.opts.Curriculum.FindEntry(slug)
	if entry == nil {
		return nil, fmt.Errorf("unknown roadmap %q", slug)
	}

	overview, err := w.opts.Backend.Progress(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	for _, yp := range overview.Years {
		if yp.YearNumber == year.Number && yp.Status == roadmap.StatusLocked {
			return nil, fmt.Errorf("year %d is still locked (needs %d%% of year %d)",
				year.Number, year.RequiredProgress, year.Number-1)
		}
	}
	return entry, nil
}
