package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/testout"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print curriculum progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := buildWiring(cmd)
		if err != nil {
			return err
		}
		defer w.Close()

		ctx := cmd.Context()
		cur := w.opts.Curriculum
		overview, err := w.opts.Backend.Progress(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		fmt.Printf("%s (profile %s)\n\n", cur.Name, w.user)
		for yi, y := range cur.Years {
			yp := roadmap.YearProgress{YearNumber: y.Number}
			if yi < len(overview.Years) {
				yp = overview.Years[yi]
			}
			fmt.Printf("Year %d  %3d%%  %s\n", yp.YearNumber, yp.CompletionPercent, yp.Status)

			for _, e := range y.Entries {
				if !e.TechStackHub {
					printCard(ctx, w, e, overview)
					continue
				}
				track := overview.ChosenTracks[e.Slug]
				if track == "" {
					fmt.Printf("  %-32s choose a track (%d options)\n", e.Name, len(e.Tracks))
					continue
				}
				for _, tr := range e.Tracks {
					if tr.Slug == track {
						printCard(ctx, w, tr, overview)
					}
				}
			}
			fmt.Println()
		}
		return nil
	},
}

func printCard(ctx context.Context, w *wiring, e roadmap.Entry, overview *roadmap.Overview) {
	comp := overview.Completion[e.Slug]

	examState := ""
	if elig, err := w.opts.Backend.Eligibility(ctx, e.Slug); err == nil {
		switch elig.State {
		case testout.StatePassed:
			examState = "test-out passed"
		case testout.StateCooldown:
			examState = fmt.Sprintf("test-out in %dm", elig.RemainingMinutes)
		}
	}

	fmt.Printf("  %-32s %d/%d subtopics  %s\n", e.Name, comp.Done, comp.Total, examState)
}
