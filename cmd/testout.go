package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adesai/stride/internal/app"
	quizscreen "github.com/adesai/stride/internal/screens/quiz"
	"github.com/adesai/stride/internal/testout"
)

var testOutCmd = &cobra.Command{
	Use:   "testout <card>",
	Short: "Attempt to test out of a roadmap card",
	Long:  "Testout starts the compressed unlock exam: 10 questions, 20 minutes, 80% to pass. A failed attempt starts a one-hour cooldown; a pass is permanent.",
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
			return fmt.Errorf("%s is a track hub; test out of one of its tracks", entry.Slug)
		}

		elig, err := w.opts.Backend.Eligibility(cmd.Context(), entry.Slug)
		if err != nil {
			return fmt.Errorf("check eligibility: %w", err)
		}
		switch elig.State {
		case testout.StatePassed:
			fmt.Printf("%s is already passed; the card stays complete.\n", entry.Name)
			return nil
		case testout.StateCooldown:
			fmt.Printf("Cooldown active for %s: retry in %d min.\n", entry.Name, elig.RemainingMinutes)
			return nil
		}

		w.opts.Start = quizscreen.New(w.opts.Exam, entry.Slug, entry.Name, true)
		return app.Run(w.opts)
	},
}
