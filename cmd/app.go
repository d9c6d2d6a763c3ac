package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/adesai/stride/internal/app"
	"github.com/adesai/stride/internal/client"
	"github.com/adesai/stride/internal/clock"
	"github.com/adesai/stride/internal/quiz"
	quizscreen "github.com/adesai/stride/internal/screens/quiz"
	"github.com/adesai/stride/internal/service"
	"github.com/adesai/stride/internal/store"
)

// testOutSnapshotPrefix keeps exam snapshots from colliding with
// practice snapshots on the same roadmap.
const testOutSnapshotPrefix = "testout:"

// wiring holds everything a TUI-facing command needs, assembled for
// local or remote mode.
type wiring struct {
	st   *store.Store
	opts app.Options
	user string
}

func (w *wiring) Close() {
	if w.st != nil {
		_ = w.st.Close()
	}
}

// buildWiring resolves configuration and connects either the in-process
// service or a remote stride server behind the same interfaces.
func buildWiring(cmd *cobra.Command) (*wiring, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cur, err := resolveCurriculum(cmd)
	if err != nil {
		st.Close()
		return nil, err
	}
	user := resolveUser(cmd)
	clk := clock.Real{}

	w := &wiring{st: st, user: user}
	w.opts = app.Options{Curriculum: cur}

	// Snapshots stay local in both modes; an interrupted attempt
	// resumes from this machine's store.
	snaps := st.Snapshots()
	examSnaps := quiz.NamespaceSnapshots(snaps, testOutSnapshotPrefix)

	if server := resolveServer(cmd); server != "" {
		c := client.New(server, cur.ID, user)
		w.opts.Backend = c
		w.opts.Practice = quizscreen.Deps{
			Clock:     clk,
			Source:    &client.QuizSource{C: c},
			Submitter: &client.QuizSubmitter{C: c},
			Snapshots: snaps,
			UserID:    user,
		}
		w.opts.Exam = quizscreen.Deps{
			Clock:     clk,
			Source:    &client.TestOutSource{C: c},
			Submitter: &client.TestOutSubmitter{C: c},
			Snapshots: examSnaps,
			UserID:    user,
		}
		return w, nil
	}

	poolDir := resolvePoolDir(cmd, dbPath)
	svc := service.New(clk, poolDir, cur, st, time.Now().UnixNano())

	w.opts.Backend = &service.Progression{Svc: svc, UserID: user}
	w.opts.Practice = quizscreen.Deps{
		Clock:     clk,
		Source:    &service.QuizSource{Svc: svc},
		Submitter: &service.QuizSubmitter{Svc: svc},
		Snapshots: snaps,
		UserID:    user,
	}
	w.opts.Exam = quizscreen.Deps{
		Clock:     clk,
		Source:    &service.TestOutSource{Svc: svc, UserID: user},
		Submitter: &service.TestOutSubmitter{Svc: svc},
		Snapshots: examSnaps,
		UserID:    user,
	}
	return w, nil
}

// runApp wires the TUI and starts it on the home screen.
func runApp(cmd *cobra.Command) error {
	w, err := buildWiring(cmd)
	if err != nil {
		return err
	}
	defer w.Close()
	return app.Run(w.opts)
}
