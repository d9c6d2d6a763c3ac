package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "stride",
	Short: "Terminal learning companion for multi-year roadmaps",
	Long:  "Stride — timed practice quizzes and test-out progression over a multi-year learning roadmap, in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STRIDE_DB env var)")
	rootCmd.PersistentFlags().String("pools", "", "Directory of question pool files (overrides STRIDE_POOLS env var)")
	rootCmd.PersistentFlags().String("curriculum", "", "Path to curriculum YAML (overrides STRIDE_CURRICULUM env var)")
	rootCmd.PersistentFlags().String("user", "", "Profile to act as (overrides STRIDE_USER env var)")
	rootCmd.PersistentFlags().String("server", "", "Base URL of a stride server; runs against it instead of the local store (overrides STRIDE_SERVER env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(testOutCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(poolCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STRIDE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolvePoolDir returns the question pool directory: --pools flag,
// then STRIDE_POOLS, then a pools/ directory next to the database.
func resolvePoolDir(cmd *cobra.Command, dbPath string) string {
	if p, _ := cmd.Flags().GetString("pools"); p != "" {
		return p
	}
	if p := os.Getenv("STRIDE_POOLS"); p != "" {
		return p
	}
	return filepath.Join(filepath.Dir(dbPath), "pools")
}

// resolveCurriculum loads the curriculum YAML, falling back to the
// compiled-in default when none is configured.
func resolveCurriculum(cmd *cobra.Command) (*roadmap.Curriculum, error) {
	path, _ := cmd.Flags().GetString("curriculum")
	if path == "" {
		path = os.Getenv("STRIDE_CURRICULUM")
	}
	if path == "" {
		return roadmap.DefaultCurriculum(), nil
	}
	cur, err := roadmap.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load curriculum: %w", err)
	}
	return cur, nil
}

// resolveServer returns the remote server base URL, empty for local
// mode: --server, then STRIDE_SERVER.
func resolveServer(cmd *cobra.Command) string {
	if s, _ := cmd.Flags().GetString("server"); s != "" {
		return s
	}
	return os.Getenv("STRIDE_SERVER")
}

// resolveUser returns the acting profile: --user, then STRIDE_USER,
// then "local".
func resolveUser(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("STRIDE_USER"); u != "" {
		return u
	}
	return "local"
}
