package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adesai/stride/internal/llm"
	"github.com/adesai/stride/internal/question"
	"github.com/adesai/stride/internal/roadmap"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Manage question pools",
}

var generateCmd = &cobra.Command{
	Use:   "generate [roadmap...]",
	Short: "Generate question pools with an LLM",
	Long:  "Generate writes a validated question pool file per roadmap. With no arguments it generates pools for every roadmap in the curriculum.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no LLM provider configured: %w", err)
			}
			cfg = discovered
		}
		provider, err := llm.NewProvider(ctx, cfg)
		if err != nil {
			return fmt.Errorf("init provider: %w", err)
		}

		cur, err := resolveCurriculum(cmd)
		if err != nil {
			return err
		}
		targets, err := selectTargets(cur, args)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		dir := resolvePoolDir(cmd, dbPath)

		count, _ := cmd.Flags().GetInt("count")
		genCfg := question.DefaultGenerateConfig
		if count > 0 {
			genCfg.Count = count
		}
		gen := question.NewGenerator(provider, genCfg)

		for _, entry := range targets {
			fmt.Printf("Generating %s (%d questions)...\n", entry.Slug, genCfg.Count)
			pool, err := gen.Generate(ctx, question.GenerateInput{
				Slug:      entry.Slug,
				Name:      entry.Name,
				Subtopics: entry.Subtopics,
			})
			if err != nil {
				return fmt.Errorf("generate %s: %w", entry.Slug, err)
			}
			path, err := question.WritePool(dir, pool)
			if err != nil {
				return fmt.Errorf("write pool %s: %w", entry.Slug, err)
			}
			fmt.Printf("Wrote %s\n", path)
		}
		return nil
	},
}

// selectTargets resolves the roadmaps to generate pools for: the
// named slugs, or every completable roadmap when none are given.
func selectTargets(cur *roadmap.Curriculum, slugs []string) ([]roadmap.Entry, error) {
	all := cur.AllRoadmaps()
	if len(slugs) == 0 {
		return all, nil
	}

	bySlug := make(map[string]roadmap.Entry, len(all))
	for _, e := range all {
		bySlug[e.Slug] = e
	}

	out := make([]roadmap.Entry, 0, len(slugs))
	for _, s := range slugs {
		e, ok := bySlug[s]
		if !ok {
			return nil, fmt.Errorf("unknown roadmap %q", s)
		}
		out = append(out, e)
	}
	return out, nil
}

func init() {
	generateCmd.Flags().Int("count", 0, "Questions per pool (default from generator config)")
	poolCmd.AddCommand(generateCmd)
}
