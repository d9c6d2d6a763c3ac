package question

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adesai/stride/internal/llm"
)

const generateSystemPrompt = `You are a curriculum author writing multiple-choice quiz questions for a software engineering learning roadmap.

Rules:
- Generate exactly the requested number of questions for the given roadmap and its subtopics.
- Spread questions across all listed subtopics; tag each question's "topic" with the subtopic it covers.
- Each question has exactly 4 options where exactly one is correct. Distractors should reflect real misconceptions, not random noise.
- Set "correctAnswer" to the exact text of the correct option.
- Question text must be self-contained: no references to external figures, code files or earlier questions.
- Set "difficulty" from 1 (recall) to 5 (deep analysis), with most questions at 2-3.
- Output a single JSON object conforming to the provided schema, with the "roadmap" field set to the given slug.`

// GenerateConfig bounds one pool generation call.
type GenerateConfig struct {
	Count       int
	MaxTokens   int
	Temperature float64
}

// DefaultGenerateConfig sizes a pool large enough that a drawn quiz
// never repeats the same ten questions every run.
var DefaultGenerateConfig = GenerateConfig{
	Count:       30,
	MaxTokens:   16000,
	Temperature: 0.7,
}

// GenerateInput describes the roadmap to author questions for.
type GenerateInput struct {
	Slug      string
	Name      string
	Subtopics []string
}

// Generator authors question pools through an LLM provider.
type Generator struct {
	provider llm.Provider
	config   GenerateConfig
}

// NewGenerator creates a Generator.
func NewGenerator(provider llm.Provider, cfg GenerateConfig) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate produces a validated pool for the roadmap. The response is
// run through the same schema validation as hand-authored pool files.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) (*Pool, error) {
	req := llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGenerateMessage(input, g.config.Count)},
		},
		Schema: &llm.Schema{
			Name:        "question-pool",
			Description: "A quiz question pool for one roadmap",
			Definition:  PoolSchema,
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("pool generation failed: %w", err)
	}

	pool, err := ParsePool(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("generated pool rejected: %w", err)
	}
	// The slug names the pool file; never trust the model with it.
	pool.Roadmap = input.Slug
	return pool, nil
}

func buildGenerateMessage(input GenerateInput, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Roadmap slug: %s\n", input.Slug)
	fmt.Fprintf(&b, "Roadmap name: %s\n", input.Name)
	fmt.Fprintf(&b, "Question count: %d\n", count)
	b.WriteString("Subtopics:\n")
	for i, s := range input.Subtopics {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return strings.TrimRight(b.String(), "\n")
}

// WritePool stores a pool as dir/<roadmap>.json, creating dir as
// needed.
func WritePool(dir string, pool *Pool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create pool dir: %w", err)
	}
	raw, err := json.MarshalIndent(pool, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode pool: %w", err)
	}
	path := filepath.Join(dir, pool.Roadmap+".json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write pool: %w", err)
	}
	return path, nil
}
