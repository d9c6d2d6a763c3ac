package question

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adesai/stride/internal/llm"
)

func validPoolJSONResponse() json.RawMessage {
	return json.RawMessage(`{
		"roadmap": "whatever-the-model-says",
		"questions": [
			{"text": "What does a hash map trade for O(1) lookup?", "options": ["Memory", "Ordering", "Both", "Neither"], "correctAnswer": "Both", "topic": "hash-maps"},
			{"text": "Which sort is stable?", "options": ["Quicksort", "Heapsort", "Mergesort", "Selection sort"], "correctAnswer": "Mergesort", "topic": "sorting"}
		]
	}`)
}

func TestGenerateProducesValidatedPool(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPoolJSONResponse()})
	gen := NewGenerator(mock, GenerateConfig{Count: 2, MaxTokens: 1000})

	pool, err := gen.Generate(context.Background(), GenerateInput{
		Slug:      "algorithms",
		Name:      "Algorithms",
		Subtopics: []string{"hash-maps", "sorting"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if pool.Roadmap != "algorithms" {
		t.Fatalf("pool roadmap %q, want the input slug", pool.Roadmap)
	}
	if len(pool.Questions) != 2 {
		t.Fatalf("pool has %d questions, want 2", len(pool.Questions))
	}
	for _, q := range pool.Questions {
		if q.ID == "" {
			t.Fatal("generated question missing assigned ID")
		}
	}

	if mock.CallCount() != 1 {
		t.Fatalf("made %d LLM calls, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "question-pool" {
		t.Fatal("request did not carry the pool schema")
	}
	if !strings.Contains(req.Messages[0].Content, "hash-maps") {
		t.Fatal("prompt does not list the subtopics")
	}
}

func TestGenerateRejectsMalformedOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": [{"text": "No options here"}]}`),
	})
	gen := NewGenerator(mock, DefaultGenerateConfig)

	if _, err := gen.Generate(context.Background(), GenerateInput{Slug: "algorithms"}); err == nil {
		t.Fatal("schema-violating output should be rejected")
	}
}

func TestWritePoolRoundTrip(t *testing.T) {
	dir := t.TempDir()
	pool := &Pool{
		Roadmap: "backend",
		Questions: []Question{
			{ID: "q1", Text: "Pick one", Options: []string{"A", "B"}, CorrectAnswer: "A"},
		},
	}

	if _, err := WritePool(dir, pool); err != nil {
		t.Fatalf("WritePool: %v", err)
	}

	loaded, err := LoadPool(dir, "backend")
	if err != nil {
		t.Fatalf("LoadPool: %v", err)
	}
	if len(loaded.Questions) != 1 || loaded.Questions[0].CorrectAnswer != "A" {
		t.Fatalf("round trip lost data: %+v", loaded)
	}
}
