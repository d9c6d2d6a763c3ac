package client

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adesai/stride/internal/clock"
	"github.com/adesai/stride/internal/logger"
	"github.com/adesai/stride/internal/question"
	"github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/scoring"
	"github.com/adesai/stride/internal/server"
	"github.com/adesai/stride/internal/service"
	"github.com/adesai/stride/internal/store"
	"github.com/adesai/stride/internal/testout"
)

func newTestClient(t *testing.T) (*Client, *clock.Fake) {
	t.Helper()

	dir := t.TempDir()
	writePool(t, dir, "algorithms")

	st, err := store.Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cur, err := roadmap.Parse([]byte(`
id: software-engineering
name: Software Engineering
years:
  - number: 1
    requiredProgress: 0
    roadmaps:
      - slug: algorithms
        name: Algorithms
        subtopics: [arrays, sorting]
`))
	if err != nil {
		t.Fatalf("parse curriculum: %v", err)
	}

	clk := clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	svc := service.New(clk, dir, cur, st, 1)
	ts := httptest.NewServer(server.New(logger.Nop(), svc).Handler())
	t.Cleanup(ts.Close)

	return New(ts.URL, "software-engineering", "u1"), clk
}

func writePool(t *testing.T, dir, slug string) {
	t.Helper()
	qs := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		qs = append(qs, fmt.Sprintf(`{"id":"%s-q%d","text":"Question %d","options":["A","B","C","D"],"correctAnswer":"A"}`, slug, i, i))
	}
	raw := fmt.Sprintf(`{"roadmap":"%s","questions":[%s]}`, slug, strings.Join(qs, ","))
	if err := os.WriteFile(filepath.Join(dir, slug+".json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write pool: %v", err)
	}
}

func answersFor(slug string, correct int) []scoring.AnswerRecord {
	answers := make([]scoring.AnswerRecord, 0, 10)
	for i := 0; i < 10; i++ {
		user := "A"
		if i >= correct {
			user = "B"
		}
		answers = append(answers, scoring.AnswerRecord{
			QuestionID: fmt.Sprintf("%s-q%d", slug, i),
			UserAnswer: user,
		})
	}
	return answers
}

func TestClientQuizRoundTrip(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	bundle, err := c.FetchQuiz(ctx, "algorithms")
	if err != nil {
		t.Fatalf("FetchQuiz: %v", err)
	}
	if len(bundle.Questions) != 10 {
		t.Fatalf("fetched %d questions, want 10", len(bundle.Questions))
	}

	res := scoring.Result{
		AttemptID: bundle.QuizID,
		RoadmapID: "algorithms",
		Answers:   answersFor("algorithms", 7),
	}
	ack, err := c.SubmitQuiz(ctx, res)
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if ack.Result.Score != 7 || ack.Result.Percentage != 70 {
		t.Fatalf("server result %+v, want 7/70", ack.Result)
	}
	if ack.AlreadySubmitted {
		t.Fatal("first submit flagged as duplicate")
	}

	retry, err := c.SubmitQuiz(ctx, res)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !retry.AlreadySubmitted {
		t.Fatal("retry not flagged as duplicate")
	}
}

func TestClientFetchUnknownRoadmap(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.FetchQuiz(context.Background(), "nope")
	if !errors.Is(err, question.ErrPoolNotFound) {
		t.Fatalf("expected ErrPoolNotFound, got %v", err)
	}
}

func TestClientDecodesBlockedResponses(t *testing.T) {
	c, clk := newTestClient(t)
	ctx := context.Background()

	fail := scoring.Result{
		AttemptID: "to-1",
		RoadmapID: "algorithms",
		Answers:   answersFor("algorithms", 5),
	}
	if _, err := c.SubmitTestOut(ctx, fail); err != nil {
		t.Fatalf("SubmitTestOut: %v", err)
	}

	_, err := c.StartTestOut(ctx, "algorithms")
	var blocked *testout.BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected BlockedError, got %v", err)
	}
	if blocked.State != testout.StateCooldown || blocked.RemainingMinutes != 60 {
		t.Fatalf("blocked %+v, want cooldown/60", blocked)
	}

	clk.Advance(time.Hour)
	pass := scoring.Result{
		AttemptID: "to-2",
		RoadmapID: "algorithms",
		Answers:   answersFor("algorithms", 9),
	}
	if _, err := c.SubmitTestOut(ctx, pass); err != nil {
		t.Fatalf("SubmitTestOut pass: %v", err)
	}

	_, err = c.StartTestOut(ctx, "algorithms")
	if !errors.As(err, &blocked) || blocked.State != testout.StatePassed {
		t.Fatalf("expected already-passed block, got %v", err)
	}
}

func TestClientProgressAndMarkNode(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	if err := c.MarkNode(ctx, "algorithms", "arrays"); err != nil {
		t.Fatalf("MarkNode: %v", err)
	}
	if err := c.MarkNode(ctx, "algorithms", "bogus"); err == nil {
		t.Fatal("unknown node should fail")
	}

	overview, err := c.Progress(ctx)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if len(overview.Years) != 1 || overview.Years[0].CompletionPercent != 50 {
		t.Fatalf("progress %+v, want one year at 50%%", overview.Years)
	}
	if got := overview.Completion["algorithms"]; got.Done != 1 || got.Total != 2 {
		t.Fatalf("completion %+v, want 1/2", got)
	}

	elig, err := c.Eligibility(ctx, "algorithms")
	if err != nil {
		t.Fatalf("Eligibility: %v", err)
	}
	if elig.State != testout.StateEligible {
		t.Fatalf("eligibility %+v, want eligible", elig)
	}
}
