package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adesai/stride/internal/clock"
	"github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/scoring"
	"github.com/adesai/stride/internal/store"
	"github.com/adesai/stride/internal/testout"
)

func testService(t *testing.T) (*Service, *clock.Fake) {
	t.Helper()

	dir := t.TempDir()
	writePool(t, dir, "algorithms", 12)
	writePool(t, dir, "backend", 12)

	st, err := store.Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cur := testCurriculum(t)
	clk := clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	return New(clk, dir, cur, st, 1), clk
}

// writePool writes a pool where option "A" is always correct.
func writePool(t *testing.T, dir, slug string, n int) {
	t.Helper()
	qs := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			qs += ","
		}
		qs += fmt.Sprintf(`{"id":"%s-q%d","text":"Question %d","options":["A","B","C","D"],"correctAnswer":"A","topic":"Topic%d"}`, slug, i, i, i%3)
	}
	raw := fmt.Sprintf(`{"roadmap":"%s","settings":{"timeLimitMinutes":20,"passingScore":60,"questionCount":10},"questions":[%s]}`, slug, qs)
	if err := os.WriteFile(filepath.Join(dir, slug+".json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write pool: %v", err)
	}
}

func testCurriculum(t *testing.T) *roadmap.Curriculum {
	t.Helper()
	cur, err := roadmap.Parse([]byte(`
id: software-engineering
name: Software Engineering
years:
  - number: 1
    requiredProgress: 0
    roadmaps:
      - slug: algorithms
        name: Algorithms
        subtopics: [arrays, sorting, graphs, dp]
  - number: 2
    requiredProgress: 70
    roadmaps:
      - slug: tech-stack-hub
        name: Tech Stack
        techStackHub: true
        tracks:
          - slug: backend
            name: Backend
            subtopics: [http, databases]
          - slug: frontend
            name: Frontend
            subtopics: [dom, state]
`))
	if err != nil {
		t.Fatalf("parse test curriculum: %v", err)
	}
	return cur
}

func TestFetchQuizDrawsConfiguredCount(t *testing.T) {
	svc, _ := testService(t)

	bundle, err := svc.FetchQuiz(context.Background(), "algorithms")
	if err != nil {
		t.Fatalf("FetchQuiz: %v", err)
	}
	if len(bundle.Questions) != 10 {
		t.Fatalf("drew %d questions, want 10", len(bundle.Questions))
	}
	if bundle.QuizID == "" {
		t.Fatal("bundle has no quiz ID")
	}
	if bundle.Settings.TimeLimitMinutes != 20 || bundle.Settings.PassingScore != 60 {
		t.Fatalf("unexpected settings %+v", bundle.Settings)
	}
}

func TestSubmitQuizRescoresAgainstPool(t *testing.T) {
	svc, _ := testService(t)

	// Client claims a perfect score but only one answer is actually
	// correct per the pool's answer key.
	res := scoring.Result{
		AttemptID:      "attempt-1",
		UserID:         "u1",
		RoadmapID:      "algorithms",
		Score:          2,
		TotalQuestions: 2,
		Percentage:     100,
		Passed:         true,
		Answers: []scoring.AnswerRecord{
			{QuestionID: "algorithms-q0", UserAnswer: "A", CorrectAnswer: "A", IsCorrect: true},
			{QuestionID: "algorithms-q1", UserAnswer: "B", CorrectAnswer: "B", IsCorrect: true},
		},
	}

	ack, err := svc.SubmitQuiz(context.Background(), res)
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if ack.Result.Score != 1 {
		t.Fatalf("server score %d, want 1", ack.Result.Score)
	}
	if ack.Result.Percentage != 50 {
		t.Fatalf("server percentage %d, want 50", ack.Result.Percentage)
	}
	if ack.Result.Passed {
		t.Fatal("50%% should not pass with threshold 60")
	}
	if ack.Result.Answers[1].IsCorrect {
		t.Fatal("wrong answer kept IsCorrect=true after rescore")
	}
}

func TestSubmitQuizIdempotent(t *testing.T) {
	svc, _ := testService(t)

	res := scoring.Result{
		AttemptID: "attempt-dup",
		UserID:    "u1",
		RoadmapID: "algorithms",
		Answers: []scoring.AnswerRecord{
			{QuestionID: "algorithms-q0", UserAnswer: "A"},
		},
	}

	first, err := svc.SubmitQuiz(context.Background(), res)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if first.AlreadySubmitted {
		t.Fatal("first submit flagged as duplicate")
	}

	second, err := svc.SubmitQuiz(context.Background(), res)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if !second.AlreadySubmitted {
		t.Fatal("retry not flagged as duplicate")
	}
	if second.Result.Score != first.Result.Score {
		t.Fatalf("retry returned score %d, want stored %d", second.Result.Score, first.Result.Score)
	}

	history, err := svc.Attempts(context.Background(), "u1", "algorithms")
	if err != nil {
		t.Fatalf("Attempts: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("stored %d attempts, want 1", len(history))
	}
}

func TestSubmitTestOutRejectsUnknownQuestionIDs(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	// Fabricated question IDs claiming correctness. None exist in the
	// pool, so the server-side rescore must count every one as wrong.
	forged := scoring.Result{
		AttemptID: "to-forged",
		UserID:    "u1",
		RoadmapID: "algorithms",
	}
	for i := 0; i < 10; i++ {
		forged.Answers = append(forged.Answers, scoring.AnswerRecord{
			QuestionID: fmt.Sprintf("no-such-question-%d", i),
			UserAnswer: "A",
			IsCorrect:  true,
		})
	}

	ack, err := svc.SubmitTestOut(ctx, forged)
	if err != nil {
		t.Fatalf("SubmitTestOut: %v", err)
	}
	if ack.Result.Score != 0 || ack.Result.Passed {
		t.Fatalf("forged submission scored %d passed=%v, want 0 and no pass", ack.Result.Score, ack.Result.Passed)
	}
	for _, rec := range ack.Result.Answers {
		if rec.IsCorrect {
			t.Fatalf("record %s kept IsCorrect=true through rescore", rec.QuestionID)
		}
	}

	// The failed attempt starts a cooldown, never a permanent pass.
	elig, err := svc.Eligibility(ctx, "u1", "algorithms")
	if err != nil {
		t.Fatalf("Eligibility: %v", err)
	}
	if elig.State != testout.StateCooldown {
		t.Fatalf("eligibility %s after forged submission, want cooldown", elig.State)
	}

	years, err := svc.Progress(ctx, "u1")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if years[0].CompletionPercent != 0 {
		t.Fatalf("year 1 at %d%% after forged submission, want 0", years[0].CompletionPercent)
	}
}

func TestTestOutCooldownAndRetry(t *testing.T) {
	svc, clk := testService(t)
	ctx := context.Background()

	if _, err := svc.FetchTestOut(ctx, "u1", "algorithms"); err != nil {
		t.Fatalf("first fetch should be eligible: %v", err)
	}

	// Fail the exam: 5 of 10 correct is below the 80 threshold.
	fail := testOutResult("to-1", "u1", "algorithms", 5)
	if _, err := svc.SubmitTestOut(ctx, fail); err != nil {
		t.Fatalf("SubmitTestOut: %v", err)
	}

	clk.Advance(59*time.Minute + 59*time.Second)
	_, err := svc.FetchTestOut(ctx, "u1", "algorithms")
	var blocked *testout.BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected BlockedError one second before cooldown end, got %v", err)
	}
	if blocked.State != testout.StateCooldown {
		t.Fatalf("state %s, want cooldown", blocked.State)
	}
	if blocked.RemainingMinutes != 1 {
		t.Fatalf("remaining %d min, want 1", blocked.RemainingMinutes)
	}

	clk.Advance(time.Second)
	if _, err := svc.FetchTestOut(ctx, "u1", "algorithms"); err != nil {
		t.Fatalf("fetch at exactly one hour should be eligible: %v", err)
	}
}

func TestTestOutPassCompletesCardPermanently(t *testing.T) {
	svc, clk := testService(t)
	ctx := context.Background()

	pass := testOutResult("to-pass", "u1", "algorithms", 9)
	ack, err := svc.SubmitTestOut(ctx, pass)
	if err != nil {
		t.Fatalf("SubmitTestOut: %v", err)
	}
	if !ack.Result.Passed {
		t.Fatalf("90%% should pass the 80 threshold: %+v", ack.Result)
	}

	years, err := svc.Progress(ctx, "u1")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if years[0].CompletionPercent != 100 || years[0].Status != roadmap.StatusCompleted {
		t.Fatalf("year 1 after pass: %+v, want 100%% completed", years[0])
	}
	if years[1].Status != roadmap.StatusAvailable {
		t.Fatalf("year 2 should unlock at 100%% >= 70, got %s", years[1].Status)
	}

	// Pass memory is permanent, no matter how much time passes.
	clk.Advance(30 * 24 * time.Hour)
	_, err = svc.FetchTestOut(ctx, "u1", "algorithms")
	var blocked *testout.BlockedError
	if !errors.As(err, &blocked) || blocked.State != testout.StatePassed {
		t.Fatalf("expected already-passed block, got %v", err)
	}
}

func TestChooseTrackValidatesHubAndTrack(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	if err := svc.ChooseTrack(ctx, "u1", "algorithms", "backend"); err == nil {
		t.Fatal("choosing a track on a non-hub should fail")
	}
	if err := svc.ChooseTrack(ctx, "u1", "tech-stack-hub", "mobile"); err == nil {
		t.Fatal("choosing an unknown track should fail")
	}
	if err := svc.ChooseTrack(ctx, "u1", "tech-stack-hub", "backend"); err != nil {
		t.Fatalf("valid choice rejected: %v", err)
	}
	// Re-choosing the same track is a no-op.
	if err := svc.ChooseTrack(ctx, "u1", "tech-stack-hub", "backend"); err != nil {
		t.Fatalf("repeat of same choice rejected: %v", err)
	}
	if err := svc.ChooseTrack(ctx, "u1", "tech-stack-hub", "frontend"); err == nil {
		t.Fatal("switching tracks should fail")
	}
}

func TestMarkNodeDrivesYearPercent(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	if err := svc.MarkNode(ctx, "u1", "algorithms", "no-such-node"); err == nil {
		t.Fatal("unknown subtopic should fail")
	}

	for _, n := range []string{"arrays", "sorting", "graphs"} {
		if err := svc.MarkNode(ctx, "u1", "algorithms", n); err != nil {
			t.Fatalf("MarkNode %s: %v", n, err)
		}
	}

	years, err := svc.Progress(ctx, "u1")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if years[0].CompletionPercent != 75 {
		t.Fatalf("year 1 at %d%%, want 75", years[0].CompletionPercent)
	}
	if years[1].Status != roadmap.StatusAvailable {
		t.Fatalf("year 2 should unlock at 75%% >= 70, got %s", years[1].Status)
	}
}

// testOutResult builds a 10-question submission with the given number
// of correct answers against the "A is always right" pools.
func testOutResult(attemptID, userID, card string, correct int) scoring.Result {
	answers := make([]scoring.AnswerRecord, 0, 10)
	for i := 0; i < 10; i++ {
		user := "A"
		if i >= correct {
			user = "B"
		}
		answers = append(answers, scoring.AnswerRecord{
			QuestionID: fmt.Sprintf("%s-q%d", card, i),
			UserAnswer: user,
		})
	}
	return scoring.Result{
		AttemptID:      attemptID,
		UserID:         userID,
		RoadmapID:      card,
		TotalQuestions: 10,
		Answers:        answers,
	}
}
