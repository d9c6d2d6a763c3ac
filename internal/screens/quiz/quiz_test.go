package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adesai/stride/internal/clock"
	"github.com/adesai/stride/internal/question"
	session "github.com/adesai/stride/internal/quiz"
	"github.com/adesai/stride/internal/router"
	"github.com/adesai/stride/internal/scoring"
	"github.com/adesai/stride/internal/screens/summary"
)

type fakeSource struct {
	bundle *session.Bundle
	err    error
}

func (f *fakeSource) Fetch(ctx context.Context, roadmapID string) (*session.Bundle, error) {
	return f.bundle, f.err
}

type fakeSubmitter struct {
	ack   *session.Ack
	err   error
	calls int
}

func (f *fakeSubmitter) Submit(ctx context.Context, res scoring.Result) (*session.Ack, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.ack != nil {
		return f.ack, nil
	}
	return &session.Ack{AttemptID: res.AttemptID, Result: res}, nil
}

type memSnaps struct {
	snaps map[string]session.Snapshot
}

func newMemSnaps() *memSnaps {
	return &memSnaps{snaps: map[string]session.Snapshot{}}
}

func (m *memSnaps) Load(ctx context.Context, userID, roadmapID string) (*session.Snapshot, error) {
	s, ok := m.snaps[userID+"/"+roadmapID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memSnaps) Save(ctx context.Context, userID, roadmapID string, snap session.Snapshot) error {
	m.snaps[userID+"/"+roadmapID] = snap
	return nil
}

func (m *memSnaps) Clear(ctx context.Context, userID, roadmapID string) error {
	delete(m.snaps, userID+"/"+roadmapID)
	return nil
}

func testQuestions(n int) []question.Question {
	qs := make([]question.Question, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, question.Question{
			ID:            string(rune('a' + i)),
			Text:          "Question",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
		})
	}
	return qs
}

func newTestScreen(sub *fakeSubmitter) *QuizScreen {
	deps := Deps{
		Clock: clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
		Source: &fakeSource{bundle: &session.Bundle{
			QuizID:    "attempt-1",
			Questions: testQuestions(3),
			Settings:  question.Settings{TimeLimitMinutes: 1, PassingScore: 60, QuestionCount: 3},
		}},
		Submitter: sub,
		Snapshots: newMemSnaps(),
		UserID:    "u1",
	}
	return New(deps, "algorithms", "Algorithms", false)
}

func start(t *testing.T, s *QuizScreen) {
	t.Helper()
	msg := s.startCmd()()
	started, ok := msg.(startedMsg)
	if !ok {
		t.Fatalf("startCmd returned %T", msg)
	}
	if started.Err != nil {
		t.Fatalf("start: %v", started.Err)
	}
	if _, cmd := s.Update(started); cmd == nil {
		t.Fatal("expected tick command after start")
	}
}

func TestQuizScreenStartsInProgress(t *testing.T) {
	s := newTestScreen(&fakeSubmitter{})
	start(t, s)

	sess := s.ctrl.Session()
	if sess.Status != session.StatusInProgress {
		t.Fatalf("status %s, want in_progress", sess.Status)
	}
	if sess.RemainingSeconds != 60 {
		t.Fatalf("remaining %d, want 60", sess.RemainingSeconds)
	}
	if len(s.options.Options) != 4 {
		t.Fatalf("options not synced: %+v", s.options)
	}
}

func TestQuizScreenExpiryForcesSubmit(t *testing.T) {
	s := newTestScreen(&fakeSubmitter{})
	start(t, s)

	s.ctrl.Session().RemainingSeconds = 1
	_, cmd := s.Update(timerTickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected submit command on expiry tick")
	}
	if got := s.ctrl.Session().Status; got != session.StatusSubmitting {
		t.Fatalf("status %s, want submitting", got)
	}
}

func TestQuizScreenSubmitFailureKeepsAnswers(t *testing.T) {
	s := newTestScreen(&fakeSubmitter{err: errors.New("network down")})
	start(t, s)

	_ = s.ctrl.SelectAnswer(context.Background(), "B")
	if _, err := s.ctrl.BeginSubmit(); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}

	s.Update(submitDoneMsg{Err: errors.New("network down")})
	if !s.showBanner {
		t.Fatal("retry banner not shown")
	}
	sess := s.ctrl.Session()
	if sess.Status != session.StatusInProgress {
		t.Fatalf("status %s, want in_progress after failed submit", sess.Status)
	}
	if sess.Answers[sess.Questions[0].ID] != "B" {
		t.Fatal("answer lost across failed submit")
	}
}

func TestQuizScreenSubmitSuccessShowsSummary(t *testing.T) {
	s := newTestScreen(&fakeSubmitter{})
	start(t, s)

	res, err := s.ctrl.BeginSubmit()
	if err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}

	_, cmd := s.Update(submitDoneMsg{Ack: &session.Ack{AttemptID: res.AttemptID, Result: res}})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Fatalf("expected summary screen, got %T", replace.Screen)
	}
	if got := s.ctrl.Session().Status; got != session.StatusSubmitted {
		t.Fatalf("status %s, want submitted", got)
	}
}
