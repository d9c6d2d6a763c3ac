package quiz

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/adesai/stride/internal/clock"
	"github.com/adesai/stride/internal/question"
	"github.com/adesai/stride/internal/scoring"
)

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type fakeSource struct {
	bundle *Bundle
	err    error
	calls  int
}

func (f *fakeSource) Fetch(_ context.Context, _ string) (*Bundle, error) {
	f.calls++
	return f.bundle, f.err
}

type fakeSubmitter struct {
	mu      sync.Mutex
	err     error
	results []scoring.Result
}

func (f *fakeSubmitter) Submit(_ context.Context, res scoring.Result) (*Ack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.results = append(f.results, res)
	return &Ack{AttemptID: res.AttemptID, Result: res}, nil
}

type fakeSnapStore struct {
	mu      sync.Mutex
	snaps   map[string]*Snapshot
	saves   int
	cleared int
}

func newFakeSnapStore() *fakeSnapStore {
	return &fakeSnapStore{snaps: make(map[string]*Snapshot)}
}

func (f *fakeSnapStore) Load(_ context.Context, userID, roadmapID string) (*Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snaps[SnapshotKey(userID, roadmapID)], nil
}

func (f *fakeSnapStore) Save(_ context.Context, userID, roadmapID string, snap Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snaps[SnapshotKey(userID, roadmapID)] = &snap
	f.saves++
	return nil
}

func (f *fakeSnapStore) Clear(_ context.Context, userID, roadmapID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.snaps, SnapshotKey(userID, roadmapID))
	f.cleared++
	return nil
}

func testBundle(n int) *Bundle {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Text:          fmt.Sprintf("question %d", i+1),
			Options:       []string{"right", "wrong"},
			CorrectAnswer: "right",
			Topic:         "Basics",
		}
	}
	return &Bundle{
		QuizID:    "quiz-1",
		Questions: qs,
		Settings:  question.Settings{TimeLimitMinutes: 20, PassingScore: 60, QuestionCount: n},
	}
}

func newTestController(clk clock.Clock, src QuestionSource, sub Submitter, snaps SnapshotStore) *Controller {
	if clk == nil {
		clk = clock.NewFake(t0)
	}
	if src == nil {
		src = &fakeSource{bundle: testBundle(3)}
	}
	if sub == nil {
		sub = &fakeSubmitter{}
	}
	if snaps == nil {
		snaps = newFakeSnapStore()
	}
	return NewController(clk, src, sub, snaps)
}

func TestStart_FreshSession(t *testing.T) {
	c := newTestController(nil, nil, nil, nil)
	sess, err := c.Start(context.Background(), "u1", "go-basics")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sess.Status != StatusInProgress {
		t.Errorf("status = %s, want in_progress", sess.Status)
	}
	if sess.RemainingSeconds != 1200 {
		t.Errorf("remaining = %d, want 1200", sess.RemainingSeconds)
	}
	if sess.ID != "quiz-1" {
		t.Errorf("session id = %q, want server quiz id", sess.ID)
	}
}

func TestStart_EmptyPoolNotAvailable(t *testing.T) {
	src := &fakeSource{err: question.ErrPoolEmpty}
	c := newTestController(nil, src, nil, nil)
	_, err := c.Start(context.Background(), "u1", "go-basics")
	if !errors.Is(err, ErrNotAvailable) {
		t.Errorf("err = %v, want ErrNotAvailable", err)
	}

	src = &fakeSource{bundle: &Bundle{QuizID: "q", Settings: question.DefaultSettings}}
	c = newTestController(nil, src, nil, nil)
	if _, err := c.Start(context.Background(), "u1", "go-basics"); !errors.Is(err, ErrNotAvailable) {
		t.Errorf("err for zero questions = %v, want ErrNotAvailable", err)
	}
}

func TestTick_CountdownAndExpiry(t *testing.T) {
	src := &fakeSource{bundle: testBundle(2)}
	src.bundle.Settings.TimeLimitMinutes = 1
	c := newTestController(nil, src, nil, nil)
	sess, err := c.Start(context.Background(), "u1", "go-basics")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	prev := sess.RemainingSeconds
	expiries := 0
	for i := 0; i < 70; i++ {
		if c.Tick(context.Background()) {
			expiries++
		}
		if sess.RemainingSeconds > prev {
			t.Fatal("remainingSeconds increased")
		}
		prev = sess.RemainingSeconds
	}
	if expiries != 1 {
		t.Errorf("expiry signaled %d times, want exactly once", expiries)
	}
	if sess.Status != StatusExpired {
		t.Errorf("status = %s, want expired", sess.Status)
	}
	if sess.RemainingSeconds != 0 {
		t.Errorf("remaining = %d, want 0", sess.RemainingSeconds)
	}
}

func TestAnswersFrozenAfterExpiry(t *testing.T) {
	src := &fakeSource{bundle: testBundle(2)}
	src.bundle.Settings.TimeLimitMinutes = 1
	c := newTestController(nil, src, nil, nil)
	if _, err := c.Start(context.Background(), "u1", "go-basics"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.SelectAnswer(context.Background(), "right"); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}

	for !c.Tick(context.Background()) {
	}

	if err := c.SelectAnswer(context.Background(), "wrong"); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("answer after expiry err = %v, want ErrSessionClosed", err)
	}
	if err := c.Navigate(context.Background(), 1); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("navigate after expiry err = %v, want ErrSessionClosed", err)
	}
	if got := c.Session().Answers["q1"]; got != "right" {
		t.Errorf("frozen answer = %q, want right", got)
	}
}

func TestSubmit_ExpiredSessionCarriesFrozenAnswers(t *testing.T) {
	src := &fakeSource{bundle: testBundle(3)}
	src.bundle.Settings.TimeLimitMinutes = 1
	sub := &fakeSubmitter{}
	c := newTestController(nil, src, sub, nil)
	if _, err := c.Start(context.Background(), "u1", "go-basics"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.SelectAnswer(context.Background(), "right"); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	for !c.Tick(context.Background()) {
	}

	ack, err := c.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit after expiry: %v", err)
	}
	if c.Session().Status != StatusSubmitted {
		t.Errorf("status = %s, want submitted", c.Session().Status)
	}
	// Unanswered questions count as incorrect, never block submission.
	if ack.Result.TotalQuestions != 3 || len(ack.Result.Answers) != 3 {
		t.Errorf("result answers = %d/%d, want 3/3", len(ack.Result.Answers), ack.Result.TotalQuestions)
	}
	if ack.Result.Score != 1 {
		t.Errorf("score = %d, want 1", ack.Result.Score)
	}
	if ack.Result.TimeTakenMinutes != 1 {
		t.Errorf("timeTaken = %d, want full limit", ack.Result.TimeTakenMinutes)
	}
}

func TestSubmit_ReentrancyGuard(t *testing.T) {
	c := newTestController(nil, nil, nil, nil)
	if _, err := c.Start(context.Background(), "u1", "go-basics"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := c.BeginSubmit(); err != nil {
		t.Fatalf("first BeginSubmit: %v", err)
	}
	if _, err := c.BeginSubmit(); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("second BeginSubmit err = %v, want ErrSubmitInFlight", err)
	}
	c.FinishSubmit(nil)
	if c.Session().Status != StatusSubmitted {
		t.Errorf("status = %s, want submitted", c.Session().Status)
	}
	if _, err := c.BeginSubmit(); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("submit after submitted err = %v, want ErrSessionClosed", err)
	}
}

func TestSubmit_FailureRevertsAndRetries(t *testing.T) {
	netErr := errors.New("connection reset")
	sub := &fakeSubmitter{err: netErr}
	snaps := newFakeSnapStore()
	c := newTestController(nil, nil, sub, snaps)
	if _, err := c.Start(context.Background(), "u1", "go-basics"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.SelectAnswer(context.Background(), "right"); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}

	if _, err := c.Submit(context.Background()); !errors.Is(err, netErr) {
		t.Fatalf("Submit err = %v, want network error", err)
	}
	if c.Session().Status != StatusInProgress {
		t.Errorf("status after failure = %s, want in_progress", c.Session().Status)
	}
	if c.LastError == nil {
		t.Error("LastError should hold the failure for the retry banner")
	}
	if got := c.Session().Answers["q1"]; got != "right" {
		t.Errorf("answers dropped on failure: %q", got)
	}

	// Retry succeeds and carries the same attempt id (idempotency key).
	sub.mu.Lock()
	sub.err = nil
	sub.mu.Unlock()
	ack, err := c.Submit(context.Background())
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if ack.AttemptID != "quiz-1" {
		t.Errorf("retry attempt id = %q, want stable quiz-1", ack.AttemptID)
	}
	if c.LastError != nil {
		t.Errorf("LastError = %v, want cleared", c.LastError)
	}
}

func TestSubmit_FailureAfterExpiryRevertsToExpired(t *testing.T) {
	src := &fakeSource{bundle: testBundle(2)}
	src.bundle.Settings.TimeLimitMinutes = 1
	sub := &fakeSubmitter{err: errors.New("timeout")}
	c := newTestController(nil, src, sub, nil)
	if _, err := c.Start(context.Background(), "u1", "go-basics"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for !c.Tick(context.Background()) {
	}
	if _, err := c.Submit(context.Background()); err == nil {
		t.Fatal("expected submit failure")
	}
	if c.Session().Status != StatusExpired {
		t.Errorf("status = %s, want expired (not in_progress)", c.Session().Status)
	}
}

func TestTick_CountdownRunsDuringSubmit(t *testing.T) {
	netErr := errors.New("connection reset")
	sub := &fakeSubmitter{err: netErr}
	c := newTestController(nil, nil, sub, nil)
	if _, err := c.Start(context.Background(), "u1", "go-basics"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := c.BeginSubmit(); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	for i := 0; i < 5; i++ {
		if c.Tick(context.Background()) {
			t.Fatal("tick signaled expiry while a submission was pending")
		}
	}
	c.FinishSubmit(netErr)

	if got := c.Session().RemainingSeconds; got != 1195 {
		t.Errorf("remaining = %d, want 1195 (clock must not pause for the round-trip)", got)
	}
	if c.Session().Status != StatusInProgress {
		t.Errorf("status = %s, want in_progress after failed manual submit", c.Session().Status)
	}
}

func TestTick_ZeroDuringSubmitRevertsToExpired(t *testing.T) {
	src := &fakeSource{bundle: testBundle(2)}
	src.bundle.Settings.TimeLimitMinutes = 1
	sub := &fakeSubmitter{err: errors.New("timeout")}
	c := newTestController(nil, src, sub, nil)
	if _, err := c.Start(context.Background(), "u1", "go-basics"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := c.BeginSubmit(); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	for i := 0; i < 70; i++ {
		if c.Tick(context.Background()) {
			t.Fatal("tick signaled expiry while a submission was pending")
		}
	}
	c.FinishSubmit(errors.New("timeout"))

	if c.Session().Status != StatusExpired {
		t.Errorf("status = %s, want expired after clock ran out mid-submit", c.Session().Status)
	}
	if c.Session().RemainingSeconds != 0 {
		t.Errorf("remaining = %d, want 0", c.Session().RemainingSeconds)
	}
	if err := c.SelectAnswer(context.Background(), "right"); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("answer after mid-submit expiry err = %v, want ErrSessionClosed", err)
	}
}

func TestResume_FreshSnapshot(t *testing.T) {
	clk := clock.NewFake(t0)
	snaps := newFakeSnapStore()
	src := &fakeSource{bundle: testBundle(3)}
	c := newTestController(clk, src, nil, snaps)
	if _, err := c.Start(context.Background(), "u1", "go-basics"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.SelectAnswer(context.Background(), "right"); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	if err := c.Navigate(context.Background(), 1); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	c.Tick(context.Background())
	c.Tick(context.Background())

	stored := snaps.snaps[SnapshotKey("u1", "go-basics")]
	if stored == nil || stored.RemainingSeconds != 1198 {
		t.Fatalf("stored snapshot = %+v, want remaining 1198", stored)
	}

	// Navigating away abandons the memory state but keeps the snapshot.
	c.Abandon()

	clk.Advance(29 * time.Minute)
	c2 := newTestController(clk, src, nil, snaps)
	sess, err := c2.Start(context.Background(), "u1", "go-basics")
	if err != nil {
		t.Fatalf("resume Start: %v", err)
	}
	if sess.ID != "quiz-1" {
		t.Errorf("resumed id = %q, want original attempt", sess.ID)
	}
	if sess.Current != 1 {
		t.Errorf("resumed cursor = %d, want 1", sess.Current)
	}
	if sess.Answers["q1"] != "right" {
		t.Errorf("resumed answers = %v, want q1=right", sess.Answers)
	}
	if sess.RemainingSeconds != 1198 {
		t.Errorf("resumed remaining = %d, want 1198", sess.RemainingSeconds)
	}
	if src.calls != 1 {
		t.Errorf("fetch calls = %d, want 1 (no refetch on resume)", src.calls)
	}
}

func TestResume_StaleSnapshotIgnored(t *testing.T) {
	clk := clock.NewFake(t0)
	snaps := newFakeSnapStore()
	snaps.snaps[SnapshotKey("u1", "go-basics")] = &Snapshot{
		SessionID:        "old",
		Questions:        testBundle(2).Questions,
		RemainingSeconds: 500,
		SavedAt:          t0.Add(-31 * time.Minute),
	}
	src := &fakeSource{bundle: testBundle(3)}
	c := newTestController(clk, src, nil, snaps)

	sess, err := c.Start(context.Background(), "u1", "go-basics")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sess.ID == "old" {
		t.Error("stale snapshot must not be restored")
	}
	if src.calls != 1 {
		t.Errorf("fetch calls = %d, want fresh fetch", src.calls)
	}
}

func TestSubmit_ClearsSnapshot(t *testing.T) {
	snaps := newFakeSnapStore()
	c := newTestController(nil, nil, nil, snaps)
	if _, err := c.Start(context.Background(), "u1", "go-basics"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.SelectAnswer(context.Background(), "right"); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	if _, err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if snaps.snaps[SnapshotKey("u1", "go-basics")] != nil || snaps.cleared == 0 {
		t.Error("snapshot should be cleared after acknowledgment")
	}
}

func TestSnapshotFresh(t *testing.T) {
	s := &Snapshot{SavedAt: t0}
	if !s.Fresh(t0.Add(29 * time.Minute)) {
		t.Error("29m-old snapshot should be fresh")
	}
	if s.Fresh(t0.Add(30 * time.Minute)) {
		t.Error("30m-old snapshot should be stale")
	}
	var nilSnap *Snapshot
	if nilSnap.Fresh(t0) {
		t.Error("nil snapshot is never fresh")
	}
}
