// Package quiz owns the timed attempt lifecycle: a session state
// machine driven by UI events and a once-per-second tick, with
// snapshot persistence so an interrupted attempt can resume.
package quiz

import (
	"errors"
	"time"

	"github.com/adesai/stride/internal/question"
)

// Status is the session lifecycle state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusLoading    Status = "loading"
	StatusInProgress Status = "in_progress"
	StatusSubmitting Status = "submitting"
	StatusSubmitted  Status = "submitted"
	StatusExpired    Status = "expired"
)

var (
	// ErrNotAvailable means the roadmap has no questions to serve.
	// Fatal to this attempt, not to the app.
	ErrNotAvailable = errors.New("quiz not available")

	// ErrSubmitInFlight guards against duplicate submissions from a
	// double press or a timer/manual race.
	ErrSubmitInFlight = errors.New("submission already in flight")

	// ErrSessionClosed is returned for mutations after the session
	// left InProgress.
	ErrSessionClosed = errors.New("session no longer accepts answers")

	// ErrNoActiveSession is returned when the controller has no
	// session to operate on.
	ErrNoActiveSession = errors.New("no active session")
)

// Session is one quiz attempt. Owned exclusively by the Controller
// while in progress; read-only once submitted or expired.
type Session struct {
	// ID doubles as the idempotency key for submission.
	ID string

	UserID    string
	RoadmapID string

	Questions []question.Question

	// Answers maps question ID to the selected option text.
	Answers map[string]string

	// Current is the index of the question being displayed.
	Current int

	TimeLimitSeconds int
	RemainingSeconds int
	PassingScore     int

	StartedAt time.Time
	Status    Status

	// TestOut marks the compressed unlock exam variant.
	TestOut bool
}

// CurrentQuestion returns the question at the cursor, or nil when the
// session has no questions.
func (s *Session) CurrentQuestion() *question.Question {
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Current]
}

// AnsweredCount returns how many questions have a recorded answer.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, q := range s.Questions {
		if s.Answers[q.ID] != "" {
			n++
		}
	}
	return n
}

// Active reports whether the session still accepts answers.
func (s *Session) Active() bool {
	return s.Status == StatusInProgress
}
