// Package service implements the core operations shared by the local
// TUI mode and the HTTP server: quiz assembly, authoritative scoring,
// test-out gating and year progression.
package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/adesai/stride/internal/clock"
	"github.com/adesai/stride/internal/question"
	"github.com/adesai/stride/internal/quiz"
	"github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/scoring"
	"github.com/adesai/stride/internal/store"
	"github.com/adesai/stride/internal/testout"
)

// Service wires pools, the curriculum and the repositories into the
// operations the surfaces call. Safe for concurrent use.
type Service struct {
	clk      clock.Clock
	poolDir  string
	cur      *roadmap.Curriculum
	attempts store.AttemptRepo
	testOuts store.TestOutRepo
	progress store.ProgressRepo

	rngMu sync.Mutex
	rng   *rand.Rand

	// submitMu serializes concurrent submissions of the same attempt
	// ID so duplicates resolve against the stored row, not each other.
	submitMu keyedMutex
}

// New assembles a Service. seed feeds question selection; pass a fixed
// seed in tests for deterministic draws.
func New(clk clock.Clock, poolDir string, cur *roadmap.Curriculum, st *store.Store, seed int64) *Service {
	return &Service{
		clk:      clk,
		poolDir:  poolDir,
		cur:      cur,
		attempts: st.Attempts(),
		testOuts: st.TestOuts(),
		progress: st.Progress(),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Curriculum returns the curriculum the service gates against.
func (s *Service) Curriculum() *roadmap.Curriculum {
	return s.cur
}

// FetchQuiz assembles a fresh question set for a roadmap.
func (s *Service) FetchQuiz(ctx context.Context, roadmapID string) (*quiz.Bundle, error) {
	pool, err := question.LoadPool(s.poolDir, roadmapID)
	if err != nil {
		return nil, err
	}
	settings := pool.EffectiveSettings()
	questions, err := s.draw(pool, settings.QuestionCount)
	if err != nil {
		return nil, err
	}
	return &quiz.Bundle{
		QuizID:    uuid.NewString(),
		Questions: questions,
		Settings:  settings,
	}, nil
}

// SubmitQuiz rescores a submitted attempt against the pool's answer
// key and persists it. Idempotent on the attempt ID: a retry returns
// the stored result unchanged.
func (s *Service) SubmitQuiz(ctx context.Context, res scoring.Result) (*quiz.Ack, error) {
	unlock := s.submitMu.lock(res.AttemptID)
	defer unlock()

	rescored := s.rescore(res, false)
	stored, already, err := s.attempts.SaveAttempt(ctx, rescored, false)
	if err != nil {
		return nil, err
	}
	return &quiz.Ack{
		AttemptID:        stored.AttemptID,
		Result:           stored,
		AlreadySubmitted: already,
	}, nil
}

// FetchTestOut assembles a test-out exam for a roadmap card after
// checking eligibility. Blocked starts return *testout.BlockedError.
func (s *Service) FetchTestOut(ctx context.Context, userID, cardSlug string) (*quiz.Bundle, error) {
	if err := s.checkEligibility(ctx, userID, cardSlug); err != nil {
		return nil, err
	}

	pool, err := question.LoadPool(s.poolDir, cardSlug)
	if err != nil {
		return nil, err
	}
	questions, err := s.draw(pool, testout.QuestionCount)
	if err != nil {
		return nil, err
	}
	return &quiz.Bundle{
		QuizID:    uuid.NewString(),
		Questions: questions,
		Settings: question.Settings{
			TimeLimitMinutes: int(testout.TimeLimit.Minutes()),
			PassingScore:     testout.PassThreshold,
			QuestionCount:    testout.QuestionCount,
		},
	}, nil
}

// SubmitTestOut rescores and persists a test-out attempt, appends it
// to the card's exam history, and on a pass marks every subtopic of
// the card complete so progression treats it as finished.
func (s *Service) SubmitTestOut(ctx context.Context, res scoring.Result) (*quiz.Ack, error) {
	unlock := s.submitMu.lock(res.AttemptID)
	defer unlock()

	rescored := s.rescore(res, true)
	stored, already, err := s.attempts.SaveAttempt(ctx, rescored, true)
	if err != nil {
		return nil, err
	}
	if !already {
		attempt := testout.Attempt{
			UserID:      stored.UserID,
			CardSlug:    stored.RoadmapID,
			CompletedAt: s.clk.Now(),
			Percentage:  stored.Percentage,
			Passed:      stored.Passed,
		}
		if err := s.testOuts.Append(ctx, attempt); err != nil {
			return nil, err
		}
		if stored.Passed {
			if err := s.completeCard(ctx, stored.UserID, stored.RoadmapID); err != nil {
				return nil, err
			}
		}
	}
	return &quiz.Ack{
		AttemptID:        stored.AttemptID,
		Result:           stored,
		AlreadySubmitted: already,
	}, nil
}

// Eligibility reports whether a user may start a test-out for a card.
func (s *Service) Eligibility(ctx context.Context, userID, cardSlug string) (testout.Eligibility, error) {
	history, err := s.testOuts.History(ctx, userID, cardSlug)
	if err != nil {
		return testout.Eligibility{}, err
	}
	return testout.Evaluate(history, s.clk.Now()), nil
}

// Progress evaluates every year of the curriculum for a user.
func (s *Service) Progress(ctx context.Context, userID string) ([]roadmap.YearProgress, error) {
	completion, chosen, err := s.progress.CompletionMap(ctx, userID, s.cur)
	if err != nil {
		return nil, err
	}
	return roadmap.EvaluateYears(s.cur.Years, completion, chosen), nil
}

// Overview returns year progress together with the per-roadmap
// completion counts it was derived from.
func (s *Service) Overview(ctx context.Context, userID string) (*roadmap.Overview, error) {
	completion, chosen, err := s.progress.CompletionMap(ctx, userID, s.cur)
	if err != nil {
		return nil, err
	}
	done, err := s.progress.MarkedNodes(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &roadmap.Overview{
		Years:        roadmap.EvaluateYears(s.cur.Years, completion, chosen),
		Completion:   completion,
		ChosenTracks: chosen,
		DoneNodes:    done,
	}, nil
}

// MarkNode records a completed subtopic for a user.
func (s *Service) MarkNode(ctx context.Context, userID, roadmapID, nodeID string) error {
	entry, _ := s.cur.FindEntry(roadmapID)
	if entry == nil {
		return fmt.Errorf("unknown roadmap %s", roadmapID)
	}
	found := false
	for _, n := range entry.Subtopics {
		if n == nodeID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("roadmap %s has no subtopic %s", roadmapID, nodeID)
	}
	return s.progress.MarkNode(ctx, userID, roadmapID, nodeID)
}

// ChooseTrack records the specialization picked at a hub.
func (s *Service) ChooseTrack(ctx context.Context, userID, hubSlug, trackSlug string) error {
	entry, _ := s.cur.FindEntry(hubSlug)
	if entry == nil || !entry.TechStackHub {
		return fmt.Errorf("%s is not a tech stack hub", hubSlug)
	}
	valid := false
	for _, tr := range entry.Tracks {
		if tr.Slug == trackSlug {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("hub %s has no track %s", hubSlug, trackSlug)
	}
	return s.progress.ChooseTrack(ctx, userID, hubSlug, trackSlug)
}

// Attempts returns the stored attempt history for (user, roadmap).
func (s *Service) Attempts(ctx context.Context, userID, roadmapID string) ([]scoring.Result, error) {
	return s.attempts.Attempts(ctx, userID, roadmapID)
}

func (s *Service) checkEligibility(ctx context.Context, userID, cardSlug string) error {
	if entry, _ := s.cur.FindEntry(cardSlug); entry == nil {
		return fmt.Errorf("unknown roadmap %s", cardSlug)
	}
	elig, err := s.Eligibility(ctx, userID, cardSlug)
	if err != nil {
		return err
	}
	switch elig.State {
	case testout.StatePassed:
		return &testout.BlockedError{State: elig.State}
	case testout.StateCooldown:
		return &testout.BlockedError{State: elig.State, RemainingMinutes: elig.RemainingMinutes}
	}
	return nil
}

func (s *Service) completeCard(ctx context.Context, userID, cardSlug string) error {
	entry, _ := s.cur.FindEntry(cardSlug)
	if entry == nil {
		return fmt.Errorf("unknown roadmap %s", cardSlug)
	}
	return s.progress.MarkAllNodes(ctx, userID, cardSlug, entry.Subtopics)
}

// rescore recomputes correctness from the pool's answer key instead of
// trusting the client's optimistic result. A record whose question ID
// has no entry in the key counts as incorrect: client-reported
// IsCorrect is never taken at face value, or a fabricated submission
// could score a pass. The one exception is a pool that fails to load
// for a practice quiz, where records keep their recorded correctness
// so editing a pool file does not void attempts already in flight.
func (s *Service) rescore(res scoring.Result, isTestOut bool) scoring.Result {
	passing := question.DefaultSettings.PassingScore
	byID := map[string]question.Question{}
	haveKey := false
	if pool, err := question.LoadPool(s.poolDir, res.RoadmapID); err == nil {
		haveKey = true
		for _, q := range pool.Questions {
			byID[q.ID] = q
		}
		passing = pool.EffectiveSettings().PassingScore
	}
	if isTestOut {
		passing = testout.PassThreshold
	}

	out := res
	out.Answers = make([]scoring.AnswerRecord, len(res.Answers))
	copy(out.Answers, res.Answers)

	correct := 0
	for i, rec := range out.Answers {
		if q, ok := byID[rec.QuestionID]; ok {
			rec.CorrectAnswer = q.Answer()
			rec.IsCorrect = rec.UserAnswer != "" && rec.UserAnswer == q.Answer()
		} else if haveKey || isTestOut {
			rec.CorrectAnswer = ""
			rec.IsCorrect = false
		}
		out.Answers[i] = rec
		if rec.IsCorrect {
			correct++
		}
	}
	out.Score = correct
	out.TotalQuestions = len(out.Answers)
	out.Percentage = scoring.Percentage(correct, out.TotalQuestions)
	out.Passed = out.Percentage >= passing
	return out
}

func (s *Service) draw(pool *question.Pool, n int) ([]question.Question, error) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return pool.Draw(s.rng, n)
}
