package service

import (
	"context"

	"github.com/adesai/stride/internal/quiz"
	"github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/scoring"
	"github.com/adesai/stride/internal/testout"
)

// QuizSource adapts the service to quiz.QuestionSource for regular
// practice quizzes.
type QuizSource struct {
	Svc *Service
}

func (s *QuizSource) Fetch(ctx context.Context, roadmapID string) (*quiz.Bundle, error) {
	return s.Svc.FetchQuiz(ctx, roadmapID)
}

// QuizSubmitter adapts the service to quiz.Submitter.
type QuizSubmitter struct {
	Svc *Service
}

func (s *QuizSubmitter) Submit(ctx context.Context, res scoring.Result) (*quiz.Ack, error) {
	return s.Svc.SubmitQuiz(ctx, res)
}

// TestOutSource adapts the service to quiz.QuestionSource for test-out
// exams; the roadmap ID passed to Fetch is the card slug.
type TestOutSource struct {
	Svc    *Service
	UserID string
}

func (s *TestOutSource) Fetch(ctx context.Context, cardSlug string) (*quiz.Bundle, error) {
	return s.Svc.FetchTestOut(ctx, s.UserID, cardSlug)
}

// TestOutSubmitter adapts the service to quiz.Submitter for test-out
// exams.
type TestOutSubmitter struct {
	Svc *Service
}

func (s *TestOutSubmitter) Submit(ctx context.Context, res scoring.Result) (*quiz.Ack, error) {
	return s.Svc.SubmitTestOut(ctx, res)
}

// Progression binds the service's progression operations to one user,
// matching the shape the HTTP client exposes.
type Progression struct {
	Svc    *Service
	UserID string
}

func (p *Progression) Progress(ctx context.Context) (*roadmap.Overview, error) {
	return p.Svc.Overview(ctx, p.UserID)
}

func (p *Progression) Eligibility(ctx context.Context, cardSlug string) (testout.Eligibility, error) {
	return p.Svc.Eligibility(ctx, p.UserID, cardSlug)
}

func (p *Progression) MarkNode(ctx context.Context, roadmapID, nodeID string) error {
	return p.Svc.MarkNode(ctx, p.UserID, roadmapID, nodeID)
}

func (p *Progression) ChooseTrack(ctx context.Context, hubSlug, trackSlug string) error {
	return p.Svc.ChooseTrack(ctx, p.UserID, hubSlug, trackSlug)
}
