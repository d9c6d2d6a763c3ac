package client

import (
	"context"

	"github.com/adesai/stride/internal/quiz"
	"github.com/adesai/stride/internal/scoring"
)

// QuizSource adapts the client to quiz.QuestionSource.
type QuizSource struct {
	C *Client
}

func (s *QuizSource) Fetch(ctx context.Context, roadmapID string) (*quiz.Bundle, error) {
	return s.C.FetchQuiz(ctx, roadmapID)
}

// QuizSubmitter adapts the client to quiz.Submitter.
type QuizSubmitter struct {
	C *Client
}

func (s *QuizSubmitter) Submit(ctx context.Context, res scoring.Result) (*quiz.Ack, error) {
	return s.C.SubmitQuiz(ctx, res)
}

// TestOutSource adapts the client to quiz.QuestionSource for test-out
// exams.
type TestOutSource struct {
	C *Client
}

func (s *TestOutSource) Fetch(ctx context.Context, cardSlug string) (*quiz.Bundle, error) {
	return s.C.StartTestOut(ctx, cardSlug)
}

// TestOutSubmitter adapts the client to quiz.Submitter for test-out
// exams.
type TestOutSubmitter struct {
	C *Client
}

func (s *TestOutSubmitter) Submit(ctx context.Context, res scoring.Result) (*quiz.Ack, error) {
	return s.C.SubmitTestOut(ctx, res)
}
