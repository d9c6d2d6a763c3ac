package scoring

import (
	"fmt"
	"testing"

	"github.com/adesai/stride/internal/question"
)

func tenQuestions() []question.Question {
	qs := make([]question.Question, 10)
	for i := range qs {
		qs[i] = question.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Text:          fmt.Sprintf("question %d", i+1),
			Options:       []string{"right", "wrong"},
			CorrectAnswer: "right",
			Topic:         "Basics",
		}
	}
	return qs
}

func TestBuildRecords_OnePerQuestion(t *testing.T) {
	qs := tenQuestions()
	// Answer only three questions, one of them wrong.
	answers := map[string]string{
		"q1": "right",
		"q2": "wrong",
		"q3": "right",
	}
	records := BuildRecords(qs, answers)

	if len(records) != len(qs) {
		t.Fatalf("records = %d, want %d (one per question)", len(records), len(qs))
	}
	for _, r := range records[3:] {
		if r.UserAnswer != "" {
			t.Errorf("%s: unanswered UserAnswer = %q, want empty", r.QuestionID, r.UserAnswer)
		}
		if r.IsCorrect {
			t.Errorf("%s: unanswered marked correct", r.QuestionID)
		}
	}
	if !records[0].IsCorrect || records[1].IsCorrect || !records[2].IsCorrect {
		t.Errorf("correctness = %v %v %v, want true false true",
			records[0].IsCorrect, records[1].IsCorrect, records[2].IsCorrect)
	}
}

func TestBuildRecords_SetShapedAnswerKey(t *testing.T) {
	qs := []question.Question{
		{ID: "q1", Options: []string{"a", "b"}, CorrectAnswers: []string{"b", "a"}},
	}
	records := BuildRecords(qs, map[string]string{"q1": "b"})
	if !records[0].IsCorrect {
		t.Error("first element of correctAnswers should be the canonical answer")
	}
	if records[0].CorrectAnswer != "b" {
		t.Errorf("CorrectAnswer = %q, want b", records[0].CorrectAnswer)
	}
	if records[0].Topic != question.DefaultTopic {
		t.Errorf("Topic = %q, want default", records[0].Topic)
	}
}

func TestBuildRecords_NoFuzzyMatching(t *testing.T) {
	qs := []question.Question{
		{ID: "q1", Options: []string{"Right", "wrong"}, CorrectAnswer: "Right"},
	}
	records := BuildRecords(qs, map[string]string{"q1": "right"})
	if records[0].IsCorrect {
		t.Error("comparison must be exact, not case-insensitive")
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		score, total, want int
	}{
		{7, 10, 70},
		{0, 10, 0},
		{10, 10, 100},
		{1, 3, 33},
		{2, 3, 67},
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := Percentage(tc.score, tc.total); got != tc.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tc.score, tc.total, got, tc.want)
		}
	}
}

func TestTimeTaken(t *testing.T) {
	cases := []struct {
		limit, remaining, want int
	}{
		{1200, 1100, 2}, // 100s elapsed rounds to 2 minutes
		{1200, 0, 20},
		{1200, 1200, 0},
		{1200, 1300, 0}, // clock skew floors at 0
		{600, 570, 1},   // 30s rounds up
		{600, 586, 0},   // 14s rounds down
	}
	for _, tc := range cases {
		if got := TimeTaken(tc.limit, tc.remaining); got != tc.want {
			t.Errorf("TimeTaken(%d, %d) = %d, want %d", tc.limit, tc.remaining, got, tc.want)
		}
	}
}

// Spec scenario: 10 questions, 1200s limit, 7 correct, 3 blank,
// manual submit at 1100s remaining.
func TestScore_PartialSubmitScenario(t *testing.T) {
	qs := tenQuestions()
	answers := make(map[string]string)
	for i := 1; i <= 7; i++ {
		answers[fmt.Sprintf("q%d", i)] = "right"
	}

	res := Score("attempt-1", "u1", "go-basics", qs, answers, 1200, 1100, 60)

	if res.Score != 7 {
		t.Errorf("Score = %d, want 7", res.Score)
	}
	if res.Percentage != 70 {
		t.Errorf("Percentage = %d, want 70", res.Percentage)
	}
	if res.TimeTakenMinutes != 2 {
		t.Errorf("TimeTakenMinutes = %d, want 2", res.TimeTakenMinutes)
	}
	if res.TotalQuestions != 10 || len(res.Answers) != 10 {
		t.Errorf("TotalQuestions = %d, answers = %d, want 10/10", res.TotalQuestions, len(res.Answers))
	}
	if !res.Passed {
		t.Error("70%% with a 60%% threshold should pass")
	}
}

func TestScore_ThresholdBoundary(t *testing.T) {
	qs := tenQuestions()
	answers := make(map[string]string)
	for i := 1; i <= 8; i++ {
		answers[fmt.Sprintf("q%d", i)] = "right"
	}
	res := Score("a", "u", "r", qs, answers, 1200, 0, 80)
	if !res.Passed {
		t.Error("exactly the threshold must pass (>=)")
	}

	answers = map[string]string{"q1": "right"}
	res = Score("a", "u", "r", qs, answers, 1200, 0, 80)
	if res.Passed {
		t.Error("10%% should not pass an 80%% threshold")
	}
}
