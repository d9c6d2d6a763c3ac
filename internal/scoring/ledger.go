// Package scoring builds the canonical answer ledger for a quiz
// attempt and computes the aggregate result.
package scoring

import (
	"math"

	"github.com/adesai/stride/internal/question"
)

// AnswerRecord is the canonical record of one answered (or skipped)
// question. Never mutated after creation.
type AnswerRecord struct {
	QuestionID    string `json:"questionId"`
	Topic         string `json:"topic"`
	Difficulty    int    `json:"difficulty"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// Result is the scored outcome of one attempt.
type Result struct {
	AttemptID        string         `json:"attemptId"`
	UserID           string         `json:"userId"`
	RoadmapID        string         `json:"roadmapId"`
	Score            int            `json:"score"`
	TotalQuestions   int            `json:"totalQuestions"`
	Percentage       int            `json:"percentage"`
	Answers          []AnswerRecord `json:"answers"`
	TimeTakenMinutes int            `json:"timeTakenMinutes"`
	Passed           bool           `json:"passed"`
}

// BuildRecords produces exactly one AnswerRecord per question.
// Unanswered questions get an empty user answer and count as wrong.
func BuildRecords(questions []question.Question, answers map[string]string) []AnswerRecord {
	records := make([]AnswerRecord, 0, len(questions))
	for _, q := range questions {
		correct := q.Answer()
		user := answers[q.ID]
		records = append(records, AnswerRecord{
			QuestionID:    q.ID,
			Topic:         q.TopicOrDefault(),
			Difficulty:    q.Difficulty,
			UserAnswer:    user,
			CorrectAnswer: correct,
			// Exact match on canonical option text; an unanswered
			// question never matches.
			IsCorrect: user != "" && user == correct,
		})
	}
	return records
}

// CountCorrect returns the number of correct records.
func CountCorrect(records []AnswerRecord) int {
	n := 0
	for _, r := range records {
		if r.IsCorrect {
			n++
		}
	}
	return n
}

// Percentage returns the rounded percent score, 0 when total is 0.
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

// TimeTaken converts the countdown delta to whole minutes, rounded,
// floored at 0 so a clock skew can never produce a negative duration.
func TimeTaken(timeLimitSeconds, remainingSeconds int) int {
	elapsed := timeLimitSeconds - remainingSeconds
	if elapsed < 0 {
		return 0
	}
	return int(math.Round(float64(elapsed) / 60))
}

// Score assembles the full result for an attempt.
func Score(attemptID, userID, roadmapID string, questions []question.Question, answers map[string]string, timeLimitSeconds, remainingSeconds, passingScore int) Result {
	records := BuildRecords(questions, answers)
	score := CountCorrect(records)
	pct := Percentage(score, len(records))
	return Result{
		AttemptID:        attemptID,
		UserID:           userID,
		RoadmapID:        roadmapID,
		Score:            score,
		TotalQuestions:   len(records),
		Percentage:       pct,
		Answers:          records,
		TimeTakenMinutes: TimeTaken(timeLimitSeconds, remainingSeconds),
		Passed:           pct >= passingScore,
	}
}
