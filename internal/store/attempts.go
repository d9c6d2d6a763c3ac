package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adesai/stride/ent"
	"github.com/adesai/stride/ent/quizattempt"
	"github.com/adesai/stride/internal/scoring"
)

// attemptRepo implements AttemptRepo on the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) SaveAttempt(ctx context.Context, res scoring.Result, testOut bool) (scoring.Result, bool, error) {
	answers, err := answersToMaps(res.Answers)
	if err != nil {
		return scoring.Result{}, false, fmt.Errorf("marshal answers: %w", err)
	}

	_, err = r.client.QuizAttempt.Create().
		SetAttemptID(res.AttemptID).
		SetUserID(res.UserID).
		SetRoadmapID(res.RoadmapID).
		SetScore(res.Score).
		SetTotalQuestions(res.TotalQuestions).
		SetPercentage(res.Percentage).
		SetTimeTakenMinutes(res.TimeTakenMinutes).
		SetPassed(res.Passed).
		SetTestOut(testOut).
		SetAnswers(answers).
		Save(ctx)
	if err != nil {
		// The unique attempt_id column makes retried submissions land
		// here; return the stored row instead of a duplicate.
		if ent.IsConstraintError(err) {
			stored, loadErr := r.byAttemptID(ctx, res.AttemptID)
			if loadErr != nil {
				return scoring.Result{}, false, loadErr
			}
			return stored, true, nil
		}
		return scoring.Result{}, false, fmt.Errorf("save attempt: %w", err)
	}
	return res, false, nil
}

func (r *attemptRepo) Attempts(ctx context.Context, userID, roadmapID string) ([]scoring.Result, error) {
	rows, err := r.client.QuizAttempt.Query().
		Where(
			quizattempt.UserID(userID),
			quizattempt.RoadmapID(roadmapID),
		).
		Order(ent.Asc(quizattempt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	out := make([]scoring.Result, 0, len(rows))
	for _, row := range rows {
		res, err := rowToResult(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *attemptRepo) byAttemptID(ctx context.Context, attemptID string) (scoring.Result, error) {
	row, err := r.client.QuizAttempt.Query().
		Where(quizattempt.AttemptID(attemptID)).
		Only(ctx)
	if err != nil {
		return scoring.Result{}, fmt.Errorf("load attempt %s: %w", attemptID, err)
	}
	return rowToResult(row)
}

func rowToResult(row *ent.QuizAttempt) (scoring.Result, error) {
	records, err := mapsToAnswers(row.Answers)
	if err != nil {
		return scoring.Result{}, fmt.Errorf("attempt %s: %w", row.AttemptID, err)
	}
	return scoring.Result{
		AttemptID:        row.AttemptID,
		UserID:           row.UserID,
		RoadmapID:        row.RoadmapID,
		Score:            row.Score,
		TotalQuestions:   row.TotalQuestions,
		Percentage:       row.Percentage,
		Answers:          records,
		TimeTakenMinutes: row.TimeTakenMinutes,
		Passed:           row.Passed,
	}, nil
}

// answersToMaps converts records to the generic shape of the ent JSON
// column.
func answersToMaps(records []scoring.AnswerRecord) ([]map[string]any, error) {
	b, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func mapsToAnswers(maps []map[string]any) ([]scoring.AnswerRecord, error) {
	b, err := json.Marshal(maps)
	if err != nil {
		return nil, err
	}
	var out []scoring.AnswerRecord
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
