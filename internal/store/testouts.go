package store

import (
	"context"
	"fmt"

	"github.com/adesai/stride/ent"
	"github.com/adesai/stride/ent/testoutattempt"
	"github.com/adesai/stride/internal/testout"
)

// testOutRepo implements TestOutRepo on the ent client.
type testOutRepo struct {
	client *ent.Client
}

func (r *testOutRepo) Append(ctx context.Context, a testout.Attempt) error {
	_, err := r.client.TestOutAttempt.Create().
		SetUserID(a.UserID).
		SetCardSlug(a.CardSlug).
		SetCompletedAt(a.CompletedAt).
		SetPercentage(a.Percentage).
		SetPassed(a.Passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append test-out attempt: %w", err)
	}
	return nil
}

func (r *testOutRepo) History(ctx context.Context, userID, cardSlug string) ([]testout.Attempt, error) {
	rows, err := r.client.TestOutAttempt.Query().
		Where(
			testoutattempt.UserID(userID),
			testoutattempt.CardSlug(cardSlug),
		).
		Order(ent.Asc(testoutattempt.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query test-out history: %w", err)
	}
	out := make([]testout.Attempt, 0, len(rows))
	for _, row := range rows {
		out = append(out, testout.Attempt{
			UserID:      row.UserID,
			CardSlug:    row.CardSlug,
			CompletedAt: row.CompletedAt,
			Percentage:  row.Percentage,
			Passed:      row.Passed,
		})
	}
	return out, nil
}
