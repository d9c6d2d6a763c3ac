package store

import (
	"context"

	"github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/scoring"
	"github.com/adesai/stride/internal/testout"
)

// AttemptRepo persists submitted quiz attempts. Append-only; one row
// per attempt ID.
type AttemptRepo interface {
	// SaveAttempt stores a result. Idempotent on result.AttemptID: a
	// second save returns the stored result and already=true instead
	// of creating a duplicate.
	SaveAttempt(ctx context.Context, res scoring.Result, testOut bool) (stored scoring.Result, already bool, err error)

	// Attempts returns the attempt history for (user, roadmap),
	// oldest first.
	Attempts(ctx context.Context, userID, roadmapID string) ([]scoring.Result, error)
}

// TestOutRepo persists test-out exam records.
type TestOutRepo interface {
	// Append adds one completed attempt to the history.
	Append(ctx context.Context, a testout.Attempt) error

	// History returns all attempts for (user, card), oldest first.
	History(ctx context.Context, userID, cardSlug string) ([]testout.Attempt, error)
}

// ProgressRepo tracks completed subtopics per roadmap.
type ProgressRepo interface {
	// MarkNode records a completed subtopic. Marking an already
	// completed node is a no-op.
	MarkNode(ctx context.Context, userID, roadmapID, nodeID string) error

	// MarkAllNodes records full completion of a roadmap, as a passed
	// test-out does for gating purposes.
	MarkAllNodes(ctx context.Context, userID, roadmapID string, nodeIDs []string) error

	// ChooseTrack records the specialization selected at a hub.
	// Choosing again is rejected once a different track is set.
	ChooseTrack(ctx context.Context, userID, hubSlug, trackSlug string) error

	// CompletionMap assembles the evaluator inputs for a curriculum:
	// per-roadmap completion counts and the chosen track per hub.
	CompletionMap(ctx context.Context, userID string, cur *roadmap.Curriculum) (map[string]roadmap.Completion, map[string]string, error)

	// MarkedNodes returns the completed node IDs per roadmap, track
	// choice markers excluded.
	MarkedNodes(ctx context.Context, userID string) (map[string][]string, error)
}
