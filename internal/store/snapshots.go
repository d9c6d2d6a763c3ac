package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adesai/stride/ent"
	"github.com/adesai/stride/ent/sessionsnapshot"
	"github.com/adesai/stride/internal/quiz"
)

// SnapshotRepo implements quiz.SnapshotStore: one live snapshot row
// per (user, roadmap), overwritten on every save.
type SnapshotRepo struct {
	client *ent.Client
}

// Load returns the stored snapshot, or (nil, nil) when none exists.
// A corrupt payload is discarded and its row deleted so a broken
// snapshot can never wedge resume; the TTL check belongs to the
// session controller.
func (r *SnapshotRepo) Load(ctx context.Context, userID, roadmapID string) (*quiz.Snapshot, error) {
	row, err := r.client.SessionSnapshot.Query().
		Where(
			sessionsnapshot.UserID(userID),
			sessionsnapshot.RoadmapID(roadmapID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query snapshot: %w", err)
	}

	snap, err := dataToSnapshot(row.Data)
	if err != nil {
		_ = r.Clear(ctx, userID, roadmapID)
		return nil, nil
	}
	snap.SavedAt = row.SavedAt
	return snap, nil
}

// Save upserts the snapshot for (user, roadmap).
func (r *SnapshotRepo) Save(ctx context.Context, userID, roadmapID string, snap quiz.Snapshot) error {
	data, err := snapshotToData(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	n, err := r.client.SessionSnapshot.Update().
		Where(
			sessionsnapshot.UserID(userID),
			sessionsnapshot.RoadmapID(roadmapID),
		).
		SetSavedAt(snap.SavedAt).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update snapshot: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.SessionSnapshot.Create().
		SetUserID(userID).
		SetRoadmapID(roadmapID).
		SetSavedAt(snap.SavedAt).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	return nil
}

// Clear removes the snapshot for (user, roadmap), if any.
func (r *SnapshotRepo) Clear(ctx context.Context, userID, roadmapID string) error {
	_, err := r.client.SessionSnapshot.Delete().
		Where(
			sessionsnapshot.UserID(userID),
			sessionsnapshot.RoadmapID(roadmapID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}

func snapshotToData(snap quiz.Snapshot) (map[string]any, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func dataToSnapshot(data map[string]any) (*quiz.Snapshot, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var snap quiz.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, err
	}
	if snap.SessionID == "" || len(snap.Questions) == 0 {
		return nil, fmt.Errorf("snapshot payload incomplete")
	}
	return &snap, nil
}
