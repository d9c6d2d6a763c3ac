package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/adesai/stride/ent/sessionsnapshot"
	"github.com/adesai/stride/internal/question"
	"github.com/adesai/stride/internal/quiz"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func testSnapshot(savedAt time.Time) quiz.Snapshot {
	return quiz.Snapshot{
		SessionID: "attempt-1",
		Questions: []question.Question{
			{ID: "q1", Text: "Question 1", Options: []string{"A", "B"}, CorrectAnswer: "A"},
			{ID: "q2", Text: "Question 2", Options: []string{"A", "B"}, CorrectAnswer: "B"},
		},
		CurrentQuestion:  1,
		Answers:          map[string]string{"q1": "A"},
		RemainingSeconds: 540,
		TimeLimitSeconds: 600,
		PassingScore:     60,
		SavedAt:          savedAt,
	}
}

func TestSnapshotSaveLoadRoundTrip(t *testing.T) {
	st := testStore(t)
	repo := st.Snapshots()
	ctx := context.Background()
	savedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := repo.Save(ctx, "u1", "algorithms", testSnapshot(savedAt)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	snap, err := repo.Load(ctx, "u1", "algorithms")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap == nil {
		t.Fatal("Load returned nil for a stored snapshot")
	}
	if snap.SessionID != "attempt-1" || snap.CurrentQuestion != 1 || snap.RemainingSeconds != 540 {
		t.Fatalf("loaded snapshot %+v", snap)
	}
	if snap.Answers["q1"] != "A" {
		t.Fatalf("answers = %v, want q1=A", snap.Answers)
	}
	if !snap.SavedAt.Equal(savedAt) {
		t.Fatalf("savedAt = %v, want %v", snap.SavedAt, savedAt)
	}

	// A second save overwrites the row rather than adding one.
	next := testSnapshot(savedAt.Add(time.Second))
	next.RemainingSeconds = 539
	if err := repo.Save(ctx, "u1", "algorithms", next); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	snap, err = repo.Load(ctx, "u1", "algorithms")
	if err != nil {
		t.Fatalf("Load after overwrite: %v", err)
	}
	if snap.RemainingSeconds != 539 {
		t.Fatalf("remaining = %d, want overwritten 539", snap.RemainingSeconds)
	}
	n, err := st.Client().SessionSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if n != 1 {
		t.Fatalf("%d snapshot rows after two saves, want 1", n)
	}
}

func TestSnapshotLoadMissing(t *testing.T) {
	st := testStore(t)

	snap, err := st.Snapshots().Load(context.Background(), "u1", "algorithms")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap != nil {
		t.Fatalf("Load of missing snapshot = %+v, want nil", snap)
	}
}

func TestSnapshotLoadDiscardsCorruptPayload(t *testing.T) {
	st := testStore(t)
	repo := st.Snapshots()
	ctx := context.Background()

	// A row whose data never round-trips to a usable snapshot: no
	// session ID, no questions.
	_, err := st.Client().SessionSnapshot.Create().
		SetUserID("u1").
		SetRoadmapID("algorithms").
		SetSavedAt(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)).
		SetData(map[string]any{"bogus": true}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	snap, err := repo.Load(ctx, "u1", "algorithms")
	if err != nil {
		t.Fatalf("Load must swallow corruption, got %v", err)
	}
	if snap != nil {
		t.Fatalf("corrupt payload produced snapshot %+v, want nil", snap)
	}

	// The broken row is gone, so it cannot wedge every later resume.
	n, err := st.Client().SessionSnapshot.Query().
		Where(
			sessionsnapshot.UserID("u1"),
			sessionsnapshot.RoadmapID("algorithms"),
		).
		Count(ctx)
	if err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if n != 0 {
		t.Fatalf("corrupt row still present after Load, want deleted")
	}

	// A fresh save on the same key works again.
	if err := repo.Save(ctx, "u1", "algorithms", testSnapshot(time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC))); err != nil {
		t.Fatalf("Save after discard: %v", err)
	}
	snap, err = repo.Load(ctx, "u1", "algorithms")
	if err != nil || snap == nil {
		t.Fatalf("Load after re-save = (%+v, %v), want snapshot", snap, err)
	}
}

func TestSnapshotClear(t *testing.T) {
	st := testStore(t)
	repo := st.Snapshots()
	ctx := context.Background()

	if err := repo.Clear(ctx, "u1", "algorithms"); err != nil {
		t.Fatalf("Clear of missing snapshot: %v", err)
	}

	if err := repo.Save(ctx, "u1", "algorithms", testSnapshot(time.Now())); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Clear(ctx, "u1", "algorithms"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	snap, err := repo.Load(ctx, "u1", "algorithms")
	if err != nil || snap != nil {
		t.Fatalf("Load after Clear = (%+v, %v), want (nil, nil)", snap, err)
	}
}
