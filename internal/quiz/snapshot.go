package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/adesai/stride/internal/question"
)

// SnapshotTTL is how long an interrupted attempt stays resumable.
const SnapshotTTL = 30 * time.Minute

// Snapshot is the durable-but-ephemeral capture of an in-progress
// attempt. The whole session is captured so resume reproduces the
// exact question set, cursor, answers and remaining time.
type Snapshot struct {
	SessionID        string              `json:"sessionId"`
	Questions        []question.Question `json:"questions"`
	CurrentQuestion  int                 `json:"currentQuestion"`
	Answers          map[string]string   `json:"answers"`
	RemainingSeconds int                 `json:"remainingSeconds"`
	TimeLimitSeconds int                 `json:"timeLimitSeconds"`
	PassingScore     int                 `json:"passingScore"`
	SavedAt          time.Time           `json:"timestamp"`
}

// SnapshotKey derives the storage key for a (user, roadmap) pair.
// One live snapshot per key.
func SnapshotKey(userID, roadmapID string) string {
	return fmt.Sprintf("quiz_progress_%s_%s", userID, roadmapID)
}

// Fresh reports whether the snapshot is still within the resume TTL.
func (s *Snapshot) Fresh(now time.Time) bool {
	if s == nil || s.SavedAt.IsZero() {
		return false
	}
	return now.Sub(s.SavedAt) < SnapshotTTL
}

// NamespaceSnapshots prefixes the user key so different attempt kinds
// (practice, test-out) on the same roadmap keep separate snapshots.
func NamespaceSnapshots(inner SnapshotStore, prefix string) SnapshotStore {
	return &nsSnapshots{inner: inner, prefix: prefix}
}

type nsSnapshots struct {
	inner  SnapshotStore
	prefix string
}

func (n *nsSnapshots) Load(ctx context.Context, userID, roadmapID string) (*Snapshot, error) {
	return n.inner.Load(ctx, n.prefix+userID, roadmapID)
}

func (n *nsSnapshots) Save(ctx context.Context, userID, roadmapID string, snap Snapshot) error {
	return n.inner.Save(ctx, n.prefix+userID, roadmapID, snap)
}

func (n *nsSnapshots) Clear(ctx context.Context, userID, roadmapID string) error {
	return n.inner.Clear(ctx, n.prefix+userID, roadmapID)
}

// snapshotOf captures the session for persistence.
func snapshotOf(sess *Session, now time.Time) Snapshot {
	answers := make(map[string]string, len(sess.Answers))
	for k, v := range sess.Answers {
		answers[k] = v
	}
	return Snapshot{
		SessionID:        sess.ID,
		Questions:        sess.Questions,
		CurrentQuestion:  sess.Current,
		Answers:          answers,
		RemainingSeconds: sess.RemainingSeconds,
		TimeLimitSeconds: sess.TimeLimitSeconds,
		PassingScore:     sess.PassingScore,
		SavedAt:          now,
	}
}

// restore rebuilds a session from a snapshot.
func (s *Snapshot) restore(userID, roadmapID string, now time.Time) *Session {
	answers := make(map[string]string, len(s.Answers))
	for k, v := range s.Answers {
		answers[k] = v
	}
	cur := s.CurrentQuestion
	if cur < 0 || cur >= len(s.Questions) {
		cur = 0
	}
	return &Session{
		ID:               s.SessionID,
		UserID:           userID,
		RoadmapID:        roadmapID,
		Questions:        s.Questions,
		Answers:          answers,
		Current:          cur,
		TimeLimitSeconds: s.TimeLimitSeconds,
		RemainingSeconds: s.RemainingSeconds,
		PassingScore:     s.PassingScore,
		StartedAt:        now,
		Status:           StatusInProgress,
	}
}
