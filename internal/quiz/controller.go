package quiz

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/adesai/stride/internal/clock"
	"github.com/adesai/stride/internal/question"
	"github.com/adesai/stride/internal/scoring"
)

// Bundle is a freshly assembled question set for one attempt.
type Bundle struct {
	QuizID    string
	Questions []question.Question
	Settings  question.Settings
}

// QuestionSource assembles question sets. Implemented by the local
// pool loader and the HTTP client.
type QuestionSource interface {
	Fetch(ctx context.Context, roadmapID string) (*Bundle, error)
}

// Ack is the server's (or local store's) acknowledgment of a
// submission. Authoritative: its result wins over the optimistic
// client-side score.
type Ack struct {
	AttemptID        string
	Result           scoring.Result
	AlreadySubmitted bool
}

// Submitter persists a finished attempt. Submissions carry the
// session ID as idempotency key, so retries must not double-count.
type Submitter interface {
	Submit(ctx context.Context, result scoring.Result) (*Ack, error)
}

// SnapshotStore persists in-progress attempt snapshots. Load returns
// (nil, nil) for missing, stale or malformed snapshots; corruption is
// discarded, never surfaced.
type SnapshotStore interface {
	Load(ctx context.Context, userID, roadmapID string) (*Snapshot, error)
	Save(ctx context.Context, userID, roadmapID string, snap Snapshot) error
	Clear(ctx context.Context, userID, roadmapID string) error
}

// Controller owns the per-attempt state machine:
//
//	Idle → Loading → InProgress → (Submitting → Submitted)
//	                            | (Expired → Submitting → Submitted)
//
// It is driven from a single goroutine (the UI event loop); snapshot
// writes are synchronous best effort.
type Controller struct {
	clk       clock.Clock
	source    QuestionSource
	submitter Submitter
	snaps     SnapshotStore

	sess *Session

	// submitFrom remembers the state to revert to when a submission
	// fails: InProgress for a manual submit, Expired after timeout.
	submitFrom Status

	// LastError holds the most recent submit failure for the UI's
	// retry banner. Cleared on the next successful transition.
	LastError error
}

// NewController wires the collaborators for one attempt at a time.
func NewController(clk clock.Clock, source QuestionSource, submitter Submitter, snaps SnapshotStore) *Controller {
	return &Controller{
		clk:       clk,
		source:    source,
		submitter: submitter,
		snaps:     snaps,
	}
}

// Session exposes the current session for rendering. Nil before Start.
func (c *Controller) Session() *Session {
	return c.sess
}

// Start fetches questions and settings for the roadmap and enters
// InProgress. A snapshot for the same (user, roadmap) younger than
// the TTL restores the interrupted attempt instead of starting fresh.
func (c *Controller) Start(ctx context.Context, userID, roadmapID string) (*Session, error) {
	c.sess = &Session{UserID: userID, RoadmapID: roadmapID, Status: StatusLoading}
	c.LastError = nil

	now := c.clk.Now()
	if snap, err := c.snaps.Load(ctx, userID, roadmapID); err == nil && snap.Fresh(now) && len(snap.Questions) > 0 {
		c.sess = snap.restore(userID, roadmapID, now)
		return c.sess, nil
	}

	bundle, err := c.source.Fetch(ctx, roadmapID)
	if err != nil {
		c.sess.Status = StatusIdle
		if errors.Is(err, question.ErrPoolEmpty) || errors.Is(err, question.ErrPoolNotFound) {
			return nil, ErrNotAvailable
		}
		return nil, err
	}
	if len(bundle.Questions) == 0 {
		c.sess.Status = StatusIdle
		return nil, ErrNotAvailable
	}

	id := bundle.QuizID
	if id == "" {
		id = uuid.NewString()
	}
	c.sess = &Session{
		ID:               id,
		UserID:           userID,
		RoadmapID:        roadmapID,
		Questions:        bundle.Questions,
		Answers:          make(map[string]string),
		TimeLimitSeconds: bundle.Settings.TimeLimitMinutes * 60,
		RemainingSeconds: bundle.Settings.TimeLimitMinutes * 60,
		PassingScore:     bundle.Settings.PassingScore,
		StartedAt:        now,
		Status:           StatusInProgress,
	}
	c.persist(ctx)
	return c.sess, nil
}

// Tick advances the countdown by one second. Returns true when this
// tick expired the session; expiry freezes the answer set and the
// caller must trigger submission (exactly one Tick can return true).
//
// The clock also runs while a submission is in flight. A tick that
// reaches zero then cannot signal expiry again (a submission is
// already pending), but it moves the revert state to Expired so a
// failed round-trip lands in Expired, not InProgress.
func (c *Controller) Tick(ctx context.Context) bool {
	if c.sess == nil {
		return false
	}
	switch c.sess.Status {
	case StatusInProgress:
		if c.sess.RemainingSeconds > 0 {
			c.sess.RemainingSeconds--
		}
		if c.sess.RemainingSeconds <= 0 {
			c.sess.Status = StatusExpired
			c.persist(ctx)
			return true
		}
		c.persist(ctx)
	case StatusSubmitting:
		if c.sess.RemainingSeconds > 0 {
			c.sess.RemainingSeconds--
		}
		if c.sess.RemainingSeconds <= 0 {
			c.submitFrom = StatusExpired
		}
	}
	return false
}

// SelectAnswer records the chosen option for the current question.
func (c *Controller) SelectAnswer(ctx context.Context, option string) error {
	if c.sess == nil {
		return ErrNoActiveSession
	}
	if !c.sess.Active() {
		return ErrSessionClosed
	}
	q := c.sess.CurrentQuestion()
	if q == nil {
		return ErrNoActiveSession
	}
	c.sess.Answers[q.ID] = option
	c.persist(ctx)
	return nil
}

// Navigate moves the question cursor by delta, clamped to bounds.
func (c *Controller) Navigate(ctx context.Context, delta int) error {
	if c.sess == nil {
		return ErrNoActiveSession
	}
	if !c.sess.Active() {
		return ErrSessionClosed
	}
	next := c.sess.Current + delta
	if next < 0 {
		next = 0
	}
	if max := len(c.sess.Questions) - 1; next > max {
		next = max
	}
	c.sess.Current = next
	c.persist(ctx)
	return nil
}

// BeginSubmit freezes the session for submission and returns the
// optimistic local result to send. Valid from InProgress (manual) and
// Expired (auto). Re-entrant calls fail with ErrSubmitInFlight.
func (c *Controller) BeginSubmit() (scoring.Result, error) {
	if c.sess == nil {
		return scoring.Result{}, ErrNoActiveSession
	}
	switch c.sess.Status {
	case StatusInProgress, StatusExpired:
		c.submitFrom = c.sess.Status
	case StatusSubmitting:
		return scoring.Result{}, ErrSubmitInFlight
	default:
		return scoring.Result{}, ErrSessionClosed
	}
	c.sess.Status = StatusSubmitting

	res := scoring.Score(
		c.sess.ID,
		c.sess.UserID,
		c.sess.RoadmapID,
		c.sess.Questions,
		c.sess.Answers,
		c.sess.TimeLimitSeconds,
		c.sess.RemainingSeconds,
		c.sess.PassingScore,
	)
	return res, nil
}

// Submit runs the full submission round-trip against the Submitter.
// On failure the session reverts to its pre-submit state and the
// error is kept for the retry banner; answers already entered are
// never dropped.
func (c *Controller) Submit(ctx context.Context) (*Ack, error) {
	res, err := c.BeginSubmit()
	if err != nil {
		return nil, err
	}
	ack, err := c.submitter.Submit(ctx, res)
	c.FinishSubmit(err)
	if err != nil {
		return nil, err
	}
	return ack, nil
}

// FinishSubmit completes the Submitting transition: Submitted on
// acknowledgment (snapshot cleared), or back to the pre-submit state
// on failure so the user can retry.
func (c *Controller) FinishSubmit(err error) {
	if c.sess == nil || c.sess.Status != StatusSubmitting {
		return
	}
	if err != nil {
		c.sess.Status = c.submitFrom
		c.LastError = err
		return
	}
	c.sess.Status = StatusSubmitted
	c.LastError = nil
	c.clearSnapshot()
}

// Abandon drops the in-memory session, leaving the last snapshot in
// place for resume within the TTL. No cancel signal goes upstream.
func (c *Controller) Abandon() {
	c.sess = nil
	c.LastError = nil
}

// persist writes a snapshot, best effort: a failed write only costs
// resume, so the error is dropped and never interrupts the attempt.
// Writes stay ordered (no goroutine per save) so the stored snapshot
// is always the newest state.
func (c *Controller) persist(ctx context.Context) {
	if c.snaps == nil || c.sess == nil || c.sess.Status != StatusInProgress && c.sess.Status != StatusExpired {
		return
	}
	snap := snapshotOf(c.sess, c.clk.Now())
	_ = c.snaps.Save(ctx, c.sess.UserID, c.sess.RoadmapID, snap)
}

func (c *Controller) clearSnapshot() {
	if c.snaps == nil || c.sess == nil {
		return
	}
	_ = c.snaps.Clear(context.Background(), c.sess.UserID, c.sess.RoadmapID)
}
