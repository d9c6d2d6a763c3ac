// Package testout gates the compressed unlock exams: fixed shape,
// hourly retry cooldown after a failure, permanent pass memory.
package testout

import (
	"time"
)

// Fixed exam shape for every test-out attempt.
const (
	QuestionCount = 10
	TimeLimit     = 20 * time.Minute
	PassThreshold = 80
	Cooldown      = time.Hour
)

// Attempt is one completed test-out exam. Records are append-only;
// eligibility is always derived from history, never from a flag.
type Attempt struct {
	UserID      string    `json:"userId"`
	CardSlug    string    `json:"cardSlug"`
	CompletedAt time.Time `json:"completedAt"`
	Percentage  int       `json:"percentage"`
	Passed      bool      `json:"passed"`
}

// State describes whether a new attempt may start.
type State string

const (
	// StateEligible means an attempt may start now.
	StateEligible State = "eligible"

	// StateCooldown means the last attempt failed less than an hour
	// ago.
	StateCooldown State = "cooldown"

	// StatePassed means a past attempt passed; the card is unlocked
	// for good and no retake is offered.
	StatePassed State = "passed"
)

// Eligibility is the limiter's decision for one (user, card).
type Eligibility struct {
	State State `json:"state"`

	// RemainingMinutes is the whole minutes left in the cooldown
	// window, rounded up. Zero unless State is StateCooldown.
	RemainingMinutes int `json:"remainingMinutes,omitempty"`
}

// Evaluate derives eligibility from the attempt history for one
// (user, card). Any passed attempt wins permanently; otherwise only
// the most recent attempt matters for the cooldown window.
func Evaluate(history []Attempt, now time.Time) Eligibility {
	var latest *Attempt
	for i := range history {
		if history[i].Passed {
			return Eligibility{State: StatePassed}
		}
		if latest == nil || history[i].CompletedAt.After(latest.CompletedAt) {
			latest = &history[i]
		}
	}
	if latest == nil {
		return Eligibility{State: StateEligible}
	}

	openAt := latest.CompletedAt.Add(Cooldown)
	if !now.Before(openAt) {
		return Eligibility{State: StateEligible}
	}
	return Eligibility{
		State:            StateCooldown,
		RemainingMinutes: remainingMinutes(openAt, now),
	}
}

// remainingMinutes rounds the wait up to whole minutes so the UI
// never shows "0 minutes left" while still blocked.
func remainingMinutes(openAt, now time.Time) int {
	rem := openAt.Sub(now)
	mins := int(rem / time.Minute)
	if rem%time.Minute > 0 {
		mins++
	}
	if mins < 1 {
		mins = 1
	}
	return mins
}

// Passed reports whether pct meets the fixed pass threshold.
func Passed(pct int) bool {
	return pct >= PassThreshold
}
