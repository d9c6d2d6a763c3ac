package testout

import (
	"testing"
	"time"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func failed(at time.Time) Attempt {
	return Attempt{UserID: "u1", CardSlug: "databases", CompletedAt: at, Percentage: 40}
}

func TestEvaluate_NoHistory(t *testing.T) {
	e := Evaluate(nil, base)
	if e.State != StateEligible {
		t.Errorf("state = %s, want eligible", e.State)
	}
}

func TestEvaluate_CooldownWindow(t *testing.T) {
	history := []Attempt{failed(base)}

	// One second before the hour is up: still blocked.
	e := Evaluate(history, base.Add(59*time.Minute+59*time.Second))
	if e.State != StateCooldown {
		t.Fatalf("state at T+59m59s = %s, want cooldown", e.State)
	}
	if e.RemainingMinutes != 1 {
		t.Errorf("remaining = %d, want 1 (rounded up)", e.RemainingMinutes)
	}

	// Exactly one hour: permitted.
	e = Evaluate(history, base.Add(time.Hour))
	if e.State != StateEligible {
		t.Errorf("state at T+1h = %s, want eligible", e.State)
	}
}

func TestEvaluate_RemainingMinutesCeiling(t *testing.T) {
	history := []Attempt{failed(base)}

	e := Evaluate(history, base.Add(30*time.Second))
	if e.RemainingMinutes != 60 {
		t.Errorf("remaining just after failure = %d, want 60", e.RemainingMinutes)
	}
	e = Evaluate(history, base.Add(30*time.Minute))
	if e.RemainingMinutes != 30 {
		t.Errorf("remaining at T+30m = %d, want 30", e.RemainingMinutes)
	}
}

func TestEvaluate_PassMemoryIsPermanent(t *testing.T) {
	pass := Attempt{UserID: "u1", CardSlug: "databases", CompletedAt: base, Percentage: 85, Passed: true}
	// A later failed attempt (shouldn't happen, but history is
	// append-only and must not desync the decision).
	history := []Attempt{pass, failed(base.Add(2 * time.Hour))}

	e := Evaluate(history, base.Add(3*time.Hour))
	if e.State != StatePassed {
		t.Errorf("state = %s, want passed regardless of later records", e.State)
	}
	// Years later, still no retake offered.
	e = Evaluate(history, base.AddDate(1, 0, 0))
	if e.State != StatePassed {
		t.Errorf("state after a year = %s, want passed", e.State)
	}
}

func TestEvaluate_OnlyMostRecentFailureCounts(t *testing.T) {
	history := []Attempt{
		failed(base.Add(-3 * time.Hour)),
		failed(base), // most recent
	}
	e := Evaluate(history, base.Add(10*time.Minute))
	if e.State != StateCooldown {
		t.Fatalf("state = %s, want cooldown from the latest attempt", e.State)
	}
	if e.RemainingMinutes != 50 {
		t.Errorf("remaining = %d, want 50", e.RemainingMinutes)
	}

	// Order in the slice must not matter.
	reversed := []Attempt{history[1], history[0]}
	if got := Evaluate(reversed, base.Add(10*time.Minute)); got != e {
		t.Errorf("order-dependent result: %+v vs %+v", got, e)
	}
}

func TestPassed_Threshold(t *testing.T) {
	if !Passed(80) {
		t.Error("80 must pass (>= threshold)")
	}
	if !Passed(85) {
		t.Error("85 must pass")
	}
	if Passed(79) {
		t.Error("79 must not pass")
	}
}
