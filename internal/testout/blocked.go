package testout

import "fmt"

// BlockedError reports why an exam could not start: the card is
// cooling down or was already passed. Both are expected outcomes of
// the limiter, carried as a typed error so callers can branch.
type BlockedError struct {
	State            State
	RemainingMinutes int
}

func (e *BlockedError) Error() string {
	if e.State == StateCooldown {
		return fmt.Sprintf("test-out on cooldown, retry in %d min", e.RemainingMinutes)
	}
	return "test-out already passed"
}
