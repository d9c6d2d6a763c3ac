package roadmap

import (
	roadmaps "github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/testout"
)

// loadedMsg carries a fresh progression overview and per-card
// test-out eligibility.
type loadedMsg struct {
	Overview *roadmaps.Overview
	Elig     map[string]testout.Eligibility
	Err      error
}

// refreshTickMsg fires once a minute so cooldown countdowns stay
// honest without a manual refresh. Gen guards against stacked tick
// loops after the screen regains focus.
type refreshTickMsg struct {
	Gen int
}

// actionDoneMsg is sent after a mark-node or choose-track call.
type actionDoneMsg struct {
	Err error
}
