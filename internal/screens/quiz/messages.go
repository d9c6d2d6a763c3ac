package quiz

import (
	"time"

	session "github.com/adesai/stride/internal/quiz"
)

// startedMsg is sent when the attempt has been fetched or resumed.
type startedMsg struct {
	Sess *session.Session
	Err  error
}

// timerTickMsg is sent every second to drive the countdown.
type timerTickMsg time.Time

// submitDoneMsg is sent when the submission round-trip finishes.
type submitDoneMsg struct {
	Ack *session.Ack
	Err error
}
