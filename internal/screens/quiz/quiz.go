// Package quiz is the timed attempt screen: countdown, answer
// selection, navigation, auto-submit on expiry and a retry banner when
// submission fails.
package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/adesai/stride/internal/clock"
	session "github.com/adesai/stride/internal/quiz"
	"github.com/adesai/stride/internal/router"
	"github.com/adesai/stride/internal/scoring"
	"github.com/adesai/stride/internal/screen"
	"github.com/adesai/stride/internal/screens/summary"
	"github.com/adesai/stride/internal/ui/components"
	"github.com/adesai/stride/internal/ui/layout"
)

// Deps is everything one attempt needs. The same shape serves local
// and remote modes; only the source and submitter differ.
type Deps struct {
	Clock     clock.Clock
	Source    session.QuestionSource
	Submitter session.Submitter
	Snapshots session.SnapshotStore
	UserID    string
}

// QuizScreen drives one attempt through the session controller.
type QuizScreen struct {
	deps      Deps
	ctrl      *session.Controller
	roadmapID string
	name      string
	testOut   bool

	options       components.OptionList
	loadErr       error
	showBanner    bool
	quitConfirm   bool
	submitConfirm bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscHandler = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a screen for one attempt on a roadmap. name is the
// display name; testOut switches labels to the exam variant.
func New(deps Deps, roadmapID, name string, testOut bool) *QuizScreen {
	return &QuizScreen{
		deps:      deps,
		ctrl:      session.NewController(deps.Clock, deps.Source, deps.Submitter, deps.Snapshots),
		roadmapID: roadmapID,
		name:      name,
		testOut:   testOut,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.startCmd()
}

func (s *QuizScreen) Title() string {
	if s.testOut {
		return "Test-Out: " + s.name
	}
	return "Quiz: " + s.name
}

// HeaderStatus puts the countdown in the header's right slot.
func (s *QuizScreen) HeaderStatus() string {
	sess := s.ctrl.Session()
	if sess == nil || sess.Status == session.StatusLoading {
		return ""
	}
	return "⏱ " + formatClock(sess.RemainingSeconds)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm || s.submitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Stay"},
		}
	}
	if s.showBanner {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "D", Description: "Dismiss"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "S", Description: "Submit"},
		{Key: "Esc", Description: "Leave"},
	}
}

// HandleEsc asks for confirmation while the attempt is live; the
// snapshot stays behind either way, so leaving is resumable.
func (s *QuizScreen) HandleEsc() tea.Cmd {
	if s.showBanner {
		s.showBanner = false
		return nil
	}
	if s.submitConfirm {
		s.submitConfirm = false
		return nil
	}
	sess := s.ctrl.Session()
	if sess != nil && sess.Active() && !s.quitConfirm {
		s.quitConfirm = true
		return nil
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.onStarted(msg)
	case timerTickMsg:
		return s.onTick()
	case submitDoneMsg:
		return s.onSubmitDone(msg)
	case tea.KeyMsg:
		return s.onKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) onStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.loadErr = msg.Err
		return s, nil
	}
	if s.testOut {
		msg.Sess.TestOut = true
	}
	s.syncOptions()
	return s, tickCmd()
}

func (s *QuizScreen) onTick() (screen.Screen, tea.Cmd) {
	sess := s.ctrl.Session()
	if sess == nil || sess.Status == session.StatusSubmitted {
		return s, nil
	}

	if s.ctrl.Tick(context.Background()) {
		// This tick expired the attempt; submission is no longer
		// optional.
		res, err := s.ctrl.BeginSubmit()
		if err != nil {
			return s, tickCmd()
		}
		return s, tea.Batch(tickCmd(), s.submitCmd(res))
	}
	return s, tickCmd()
}

func (s *QuizScreen) onSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	s.ctrl.FinishSubmit(msg.Err)
	if msg.Err != nil {
		s.showBanner = true
		return s, nil
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(msg.Ack.Result, s.testOut)}
	}
}

func (s *QuizScreen) onKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.quitConfirm {
		switch msg.String() {
		case "y", "Y", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.submitConfirm {
		switch msg.String() {
		case "y", "Y", "enter":
			s.submitConfirm = false
			res, err := s.ctrl.BeginSubmit()
			if err != nil {
				return s, nil
			}
			return s, s.submitCmd(res)
		case "n", "N", "esc":
			s.submitConfirm = false
		}
		return s, nil
	}

	if s.showBanner {
		switch msg.String() {
		case "r", "R":
			s.showBanner = false
			res, err := s.ctrl.BeginSubmit()
			if err != nil {
				return s, nil
			}
			return s, s.submitCmd(res)
		case "d", "D", "esc":
			s.showBanner = false
		}
		return s, nil
	}

	if s.loadErr != nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	sess := s.ctrl.Session()
	if sess == nil || !sess.Active() {
		return s, nil
	}

	ctx := context.Background()
	switch msg.String() {
	case "up", "k":
		s.options = s.options.Move(-1)
	case "down", "j":
		s.options = s.options.Move(1)
	case "1", "2", "3", "4", "5", "6":
		idx := int(msg.String()[0] - '1')
		if q := sess.CurrentQuestion(); q != nil && idx < len(q.Options) {
			_ = s.ctrl.SelectAnswer(ctx, q.Options[idx])
			s.syncOptions()
		}
	case "enter", " ", "space":
		if opt := s.options.Current(); opt != "" {
			_ = s.ctrl.SelectAnswer(ctx, opt)
			s.syncOptions()
		}
	case "left", "h":
		_ = s.ctrl.Navigate(ctx, -1)
		s.syncOptions()
	case "right", "l":
		_ = s.ctrl.Navigate(ctx, 1)
		s.syncOptions()
	case "s", "S":
		// Partial submission is allowed, but an empty one is almost
		// always a slip.
		if sess.AnsweredCount() == 0 {
			s.submitConfirm = true
			return s, nil
		}
		res, err := s.ctrl.BeginSubmit()
		if err != nil {
			return s, nil
		}
		return s, s.submitCmd(res)
	}
	return s, nil
}

// syncOptions rebuilds the option list for the current question,
// placing the cursor on the recorded answer when there is one.
func (s *QuizScreen) syncOptions() {
	sess := s.ctrl.Session()
	if sess == nil {
		return
	}
	q := sess.CurrentQuestion()
	if q == nil {
		s.options = components.OptionList{}
		return
	}
	s.options = components.NewOptionList(q.Options, sess.Answers[q.ID])
}

func (s *QuizScreen) startCmd() tea.Cmd {
	return func() tea.Msg {
		sess, err := s.ctrl.Start(context.Background(), s.deps.UserID, s.roadmapID)
		return startedMsg{Sess: sess, Err: err}
	}
}

func (s *QuizScreen) submitCmd(res scoring.Result) tea.Cmd {
	return func() tea.Msg {
		ack, err := s.deps.Submitter.Submit(context.Background(), res)
		return submitDoneMsg{Ack: ack, Err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
