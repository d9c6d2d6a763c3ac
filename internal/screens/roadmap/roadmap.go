// Package roadmap is the progression screen: years with their lock
// state and completion, cards with subtopic marking, track choice at
// hubs, and test-out entry with live cooldown display.
package roadmap

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	roadmaps "github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/router"
	"github.com/adesai/stride/internal/screen"
	quizscreen "github.com/adesai/stride/internal/screens/quiz"
	"github.com/adesai/stride/internal/testout"
	"github.com/adesai/stride/internal/ui/layout"
)

// refreshInterval keeps the cooldown display within a minute of the
// truth; eligibility is always re-checked server-side on start anyway.
const refreshInterval = time.Minute

// Backend is the progression surface the screen talks to. Satisfied
// by service.Progression locally and by the HTTP client remotely.
type Backend interface {
	Progress(ctx context.Context) (*roadmaps.Overview, error)
	Eligibility(ctx context.Context, cardSlug string) (testout.Eligibility, error)
	MarkNode(ctx context.Context, roadmapID, nodeID string) error
	ChooseTrack(ctx context.Context, hubSlug, trackSlug string) error
}

// card is one selectable row: either a completable roadmap or an
// unchosen hub waiting for a track choice.
type card struct {
	entry   *roadmaps.Entry
	hub     *roadmaps.Entry // non-nil when entry is a chosen track
	yearIdx int
}

// RoadmapScreen renders the curriculum and launches attempts.
type RoadmapScreen struct {
	cur      *roadmaps.Curriculum
	backend  Backend
	practice quizscreen.Deps
	exam     quizscreen.Deps

	overview *roadmaps.Overview
	elig     map[string]testout.Eligibility
	loadErr  error
	loaded   bool

	cards  []card
	cursor int

	detail    bool
	subCursor int
	notice    string

	// tickGen invalidates refresh loops left over from before the
	// screen lost focus.
	tickGen int
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)
var _ screen.EscHandler = (*RoadmapScreen)(nil)
var _ screen.Refresher = (*RoadmapScreen)(nil)

// New creates the progression screen. practice and exam carry the
// attempt wiring for regular quizzes and test-outs respectively.
func New(cur *roadmaps.Curriculum, backend Backend, practice, exam quizscreen.Deps) *RoadmapScreen {
	return &RoadmapScreen{
		cur:      cur,
		backend:  backend,
		practice: practice,
		exam:     exam,
		elig:     map[string]testout.Eligibility{},
	}
}

func (s *RoadmapScreen) Init() tea.Cmd {
	s.tickGen++
	return tea.Batch(s.loadCmd(), refreshTick(s.tickGen))
}

// Refresh reloads the overview when the screen regains focus, so a
// just-finished attempt or test-out shows up immediately.
func (s *RoadmapScreen) Refresh() tea.Cmd {
	s.tickGen++
	return tea.Batch(s.loadCmd(), refreshTick(s.tickGen))
}

func (s *RoadmapScreen) Title() string {
	return s.cur.Name
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	if s.detail {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Mark / Choose"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Card"},
		{Key: "Enter", Description: "Quiz"},
		{Key: "T", Description: "Test out"},
		{Key: "→", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

// HandleEsc leaves detail mode first, then the screen.
func (s *RoadmapScreen) HandleEsc() tea.Cmd {
	if s.detail {
		s.detail = false
		s.subCursor = 0
		return nil
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.loadErr = msg.Err
			return s, nil
		}
		s.loadErr = nil
		s.loaded = true
		s.overview = msg.Overview
		s.elig = msg.Elig
		s.rebuildCards()
		return s, nil

	case refreshTickMsg:
		if msg.Gen != s.tickGen {
			return s, nil
		}
		return s, tea.Batch(s.loadCmd(), refreshTick(s.tickGen))

	case actionDoneMsg:
		if msg.Err != nil {
			s.notice = msg.Err.Error()
			return s, nil
		}
		return s, s.loadCmd()

	case tea.KeyMsg:
		return s.onKey(msg)
	}
	return s, nil
}

func (s *RoadmapScreen) onKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.notice = ""
	if !s.loaded {
		return s, nil
	}
	if s.detail {
		return s.onDetailKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.cards)-1 {
			s.cursor++
		}
	case "r", "R":
		return s, s.loadCmd()
	case "right", "l":
		if len(s.cards) > 0 {
			s.detail = true
			s.subCursor = 0
		}
	case "enter":
		return s.onEnter()
	case "t", "T":
		return s.onTestOut()
	}
	return s, nil
}

// onEnter starts a practice quiz, or opens track choice on an
// unchosen hub.
func (s *RoadmapScreen) onEnter() (screen.Screen, tea.Cmd) {
	c, ok := s.selected()
	if !ok {
		return s, nil
	}
	if s.yearLocked(c) {
		s.notice = fmt.Sprintf("Year %d is still locked", s.cur.Years[c.yearIdx].Number)
		return s, nil
	}
	if c.entry.TechStackHub {
		s.detail = true
		s.subCursor = 0
		return s, nil
	}

	sc := quizscreen.New(s.practice, c.entry.Slug, c.entry.Name, false)
	return s, func() tea.Msg { return router.PushScreenMsg{Screen: sc} }
}

// onTestOut starts an exam when the limiter allows it.
func (s *RoadmapScreen) onTestOut() (screen.Screen, tea.Cmd) {
	c, ok := s.selected()
	if !ok || c.entry.TechStackHub {
		return s, nil
	}
	if s.yearLocked(c) {
		s.notice = fmt.Sprintf("Year %d is still locked", s.cur.Years[c.yearIdx].Number)
		return s, nil
	}

	switch e := s.elig[c.entry.Slug]; e.State {
	case testout.StatePassed:
		s.notice = "Already passed; the card stays complete"
		return s, nil
	case testout.StateCooldown:
		s.notice = fmt.Sprintf("Cooldown: retry in %d min", e.RemainingMinutes)
		return s, nil
	}

	sc := quizscreen.New(s.exam, c.entry.Slug, c.entry.Name, true)
	return s, func() tea.Msg { return router.PushScreenMsg{Screen: sc} }
}

func (s *RoadmapScreen) onDetailKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	c, ok := s.selected()
	if !ok {
		s.detail = false
		return s, nil
	}

	items := s.detailItems(c)
	switch msg.String() {
	case "up", "k":
		if s.subCursor > 0 {
			s.subCursor--
		}
	case "down", "j":
		if s.subCursor < len(items)-1 {
			s.subCursor++
		}
	case "left", "h":
		s.detail = false
		s.subCursor = 0
	case "enter", " ", "space":
		if s.subCursor >= len(items) {
			return s, nil
		}
		picked := items[s.subCursor]
		if c.entry.TechStackHub {
			hub := c.entry.Slug
			return s, func() tea.Msg {
				return actionDoneMsg{Err: s.backend.ChooseTrack(context.Background(), hub, picked)}
			}
		}
		slug := c.entry.Slug
		return s, func() tea.Msg {
			return actionDoneMsg{Err: s.backend.MarkNode(context.Background(), slug, picked)}
		}
	}
	return s, nil
}

// detailItems lists what the detail pane operates on: track slugs for
// an unchosen hub, subtopic names otherwise.
func (s *RoadmapScreen) detailItems(c card) []string {
	if c.entry.TechStackHub {
		out := make([]string, 0, len(c.entry.Tracks))
		for _, tr := range c.entry.Tracks {
			out = append(out, tr.Slug)
		}
		return out
	}
	return c.entry.Subtopics
}

func (s *RoadmapScreen) selected() (card, bool) {
	if s.cursor < 0 || s.cursor >= len(s.cards) {
		return card{}, false
	}
	return s.cards[s.cursor], true
}

func (s *RoadmapScreen) yearLocked(c card) bool {
	if s.overview == nil || c.yearIdx >= len(s.overview.Years) {
		return false
	}
	return s.overview.Years[c.yearIdx].Status == roadmaps.StatusLocked
}

// rebuildCards flattens the curriculum into selectable rows. A hub
// with a chosen track is shown as that track; an unchosen hub is a
// row of its own.
func (s *RoadmapScreen) rebuildCards() {
	chosen := map[string]string{}
	if s.overview != nil {
		chosen = s.overview.ChosenTracks
	}

	s.cards = s.cards[:0]
	for yi := range s.cur.Years {
		y := &s.cur.Years[yi]
		for ei := range y.Entries {
			e := &y.Entries[ei]
			if !e.TechStackHub {
				s.cards = append(s.cards, card{entry: e, yearIdx: yi})
				continue
			}
			track := chosen[e.Slug]
			if track == "" {
				s.cards = append(s.cards, card{entry: e, yearIdx: yi})
				continue
			}
			for ti := range e.Tracks {
				if e.Tracks[ti].Slug == track {
					s.cards = append(s.cards, card{entry: &e.Tracks[ti], hub: e, yearIdx: yi})
					break
				}
			}
		}
	}
	if s.cursor >= len(s.cards) {
		s.cursor = len(s.cards) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *RoadmapScreen) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		overview, err := s.backend.Progress(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}
		elig := make(map[string]testout.Eligibility)
		for _, e := range s.cur.AllRoadmaps() {
			ev, err := s.backend.Eligibility(ctx, e.Slug)
			if err != nil {
				return loadedMsg{Err: err}
			}
			elig[e.Slug] = ev
		}
		return loadedMsg{Overview: overview, Elig: elig}
	}
}

func refreshTick(gen int) tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{Gen: gen}
	})
}
