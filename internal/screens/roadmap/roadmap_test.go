package roadmap

import (
	"context"
	"testing"

	roadmaps "github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/router"
	quizscreen "github.com/adesai/stride/internal/screens/quiz"
	"github.com/adesai/stride/internal/testout"
)

type fakeBackend struct {
	overview *roadmaps.Overview
	elig     map[string]testout.Eligibility

	chosenHub, chosenTrack string
	markedRoadmap, marked  string
}

func (f *fakeBackend) Progress(ctx context.Context) (*roadmaps.Overview, error) {
	return f.overview, nil
}

func (f *fakeBackend) Eligibility(ctx context.Context, cardSlug string) (testout.Eligibility, error) {
	return f.elig[cardSlug], nil
}

func (f *fakeBackend) MarkNode(ctx context.Context, roadmapID, nodeID string) error {
	f.markedRoadmap, f.marked = roadmapID, nodeID
	return nil
}

func (f *fakeBackend) ChooseTrack(ctx context.Context, hubSlug, trackSlug string) error {
	f.chosenHub, f.chosenTrack = hubSlug, trackSlug
	return nil
}

func testCurriculum() *roadmaps.Curriculum {
	return &roadmaps.Curriculum{
		ID:   "test",
		Name: "Test Curriculum",
		Years: []roadmaps.Year{
			{
				Number: 1,
				Entries: []roadmaps.Entry{
					{Slug: "algorithms", Name: "Algorithms", Subtopics: []string{"sorting", "graphs"}},
					{
						Slug: "stack-hub", Name: "Pick a Stack", TechStackHub: true,
						Tracks: []roadmaps.Entry{
							{Slug: "backend", Name: "Backend", Subtopics: []string{"http"}},
							{Slug: "frontend", Name: "Frontend", Subtopics: []string{"dom"}},
						},
					},
				},
			},
			{
				Number:           2,
				RequiredProgress: 80,
				Entries: []roadmaps.Entry{
					{Slug: "databases", Name: "Databases", Subtopics: []string{"sql"}},
				},
			},
		},
	}
}

func testOverview(yearTwo roadmaps.Status) *roadmaps.Overview {
	return &roadmaps.Overview{
		Years: []roadmaps.YearProgress{
			{YearNumber: 1, CompletionPercent: 50, Status: roadmaps.StatusAvailable},
			{YearNumber: 2, CompletionPercent: 0, Status: yearTwo},
		},
		Completion:   map[string]roadmaps.Completion{"algorithms": {Done: 1, Total: 2}},
		ChosenTracks: map[string]string{},
		DoneNodes:    map[string][]string{"algorithms": {"sorting"}},
	}
}

func loadedScreen(t *testing.T, backend *fakeBackend) *RoadmapScreen {
	t.Helper()
	s := New(testCurriculum(), backend, quizscreen.Deps{}, quizscreen.Deps{})
	msg := s.loadCmd()()
	loaded, ok := msg.(loadedMsg)
	if !ok {
		t.Fatalf("loadCmd returned %T", msg)
	}
	if loaded.Err != nil {
		t.Fatalf("load: %v", loaded.Err)
	}
	s.Update(loaded)
	return s
}

func TestRoadmapCardsFlattenHub(t *testing.T) {
	backend := &fakeBackend{overview: testOverview(roadmaps.StatusLocked)}
	s := loadedScreen(t, backend)

	// algorithms, unchosen hub, year-2 databases.
	if len(s.cards) != 3 {
		t.Fatalf("got %d cards, want 3", len(s.cards))
	}
	if s.cards[1].entry.Slug != "stack-hub" {
		t.Fatalf("card 1 is %s, want the unchosen hub", s.cards[1].entry.Slug)
	}

	backend.overview.ChosenTracks["stack-hub"] = "backend"
	s.rebuildCards()
	if s.cards[1].entry.Slug != "backend" || s.cards[1].hub == nil {
		t.Fatalf("chosen hub not replaced by its track: %+v", s.cards[1])
	}
}

func TestRoadmapLockedYearBlocksAttempt(t *testing.T) {
	backend := &fakeBackend{overview: testOverview(roadmaps.StatusLocked)}
	s := loadedScreen(t, backend)

	s.cursor = 2 // databases, year 2
	_, cmd := s.onEnter()
	if cmd != nil {
		t.Fatal("locked year must not start a quiz")
	}
	if s.notice == "" {
		t.Fatal("expected a lock notice")
	}

	_, cmd = s.onTestOut()
	if cmd != nil {
		t.Fatal("locked year must not start a test-out")
	}
}

func TestRoadmapEnterStartsQuiz(t *testing.T) {
	backend := &fakeBackend{overview: testOverview(roadmaps.StatusAvailable)}
	s := loadedScreen(t, backend)

	s.cursor = 0
	_, cmd := s.onEnter()
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*quizscreen.QuizScreen); !ok {
		t.Fatalf("expected quiz screen, got %T", push.Screen)
	}
}

func TestRoadmapTestOutRespectsLimiter(t *testing.T) {
	backend := &fakeBackend{
		overview: testOverview(roadmaps.StatusAvailable),
		elig: map[string]testout.Eligibility{
			"algorithms": {State: testout.StateCooldown, RemainingMinutes: 12},
		},
	}
	s := loadedScreen(t, backend)

	s.cursor = 0
	_, cmd := s.onTestOut()
	if cmd != nil {
		t.Fatal("cooldown must block the exam")
	}
	if s.notice == "" {
		t.Fatal("expected a cooldown notice")
	}

	backend.elig["algorithms"] = testout.Eligibility{State: testout.StatePassed}
	s = loadedScreen(t, backend)
	_, cmd = s.onTestOut()
	if cmd != nil {
		t.Fatal("a passed card must not offer a retake")
	}
}

func TestRoadmapDetailChoosesTrackAndMarksNodes(t *testing.T) {
	backend := &fakeBackend{overview: testOverview(roadmaps.StatusAvailable)}
	s := loadedScreen(t, backend)

	// Hub detail: picking an item chooses a track.
	s.cursor = 1
	s.detail = true
	s.subCursor = 1
	c, _ := s.selected()
	items := s.detailItems(c)
	if len(items) != 2 || items[1] != "frontend" {
		t.Fatalf("hub detail items = %v", items)
	}
	_ = backend.ChooseTrack(context.Background(), c.entry.Slug, items[1])
	if backend.chosenHub != "stack-hub" || backend.chosenTrack != "frontend" {
		t.Fatalf("track choice not recorded: %s/%s", backend.chosenHub, backend.chosenTrack)
	}

	// Roadmap detail: items are subtopics.
	s.cursor = 0
	c, _ = s.selected()
	items = s.detailItems(c)
	if len(items) != 2 || items[0] != "sorting" {
		t.Fatalf("subtopic items = %v", items)
	}
}

func TestRoadmapRefreshTickIgnoresStaleGeneration(t *testing.T) {
	backend := &fakeBackend{overview: testOverview(roadmaps.StatusAvailable)}
	s := loadedScreen(t, backend)
	s.tickGen = 3

	if _, cmd := s.Update(refreshTickMsg{Gen: 2}); cmd != nil {
		t.Fatal("stale tick must not reschedule")
	}
	if _, cmd := s.Update(refreshTickMsg{Gen: 3}); cmd == nil {
		t.Fatal("current tick must reload and reschedule")
	}
}
