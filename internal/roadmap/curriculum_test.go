package roadmap

import (
	"strings"
	"testing"
)

const validYAML = `
id: software-engineering
name: Software Engineering
years:
  - number: 1
    requiredProgress: 0
    roadmaps:
      - slug: fundamentals
        name: Fundamentals
  - number: 2
    requiredProgress: 70
    roadmaps:
      - slug: databases
        name: Databases
      - slug: tech-stack-hub
        name: Choose Your Stack
        techStackHub: true
        tracks:
          - slug: frontend
            name: Frontend Track
            subtopics: [html-css, javascript]
          - slug: backend
            name: Backend Track
            subtopics: [http, apis]
`

func TestParse_Valid(t *testing.T) {
	c, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "software-engineering" || len(c.Years) != 2 {
		t.Fatalf("curriculum = %s/%d years", c.ID, len(c.Years))
	}
	hub, year := c.FindEntry("tech-stack-hub")
	if hub == nil || !hub.TechStackHub || year.Number != 2 {
		t.Errorf("FindEntry(tech-stack-hub) = %+v in year %v", hub, year)
	}
	if len(hub.Tracks) != 2 {
		t.Errorf("hub tracks = %v, want 2", hub.Tracks)
	}
	track, _ := c.FindEntry("frontend")
	if track == nil || len(track.Subtopics) != 2 {
		t.Errorf("FindEntry(frontend) = %+v, want track with subtopics", track)
	}
	if got := len(c.AllRoadmaps()); got != 4 {
		t.Errorf("AllRoadmaps = %d, want 4 (hub excluded, tracks included)", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{"missing id", func(s string) string { return strings.Replace(s, "id: software-engineering", "", 1) }, "missing id"},
		{"out of order years", func(s string) string { return strings.Replace(s, "number: 2", "number: 5", 1) }, "out of order"},
		{"gate out of range", func(s string) string { return strings.Replace(s, "requiredProgress: 70", "requiredProgress: 120", 1) }, "out of range"},
		{"duplicate slug", func(s string) string { return strings.Replace(s, "slug: databases", "slug: fundamentals", 1) }, "duplicate"},
		{"duplicate track slug", func(s string) string { return strings.Replace(s, "slug: backend", "slug: frontend", 1) }, "duplicate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.mutate(validYAML)))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestDefaultCurriculum_Valid(t *testing.T) {
	c := DefaultCurriculum()
	if err := c.validate(); err != nil {
		t.Fatalf("seed curriculum invalid: %v", err)
	}
	if c.Year(2) == nil {
		t.Fatal("expected year 2")
	}
	hub, _ := c.FindEntry("tech-stack-hub")
	if hub == nil || !hub.TechStackHub {
		t.Error("seed curriculum should include a tech-stack hub")
	}
}
