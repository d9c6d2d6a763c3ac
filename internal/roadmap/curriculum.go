// Package roadmap models multi-year curricula and computes which
// years are locked, available or completed.
package roadmap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one roadmap slot inside a year. A tech-stack hub entry is
// a branch point: the learner picks one specialization track from
// Tracks and only the chosen track counts toward later gating.
type Entry struct {
	Slug         string `yaml:"slug"`
	Name         string `yaml:"name"`
	TechStackHub bool   `yaml:"techStackHub,omitempty"`

	// Tracks are the selectable specialization roadmaps of a hub.
	Tracks []Entry `yaml:"tracks,omitempty"`

	// Subtopics are the completable nodes of this roadmap; their
	// completion counts drive year percentages. Hubs have none.
	Subtopics []string `yaml:"subtopics,omitempty"`
}

// Year is one gated phase of a curriculum.
type Year struct {
	Number int `yaml:"number"`

	// RequiredProgress is the completion percent the previous year
	// must reach before this year unlocks.
	RequiredProgress int `yaml:"requiredProgress"`

	Entries []Entry `yaml:"roadmaps"`
}

// Curriculum is an ordered list of years under one master roadmap.
type Curriculum struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Years []Year `yaml:"years"`
}

// Load reads a curriculum definition from a YAML file.
func Load(path string) (*Curriculum, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curriculum %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates curriculum YAML.
func Parse(raw []byte) (*Curriculum, error) {
	var c Curriculum
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode curriculum: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Curriculum) validate() error {
	if c.ID == "" {
		return fmt.Errorf("curriculum missing id")
	}
	if len(c.Years) == 0 {
		return fmt.Errorf("curriculum %s has no years", c.ID)
	}
	seen := make(map[string]bool)
	for i, y := range c.Years {
		if y.Number != i+1 {
			return fmt.Errorf("curriculum %s: year %d out of order (numbered %d)", c.ID, i+1, y.Number)
		}
		if y.RequiredProgress < 0 || y.RequiredProgress > 100 {
			return fmt.Errorf("curriculum %s: year %d requiredProgress %d out of range", c.ID, y.Number, y.RequiredProgress)
		}
		for _, e := range y.Entries {
			if e.Slug == "" {
				return fmt.Errorf("curriculum %s: year %d has an entry without a slug", c.ID, y.Number)
			}
			if seen[e.Slug] {
				return fmt.Errorf("curriculum %s: duplicate roadmap %s", c.ID, e.Slug)
			}
			seen[e.Slug] = true
			if e.TechStackHub {
				if len(e.Tracks) == 0 {
					return fmt.Errorf("curriculum %s: hub %s declares no tracks", c.ID, e.Slug)
				}
				if len(e.Subtopics) > 0 {
					return fmt.Errorf("curriculum %s: hub %s must not list subtopics", c.ID, e.Slug)
				}
				for _, tr := range e.Tracks {
					if tr.Slug == "" {
						return fmt.Errorf("curriculum %s: hub %s has a track without a slug", c.ID, e.Slug)
					}
					if seen[tr.Slug] {
						return fmt.Errorf("curriculum %s: duplicate roadmap %s", c.ID, tr.Slug)
					}
					seen[tr.Slug] = true
				}
			}
		}
	}
	return nil
}

// Year returns the year with the given number, or nil.
func (c *Curriculum) Year(number int) *Year {
	for i := range c.Years {
		if c.Years[i].Number == number {
			return &c.Years[i]
		}
	}
	return nil
}

// FindEntry locates an entry by slug across all years, descending
// into hub tracks.
func (c *Curriculum) FindEntry(slug string) (*Entry, *Year) {
	for yi := range c.Years {
		for ei := range c.Years[yi].Entries {
			e := &c.Years[yi].Entries[ei]
			if e.Slug == slug {
				return e, &c.Years[yi]
			}
			for ti := range e.Tracks {
				if e.Tracks[ti].Slug == slug {
					return &e.Tracks[ti], &c.Years[yi]
				}
			}
		}
	}
	return nil, nil
}

// AllRoadmaps returns every completable roadmap (plain entries and
// hub tracks, hubs themselves excluded).
func (c *Curriculum) AllRoadmaps() []Entry {
	var out []Entry
	for _, y := range c.Years {
		for _, e := range y.Entries {
			if e.TechStackHub {
				out = append(out, e.Tracks...)
				continue
			}
			out = append(out, e)
		}
	}
	return out
}
