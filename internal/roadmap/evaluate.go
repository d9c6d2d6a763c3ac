package roadmap

import "math"

// Status is the lock state of a year. Never stored; recomputed from
// completion data on every read.
type Status string

const (
	StatusLocked    Status = "locked"
	StatusAvailable Status = "available"
	StatusCompleted Status = "completed"
)

// Completion is the subtopic completion count for one roadmap.
type Completion struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

// Overview bundles everything a progression view needs: derived year
// states plus the raw per-roadmap completion they were derived from.
type Overview struct {
	Years        []YearProgress        `json:"years"`
	Completion   map[string]Completion `json:"completion"`
	ChosenTracks map[string]string     `json:"chosenTracks"`

	// DoneNodes lists the completed subtopics per roadmap.
	DoneNodes map[string][]string `json:"doneNodes"`
}

// YearProgress is the derived state of one year.
type YearProgress struct {
	YearNumber        int    `json:"yearNumber"`
	CompletionPercent int    `json:"completionPercent"`
	Status            Status `json:"status"`
}

// EvaluateYears derives per-year completion and lock status.
// completion maps roadmap slug to subtopic counts; chosenTracks maps a
// hub slug to the selected specialization slug (absent until chosen).
//
// Year 1 is always at least available. Year i unlocks when the
// previous year's completion percent meets its requiredProgress gate
// (>=, so the boundary unlocks). A year at 100% is completed.
func EvaluateYears(years []Year, completion map[string]Completion, chosenTracks map[string]string) []YearProgress {
	out := make([]YearProgress, 0, len(years))
	prevPercent := 0
	for i, y := range years {
		pct := yearPercent(y, completion, chosenTracks)

		status := StatusLocked
		unlocked := i == 0 || prevPercent >= y.RequiredProgress
		switch {
		case pct >= 100:
			status = StatusCompleted
		case unlocked:
			status = StatusAvailable
		}

		out = append(out, YearProgress{
			YearNumber:        y.Number,
			CompletionPercent: pct,
			Status:            status,
		})
		prevPercent = pct
	}
	return out
}

// yearPercent aggregates subtopic completion across the year's
// roadmaps. Hub entries are excluded from the math; once a track is
// chosen the chosen roadmap's completion counts in its place.
func yearPercent(y Year, completion map[string]Completion, chosenTracks map[string]string) int {
	done, total := 0, 0
	for _, e := range y.Entries {
		slug := e.Slug
		if e.TechStackHub {
			slug = chosenTracks[e.Slug]
			if slug == "" {
				continue
			}
		}
		c := completion[slug]
		done += c.Done
		total += c.Total
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
