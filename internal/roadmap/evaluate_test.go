package roadmap

import "testing"

func twoYearCurriculum(gate int) []Year {
	return []Year{
		{Number: 1, Entries: []Entry{{Slug: "a"}, {Slug: "b"}}},
		{Number: 2, RequiredProgress: gate, Entries: []Entry{{Slug: "c"}}},
	}
}

func TestEvaluateYears_FirstYearAlwaysAvailable(t *testing.T) {
	yp := EvaluateYears(twoYearCurriculum(70), nil, nil)
	if yp[0].Status != StatusAvailable {
		t.Errorf("year 1 status = %s, want available with no progress", yp[0].Status)
	}
	if yp[0].CompletionPercent != 0 {
		t.Errorf("year 1 percent = %d, want 0 (empty denominator)", yp[0].CompletionPercent)
	}
	if yp[1].Status != StatusLocked {
		t.Errorf("year 2 status = %s, want locked", yp[1].Status)
	}
}

func TestEvaluateYears_GateBoundaryUnlocks(t *testing.T) {
	years := twoYearCurriculum(70)

	// Exactly at the gate: 7 of 10 subtopics done = 70%.
	completion := map[string]Completion{
		"a": {Done: 4, Total: 5},
		"b": {Done: 3, Total: 5},
	}
	yp := EvaluateYears(years, completion, nil)
	if yp[1].Status != StatusAvailable {
		t.Errorf("year 2 at exact gate = %s, want available (>= not >)", yp[1].Status)
	}

	// One short: 69%.
	completion["b"] = Completion{Done: 2, Total: 5}
	yp = EvaluateYears(years, completion, nil)
	if yp[0].CompletionPercent != 60 {
		t.Errorf("year 1 percent = %d, want 60", yp[0].CompletionPercent)
	}
	if yp[1].Status != StatusLocked {
		t.Errorf("year 2 below gate = %s, want locked", yp[1].Status)
	}
}

func TestEvaluateYears_Completed(t *testing.T) {
	years := twoYearCurriculum(70)
	completion := map[string]Completion{
		"a": {Done: 5, Total: 5},
		"b": {Done: 5, Total: 5},
		"c": {Done: 2, Total: 4},
	}
	yp := EvaluateYears(years, completion, nil)
	if yp[0].Status != StatusCompleted {
		t.Errorf("year 1 at 100%% = %s, want completed", yp[0].Status)
	}
	if yp[1].Status != StatusAvailable || yp[1].CompletionPercent != 50 {
		t.Errorf("year 2 = %+v, want available/50", yp[1])
	}
}

func TestEvaluateYears_HubExcludedUntilChosen(t *testing.T) {
	years := []Year{
		{Number: 1, Entries: []Entry{
			{Slug: "core"},
			{Slug: "hub", TechStackHub: true, Tracks: []Entry{{Slug: "frontend"}, {Slug: "backend"}}},
		}},
	}
	completion := map[string]Completion{
		"core":     {Done: 10, Total: 10},
		"frontend": {Done: 0, Total: 20},
	}

	// No track chosen: hub contributes nothing, year is complete.
	yp := EvaluateYears(years, completion, nil)
	if yp[0].CompletionPercent != 100 {
		t.Errorf("percent = %d, want 100 with hub excluded", yp[0].CompletionPercent)
	}

	// Chosen track now counts toward the math.
	yp = EvaluateYears(years, completion, map[string]string{"hub": "frontend"})
	if yp[0].CompletionPercent != 33 {
		t.Errorf("percent = %d, want 33 with chosen track included", yp[0].CompletionPercent)
	}
}

func TestEvaluateYears_ChainedGates(t *testing.T) {
	years := []Year{
		{Number: 1, Entries: []Entry{{Slug: "a"}}},
		{Number: 2, RequiredProgress: 50, Entries: []Entry{{Slug: "b"}}},
		{Number: 3, RequiredProgress: 50, Entries: []Entry{{Slug: "c"}}},
	}
	completion := map[string]Completion{
		"a": {Done: 1, Total: 2}, // 50%, unlocks year 2
		"b": {Done: 0, Total: 2}, // 0%, year 3 stays locked
	}
	yp := EvaluateYears(years, completion, nil)
	want := []Status{StatusAvailable, StatusAvailable, StatusLocked}
	for i, s := range want {
		if yp[i].Status != s {
			t.Errorf("year %d status = %s, want %s", i+1, yp[i].Status, s)
		}
	}
}
