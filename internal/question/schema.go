package question

// PoolSchema is the JSON schema every pool file must satisfy before
// any question from it is served. A pool entry may carry either the
// singular correctAnswer or the set-shaped correctAnswers; requiring
// neither here keeps old authoring output loadable (Answer() resolves
// the two shapes at read time).
var PoolSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"roadmap": map[string]any{
			"type":        "string",
			"description": "Roadmap slug this pool belongs to",
		},
		"settings": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"timeLimitMinutes": map[string]any{"type": "integer", "minimum": 1},
				"passingScore":     map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"questionCount":    map[string]any{"type": "integer", "minimum": 1},
			},
			"additionalProperties": false,
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string"},
					"text": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 2,
					},
					"correctAnswer": map[string]any{"type": "string"},
					"correctAnswers": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"topic":      map[string]any{"type": "string"},
					"difficulty": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				},
				"required":             []any{"text", "options"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"roadmap", "questions"},
	"additionalProperties": false,
}
