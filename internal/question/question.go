// Package question defines the quiz question model and the JSON pool
// files questions are drawn from.
package question

// DefaultTopic is assigned when a pool entry carries no topic, so
// weak-topic aggregation never drops a question.
const DefaultTopic = "General"

// Question is a single multiple-choice quiz question. Immutable once
// served into a session.
type Question struct {
	// ID uniquely identifies the question within its pool.
	ID string `json:"id"`

	// Text is the prompt shown to the learner.
	Text string `json:"text"`

	// Options are the selectable answers, in display order.
	Options []string `json:"options"`

	// CorrectAnswer is the canonical correct option text. Some
	// authoring tools emit CorrectAnswers (plural) instead; Answer()
	// reconciles the two shapes.
	CorrectAnswer string `json:"correctAnswer,omitempty"`

	// CorrectAnswers is the set-shaped variant produced by older
	// authoring tools. Only the first element is authoritative.
	CorrectAnswers []string `json:"correctAnswers,omitempty"`

	// Topic tags the question for weak-topic analysis.
	Topic string `json:"topic,omitempty"`

	// Difficulty is an authoring hint (1-5), not used for gating.
	Difficulty int `json:"difficulty,omitempty"`
}

// Answer resolves the canonical correct answer, preferring the
// explicit single field and falling back to the first element of the
// set form. Empty string if neither is present.
func (q Question) Answer() string {
	if q.CorrectAnswer != "" {
		return q.CorrectAnswer
	}
	if len(q.CorrectAnswers) > 0 {
		return q.CorrectAnswers[0]
	}
	return ""
}

// TopicOrDefault returns the topic, or DefaultTopic when unset.
func (q Question) TopicOrDefault() string {
	if q.Topic == "" {
		return DefaultTopic
	}
	return q.Topic
}

// Settings are the per-roadmap quiz parameters served alongside a
// question set.
type Settings struct {
	// TimeLimitMinutes is the countdown budget for the attempt.
	TimeLimitMinutes int `json:"timeLimitMinutes"`

	// PassingScore is the pass threshold as a percentage (0-100).
	PassingScore int `json:"passingScore"`

	// QuestionCount is how many questions to draw from the pool.
	QuestionCount int `json:"questionCount"`
}

// DefaultSettings are used when a pool file does not override them.
var DefaultSettings = Settings{
	TimeLimitMinutes: 20,
	PassingScore:     60,
	QuestionCount:    10,
}
