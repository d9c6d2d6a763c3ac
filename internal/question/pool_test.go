package question

import (
	"errors"
	"math/rand"
	"testing"
)

const validPoolJSON = `{
	"roadmap": "go-basics",
	"settings": {"timeLimitMinutes": 15, "passingScore": 70},
	"questions": [
		{"id": "q1", "text": "What is a goroutine?", "options": ["A thread", "A lightweight thread", "A process"], "correctAnswer": "A lightweight thread", "topic": "Concurrency"},
		{"id": "q2", "text": "Which keyword declares a constant?", "options": ["var", "const", "let"], "correctAnswers": ["const"], "topic": "Syntax"},
		{"text": "What does defer do?", "options": ["Runs later", "Runs now"], "correctAnswer": "Runs later"}
	]
}`

func TestParsePool_Valid(t *testing.T) {
	pool, err := ParsePool([]byte(validPoolJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pool.Roadmap != "go-basics" {
		t.Errorf("Roadmap = %q, want go-basics", pool.Roadmap)
	}
	if len(pool.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(pool.Questions))
	}
	// Entries without an id get one assigned.
	if pool.Questions[2].ID == "" {
		t.Error("expected generated id for third question")
	}
}

func TestParsePool_RejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"truncated json", `{"roadmap": "x", "questions": [`},
		{"missing roadmap", `{"questions": []}`},
		{"question without options", `{"roadmap": "x", "questions": [{"text": "q"}]}`},
		{"single option", `{"roadmap": "x", "questions": [{"text": "q", "options": ["a"]}]}`},
		{"unknown field", `{"roadmap": "x", "questions": [], "extra": true}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePool([]byte(tc.raw)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestAnswer_ResolvesBothShapes(t *testing.T) {
	single := Question{CorrectAnswer: "const"}
	if got := single.Answer(); got != "const" {
		t.Errorf("Answer() = %q, want const", got)
	}

	set := Question{CorrectAnswers: []string{"const", "var"}}
	if got := set.Answer(); got != "const" {
		t.Errorf("Answer() = %q, want first set element", got)
	}

	// Explicit field wins over the set.
	both := Question{CorrectAnswer: "a", CorrectAnswers: []string{"b"}}
	if got := both.Answer(); got != "a" {
		t.Errorf("Answer() = %q, want explicit field", got)
	}

	if got := (Question{}).Answer(); got != "" {
		t.Errorf("Answer() = %q, want empty", got)
	}
}

func TestTopicOrDefault(t *testing.T) {
	if got := (Question{}).TopicOrDefault(); got != DefaultTopic {
		t.Errorf("TopicOrDefault() = %q, want %q", got, DefaultTopic)
	}
	if got := (Question{Topic: "Maps"}).TopicOrDefault(); got != "Maps" {
		t.Errorf("TopicOrDefault() = %q, want Maps", got)
	}
}

func TestDraw(t *testing.T) {
	pool, err := ParsePool([]byte(validPoolJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rng := rand.New(rand.NewSource(1))

	qs, err := pool.Draw(rng, 2)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("drew %d, want 2", len(qs))
	}
	if qs[0].ID == qs[1].ID {
		t.Error("Draw returned duplicate questions")
	}

	// Asking for more than available caps at pool size.
	qs, err = pool.Draw(rng, 10)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(qs) != 3 {
		t.Errorf("drew %d, want 3", len(qs))
	}
}

func TestDraw_EmptyPool(t *testing.T) {
	pool := &Pool{Roadmap: "empty"}
	_, err := pool.Draw(rand.New(rand.NewSource(1)), 5)
	if !errors.Is(err, ErrPoolEmpty) {
		t.Errorf("err = %v, want ErrPoolEmpty", err)
	}
}

func TestEffectiveSettings(t *testing.T) {
	pool, err := ParsePool([]byte(validPoolJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s := pool.EffectiveSettings()
	if s.TimeLimitMinutes != 15 || s.PassingScore != 70 {
		t.Errorf("settings = %+v, want pool overrides applied", s)
	}
	if s.QuestionCount != DefaultSettings.QuestionCount {
		t.Errorf("QuestionCount = %d, want default", s.QuestionCount)
	}

	bare := &Pool{}
	if got := bare.EffectiveSettings(); got != DefaultSettings {
		t.Errorf("bare settings = %+v, want defaults", got)
	}
}
