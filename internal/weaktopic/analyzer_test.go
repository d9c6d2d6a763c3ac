package weaktopic

import (
	"testing"

	"github.com/adesai/stride/internal/scoring"
)

func wrong(topic string) scoring.AnswerRecord {
	return scoring.AnswerRecord{Topic: topic, UserAnswer: "x", CorrectAnswer: "y"}
}

func right(topic string) scoring.AnswerRecord {
	return scoring.AnswerRecord{Topic: topic, UserAnswer: "y", CorrectAnswer: "y", IsCorrect: true}
}

func TestRank_CountsOnlyWrongAnswers(t *testing.T) {
	res := scoring.Result{Answers: []scoring.AnswerRecord{
		wrong("Slices"), right("Slices"), wrong("Slices"),
		wrong("Maps"),
		right("Channels"),
	}}

	ranked := Rank(res)
	if len(ranked) != 2 {
		t.Fatalf("ranked = %d topics, want 2", len(ranked))
	}
	if ranked[0].Topic != "Slices" || ranked[0].Count != 2 {
		t.Errorf("top = %+v, want Slices/2", ranked[0])
	}
	if ranked[1].Topic != "Maps" || ranked[1].Count != 1 {
		t.Errorf("second = %+v, want Maps/1", ranked[1])
	}
}

func TestRank_TieBrokenByRecency(t *testing.T) {
	older := scoring.Result{Answers: []scoring.AnswerRecord{wrong("Interfaces")}}
	newer := scoring.Result{Answers: []scoring.AnswerRecord{wrong("Generics")}}

	ranked := Rank(older, newer)
	if ranked[0].Topic != "Generics" {
		t.Errorf("top = %q, want the more recently missed topic", ranked[0].Topic)
	}
}

func TestRank_CaseSensitiveTopics(t *testing.T) {
	res := scoring.Result{Answers: []scoring.AnswerRecord{
		wrong("maps"), wrong("Maps"),
	}}
	ranked := Rank(res)
	if len(ranked) != 2 {
		t.Fatalf("ranked = %d topics, want 2 (case-sensitive)", len(ranked))
	}
}

func TestRank_Empty(t *testing.T) {
	if got := Rank(); len(got) != 0 {
		t.Errorf("Rank() = %v, want empty", got)
	}
	perfect := scoring.Result{Answers: []scoring.AnswerRecord{right("A"), right("B")}}
	if got := Rank(perfect); len(got) != 0 {
		t.Errorf("Rank(perfect) = %v, want empty", got)
	}
}
