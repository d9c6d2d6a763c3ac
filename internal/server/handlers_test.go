package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adesai/stride/internal/clock"
	"github.com/adesai/stride/internal/logger"
	"github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/scoring"
	"github.com/adesai/stride/internal/service"
	"github.com/adesai/stride/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *clock.Fake) {
	t.Helper()

	dir := t.TempDir()
	writePool(t, dir, "algorithms")
	writePool(t, dir, "backend")

	st, err := store.Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cur, err := roadmap.Parse([]byte(`
id: software-engineering
name: Software Engineering
years:
  - number: 1
    requiredProgress: 0
    roadmaps:
      - slug: algorithms
        name: Algorithms
        subtopics: [arrays, sorting, graphs, dp]
  - number: 2
    requiredProgress: 70
    roadmaps:
      - slug: backend
        name: Backend
        subtopics: [http, databases]
`))
	if err != nil {
		t.Fatalf("parse curriculum: %v", err)
	}

	clk := clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	svc := service.New(clk, dir, cur, st, 1)
	return New(logger.Nop(), svc).router(), clk
}

// writePool writes a 12-question pool where option "A" is correct.
func writePool(t *testing.T, dir, slug string) {
	t.Helper()
	qs := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		qs = append(qs, fmt.Sprintf(`{"id":"%s-q%d","text":"Question %d","options":["A","B","C","D"],"correctAnswer":"A"}`, slug, i, i))
	}
	raw := fmt.Sprintf(`{"roadmap":"%s","questions":[%s]}`, slug, strings.Join(qs, ","))
	if err := os.WriteFile(filepath.Join(dir, slug+".json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write pool: %v", err)
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %s: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

// submission builds a 10-answer result body with the given number of
// correct ("A") answers.
func submission(attemptID, slug string, correct int) scoring.Result {
	answers := make([]scoring.AnswerRecord, 0, 10)
	for i := 0; i < 10; i++ {
		user := "A"
		if i >= correct {
			user = "B"
		}
		answers = append(answers, scoring.AnswerRecord{
			QuestionID: fmt.Sprintf("%s-q%d", slug, i),
			UserAnswer: user,
		})
	}
	return scoring.Result{AttemptID: attemptID, Answers: answers, TotalQuestions: 10}
}

func TestGetQuizServesPool(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/quiz/algorithms", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if body["quizId"] == "" {
		t.Fatal("response has no quiz ID")
	}
	questions := body["questions"].([]any)
	if len(questions) != 10 {
		t.Fatalf("served %d questions, want 10", len(questions))
	}
	settings := body["settings"].(map[string]any)
	if settings["timeLimitMinutes"].(float64) != 20 {
		t.Fatalf("unexpected settings %v", settings)
	}
}

func TestGetQuizUnknownRoadmap(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/quiz/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	if body["error"] != "quiz not available" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestSubmitQuizRescoresAndDeduplicates(t *testing.T) {
	r, _ := newTestRouter(t)

	// Claim 10/10; only 7 answers are actually correct.
	sub := submission("attempt-1", "algorithms", 7)
	sub.Score = 10
	sub.Percentage = 100
	sub.Passed = true

	w, body := doJSON(t, r, http.MethodPost, "/quiz/algorithms/submit", sub)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	result := body["result"].(map[string]any)
	if result["score"].(float64) != 7 {
		t.Fatalf("server score %v, want 7", result["score"])
	}
	if result["percentage"].(float64) != 70 {
		t.Fatalf("server percentage %v, want 70", result["percentage"])
	}
	if body["alreadySubmitted"].(bool) {
		t.Fatal("first submit flagged as duplicate")
	}

	w, body = doJSON(t, r, http.MethodPost, "/quiz/algorithms/submit", sub)
	if w.Code != http.StatusOK {
		t.Fatalf("retry status %d", w.Code)
	}
	if !body["alreadySubmitted"].(bool) {
		t.Fatal("retry not flagged as duplicate")
	}
}

func TestSubmitQuizRequiresAttemptID(t *testing.T) {
	r, _ := newTestRouter(t)

	sub := submission("", "algorithms", 5)
	w, _ := doJSON(t, r, http.MethodPost, "/quiz/algorithms/submit", sub)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestCardTestCooldownConflict(t *testing.T) {
	r, clk := newTestRouter(t)
	base := "/roadmaps/software-engineering/card-test/algorithms"

	w, _ := doJSON(t, r, http.MethodPost, base, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first start status %d: %s", w.Code, w.Body.String())
	}

	// Fail the exam: 5/10 is below the 80 threshold.
	w, _ = doJSON(t, r, http.MethodPost, base+"/submit", submission("to-1", "algorithms", 5))
	if w.Code != http.StatusOK {
		t.Fatalf("submit status %d: %s", w.Code, w.Body.String())
	}

	w, body := doJSON(t, r, http.MethodPost, base, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("status %d, want 409", w.Code)
	}
	if body["reason"] != "cooldown" {
		t.Fatalf("reason %v, want cooldown", body["reason"])
	}
	if body["remainingMinutes"].(float64) != 60 {
		t.Fatalf("remainingMinutes %v, want 60", body["remainingMinutes"])
	}

	clk.Advance(time.Hour)
	w, _ = doJSON(t, r, http.MethodPost, base, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("start after cooldown status %d", w.Code)
	}
}

func TestCardTestPassIsPermanentAndCompletesCard(t *testing.T) {
	r, _ := newTestRouter(t)
	base := "/roadmaps/software-engineering/card-test/algorithms"

	w, body := doJSON(t, r, http.MethodPost, base+"/submit", submission("to-pass", "algorithms", 9))
	if w.Code != http.StatusOK {
		t.Fatalf("submit status %d: %s", w.Code, w.Body.String())
	}
	result := body["result"].(map[string]any)
	if result["passed"] != true {
		t.Fatalf("90%% should pass: %v", result)
	}

	w, body = doJSON(t, r, http.MethodPost, base, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("status %d, want 409", w.Code)
	}
	if body["reason"] != "already_passed" {
		t.Fatalf("reason %v, want already_passed", body["reason"])
	}

	w, body = doJSON(t, r, http.MethodGet, "/roadmaps/software-engineering/progress", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("progress status %d", w.Code)
	}
	years := body["years"].([]any)
	year1 := years[0].(map[string]any)
	if year1["completionPercent"].(float64) != 100 || year1["status"] != "completed" {
		t.Fatalf("year 1 after pass: %v", year1)
	}
	year2 := years[1].(map[string]any)
	if year2["status"] != "available" {
		t.Fatalf("year 2 should unlock, got %v", year2)
	}
}

func TestMarkNodeAndProgress(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, n := range []string{"arrays", "sorting"} {
		w, _ := doJSON(t, r, http.MethodPost, "/roadmaps/software-engineering/nodes/algorithms/"+n, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("mark %s status %d", n, w.Code)
		}
	}
	w, _ := doJSON(t, r, http.MethodPost, "/roadmaps/software-engineering/nodes/algorithms/bogus", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("bogus node status %d, want 404", w.Code)
	}

	w, body := doJSON(t, r, http.MethodGet, "/roadmaps/software-engineering/progress", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("progress status %d", w.Code)
	}
	year1 := body["years"].([]any)[0].(map[string]any)
	if year1["completionPercent"].(float64) != 50 {
		t.Fatalf("year 1 at %v%%, want 50", year1["completionPercent"])
	}
	if year1["status"] != "available" {
		t.Fatalf("year 1 status %v", year1["status"])
	}
}

func TestCardTestEligibilityIsReadOnly(t *testing.T) {
	r, _ := newTestRouter(t)
	base := "/roadmaps/software-engineering/card-test/algorithms"

	w, body := doJSON(t, r, http.MethodGet, base+"/eligibility", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if body["state"] != "eligible" {
		t.Fatalf("state %v, want eligible", body["state"])
	}

	// Checking eligibility must not consume an attempt or start a
	// cooldown; only a failed submission does.
	w, _ = doJSON(t, r, http.MethodPost, base+"/submit", submission("to-1", "algorithms", 5))
	if w.Code != http.StatusOK {
		t.Fatalf("submit status %d: %s", w.Code, w.Body.String())
	}

	w, body = doJSON(t, r, http.MethodGet, base+"/eligibility", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if body["state"] != "cooldown" {
		t.Fatalf("state %v, want cooldown", body["state"])
	}
	if body["remainingMinutes"].(float64) != 60 {
		t.Fatalf("remainingMinutes %v, want 60", body["remainingMinutes"])
	}
}

func TestUnknownMasterRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/roadmaps/another-master/progress", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
}
