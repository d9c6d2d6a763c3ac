// Package client talks to a remote stride server, implementing the
// same source/submitter contracts the local service satisfies.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/adesai/stride/internal/question"
	"github.com/adesai/stride/internal/quiz"
	"github.com/adesai/stride/internal/roadmap"
	"github.com/adesai/stride/internal/scoring"
	"github.com/adesai/stride/internal/testout"
)

// Client is a thin HTTP wrapper over the stride server API.
type Client struct {
	base   string
	master string
	userID string
	http   *http.Client
}

// New creates a client for the server at base, acting as userID
// against the given master roadmap.
func New(base, master, userID string) *Client {
	return &Client{
		base:   base,
		master: master,
		userID: userID,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

type bundlePayload struct {
	QuizID    string              `json:"quizId"`
	Questions []question.Question `json:"questions"`
	Settings  question.Settings   `json:"settings"`
}

type ackPayload struct {
	AttemptID        string         `json:"attemptId"`
	Result           scoring.Result `json:"result"`
	AlreadySubmitted bool           `json:"alreadySubmitted"`
}

type blockedPayload struct {
	Reason           string `json:"reason"`
	RemainingMinutes int    `json:"remainingMinutes"`
}

// FetchQuiz retrieves a fresh question set for a roadmap. A 404 maps
// to ErrPoolNotFound so the session controller reports "not
// available" the same way it does in local mode.
func (c *Client) FetchQuiz(ctx context.Context, roadmapID string) (*quiz.Bundle, error) {
	var payload bundlePayload
	status, err := c.do(ctx, http.MethodGet, "/quiz/"+url.PathEscape(roadmapID), nil, &payload)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", question.ErrPoolNotFound, roadmapID)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("fetch quiz %s: status %d", roadmapID, status)
	}
	return &quiz.Bundle{
		QuizID:    payload.QuizID,
		Questions: payload.Questions,
		Settings:  payload.Settings,
	}, nil
}

// SubmitQuiz posts a finished attempt for authoritative scoring.
func (c *Client) SubmitQuiz(ctx context.Context, res scoring.Result) (*quiz.Ack, error) {
	path := "/quiz/" + url.PathEscape(res.RoadmapID) + "/submit"
	return c.submit(ctx, path, res)
}

// StartTestOut begins a test-out exam for a card. Cooldown and pass
// memory come back as *testout.BlockedError.
func (c *Client) StartTestOut(ctx context.Context, cardSlug string) (*quiz.Bundle, error) {
	path := c.masterPath("/card-test/" + url.PathEscape(cardSlug))

	body, status, err := c.doRaw(ctx, http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK:
		var payload bundlePayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("decode test-out bundle: %w", err)
		}
		return &quiz.Bundle{
			QuizID:    payload.QuizID,
			Questions: payload.Questions,
			Settings:  payload.Settings,
		}, nil
	case http.StatusConflict:
		var blocked blockedPayload
		if err := json.Unmarshal(body, &blocked); err != nil {
			return nil, fmt.Errorf("decode conflict body: %w", err)
		}
		if blocked.Reason == "already_passed" {
			return nil, &testout.BlockedError{State: testout.StatePassed}
		}
		return nil, &testout.BlockedError{
			State:            testout.StateCooldown,
			RemainingMinutes: blocked.RemainingMinutes,
		}
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", question.ErrPoolNotFound, cardSlug)
	default:
		return nil, fmt.Errorf("start test-out %s: status %d", cardSlug, status)
	}
}

// SubmitTestOut posts a finished exam; the card slug rides in the
// result's roadmap ID.
func (c *Client) SubmitTestOut(ctx context.Context, res scoring.Result) (*quiz.Ack, error) {
	path := c.masterPath("/card-test/" + url.PathEscape(res.RoadmapID) + "/submit")
	return c.submit(ctx, path, res)
}

// Progress fetches the progression overview for the master roadmap.
func (c *Client) Progress(ctx context.Context) (*roadmap.Overview, error) {
	var payload roadmap.Overview
	status, err := c.do(ctx, http.MethodGet, c.masterPath("/progress"), nil, &payload)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("fetch progress: status %d", status)
	}
	return &payload, nil
}

// Eligibility asks whether a test-out may start for a card.
func (c *Client) Eligibility(ctx context.Context, cardSlug string) (testout.Eligibility, error) {
	var elig testout.Eligibility
	path := c.masterPath("/card-test/" + url.PathEscape(cardSlug) + "/eligibility")
	status, err := c.do(ctx, http.MethodGet, path, nil, &elig)
	if err != nil {
		return testout.Eligibility{}, err
	}
	if status != http.StatusOK {
		return testout.Eligibility{}, fmt.Errorf("check eligibility %s: status %d", cardSlug, status)
	}
	return elig, nil
}

// MarkNode records a completed subtopic on the server.
func (c *Client) MarkNode(ctx context.Context, roadmapID, nodeID string) error {
	path := c.masterPath("/nodes/" + url.PathEscape(roadmapID) + "/" + url.PathEscape(nodeID))
	status, err := c.do(ctx, http.MethodPost, path, nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("mark node %s/%s: status %d", roadmapID, nodeID, status)
	}
	return nil
}

// ChooseTrack records the specialization picked at a hub.
func (c *Client) ChooseTrack(ctx context.Context, hubSlug, trackSlug string) error {
	path := c.masterPath("/tracks/" + url.PathEscape(hubSlug) + "/" + url.PathEscape(trackSlug))
	status, err := c.do(ctx, http.MethodPost, path, nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("choose track %s on %s: status %d", trackSlug, hubSlug, status)
	}
	return nil
}

func (c *Client) submit(ctx context.Context, path string, res scoring.Result) (*quiz.Ack, error) {
	var payload ackPayload
	status, err := c.do(ctx, http.MethodPost, path, res, &payload)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("submit attempt %s: status %d", res.AttemptID, status)
	}
	return &quiz.Ack{
		AttemptID:        payload.AttemptID,
		Result:           payload.Result,
		AlreadySubmitted: payload.AlreadySubmitted,
	}, nil
}

func (c *Client) masterPath(suffix string) string {
	return "/roadmaps/" + url.PathEscape(c.master) + suffix
}

// do runs a request and decodes the response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	raw, status, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return 0, err
	}
	if out != nil && status == http.StatusOK {
		if err := json.Unmarshal(raw, out); err != nil {
			return status, fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return status, nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, body any) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", c.userID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}
	return raw, resp.StatusCode, nil
}
