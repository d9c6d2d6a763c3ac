package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adesai/stride/internal/logger"
	"github.com/adesai/stride/internal/question"
	"github.com/adesai/stride/internal/scoring"
	"github.com/adesai/stride/internal/service"
	"github.com/adesai/stride/internal/testout"
)

type progressHandler struct {
	log *logger.Logger
	svc *service.Service
}

func newProgressHandler(log *logger.Logger, svc *service.Service) *progressHandler {
	return &progressHandler{log: log.With("handler", "progress"), svc: svc}
}

// Get returns per-year completion and lock status for the master
// roadmap.
func (h *progressHandler) Get(c *gin.Context) {
	if !h.checkMaster(c) {
		return
	}

	overview, err := h.svc.Overview(c.Request.Context(), callerID(c))
	if err != nil {
		h.log.Error("evaluate progress", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to evaluate progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"master":       h.svc.Curriculum().ID,
		"years":        overview.Years,
		"completion":   overview.Completion,
		"chosenTracks": overview.ChosenTracks,
		"doneNodes":    overview.DoneNodes,
	})
}

// Eligibility reports whether a test-out may start for a card without
// actually starting one.
func (h *progressHandler) Eligibility(c *gin.Context) {
	if !h.checkMaster(c) {
		return
	}

	elig, err := h.svc.Eligibility(c.Request.Context(), callerID(c), c.Param("card"))
	if err != nil {
		h.log.Error("check eligibility", "card", c.Param("card"), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check eligibility"})
		return
	}
	c.JSON(http.StatusOK, elig)
}

// MarkNode records a completed subtopic.
func (h *progressHandler) MarkNode(c *gin.Context) {
	if !h.checkMaster(c) {
		return
	}

	err := h.svc.MarkNode(c.Request.Context(), callerID(c), c.Param("roadmap"), c.Param("node"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "marked"})
}

// ChooseTrack records the specialization picked at a tech stack hub.
func (h *progressHandler) ChooseTrack(c *gin.Context) {
	if !h.checkMaster(c) {
		return
	}

	err := h.svc.ChooseTrack(c.Request.Context(), callerID(c), c.Param("hub"), c.Param("track"))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "chosen"})
}

// StartCardTest begins a test-out exam for a card. Cooldown and pass
// memory come back as structured 409s; both are expected outcomes.
func (h *progressHandler) StartCardTest(c *gin.Context) {
	if !h.checkMaster(c) {
		return
	}
	card := c.Param("card")

	bundle, err := h.svc.FetchTestOut(c.Request.Context(), callerID(c), card)
	if err != nil {
		var blocked *testout.BlockedError
		switch {
		case errors.As(err, &blocked):
			c.JSON(http.StatusConflict, blockedBody(blocked))
		case errors.Is(err, question.ErrPoolNotFound), errors.Is(err, question.ErrPoolEmpty):
			c.JSON(http.StatusNotFound, gin.H{"error": "test not available"})
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quizId":    bundle.QuizID,
		"questions": bundle.Questions,
		"settings":  bundle.Settings,
	})
}

// SubmitCardTest rescores a finished exam, appends it to the card's
// history, and marks the card complete on a pass.
func (h *progressHandler) SubmitCardTest(c *gin.Context) {
	if !h.checkMaster(c) {
		return
	}
	card := c.Param("card")

	var res scoring.Result
	if err := c.ShouldBindJSON(&res); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission body"})
		return
	}
	if res.AttemptID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "attemptId is required"})
		return
	}
	res.UserID = callerID(c)
	res.RoadmapID = card

	ack, err := h.svc.SubmitTestOut(c.Request.Context(), res)
	if err != nil {
		h.log.Error("submit card test", "card", card, "attempt", res.AttemptID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store attempt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attemptId":        ack.AttemptID,
		"result":           ack.Result,
		"alreadySubmitted": ack.AlreadySubmitted,
	})
}

func (h *progressHandler) checkMaster(c *gin.Context) bool {
	if c.Param("master") != h.svc.Curriculum().ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown master roadmap"})
		return false
	}
	return true
}

func blockedBody(b *testout.BlockedError) gin.H {
	if b.State == testout.StateCooldown {
		return gin.H{"reason": "cooldown", "remainingMinutes": b.RemainingMinutes}
	}
	return gin.H{"reason": "already_passed"}
}
