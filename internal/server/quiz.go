package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adesai/stride/internal/logger"
	"github.com/adesai/stride/internal/question"
	"github.com/adesai/stride/internal/scoring"
	"github.com/adesai/stride/internal/service"
)

type quizHandler struct {
	log *logger.Logger
	svc *service.Service
}

func newQuizHandler(log *logger.Logger, svc *service.Service) *quizHandler {
	return &quizHandler{log: log.With("handler", "quiz"), svc: svc}
}

// Get assembles a fresh question set for a roadmap.
func (h *quizHandler) Get(c *gin.Context) {
	roadmapID := c.Param("roadmap")

	bundle, err := h.svc.FetchQuiz(c.Request.Context(), roadmapID)
	if err != nil {
		if errors.Is(err, question.ErrPoolNotFound) || errors.Is(err, question.ErrPoolEmpty) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quiz not available"})
			return
		}
		h.log.Error("fetch quiz", "roadmap", roadmapID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assemble quiz"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quizId":    bundle.QuizID,
		"questions": bundle.Questions,
		"settings":  bundle.Settings,
	})
}

// Submit rescores and stores an attempt. Retries with the same attempt
// ID return the stored result with alreadySubmitted set.
func (h *quizHandler) Submit(c *gin.Context) {
	roadmapID := c.Param("roadmap")

	var res scoring.Result
	if err := c.ShouldBindJSON(&res); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission body"})
		return
	}
	if res.AttemptID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "attemptId is required"})
		return
	}
	// Identity comes from the request, never the payload.
	res.UserID = callerID(c)
	res.RoadmapID = roadmapID

	ack, err := h.svc.SubmitQuiz(c.Request.Context(), res)
	if err != nil {
		h.log.Error("submit quiz", "roadmap", roadmapID, "attempt", res.AttemptID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store attempt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attemptId":        ack.AttemptID,
		"result":           ack.Result,
		"alreadySubmitted": ack.AlreadySubmitted,
	})
}
