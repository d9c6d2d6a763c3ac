package server

import (
	"time"

	"github.com/gin-gonic/gin"
)

// userHeader carries the caller's user ID. Stride is a single-user
// tool; the header keeps one server usable by a handful of profiles.
const userHeader = "X-User-ID"

const defaultUser = "local"

func (s *Server) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLog())

	r.GET("/healthcheck", s.healthCheck)

	quiz := newQuizHandler(s.log, s.svc)
	r.GET("/quiz/:roadmap", quiz.Get)
	r.POST("/quiz/:roadmap/submit", quiz.Submit)

	progress := newProgressHandler(s.log, s.svc)
	roadmaps := r.Group("/roadmaps/:master")
	{
		roadmaps.GET("/progress", progress.Get)
		roadmaps.POST("/nodes/:roadmap/:node", progress.MarkNode)
		roadmaps.POST("/tracks/:hub/:track", progress.ChooseTrack)
		roadmaps.GET("/card-test/:card/eligibility", progress.Eligibility)
		roadmaps.POST("/card-test/:card", progress.StartCardTest)
		roadmaps.POST("/card-test/:card/submit", progress.SubmitCardTest)
	}

	return r
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// callerID resolves the user the request acts for.
func callerID(c *gin.Context) string {
	if id := c.GetHeader(userHeader); id != "" {
		return id
	}
	return defaultUser
}
