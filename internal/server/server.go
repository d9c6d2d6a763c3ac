// Package server is the authoritative HTTP half of stride: question
// serving, rescoring on submit, and server-side test-out gating.
package server

import (
	"net/http"

	"github.com/adesai/stride/internal/logger"
	"github.com/adesai/stride/internal/service"
)

// Server owns the gin engine and its handlers.
type Server struct {
	log *logger.Logger
	svc *service.Service
}

// New assembles a server over the shared service layer.
func New(log *logger.Logger, svc *service.Service) *Server {
	return &Server{log: log, svc: svc}
}

// Handler returns the full route tree as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router()
}

// Run serves the API on address until the listener fails.
func (s *Server) Run(address string) error {
	s.log.Info("server listening", "address", address)
	return s.router().Run(address)
}
