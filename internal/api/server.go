// Package api exposes the orchestrator over HTTP: dataset upload and the
// chat endpoint. Shapes mirror the orchestrator's turn contract; all
// workflow logic stays in the agent package.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/agent"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/dataset"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/repository"
)

// Server holds the HTTP handlers' dependencies.
type Server struct {
	orch     *agent.Orchestrator
	datasets *dataset.Store
	uploads  repository.UploadRepo
}

// NewServer creates an API server.
func NewServer(orch *agent.Orchestrator, datasets *dataset.Store, uploads repository.UploadRepo) *Server {
	return &Server{
		orch:     orch,
		datasets: datasets,
		uploads:  uploads,
	}
}

// Routes builds the chi router with standard middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/upload", s.handleUpload)
	r.Post("/chat", s.handleChat)
	r.Get("/datasets", s.handleListDatasets)

	return r
}
