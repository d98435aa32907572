package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/inklight/pdfmark/internal/config"
	"github.com/inklight/pdfmark/internal/llm"
	"github.com/inklight/pdfmark/internal/pipeline"
)

// Server is the HTTP API for the highlight service.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	model        *llm.Client
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, model *llm.Client, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		model:        model,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(s.cfg.APIKey, s.log))

		r.Post("/api/highlight", s.handleSubmit)
		r.Get("/api/highlight/{jobID}/status", s.handleStatus)
		r.Get("/api/highlight/{jobID}/annotations", s.handleAnnotations)
		r.Get("/api/highlight/{jobID}/report", s.handleReport)
		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
