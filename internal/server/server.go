// Package server exposes the budget calculator over HTTP. The surface is
// stateless: every request carries its own parameter set and nothing is
// persisted between calls.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/strikerdlm/BudgetNormobaricHypox/internal/budget"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	defaults budget.TrainingParameters
	policy   budget.MixingPolicy
	log      *slog.Logger
	router   chi.Router
}

// New creates a new Server with all routes configured. The defaults fill in
// fields a request body omits.
func New(defaults budget.TrainingParameters, policy budget.MixingPolicy, log *slog.Logger) *Server {
	s := &Server{
		defaults: defaults,
		policy:   policy,
		log:      log,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/api/v1/estimate", s.handleEstimate)
	s.router.Get("/api/v1/physiology", s.handlePhysiology)
}
