package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health check (no auth required)
		r.Get("/health", s.handleHealth)

		// Auth endpoints (no auth required)
		r.Post("/auth/login", s.handleLogin)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			// Rule catalogs, read-only
			r.Route("/catalog", func(r chi.Router) {
				r.Get("/rooms", s.handleCatalogRooms)
				r.Get("/assemblies", s.handleCatalogAssemblies)
				r.Get("/wire-sizing", s.handleCatalogWireSizing)
				r.Get("/amp-patterns", s.handleCatalogAmpPatterns)
			})

			// Stateless derivation endpoints
			r.Route("/derive", func(r chi.Router) {
				r.Post("/devices", s.handleDeriveDevices)
				r.Post("/panel-schedule", s.handleDerivePanelSchedule)
				r.Post("/compliance", s.handleDeriveCompliance)
				r.Post("/wireplan", s.handleDeriveWirePlan)
				r.Post("/takeoff", s.handleDeriveTakeoff)
			})

			// Project endpoints
			r.Route("/projects", func(r chi.Router) {
				r.Get("/", s.handleListProjects)
				r.Post("/", s.handleCreateProject)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.handleGetProject)
					r.Patch("/", s.handleUpdateProject)
					r.Delete("/", s.handleDeleteProject)

					r.Get("/rooms", s.handleListProjectRooms)
					r.Put("/rooms", s.handleReplaceProjectRooms)

					r.Post("/estimate", s.handleCreateEstimate)
					r.Get("/estimate", s.handleLatestEstimate)
					r.Get("/estimates", s.handleListEstimates)
				})
			})
		})
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
