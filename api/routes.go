package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes sets up the public health probe and the authenticated dashboard routes
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Get("/health", handlers.healthHandler.status())

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Project Handler endpoints
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/project/{projectID}/steps", handlers.projectHandler.listProjectSteps())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/project/{projectID}/reveal/{field}", handlers.projectHandler.toggleReveal())
	})
}
