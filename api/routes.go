package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site endpoints and the authenticated admin
// group. Mutating project routes accept numeric ids only; the id-or-slug
// form is deliberately limited to reads.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(RequestLoggingMiddleware)

		// Public endpoints
		r.Get("/health", handlers.healthHandler.status())
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{idOrSlug}", handlers.projectHandler.getProject())
		r.Get("/generate-cv", handlers.cvHandler.generateCV())
		r.Get("/visitor-count", handlers.visitorHandler.hit())
		r.Post("/contact", handlers.contactHandler.submit())
		r.Post("/auth/login", handlers.authHandler.login())

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{idOrSlug}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{idOrSlug}", handlers.projectHandler.deleteProject())
			r.Post("/upload", handlers.uploadHandler.upload())
		})
	})
}
