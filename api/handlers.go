package api

import (
	"time"

	"github.com/yunuseyvz/portfolio-backend/config"
	"github.com/yunuseyvz/portfolio-backend/database"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	uploadHandler  uploadHandler
	cvHandler      cvHandler
	visitorHandler visitorHandler
	contactHandler contactHandler
	authHandler    authHandler
	healthHandler  healthHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, deps Dependencies, c map[string]string, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(database.ProjectRepo(), deps.Revalidator),
		uploadHandler:  newUploadHandler(deps.Uploader),
		cvHandler:      newCVHandler(deps.CVCompiler),
		visitorHandler: newVisitorHandler(database.VisitorRepo()),
		contactHandler: newContactHandler(deps.Mailer),
		authHandler: newAuthHandler(
			config.GetString(c, "ADMIN_PASSWORD", ""),
			config.GetString(c, "SESSION_SECRET", ""),
		),
		healthHandler: newHealthHandler(startupTime),
	}
}
