package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yunuseyvz/portfolio-backend/errs"
	"github.com/yunuseyvz/portfolio-backend/models"
	"github.com/yunuseyvz/portfolio-backend/services"
)

// projectStore is the repository surface the handler needs. Not-found is a
// sentinel (nil/false), never an error, so the handler can cheaply map it to
// a 404 without unwrapping anything.
type projectStore interface {
	FindAll(ctx context.Context) ([]models.Project, error)
	FindByID(ctx context.Context, id int64) (*models.Project, error)
	FindBySlug(ctx context.Context, slug string) (*models.Project, error)
	Create(ctx context.Context, input models.NewProjectInput) (*models.Project, error)
	Patch(ctx context.Context, id int64, patch *models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// invalidator marks statically cached pages stale after a write. Calls are
// fire-and-forget; a failed invalidation never fails the write.
type invalidator interface {
	Invalidate(ctx context.Context, hints services.RevalidationHints)
}

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo projectStore
	invalidator invalidator
}

func newProjectHandler(projectRepo projectStore, invalidator invalidator) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		invalidator: invalidator,
	}
}

// listProjects returns every project, newest year first. Filtering happens
// client-side, so there is no pagination or query support here.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "projects", err))
			return
		}

		if projects == nil {
			projects = []models.Project{}
		}
		h.responder.WriteJSON(w, projects)
	}
}

// getProject resolves the path segment as a numeric id first and falls back
// to a slug lookup. A slug that happens to be all digits therefore resolves
// through the id path.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idOrSlug := chi.URLParam(r, "idOrSlug")

		var project *models.Project
		var err error
		if id, parseErr := strconv.ParseInt(idOrSlug, 10, 64); parseErr == nil {
			project, err = h.projectRepo.FindByID(r.Context(), id)
		} else {
			project, err = h.projectRepo.FindBySlug(r.Context(), idOrSlug)
		}
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject inserts a new project and invalidates the cached pages for
// it. Authentication is handled by the route group middleware.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.NewProjectInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if input.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}

		project, err := h.projectRepo.Create(r.Context(), input)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "project", err))
			return
		}

		h.invalidator.Invalidate(r.Context(), services.RevalidationHints{ID: &project.ID, Slug: project.Slug})

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject applies a sparse patch to a project addressed by numeric id.
// Mutations do not accept the slug form.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "idOrSlug"), 10, 64)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid project ID"))
			return
		}

		var patch models.ProjectPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project patch body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		project, err := h.projectRepo.Patch(r.Context(), id, &patch)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.invalidator.Invalidate(r.Context(), services.RevalidationHints{ID: &project.ID, Slug: project.Slug})

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject hard-deletes a project by numeric id. With the row gone
// there is no slug to hint with, so the invalidation falls back to the
// wildcard covering all detail pages.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "idOrSlug"), 10, 64)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid project ID"))
			return
		}

		deleted, err := h.projectRepo.Delete(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "project", err))
			return
		}

		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.invalidator.Invalidate(r.Context(), services.RevalidationHints{})

		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}
