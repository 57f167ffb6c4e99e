package database

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yunuseyvz/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects ordered by year, newest first. Rows without a
// year sort after everything else. Filtering is left to the presentation
// layer, so there is no pagination here.
func (r *ProjectRepo) FindAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).Order("year DESC NULLS LAST").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil without an error when no such
// row exists. Errors are reserved for connectivity and query failures.
func (r *ProjectRepo) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug returns a project by its slug, or nil without an error when no
// such row exists.
func (r *ProjectRepo) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Create inserts a new project. The slug is derived from the title, and nil
// tags/images are persisted as empty arrays rather than NULL.
func (r *ProjectRepo) Create(ctx context.Context, input models.NewProjectInput) (*models.Project, error) {
	project := models.Project{
		Title:       input.Title,
		Slug:        MakeSlug(input.Title),
		Description: input.Description,
		Year:        input.Year,
		Tags:        pq.StringArray(input.Tags),
		Image:       input.Image,
		ImageLight:  input.ImageLight,
		Images:      pq.StringArray(input.Images),
		Content:     input.Content,
		Links:       datatypes.NewJSONType(input.Links),
		Active:      input.Active,
	}
	if project.Tags == nil {
		project.Tags = pq.StringArray{}
	}
	if project.Images == nil {
		project.Images = pq.StringArray{}
	}

	if err := r.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Patch applies a sparse update: only fields present in the patch make it
// into the statement, and updated_at is stamped even when no business field
// changed. Returns nil without an error when the id does not exist.
func (r *ProjectRepo) Patch(ctx context.Context, id int64, patch *models.ProjectPatch) (*models.Project, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	updates := buildUpdates(patch, time.Now().UTC())
	if err := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

// buildUpdates assembles the column set for a sparse update. Presence of a
// key decides membership, not the value: an explicit null clears the column.
// A supplied non-empty title re-derives the slug, and a slug supplied in the
// same patch is assembled afterwards, so the explicit value wins.
func buildUpdates(patch *models.ProjectPatch, now time.Time) map[string]any {
	updates := make(map[string]any)

	if patch.Has("title") {
		updates["title"] = patch.Title
		if patch.Title != nil && *patch.Title != "" {
			updates["slug"] = MakeSlug(*patch.Title)
		}
	}
	if patch.Has("description") {
		updates["description"] = patch.Description
	}
	if patch.Has("year") {
		updates["year"] = patch.Year
	}
	if patch.Has("image") {
		updates["image"] = patch.Image
	}
	if patch.Has("image_light") {
		updates["image_light"] = patch.ImageLight
	}
	if patch.Has("images") {
		images := pq.StringArray{}
		if patch.Images != nil {
			images = pq.StringArray(*patch.Images)
		}
		updates["images"] = images
	}
	if patch.Has("tags") {
		if patch.Tags != nil {
			updates["tags"] = pq.StringArray(*patch.Tags)
		} else {
			updates["tags"] = nil
		}
	}
	if patch.Has("links") {
		if patch.Links != nil {
			updates["links"] = datatypes.NewJSONType(*patch.Links)
		} else {
			updates["links"] = nil
		}
	}
	if patch.Has("active") {
		updates["active"] = patch.Active
	}
	if patch.Has("content") {
		updates["content"] = patch.Content
	}
	if patch.Has("slug") {
		updates["slug"] = patch.Slug
	}

	updates["updated_at"] = now
	return updates
}

// Delete removes a project by id. The boolean reports whether a row actually
// went away, so callers can tell a delete from a no-op.
func (r *ProjectRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
