package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ProjectLink is a link shown on a project page (source, demo, writeup, ...).
// Icon is a free-form identifier resolved against the icon enumeration at
// render time; see LinkIcon.
type ProjectLink struct {
	Type string `json:"type"`
	Href string `json:"href"`
	Icon string `json:"icon,omitempty"`
}

// Project represents a portfolio project. The struct mirrors the projects
// table: tags and images are text[] columns, links is a jsonb blob attached
// to the row rather than a separate table.
type Project struct {
	ID          int64                             `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string                            `json:"title" gorm:"type:text;not null"`
	Slug        string                            `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description string                            `json:"description" gorm:"type:text"`
	Year        *int                              `json:"year,omitempty" gorm:"type:integer"`
	Tags        pq.StringArray                    `json:"tags" gorm:"type:text[]"`
	Image       *string                           `json:"image,omitempty" gorm:"type:text"`
	ImageLight  *string                           `json:"image_light,omitempty" gorm:"type:text"`
	Images      pq.StringArray                    `json:"images" gorm:"type:text[]"`
	Content     *string                           `json:"content,omitempty" gorm:"type:text"`
	Links       datatypes.JSONType[[]ProjectLink] `json:"links" gorm:"type:jsonb"`
	Active      bool                              `json:"active" gorm:"not null;default:false"`
	CreatedAt   time.Time                         `json:"created_at"`
	UpdatedAt   time.Time                         `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

// NewProjectInput is the payload accepted on create. ID, slug and timestamps
// are generated server-side.
type NewProjectInput struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Year        *int          `json:"year"`
	Tags        []string      `json:"tags"`
	Image       *string       `json:"image"`
	ImageLight  *string       `json:"image_light"`
	Images      []string      `json:"images"`
	Content     *string       `json:"content"`
	Links       []ProjectLink `json:"links"`
	Active      bool          `json:"active"`
}
