package database

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunuseyvz/portfolio-backend/models"
)

func decodePatch(t *testing.T, body string) *models.ProjectPatch {
	t.Helper()
	var patch models.ProjectPatch
	require.NoError(t, json.Unmarshal([]byte(body), &patch))
	return &patch
}

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestBuildUpdatesOnlySuppliedFields(t *testing.T) {
	patch := decodePatch(t, `{"description": "new text"}`)

	updates := buildUpdates(patch, now)

	assert.Len(t, updates, 2)
	desc := updates["description"].(*string)
	assert.Equal(t, "new text", *desc)
	assert.Equal(t, now, updates["updated_at"])
	assert.NotContains(t, updates, "title")
	assert.NotContains(t, updates, "slug")
	assert.NotContains(t, updates, "active")
}

func TestBuildUpdatesKeepsFalsyValues(t *testing.T) {
	// Presence decides membership, not truthiness: false and 0 are updates.
	patch := decodePatch(t, `{"active": false, "year": 0}`)

	updates := buildUpdates(patch, now)

	require.Contains(t, updates, "active")
	require.Contains(t, updates, "year")
	assert.False(t, *updates["active"].(*bool))
	assert.Equal(t, 0, *updates["year"].(*int))
}

func TestBuildUpdatesExplicitNullClearsColumn(t *testing.T) {
	patch := decodePatch(t, `{"year": null, "content": null}`)

	updates := buildUpdates(patch, now)

	require.Contains(t, updates, "year")
	require.Contains(t, updates, "content")
	assert.Nil(t, updates["year"].(*int))
	assert.Nil(t, updates["content"].(*string))
}

func TestBuildUpdatesTitleRederivesSlug(t *testing.T) {
	patch := decodePatch(t, `{"title": "Brand New Name"}`)

	updates := buildUpdates(patch, now)

	assert.Equal(t, "Brand New Name", *updates["title"].(*string))
	assert.Equal(t, "brand-new-name", updates["slug"])
}

func TestBuildUpdatesExplicitSlugWins(t *testing.T) {
	patch := decodePatch(t, `{"title": "Brand New Name", "slug": "keep-this-slug"}`)

	updates := buildUpdates(patch, now)

	assert.Equal(t, "keep-this-slug", *updates["slug"].(*string))
}

func TestBuildUpdatesEmptyTitleDoesNotTouchSlug(t *testing.T) {
	patch := decodePatch(t, `{"title": ""}`)

	updates := buildUpdates(patch, now)

	assert.Contains(t, updates, "title")
	assert.NotContains(t, updates, "slug")
}

func TestBuildUpdatesArrayCoercion(t *testing.T) {
	patch := decodePatch(t, `{"images": null, "tags": ["go", "web"]}`)

	updates := buildUpdates(patch, now)

	// images falls back to an empty array, tags pass through as supplied
	assert.Equal(t, pq.StringArray{}, updates["images"])
	assert.Equal(t, pq.StringArray{"go", "web"}, updates["tags"])
}

func TestBuildUpdatesEmptyPatchStillStampsUpdatedAt(t *testing.T) {
	patch := decodePatch(t, `{}`)

	updates := buildUpdates(patch, now)

	assert.Equal(t, map[string]any{"updated_at": now}, updates)
}

func TestBuildUpdatesLinks(t *testing.T) {
	patch := decodePatch(t, `{"links": [{"type": "Source", "href": "https://example.com", "icon": "github"},
		{"type": "", "href": ""}]}`)

	updates := buildUpdates(patch, now)

	// Empty type/href entries are not filtered at this layer; the API is
	// deliberately permissive and only the admin form prunes them.
	require.Contains(t, updates, "links")
}

func TestBuildUpdatesProgrammaticPatch(t *testing.T) {
	active := true
	patch := (&models.ProjectPatch{Active: &active}).Set("active")

	updates := buildUpdates(patch, now)

	require.Contains(t, updates, "active")
	assert.True(t, *updates["active"].(*bool))
	assert.NotContains(t, updates, "year")
}
