package database

import (
	"regexp"
	"strings"
)

var nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// MakeSlug derives a URL-safe identifier from a project title: lowercased,
// runs of non-alphanumeric characters collapsed to single hyphens, leading
// and trailing hyphens trimmed.
func MakeSlug(title string) string {
	slug := strings.ToLower(title)
	slug = nonSlugRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
