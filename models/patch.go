package models

import "encoding/json"

// ProjectPatch is a sparse update of a project. A field only takes part in
// the update when its key was present in the JSON body, which is not the
// same as the value being non-zero: `{"active": false}` and `{"year": null}`
// both count as updates, while an omitted key leaves the column untouched.
type ProjectPatch struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Year        *int           `json:"year"`
	Tags        *[]string      `json:"tags"`
	Image       *string        `json:"image"`
	ImageLight  *string        `json:"image_light"`
	Images      *[]string      `json:"images"`
	Content     *string        `json:"content"`
	Links       *[]ProjectLink `json:"links"`
	Active      *bool          `json:"active"`
	Slug        *string        `json:"slug"`

	present map[string]bool
}

// UnmarshalJSON decodes the typed fields and records which keys the body
// actually carried so Has can distinguish "absent" from "explicitly null".
func (p *ProjectPatch) UnmarshalJSON(data []byte) error {
	type alias ProjectPatch
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*p = ProjectPatch(a)
	p.present = make(map[string]bool, len(keys))
	for k := range keys {
		p.present[k] = true
	}
	return nil
}

// Has reports whether the named key appeared in the patch body.
func (p *ProjectPatch) Has(field string) bool {
	return p.present[field]
}

// Set marks a field as present. Intended for callers constructing patches in
// code rather than decoding them from a request body.
func (p *ProjectPatch) Set(field string) *ProjectPatch {
	if p.present == nil {
		p.present = make(map[string]bool)
	}
	p.present[field] = true
	return p
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *ProjectPatch) IsEmpty() bool {
	return len(p.present) == 0
}
