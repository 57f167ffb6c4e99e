package models

import "strings"

// LinkIcon is the closed set of icon identifiers a project link may carry.
// The zero value is IconGlobe, which doubles as the fallback for identifiers
// outside the set.
type LinkIcon int

const (
	IconGlobe LinkIcon = iota
	IconGithub
	IconVideo
	IconAward
	IconPartyPopper
	IconExternalLink
	IconGamepad
	IconFigma
	IconBook
)

var iconNames = map[LinkIcon]string{
	IconGlobe:        "globe",
	IconGithub:       "github",
	IconVideo:        "video",
	IconAward:        "award",
	IconPartyPopper:  "partypopper",
	IconExternalLink: "externallink",
	IconGamepad:      "gamepad",
	IconFigma:        "figma",
	IconBook:         "book",
}

var iconsByName = func() map[string]LinkIcon {
	m := make(map[string]LinkIcon, len(iconNames))
	for icon, name := range iconNames {
		m[name] = icon
	}
	return m
}()

func (i LinkIcon) String() string {
	if name, ok := iconNames[i]; ok {
		return name
	}
	return iconNames[IconGlobe]
}

// ParseLinkIcon resolves a stored identifier case-insensitively. Unknown or
// empty identifiers resolve to IconGlobe with ok == false, so callers can
// treat invalid values as an error at construction time instead of a silent
// fallback at render time.
func ParseLinkIcon(name string) (LinkIcon, bool) {
	icon, ok := iconsByName[strings.ToLower(name)]
	if !ok {
		return IconGlobe, false
	}
	return icon, true
}

// ResolvedIcon returns the icon to render for the link, falling back to
// IconGlobe when the stored identifier is unknown.
func (l ProjectLink) ResolvedIcon() LinkIcon {
	icon, _ := ParseLinkIcon(l.Icon)
	return icon
}
