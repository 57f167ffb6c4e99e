package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLinkIcon(t *testing.T) {
	icon, ok := ParseLinkIcon("github")
	assert.True(t, ok)
	assert.Equal(t, IconGithub, icon)

	icon, ok = ParseLinkIcon("GitHub")
	assert.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, IconGithub, icon)

	icon, ok = ParseLinkIcon("floppy-disk")
	assert.False(t, ok)
	assert.Equal(t, IconGlobe, icon, "unknown identifiers fall back to the globe")

	_, ok = ParseLinkIcon("")
	assert.False(t, ok)
}

func TestResolvedIcon(t *testing.T) {
	link := ProjectLink{Type: "Source", Href: "https://example.com", Icon: "Figma"}
	assert.Equal(t, IconFigma, link.ResolvedIcon())

	link.Icon = "nonsense"
	assert.Equal(t, IconGlobe, link.ResolvedIcon())
}

func TestLinkIconString(t *testing.T) {
	assert.Equal(t, "partypopper", IconPartyPopper.String())
	assert.Equal(t, "globe", LinkIcon(999).String())
}
