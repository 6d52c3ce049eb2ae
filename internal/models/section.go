package models

import "gansputra.dev/internal/icons"

// SectionID identifies a top-level page section
type SectionID string

const (
	SectionHero     SectionID = "hero"
	SectionAMVs     SectionID = "amvs"
	SectionGFX      SectionID = "gfx"
	SectionProjects SectionID = "projects"
	SectionAbout    SectionID = "about"
	SectionContact  SectionID = "contact"
)

// Section is a navigation entry
type Section struct {
	ID    SectionID  `json:"id"`
	Title string     `json:"title"`
	Icon  icons.Name `json:"icon"`
}

// Sections lists the page sections in navigation order
var Sections = []Section{
	{ID: SectionHero, Title: "Home", Icon: icons.Home},
	{ID: SectionAMVs, Title: "AMVs", Icon: icons.Video},
	{ID: SectionGFX, Title: "GFX", Icon: icons.Palette},
	{ID: SectionProjects, Title: "Projects", Icon: icons.Briefcase},
	{ID: SectionAbout, Title: "About", Icon: icons.User},
	{ID: SectionContact, Title: "Contact", Icon: icons.Mail},
}

// ParseSection returns the section for s and whether it is known
func ParseSection(s string) (SectionID, bool) {
	for _, sec := range Sections {
		if string(sec.ID) == s {
			return sec.ID, true
		}
	}
	return "", false
}

// ResolveSection coerces unknown identifiers to the first section
func ResolveSection(s string) SectionID {
	if id, ok := ParseSection(s); ok {
		return id
	}
	return Sections[0].ID
}
