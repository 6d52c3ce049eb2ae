// Package icons maps a closed set of icon names to inline SVG markup.
//
// Names are validated when content is decoded, so every Name that reaches
// a template has an SVG.
package icons

import (
	"fmt"
	"html/template"

	"gopkg.in/yaml.v3"
)

// Name identifies an icon
type Name string

const (
	GitHub        Name = "github"
	Instagram     Name = "instagram"
	MessageCircle Name = "message-circle"
	YouTube       Name = "youtube"
	Mail          Name = "mail"
	Home          Name = "home"
	Video         Name = "video"
	Palette       Name = "palette"
	Briefcase     Name = "briefcase"
	User          Name = "user"
)

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`

var paths = map[Name]string{
	GitHub:        `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.4 5.4 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"/><path d="M9 18c-4.51 2-5-2-7-2"/>`,
	Instagram:     `<rect width="20" height="20" x="2" y="2" rx="5" ry="5"/><path d="M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"/><line x1="17.5" x2="17.51" y1="6.5" y2="6.5"/>`,
	MessageCircle: `<path d="M7.9 20A9 9 0 1 0 4 16.1L2 22Z"/>`,
	YouTube:       `<path d="M2.5 17a24.12 24.12 0 0 1 0-10 2 2 0 0 1 1.4-1.4 49.56 49.56 0 0 1 16.2 0A2 2 0 0 1 21.5 7a24.12 24.12 0 0 1 0 10 2 2 0 0 1-1.4 1.4 49.55 49.55 0 0 1-16.2 0A2 2 0 0 1 2.5 17"/><path d="m10 15 5-3-5-3z"/>`,
	Mail:          `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	Home:          `<path d="m3 9 9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"/><polyline points="9 22 9 12 15 12 15 22"/>`,
	Video:         `<path d="m16 13 5.223 3.482a.5.5 0 0 0 .777-.416V7.87a.5.5 0 0 0-.752-.432L16 10.5"/><rect x="2" y="6" width="14" height="12" rx="2"/>`,
	Palette:       `<circle cx="13.5" cy="6.5" r=".5"/><circle cx="17.5" cy="10.5" r=".5"/><circle cx="8.5" cy="7.5" r=".5"/><circle cx="6.5" cy="12.5" r=".5"/><path d="M12 2C6.5 2 2 6.5 2 12s4.5 10 10 10c.926 0 1.648-.746 1.648-1.688 0-.437-.18-.835-.437-1.125-.29-.289-.438-.652-.438-1.125a1.64 1.64 0 0 1 1.668-1.668h1.996c3.051 0 5.555-2.503 5.555-5.554C21.965 6.012 17.461 2 12 2z"/>`,
	Briefcase:     `<path d="M16 20V4a2 2 0 0 0-2-2h-4a2 2 0 0 0-2 2v16"/><rect width="20" height="14" x="2" y="6" rx="2"/>`,
	User:          `<path d="M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2"/><circle cx="12" cy="7" r="4"/>`,
}

// All returns every known icon name
func All() []Name {
	return []Name{GitHub, Instagram, MessageCircle, YouTube, Mail, Home, Video, Palette, Briefcase, User}
}

// Parse validates an icon name
func Parse(s string) (Name, error) {
	n := Name(s)
	if _, ok := paths[n]; !ok {
		return "", fmt.Errorf("unknown icon %q", s)
	}
	return n, nil
}

// Valid reports whether n is a known icon
func (n Name) Valid() bool {
	_, ok := paths[n]
	return ok
}

// SVG returns the inline markup for the icon
func (n Name) SVG() template.HTML {
	// Every string in paths is a static literal.
	return template.HTML(svgOpen + paths[n] + `</svg>`)
}

// UnmarshalYAML rejects unknown icon names at load time
func (n *Name) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*n = parsed
	return nil
}
