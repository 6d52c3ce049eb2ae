package models

import "fmt"

// ColorScheme is the light/dark page palette
type ColorScheme string

const (
	SchemeDark  ColorScheme = "dark"
	SchemeLight ColorScheme = "light"
)

// DefaultColorScheme matches the neon palette in site.yaml
const DefaultColorScheme = SchemeDark

// ParseColorScheme validates a scheme name
func ParseColorScheme(s string) (ColorScheme, error) {
	switch c := ColorScheme(s); c {
	case SchemeDark, SchemeLight:
		return c, nil
	}
	return "", fmt.Errorf("unknown color scheme %q", s)
}

// Toggle returns the other scheme
func (c ColorScheme) Toggle() ColorScheme {
	if c == SchemeLight {
		return SchemeDark
	}
	return SchemeLight
}
