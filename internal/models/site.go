package models

// Site holds the page metadata and color scheme
type Site struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Author      string   `json:"author" yaml:"author"`
	URL         string   `json:"url" yaml:"url"`
	OGImage     string   `json:"og_image" yaml:"og_image"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Bio         string   `json:"bio" yaml:"bio"`
	Colors      Colors   `json:"colors" yaml:"colors"`
}

// Colors holds the neon color scheme
type Colors struct {
	Primary    string `json:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" yaml:"secondary"`
	Accent     string `json:"accent" yaml:"accent"`
	Background string `json:"background" yaml:"background"`
}
