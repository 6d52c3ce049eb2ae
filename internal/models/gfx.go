package models

// GFXDesign represents a graphic design piece
type GFXDesign struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	Category    string `json:"category" yaml:"category"`
}

// GFXList wraps the array of designs
type GFXList struct {
	Designs []GFXDesign `json:"gfx" yaml:"gfx"`
}
