package services

import (
	"errors"
	"fmt"

	"gansputra.dev/internal/models"
)

// AllTag is the reserved filter that matches every record
const AllTag = "All"

// ErrNotFound is returned when a record ID does not exist
var ErrNotFound = errors.New("not found")

func isAll(tag string) bool {
	return tag == "" || tag == AllTag
}

// categories returns AllTag followed by the distinct values in first-seen order
func categories(groups [][]string) []string {
	out := []string{AllTag}
	seen := map[string]bool{AllTag: true}
	for _, g := range groups {
		for _, v := range g {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// AMVService serves the AMV showcase
type AMVService struct {
	amvs *models.AMVList
}

// NewAMVService creates a new AMVService
func NewAMVService(amvs *models.AMVList) *AMVService {
	return &AMVService{amvs: amvs}
}

// GetAll returns every AMV
func (s *AMVService) GetAll() []models.AMV {
	return s.amvs.AMVs
}

// GetByID returns a specific AMV
func (s *AMVService) GetByID(id string) (*models.AMV, error) {
	for i := range s.amvs.AMVs {
		if s.amvs.AMVs[i].ID == id {
			return &s.amvs.AMVs[i], nil
		}
	}
	return nil, fmt.Errorf("amv %q: %w", id, ErrNotFound)
}

// Filter returns every AMV tagged with tag, or all AMVs for "All"
func (s *AMVService) Filter(tag string) []models.AMV {
	if isAll(tag) {
		return s.amvs.AMVs
	}
	out := make([]models.AMV, 0)
	for _, a := range s.amvs.AMVs {
		if a.HasTag(tag) {
			out = append(out, a)
		}
	}
	return out
}

// Categories returns the filter chips: "All" then each tag once
func (s *AMVService) Categories() []string {
	groups := make([][]string, len(s.amvs.AMVs))
	for i, a := range s.amvs.AMVs {
		groups[i] = a.Tags
	}
	return categories(groups)
}

// GFXService serves the graphic design showcase
type GFXService struct {
	gfx *models.GFXList
}

// NewGFXService creates a new GFXService
func NewGFXService(gfx *models.GFXList) *GFXService {
	return &GFXService{gfx: gfx}
}

// GetAll returns every design
func (s *GFXService) GetAll() []models.GFXDesign {
	return s.gfx.Designs
}

// GetByID returns a specific design
func (s *GFXService) GetByID(id string) (*models.GFXDesign, error) {
	for i := range s.gfx.Designs {
		if s.gfx.Designs[i].ID == id {
			return &s.gfx.Designs[i], nil
		}
	}
	return nil, fmt.Errorf("gfx %q: %w", id, ErrNotFound)
}

// Filter returns the designs in category, or all of them for "All"
func (s *GFXService) Filter(category string) []models.GFXDesign {
	if isAll(category) {
		return s.gfx.Designs
	}
	out := make([]models.GFXDesign, 0)
	for _, g := range s.gfx.Designs {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out
}

// Categories returns "All" then each category once
func (s *GFXService) Categories() []string {
	groups := make([][]string, len(s.gfx.Designs))
	for i, g := range s.gfx.Designs {
		groups[i] = []string{g.Category}
	}
	return categories(groups)
}
