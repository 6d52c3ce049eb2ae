package services

import (
	"fmt"
	"strings"

	"gansputra.dev/internal/generation"
	"gansputra.dev/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.projects.Projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.projects.Projects {
		if s.projects.Projects[i].ID == id {
			return &s.projects.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %q: %w", id, ErrNotFound)
}

// Filter returns the projects built with tech, or all of them for "All".
// Stack entries are matched case-insensitively.
func (s *ProjectService) Filter(tech string) []models.Project {
	if isAll(tech) {
		return s.projects.Projects
	}
	out := make([]models.Project, 0)
	for _, p := range s.projects.Projects {
		for _, st := range p.Stack {
			if strings.EqualFold(st, tech) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Technologies returns "All" followed by every stack entry in first-seen order
func (s *ProjectService) Technologies() []string {
	var stacks [][]string
	for _, p := range s.projects.Projects {
		stacks = append(stacks, p.Stack)
	}
	return categories(stacks)
}

// Shuffled returns the projects in a stable pseudo-random order for seed
func (s *ProjectService) Shuffled(projects []models.Project, seed uint64) []models.Project {
	return generation.Shuffle(projects, seed)
}
