package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gansputra.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects?tech=&seed=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	tech := filterParam(r, "tech", sess.ProjectFilter)

	projects := h.projectService.Filter(tech)
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid seed")
			return
		}
		projects = h.projectService.Shuffled(projects, seed)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"filter":       tech,
		"technologies": h.projectService.Technologies(),
		"projects":     projects,
	})
}

// ListTechnologies handles GET /api/projects/technologies
func (h *ProjectHandler) ListTechnologies(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.Technologies())
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"project": project,
		"images":  project.Images(),
	})
}
