package handlers

import (
	"net/http"

	"gansputra.dev/internal/models"
)

// SectionHandler handles navigation between page sections
type SectionHandler struct{}

// NewSectionHandler creates a new SectionHandler
func NewSectionHandler() *SectionHandler {
	return &SectionHandler{}
}

// GetSections handles GET /api/sections
func (h *SectionHandler) GetSections(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"active":   sessionFrom(r).Navigator.Active(),
		"sections": models.Sections,
	})
}

// SelectSection handles POST /api/sections/active (tab navigation)
func (h *SectionHandler) SelectSection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Section string `json:"section"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	nav := sessionFrom(r).Navigator
	changed, err := nav.Select(req.Section)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"active":  nav.Active(),
		"changed": changed,
	})
}

// ObserveSection handles POST /api/sections/observe (scroll navigation)
func (h *SectionHandler) ObserveSection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Section string  `json:"section"`
		Ratio   float64 `json:"ratio"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	nav := sessionFrom(r).Navigator
	changed, err := nav.Observe(req.Section, req.Ratio)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"active":  nav.Active(),
		"changed": changed,
	})
}
