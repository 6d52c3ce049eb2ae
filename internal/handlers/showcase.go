package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gansputra.dev/internal/models"
	"gansputra.dev/internal/services"
	"gansputra.dev/internal/state"
)

// ShowcaseHandler serves the AMV and GFX grids
type ShowcaseHandler struct {
	amvService *services.AMVService
	gfxService *services.GFXService
}

// NewShowcaseHandler creates a new ShowcaseHandler
func NewShowcaseHandler(as *services.AMVService, gs *services.GFXService) *ShowcaseHandler {
	return &ShowcaseHandler{amvService: as, gfxService: gs}
}

// amvCard is an AMV with its derived media URLs
type amvCard struct {
	models.AMV
	Thumbnail string `json:"thumbnail"`
	EmbedURL  string `json:"embed_url,omitempty"`
}

func newAMVCard(a models.AMV) amvCard {
	return amvCard{AMV: a, Thumbnail: a.Thumbnail(), EmbedURL: a.EmbedURL()}
}

func amvCards(amvs []models.AMV) []amvCard {
	cards := make([]amvCard, len(amvs))
	for i, a := range amvs {
		cards[i] = newAMVCard(a)
	}
	return cards
}

// filterParam reads a filter from the query and remembers it in the session.
// Without the parameter the session's last filter is used.
func filterParam(r *http.Request, name string, current *state.Value[string]) string {
	q := r.URL.Query()
	if !q.Has(name) {
		return current.Get()
	}
	v := q.Get(name)
	if v == "" {
		v = services.AllTag
	}
	current.Set(v)
	return v
}

// ListAMVs handles GET /api/amvs?tag=
func (h *ShowcaseHandler) ListAMVs(w http.ResponseWriter, r *http.Request) {
	tag := filterParam(r, "tag", sessionFrom(r).AMVFilter)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"filter":     tag,
		"categories": h.amvService.Categories(),
		"amvs":       amvCards(h.amvService.Filter(tag)),
	})
}

// AMVCategories handles GET /api/amvs/categories
func (h *ShowcaseHandler) AMVCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.amvService.Categories())
}

// GetAMV handles GET /api/amvs/{id}
func (h *ShowcaseHandler) GetAMV(w http.ResponseWriter, r *http.Request) {
	amv, err := h.amvService.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "AMV not found")
		return
	}
	respondJSON(w, http.StatusOK, newAMVCard(*amv))
}

// ListGFX handles GET /api/gfx?category=
func (h *ShowcaseHandler) ListGFX(w http.ResponseWriter, r *http.Request) {
	category := filterParam(r, "category", sessionFrom(r).GFXFilter)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"filter":     category,
		"categories": h.gfxService.Categories(),
		"gfx":        h.gfxService.Filter(category),
	})
}

// GFXCategories handles GET /api/gfx/categories
func (h *ShowcaseHandler) GFXCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.gfxService.Categories())
}

// GetGFX handles GET /api/gfx/{id}
func (h *ShowcaseHandler) GetGFX(w http.ResponseWriter, r *http.Request) {
	design, err := h.gfxService.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Design not found")
		return
	}
	respondJSON(w, http.StatusOK, design)
}
