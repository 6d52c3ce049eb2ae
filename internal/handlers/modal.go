package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gansputra.dev/internal/services"
)

// ModalHandler drives the preview modal and its image carousel
type ModalHandler struct {
	amvService     *services.AMVService
	gfxService     *services.GFXService
	projectService *services.ProjectService
}

// NewModalHandler creates a new ModalHandler
func NewModalHandler(as *services.AMVService, gs *services.GFXService, ps *services.ProjectService) *ModalHandler {
	return &ModalHandler{amvService: as, gfxService: gs, projectService: ps}
}

// images resolves the gallery shown for a record
func (h *ModalHandler) images(kind services.ModalKind, id string) ([]string, error) {
	switch kind {
	case services.ModalAMV:
		a, err := h.amvService.GetByID(id)
		if err != nil {
			return nil, err
		}
		return []string{a.Thumbnail()}, nil
	case services.ModalGFX:
		g, err := h.gfxService.GetByID(id)
		if err != nil {
			return nil, err
		}
		return []string{g.Image}, nil
	case services.ModalProject:
		p, err := h.projectService.GetByID(id)
		if err != nil {
			return nil, err
		}
		return p.Images(), nil
	}
	return nil, errUnknownKind
}

var errUnknownKind = errors.New("unknown modal kind")

// OpenModal handles POST /api/modal/{kind}/{id}
func (h *ModalHandler) OpenModal(w http.ResponseWriter, r *http.Request) {
	kind := services.ModalKind(chi.URLParam(r, "kind"))
	id := chi.URLParam(r, "id")

	images, err := h.images(kind, id)
	switch {
	case errors.Is(err, errUnknownKind):
		respondError(w, http.StatusBadRequest, "Unknown modal kind")
		return
	case err != nil:
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}

	respondJSON(w, http.StatusOK, sessionFrom(r).Modal.Open(r.Context(), kind, id, images))
}

// GetModal handles GET /api/modal
func (h *ModalHandler) GetModal(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, sessionFrom(r).Modal.State())
}

// CloseModal handles DELETE /api/modal
func (h *ModalHandler) CloseModal(w http.ResponseWriter, r *http.Request) {
	m := sessionFrom(r).Modal
	m.Close()
	respondJSON(w, http.StatusOK, m.State())
}

// Next handles POST /api/modal/next
func (h *ModalHandler) Next(w http.ResponseWriter, r *http.Request) {
	respondModal(w)(sessionFrom(r).Modal.Next())
}

// Prev handles POST /api/modal/prev
func (h *ModalHandler) Prev(w http.ResponseWriter, r *http.Request) {
	respondModal(w)(sessionFrom(r).Modal.Prev())
}

// Select handles POST /api/modal/select/{index}
func (h *ModalHandler) Select(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid index")
		return
	}
	respondModal(w)(sessionFrom(r).Modal.Select(index))
}

func respondModal(w http.ResponseWriter) func(services.ModalState, error) {
	return func(st services.ModalState, err error) {
		switch {
		case errors.Is(err, services.ErrModalClosed):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrIndexOutOfRange):
			respondError(w, http.StatusBadRequest, err.Error())
		case err != nil:
			respondError(w, http.StatusInternalServerError, err.Error())
		default:
			respondJSON(w, http.StatusOK, st)
		}
	}
}
