package handlers

import (
	"errors"
	"net/http"

	"gansputra.dev/internal/models"
	"gansputra.dev/internal/services"
)

// ContactHandler handles the contact form
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

type contactResponse struct {
	Form services.FormView `json:"form"`
	// OpenURL asks the client to open the link in a new tab.
	OpenURL string `json:"open_url,omitempty"`
	Error   string `json:"error,omitempty"`
}

// GetForm handles GET /api/contact
func (h *ContactHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, contactResponse{Form: sessionFrom(r).Contact.View()})
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input models.ContactForm
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var resp contactResponse
	opener := services.OpenerFunc(func(link string) { resp.OpenURL = link })

	view, err := h.contactService.Submit(r.Context(), sessionFrom(r).Contact, input, opener)
	resp.Form = view
	switch {
	case errors.Is(err, services.ErrInvalidForm):
		resp.Error = err.Error()
		respondJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, services.ErrSubmitInFlight):
		resp.Error = err.Error()
		respondJSON(w, http.StatusConflict, resp)
	case err != nil:
		resp.Error = err.Error()
		respondJSON(w, http.StatusInternalServerError, resp)
	default:
		respondJSON(w, http.StatusOK, resp)
	}
}

// Reset handles POST /api/contact/reset
func (h *ContactHandler) Reset(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, contactResponse{Form: sessionFrom(r).Contact.Reset()})
}
