package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gansputra.dev/internal/services"
)

// PlayerHandler drives the audio player and streams its theme accent
type PlayerHandler struct {
	logger *zap.Logger
}

// NewPlayerHandler creates a new PlayerHandler
func NewPlayerHandler(logger *zap.Logger) *PlayerHandler {
	return &PlayerHandler{logger: logger}
}

// GetPlayer handles GET /api/player
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, sessionFrom(r).Player.State())
}

// Action handles POST /api/player/{action}
func (h *PlayerHandler) Action(w http.ResponseWriter, r *http.Request) {
	p := sessionFrom(r).Player

	var st services.PlayerState
	switch action := chi.URLParam(r, "action"); action {
	case "play":
		st = p.Play()
	case "pause":
		st = p.Pause()
	case "toggle":
		st = p.Toggle()
	case "next":
		st = p.Next()
	case "prev":
		st = p.Prev()
	case "ended":
		st = p.Ended()
	case "seek":
		var req struct {
			Fraction *float64 `json:"fraction"`
			X        float64  `json:"x"`
			Width    float64  `json:"width"`
		}
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Fraction != nil {
			st = p.Seek(*req.Fraction)
		} else {
			st = p.SeekClick(req.X, req.Width)
		}
	case "timeupdate":
		var req struct {
			CurrentTime float64 `json:"current_time"`
			Duration    float64 `json:"duration"`
		}
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		st = p.TimeUpdate(req.CurrentTime, req.Duration)
	default:
		respondError(w, http.StatusNotFound, "Unknown player action: "+action)
		return
	}
	respondJSON(w, http.StatusOK, st)
}

// SelectTrack handles POST /api/player/select/{index}
func (h *PlayerHandler) SelectTrack(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid index")
		return
	}
	st, err := sessionFrom(r).Player.SelectTrack(index)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, st)
}

// GetTheme handles GET /api/theme
func (h *PlayerHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, sessionFrom(r).Theme.Get())
}

// StreamTheme handles GET /api/theme/stream as Server-Sent Events. The
// current accent is sent first, then every change until the client leaves.
func (h *PlayerHandler) StreamTheme(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	updates, cancel := sessionFrom(r).Theme.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case theme, ok := <-updates:
			if !ok {
				return
			}
			data, err := json.Marshal(theme)
			if err != nil {
				h.logger.Error("encode theme", zap.Error(err))
				return
			}
			if _, err := fmt.Fprintf(w, "event: theme\ndata: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
