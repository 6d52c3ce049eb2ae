package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"gansputra.dev/internal/generation"
	"gansputra.dev/internal/models"
)

// EffectsHandler serves frames of the decorative background effects
type EffectsHandler struct{}

// NewEffectsHandler creates a new EffectsHandler
func NewEffectsHandler() *EffectsHandler {
	return &EffectsHandler{}
}

type starFieldResponse struct {
	generation.Frame
	Theme models.MusicTheme `json:"theme"`
}

// StarField handles GET /api/effects/starfield?width=&height=&t=&signal=&seed=
// where t is in milliseconds and signal in [0, 1]
func (h *EffectsHandler) StarField(w http.ResponseWriter, r *http.Request) {
	width := clamp(parseIntParam(r, "width", 1280), 100, 4096)
	height := clamp(parseIntParam(r, "height", 720), 100, 4096)
	ms := parseIntParam(r, "t", 0)
	if ms < 0 {
		ms = 0
	}

	signal := 0.0
	if raw := r.URL.Query().Get("signal"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			respondError(w, http.StatusBadRequest, "Invalid signal")
			return
		}
		signal = v
	}

	seed := uint64(1)
	if raw := r.URL.Query().Get("seed"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid seed")
			return
		}
		seed = v
	}

	var renderer generation.Renderer = generation.NewStarField(float64(width), float64(height), seed)
	frame := renderer.Render(time.Duration(ms)*time.Millisecond, signal)

	respondJSON(w, http.StatusOK, starFieldResponse{
		Frame: frame,
		Theme: sessionFrom(r).Theme.Get(),
	})
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
