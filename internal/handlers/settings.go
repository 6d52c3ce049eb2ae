package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"gansputra.dev/internal/config"
	"gansputra.dev/internal/models"
)

const (
	reducedMotionCookie = "reduced_motion"
	colorSchemeCookie   = "color_scheme"
	introCookie         = "seen_intro"

	// Client hints mirroring the prefers-* media queries.
	reducedMotionHint = "Sec-CH-Prefers-Reduced-Motion"
	colorSchemeHint   = "Sec-CH-Prefers-Color-Scheme"

	preferenceMaxAge = 365 * 24 * time.Hour
)

// acceptHints advertises the client hints the settings are resolved from
func acceptHints(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", reducedMotionHint+", "+colorSchemeHint)
}

func setPreference(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(preferenceMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// SettingsHandler handles the reduced-motion preference and the intro gate
type SettingsHandler struct {
	intro config.IntroMode
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(intro config.IntroMode) *SettingsHandler {
	return &SettingsHandler{intro: intro}
}

// reducedMotion resolves the preference: stored cookie first, then the
// OS-level client hint
func reducedMotion(r *http.Request) (bool, string) {
	if c, err := r.Cookie(reducedMotionCookie); err == nil {
		if v, err := strconv.ParseBool(c.Value); err == nil {
			return v, "cookie"
		}
	}
	if hint := r.Header.Get(reducedMotionHint); hint != "" {
		return strings.EqualFold(strings.TrimSpace(hint), "reduce"), "client-hint"
	}
	return false, "default"
}

// GetReducedMotion handles GET /api/settings/reduced-motion
func (h *SettingsHandler) GetReducedMotion(w http.ResponseWriter, r *http.Request) {
	acceptHints(w)
	v, source := reducedMotion(r)
	sessionFrom(r).ReducedMotion.Set(v)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"reduced_motion": v,
		"source":         source,
	})
}

// SetReducedMotion handles POST /api/settings/reduced-motion. A body of
// {"value": bool} sets the flag; an empty body toggles it.
func (h *SettingsHandler) SetReducedMotion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value *bool `json:"value"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	current, _ := reducedMotion(r)
	next := !current
	if req.Value != nil {
		next = *req.Value
	}

	sessionFrom(r).ReducedMotion.Set(next)
	setPreference(w, reducedMotionCookie, strconv.FormatBool(next))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"reduced_motion": next,
		"source":         "cookie",
	})
}

// colorScheme resolves the palette: stored cookie first, then the OS-level
// client hint, then the site default
func colorScheme(r *http.Request) (models.ColorScheme, string) {
	if c, err := r.Cookie(colorSchemeCookie); err == nil {
		if v, err := models.ParseColorScheme(c.Value); err == nil {
			return v, "cookie"
		}
	}
	if hint := r.Header.Get(colorSchemeHint); hint != "" {
		if v, err := models.ParseColorScheme(strings.ToLower(strings.TrimSpace(hint))); err == nil {
			return v, "client-hint"
		}
	}
	return models.DefaultColorScheme, "default"
}

// GetColorScheme handles GET /api/settings/color-scheme
func (h *SettingsHandler) GetColorScheme(w http.ResponseWriter, r *http.Request) {
	acceptHints(w)
	v, source := colorScheme(r)
	sessionFrom(r).ColorScheme.Set(v)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"color_scheme": v,
		"source":       source,
	})
}

// SetColorScheme handles POST /api/settings/color-scheme. A body of
// {"value": "dark"|"light"} sets the scheme; an empty body toggles it.
func (h *SettingsHandler) SetColorScheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value *string `json:"value"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	current, _ := colorScheme(r)
	next := current.Toggle()
	if req.Value != nil {
		v, err := models.ParseColorScheme(*req.Value)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		next = v
	}

	sessionFrom(r).ColorScheme.Set(next)
	setPreference(w, colorSchemeCookie, string(next))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"color_scheme": next,
		"source":       "cookie",
	})
}

// showIntro reports whether the splash intro should play
func (h *SettingsHandler) showIntro(r *http.Request) bool {
	if h.intro == config.IntroAlways {
		return true
	}
	_, err := r.Cookie(introCookie)
	return err != nil
}

// GetIntro handles GET /api/intro
func (h *SettingsHandler) GetIntro(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"show": h.showIntro(r),
		"mode": h.intro,
	})
}

// CompleteIntro handles POST /api/intro, marking the intro seen for the
// browser session
func (h *SettingsHandler) CompleteIntro(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     introCookie,
		Value:    "true",
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"show": h.intro == config.IntroAlways,
		"mode": h.intro,
	})
}
