package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"gansputra.dev/internal/config"
	"gansputra.dev/internal/middleware"
	"gansputra.dev/internal/services"
	"gansputra.dev/internal/state"
	"gansputra.dev/web"
)

// Deps holds what the router needs beyond the config
type Deps struct {
	Config   *config.Config
	Sessions *state.Sessions[*services.Session]
	Recorder services.Recorder
	Client   *http.Client
	Logger   *zap.Logger
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(d Deps) (http.Handler, error) {
	cfg := d.Config
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize services
	amvService := services.NewAMVService(cfg.AMVs)
	gfxService := services.NewGFXService(cfg.GFX)
	projectService := services.NewProjectService(cfg.Projects)
	relay := services.NewRelay(cfg.Contact.Endpoint, cfg.Contact.AccessKey, d.Client)
	contactService := services.NewContactService(relay, d.Recorder, services.ContactOptions{
		Recipient:       cfg.Contact.Recipient,
		Timeout:         cfg.Contact.Timeout,
		ConfirmDuration: cfg.Contact.ConfirmDuration,
		AutoFallback:    cfg.Contact.AutoFallback,
	}, logger)

	pages, err := web.Templates()
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	siteHandler := NewSiteHandler(cfg, amvService, gfxService, projectService, pages, logger)
	sectionHandler := NewSectionHandler()
	showcaseHandler := NewShowcaseHandler(amvService, gfxService)
	projectHandler := NewProjectHandler(projectService)
	modalHandler := NewModalHandler(amvService, gfxService, projectService)
	playerHandler := NewPlayerHandler(logger)
	settingsHandler := NewSettingsHandler(cfg.Intro)
	contactHandler := NewContactHandler(contactService)
	effectsHandler := NewEffectsHandler()

	// Static files carry no visitor state
	fileServer := http.FileServerFS(web.Static())
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	session := withSession(d.Sessions)
	r.With(session).Get("/", siteHandler.Index)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Group(func(r chi.Router) {
			r.Use(session)

			r.Get("/site", siteHandler.GetSite)

			r.Get("/sections", sectionHandler.GetSections)
			r.Get("/sections/active", sectionHandler.GetSections)
			r.Post("/sections/active", sectionHandler.SelectSection)
			r.Post("/sections/observe", sectionHandler.ObserveSection)

			r.Get("/amvs", showcaseHandler.ListAMVs)
			r.Get("/amvs/categories", showcaseHandler.AMVCategories)
			r.Get("/amvs/{id}", showcaseHandler.GetAMV)
			r.Get("/gfx", showcaseHandler.ListGFX)
			r.Get("/gfx/categories", showcaseHandler.GFXCategories)
			r.Get("/gfx/{id}", showcaseHandler.GetGFX)

			// Project endpoints
			r.Get("/projects", projectHandler.ListProjects)
			r.Get("/projects/technologies", projectHandler.ListTechnologies)
			r.Get("/projects/{id}", projectHandler.GetProject)

			r.Get("/modal", modalHandler.GetModal)
			r.Delete("/modal", modalHandler.CloseModal)
			r.Post("/modal/next", modalHandler.Next)
			r.Post("/modal/prev", modalHandler.Prev)
			r.Post("/modal/select/{index}", modalHandler.Select)
			r.Post("/modal/{kind}/{id}", modalHandler.OpenModal)

			r.Get("/player", playerHandler.GetPlayer)
			r.Post("/player/{action}", playerHandler.Action)
			r.Post("/player/select/{index}", playerHandler.SelectTrack)
			r.Get("/theme", playerHandler.GetTheme)
			r.Get("/theme/stream", playerHandler.StreamTheme)

			r.Get("/settings/reduced-motion", settingsHandler.GetReducedMotion)
			r.Post("/settings/reduced-motion", settingsHandler.SetReducedMotion)
			r.Get("/settings/color-scheme", settingsHandler.GetColorScheme)
			r.Post("/settings/color-scheme", settingsHandler.SetColorScheme)
			r.Get("/intro", settingsHandler.GetIntro)
			r.Post("/intro", settingsHandler.CompleteIntro)

			r.Get("/contact", contactHandler.GetForm)
			r.Post("/contact", contactHandler.Submit)
			r.Post("/contact/reset", contactHandler.Reset)

			r.Get("/effects/starfield", effectsHandler.StarField)
		})
	})

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, `{"error":"Failed to encode response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a JSON body into dst. An empty body leaves dst unchanged.
func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
