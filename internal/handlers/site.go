package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"gansputra.dev/internal/config"
	"gansputra.dev/internal/models"
	"gansputra.dev/internal/services"
)

// SiteHandler renders the page shell and its metadata
type SiteHandler struct {
	cfg            *config.Config
	amvService     *services.AMVService
	gfxService     *services.GFXService
	projectService *services.ProjectService
	pages          *template.Template
	logger         *zap.Logger
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(
	cfg *config.Config,
	as *services.AMVService,
	gs *services.GFXService,
	ps *services.ProjectService,
	pages *template.Template,
	logger *zap.Logger,
) *SiteHandler {
	return &SiteHandler{
		cfg:            cfg,
		amvService:     as,
		gfxService:     gs,
		projectService: ps,
		pages:          pages,
		logger:         logger,
	}
}

type socialView struct {
	models.SocialLink
	SVG template.HTML `json:"svg"`
}

type sectionView struct {
	models.Section
	SVG template.HTML `json:"svg"`
}

func (h *SiteHandler) socialLinks() []socialView {
	links := make([]socialView, len(h.cfg.Social.Links))
	for i, l := range h.cfg.Social.Links {
		links[i] = socialView{SocialLink: l, SVG: l.Icon.SVG()}
	}
	return links
}

func sectionViews() []sectionView {
	views := make([]sectionView, len(models.Sections))
	for i, s := range models.Sections {
		views[i] = sectionView{Section: s, SVG: s.Icon.SVG()}
	}
	return views
}

// GetSite handles GET /api/site
func (h *SiteHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"site":     h.cfg.Site,
		"sections": sectionViews(),
		"social":   h.socialLinks(),
		"playlist": h.cfg.Playlist.Tracks,
	})
}

type indexData struct {
	Site          *models.Site
	Active        models.SectionID
	Sections      []sectionView
	Social        []socialView
	AMVs          []amvCard
	AMVTags       []string
	GFX           []models.GFXDesign
	GFXCategories []string
	Projects      []models.Project
	Technologies  []string
	Tracks        []models.Track
	Theme         models.MusicTheme
	ReducedMotion bool
	ColorScheme   models.ColorScheme
}

// Index handles GET /?section=
func (h *SiteHandler) Index(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	if raw := r.URL.Query().Get("section"); raw != "" {
		// Unknown sections land on the first one rather than failing.
		if _, err := sess.Navigator.Select(string(models.ResolveSection(raw))); err != nil {
			h.logger.Warn("Section select failed", zap.String("section", raw), zap.Error(err))
		}
	}

	reduced, _ := reducedMotion(r)
	sess.ReducedMotion.Set(reduced)
	scheme, _ := colorScheme(r)
	sess.ColorScheme.Set(scheme)

	data := indexData{
		Site:          h.cfg.Site,
		Active:        sess.Navigator.Active(),
		Sections:      sectionViews(),
		Social:        h.socialLinks(),
		AMVs:          amvCards(h.amvService.Filter(sess.AMVFilter.Get())),
		AMVTags:       h.amvService.Categories(),
		GFX:           h.gfxService.Filter(sess.GFXFilter.Get()),
		GFXCategories: h.gfxService.Categories(),
		Projects:      h.projectService.Filter(sess.ProjectFilter.Get()),
		Technologies:  h.projectService.Technologies(),
		Tracks:        h.cfg.Playlist.Tracks,
		Theme:         sess.Theme.Get(),
		ReducedMotion: reduced,
		ColorScheme:   scheme,
	}

	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, "index.html", data); err != nil {
		h.logger.Error("Failed to render page", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	acceptHints(w)
	_, _ = buf.WriteTo(w)
}
