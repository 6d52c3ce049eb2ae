package handlers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"gansputra.dev/internal/config"
	"gansputra.dev/internal/icons"
	"gansputra.dev/internal/models"
	"gansputra.dev/internal/services"
	"gansputra.dev/internal/state"
)

var pink = models.MusicTheme{Color: "#ff0080", BaseHue: 320, RangeHue: 40}

func testConfig(relayURL string) *config.Config {
	cfg := config.Defaults()
	cfg.CarouselInterval = time.Hour
	cfg.Contact.Endpoint = relayURL
	cfg.Contact.AccessKey = "key"
	cfg.Contact.Recipient = "628123"
	cfg.Contact.Timeout = time.Second
	cfg.Contact.ConfirmDuration = time.Hour
	cfg.Site = &models.Site{Name: "Gansputra", Description: "Portfolio", Keywords: []string{"Go"}}
	cfg.AMVs = &models.AMVList{AMVs: []models.AMV{
		{ID: "1", Title: "Gojo", VideoURL: "https://youtu.be/abc123", Tags: []string{"AMV", "Edit"}},
		{ID: "2", Title: "Loop", VideoURL: "https://www.tiktok.com/@x/video/1", Tags: []string{"Edit"}},
	}}
	cfg.GFX = &models.GFXList{Designs: []models.GFXDesign{
		{ID: "g1", Title: "Poster", Image: "/gfx/1.jpg", Category: "Poster"},
		{ID: "g2", Title: "Banner", Image: "/gfx/2.jpg", Category: "Banner"},
	}}
	cfg.Projects = &models.ProjectList{Projects: []models.Project{
		{ID: "p1", Title: "Site", Stack: []string{"Go", "HTMX"}, PreviewImage: "/p1.jpg", Gallery: []string{"/a.jpg", "/b.jpg", "/c.jpg"}},
		{ID: "p2", Title: "Bot", Stack: []string{"Python"}, PreviewImage: "/p2.jpg"},
	}}
	cfg.Social = &models.SocialList{Links: []models.SocialLink{
		{Platform: "GitHub", Icon: icons.GitHub, URL: "https://github.com/x"},
	}}
	cfg.Playlist = &models.Playlist{Tracks: []models.Track{
		{Title: "One", Src: "/1.mp3", Theme: &pink},
		{Title: "Two", Src: "/2.mp3"},
	}}
	return cfg
}

type testServer struct {
	*httptest.Server
	client   *http.Client
	sessions *state.Sessions[*services.Session]
}

func newTestServer(t *testing.T, relayURL string) *testServer {
	t.Helper()
	cfg := testConfig(relayURL)

	newSession, err := services.NewSessionFactory(cfg.Playlist, cfg.CarouselInterval)
	require.NoError(t, err)
	sessions := state.NewSessions(time.Hour, newSession)

	router, err := SetupRoutes(Deps{
		Config:   cfg,
		Sessions: sessions,
		Client:   http.DefaultClient,
		Logger:   zap.NewNop(),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		srv.Close()
		sessions.Close()
	})
	return &testServer{Server: srv, client: &http.Client{Jar: jar}, sessions: sessions}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, s.URL+path, rd)
	require.NoError(t, err)
	resp, err := s.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func (s *testServer) json(t *testing.T, method, path string, body any, wantStatus int, dst any) {
	t.Helper()
	resp, data := s.do(t, method, path, body)
	require.Equal(t, wantStatus, resp.StatusCode, string(data))
	if dst != nil {
		require.NoError(t, json.Unmarshal(data, dst))
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, "http://unused.invalid")
	var got map[string]string
	srv.json(t, http.MethodGet, "/api/health", nil, http.StatusOK, &got)
	assert.Equal(t, "ok", got["status"])
}

func TestSessionCookieIsIssuedOnce(t *testing.T) {
	srv := newTestServer(t, "http://unused.invalid")

	resp, _ := srv.do(t, http.MethodGet, "/api/sections", nil)
	require.Len(t, resp.Cookies(), 1)
	assert.Equal(t, sessionCookie, resp.Cookies()[0].Name)

	resp, _ = srv.do(t, http.MethodGet, "/api/sections", nil)
	assert.Empty(t, resp.Cookies())
	assert.Equal(t, 1, srv.sessions.Len())
}

func TestSectionNavigation(t *testing.T) {
	srv := newTestServer(t, "http://unused.invalid")

	var got struct {
		Active  models.SectionID `json:"active"`
		Changed bool             `json:"changed"`
	}
	srv.json(t, http.MethodGet, "/api/sections/active", nil, http.StatusOK, &got)
	assert.Equal(t, models.SectionHero, got.Active)

	srv.json(t, http.MethodPost, "/api/sections/active", map[string]string{"section": "gfx"}, http.StatusOK, &got)
	assert.Equal(t, models.SectionGFX, got.Active)
	assert.True(t, got.Changed)

	srv.json(t, http.MethodPost, "/api/sections/observe", map[string]any{"section": "about", "ratio": 0.2}, http.StatusOK, &got)
	assert.Equal(t, models.SectionGFX, got.Active, "below threshold")
	assert.False(t, got.Changed)

	srv.json(t, http.MethodPost, "/api/sections/observe", map[string]any{"section": "about", "ratio": 0.8}, http.StatusOK, &got)
	assert.Equal(t, models.SectionAbout, got.Active)

	srv.json(t, http.MethodPost, "/api/sections/active", map[string]string{"section": "blog"}, http.StatusBadRequest, nil)
}

func TestAMVFilterIsRemembered(t *testing.T) {
	srv := newTestServer(t, "http://unused.invalid")

	var got struct {
		Filter string    `json:"filter"`
		AMVs   []amvCard `json:"amvs"`
	}
	srv.json(t, http.MethodGet, "/api/amvs?tag=AMV", nil, http.StatusOK, &got)
	require.Len(t, got.AMVs, 1)
	assert.Equal(t, "1", got.AMVs[0].ID)
	assert.Equal(t, "https://img.youtube.com/vi/abc123/hqdefault.jpg", got.AMVs[0].Thumbnail)

	srv.json(t, http.MethodGet, "/api/amvs", nil, http.StatusOK, &got)
	assert.Equal(t, "AMV", got.Filter, "filter persists in the session")
	assert.Len(t, got.AMVs, 1)

	srv.json(t, http.MethodGet, "/api/amvs?tag=", nil, http.StatusOK, &got)
	assert.Equal(t, services.AllTag, got.Filter)
	require.Len(t, got.AMVs, 2)

	var raw struct {
		AMVs []map[string]any `json:"amvs"`
	}
	srv.json(t, http.MethodGet, "/api/amvs", nil, http.StatusOK, &raw)
	require.Len(t, raw.AMVs, 2)
	assert.Equal(t, "https://www.youtube.com/embed/abc123?autoplay=1", raw.AMVs[0]["embed_url"])
	assert.NotContains(t, raw.AMVs[1], "embed_url", "non-YouTube videos have no embed")

	srv.json(t, http.MethodGet, "/api/amvs/9", nil, http.StatusNotFound, nil)
}

func TestGFXAndProjects(t *testing.T) {
	srv := newTestServer(t, "http://unused.invalid")

	var cats []string
	srv.json(t, http.MethodGet, "/api/gfx/categories", nil, http.StatusOK, &cats)
	assert.Equal(t, services.AllTag, cats[0])
	assert.ElementsMatch(t, []string{services.AllTag, "Poster", "Banner"}, cats)

	var projects struct {
		Projects []models.Project `json:"projects"`
	}
	srv.json(t, http.MethodGet, "/api/projects?tech=go", nil, http.StatusOK, &projects)
	require.Len(t, projects.Projects, 1)
	assert.Equal(t, "p1", projects.Projects[0].ID)

	srv.json(t, http.MethodGet, "/api/projects?tech=All&seed=nope", nil, http.StatusBadRequest, nil)

	var one struct {
		Images []string `json:"images"`
	}
	srv.json(t, http.MethodGet, "/api/projects/p2", nil, http.StatusOK, &one)
	assert.Equal(t, []string{"/p2.jpg"}, one.Images, "preview image stands in for a missing gallery")
}

func TestModalLifecycle(t *testing.T) {
	srv := newTestServer(t, "http://unused.invalid")

	var st services.ModalState
	srv.json(t, http.MethodPost, "/api/modal/next", nil, http.StatusConflict, nil)

	srv.json(t, http.MethodPost, "/api/modal/project/p1", nil, http.StatusOK, &st)
	assert.True(t, st.Open)
	assert.True(t, st.Auto)
	assert.Equal(t, "/a.jpg", st.Current)

	srv.json(t, http.MethodPost, "/api/modal/prev", nil, http.StatusOK, &st)
	assert.Equal(t, 2, st.Index, "prev wraps to the last image")

	srv.json(t, http.MethodPost, "/api/modal/select/1", nil, http.StatusOK, &st)
	assert.Equal(t, "/b.jpg", st.Current)
	srv.json(t, http.MethodPost, "/api/modal/select/7", nil, http.StatusBadRequest, nil)

	srv.json(t, http.MethodDelete, "/api/modal", nil, http.StatusOK, &st)
	assert.False(t, st.Open)

	srv.json(t, http.MethodPost, "/api/modal/gfx/g1", nil, http.StatusOK, &st)
	assert.Equal(t, "/gfx/1.jpg", st.Current)
	assert.False(t, st.Auto)

	srv.json(t, http.MethodPost, "/api/modal/video/1", nil, http.StatusBadRequest, nil)
	srv.json(t, http.MethodPost, "/api/modal/amv/404", nil, http.StatusNotFound, nil)
}

func TestPlayerActions(t *testing.T) {
	srv := newTestServer(t, "http://unused.invalid")

	var st services.PlayerState
	srv.json(t, http.MethodPost, "/api/player/toggle", nil, http.StatusOK, &st)
	assert.True(t, st.Playing)

	srv.json(t, http.MethodPost, "/api/player/timeupdate", map[string]float64{"current_time": 10, "duration": 40}, http.StatusOK, &st)
	assert.InDelta(t, 25, st.Progress, 1e-9)

	srv.json(t, http.MethodPost, "/api/player/seek", map[string]float64{"x": 30, "width": 40}, http.StatusOK, &st)
	assert.InDelta(t, 30, st.CurrentTime, 1e-9)

	srv.json(t, http.MethodPost, "/api/player/next", nil, http.StatusOK, &st)
	assert.Equal(t, 1, st.Index)
	assert.True(t, st.Playing)

	var theme models.MusicTheme
	srv.json(t, http.MethodGet, "/api/theme", nil, http.StatusOK, &theme)
	assert.Equal(t, models.DefaultTheme, theme)

	srv.json(t, http.MethodPost, "/api/player/ended", nil, http.StatusOK, &st)
	assert.Equal(t, 0, st.Index, "ended on the last track wraps")
	srv.json(t, http.MethodGet, "/api/theme", nil, http.StatusOK, &theme)
	assert.Equal(t, pink, theme)

	srv.json(t, http.MethodPost, "/api/player/select/5", nil, http.StatusBadRequest, nil)
	srv.json(t, http.MethodPost, "/api/player/rewind", nil, http.StatusNotFound, nil)
}

func readEvent(t *testing.T, rd *bufio.Reader) (string, string) {
	t.Helper()
	var event, data string
	for {
		line, err := rd.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			if event != "" {
				return event, data
			}
		case strings.HasPrefix(line, "event: "):
			event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestThemeStream(t *testing.T) {
	srv := newTestServer(t, "http://unused.invalid")
	// Establish the session before opening the stream.
	srv.do(t, http.MethodGet, "/api/player", nil)

	resp, err := srv.client.Get(srv.URL + "/api/theme/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	rd := bufio.NewReader(resp.Body)
	event, data := readEvent(t, rd)
	assert.Equal(t, "theme", event)
	var theme models.MusicTheme
	require.NoError(t, json.Unmarshal([]byte(data), &theme))
	assert.Equal(t, pink, theme)

	srv.do(t, http.MethodPost, "/api/player/next", nil)
	_, data = readEvent(t, rd)
	require.NoError(t, json.Unmarshal([]byte(data), &theme))
	assert.Equal(t, models.DefaultTheme, theme)
}

func TestReducedMotion(t *testing.T) {
	srv := newTestServer(t, "http://unused.invalid")

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/settings/reduced-motion", nil)
	require.NoError(t, err)
	req.Header.Set(reducedMotionHint, "reduce")
	resp, err := srv.client.Do(req)
	require.NoError(t, err)
	var got struct {
		ReducedMotion bool   `json:"reduced_motion"`
		Source        string `json:"source"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	resp.Body.Close()
	assert.True(t, got.ReducedMotion)
	assert.Equal(t, "client-hint", got.Source)

	srv.json(t, http.MethodPost, "/api/settings/reduced-motion", nil, http.StatusOK, &got)
	assert.True(t, got.ReducedMotion, "toggle from the default")

	srv.json(t, http.MethodPost, "/api/settings/reduced-motion", nil, http.StatusOK, &got)
	assert.False(t, got.ReducedMotion, "toggle reads the stored cookie")

	srv.json(t, http.MethodPost, "/api/settings/reduced-motion", map[string]bool{"value": true}, http.StatusOK, &got)
	srv.json(t, http.MethodGet, "/api/settings/reduced-motion", nil, http.StatusOK, &got)
	assert.True(t, got.ReducedMotion)
	assert.Equal(t, "cookie", got.Source)
}

func TestColorScheme(t *testing.T) {
	srv := newTestServer(t, "http://unused.invalid")

	var got struct {
		ColorScheme models.ColorScheme `json:"color_scheme"`
		Source      string             `json:"source"`
	}
	srv.json(t, http.MethodGet, "/api/settings/color-scheme", nil, http.StatusOK, &got)
	assert.Equal(t, models.SchemeDark, got.ColorScheme)
	assert.Equal(t, "default", got.Source)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/settings/color-scheme", nil)
	require.NoError(t, err)
	req.Header.Set(colorSchemeHint, "light")
	resp, err := srv.client.Do(req)
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	resp.Body.Close()
	assert.Equal(t, models.SchemeLight, got.ColorScheme)
	assert.Equal(t, "client-hint", got.Source)
	assert.Contains(t, resp.Header.Get("Accept-CH"), colorSchemeHint)

	srv.json(t, http.MethodPost, "/api/settings/color-scheme", nil, http.StatusOK, &got)
	assert.Equal(t, models.SchemeLight, got.ColorScheme, "toggle from the default")

	srv.json(t, http.MethodPost, "/api/settings/color-scheme", nil, http.StatusOK, &got)
	assert.Equal(t, models.SchemeDark, got.ColorScheme, "toggle reads the stored cookie")

	srv.json(t, http.MethodPost, "/api/settings/color-scheme", map[string]string{"value": "sepia"}, http.StatusBadRequest, nil)

	srv.json(t, http.MethodPost, "/api/settings/color-scheme", map[string]string{"value": "light"}, http.StatusOK, &got)
	srv.json(t, http.MethodGet, "/api/settings/color-scheme", nil, http.StatusOK, &got)
	assert.Equal(t, models.SchemeLight, got.ColorScheme)
	assert.Equal(t, "cookie", got.Source)

	_, body := srv.do(t, http.MethodGet, "/", nil)
	assert.Contains(t, string(body), `<html lang="en" data-theme="light">`)
}

func TestIntroShownOnce(t *testing.T) {
	srv := newTestServer(t, "http://unused.invalid")

	var got struct {
		Show bool `json:"show"`
	}
	srv.json(t, http.MethodGet, "/api/intro", nil, http.StatusOK, &got)
	assert.True(t, got.Show)
	srv.json(t, http.MethodPost, "/api/intro", nil, http.StatusOK, nil)
	srv.json(t, http.MethodGet, "/api/intro", nil, http.StatusOK, &got)
	assert.False(t, got.Show)
}

func TestContactSubmit(t *testing.T) {
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer relay.Close()
	srv := newTestServer(t, relay.URL)

	var got contactResponse
	srv.json(t, http.MethodPost, "/api/contact", map[string]string{"name": "A"}, http.StatusBadRequest, &got)
	assert.NotEmpty(t, got.Error)

	form := map[string]string{"name": "Rin", "email": "rin@example.com", "message": "hello"}
	srv.json(t, http.MethodPost, "/api/contact", form, http.StatusOK, &got)
	assert.Equal(t, services.FormSent, got.Form.Status)
	assert.Empty(t, got.OpenURL)

	srv.json(t, http.MethodGet, "/api/contact", nil, http.StatusOK, &got)
	assert.Equal(t, services.FormSent, got.Form.Status)

	srv.json(t, http.MethodPost, "/api/contact/reset", nil, http.StatusOK, &got)
	assert.Equal(t, services.FormIdle, got.Form.Status)
}

func TestContactFallback(t *testing.T) {
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer relay.Close()
	srv := newTestServer(t, relay.URL)

	var got contactResponse
	form := map[string]string{"name": "Rin", "email": "rin@example.com", "message": "hello"}
	srv.json(t, http.MethodPost, "/api/contact", form, http.StatusOK, &got)
	assert.Equal(t, services.FormFallback, got.Form.Status)
	assert.True(t, strings.HasPrefix(got.Form.FallbackURL, "https://wa.me/628123?text="))
	assert.Empty(t, got.OpenURL, "fallback is offered, not opened")
}

func TestStarField(t *testing.T) {
	srv := newTestServer(t, "http://unused.invalid")

	var got starFieldResponse
	srv.json(t, http.MethodGet, "/api/effects/starfield?width=500&height=800&t=1000&seed=7", nil, http.StatusOK, &got)
	assert.Len(t, got.Stars, 50)
	assert.InDelta(t, 360, got.Horizon, 1e-9)
	assert.Equal(t, pink, got.Theme)

	var again starFieldResponse
	srv.json(t, http.MethodGet, "/api/effects/starfield?width=500&height=800&t=1000&seed=7", nil, http.StatusOK, &again)
	assert.Equal(t, got.Stars, again.Stars, "frames are deterministic")

	srv.json(t, http.MethodGet, "/api/effects/starfield?width=99999", nil, http.StatusOK, &got)
	assert.InDelta(t, 4096, got.Width, 1e-9)

	for _, signal := range []string{"loud", "NaN", "Inf", "-Inf"} {
		var bad map[string]string
		srv.json(t, http.MethodGet, "/api/effects/starfield?signal="+signal, nil, http.StatusBadRequest, &bad)
		assert.Equal(t, "Invalid signal", bad["error"], signal)
	}
}

func TestSiteAndIndex(t *testing.T) {
	srv := newTestServer(t, "http://unused.invalid")

	var site struct {
		Site   models.Site `json:"site"`
		Social []struct {
			Platform string `json:"platform"`
			SVG      string `json:"svg"`
		} `json:"social"`
	}
	srv.json(t, http.MethodGet, "/api/site", nil, http.StatusOK, &site)
	assert.Equal(t, "Gansputra", site.Site.Name)
	require.Len(t, site.Social, 1)
	assert.Contains(t, site.Social[0].SVG, "<svg")

	resp, body := srv.do(t, http.MethodGet, "/?section=projects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), `data-active="projects"`)
	assert.Equal(t, []string{"projects"}, activeDockItems(t, body))
	assert.Contains(t, string(body), "Gansputra")

	resp, body = srv.do(t, http.MethodGet, "/?section=nowhere", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `data-active="hero"`)

	resp, _ = srv.do(t, http.MethodGet, "/static/app.js", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStaticAndHealthSkipSessions(t *testing.T) {
	srv := newTestServer(t, "http://unused.invalid")

	for _, path := range []string{"/static/app.js", "/static/style.css", "/api/health"} {
		resp, _ := srv.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Empty(t, resp.Cookies(), path)
	}
	assert.Zero(t, srv.sessions.Len())

	resp, _ := srv.do(t, http.MethodGet, "/", nil)
	require.Len(t, resp.Cookies(), 1)
	assert.Equal(t, sessionCookie, resp.Cookies()[0].Name)
	assert.Equal(t, 1, srv.sessions.Len())
}

// activeDockItems returns the data-section of every highlighted nav entry
func activeDockItems(t *testing.T, body []byte) []string {
	t.Helper()
	doc, err := html.Parse(bytes.NewReader(body))
	require.NoError(t, err)

	var active []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			var class, section string
			for _, a := range n.Attr {
				switch a.Key {
				case "class":
					class = a.Val
				case "data-section":
					section = a.Val
				}
			}
			if section != "" && strings.Contains(class, "active") {
				active = append(active, section)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return active
}
