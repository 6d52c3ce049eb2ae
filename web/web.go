// Package web embeds the page templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
	"add":  func(a, b int) int { return a + b },
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// Static returns the asset tree served under /static
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// "static" is a fixed embedded directory.
		panic(err)
	}
	return sub
}
