package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFiles embed.FS

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
	"px": func(n int) string {
		return fmt.Sprintf("%dpx", n)
	},
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

// StaticFiles returns the stylesheet and script served under /static.
func StaticFiles() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}
