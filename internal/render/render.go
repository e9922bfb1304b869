// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the web interface.
// All pages share one base layout; the slide partial is the single
// template used to draw a slide, both in the interactive preview and in
// the print page the PDF exporter rasterizes.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"slidepress/internal/layout"
	"slidepress/internal/markdown"
	"slidepress/internal/middleware"
	"slidepress/internal/models"
	"slidepress/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Session   *session.Data  // Current session (nil if none loaded)
	CSRFToken string         // CSRF token for forms
	Data      map[string]any // Page-specific data
	Flashes   []Flash        // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// standaloneTemplates lists templates that render as full HTML pages
// without the base layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login":  true,
	"signup": true,
	"print":  true,
}

// pageTemplates lists every page template paired with the shared
// partials at parse time.
var pageTemplates = []string{
	"home", "preview", "history", "login", "signup", "print",
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. When devMode is true, templates load CSS from the local
// static mount without cache busting so edits show up on reload.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// isDev lets templates skip cache-busting query strings in dev.
			"isDev": func() bool { return devMode },
			// markdown renders slide narrative text to trusted HTML.
			"markdown": func(source string) template.HTML {
				out, err := markdown.ToHTML(source)
				if err != nil {
					return template.HTML(template.HTMLEscapeString(source))
				}
				return template.HTML(out)
			},
			// Layout helpers shared with the exporters, so the preview
			// never disagrees with a downloaded file.
			"spec": layout.For,
			"advantages": func(points []string) []string {
				adv, _ := layout.SplitComparison(points)
				return adv
			},
			"challenges": func(points []string) []string {
				_, chl := layout.SplitComparison(points)
				return chl
			},
			"columnsLeft": func(points []string) []string {
				left, _ := layout.Columns(points)
				return left
			},
			"columnsRight": func(points []string) []string {
				_, right := layout.Columns(points)
				return right
			},
			"conclusionPoints": layout.ConclusionPoints,
			"advantagesLabel":  func() string { return layout.AdvantagesLabel },
			"challengesLabel":  func() string { return layout.ChallengesLabel },
			"styleOptions": func() []models.Style {
				return []models.Style{models.StyleProfessional, models.StyleMinimal, models.StyleCreative}
			},
		},
	}

	for _, name := range pageTemplates {
		files := []string{"templates/" + name + ".html", "templates/slide.html"}
		root := name + ".html"
		if !standaloneTemplates[name] {
			files = append([]string{"templates/base.html"}, files...)
			root = "base.html"
		}

		tmpl, err := template.New(root).Funcs(r.funcMap).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Page renders a full page. The session and CSRF token are injected from
// the request context when the caller did not set them.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())

	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	execName := "base.html"
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	if err := executeTemplate(w, tmpl, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Print renders the print variant of a presentation to an arbitrary
// writer. The PDF exporter uses this to build the HTML it rasterizes.
func (rn *Renderer) Print(w io.Writer, p *models.Presentation) error {
	tmpl, ok := rn.templates["print"]
	if !ok {
		return fmt.Errorf("template %q not found", "print")
	}
	return tmpl.ExecuteTemplate(w, "print.html", &PageData{
		Title: p.Topic,
		Data:  map[string]any{"Presentation": p},
	})
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}
