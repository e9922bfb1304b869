// Package router sets up all HTTP routes and middleware chains for the
// SlidePress web app. Everything hangs off one public group; only the
// history pages require a signed-in user.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"slidepress/internal/handlers"
	"slidepress/internal/middleware"
	"slidepress/internal/session"
	"slidepress/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. secure marks CSRF cookies HTTPS-only.
func New(sessionStore *session.Store, secure bool, app *handlers.App, auth *handlers.Auth, history *handlers.History, export *handlers.Export) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.NewCSRF(secure))
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Static assets from the embedded filesystem.
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("static assets missing from embed: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Generation and preview — open to everyone, signed in or not.
	r.Get("/", app.Home)
	r.Post("/generate", app.Generate)
	r.Route("/p/{id}", func(r chi.Router) {
		r.Get("/", app.Preview)
		r.Get("/print", app.PrintPage)
		r.Get("/export/pdf", export.PDF)
		r.Get("/export/pptx", export.PPTX)
	})

	// Accounts.
	r.Get("/login", auth.LoginPage)
	r.Post("/login", auth.LoginSubmit)
	r.Get("/signup", auth.SignupPage)
	r.Post("/signup", auth.SignupSubmit)
	r.Post("/logout", auth.Logout)

	// History — saved decks, owner only.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/history", history.List)
		r.Post("/history/{id}/delete", history.Delete)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
