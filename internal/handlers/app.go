// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains all HTTP handlers for the web interface:
// generation, preview, exports, history, and authentication.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"slidepress/internal/cache"
	"slidepress/internal/generator"
	"slidepress/internal/middleware"
	"slidepress/internal/models"
	"slidepress/internal/render"
	"slidepress/internal/session"
	"slidepress/internal/store"
)

// App groups the generation and preview handlers.
type App struct {
	renderer  *render.Renderer
	sessions  *session.Store
	generator *generator.Generator
	cache     *cache.PresentationCache
	guard     *cache.GenerationGuard
	history   *store.HistoryStore
}

// NewApp creates the App handler group.
func NewApp(renderer *render.Renderer, sessions *session.Store, gen *generator.Generator, pcache *cache.PresentationCache, guard *cache.GenerationGuard, history *store.HistoryStore) *App {
	return &App{
		renderer:  renderer,
		sessions:  sessions,
		generator: gen,
		cache:     pcache,
		guard:     guard,
		history:   history,
	}
}

// Home renders the landing page with the generation form. Signed-in
// users also see their most recent presentations.
func (a *App) Home(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Topic": "",
		"Style": models.StyleProfessional,
	}

	sess := middleware.SessionFromCtx(r.Context())
	if sess.IsAuthenticated() {
		recent, err := a.history.ListByUser(sess.UserID)
		if err != nil {
			slog.Error("history list failed", "user_id", sess.UserID, "error", err)
		} else {
			if len(recent) > 5 {
				recent = recent[:5]
			}
			data["Recent"] = recent
		}
	}

	a.renderer.Page(w, r, "home", &render.PageData{
		Title: "Home",
		Data:  data,
	})
}

// Generate handles the generation form submit. It holds a per-session
// guard so a double submit cannot start two generations, runs the
// generator (falling back to synthesized content when no provider
// answers), caches the result, and redirects to the preview.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	topic := strings.TrimSpace(r.FormValue("topic"))
	style, ok := models.ParseStyle(r.FormValue("style"))
	if !ok {
		style = models.StyleProfessional
	}

	fail := func(msg string) {
		a.renderer.Page(w, r, "home", &render.PageData{
			Title:   "Home",
			Data:    map[string]any{"Topic": topic, "Style": style},
			Flashes: []render.Flash{{Type: "error", Message: msg}},
		})
	}

	if msg := validateTopic(topic); msg != "" {
		fail(msg)
		return
	}

	// The guard is keyed by session, so signed-out visitors need one too.
	sessionID := a.sessions.ID(r)
	if sessionID == "" {
		id, err := a.sessions.Create(r.Context(), w, &session.Data{})
		if err != nil {
			slog.Error("anonymous session create failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		sessionID = id
	}

	acquired, err := a.guard.TryAcquire(r.Context(), sessionID)
	if err != nil {
		// Guard storage down: generate anyway rather than block everyone.
		slog.Warn("generation guard unavailable", "error", err)
		acquired = true
	} else if !acquired {
		fail("A presentation is already being generated for this session. Please wait for it to finish.")
		return
	}
	defer a.guard.Release(r.Context(), sessionID)

	slides, source := a.generator.Generate(r.Context(), topic, style)
	p := generator.Normalize(slides, topic, style)

	slog.Info("presentation generated",
		"id", p.ID, "topic", topic, "style", style, "slides", len(slides), "source", source)

	a.cache.Set(r.Context(), p)

	sess := middleware.SessionFromCtx(r.Context())
	if sess.IsAuthenticated() {
		if err := a.history.Save(sess.UserID, p); err != nil {
			slog.Error("history save failed", "id", p.ID, "error", err)
		}
	}

	http.Redirect(w, r, "/p/"+p.ID.String(), http.StatusSeeOther)
}

// Preview renders the interactive slide preview.
func (a *App) Preview(w http.ResponseWriter, r *http.Request) {
	p := a.lookup(w, r)
	if p == nil {
		return
	}

	a.renderer.Page(w, r, "preview", &render.PageData{
		Title: p.Topic,
		Data:  map[string]any{"Presentation": p},
	})
}

// PrintPage renders the standalone print view of a presentation. The
// PDF exporter rasterizes this same page.
func (a *App) PrintPage(w http.ResponseWriter, r *http.Request) {
	p := a.lookup(w, r)
	if p == nil {
		return
	}

	a.renderer.Page(w, r, "print", &render.PageData{
		Title: p.Topic,
		Data:  map[string]any{"Presentation": p},
	})
}

// lookup resolves the {id} URL parameter to a presentation, writing a
// 404 and returning nil when it cannot.
func (a *App) lookup(w http.ResponseWriter, r *http.Request) *models.Presentation {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return nil
	}

	sess := middleware.SessionFromCtx(r.Context())
	p := findPresentation(r.Context(), id, sess, a.cache, a.history)
	if p == nil {
		http.NotFound(w, r)
		return nil
	}
	return p
}

// findPresentation fetches a presentation from the cache, falling back
// to the owner's history for signed-in users. A history hit is written
// back to the cache so follow-up export requests stay cheap.
func findPresentation(ctx context.Context, id uuid.UUID, sess *session.Data, pcache *cache.PresentationCache, history *store.HistoryStore) *models.Presentation {
	if p, ok := pcache.Get(ctx, id.String()); ok {
		return p
	}

	if !sess.IsAuthenticated() {
		return nil
	}

	p, err := history.FindByID(id, sess.UserID)
	if err != nil {
		slog.Error("history lookup failed", "id", id, "error", err)
		return nil
	}
	if p == nil {
		return nil
	}

	pcache.Set(ctx, p)
	return p
}
