// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"slidepress/internal/cache"
	"slidepress/internal/middleware"
	"slidepress/internal/render"
	"slidepress/internal/store"
)

// History groups handlers for the saved-presentations pages. All routes
// here sit behind RequireAuth.
type History struct {
	renderer *render.Renderer
	history  *store.HistoryStore
	cache    *cache.PresentationCache
}

// NewHistory creates the History handler group.
func NewHistory(renderer *render.Renderer, history *store.HistoryStore, pcache *cache.PresentationCache) *History {
	return &History{
		renderer: renderer,
		history:  history,
		cache:    pcache,
	}
}

// List shows the user's saved presentations, newest first.
func (h *History) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	entries, err := h.history.ListByUser(sess.UserID)
	if err != nil {
		slog.Error("history list failed", "user_id", sess.UserID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderer.Page(w, r, "history", &render.PageData{
		Title: "History",
		Data:  map[string]any{"Entries": entries},
	})
}

// Delete removes a saved presentation. Deleting something already gone
// is not an error; the redirect is the same either way.
func (h *History) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.history.Delete(id, sess.UserID); err != nil {
		slog.Error("history delete failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.cache.Delete(r.Context(), id.String())

	http.Redirect(w, r, "/history", http.StatusSeeOther)
}
