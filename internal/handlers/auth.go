// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"slidepress/internal/middleware"
	"slidepress/internal/render"
	"slidepress/internal/session"
	"slidepress/internal/store"
)

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	renderer  *render.Renderer
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{
		renderer:  renderer,
		sessions:  sessions,
		userStore: userStore,
	}
}

// LoginPage renders the login form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess.IsAuthenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "login", &render.PageData{
		Title: "Sign In",
		Data:  map[string]any{},
	})
}

// LoginSubmit processes the login form.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	fail := func(msg string) {
		a.renderer.Page(w, r, "login", &render.PageData{
			Title:   "Sign In",
			Data:    map[string]any{"Email": email},
			Flashes: []render.Flash{{Type: "error", Message: msg}},
		})
	}

	user, err := a.userStore.FindByEmail(email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		fail("An unexpected error occurred.")
		return
	}

	if user == nil || !a.userStore.CheckPassword(user, password) {
		fail("Invalid email or password.")
		return
	}

	// Replace whatever session the visitor had (possibly anonymous).
	a.sessions.Destroy(r.Context(), w, r)
	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SignupPage renders the registration form.
func (a *Auth) SignupPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess.IsAuthenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "signup", &render.PageData{
		Title: "Sign Up",
		Data:  map[string]any{},
	})
}

// SignupSubmit processes the registration form and signs the user in.
func (a *Auth) SignupSubmit(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	displayName := strings.TrimSpace(r.FormValue("display_name"))

	fail := func(msg string) {
		a.renderer.Page(w, r, "signup", &render.PageData{
			Title:   "Sign Up",
			Data:    map[string]any{"Email": email, "DisplayName": displayName},
			Flashes: []render.Flash{{Type: "error", Message: msg}},
		})
	}

	if msg := validateSignup(email, password, displayName); msg != "" {
		fail(msg)
		return
	}

	existing, err := a.userStore.FindByEmail(email)
	if err != nil {
		slog.Error("signup lookup failed", "error", err)
		fail("An unexpected error occurred.")
		return
	}
	if existing != nil {
		fail("An account with that email already exists.")
		return
	}

	user, err := a.userStore.Create(email, password, displayName)
	if err != nil {
		slog.Error("signup create failed", "error", err)
		fail("An unexpected error occurred.")
		return
	}

	a.sessions.Destroy(r.Context(), w, r)
	if _, err := a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}); err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout destroys the session and redirects to the home page.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
