// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Valkey are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"slidepress/internal/ai"
	"slidepress/internal/cache"
	"slidepress/internal/database"
	"slidepress/internal/export"
	"slidepress/internal/generator"
	"slidepress/internal/middleware"
	"slidepress/internal/render"
	"slidepress/internal/session"
	"slidepress/internal/store"
)

// fakeProvider implements ai.Provider for handler tests.
type fakeProvider struct {
	name     string
	response string
	err      error
}

func (f *fakeProvider) Name() string { return f.name }
func (f *fakeProvider) GenerateJSON(_ context.Context, _, _ string) (string, error) {
	return f.response, f.err
}

// failingFetcher implements export.ImageFetcher and always errors, so
// PPTX builds run without network access.
type failingFetcher struct{}

func (failingFetcher) Fetch(_ context.Context, _ string) ([]byte, error) {
	return nil, errors.New("no network in tests")
}

// validResponse is a minimal well-formed provider reply.
const validResponse = `{"slides":[
  {"title":"Opening","subtitle":"Sub","layout":"title","imageQuery":"city-skyline"},
  {"title":"Body","bulletPoints":["a","b","c","d"],"layout":"content","imageQuery":"team-meeting"},
  {"title":"Close","bulletPoints":["x","y"],"layout":"conclusion","imageQuery":"sunrise-road"}
]}`

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "slidepress")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "slidepress")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "presentation:*", "inflight:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB        *sql.DB
	Valkey    *redis.Client
	Renderer  *render.Renderer
	Sessions  *session.Store
	UserStore *store.UserStore
	History   *store.HistoryStore
	Cache     *cache.PresentationCache
	Guard     *cache.GenerationGuard
	Registry  *ai.Registry
	Generator *generator.Generator
	App       *App
	Auth      *Auth
	HistoryH  *History
	Export    *Export
}

// newTestEnv creates a complete test environment with all handler
// dependencies, backed by a fake AI provider.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	sessions := session.NewStore(vk, false)
	userStore := store.NewUserStore(db)
	historyStore := store.NewHistoryStore(db)
	presentationCache := cache.NewPresentationCache(vk, 1*time.Minute)
	guard := cache.NewGenerationGuard(vk, 30*time.Second)

	registry := ai.NewRegistry("fake", map[string]ai.ProviderConfig{})
	registry.Register("fake", &fakeProvider{name: "fake", response: validResponse})

	gen := generator.New(registry)
	gen.DelayMin, gen.DelayMax = 0, 0

	pptx := export.NewPPTXBuilder(failingFetcher{}, nil)
	pdf := export.NewPDFExporter(renderer)

	app := NewApp(renderer, sessions, gen, presentationCache, guard, historyStore)
	auth := NewAuth(renderer, sessions, userStore)
	historyH := NewHistory(renderer, historyStore, presentationCache)
	exportH := NewExport(pdf, pptx, presentationCache, historyStore, nil)

	return &testEnv{
		DB:        db,
		Valkey:    vk,
		Renderer:  renderer,
		Sessions:  sessions,
		UserStore: userStore,
		History:   historyStore,
		Cache:     presentationCache,
		Guard:     guard,
		Registry:  registry,
		Generator: gen,
		App:       app,
		Auth:      auth,
		HistoryH:  historyH,
		Export:    exportH,
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withChiURLParamAndSession adds both chi URL param and session to a request.
func withChiURLParamAndSession(r *http.Request, key, value string, sess *session.Data) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.SessionKey, sess)
	return r.WithContext(ctx)
}

// formRequest builds a POST request with urlencoded form values.
func formRequest(target string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// testUser creates a throwaway user and removes it on cleanup.
func testUser(t *testing.T, env *testEnv, email string) *session.Data {
	t.Helper()

	cleanUser(t, env.DB, email)
	user, err := env.UserStore.Create(email, "correct horse battery", "Test User")
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() { cleanUser(t, env.DB, email) })

	return &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}
}

// cleanUser removes a test user by email (history rows cascade).
func cleanUser(t *testing.T, db *sql.DB, email string) {
	t.Helper()
	db.Exec("DELETE FROM users WHERE email = $1", email)
}

// sessionCookie creates a live session in Valkey and returns its cookie.
func sessionCookie(t *testing.T, env *testEnv, data *session.Data) *http.Cookie {
	t.Helper()
	if data == nil {
		data = &session.Data{}
	}
	rec := httptest.NewRecorder()
	if _, err := env.Sessions.Create(context.Background(), rec, data); err != nil {
		t.Fatalf("session create: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("session create set no cookie")
	}
	return cookies[0]
}
