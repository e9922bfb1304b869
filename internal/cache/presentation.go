// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// presentation.go provides a Valkey-backed cache of normalized
// presentations keyed by ID. A freshly generated deck is written here so
// the preview, print and export handlers can re-read it without a
// database round trip; signed-out users have no other storage at all.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"slidepress/internal/models"
)

const (
	// presentationKeyPrefix is the Valkey key prefix for cached decks.
	presentationKeyPrefix = "presentation:"

	// DefaultPresentationTTL is how long a generated deck stays cached.
	DefaultPresentationTTL = 24 * time.Hour
)

// PresentationCache stores normalized presentations in Valkey.
type PresentationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPresentationCache creates a presentation cache backed by the given
// Valkey client.
func NewPresentationCache(client *redis.Client, ttl time.Duration) *PresentationCache {
	if ttl == 0 {
		ttl = DefaultPresentationTTL
	}
	return &PresentationCache{client: client, ttl: ttl}
}

// Get retrieves a cached presentation by ID. Returns false on miss or on
// any cache error; callers fall through to the history store.
func (pc *PresentationCache) Get(ctx context.Context, id string) (*models.Presentation, bool) {
	val, err := pc.client.Get(ctx, presentationKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("presentation cache get error", "id", id, "error", err)
		return nil, false
	}

	var p models.Presentation
	if err := json.Unmarshal(val, &p); err != nil {
		slog.Warn("presentation cache decode error", "id", id, "error", err)
		return nil, false
	}
	return &p, true
}

// Set stores a presentation with the configured TTL. Cache errors are
// logged and swallowed; generation must not fail because caching did.
func (pc *PresentationCache) Set(ctx context.Context, p *models.Presentation) {
	payload, err := json.Marshal(p)
	if err != nil {
		slog.Warn("presentation cache encode error", "id", p.ID, "error", err)
		return
	}
	if err := pc.client.Set(ctx, presentationKeyPrefix+p.ID.String(), payload, pc.ttl).Err(); err != nil {
		slog.Warn("presentation cache set error", "id", p.ID, "error", err)
	}
}

// Delete removes a presentation from the cache.
func (pc *PresentationCache) Delete(ctx context.Context, id string) {
	if err := pc.client.Del(ctx, presentationKeyPrefix+id).Err(); err != nil {
		slog.Warn("presentation cache delete error", "id", id, "error", err)
	}
}
