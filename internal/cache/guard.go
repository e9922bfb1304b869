// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// guard.go implements the per-session generation guard. A session may
// run one generation at a time; a second submit while one is pending is
// rejected rather than queued. The guard lives in Valkey (SETNX + TTL)
// so it holds across app replicas and cannot leak on a crash.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	guardKeyPrefix = "inflight:"

	// DefaultGuardTTL bounds how long a stuck generation can block a
	// session. It comfortably exceeds the provider timeout.
	DefaultGuardTTL = 90 * time.Second
)

// GenerationGuard tracks in-flight generations per session.
type GenerationGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGenerationGuard creates a guard backed by the given Valkey client.
func NewGenerationGuard(client *redis.Client, ttl time.Duration) *GenerationGuard {
	if ttl == 0 {
		ttl = DefaultGuardTTL
	}
	return &GenerationGuard{client: client, ttl: ttl}
}

// TryAcquire attempts to claim the generation slot for a session.
// Returns false when a generation is already pending for it.
func (g *GenerationGuard) TryAcquire(ctx context.Context, sessionID string) (bool, error) {
	return g.client.SetNX(ctx, guardKeyPrefix+sessionID, "1", g.ttl).Result()
}

// Release frees the generation slot for a session.
func (g *GenerationGuard) Release(ctx context.Context, sessionID string) {
	g.client.Del(context.WithoutCancel(ctx), guardKeyPrefix+sessionID)
}
