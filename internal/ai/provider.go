// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides a unified interface for LLM providers that can
// produce structured JSON (OpenAI, Gemini, Claude). Each provider handles
// its own HTTP communication; the Registry selects the active one by name.
package ai

import (
	"context"
	"fmt"
	"sync"
)

// Provider defines the interface that all AI providers must implement.
type Provider interface {
	// GenerateJSON sends a prompt pair to the LLM, requesting a JSON
	// response where the API supports a native JSON mode, and returns
	// the raw response text. Callers decode and validate it themselves.
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Name returns the provider identifier (e.g., "openai", "gemini").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Registry manages available AI providers and selects the active one.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
}

// NewRegistry creates a registry and initialises providers for every
// config that has a non-empty API key. Providers without keys are
// silently skipped, so a registry with no reachable provider is a normal
// state rather than an error.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "openai":
			r.providers[name] = newOpenAI(cfg)
		case "gemini":
			r.providers[name] = newGemini(cfg)
		case "claude":
			r.providers[name] = newClaude(cfg)
		}
	}

	return r
}

// GenerateJSON calls the active provider's GenerateJSON method.
func (r *Registry) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}
	return p.GenerateJSON(ctx, systemPrompt, userPrompt)
}

// Active returns the currently active provider.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("ai: no provider configured for %q", r.active)
	}
	return p, nil
}

// HasActive reports whether the active provider name is backed by a
// configured provider. Callers use it to decide between a live call and
// the local fallback path.
func (r *Registry) HasActive() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[r.active]
	return ok
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Available returns the names of all providers that have valid API keys.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Register adds or replaces a provider in the registry. This allows
// injecting custom providers at runtime (e.g. for testing).
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}
