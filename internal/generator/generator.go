// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator turns a topic and style into a normalized
// presentation. Generation is degradation-tolerant: every failure path,
// from a missing API key to a malformed model response, lands on the
// local synthesizer instead of surfacing an error.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"slidepress/internal/ai"
	"slidepress/internal/imageref"
	"slidepress/internal/models"
)

// Source tags where a presentation's content came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Generator orchestrates a single generation: one provider call at most,
// then enrichment. The zero delay bounds are only useful in tests; use
// New for production wiring.
type Generator struct {
	registry *ai.Registry

	// DelayMin/DelayMax bound the simulated "thinking" pause served
	// before a fallback deck when no provider is configured.
	DelayMin time.Duration
	DelayMax time.Duration

	// sleep is swapped out in tests.
	sleep func(ctx context.Context, d time.Duration)
}

// New creates a Generator with the production delay window.
func New(registry *ai.Registry) *Generator {
	return &Generator{
		registry: registry,
		DelayMin: 1500 * time.Millisecond,
		DelayMax: 3500 * time.Millisecond,
		sleep:    sleepCtx,
	}
}

// apiResponse is the shape a provider must return.
type apiResponse struct {
	Slides []models.Slide `json:"slides"`
}

// Generate produces slide bodies for a topic. It never returns an error:
// when the live path fails for any reason the synthesized fallback is
// returned with SourceFallback, and the cause is logged only.
func (g *Generator) Generate(ctx context.Context, topic string, style models.Style) ([]models.Slide, Source) {
	if g.registry == nil || !g.registry.HasActive() {
		// No credential configured. Pause briefly so the experience
		// matches a real generation, then synthesize.
		g.pause(ctx)
		return Synthesize(topic, style), SourceFallback
	}

	raw, err := g.registry.GenerateJSON(ctx, systemPrompt, userPrompt(topic, style))
	if err != nil {
		slog.Warn("generation failed, using synthesized deck",
			"provider", g.registry.ActiveName(), "error", err)
		return Synthesize(topic, style), SourceFallback
	}

	slides, err := decodeSlides(raw)
	if err != nil {
		slog.Warn("generation response rejected, using synthesized deck",
			"provider", g.registry.ActiveName(), "error", err)
		return Synthesize(topic, style), SourceFallback
	}

	enrich(slides)
	return slides, SourceLive
}

// decodeSlides strictly decodes and validates a provider response.
func decodeSlides(raw string) ([]models.Slide, error) {
	var resp apiResponse
	if err := json.Unmarshal([]byte(stripFences(raw)), &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(resp.Slides) == 0 {
		return nil, fmt.Errorf("response contains no slides")
	}
	for i, s := range resp.Slides {
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("slide %d has no title", i)
		}
		if strings.TrimSpace(s.ImageQuery) == "" {
			return nil, fmt.Errorf("slide %d has no image query", i)
		}
	}
	return resp.Slides, nil
}

// enrich attaches deterministic image locators to live slides. Detailed
// slides get a secondary chart-style image derived from the same query.
func enrich(slides []models.Slide) {
	for i := range slides {
		s := &slides[i]
		s.ImageURL = imageref.Resolve(s.ImageQuery, 800, 600)
		if s.Layout == models.LayoutDetailed {
			s.SecondaryImageURL = imageref.Resolve(s.ImageQuery+"-data", 400, 300)
		}
	}
}

// stripFences removes a surrounding Markdown code fence if the model
// wrapped its JSON in one despite instructions.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// pause sleeps for a random duration inside the configured window,
// returning early if the context is cancelled.
func (g *Generator) pause(ctx context.Context) {
	if g.DelayMax <= 0 {
		return
	}
	window := g.DelayMax - g.DelayMin
	d := g.DelayMin
	if window > 0 {
		d += time.Duration(rand.Int64N(int64(window) + 1))
	}
	g.sleep(ctx, d)
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
