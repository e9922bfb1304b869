// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"testing"

	"github.com/google/uuid"

	"slidepress/internal/models"
)

func TestNormalizeAssignsUniqueIDs(t *testing.T) {
	slides := Synthesize("Renewable Energy", models.StyleProfessional)
	p := Normalize(slides, "  Renewable Energy  ", models.StyleProfessional)

	if p.ID == uuid.Nil {
		t.Error("presentation ID not set")
	}
	if p.Topic != "Renewable Energy" {
		t.Errorf("topic not trimmed: %q", p.Topic)
	}
	if p.CreatedAt.IsZero() {
		t.Error("createdAt not stamped")
	}

	seen := make(map[string]bool)
	for i, s := range p.Slides {
		if s.ID == "" {
			t.Fatalf("slide %d has empty ID", i)
		}
		if seen[s.ID] {
			t.Errorf("duplicate slide ID %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestNormalizeDistinctPresentationIDs(t *testing.T) {
	// The same content normalized twice is two presentations. Slide IDs
	// derive from time and position, never from content.
	a := Normalize(Synthesize("Topic", models.StyleMinimal), "Topic", models.StyleMinimal)
	b := Normalize(Synthesize("Topic", models.StyleMinimal), "Topic", models.StyleMinimal)

	if a.ID == b.ID {
		t.Error("two presentations share an ID")
	}
}
