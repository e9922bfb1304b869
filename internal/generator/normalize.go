// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"slidepress/internal/models"
)

// Normalize assembles generated slide bodies into a stored presentation.
// The presentation gets a fresh UUID; each slide gets an ID built from
// the generation timestamp and its index, so IDs are unique within the
// presentation and independent of slide content.
func Normalize(slides []models.Slide, topic string, style models.Style) *models.Presentation {
	now := time.Now()
	millis := now.UnixMilli()
	for i := range slides {
		slides[i].ID = fmt.Sprintf("%d-%d", millis, i)
	}
	return &models.Presentation{
		ID:        uuid.New(),
		Topic:     strings.TrimSpace(topic),
		Style:     style,
		Slides:    slides,
		CreatedAt: now,
	}
}
