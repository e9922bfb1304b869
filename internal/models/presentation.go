// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the domain types shared across the application:
// presentations, slides, layouts, styles, and user accounts.
package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Style selects the visual treatment applied to a generated presentation.
type Style string

const (
	StyleProfessional Style = "professional"
	StyleMinimal      Style = "minimal"
	StyleCreative     Style = "creative"
)

// ParseStyle validates a style tag from user input. Unknown tags are
// rejected rather than degraded because the form only offers the three.
func ParseStyle(s string) (Style, bool) {
	switch Style(s) {
	case StyleProfessional, StyleMinimal, StyleCreative:
		return Style(s), true
	}
	return "", false
}

// Layout identifies which slide arrangement a slide uses. The set is
// closed; tags outside it degrade to LayoutContent at parse time so a
// creative model response never breaks rendering.
type Layout string

const (
	LayoutTitle      Layout = "title"
	LayoutContent    Layout = "content"
	LayoutImage      Layout = "image"
	LayoutSplit      Layout = "split"
	LayoutDetailed   Layout = "detailed"
	LayoutComparison Layout = "comparison"
	LayoutConclusion Layout = "conclusion"
)

// ParseLayout maps a layout tag to a known layout, degrading unknown
// tags to LayoutContent.
func ParseLayout(s string) Layout {
	switch Layout(s) {
	case LayoutTitle, LayoutContent, LayoutImage, LayoutSplit,
		LayoutDetailed, LayoutComparison, LayoutConclusion:
		return Layout(s)
	}
	return LayoutContent
}

// UnmarshalJSON degrades unknown layout tags instead of failing the
// whole response decode.
func (l *Layout) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*l = ParseLayout(s)
	return nil
}

// Slide is a single slide of a presentation. Field names in JSON match
// the payload shape stored in history rows and returned by providers.
type Slide struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Subtitle          string   `json:"subtitle,omitempty"`
	Content           string   `json:"content,omitempty"`
	DetailedContent   string   `json:"detailedContent,omitempty"`
	BulletPoints      []string `json:"bulletPoints"`
	KeyPoints         []string `json:"keyPoints,omitempty"`
	Examples          []string `json:"examples,omitempty"`
	Statistics        []string `json:"statistics,omitempty"`
	ImageQuery        string   `json:"imageQuery"`
	ImageURL          string   `json:"imageUrl,omitempty"`
	SecondaryImageURL string   `json:"secondaryImageUrl,omitempty"`
	Layout            Layout   `json:"layout"`
	BackgroundColor   string   `json:"backgroundColor,omitempty"`
}

// Presentation is the normalized unit the preview, the exporters and the
// history store all consume.
type Presentation struct {
	ID        uuid.UUID `json:"id"`
	Topic     string    `json:"topic"`
	Style     Style     `json:"style"`
	Slides    []Slide   `json:"slides"`
	CreatedAt time.Time `json:"createdAt"`
}
