// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package layout is the single source of truth for how each slide layout
// is arranged. The HTML preview, the print page used for PDF export and
// the PPTX builder all consult the same Spec and helper rules, so a
// presentation looks the same in every output.
package layout

import (
	"math"
	"strings"
	"unicode"

	"slidepress/internal/models"
)

// Spec describes the structural treatment of one layout. Consumers that
// need exact geometry (the PPTX builder) carry their own box tables; Spec
// answers the shared structural questions.
type Spec struct {
	Layout models.Layout

	// FullBleedImage means the primary image covers the whole slide with
	// a darkening overlay and centered text on top.
	FullBleedImage bool

	// ShowNarrative means the long-form detailedContent is the slide
	// body instead of the bullet list.
	ShowNarrative bool

	// SideImage means the primary image sits beside the text rather than
	// behind or below it.
	SideImage bool

	// TwoColumnBullets splits bulletPoints into two columns.
	TwoColumnBullets bool

	// LabeledColumns renders the positional advantages/challenges pair.
	LabeledColumns bool

	// CenteredText centers titles and body text.
	CenteredText bool
}

var specs = map[models.Layout]Spec{
	models.LayoutTitle:      {Layout: models.LayoutTitle, FullBleedImage: true, CenteredText: true},
	models.LayoutContent:    {Layout: models.LayoutContent, TwoColumnBullets: true},
	models.LayoutImage:      {Layout: models.LayoutImage},
	models.LayoutSplit:      {Layout: models.LayoutSplit, SideImage: true},
	models.LayoutDetailed:   {Layout: models.LayoutDetailed, ShowNarrative: true, SideImage: true},
	models.LayoutComparison: {Layout: models.LayoutComparison, LabeledColumns: true},
	models.LayoutConclusion: {Layout: models.LayoutConclusion, FullBleedImage: true, CenteredText: true},
}

// For returns the rendering spec for a layout. Unknown layouts get the
// content spec, matching models.ParseLayout.
func For(l models.Layout) Spec {
	if s, ok := specs[l]; ok {
		return s
	}
	return specs[models.LayoutContent]
}

// ColumnLabels are the fixed headings of the comparison layout.
const (
	AdvantagesLabel = "Advantages"
	ChallengesLabel = "Challenges"
)

// SplitComparison bisects a comparison slide's bullet points: the first
// ceil(n/2) under Advantages, the rest under Challenges. The rule is
// positional on purpose; bullet text is never inspected.
func SplitComparison(points []string) (advantages, challenges []string) {
	mid := int(math.Ceil(float64(len(points)) / 2))
	return points[:mid], points[mid:]
}

// Columns splits bullet points into the left/right columns of the
// content layout, left column taking the extra point when n is odd.
func Columns(points []string) (left, right []string) {
	mid := (len(points) + 1) / 2
	return points[:mid], points[mid:]
}

// maxConclusionPoints bounds the conclusion layout so it stays readable
// on a single slide.
const maxConclusionPoints = 4

// ConclusionPoints caps a conclusion slide's bullet points at four,
// dropping extras from the end.
func ConclusionPoints(points []string) []string {
	if len(points) > maxConclusionPoints {
		return points[:maxConclusionPoints]
	}
	return points
}

// ExportFileName builds the download filename for an export: every
// non-alphanumeric rune becomes an underscore, the result is lowercased
// and suffixed with "_slides" plus the extension.
func ExportFileName(topic, ext string) string {
	var b strings.Builder
	for _, r := range topic {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte('_')
		}
	}
	return b.String() + "_slides." + ext
}
