// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package layout

import (
	"reflect"
	"testing"

	"slidepress/internal/models"
)

func TestSplitComparison(t *testing.T) {
	tests := []struct {
		points     []string
		advantages []string
		challenges []string
	}{
		{[]string{"a", "b", "c", "d", "e"}, []string{"a", "b", "c"}, []string{"d", "e"}},
		{[]string{"a", "b", "c", "d"}, []string{"a", "b"}, []string{"c", "d"}},
		{[]string{"a"}, []string{"a"}, []string{}},
		{[]string{}, []string{}, []string{}},
	}
	for _, tt := range tests {
		adv, chl := SplitComparison(tt.points)
		if !reflect.DeepEqual([]string(adv), tt.advantages) {
			t.Errorf("advantages for %v: got %v, want %v", tt.points, adv, tt.advantages)
		}
		if !reflect.DeepEqual([]string(chl), tt.challenges) {
			t.Errorf("challenges for %v: got %v, want %v", tt.points, chl, tt.challenges)
		}
	}
}

func TestConclusionPointsCap(t *testing.T) {
	seven := []string{"1", "2", "3", "4", "5", "6", "7"}
	got := ConclusionPoints(seven)
	if len(got) != 4 {
		t.Fatalf("got %d points, want 4", len(got))
	}
	if !reflect.DeepEqual(got, seven[:4]) {
		t.Errorf("got %v, want first four in order", got)
	}

	three := []string{"1", "2", "3"}
	if got := ConclusionPoints(three); !reflect.DeepEqual(got, three) {
		t.Errorf("short list changed: got %v", got)
	}
}

func TestColumns(t *testing.T) {
	left, right := Columns([]string{"a", "b", "c"})
	if len(left) != 2 || len(right) != 1 {
		t.Errorf("odd split: got %d/%d, want 2/1", len(left), len(right))
	}
}

func TestForUnknownLayout(t *testing.T) {
	spec := For(models.Layout("banner"))
	if spec.Layout != models.LayoutContent {
		t.Errorf("unknown layout spec: got %q, want content", spec.Layout)
	}
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		topic, ext, want string
	}{
		{"Renewable Energy", "pdf", "renewable_energy_slides.pdf"},
		{"AI & Healthcare: 2026!", "pptx", "ai___healthcare__2026__slides.pptx"},
		{"abc123", "pdf", "abc123_slides.pdf"},
	}
	for _, tt := range tests {
		if got := ExportFileName(tt.topic, tt.ext); got != tt.want {
			t.Errorf("ExportFileName(%q, %q): got %q, want %q", tt.topic, tt.ext, got, tt.want)
		}
	}
}
