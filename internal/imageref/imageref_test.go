// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package imageref

import (
	"fmt"
	"strings"
	"testing"
)

func TestResolveDeterministic(t *testing.T) {
	first := Resolve("business-strategy", 800, 600)
	for i := 0; i < 10; i++ {
		if got := Resolve("business-strategy", 800, 600); got != first {
			t.Fatalf("call %d: got %q, want %q", i, got, first)
		}
	}
}

func TestResolveShape(t *testing.T) {
	url := Resolve("healthcare-technology", 400, 300)
	if !strings.HasPrefix(url, "https://picsum.photos/seed/") {
		t.Errorf("unexpected prefix: %q", url)
	}
	if !strings.HasSuffix(url, "/400/300") {
		t.Errorf("dimensions not in path: %q", url)
	}
}

func TestResolveSeedNeverNegative(t *testing.T) {
	// Long queries overflow the 32-bit accumulator; the seed in the URL
	// must still be non-negative.
	queries := []string{
		"a", "zz", "future-technology", "data-analytics-dashboard",
		strings.Repeat("overflow-", 40),
	}
	for _, q := range queries {
		url := Resolve(q, 800, 600)
		if strings.Contains(url, "/seed/-") {
			t.Errorf("negative seed for %q: %s", q, url)
		}
	}
}

func TestResolveDistinctQueriesMostlyDistinct(t *testing.T) {
	seen := make(map[string]string)
	collisions := 0
	for i := 0; i < 100; i++ {
		q := fmt.Sprintf("topic-%d-chart", i)
		url := Resolve(q, 800, 600)
		if prev, ok := seen[url]; ok {
			collisions++
			t.Logf("collision: %q and %q -> %s", prev, q, url)
		}
		seen[url] = q
	}
	// Collisions are tolerated but a 32-bit seed over 100 inputs should
	// essentially never collide; more than a couple means the hash broke.
	if collisions > 2 {
		t.Errorf("got %d collisions across 100 queries", collisions)
	}
}
