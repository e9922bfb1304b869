// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imageref resolves slide image queries to stable picsum.photos
// locators. The same query always yields the same URL, so re-rendering or
// re-exporting a presentation never shuffles its imagery.
package imageref

import "fmt"

// Resolve maps a free-text image query to a seeded picsum.photos URL at
// the requested dimensions. The seed is a 32-bit accumulator over the
// query's code points with deliberate wraparound; distinct queries may
// collide, which only means two slides share a picture.
func Resolve(query string, width, height int) string {
	var acc int32
	for _, r := range query {
		acc = int32(r) + ((acc << 5) - acc)
	}
	seed := int64(acc)
	if seed < 0 {
		seed = -seed
	}
	return fmt.Sprintf("https://picsum.photos/seed/%d/%d/%d", seed, width, height)
}
