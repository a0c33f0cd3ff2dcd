// Package voronoi renders Voronoi diagrams onto a canvas: random seed
// placement, brute-force nearest-seed rasterization and seed markers.
package voronoi

import (
	"fmt"
	"image"
	"math/rand"
)

// Generate produces count seed points, each coordinate drawn independently
// and uniformly from [0, width) and [0, height). The random source is the
// caller's, so tests can inject a fixed seed while the binary seeds it from
// the wall clock. Seed order is significant: the rasterizer breaks distance
// ties in favor of the lowest index. Duplicate positions are allowed and
// merely produce degenerate cells.
func Generate(count, width, height int, rng *rand.Rand) ([]image.Point, error) {
	if count < 1 {
		return nil, fmt.Errorf("seed count must be positive: %d", count)
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid seed bounds %dx%d", width, height)
	}

	seeds := make([]image.Point, count)
	for i := range seeds {
		seeds[i] = image.Point{X: rng.Intn(width), Y: rng.Intn(height)}
	}

	return seeds, nil
}
