package voronoi

import (
	"fmt"
	"image"

	"vorogen/canvas"
	"vorogen/parallel"
)

// SquareDistance returns the squared Euclidean distance between two points.
// Squaring preserves the ordering of non-negative distances, so nearest-seed
// comparisons never need the square root.
func SquareDistance(a, b image.Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// SeedColor derives a cell color from a seed's position: the x coordinate in
// the high 16 bits XORed with the y coordinate in the low 16. The color is a
// pure function of the coordinates, so coincident seeds share one color.
// Coordinates must fit in 16 bits; any seed inside a canvas does.
func SeedColor(p image.Point) canvas.Color {
	return canvas.Color(uint32(uint16(p.X))<<16 ^ uint32(uint16(p.Y)))
}

// Render assigns every canvas pixel the color of its nearest seed by squared
// Euclidean distance. The scan starts with seed 0 as the best candidate and
// a later seed wins only on a strictly smaller distance, so equidistant
// seeds resolve to the lowest index. Rows are dispatched to the pool; each
// row writes a disjoint pixel range and the per-pixel result depends only on
// the seed slice, so output is identical for any worker count. The pool is
// drained by the call and cannot be reused.
func Render(dst *canvas.Canvas, seeds []image.Point, pool *parallel.Pool) error {
	if len(seeds) == 0 {
		return fmt.Errorf("cannot render a voronoi diagram without seeds")
	}

	for y := 0; y < dst.Height(); y++ {
		y := y
		pool.Do(func() { renderRow(dst, seeds, y) })
	}
	pool.Wait()

	return nil
}

func renderRow(dst *canvas.Canvas, seeds []image.Point, y int) {
	for x := 0; x < dst.Width(); x++ {
		p := image.Point{X: x, Y: y}

		best := 0
		bestDist := SquareDistance(seeds[0], p)
		for i := 1; i < len(seeds) && bestDist > 0; i++ {
			if d := SquareDistance(seeds[i], p); d < bestDist {
				best, bestDist = i, d
			}
		}

		dst.SetPixel(x, y, SeedColor(seeds[best]))
	}
}
