package voronoi

import (
	"image"

	"vorogen/canvas"
)

// DrawMarkers stamps a filled disk of the given radius and color over every
// seed, in seed order, so where markers overlap the later seed's disk wins.
// Markers overwrite cell colors; call this only after Render has returned.
// Disks of edge seeds are clipped to the canvas.
func DrawMarkers(dst *canvas.Canvas, seeds []image.Point, radius int, col canvas.Color) {
	for _, seed := range seeds {
		dst.FillCircle(seed, radius, col)
	}
}
