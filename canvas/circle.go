package canvas

import "image"

// FillCircle overwrites every pixel whose squared distance to center is at
// most radius² with col. The candidate box extends one radius from the
// center on each axis and is clipped to the canvas, so disks crossing the
// edge never touch memory outside the buffer. The write is a plain
// overwrite: no blending happens even for translucent colors, which the
// draw compositors cannot promise.
func (c *Canvas) FillCircle(center image.Point, radius int, col Color) {
	if radius < 0 {
		return
	}

	box := image.Rect(center.X-radius, center.Y-radius, center.X+radius+1, center.Y+radius+1)
	box = box.Intersect(c.Bounds())

	for y := box.Min.Y; y < box.Max.Y; y++ {
		row := c.pix[y*c.width : y*c.width+c.width]
		for x := box.Min.X; x < box.Max.X; x++ {
			dx := x - center.X
			dy := y - center.Y
			if dx*dx+dy*dy <= radius*radius {
				row[x] = col
			}
		}
	}
}
