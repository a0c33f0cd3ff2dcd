package canvas

import (
	"fmt"
	"image"
	"image/color"
)

// Canvas is a fixed-size pixel buffer of packed colors, row-major from the
// top-left corner. A canvas is constructed once, handed through the
// rendering pipeline and mutated in place; nothing copies it.
//
// Canvas implements image.Image and draw.Image, so it composes with the
// standard image packages wherever packed colors are not required.
type Canvas struct {
	width  int
	height int
	pix    []Color
}

func New(width, height int) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}, nil
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Pix exposes the backing pixel slice; the pixel at (x, y) is Pix()[y*Width()+x].
func (c *Canvas) Pix() []Color { return c.pix }

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// SetPixel writes one pixel. Coordinates outside the canvas are ignored, so
// callers may iterate shapes that overhang the edges without clamping.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = col
}

// PixelAt returns the pixel at (x, y), reporting false outside the canvas.
func (c *Canvas) PixelAt(x, y int) (Color, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, false
	}
	return c.pix[y*c.width+x], true
}

func (c *Canvas) ColorModel() color.Model { return ColorModel }

func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

func (c *Canvas) At(x, y int) color.Color {
	col, _ := c.PixelAt(x, y)
	return col
}

// Set implements draw.Image, converting col through the canvas color model.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(x, y, colorConvert(col).(Color))
}
