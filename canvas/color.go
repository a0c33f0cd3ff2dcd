package canvas

import "image/color"

// Color is a 32-bit packed pixel value with one byte per channel: red in
// byte 0, green in byte 1, blue in byte 2 and alpha in byte 3, so literals
// read 0xAABBGGRR. The image encoder emits the low three bytes of each
// pixel verbatim, which makes this layout part of the output contract.
type Color uint32

const (
	White Color = 0xFFFFFFFF
	Red   Color = 0xFF0000FF
	Green Color = 0xFF00FF00
	Blue  Color = 0xFFFF0000
	Black Color = 0xFF000000
)

// FromRGBA packs an 8-bit RGBA color.
func FromRGBA(c color.RGBA) Color {
	return Color(uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R))
}

func (c Color) R() uint8 { return uint8(c) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c >> 16) }
func (c Color) A() uint8 { return uint8(c >> 24) }

// RGBA8 unpacks the channels into the standard library's 8-bit RGBA type.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color. Like color.RGBA, channels are scaled to 16
// bits without clamping against alpha, so a packed value survives the round
// trip through the color interfaces even when it is not a valid
// alpha-premultiplied color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R()) * 0x101
	g = uint32(c.G()) * 0x101
	b = uint32(c.B()) * 0x101
	a = uint32(c.A()) * 0x101
	return
}

// ColorModel converts arbitrary colors to Color, truncating each channel to
// 8 bits.
var ColorModel = color.ModelFunc(colorConvert)

func colorConvert(c color.Color) color.Color {
	if packed, ok := c.(Color); ok {
		return packed
	}
	r, g, b, a := c.RGBA()
	return Color(a>>8<<24 | b>>8<<16 | g>>8<<8 | r>>8)
}
