package gg

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a non-premultiplied 8-bit RGBA value. All four channels are in
// [0, 255]; output is sRGB-assumed with no device color management.
type Color struct {
	R, G, B, A uint8
}

// RGBA8 constructs a Color from four byte channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB8 constructs a fully opaque Color.
func RGB8(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// packColor composes the 32-bit word form of a color. The byte order
// matches the R,G,B,A layout documented on Pixmap: R is the least
// significant byte, A the most significant, so that on a little-endian
// machine the four-byte slice view and the packed word agree.
func packColor(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// pack returns the packed 32-bit word form of c.
func (c Color) pack() uint32 {
	return packColor(c.R, c.G, c.B, c.A)
}

// unpackColor decomposes a packed 32-bit word into a Color.
func unpackColor(w uint32) Color {
	return Color{
		R: uint8(w),
		G: uint8(w >> 8),
		B: uint8(w >> 16),
		A: uint8(w >> 24),
	}
}

// RGBA implements color.Color (stdlib), returning premultiplied 16-bit
// channels as required by the image/color contract.
func (c Color) RGBA() (r, g, b, a uint32) {
	aa := uint32(c.A)
	r = uint32(c.R) * aa / 255
	g = uint32(c.G) * aa / 255
	b = uint32(c.B) * aa / 255
	r |= r << 8
	g |= g << 8
	b |= b << 8
	a = aa | aa<<8
	return
}

// FromStdColor converts any stdlib color.Color into a non-premultiplied
// Color, un-premultiplying if necessary.
func FromStdColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	return Color{
		R: uint8(r * 255 / a),
		G: uint8(g * 255 / a),
		B: uint8(b * 255 / a),
		A: uint8(a >> 8),
	}
}

// Lerp linearly interpolates between c and other by t in [0,1], per
// channel, in the non-premultiplied 8-bit domain.
func (c Color) Lerp(other Color, t float64) Color {
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return Color{
		R: lerp(c.R, other.R),
		G: lerp(c.G, other.G),
		B: lerp(c.B, other.B),
		A: lerp(c.A, other.A),
	}
}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// String renders the color as a "#rrggbbaa" hex string.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Common named colors.
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 128, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
)
