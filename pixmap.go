package gg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Compile-time interface checks.
var (
	_ image.Image = (*Pixmap)(nil)
	_ draw.Image  = (*Pixmap)(nil)
)

// maxSurfaceDimension bounds width and height to guard against
// pathological allocations.
const maxSurfaceDimension = 16384

// Pixmap is a rectangular, row-major pixel buffer, one pixel = 4 bytes
// in R,G,B,A order, non-premultiplied. It implements image.Image and
// draw.Image so it interoperates with the standard image ecosystem
// (encoders, golang.org/x/image helpers) without a conversion step.
//
// Pixmap is not safe for concurrent use; it is owned by exactly one
// goroutine for the duration of any draw.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // R,G,B,A per pixel, row-major; stride = width*4
}

// NewPixmap creates a new pixmap with the given dimensions, cleared to
// transparent black. It fails with ErrInvalidDimensions if width or
// height is not positive, or ErrSurfaceTooLarge if width or height
// exceeds maxSurfaceDimension (16384).
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > maxSurfaceDimension || height > maxSurfaceDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrSurfaceTooLarge, width, height, maxSurfaceDimension, maxSurfaceDimension)
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int { return p.height }

// Stride returns the number of bytes per row (width*4).
func (p *Pixmap) Stride() int { return p.width * 4 }

// Data returns the raw pixel buffer, R,G,B,A per pixel, row-major.
// Mutating the returned slice mutates the pixmap.
func (p *Pixmap) Data() []uint8 { return p.data }

// SetPixel sets the color of a single pixel. Out-of-bounds writes are
// silently ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel. Out-of-bounds reads
// return transparent black.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// ToImage converts the pixmap to a standard image.NRGBA (non-premultiplied,
// matching the pixmap's own storage convention exactly).
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from any standard image.Image, converting
// per-pixel (un-premultiplying where necessary).
func FromImage(img image.Image) (*Pixmap, error) {
	bounds := img.Bounds()
	pm, err := NewPixmap(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.SetPixel(x, y, FromStdColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return pm, nil
}

// EncodePNG writes the pixmap as a PNG to path. Provided as a
// convenience for tests and examples; the core drawing API never
// touches image codecs directly.
func (p *Pixmap) EncodePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return png.Encode(f, p.ToImage())
}

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.GetPixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Set implements draw.Image.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromStdColor(c))
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// FillSpan fills a horizontal span of pixels with a solid color, no
// blending. The span is [x1, x2) on row y; uses a doubling-copy batch
// fill for spans >= 16 pixels.
func (p *Pixmap) FillSpan(x1, x2, y int, c Color) {
	if y < 0 || y >= p.height || x1 >= x2 {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > p.width {
		x2 = p.width
	}
	if x1 >= x2 {
		return
	}

	startIdx := (y*p.width + x1) * 4
	length := x2 - x1

	if length < 16 {
		for i := 0; i < length; i++ {
			idx := startIdx + i*4
			p.data[idx+0] = c.R
			p.data[idx+1] = c.G
			p.data[idx+2] = c.B
			p.data[idx+3] = c.A
		}
		return
	}

	p.data[startIdx+0] = c.R
	p.data[startIdx+1] = c.G
	p.data[startIdx+2] = c.B
	p.data[startIdx+3] = c.A

	filled := 1
	for filled < length {
		copyLen := filled
		if filled+copyLen > length {
			copyLen = length - filled
		}
		copy(p.data[startIdx+filled*4:], p.data[startIdx:startIdx+copyLen*4])
		filled += copyLen
	}
}
