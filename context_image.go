package gg

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/gg/internal/blend"
)

// ImageLike is a raw pixel buffer an application can hand to DrawImageLike
// without going through the standard image.Image interface: either
// Width*Height*4 bytes, R,G,B,A per pixel, non-premultiplied (the same
// layout Pixmap uses), or Width*Height*3 bytes, R,G,B per pixel, which is
// read as fully opaque (A=255).
type ImageLike struct {
	Width, Height int
	Pixels        []uint8
}

func (il ImageLike) toNRGBA() (*image.NRGBA, error) {
	n := il.Width * il.Height
	if len(il.Pixels) != n*4 && len(il.Pixels) != n*3 {
		return nil, fmt.Errorf("%w: %d bytes for a %dx%d image (want %d or %d)", ErrInvalidArgCount, len(il.Pixels), il.Width, il.Height, n*3, n*4)
	}
	img := image.NewNRGBA(image.Rect(0, 0, il.Width, il.Height))
	if len(il.Pixels) == n*4 {
		copy(img.Pix, il.Pixels)
		return img, nil
	}
	for i := 0; i < n; i++ {
		copy(img.Pix[i*4:i*4+3], il.Pixels[i*3:i*3+3])
		img.Pix[i*4+3] = 255
	}
	return img, nil
}

// DrawImage draws src at (x,y), in user space, at its native size.
func (c *Context) DrawImage(src image.Image, x, y float64) {
	b := src.Bounds()
	c.drawImageRegion(src, b, x, y, float64(b.Dx()), float64(b.Dy()))
}

// DrawImageScaled draws src at (x,y), in user space, resampled to w by h
// device-independent units using nearest-neighbor interpolation (the only
// resampling filter this engine implements; see DESIGN.md).
func (c *Context) DrawImageScaled(src image.Image, x, y, w, h float64) {
	c.drawImageRegion(src, src.Bounds(), x, y, w, h)
}

// DrawImageSource draws the srcRect region of src at (x,y), scaled to w by
// h. Returns ErrSourceRectOutOfBounds if srcRect doesn't fit inside src.
func (c *Context) DrawImageSource(src image.Image, srcRect image.Rectangle, x, y, w, h float64) error {
	if !srcRect.In(src.Bounds()) {
		return fmt.Errorf("%w: %v not within %v", ErrSourceRectOutOfBounds, srcRect, src.Bounds())
	}
	c.drawImageRegion(src, srcRect, x, y, w, h)
	return nil
}

// DrawImageLike draws a raw ImageLike pixel buffer at (x,y), scaled to w
// by h (native size if either is zero).
func (c *Context) DrawImageLike(il ImageLike, x, y, w, h float64) error {
	img, err := il.toNRGBA()
	if err != nil {
		return err
	}
	if w == 0 {
		w = float64(il.Width)
	}
	if h == 0 {
		h = float64(il.Height)
	}
	c.drawImageRegion(img, img.Bounds(), x, y, w, h)
	return nil
}

// drawImageRegion resamples the srcRect region of src to the current
// transform's image of the destination rectangle [x,y,x+w,y+h] using
// nearest-neighbor interpolation, then composites it onto the pixmap
// pixel by pixel through the active clip mask, global alpha, and
// compositing operator.
func (c *Context) drawImageRegion(src image.Image, srcRect image.Rectangle, x, y, w, h float64) {
	p0 := c.cur.transform.TransformPoint(Pt(x, y))
	p1 := c.cur.transform.TransformPoint(Pt(x+w, y+h))
	dx0, dx1 := sortedInt(p0.X, p1.X)
	dy0, dy1 := sortedInt(p0.Y, p1.Y)
	dw, dh := dx1-dx0, dy1-dy0
	if dw <= 0 || dh <= 0 {
		return
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, srcRect, draw.Src, nil)

	blendOp := blend.Operator(c.cur.compositeOp)
	alpha := c.cur.globalAlpha

	for j := 0; j < dh; j++ {
		py := dy0 + j
		if py < 0 || py >= c.pixmap.Height() {
			continue
		}
		for i := 0; i < dw; i++ {
			px := dx0 + i
			if px < 0 || px >= c.pixmap.Width() {
				continue
			}
			if c.cur.clipMask != nil && !c.cur.clipMask.Test(px, py) {
				continue
			}

			src := FromStdColor(scaled.NRGBAAt(i, j))
			if alpha != 1 {
				src.A = uint8(math.Round(float64(src.A) * alpha))
			}
			dst := c.pixmap.GetPixel(px, py)
			out := blend.Composite(blendOp, colorToRaster(src), colorToRaster(dst))
			c.pixmap.SetPixel(px, py, rasterToColor(out))
		}
	}
}
