package gg

import "github.com/gogpu/gg/internal/clip"

// Direct rasterizers bypass the Path -> flatten -> scanline-fill pipeline
// for the handful of primitives common enough to special-case: an
// axis-aligned rectangle resolves to a single nested loop over a pixel
// span, with no edge table, no active-edge sort, and no per-scanline
// winding accumulation. Context.Fill/Stroke dispatch here whenever the
// current transform, paint, and compositing state make the direct path
// observably equivalent to the general pipeline (see canUseDirectPath
// in context.go); every other case falls through to the slow path and
// increments slowPathHits.

// directFillRect paints the device-space rectangle [x0,x1) x [y0,y1) with a
// solid color via Pixmap.FillSpan, honoring an optional clip mask.
func directFillRect(dest *Pixmap, x0, y0, x1, y1 int, c Color, clip *clip.Mask) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > dest.Width() {
		x1 = dest.Width()
	}
	if y1 > dest.Height() {
		y1 = dest.Height()
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}

	if clip == nil {
		for y := y0; y < y1; y++ {
			dest.FillSpan(x0, x1, y, c)
		}
		return
	}

	for y := y0; y < y1; y++ {
		spanStart := -1
		for x := x0; x < x1; x++ {
			if clip.Test(x, y) {
				if spanStart < 0 {
					spanStart = x
				}
			} else if spanStart >= 0 {
				dest.FillSpan(spanStart, x, y, c)
				spanStart = -1
			}
		}
		if spanStart >= 0 {
			dest.FillSpan(spanStart, x1, y, c)
		}
	}
}

// directStrokeRectOutline paints the 1-pixel-thick axis-aligned frame of a
// rectangle with a solid color. Used when width==1 and no dash is active;
// wider or dashed axis-aligned rect strokes fall back to the general
// stroke-expansion pipeline.
func directStrokeRectOutline(dest *Pixmap, x0, y0, x1, y1 int, c Color, clip *clip.Mask) {
	if x1-x0 <= 0 || y1-y0 <= 0 {
		return
	}
	directFillRect(dest, x0, y0, x1, y0+1, c, clip)
	directFillRect(dest, x0, y1-1, x1, y1, c, clip)
	directFillRect(dest, x0, y0, x0+1, y1, c, clip)
	directFillRect(dest, x1-1, y0, x1, y1, c, clip)
}
