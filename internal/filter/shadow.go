package filter

import (
	"math"

	"github.com/gogpu/gg"
)

// DropShadowFilter creates a drop shadow effect beneath a shape.
// The filter extracts the alpha channel, blurs it, colorizes it, and
// composites it under the original content with an offset.
type DropShadowFilter struct {
	// OffsetX is the horizontal shadow offset in pixels.
	OffsetX float64

	// OffsetY is the vertical shadow offset in pixels.
	OffsetY float64

	// BlurRadius is the shadow blur radius in pixels.
	BlurRadius float64

	// Color is the shadow color (typically black with partial alpha).
	Color gg.Color
}

// NewDropShadowFilter creates a new drop shadow filter.
func NewDropShadowFilter(offsetX, offsetY, blurRadius float64, color gg.Color) *DropShadowFilter {
	return &DropShadowFilter{
		OffsetX:    offsetX,
		OffsetY:    offsetY,
		BlurRadius: blurRadius,
		Color:      color,
	}
}

// NewSimpleDropShadow creates a drop shadow with default black color at 50% opacity.
func NewSimpleDropShadow(offsetX, offsetY, blurRadius float64) *DropShadowFilter {
	return &DropShadowFilter{
		OffsetX:    offsetX,
		OffsetY:    offsetY,
		BlurRadius: blurRadius,
		Color:      gg.RGBA8(0, 0, 0, 128),
	}
}

// Apply renders the shadow cast by src (read as an alpha mask; its RGB is
// ignored) into dst, offset by (OffsetX,OffsetY) and blurred by BlurRadius.
// dst is NOT cleared first: the shadow is composited with source-over, so
// callers draw the shadow before the shape that casts it.
func (f *DropShadowFilter) Apply(src, dst *gg.Pixmap, bounds gg.Rect) {
	if src == nil || dst == nil {
		return
	}

	expanded := f.ExpandBounds(bounds)

	minX := clampInt(int(expanded.Min.X), 0, dst.Width())
	maxX := clampInt(int(expanded.Max.X), 0, dst.Width())
	minY := clampInt(int(expanded.Min.Y), 0, dst.Height())
	maxY := clampInt(int(expanded.Max.Y), 0, dst.Height())

	if minX >= maxX || minY >= maxY {
		return
	}

	width := maxX - minX
	height := maxY - minY

	alpha := make([]float32, width*height)
	extractAlpha(src, alpha, minX, minY, width, height, int(f.OffsetX), int(f.OffsetY))

	// shadowIntensityFactor scales the blurred alpha up (clamped to 1) to
	// compensate for the box blur spreading coverage thin. The value 8 is
	// empirical and tunable.
	const shadowIntensityFactor = 8
	if f.BlurRadius > 0 {
		blurred := make([]float32, width*height)
		blurAlphaChannel(alpha, blurred, width, height, f.BlurRadius)
		for i, v := range blurred {
			alpha[i] = min(v*shadowIntensityFactor, 1)
		}
	}

	compositeShadow(dst, alpha, minX, minY, width, height, f.Color)
}

// ExpandBounds returns the expanded bounds after shadow application: the
// blur radius in all directions, plus the offset in its direction of travel.
func (f *DropShadowFilter) ExpandBounds(input gg.Rect) gg.Rect {
	blurExpand := math.Ceil(f.BlurRadius)

	left, right, top, bottom := blurExpand, blurExpand, blurExpand, blurExpand
	if f.OffsetX < 0 {
		left += -f.OffsetX
	} else {
		right += f.OffsetX
	}
	if f.OffsetY < 0 {
		top += -f.OffsetY
	} else {
		bottom += f.OffsetY
	}

	return gg.Rect{
		Min: gg.Pt(input.Min.X-left, input.Min.Y-top),
		Max: gg.Pt(input.Max.X+right, input.Max.Y+bottom),
	}
}

// extractAlpha extracts the alpha channel from src into a [0,1] float32
// buffer, applying the shadow's offset during extraction.
func extractAlpha(src *gg.Pixmap, alpha []float32, minX, minY, width, height, offsetX, offsetY int) {
	srcWidth := src.Width()
	srcHeight := src.Height()
	srcData := src.Data()

	for y := 0; y < height; y++ {
		srcY := minY + y - offsetY

		for x := 0; x < width; x++ {
			srcX := minX + x - offsetX
			idx := y*width + x

			if srcX < 0 || srcX >= srcWidth || srcY < 0 || srcY >= srcHeight {
				alpha[idx] = 0
				continue
			}

			srcIdx := (srcY*srcWidth + srcX) * 4
			alpha[idx] = float32(srcData[srcIdx+3]) / 255.0
		}
	}
}

// blurAlphaChannel applies separable box blur to a single-channel alpha
// buffer. Alpha has no gamma encoding, so this runs directly on the [0,1]
// values without the linear-light conversion the RGB blur pass uses.
func blurAlphaChannel(src, dst []float32, width, height int, radius float64) {
	kernel := BoxKernel(int(math.Ceil(radius)))
	kernelSize := len(kernel)
	halfKernel := kernelSize / 2

	temp := make([]float32, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float32
			for k := 0; k < kernelSize; k++ {
				kx := x + k - halfKernel
				if kx < 0 {
					kx = 0
				} else if kx >= width {
					kx = width - 1
				}
				sum += src[y*width+kx] * kernel[k]
			}
			temp[y*width+x] = sum
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float32
			for k := 0; k < kernelSize; k++ {
				ky := y + k - halfKernel
				if ky < 0 {
					ky = 0
				} else if ky >= height {
					ky = height - 1
				}
				sum += temp[ky*width+x] * kernel[k]
			}
			dst[y*width+x] = sum
		}
	}
}

// compositeShadow colorizes shadowAlpha with color and composites it onto
// dst with source-over.
func compositeShadow(dst *gg.Pixmap, shadowAlpha []float32, minX, minY, width, height int, color gg.Color) {
	for y := 0; y < height; y++ {
		dstY := minY + y
		for x := 0; x < width; x++ {
			dstX := minX + x

			a := shadowAlpha[y*width+x] * (float32(color.A) / 255.0)
			if a <= 0 {
				continue
			}

			dstC := dst.GetPixel(dstX, dstY)
			invA := 1 - a
			dstA := float32(dstC.A) / 255.0

			outA := a + dstA*invA
			if outA <= 0 {
				continue
			}
			mix := func(sc, dc uint8) uint8 {
				s := float32(sc) / 255
				d := float32(dc) / 255
				v := (s*a + d*dstA*invA) / outA
				return clampUint8(v * 255)
			}

			dst.SetPixel(dstX, dstY, gg.Color{
				R: mix(color.R, dstC.R),
				G: mix(color.G, dstC.G),
				B: mix(color.B, dstC.B),
				A: clampUint8(outA * 255),
			})
		}
	}
}
