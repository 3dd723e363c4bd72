package gg

// EvalContext carries the ambient state a PaintSource needs to evaluate
// a color at a device pixel: the transform in effect (for gradient-space
// mapping), the per-draw globalAlpha multiplier, and the sub-pixel
// opacity scalar used to attenuate strokes thinner than one device pixel.
type EvalContext struct {
	Transform       Matrix
	GlobalAlpha     float64
	SubPixelOpacity float64
}

// PaintSource is anything that can produce a color per device pixel:
// a solid color, a gradient, a pattern, or a caller-supplied function.
// Solid returning true lets the direct-path dispatcher keep the fast
// path without introspecting concrete types.
type PaintSource interface {
	// Eval returns the paint's color at device pixel (x,y).
	Eval(x, y float64, ctx EvalContext) Color

	// Solid returns the paint's constant color and true if the source is
	// position-independent; otherwise returns the zero Color and false.
	Solid() (Color, bool)
}

// SolidPaint is the required PaintSource implementation: a single
// constant color.
type SolidPaint struct {
	Color Color
}

// NewSolidPaint creates a solid-color paint source.
func NewSolidPaint(c Color) SolidPaint {
	return SolidPaint{Color: c}
}

// Eval implements PaintSource.
func (s SolidPaint) Eval(_, _ float64, _ EvalContext) Color {
	return s.Color
}

// Solid implements PaintSource.
func (s SolidPaint) Solid() (Color, bool) {
	return s.Color, true
}
