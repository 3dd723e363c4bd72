package gg

// ColorFunc computes a color for a device-pixel coordinate. It is the escape
// hatch the PaintSource interface leaves open for callers who
// want something other than a solid color or one of the built-in
// gradients (e.g. a procedural texture).
type ColorFunc func(x, y float64) Color

// CustomPaint adapts a ColorFunc to PaintSource.
type CustomPaint struct {
	Func ColorFunc
	Name string // optional, for diagnostics
}

// NewCustomPaint wraps fn as a PaintSource.
func NewCustomPaint(fn ColorFunc) *CustomPaint {
	return &CustomPaint{Func: fn}
}

// WithName sets a diagnostic name and returns the paint for chaining.
func (c *CustomPaint) WithName(name string) *CustomPaint {
	c.Name = name
	return c
}

// Eval implements PaintSource.
func (c *CustomPaint) Eval(x, y float64, _ EvalContext) Color {
	if c.Func == nil {
		return Transparent
	}
	return c.Func(x, y)
}

// Solid implements PaintSource. A custom function is never known to be
// position-independent, so this always reports false.
func (c *CustomPaint) Solid() (Color, bool) {
	return Color{}, false
}
