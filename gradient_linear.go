package gg

// LinearGradient is a PaintSource that transitions between color stops
// along the line from Start to End. Colors interpolate directly in
// sRGB space, matching the engine's 8-bit non-premultiplied model.
type LinearGradient struct {
	Start  Point
	End    Point
	Stops  []ColorStop
	Extend ExtendMode
}

// NewLinearGradient creates a linear gradient from (x0,y0) to (x1,y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		Start:  Point{X: x0, Y: y0},
		End:    Point{X: x1, Y: y1},
		Extend: ExtendPad,
	}
}

// AddColorStop adds a color stop and returns the gradient for chaining.
func (g *LinearGradient) AddColorStop(offset float64, c Color) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode and returns the gradient for chaining.
func (g *LinearGradient) SetExtend(mode ExtendMode) *LinearGradient {
	g.Extend = mode
	return g
}

// Eval implements PaintSource. x,y are device-pixel coordinates and are
// compared with Start/End directly; EvalContext.Transform is not applied.
func (g *LinearGradient) Eval(x, y float64, _ EvalContext) Color {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t, g.Extend)
}

// Solid implements PaintSource; a gradient is never position-independent.
func (g *LinearGradient) Solid() (Color, bool) {
	return Color{}, false
}
