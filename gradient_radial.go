package gg

import "math"

// RadialGradient is a PaintSource radiating colors from a focal point
// within a circle defined by Center and EndRadius. Supports focal
// gradients (Focus offset from Center, spotlight-style).
type RadialGradient struct {
	Center      Point
	Focus       Point
	StartRadius float64
	EndRadius   float64
	Stops       []ColorStop
	Extend      ExtendMode
}

// NewRadialGradient creates a radial gradient transitioning from
// startRadius to endRadius around (cx,cy). Focus defaults to center.
func NewRadialGradient(cx, cy, startRadius, endRadius float64) *RadialGradient {
	center := Point{X: cx, Y: cy}
	return &RadialGradient{
		Center:      center,
		Focus:       center,
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Extend:      ExtendPad,
	}
}

// SetFocus sets the focal point and returns the gradient for chaining.
func (g *RadialGradient) SetFocus(fx, fy float64) *RadialGradient {
	g.Focus = Point{X: fx, Y: fy}
	return g
}

// AddColorStop adds a color stop and returns the gradient for chaining.
func (g *RadialGradient) AddColorStop(offset float64, c Color) *RadialGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode and returns the gradient for chaining.
func (g *RadialGradient) SetExtend(mode ExtendMode) *RadialGradient {
	g.Extend = mode
	return g
}

// Eval implements PaintSource.
func (g *RadialGradient) Eval(x, y float64, _ EvalContext) Color {
	radiusDiff := g.EndRadius - g.StartRadius
	if radiusDiff == 0 {
		return firstStopColor(g.Stops)
	}
	t := g.computeT(x, y)
	return colorAtOffset(g.Stops, t, g.Extend)
}

// Solid implements PaintSource; a gradient is never position-independent.
func (g *RadialGradient) Solid() (Color, bool) {
	return Color{}, false
}

func (g *RadialGradient) computeT(x, y float64) float64 {
	if g.Focus.X == g.Center.X && g.Focus.Y == g.Center.Y {
		return g.computeTSimple(x, y)
	}
	return g.computeTFocal(x, y)
}

func (g *RadialGradient) computeTSimple(x, y float64) float64 {
	dx := x - g.Center.X
	dy := y - g.Center.Y
	distance := math.Sqrt(dx*dx + dy*dy)

	radiusDiff := g.EndRadius - g.StartRadius
	if radiusDiff == 0 {
		return 0
	}
	return (distance - g.StartRadius) / radiusDiff
}

// computeTFocal solves the ray-circle intersection for a focal gradient:
// ray P(t) = Focus + t*(point-Focus), circle |P-Center| = EndRadius.
func (g *RadialGradient) computeTFocal(x, y float64) float64 {
	dx := x - g.Focus.X
	dy := y - g.Focus.Y

	fx := g.Center.X - g.Focus.X
	fy := g.Center.Y - g.Focus.Y

	a := dx*dx + dy*dy
	b := -2 * (dx*fx + dy*fy)
	c := fx*fx + fy*fy - g.EndRadius*g.EndRadius

	if a == 0 {
		return 0
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 1
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0
	}

	pointDist := math.Sqrt(a)
	intersectDist := t * pointDist
	if intersectDist == 0 {
		return 0
	}
	return pointDist / intersectDist
}
