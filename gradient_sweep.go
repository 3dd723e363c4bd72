package gg

import "math"

// SweepGradient is a PaintSource sweeping colors angularly around a
// center point, from StartAngle to EndAngle (radians). Also known as a
// conic gradient.
type SweepGradient struct {
	Center     Point
	StartAngle float64
	EndAngle   float64
	Stops      []ColorStop
	Extend     ExtendMode
}

// NewSweepGradient creates a sweep gradient centered at (cx,cy), sweeping
// a full turn from startAngle by default.
func NewSweepGradient(cx, cy, startAngle float64) *SweepGradient {
	return &SweepGradient{
		Center:     Point{X: cx, Y: cy},
		StartAngle: startAngle,
		EndAngle:   startAngle + 2*math.Pi,
		Extend:     ExtendPad,
	}
}

// SetEndAngle sets the end angle and returns the gradient for chaining.
func (g *SweepGradient) SetEndAngle(endAngle float64) *SweepGradient {
	g.EndAngle = endAngle
	return g
}

// AddColorStop adds a color stop and returns the gradient for chaining.
func (g *SweepGradient) AddColorStop(offset float64, c Color) *SweepGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode and returns the gradient for chaining.
func (g *SweepGradient) SetExtend(mode ExtendMode) *SweepGradient {
	g.Extend = mode
	return g
}

// Eval implements PaintSource.
func (g *SweepGradient) Eval(x, y float64, _ EvalContext) Color {
	dx := x - g.Center.X
	dy := y - g.Center.Y
	if dx == 0 && dy == 0 {
		return firstStopColor(g.Stops)
	}

	angle := math.Atan2(dy, dx)
	t := g.angleToT(angle)
	return colorAtOffset(g.Stops, t, g.Extend)
}

// Solid implements PaintSource; a gradient is never position-independent.
func (g *SweepGradient) Solid() (Color, bool) {
	return Color{}, false
}

func (g *SweepGradient) angleToT(angle float64) float64 {
	sweepRange := g.EndAngle - g.StartAngle
	if sweepRange == 0 {
		return 0
	}

	relativeAngle := normalizeAngle(angle-g.StartAngle, sweepRange)
	return relativeAngle / sweepRange
}

// normalizeAngle wraps angle into [0,2π) for a positive sweep, or
// (-2π,0] for a negative sweep.
func normalizeAngle(angle, sweepRange float64) float64 {
	const twoPi = 2 * math.Pi

	if sweepRange > 0 {
		for angle < 0 {
			angle += twoPi
		}
		for angle >= twoPi {
			angle -= twoPi
		}
	} else {
		for angle > 0 {
			angle -= twoPi
		}
		for angle <= -twoPi {
			angle += twoPi
		}
	}
	return angle
}
