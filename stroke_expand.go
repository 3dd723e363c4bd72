package gg

import (
	"math"

	sstroke "github.com/gogpu/gg/internal/stroke"
)

// expandStroke converts the device-space flattened contours of a path into
// the filled outline contours produced by stroking it with style, following
// the kurbo/tiny-skia offset-and-join algorithm of internal/stroke (see
// Context.Stroke for how the result is then filled).
//
// scale converts the stroke's user-space width into device units: the
// current transform's linear part is not generally a uniform scale, but
// sqrt(|det|) is the standard area-preserving approximation used when a
// single scalar stroke width has to track a 2D transform.
func expandStroke(contours [][]Point, style Stroke, scale float64) [][]Point {
	deviceStyle := sstroke.Stroke{
		Width:      style.Width * scale,
		Cap:        sstroke.LineCap(style.Cap),
		Join:       sstroke.LineJoin(style.Join),
		MiterLimit: style.MiterLimit,
	}
	if deviceStyle.Width <= 0 {
		return nil
	}

	expander := sstroke.NewStrokeExpander(deviceStyle)

	var out [][]Point
	for _, contour := range contours {
		for _, dashed := range applyDash(contour, style.Dash) {
			if len(dashed) < 2 {
				continue
			}
			elements := toStrokeElements(dashed)
			expanded := expander.Expand(elements)
			out = append(out, fromStrokeElements(expanded)...)
		}
	}
	return out
}

// toStrokeElements converts a flattened polyline into internal/stroke path
// elements, treating a polyline whose endpoints coincide as closed.
func toStrokeElements(points []Point) []sstroke.PathElement {
	elems := make([]sstroke.PathElement, 0, len(points)+1)
	elems = append(elems, sstroke.MoveTo{Point: sstroke.Point{X: points[0].X, Y: points[0].Y}})

	n := len(points)
	closed := n > 2 && math.Hypot(points[0].X-points[n-1].X, points[0].Y-points[n-1].Y) < 1e-9
	end := n
	if closed {
		end = n - 1
	}
	for i := 1; i < end; i++ {
		elems = append(elems, sstroke.LineTo{Point: sstroke.Point{X: points[i].X, Y: points[i].Y}})
	}
	if closed {
		elems = append(elems, sstroke.Close{})
	}
	return elems
}

// fromStrokeElements converts the filled-outline elements produced by
// StrokeExpander.Expand back into contours for the polygon filler.
func fromStrokeElements(elems []sstroke.PathElement) [][]Point {
	var contours [][]Point
	var current []Point

	flush := func() {
		if len(current) > 1 {
			contours = append(contours, current)
		}
		current = nil
	}

	for _, e := range elems {
		switch v := e.(type) {
		case sstroke.MoveTo:
			flush()
			current = append(current, Point{X: v.Point.X, Y: v.Point.Y})
		case sstroke.LineTo:
			current = append(current, Point{X: v.Point.X, Y: v.Point.Y})
		case sstroke.QuadTo:
			current = append(current, Point{X: v.Point.X, Y: v.Point.Y})
		case sstroke.CubicTo:
			current = append(current, Point{X: v.Point.X, Y: v.Point.Y})
		case sstroke.Close:
			// The filler closes each contour implicitly.
		}
	}
	flush()
	return contours
}
