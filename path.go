package gg

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// ArcTo represents a circular arc command, centered at Center with the
// given Radius, sweeping from Angle1 to Angle2 (radians, CCW selects the
// sweep direction). Stored as-is, with no geometric simplification;
// angle normalization and chord-tolerance discretization into line
// segments happen at flatten time, not here.
type ArcTo struct {
	Center         Point
	Radius         float64
	Angle1, Angle2 float64
	CCW            bool
}

func (ArcTo) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
// A path has a current point after MoveTo, LineTo, or any curve operation.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		case ArcTo:
			// A general affine transform turns a circle into an ellipse,
			// which this element can't represent exactly. We preserve the
			// rotation (exact for rotation+uniform-scale transforms, the
			// common case) and derive the new radius from how far the
			// transform carries a point on the original circle.
			rot := math.Atan2(m.B, m.A)
			center := m.TransformPoint(e.Center)
			edge := m.TransformPoint(Point{X: e.Center.X + e.Radius, Y: e.Center.Y})
			radius := math.Hypot(edge.X-center.X, edge.Y-center.Y)
			result.Arc(center.X, center.Y, radius, e.Angle1+rot, e.Angle2+rot, e.CCW)
		}
	}
	return result
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Ellipse adds an ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Arc adds a circular arc command to the path, centered at (cx,cy) with
// radius r, sweeping from angle1 to angle2 (radians); ccw selects the
// sweep direction. Angles are recorded as given — no normalization here;
// that (and discretization into line segments) happens at flatten time.
// If the path is empty, an implicit MoveTo to the arc's starting point is
// recorded first, mirroring the canvas arc() command.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64, ccw bool) {
	if len(p.elements) == 0 {
		p.MoveTo(cx+r*math.Cos(angle1), cy+r*math.Sin(angle1))
	}
	p.elements = append(p.elements, ArcTo{
		Center: Pt(cx, cy),
		Radius: r,
		Angle1: angle1,
		Angle2: angle2,
		CCW:    ccw,
	})
	p.current = Pt(cx+r*math.Cos(angle2), cy+r*math.Sin(angle2))
}

// ArcTo adds a tangent-line arc: a line from the current point toward
// (x1,y1), followed by a circular arc of radius r tangent to segments
// (current,p1) and (p1,p2), per the canvas arcTo(x1,y1,x2,y2,r) command.
// If there is no current point, it behaves like MoveTo(x1,y1). Validating
// r and the coordinates (IndexSize/TypeError in the canvas spec) is the
// caller's responsibility; this method assumes finite, non-negative r.
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) {
	if !p.HasCurrentPoint() {
		p.MoveTo(x1, y1)
		return
	}

	x0, y0 := p.current.X, p.current.Y
	dx0, dy0 := x0-x1, y0-y1
	dx1, dy1 := x2-x1, y2-y1
	len0 := math.Hypot(dx0, dy0)
	len1 := math.Hypot(dx1, dy1)
	if len0 == 0 || len1 == 0 || r == 0 {
		p.LineTo(x1, y1)
		return
	}
	dx0, dy0 = dx0/len0, dy0/len0
	dx1, dy1 = dx1/len1, dy1/len1

	cosTheta := math.Max(-1, math.Min(1, dx0*dx1+dy0*dy1))
	theta := math.Acos(cosTheta)
	if theta == 0 || theta == math.Pi {
		p.LineTo(x1, y1)
		return
	}

	tangentDist := r / math.Tan(theta/2)
	t0x, t0y := x1+dx0*tangentDist, y1+dy0*tangentDist
	t1x, t1y := x1+dx1*tangentDist, y1+dy1*tangentDist

	bx, by := dx0+dx1, dy0+dy1
	blen := math.Hypot(bx, by)
	if blen == 0 {
		p.LineTo(x1, y1)
		return
	}
	bx, by = bx/blen, by/blen
	centerDist := r / math.Sin(theta/2)
	cx, cy := x1+bx*centerDist, y1+by*centerDist

	a0 := math.Atan2(t0y-cy, t0x-cx)
	a1 := math.Atan2(t1y-cy, t1x-cx)
	ccw := (dx0*dy1 - dy0*dx1) > 0

	p.LineTo(t0x, t0y)
	p.Arc(cx, cy, r, a0, a1, ccw)
}

// RoundedRectangle adds a rectangle with rounded corners.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	// Clamp radius to half of the smaller dimension
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0, false)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2, false)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi, false)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2, false)
	p.Close()
}

// normalizeArcSweep resolves an ArcTo's (Angle1,Angle2,CCW) into the
// actual start/end angle of its sweep direction, per the canvas arc()
// rule: a clockwise sweep (ccw==false) always has increasing angle, a
// counterclockwise sweep always has decreasing angle, wrapping by
// multiples of 2Ï€ as needed and capped at one full turn.
func normalizeArcSweep(a1, a2 float64, ccw bool) (float64, float64) {
	const twoPi = 2 * math.Pi
	if !ccw {
		for a2 < a1 {
			a2 += twoPi
		}
		if a2-a1 > twoPi {
			a2 = a1 + twoPi
		}
	} else {
		for a2 > a1 {
			a2 -= twoPi
		}
		if a1-a2 > twoPi {
			a2 = a1 - twoPi
		}
	}
	return a1, a2
}

// arcEndpoint returns the arc's terminal point, resolving its sweep
// direction first.
func arcEndpoint(e ArcTo) Point {
	_, a2 := normalizeArcSweep(e.Angle1, e.Angle2, e.CCW)
	return Point{X: e.Center.X + e.Radius*math.Cos(a2), Y: e.Center.Y + e.Radius*math.Sin(a2)}
}

// arcPoints discretizes arc e into a sequence of points (excluding its
// starting point) such that the chord-to-arc deviation of each segment
// is at most tolerance.
func arcPoints(e ArcTo, tolerance float64) []Point {
	a1, a2 := normalizeArcSweep(e.Angle1, e.Angle2, e.CCW)
	sweep := a2 - a1
	if sweep == 0 {
		return []Point{arcEndpoint(e)}
	}
	if tolerance <= 0 {
		tolerance = 0.1
	}

	absSweep := math.Abs(sweep)
	maxStep := absSweep
	if e.Radius > 0 && tolerance < e.Radius {
		if step := 2 * math.Acos(1-tolerance/e.Radius); step > 0 {
			maxStep = step
		}
	}

	n := int(math.Ceil(absSweep / maxStep))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	pts := make([]Point, n)
	for i := 1; i <= n; i++ {
		a := a1 + step*float64(i)
		pts[i-1] = Point{X: e.Center.X + e.Radius*math.Cos(a), Y: e.Center.Y + e.Radius*math.Sin(a)}
	}
	return pts
}

// arcArea returns the closed-form shoelace-style area contribution of a
// circular arc sweep from a1 to a2 (already sweep-resolved).
func arcArea(cx, cy, r, a1, a2 float64) float64 {
	return 0.5 * (r*cx*(math.Sin(a2)-math.Sin(a1)) - r*cy*(math.Cos(a2)-math.Cos(a1)) + r*r*(a2-a1))
}

// arcBBox returns the tight bounding box of arc e.
func arcBBox(e ArcTo) Rect {
	a1, a2 := normalizeArcSweep(e.Angle1, e.Angle2, e.CCW)
	if a1 > a2 {
		a1, a2 = a2, a1
	}
	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
	at := func(a float64) {
		bbox = expandBBox(bbox, Point{X: e.Center.X + e.Radius*math.Cos(a), Y: e.Center.Y + e.Radius*math.Sin(a)})
	}
	at(a1)
	at(a2)
	for _, axis := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		for axis < a1 {
			axis += 2 * math.Pi
		}
		if axis <= a2 {
			at(axis)
		}
	}
	return bbox
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
