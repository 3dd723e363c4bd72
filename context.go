package gg

import (
	"math"

	"github.com/gogpu/gg/internal/blend"
	"github.com/gogpu/gg/internal/clip"
	"github.com/gogpu/gg/internal/filter"
	"github.com/gogpu/gg/internal/raster"
)

// flattenTolerance is the maximum deviation, in device pixels, allowed
// between a curve and the polyline that replaces it for rasterization.
const flattenTolerance = 0.25

// state holds the part of a Context's drawing state that save/restore
// pushes and pops as a unit: the transform, paint and stroke style,
// compositing mode, clip region, and shadow parameters. Path-building
// state (the current Path) is deliberately excluded, matching the
// canvas convention that save/restore never touches the current path.
type state struct {
	transform   Matrix
	fillPaint   PaintSource
	strokePaint PaintSource
	fillRule    FillRule
	stroke      Stroke
	globalAlpha float64
	compositeOp CompositeOperation
	clipMask    *clip.Mask

	shadowColor   Color
	shadowBlur    float64
	shadowOffsetX float64
	shadowOffsetY float64
}

func defaultState() state {
	return state{
		transform:   Identity(),
		fillPaint:   SolidPaint{Color: Black},
		strokePaint: SolidPaint{Color: Black},
		fillRule:    FillRuleNonZero,
		stroke:      DefaultStroke(),
		globalAlpha: 1,
		compositeOp: SourceOver,
	}
}

// Context is the immutable-handle, mutable-state drawing surface: an
// immediate-mode API over a Pixmap, modeled on the canvas 2D drawing
// context. All drawing happens synchronously against the Pixmap;
// Context itself holds no pixels of its own.
type Context struct {
	pixmap *Pixmap
	filler *raster.Filler

	cur   state
	stack []state

	path *Path

	// slowPathHits counts Fill/Stroke calls that fell through to the
	// general flatten-and-scanline pipeline instead of a direct
	// rasterizer, for tests and diagnostics to assert on.
	slowPathHits uint64
}

// NewContext creates a Context backed by a new, transparent Pixmap of
// the given dimensions, or the Pixmap supplied via WithPixmap.
func NewContext(width, height int, opts ...ContextOption) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pm := o.pixmap
	if pm == nil {
		var err error
		pm, err = NewPixmap(width, height)
		if err != nil {
			return nil, err
		}
	}

	return &Context{
		pixmap: pm,
		filler: raster.NewFiller(pm.Width(), pm.Height()),
		cur:    defaultState(),
		path:   NewPath(),
	}, nil
}

// Pixmap returns the surface the Context draws onto.
func (c *Context) Pixmap() *Pixmap { return c.pixmap }

// Width returns the surface width in pixels.
func (c *Context) Width() int { return c.pixmap.Width() }

// Height returns the surface height in pixels.
func (c *Context) Height() int { return c.pixmap.Height() }

// SlowPathHits returns the number of Fill/Stroke calls since creation
// that used the general path pipeline rather than a direct rasterizer.
func (c *Context) SlowPathHits() uint64 { return c.slowPathHits }

// Save pushes a copy of the current drawing state (transform, paint,
// stroke style, clip, shadow, composite op) onto a stack.
func (c *Context) Save() {
	c.stack = append(c.stack, c.cur)
}

// Restore pops the most recently saved drawing state. A Restore with
// nothing left to pop is a no-op.
func (c *Context) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.cur = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// --- transform ---

// Matrix returns the current transform.
func (c *Context) Matrix() Matrix { return c.cur.transform }

// SetMatrix replaces the current transform.
func (c *Context) SetMatrix(m Matrix) { c.cur.transform = m }

// ResetTransform resets the current transform to identity.
func (c *Context) ResetTransform() { c.cur.transform = Identity() }

// Translate applies a translation to the current transform.
func (c *Context) Translate(x, y float64) {
	c.cur.transform = c.cur.transform.Multiply(Translate(x, y))
}

// Scale applies a scale to the current transform.
func (c *Context) Scale(sx, sy float64) {
	c.cur.transform = c.cur.transform.Multiply(Scale(sx, sy))
}

// Rotate applies a rotation (radians) to the current transform.
func (c *Context) Rotate(angle float64) {
	c.cur.transform = c.cur.transform.Multiply(Rotate(angle))
}

// Transform composes m onto the current transform.
func (c *Context) Transform(m Matrix) {
	c.cur.transform = c.cur.transform.Multiply(m)
}

// --- style setters ---

// SetFillColor sets a solid fill color.
func (c *Context) SetFillColor(col Color) { c.cur.fillPaint = SolidPaint{Color: col} }

// SetFillPaint sets an arbitrary fill paint source (gradients, patterns).
func (c *Context) SetFillPaint(p PaintSource) { c.cur.fillPaint = p }

// SetStrokeColor sets a solid stroke color.
func (c *Context) SetStrokeColor(col Color) { c.cur.strokePaint = SolidPaint{Color: col} }

// SetStrokePaint sets an arbitrary stroke paint source.
func (c *Context) SetStrokePaint(p PaintSource) { c.cur.strokePaint = p }

// SetFillRule selects the non-zero or even-odd fill rule.
func (c *Context) SetFillRule(r FillRule) { c.cur.fillRule = r }

// SetLineWidth sets the stroke width, in user-space units.
func (c *Context) SetLineWidth(w float64) { c.cur.stroke.Width = w }

// SetLineCap sets the stroke line cap style.
func (c *Context) SetLineCap(cap LineCap) { c.cur.stroke.Cap = cap }

// SetLineJoin sets the stroke line join style.
func (c *Context) SetLineJoin(join LineJoin) { c.cur.stroke.Join = join }

// SetMiterLimit sets the miter join length limit.
func (c *Context) SetMiterLimit(limit float64) { c.cur.stroke.MiterLimit = limit }

// SetLineDash sets the dash pattern. An empty or all-zero pattern
// disables dashing.
func (c *Context) SetLineDash(pattern []float64) {
	if len(pattern) == 0 {
		c.cur.stroke.Dash = nil
		return
	}
	c.cur.stroke.Dash = NewDash(pattern...)
}

// SetLineDashOffset sets the dash phase offset. The offset is stored with
// the dash pattern, so with no pattern set it has no effect.
func (c *Context) SetLineDashOffset(offset float64) {
	if c.cur.stroke.Dash == nil {
		c.cur.stroke.Dash = NewDash()
	}
	c.cur.stroke.Dash = c.cur.stroke.Dash.WithOffset(offset)
}

// SetGlobalAlpha sets the alpha multiplier applied to every subsequent
// draw, clamped to [0,1].
func (c *Context) SetGlobalAlpha(a float64) {
	c.cur.globalAlpha = math.Max(0, math.Min(1, a))
}

// SetCompositeOperation sets the Porter-Duff operator used to blend
// subsequent draws onto the surface.
func (c *Context) SetCompositeOperation(op CompositeOperation) { c.cur.compositeOp = op }

// SetShadowColor sets the shadow color (alpha 0 disables the shadow).
func (c *Context) SetShadowColor(col Color) { c.cur.shadowColor = col }

// SetShadowBlur sets the shadow's box blur radius in pixels.
func (c *Context) SetShadowBlur(radius float64) { c.cur.shadowBlur = radius }

// SetShadowOffset sets the shadow's offset from the shape, in pixels.
func (c *Context) SetShadowOffset(x, y float64) {
	c.cur.shadowOffsetX = x
	c.cur.shadowOffsetY = y
}

func (c *Context) shadowActive() bool {
	return c.cur.shadowColor.A > 0 &&
		(c.cur.shadowBlur > 0 || c.cur.shadowOffsetX != 0 || c.cur.shadowOffsetY != 0)
}

// --- path building ---

// BeginPath discards the current path and starts a new, empty one.
func (c *Context) BeginPath() { c.path = NewPath() }

// MoveTo starts a new subpath at (x,y), in user space.
func (c *Context) MoveTo(x, y float64) { c.path.MoveTo(x, y) }

// LineTo appends a line segment to (x,y), in user space.
func (c *Context) LineTo(x, y float64) { c.path.LineTo(x, y) }

// QuadraticTo appends a quadratic Bezier segment, in user space.
func (c *Context) QuadraticTo(cx, cy, x, y float64) { c.path.QuadraticTo(cx, cy, x, y) }

// CubicTo appends a cubic Bezier segment, in user space.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ArcTo appends a tangent-line arc, per the canvas arcTo() command.
func (c *Context) ArcTo(x1, y1, x2, y2, r float64) { c.path.ArcTo(x1, y1, x2, y2, r) }

// Arc appends a circular arc, per the canvas arc() command.
func (c *Context) Arc(cx, cy, r, angle1, angle2 float64, ccw bool) {
	c.path.Arc(cx, cy, r, angle1, angle2, ccw)
}

// ClosePath closes the current subpath with a line back to its start.
func (c *Context) ClosePath() { c.path.Close() }

// Rectangle appends an axis-aligned rectangle subpath.
func (c *Context) Rectangle(x, y, w, h float64) { c.path.Rectangle(x, y, w, h) }

// Path returns the current path under construction. Mutating it directly
// is equivalent to calling the Context's path-building methods.
func (c *Context) Path() *Path { return c.path }

// --- fill / stroke ---

// Fill paints the interior of the current path using the fill paint and
// fill rule, then clears the path.
func (c *Context) Fill() {
	c.FillPreserve()
	c.BeginPath()
}

// FillPreserve paints the interior of the current path without clearing it.
func (c *Context) FillPreserve() {
	c.fillPathDirect(c.path, c.cur.fillRule)
}

// Stroke paints an outline of the current path using the stroke paint
// and style, then clears the path.
func (c *Context) Stroke() {
	c.StrokePreserve()
	c.BeginPath()
}

// StrokePreserve paints an outline of the current path without clearing it.
func (c *Context) StrokePreserve() {
	c.strokePathDirect(c.path)
}

// fillPathDirect tries a direct rasterizer for a handful of common shapes
// before falling back to the general flatten-and-scanline pipeline.
func (c *Context) fillPathDirect(path *Path, rule FillRule) {
	if path == nil || len(path.Elements()) == 0 {
		return
	}

	if c.canUseDirectPath() {
		if c.dispatchDirectFill(path) {
			return
		}
	}

	c.slowPathHits++
	device := path.Transform(c.cur.transform)
	contours := device.FlattenPolygons(flattenTolerance)
	if len(contours) == 0 {
		return
	}

	if c.shadowActive() {
		c.paintShadowForContours(contours, rule)
	}
	c.rasterFill(c.pixmap, contours, rule, c.cur.fillPaint, c.cur.clipMask, c.cur.compositeOp, c.cur.globalAlpha)
}

func (c *Context) strokePathDirect(path *Path) {
	if path == nil || len(path.Elements()) == 0 {
		return
	}

	if c.canUseDirectPath() && c.cur.stroke.Dash == nil {
		if c.dispatchDirectStroke(path) {
			return
		}
	}

	c.slowPathHits++
	device := path.Transform(c.cur.transform)
	contours := device.FlattenPolygons(flattenTolerance)
	if len(contours) == 0 {
		return
	}

	scale := c.transformScale()
	strokeContours := expandStroke(contours, c.cur.stroke, scale)
	if len(strokeContours) == 0 {
		return
	}

	if c.shadowActive() {
		c.paintShadowForContours(strokeContours, FillRuleNonZero)
	}
	c.rasterFill(c.pixmap, strokeContours, FillRuleNonZero, c.cur.strokePaint, c.cur.clipMask, c.cur.compositeOp, c.cur.globalAlpha)
}

// transformScale approximates the current transform's uniform scale
// factor as sqrt(|det|), the standard way to track a scalar stroke
// width through a 2D transform that may not be a uniform scale.
func (c *Context) transformScale() float64 {
	m := c.cur.transform
	det := m.A*m.D - m.B*m.C
	return math.Sqrt(math.Abs(det))
}

// canUseDirectPath reports whether the current state makes a direct
// rasterizer observably equivalent to the general pipeline: an
// axis-aligned transform, full opacity, default compositing, and no
// active shadow.
func (c *Context) canUseDirectPath() bool {
	if !c.cur.transform.IsAxisAligned() {
		return false
	}
	if c.cur.globalAlpha != 1 {
		return false
	}
	if c.cur.compositeOp != SourceOver {
		return false
	}
	if c.shadowActive() {
		return false
	}
	return true
}

func (c *Context) dispatchDirectFill(path *Path) bool {
	paintCol, solid := c.cur.fillPaint.Solid()
	if !solid {
		return false
	}

	shape := DetectShape(path)
	if shape.Kind == ShapeCircle {
		center := c.cur.transform.TransformPoint(Pt(shape.CenterX, shape.CenterY))
		r := shape.RadiusX * c.transformScale()
		directFillCircle(c.pixmap, int(math.Round(center.X)), int(math.Round(center.Y)), int(math.Round(r)), paintCol, c.cur.clipMask)
		return true
	}

	if rect, ok := rectFromElements(path.Elements()); ok {
		p0 := c.cur.transform.TransformPoint(rect.Min)
		p1 := c.cur.transform.TransformPoint(rect.Max)
		x0, x1 := sortedInt(p0.X, p1.X)
		y0, y1 := sortedInt(p0.Y, p1.Y)
		directFillRect(c.pixmap, x0, y0, x1, y1, paintCol, c.cur.clipMask)
		return true
	}

	return false
}

func (c *Context) dispatchDirectStroke(path *Path) bool {
	paintCol, solid := c.cur.strokePaint.Solid()
	if !solid {
		return false
	}
	widthDev := c.cur.stroke.Width * c.transformScale()

	shape := DetectShape(path)
	if shape.Kind == ShapeCircle {
		center := c.cur.transform.TransformPoint(Pt(shape.CenterX, shape.CenterY))
		r := shape.RadiusX * c.transformScale()
		directStrokeCircle(c.pixmap, int(math.Round(center.X)), int(math.Round(center.Y)), r, widthDev, paintCol, c.cur.clipMask)
		return true
	}

	if math.Abs(widthDev-1) < 1e-9 {
		if rect, ok := rectFromElements(path.Elements()); ok {
			p0 := c.cur.transform.TransformPoint(rect.Min)
			p1 := c.cur.transform.TransformPoint(rect.Max)
			x0, x1 := sortedInt(p0.X, p1.X)
			y0, y1 := sortedInt(p0.Y, p1.Y)
			directStrokeRectOutline(c.pixmap, x0, y0, x1, y1, paintCol, c.cur.clipMask)
			return true
		}
	}

	return false
}

// rectFromElements recognizes the MoveTo+3xLineTo+Close pattern emitted
// by Path.Rectangle as an axis-aligned rectangle in user space.
func rectFromElements(elems []PathElement) (Rect, bool) {
	if len(elems) != 5 {
		return Rect{}, false
	}
	move, ok := elems[0].(MoveTo)
	if !ok {
		return Rect{}, false
	}
	var pts [3]Point
	for i := 0; i < 3; i++ {
		l, ok := elems[i+1].(LineTo)
		if !ok {
			return Rect{}, false
		}
		pts[i] = l.Point
	}
	if _, ok := elems[4].(Close); !ok {
		return Rect{}, false
	}
	minX, maxX := move.Point.X, move.Point.X
	minY, maxY := move.Point.Y, move.Point.Y
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return Rect{Min: Pt(minX, minY), Max: Pt(maxX, maxY)}, true
}

func sortedInt(a, b float64) (int, int) {
	if a > b {
		a, b = b, a
	}
	return int(math.Round(a)), int(math.Round(b))
}

// --- rectangle convenience operations ---

// FillRect fills an axis-aligned rectangle with the current fill style,
// bypassing the current path entirely.
func (c *Context) FillRect(x, y, w, h float64) {
	p := NewPath()
	p.Rectangle(x, y, w, h)
	c.fillPathDirect(p, FillRuleNonZero)
}

// StrokeRect strokes an axis-aligned rectangle's outline with the
// current stroke style, bypassing the current path entirely.
func (c *Context) StrokeRect(x, y, w, h float64) {
	p := NewPath()
	p.Rectangle(x, y, w, h)
	c.strokePathDirect(p)
}

// ClearRect resets an axis-aligned rectangle to transparent black,
// honoring the current clip region but ignoring paint, shadow, and
// compositing state (matching the canvas clearRect contract).
func (c *Context) ClearRect(x, y, w, h float64) {
	p0 := c.cur.transform.TransformPoint(Pt(x, y))
	p1 := c.cur.transform.TransformPoint(Pt(x+w, y+h))
	x0, x1 := sortedInt(p0.X, p1.X)
	y0, y1 := sortedInt(p0.Y, p1.Y)
	directFillRect(c.pixmap, x0, y0, x1, y1, Transparent, c.cur.clipMask)
}

// --- clipping ---

// Clip intersects the current clip region with the interior of the
// current path, using the current fill rule, then clears the path.
func (c *Context) Clip() {
	c.ClipPreserve()
	c.BeginPath()
}

// ClipPreserve intersects the current clip region with the interior of
// the current path without clearing it.
func (c *Context) ClipPreserve() {
	device := c.path.Transform(c.cur.transform)
	contours := device.FlattenPolygons(flattenTolerance)

	shapeMask := clip.NewEmptyMask(c.pixmap.Width(), c.pixmap.Height())
	if len(contours) > 0 {
		c.filler.Fill(shapeMask, toRasterPoints(contours), toRasterFillRule(c.cur.fillRule), opaqueSource, nil, nil)
	}

	if c.cur.clipMask == nil {
		c.cur.clipMask = shapeMask
		return
	}
	c.cur.clipMask = c.cur.clipMask.IntersectWith(shapeMask)
}

// ResetClip removes any active clip region.
func (c *Context) ResetClip() { c.cur.clipMask = nil }

func opaqueSource(dest []raster.RGBA, _, _, length int) {
	for i := 0; i < length; i++ {
		dest[i] = raster.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}

// --- hit testing ---

// IsPointInPath reports whether (x,y), in user space, lies within the
// current path under the current fill rule.
func (c *Context) IsPointInPath(x, y float64) bool {
	if c.cur.fillRule == FillRuleEvenOdd {
		return c.path.Winding(Pt(x, y))%2 != 0
	}
	return c.path.Contains(Pt(x, y))
}

// IsPointInStroke reports whether (x,y), in user space, lies within the
// stroked outline of the current path under the current stroke style.
func (c *Context) IsPointInStroke(x, y float64) bool {
	device := c.path.Transform(c.cur.transform)
	contours := device.FlattenPolygons(flattenTolerance)
	if len(contours) == 0 {
		return false
	}
	strokeContours := expandStroke(contours, c.cur.stroke, c.transformScale())
	pt := c.cur.transform.TransformPoint(Pt(x, y))

	winding := 0
	for _, contour := range strokeContours {
		for i := 0; i < len(contour); i++ {
			j := (i + 1) % len(contour)
			winding += lineWinding(contour[i], contour[j], pt)
		}
	}
	return winding != 0
}

// --- compositing pipeline ---

// rasterFill paints contours (already in device space) through paint,
// respecting clipMask, op, and alpha, writing into dest. Operators in
// blend.CanvasWide route through the two-pass coverage-mask strategy
// since they can erase destination pixels outside the painted shape.
func (c *Context) rasterFill(dest *Pixmap, contours [][]Point, rule FillRule, paint PaintSource, clipMask *clip.Mask, op CompositeOperation, alpha float64) {
	if paint == nil {
		paint = SolidPaint{Color: Black}
	}
	blendOp := blend.Operator(op)
	fillRule := toRasterFillRule(rule)

	if blend.CanvasWide(blendOp) {
		c.canvasWideFill(dest, contours, fillRule, paint, clipMask, blendOp, alpha)
		return
	}

	evalCtx := EvalContext{Transform: c.cur.transform, GlobalAlpha: alpha, SubPixelOpacity: 1}
	spanPainter := SpanPainterFor(paint)
	source := makeSpanSource(spanPainter, evalCtx, alpha)

	var clipTest raster.ClipTest
	if clipMask != nil {
		clipTest = clipMask.ClipTest()
	}
	c.filler.Fill(dest, toRasterPoints(contours), fillRule, source, clipTest, blend.CompositorFor(blendOp))
}

// canvasWideFill implements the two-pass strategy required for operators
// that can erase pixels outside the painted shape: first
// rasterize the shape into a coverage mask, then visit every device
// pixel, compositing the paint (inside the mask) or a fully-transparent
// source (outside it) onto dst. A clip region, if active, still confines
// which pixels are touched at all.
func (c *Context) canvasWideFill(dest *Pixmap, contours [][]Point, rule raster.FillRule, paint PaintSource, clipMask *clip.Mask, op blend.Operator, alpha float64) {
	coverage := clip.NewEmptyMask(dest.Width(), dest.Height())
	c.filler.Fill(coverage, toRasterPoints(contours), rule, opaqueSource, nil, nil)

	evalCtx := EvalContext{Transform: c.cur.transform, GlobalAlpha: alpha, SubPixelOpacity: 1}

	for y := 0; y < dest.Height(); y++ {
		for x := 0; x < dest.Width(); x++ {
			if clipMask != nil && !clipMask.Test(x, y) {
				continue
			}
			var src Color
			if coverage.Test(x, y) {
				src = paint.Eval(float64(x)+0.5, float64(y)+0.5, evalCtx)
				src.A = uint8(math.Round(float64(src.A) * alpha))
			}
			dst := dest.GetPixel(x, y)
			out := blend.Composite(op, colorToRaster(src), colorToRaster(dst))
			dest.SetPixel(x, y, rasterToColor(out))
		}
	}
}

// paintShadowForContours renders the shadow cast by contours/rule before
// the shape itself is painted.
func (c *Context) paintShadowForContours(contours [][]Point, rule FillRule) {
	w, h := c.pixmap.Width(), c.pixmap.Height()
	shape, err := NewPixmap(w, h)
	if err != nil {
		return
	}

	evalCtx := EvalContext{Transform: c.cur.transform, GlobalAlpha: 1, SubPixelOpacity: 1}
	source := makeSpanSource(SpanPainterFor(SolidPaint{Color: White}), evalCtx, 1)
	var clipTest raster.ClipTest
	if c.cur.clipMask != nil {
		clipTest = c.cur.clipMask.ClipTest()
	}
	c.filler.Fill(shape, toRasterPoints(contours), toRasterFillRule(rule), source, clipTest, blend.CompositorFor(blend.SourceOver))

	shadow := filter.NewDropShadowFilter(c.cur.shadowOffsetX, c.cur.shadowOffsetY, c.cur.shadowBlur, c.cur.shadowColor)
	bounds := Rect{Min: Pt(0, 0), Max: Pt(float64(w), float64(h))}
	shadow.Apply(shape, c.pixmap, bounds)
}

// --- color/point conversions between the root package and the raster
// package's import-cycle-avoiding internal copies ---

func toRasterFillRule(r FillRule) raster.FillRule {
	if r == FillRuleEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

func toRasterPoints(contours [][]Point) [][]raster.Point {
	out := make([][]raster.Point, len(contours))
	for i, contour := range contours {
		pts := make([]raster.Point, len(contour))
		for j, p := range contour {
			pts[j] = raster.Point{X: p.X, Y: p.Y}
		}
		out[i] = pts
	}
	return out
}

func colorToRaster(c Color) raster.RGBA {
	return raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func rasterToColor(c raster.RGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// makeSpanSource adapts a SpanPainter into a raster.SpanSource, applying
// globalAlpha to every sampled color.
func makeSpanSource(painter SpanPainter, ctx EvalContext, alpha float64) raster.SpanSource {
	var buf []Color
	return func(dest []raster.RGBA, x, y, length int) {
		if cap(buf) < length {
			buf = make([]Color, length)
		}
		buf = buf[:length]
		painter.PaintSpan(buf, x, y, length, ctx)
		for i := 0; i < length; i++ {
			col := buf[i]
			if alpha != 1 {
				col.A = uint8(math.Round(float64(col.A) * alpha))
			}
			dest[i] = colorToRaster(col)
		}
	}
}
