// Package raster provides the non-antialiased scanline polygon filler.
//
// Sampling follows the single-sample-per-scanline convention: row y is
// tested at y+0.5, and each winding-covered run becomes the half-open
// pixel span [ceil(x0), floor(x1)).
package raster

import "math"

// RGBA is a non-premultiplied 8-bit color (an internal copy of gg.Color
// to avoid an import cycle between this package and the root package).
type RGBA struct {
	R, G, B, A uint8
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Dest is the pixel buffer a Filler writes into.
type Dest interface {
	Width() int
	Height() int
	GetPixel(x, y int) RGBA
	SetPixel(x, y int, c RGBA)
}

// ClipTest reports whether device pixel (x,y) is unclipped (true = drawable).
// A nil ClipTest means no clipping is in effect.
type ClipTest func(x, y int) bool

// SpanSource produces the source colors for a horizontal run of pixels
// at device row y, starting at device column x, length pixels long.
type SpanSource func(dest []RGBA, x, y, length int)

// Compositor blends one source pixel onto one destination pixel and
// returns the result. Mirrors the Porter-Duff operators of the blend
// package without importing it (avoids an import cycle).
type Compositor func(src, dst RGBA) RGBA

// Filler rasterizes polygons (already flattened to line segments) using
// the active-edge-table scanline algorithm.
type Filler struct {
	width, height int
	aet           *ActiveEdgeTable
	rowBuf        []RGBA
}

// NewFiller creates a filler for a surface of the given dimensions.
func NewFiller(width, height int) *Filler {
	return &Filler{
		width:  width,
		height: height,
		aet:    NewActiveEdgeTable(),
	}
}

// Fill rasterizes the polygon(s) described by contours (each a closed
// polyline; the filler implicitly closes the last point of each contour
// back to its first) using fillRule, painting through source and
// compositing through composite. clip may be nil for an unclipped fill.
//
// All contours are rasterized in a single scanline pass so winding numbers
// combine correctly across subpaths: this is what lets an even-odd path
// with an inner contour of opposite orientation punch a hole in an outer
// one, rather than the outer and inner being filled independently.
func (f *Filler) Fill(dest Dest, contours [][]Point, fillRule FillRule, source SpanSource, clip ClipTest, composite Compositor) {
	edges := make([]Edge, 0, 64)
	for _, points := range contours {
		n := len(points)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := points[i]
			p1 := points[(i+1)%n]
			if p0.Y == p1.Y {
				continue
			}
			edges = append(edges, NewEdge(p0, p1))
		}
	}
	if len(edges) == 0 {
		return
	}

	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	yMinInt := int(math.Floor(yMin))
	yMaxInt := int(math.Ceil(yMax))
	if yMinInt < 0 {
		yMinInt = 0
	}
	if yMaxInt > dest.Height() {
		yMaxInt = dest.Height()
	}

	if cap(f.rowBuf) < dest.Width() {
		f.rowBuf = make([]RGBA, dest.Width())
	}

	for y := yMinInt; y < yMaxInt; y++ {
		scanY := float64(y) + 0.5
		f.scanline(dest, edges, scanY, y, fillRule, source, clip, composite)
	}
}

// FillPolygon is Fill for the common single-contour case.
func (f *Filler) FillPolygon(dest Dest, points []Point, fillRule FillRule, source SpanSource, clip ClipTest, composite Compositor) {
	f.Fill(dest, [][]Point{points}, fillRule, source, clip, composite)
}

func (f *Filler) scanline(dest Dest, edges []Edge, scanY float64, y int, fillRule FillRule, source SpanSource, clip ClipTest, composite Compositor) {
	f.aet.Clear()
	for _, e := range edges {
		if e.y0 <= scanY && scanY < e.y1 {
			f.aet.AddAtY(e, scanY)
		}
	}
	if len(f.aet.Edges()) == 0 {
		return
	}
	f.aet.Sort()

	active := f.aet.Edges()
	if fillRule == FillRuleNonZero {
		f.fillNonZero(dest, active, y, source, clip, composite)
	} else {
		f.fillEvenOdd(dest, active, y, source, clip, composite)
	}
}

func (f *Filler) fillNonZero(dest Dest, edges []ActiveEdge, y int, source SpanSource, clip ClipTest, composite Compositor) {
	winding := 0
	var x0 float64
	for _, e := range edges {
		if winding == 0 {
			x0 = e.x
		}
		winding += e.dir
		if winding == 0 {
			f.paintSpan(dest, x0, e.x, y, source, clip, composite)
		}
	}
}

func (f *Filler) fillEvenOdd(dest Dest, edges []ActiveEdge, y int, source SpanSource, clip ClipTest, composite Compositor) {
	for i := 0; i+1 < len(edges); i += 2 {
		f.paintSpan(dest, edges[i].x, edges[i+1].x, y, source, clip, composite)
	}
}

// paintSpan fills the half-open pixel span [ceil(x0), floor(x1)) on row
// y, sourcing colors from source and compositing each pixel through
// composite (which may be nil for an opaque, unconditional overwrite).
func (f *Filler) paintSpan(dest Dest, x0, x1 float64, y int, source SpanSource, clip ClipTest, composite Compositor) {
	if y < 0 || y >= dest.Height() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}

	ix0 := int(math.Ceil(x0))
	ix1 := int(math.Floor(x1))
	if ix0 < 0 {
		ix0 = 0
	}
	if ix1 > dest.Width() {
		ix1 = dest.Width()
	}
	if ix0 >= ix1 {
		return
	}

	length := ix1 - ix0
	buf := f.rowBuf[:length]
	source(buf, ix0, y, length)

	for i := 0; i < length; i++ {
		x := ix0 + i
		if clip != nil && !clip(x, y) {
			continue
		}
		if composite == nil {
			dest.SetPixel(x, y, buf[i])
			continue
		}
		dst := dest.GetPixel(x, y)
		dest.SetPixel(x, y, composite(buf[i], dst))
	}
}
