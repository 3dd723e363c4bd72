package gg

// SpanPainter generates colors for a horizontal run of pixels in one
// call, letting the PolygonFiller and direct rasterizers avoid a
// PaintSource interface dispatch per pixel for the common solid-color
// case. It is a performance-only optimization layered over PaintSource;
// SpanPainterFor always produces a correct SpanPainter from any
// PaintSource.
type SpanPainter interface {
	// PaintSpan fills dest[0:length] with colors starting at device
	// pixel (x,y), one entry per consecutive pixel along the row.
	PaintSpan(dest []Color, x, y, length int, ctx EvalContext)
}

// solidSpanPainter fills every pixel with one color (fastest path).
type solidSpanPainter struct {
	Color Color
}

func (p solidSpanPainter) PaintSpan(dest []Color, _, _ int, length int, _ EvalContext) {
	for i := 0; i < length && i < len(dest); i++ {
		dest[i] = p.Color
	}
}

// funcSpanPainter samples a PaintSource once per pixel.
type funcSpanPainter struct {
	Source PaintSource
}

func (p funcSpanPainter) PaintSpan(dest []Color, x, y, length int, ctx EvalContext) {
	fy := float64(y) + 0.5
	for i := 0; i < length && i < len(dest); i++ {
		dest[i] = p.Source.Eval(float64(x+i)+0.5, fy, ctx)
	}
}

// SpanPainterFor returns the fastest SpanPainter for a PaintSource,
// preferring the Solid() fast path when available.
func SpanPainterFor(source PaintSource) SpanPainter {
	if source == nil {
		return solidSpanPainter{Color: Black}
	}
	if c, ok := source.Solid(); ok {
		return solidSpanPainter{Color: c}
	}
	return funcSpanPainter{Source: source}
}
