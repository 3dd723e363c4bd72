package gg

import "testing"

func TestSpanPainterForSolidPaintUsesFastPath(t *testing.T) {
	sp := SpanPainterFor(NewSolidPaint(Red))
	if _, ok := sp.(solidSpanPainter); !ok {
		t.Errorf("SpanPainterFor(solid) = %T, want solidSpanPainter", sp)
	}
}

func TestSpanPainterForGradientUsesFuncPath(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0)
	g.AddColorStop(0, Black)
	g.AddColorStop(1, White)

	sp := SpanPainterFor(g)
	if _, ok := sp.(funcSpanPainter); !ok {
		t.Errorf("SpanPainterFor(gradient) = %T, want funcSpanPainter", sp)
	}
}

func TestSpanPainterForNilSourceIsBlack(t *testing.T) {
	sp := SpanPainterFor(nil)
	dest := make([]Color, 4)
	sp.PaintSpan(dest, 0, 0, 4, EvalContext{})
	for i, c := range dest {
		if c != Black {
			t.Errorf("dest[%d] = %+v, want %+v", i, c, Black)
		}
	}
}

func TestSolidSpanPainterFillsEveryEntry(t *testing.T) {
	sp := solidSpanPainter{Color: Blue}
	dest := make([]Color, 5)
	sp.PaintSpan(dest, 3, 7, 5, EvalContext{})
	for i, c := range dest {
		if c != Blue {
			t.Errorf("dest[%d] = %+v, want %+v", i, c, Blue)
		}
	}
}

func TestSolidSpanPainterRespectsShortDest(t *testing.T) {
	sp := solidSpanPainter{Color: Blue}
	dest := make([]Color, 2)
	sp.PaintSpan(dest, 0, 0, 10, EvalContext{})
	if dest[0] != Blue || dest[1] != Blue {
		t.Error("PaintSpan should fill up to len(dest) even when length exceeds it")
	}
}

func TestFuncSpanPainterSamplesEachPixel(t *testing.T) {
	g := NewLinearGradient(0, 0, 4, 0)
	g.AddColorStop(0, Black)
	g.AddColorStop(1, White)

	sp := funcSpanPainter{Source: g}
	dest := make([]Color, 4)
	sp.PaintSpan(dest, 0, 0, 4, EvalContext{})

	if dest[0] == dest[3] {
		t.Error("funcSpanPainter should sample distinct colors across a gradient span")
	}
}
