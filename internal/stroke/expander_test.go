package stroke

import (
	"math"
	"testing"
)

func straightLine() []PathElement {
	return []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
	}
}

func TestExpandButtCapProducesRectangle(t *testing.T) {
	e := NewStrokeExpander(Stroke{Width: 2, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 4})
	out := e.Expand(straightLine())

	var ys []float64
	for _, el := range out {
		if p, ok := el.(MoveTo); ok {
			ys = append(ys, p.Point.Y)
		}
		if p, ok := el.(LineTo); ok {
			ys = append(ys, p.Point.Y)
		}
	}
	for _, y := range ys {
		if math.Abs(math.Abs(y)-1) > 1e-9 {
			t.Errorf("butt-capped 2-wide stroke of a horizontal line: got y=%v, want +/-1", y)
		}
	}
}

func TestExpandEmptyPathProducesNoOutput(t *testing.T) {
	e := NewStrokeExpander(DefaultStroke())
	out := e.Expand(nil)
	if len(out) != 0 {
		t.Errorf("Expand(nil) = %d elements, want 0", len(out))
	}
}

func TestExpandSinglePointProducesNoOutput(t *testing.T) {
	e := NewStrokeExpander(DefaultStroke())
	out := e.Expand([]PathElement{MoveTo{Point: Point{X: 5, Y: 5}}})
	if len(out) != 0 {
		t.Errorf("Expand(single MoveTo) = %d elements, want 0 (zero-length subpath has no area)", len(out))
	}
}

func TestExpandClosedPathEndsWithClose(t *testing.T) {
	e := NewStrokeExpander(Stroke{Width: 1, Cap: LineCapButt, Join: LineJoinBevel, MiterLimit: 4})
	square := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 10}},
		LineTo{Point: Point{X: 0, Y: 10}},
		Close{},
	}
	out := e.Expand(square)
	if len(out) == 0 {
		t.Fatal("Expand(closed square) produced no output")
	}
	if _, ok := out[len(out)-1].(Close); !ok {
		t.Errorf("last element = %T, want Close", out[len(out)-1])
	}
}

func TestExpandRoundCapWidensBeyondEndpoint(t *testing.T) {
	e := NewStrokeExpander(Stroke{Width: 4, Cap: LineCapRound, Join: LineJoinRound, MiterLimit: 4})
	out := e.Expand(straightLine())

	maxX := math.Inf(-1)
	for _, el := range out {
		if p, ok := el.(LineTo); ok && p.Point.X > maxX {
			maxX = p.Point.X
		}
		if c, ok := el.(CubicTo); ok && c.Point.X > maxX {
			maxX = c.Point.X
		}
	}
	if maxX <= 10 {
		t.Errorf("round cap: max x = %v, want > 10 (cap extends past the line endpoint)", maxX)
	}
}

func TestVec2PerpIsOrthogonal(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	p := v.Perp()
	if got := v.Dot(p); math.Abs(got) > 1e-9 {
		t.Errorf("v.Dot(v.Perp()) = %v, want 0", got)
	}
}

func TestVec2NormalizeZeroVector(t *testing.T) {
	v := Vec2{}.Normalize()
	if v != (Vec2{}) {
		t.Errorf("Normalize() of zero vector = %+v, want zero", v)
	}
}
