package gg

import "testing"

func TestPathBuilderChainsAndBuildsRect(t *testing.T) {
	p := BuildPath().Rect(0, 0, 10, 10).Build()
	if got, want := p.Area(), 100.0; got != want {
		t.Errorf("Area() = %v, want %v", got, want)
	}
}

func TestPathBuilderCircleMatchesContains(t *testing.T) {
	p := BuildPath().Circle(50, 50, 20).Path()
	if !p.Contains(Pt(50, 50)) {
		t.Error("builder Circle: Contains(center) = false, want true")
	}
	if p.Contains(Pt(0, 0)) {
		t.Error("builder Circle: Contains(far outside) = true, want false")
	}
}

func TestPathBuilderPolygonRejectsFewerThanThreeSides(t *testing.T) {
	p := BuildPath().Polygon(0, 0, 10, 2).Build()
	if len(p.Elements()) != 0 {
		t.Errorf("Polygon(sides=2) produced %d elements, want 0", len(p.Elements()))
	}
}

func TestPathBuilderPolygonProducesClosedLoop(t *testing.T) {
	p := BuildPath().Polygon(0, 0, 10, 6).Build()
	elems := p.Elements()
	if len(elems) != 7 { // MoveTo + 5 LineTo + Close
		t.Fatalf("hexagon: got %d elements, want 7", len(elems))
	}
	if _, ok := elems[len(elems)-1].(Close); !ok {
		t.Errorf("last element = %T, want Close", elems[len(elems)-1])
	}
}

func TestPathBuilderStarAlternatesRadii(t *testing.T) {
	p := BuildPath().Star(0, 0, 20, 10, 5).Build()
	elems := p.Elements()
	if len(elems) != 11 { // MoveTo + 9 LineTo + Close
		t.Fatalf("5-point star: got %d elements, want 11", len(elems))
	}
}

func TestPathBuilderStarRejectsFewerThanThreePoints(t *testing.T) {
	p := BuildPath().Star(0, 0, 20, 10, 2).Build()
	if len(p.Elements()) != 0 {
		t.Errorf("Star(points=2) produced %d elements, want 0", len(p.Elements()))
	}
}

func TestPathBuilderRoundRectClampsRadius(t *testing.T) {
	p := BuildPath().RoundRect(0, 0, 10, 4, 100).Build()
	bb := p.BoundingBox()
	if bb.Max.X-bb.Min.X > 10.0001 || bb.Max.Y-bb.Min.Y > 4.0001 {
		t.Errorf("RoundRect with oversized radius escaped its bounds: %+v", bb)
	}
}
