package gg

import "testing"

func TestDrawRegularPolygonClosesLoopAroundCenter(t *testing.T) {
	c, err := NewContext(40, 40)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	c.DrawRegularPolygon(6, 20, 20, 10, 0)
	if !c.IsPointInPath(20, 20) {
		t.Error("center of hexagon should be inside the drawn path")
	}
	if c.IsPointInPath(0, 0) {
		t.Error("corner far outside the hexagon's radius should not be inside the path")
	}
}

func TestDrawRegularPolygonTriangleHasThreeVertices(t *testing.T) {
	c, err := NewContext(20, 20)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	c.DrawRegularPolygon(3, 10, 10, 5, 0)
	elems := c.Path().Elements()

	moves, lines, closes := 0, 0, 0
	for _, e := range elems {
		switch e.(type) {
		case MoveTo:
			moves++
		case LineTo:
			lines++
		case Close:
			closes++
		}
	}
	if moves != 1 || lines != 2 || closes != 1 {
		t.Errorf("triangle path = %d moves, %d lines, %d closes; want 1, 2, 1", moves, lines, closes)
	}
}
