package gg

import (
	"math"
	"testing"
)

func TestDetectShapeCircle(t *testing.T) {
	p := NewPath()
	p.Circle(50, 50, 20)

	shape := DetectShape(p)
	if shape.Kind != ShapeCircle {
		t.Fatalf("Kind = %v, want ShapeCircle", shape.Kind)
	}
	if math.Abs(shape.CenterX-50) > 1e-2 || math.Abs(shape.CenterY-50) > 1e-2 {
		t.Errorf("center = (%v,%v), want (50,50)", shape.CenterX, shape.CenterY)
	}
	if math.Abs(shape.RadiusX-20) > 1e-2 {
		t.Errorf("RadiusX = %v, want 20", shape.RadiusX)
	}
}

func TestDetectShapeRect(t *testing.T) {
	p := NewPath()
	p.Rectangle(10, 10, 30, 15)

	shape := DetectShape(p)
	if shape.Kind != ShapeRect {
		t.Fatalf("Kind = %v, want ShapeRect", shape.Kind)
	}
	if math.Abs(shape.Width-30) > 1e-9 || math.Abs(shape.Height-15) > 1e-9 {
		t.Errorf("dimensions = (%v,%v), want (30,15)", shape.Width, shape.Height)
	}
}

func TestDetectShapeUnknownForArbitraryPath(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 5)
	p.LineTo(3, 17)
	p.Close()

	shape := DetectShape(p)
	if shape.Kind != ShapeUnknown {
		t.Errorf("Kind = %v, want ShapeUnknown for a triangle", shape.Kind)
	}
}

func TestDetectShapeNilAndEmptyPath(t *testing.T) {
	if DetectShape(nil).Kind != ShapeUnknown {
		t.Error("DetectShape(nil) should be ShapeUnknown")
	}
	if DetectShape(NewPath()).Kind != ShapeUnknown {
		t.Error("DetectShape(empty path) should be ShapeUnknown")
	}
}

func TestDetectShapeRotatedRectIsNotAxisAligned(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 5)
	p.LineTo(5, 15)
	p.LineTo(-5, 10)
	p.Close()

	shape := DetectShape(p)
	if shape.Kind == ShapeRect {
		t.Error("rotated quadrilateral incorrectly detected as an axis-aligned rect")
	}
}
