package gg

import (
	"errors"
	"math"
	"testing"
)

func TestIsAxisAligned(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"translate", Translate(5, -3), true},
		{"scale", Scale(2, 3), true},
		{"rotate 90", Rotate(math.Pi / 2), false},
		{"shear x", Shear(0.5, 0), false},
		{"shear y", Shear(0, 0.5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsAxisAligned(); got != tt.want {
				t.Errorf("IsAxisAligned() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPureRotationScale(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"uniform scale", Scale(2, 2), true},
		{"rotate 30", Rotate(math.Pi / 6), true},
		{"rotate then scale", Rotate(math.Pi / 4).Multiply(Scale(3, 3)), true},
		{"non-uniform scale", Scale(2, 3), false},
		{"shear", Shear(0.5, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsPureRotationScale(); got != tt.want {
				t.Errorf("IsPureRotationScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMultiplyOrderMatchesComposition(t *testing.T) {
	m := Scale(2, 3)
	other := Translate(10, 5)
	p := Pt(1, 1)

	got := m.Multiply(other).TransformPoint(p)
	want := m.TransformPoint(other.TransformPoint(p))

	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("Multiply composition mismatch: got %+v, want %+v", got, want)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	ms := []Matrix{
		Identity(),
		Translate(3, -4),
		Scale(2, 5),
		Rotate(math.Pi / 3),
		Scale(2, 5).Multiply(Rotate(0.7)).Multiply(Translate(-3, 2)),
	}
	p := Pt(13, -7)
	for _, m := range ms {
		inv, err := m.Invert()
		if err != nil {
			t.Fatalf("Invert(%+v) returned error: %v", m, err)
		}
		back := inv.TransformPoint(m.TransformPoint(p))
		if math.Abs(back.X-p.X) > 1e-6 || math.Abs(back.Y-p.Y) > 1e-6 {
			t.Errorf("round trip through Invert failed: got %+v, want %+v", back, p)
		}
	}
}

func TestInvertSingular(t *testing.T) {
	_, err := Matrix{}.Invert()
	if !errors.Is(err, ErrSingular) {
		t.Errorf("Invert() on zero matrix: got err=%v, want ErrSingular", err)
	}
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 200).Multiply(Scale(2, 2))
	v := m.TransformVector(Pt(1, 0))
	if v.X != 2 || v.Y != 0 {
		t.Errorf("TransformVector() = %+v, want {2 0}", v)
	}
}
