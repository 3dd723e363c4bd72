package gg

import (
	"fmt"
	"math"
)

// Matrix is a 2x3 affine transform:
//
//	[a c e]
//	[b d f]
//	[0 0 1]
//
// transformPoint(x,y) = (a*x + c*y + e, b*x + d*y + f).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate returns a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, E: x, F: y}
}

// Scale returns a scale matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotate returns a rotation matrix (radians, clockwise in device space
// where Y grows downward).
func Rotate(angle float64) Matrix {
	s, c := math.Sin(angle), math.Cos(angle)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Shear returns a shear matrix.
func Shear(sx, sy float64) Matrix {
	return Matrix{A: 1, B: sy, C: sx, D: 1}
}

// Multiply returns m composed with other, applying other first, then m:
// for a point p, m.Multiply(other).TransformPoint(p) == m.TransformPoint(other.TransformPoint(p)).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// TransformPoint applies the transform to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{X: m.A*p.X + m.C*p.Y + m.E, Y: m.B*p.X + m.D*p.Y + m.F}
}

// TransformVector applies the linear part of the transform only (no
// translation) — useful for direction/normal vectors.
func (m Matrix) TransformVector(p Point) Point {
	return Point{X: m.A*p.X + m.C*p.Y, Y: m.B*p.X + m.D*p.Y}
}

// singularEpsilon is the determinant magnitude below which a matrix is
// treated as non-invertible.
const singularEpsilon = 1e-12

// Invert returns the inverse of m, or ErrSingular if |det| < epsilon.
func (m Matrix) Invert() (Matrix, error) {
	det := m.A*m.D - m.B*m.C
	if math.Abs(det) < singularEpsilon {
		return Matrix{}, fmt.Errorf("%w: det=%g", ErrSingular, det)
	}
	invDet := 1 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	e := -(a*m.E + c*m.F)
	f := -(b*m.E + d*m.F)
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}, nil
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsAxisAligned reports whether m has no rotation or shear component
// (b == 0 && c == 0 exactly).
func (m Matrix) IsAxisAligned() bool {
	return m.B == 0 && m.C == 0
}

// IsPureRotationScale reports whether m is a composition of rotation and
// uniform scale only (no shear, no non-uniform scale) — the condition
// under which the rotated direct rasterizers (fillRotated/strokeRotated)
// apply. This holds iff the matrix's linear part is a scalar multiple of
// a rotation matrix: a == d and b == -c (up to floating point tolerance).
func (m Matrix) IsPureRotationScale() bool {
	const eps = 1e-9
	return math.Abs(m.A-m.D) < eps && math.Abs(m.B+m.C) < eps
}

// Translation reports the matrix's translation component.
func (m Matrix) Translation() (float64, float64) {
	return m.E, m.F
}
