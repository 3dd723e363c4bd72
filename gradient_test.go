package gg

import (
	"math"
	"testing"
)

func TestLinearGradientInterpolatesAlongAxis(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0)
	g.AddColorStop(0, Black)
	g.AddColorStop(1, White)

	mid := g.Eval(5, 0, EvalContext{})
	if mid.R < 120 || mid.R > 135 {
		t.Errorf("midpoint R = %d, want ~127", mid.R)
	}
	if got := g.Eval(0, 0, EvalContext{}); got != Black {
		t.Errorf("Eval(start) = %+v, want %+v", got, Black)
	}
	if got := g.Eval(10, 0, EvalContext{}); got != White {
		t.Errorf("Eval(end) = %+v, want %+v", got, White)
	}
}

func TestLinearGradientPadClampsBeyondEnds(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0)
	g.AddColorStop(0, Black)
	g.AddColorStop(1, White)
	g.SetExtend(ExtendPad)

	if got := g.Eval(-5, 0, EvalContext{}); got != Black {
		t.Errorf("Eval before start with ExtendPad = %+v, want %+v", got, Black)
	}
	if got := g.Eval(50, 0, EvalContext{}); got != White {
		t.Errorf("Eval past end with ExtendPad = %+v, want %+v", got, White)
	}
}

func TestLinearGradientRepeatWraps(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0)
	g.AddColorStop(0, Black)
	g.AddColorStop(1, White)
	g.SetExtend(ExtendRepeat)

	a := g.Eval(2, 0, EvalContext{})
	b := g.Eval(12, 0, EvalContext{})
	if a != b {
		t.Errorf("ExtendRepeat: Eval(2) = %+v, Eval(12) = %+v, want equal (period 10)", a, b)
	}
}

func TestLinearGradientReflectMirrors(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0)
	g.AddColorStop(0, Black)
	g.AddColorStop(1, White)
	g.SetExtend(ExtendReflect)

	// t=0.8 in the first period should mirror to t=0.2 in the second.
	a := g.Eval(8, 0, EvalContext{})
	b := g.Eval(12, 0, EvalContext{})
	if a != b {
		t.Errorf("ExtendReflect: Eval(8) = %+v, Eval(12) = %+v, want equal (mirrored)", a, b)
	}
}

func TestLinearGradientZeroLengthReturnsFirstStop(t *testing.T) {
	g := NewLinearGradient(5, 5, 5, 5)
	g.AddColorStop(0, Red)
	g.AddColorStop(1, Blue)

	if got := g.Eval(100, 100, EvalContext{}); got != Red {
		t.Errorf("zero-length gradient Eval = %+v, want first stop %+v", got, Red)
	}
}

func TestLinearGradientSolidIsFalse(t *testing.T) {
	g := NewLinearGradient(0, 0, 1, 1)
	if _, ok := g.Solid(); ok {
		t.Error("LinearGradient.Solid() = true, want false")
	}
}

func TestRadialGradientCenterIsStartColor(t *testing.T) {
	g := NewRadialGradient(10, 10, 0, 10)
	g.AddColorStop(0, Red)
	g.AddColorStop(1, Blue)

	if got := g.Eval(10, 10, EvalContext{}); got != Red {
		t.Errorf("Eval(center) = %+v, want %+v", got, Red)
	}
	if got := g.Eval(20, 10, EvalContext{}); got != Blue {
		t.Errorf("Eval(edge) = %+v, want %+v", got, Blue)
	}
}

func TestRadialGradientFocalOffsetStillResolves(t *testing.T) {
	g := NewRadialGradient(10, 10, 0, 10)
	g.SetFocus(12, 10)
	g.AddColorStop(0, Red)
	g.AddColorStop(1, Blue)

	// Evaluating at the geometric center with an off-center focus must
	// still resolve to a valid, fully-opaque color rather than panicking
	// or returning a degenerate zero value.
	c := g.Eval(10, 10, EvalContext{})
	if c.A != 255 {
		t.Errorf("focal gradient Eval(center) = %+v, want fully opaque", c)
	}
}

func TestSweepGradientFullTurnWraps(t *testing.T) {
	g := NewSweepGradient(0, 0, 0)
	g.AddColorStop(0, Red)
	g.AddColorStop(1, Red)

	start := g.Eval(1, 0, EvalContext{})
	end := g.Eval(1, -0.0001, EvalContext{})
	if start != Red || end != Red {
		t.Errorf("sweep gradient with matching endpoint stops should be uniformly Red, got %+v / %+v", start, end)
	}
}

func TestSweepGradientCenterReturnsFirstStop(t *testing.T) {
	g := NewSweepGradient(5, 5, 0)
	g.AddColorStop(0, Green)
	g.AddColorStop(1, Blue)

	if got := g.Eval(5, 5, EvalContext{}); got != Green {
		t.Errorf("Eval(center) = %+v, want first stop %+v", got, Green)
	}
}

func TestSweepGradientQuarterTurn(t *testing.T) {
	g := NewSweepGradient(0, 0, 0)
	g.AddColorStop(0, Black)
	g.AddColorStop(1, White)

	// angle 0 -> t=0, angle pi/2 -> t=0.25 of a full 2*pi sweep.
	quarter := g.Eval(0, 1, EvalContext{})
	if math.Abs(float64(quarter.R)-63.75) > 5 {
		t.Errorf("quarter-turn R = %d, want close to 64 (t=0.25 lerp black->white)", quarter.R)
	}
}

func TestColorStopSortingIsOrderIndependent(t *testing.T) {
	g1 := NewLinearGradient(0, 0, 10, 0)
	g1.AddColorStop(1, White)
	g1.AddColorStop(0, Black)

	g2 := NewLinearGradient(0, 0, 10, 0)
	g2.AddColorStop(0, Black)
	g2.AddColorStop(1, White)

	if g1.Eval(5, 0, EvalContext{}) != g2.Eval(5, 0, EvalContext{}) {
		t.Error("stop order should not affect evaluated color")
	}
}
