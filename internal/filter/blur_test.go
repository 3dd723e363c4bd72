package filter

import (
	"testing"

	"github.com/gogpu/gg"
)

func solidPixmap(t *testing.T, w, h int, c gg.Color) *gg.Pixmap {
	t.Helper()
	pm, err := gg.NewPixmap(w, h)
	if err != nil {
		t.Fatalf("NewPixmap: %v", err)
	}
	pm.Clear(c)
	return pm
}

func TestBlurFilterZeroRadiusIsCopy(t *testing.T) {
	src := solidPixmap(t, 8, 8, gg.RGBA8(10, 20, 30, 255))
	dst, _ := gg.NewPixmap(8, 8)

	f := NewBlurFilter(0)
	f.Apply(src, dst, gg.Rect{Min: gg.Pt(0, 0), Max: gg.Pt(8, 8)})

	got := dst.GetPixel(3, 3)
	want := src.GetPixel(3, 3)
	if got != want {
		t.Errorf("zero-radius blur pixel = %+v, want %+v", got, want)
	}
}

func TestBlurFilterUniformFieldUnchanged(t *testing.T) {
	// Blurring a uniform color field should reproduce the same color in the
	// interior, away from the clamped edges, since every tap samples the
	// same value.
	src := solidPixmap(t, 20, 20, gg.RGBA8(100, 150, 200, 255))
	dst, _ := gg.NewPixmap(20, 20)

	f := NewBlurFilter(3)
	f.Apply(src, dst, gg.Rect{Min: gg.Pt(0, 0), Max: gg.Pt(20, 20)})

	got := dst.GetPixel(10, 10)
	want := gg.RGBA8(100, 150, 200, 255)
	diff := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	if diff(got.R, want.R) > 2 || diff(got.G, want.G) > 2 || diff(got.B, want.B) > 2 {
		t.Errorf("blurred uniform field center = %+v, want close to %+v", got, want)
	}
}

func TestBlurFilterSpreadsASinglePixel(t *testing.T) {
	src, _ := gg.NewPixmap(21, 21)
	src.SetPixel(10, 10, gg.RGBA8(255, 255, 255, 255))

	dst, _ := gg.NewPixmap(21, 21)
	f := NewBlurFilter(4)
	f.Apply(src, dst, gg.Rect{Min: gg.Pt(0, 0), Max: gg.Pt(21, 21)})

	if dst.GetPixel(10, 10).A == 0 {
		t.Error("blurred point: center pixel has zero alpha")
	}
	if dst.GetPixel(12, 10).A == 0 {
		t.Error("blurred point: nearby pixel has zero alpha, expected blur to spread energy")
	}
}

func TestExpandBoundsGrowsByRadius(t *testing.T) {
	f := NewBlurFilter(5)
	in := gg.Rect{Min: gg.Pt(0, 0), Max: gg.Pt(10, 10)}
	out := f.ExpandBounds(in)
	if out.Min.X >= in.Min.X || out.Min.Y >= in.Min.Y || out.Max.X <= in.Max.X || out.Max.Y <= in.Max.Y {
		t.Errorf("ExpandBounds(%+v) = %+v, want a strictly larger rect", in, out)
	}
}

func TestGaussianKernelNormalized(t *testing.T) {
	k := GaussianKernel(3)
	var sum float32
	for _, v := range k {
		sum += v
	}
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("GaussianKernel(3) sums to %v, want ~1.0", sum)
	}
}

func TestGaussianKernelNonPositiveRadiusIsIdentity(t *testing.T) {
	k := GaussianKernel(0)
	if len(k) != 1 || k[0] != 1 {
		t.Errorf("GaussianKernel(0) = %v, want [1]", k)
	}
}
