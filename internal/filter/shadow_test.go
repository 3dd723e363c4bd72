package filter

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestDropShadowAppearsOffsetFromShape(t *testing.T) {
	src, _ := gg.NewPixmap(40, 40)
	// opaque 10x10 square at (10,10)-(20,20)
	for y := 10; y < 20; y++ {
		for x := 10; x < 20; x++ {
			src.SetPixel(x, y, gg.RGBA8(255, 0, 0, 255))
		}
	}

	dst, _ := gg.NewPixmap(40, 40)
	f := NewDropShadowFilter(5, 5, 0, gg.RGBA8(0, 0, 0, 255))
	f.Apply(src, dst, gg.Rect{Min: gg.Pt(10, 10), Max: gg.Pt(20, 20)})

	// shadow (no blur) should be opaque black at a point offset by (5,5)
	// inside the original square's footprint, e.g. (12,12)+(5,5) = (17,17)
	got := dst.GetPixel(17, 17)
	if got.A == 0 {
		t.Error("shadow pixel at offset location has zero alpha, want opaque shadow")
	}

	// a pixel outside both the square and its offset shadow should remain
	// untouched (transparent) since dst was never drawn on.
	untouched := dst.GetPixel(2, 2)
	if untouched.A != 0 {
		t.Errorf("pixel far from shadow = %+v, want transparent", untouched)
	}
}

func TestDropShadowExpandBoundsAccountsForOffsetDirection(t *testing.T) {
	f := NewDropShadowFilter(10, -10, 2, gg.Black)
	in := gg.Rect{Min: gg.Pt(0, 0), Max: gg.Pt(10, 10)}
	out := f.ExpandBounds(in)

	// positive X offset should grow the right edge more than the left.
	if (out.Max.X - in.Max.X) <= (in.Min.X - out.Min.X) {
		t.Errorf("ExpandBounds with +X offset: right growth should exceed left growth, got %+v", out)
	}
	// negative Y offset should grow the top edge more than the bottom.
	if (in.Min.Y - out.Min.Y) <= (out.Max.Y - in.Max.Y) {
		t.Errorf("ExpandBounds with -Y offset: top growth should exceed bottom growth, got %+v", out)
	}
}

func TestNewSimpleDropShadowDefaultsToTranslucentBlack(t *testing.T) {
	f := NewSimpleDropShadow(2, 2, 1)
	if f.Color.A == 0 || f.Color.A == 255 {
		t.Errorf("NewSimpleDropShadow color alpha = %d, want a partial value", f.Color.A)
	}
	if f.Color.R != 0 || f.Color.G != 0 || f.Color.B != 0 {
		t.Errorf("NewSimpleDropShadow color = %+v, want black RGB", f.Color)
	}
}

func TestDropShadowNilPixmapIsNoop(t *testing.T) {
	f := NewSimpleDropShadow(1, 1, 1)
	f.Apply(nil, nil, gg.Rect{})
}
