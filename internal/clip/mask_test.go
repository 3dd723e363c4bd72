package clip

import (
	"testing"

	"github.com/gogpu/gg/internal/raster"
)

func TestNewMaskAllDrawable(t *testing.T) {
	m := NewMask(5, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if !m.Test(x, y) {
				t.Errorf("NewMask: pixel (%d,%d) not drawable", x, y)
			}
		}
	}
}

func TestNewMaskPaddingBitsClear(t *testing.T) {
	// width=5 spans a single byte (stride=1); bits 5,6,7 are padding and
	// must not read as drawable even though the bulk fill sets 0xff.
	m := NewMask(5, 1)
	if m.bits[0] != 0x1f {
		t.Errorf("padding bits not cleared: got %#x, want %#x", m.bits[0], 0x1f)
	}
}

func TestNewEmptyMaskNoneDrawable(t *testing.T) {
	m := NewEmptyMask(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if m.Test(x, y) {
				t.Errorf("NewEmptyMask: pixel (%d,%d) drawable, want not", x, y)
			}
		}
	}
}

func TestSetOutOfBoundsIgnored(t *testing.T) {
	m := NewEmptyMask(2, 2)
	m.Set(-1, 0, true)
	m.Set(0, -1, true)
	m.Set(5, 5, true)
	if m.Test(-1, 0) || m.Test(0, -1) || m.Test(5, 5) {
		t.Error("out-of-bounds pixels reported drawable")
	}
}

func TestIntersectWith(t *testing.T) {
	a := NewEmptyMask(4, 1)
	a.Set(0, 0, true)
	a.Set(1, 0, true)

	b := NewEmptyMask(4, 1)
	b.Set(1, 0, true)
	b.Set(2, 0, true)

	got := a.IntersectWith(b)
	want := []bool{false, true, false, false}
	for x, w := range want {
		if got.Test(x, 0) != w {
			t.Errorf("IntersectWith: pixel %d = %v, want %v", x, got.Test(x, 0), w)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := NewEmptyMask(2, 2)
	a.Set(0, 0, true)
	b := a.Clone()
	b.Set(1, 1, true)

	if a.Test(1, 1) {
		t.Error("mutating clone affected original")
	}
	if !b.Test(0, 0) {
		t.Error("clone lost original bit")
	}
}

func TestMaskAsRasterDest(t *testing.T) {
	m := NewEmptyMask(2, 2)
	m.SetPixel(0, 0, raster.RGBA{A: 255})
	m.SetPixel(1, 1, raster.RGBA{A: 10})

	if !m.Test(0, 0) {
		t.Error("SetPixel with alpha 255 should set the bit")
	}
	if m.Test(1, 1) {
		t.Error("SetPixel with alpha 10 (<128) should clear the bit")
	}
	if got := m.GetPixel(0, 0); got.A != 255 {
		t.Errorf("GetPixel on set bit = %+v, want opaque", got)
	}
	if got := m.GetPixel(1, 1); got.A != 0 {
		t.Errorf("GetPixel on clear bit = %+v, want transparent", got)
	}
}

func TestClipTestNilReceiver(t *testing.T) {
	var m *Mask
	if ct := m.ClipTest(); ct != nil {
		t.Error("nil Mask.ClipTest() should return nil")
	}
}
