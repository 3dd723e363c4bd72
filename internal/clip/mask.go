// Package clip implements the 1-bit-per-pixel stencil used to clip
// drawing to an arbitrary path shape.
package clip

import "github.com/gogpu/gg/internal/raster"

// Mask is a 1-bit-per-pixel clip stencil, packed LSB-first into bytes: bit
// 0 of byte 0 is pixel (0,0), bit 1 is pixel (1,0), and so on. A set bit
// means the pixel is drawable.
//
// Mask implements raster.Dest so a Filler can rasterize a clip path
// directly into it: GetPixel/SetPixel treat alpha 255 as "bit set" and
// alpha 0 as "bit clear", reusing the same scanline fill used for visible
// drawing rather than a second rasterizer.
type Mask struct {
	width, height int
	stride        int // bytes per row
	bits          []byte
}

// NewMask returns a mask of the given size with every pixel drawable.
func NewMask(width, height int) *Mask {
	m := newMask(width, height)
	for i := range m.bits {
		m.bits[i] = 0xff
	}
	m.clearPadding()
	return m
}

// NewEmptyMask returns a mask of the given size with no pixel drawable.
func NewEmptyMask(width, height int) *Mask {
	return newMask(width, height)
}

func newMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := (width + 7) / 8
	return &Mask{
		width:  width,
		height: height,
		stride: stride,
		bits:   make([]byte, stride*height),
	}
}

// clearPadding zeroes the bits beyond width within each byte-aligned row,
// so a bulk Set0xff fill does not mark nonexistent trailing pixels set.
func (m *Mask) clearPadding() {
	if m.width%8 == 0 {
		return
	}
	validBits := uint(m.width % 8)
	lastByteMask := byte(1<<validBits - 1)
	for y := 0; y < m.height; y++ {
		idx := y*m.stride + m.stride - 1
		m.bits[idx] &= lastByteMask
	}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// Test reports whether pixel (x,y) is drawable. Out-of-bounds pixels are
// never drawable.
func (m *Mask) Test(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	idx := y*m.stride + x/8
	bit := uint(x % 8)
	return m.bits[idx]&(1<<bit) != 0
}

// Set marks pixel (x,y) drawable (v=true) or not (v=false). Out-of-bounds
// writes are silently ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	idx := y*m.stride + x/8
	bit := uint(x % 8)
	if v {
		m.bits[idx] |= 1 << bit
	} else {
		m.bits[idx] &^= 1 << bit
	}
}

// Clone returns an independent copy of m. Save/restore of the clip state
// only needs to copy a pointer (masks are never mutated in place once
// built), and IntersectWith allocates its own result, so nothing in the
// save/restore or intersection path calls Clone.
func (m *Mask) Clone() *Mask {
	out := newMask(m.width, m.height)
	copy(out.bits, m.bits)
	return out
}

// IntersectWith returns a new mask that is drawable only where both m and
// other are drawable. Dimensions must match.
func (m *Mask) IntersectWith(other *Mask) *Mask {
	out := newMask(m.width, m.height)
	n := len(out.bits)
	if len(other.bits) < n {
		n = len(other.bits)
	}
	for i := 0; i < n; i++ {
		out.bits[i] = m.bits[i] & other.bits[i]
	}
	return out
}

// GetPixel implements raster.Dest: opaque white for a set bit, transparent
// for a clear bit, so a Filler's scanline fill can rasterize directly into
// the stencil as if it were painting an opaque shape.
func (m *Mask) GetPixel(x, y int) raster.RGBA {
	if m.Test(x, y) {
		return raster.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return raster.RGBA{}
}

// SetPixel implements raster.Dest: any alpha >= 128 sets the bit, matching
// the aliased, non-antialiased contract of the rest of the rasterizer.
func (m *Mask) SetPixel(x, y int, c raster.RGBA) {
	m.Set(x, y, c.A >= 128)
}

// ClipTest returns a raster.ClipTest backed by this mask, suitable for
// passing to Filler.Fill so drawing respects the clip region. A nil
// receiver produces a nil ClipTest (no clipping in effect).
func (m *Mask) ClipTest() raster.ClipTest {
	if m == nil {
		return nil
	}
	return m.Test
}
