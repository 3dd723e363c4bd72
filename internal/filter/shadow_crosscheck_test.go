package filter

import (
	stdimage "image"
	"testing"

	"github.com/anthonynsimon/bild/blur"
	"github.com/gogpu/gg"
)

// TestBlurFilterAgreesWithIndependentBoxReference blurs a single opaque
// pixel with this package's separable box blur and with an independent
// reference implementation (bild/blur.Box), then checks that both spread
// energy over a comparable footprint. The two implementations differ in
// edge handling and kernel normalization, so this is a qualitative
// cross-check, not a pixel-exact comparison.
func TestBlurFilterAgreesWithIndependentBoxReference(t *testing.T) {
	const size = 41
	const center = size / 2
	const radius = 6.0

	src, err := gg.NewPixmap(size, size)
	if err != nil {
		t.Fatalf("NewPixmap: %v", err)
	}
	src.SetPixel(center, center, gg.RGBA8(255, 255, 255, 255))

	dst, _ := gg.NewPixmap(size, size)
	f := NewBlurFilter(radius)
	f.Apply(src, dst, gg.Rect{Min: gg.Pt(0, 0), Max: gg.Pt(size, size)})

	refImg := stdimage.NewRGBA(stdimage.Rect(0, 0, size, size))
	refImg.Set(center, center, stdimage.White)
	refBlurred := blur.Box(refImg, radius)

	ourSpread := countBrightPixels(dst, size)
	refSpread := countBrightPixelsStd(refBlurred, size)

	if ourSpread == 0 {
		t.Fatal("this package's blur produced no spread at all")
	}
	if refSpread == 0 {
		t.Fatal("reference blur produced no spread at all (test setup is broken)")
	}

	ratio := float64(ourSpread) / float64(refSpread)
	if ratio < 0.2 || ratio > 5 {
		t.Errorf("blur footprint diverges too far from the reference implementation: ours=%d ref=%d (ratio %.2f)", ourSpread, refSpread, ratio)
	}
}

func countBrightPixels(pm *gg.Pixmap, size int) int {
	n := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if pm.GetPixel(x, y).A > 4 {
				n++
			}
		}
	}
	return n
}

func countBrightPixelsStd(img *stdimage.RGBA, size int) int {
	n := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a>>8 > 4 {
				n++
			}
		}
	}
	return n
}
