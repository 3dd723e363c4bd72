package blend

import (
	"testing"

	"github.com/gogpu/gg/internal/raster"
)

func TestCompositeSourceOverOpaqueSourceWins(t *testing.T) {
	src := raster.RGBA{R: 255, A: 255}
	dst := raster.RGBA{B: 255, A: 255}
	got := Composite(SourceOver, src, dst)
	if got != src {
		t.Errorf("SourceOver with opaque src = %+v, want %+v", got, src)
	}
}

func TestCompositeSourceOverTransparentSourceIsNoop(t *testing.T) {
	src := raster.RGBA{}
	dst := raster.RGBA{R: 10, G: 20, B: 30, A: 255}
	got := Composite(SourceOver, src, dst)
	if got != dst {
		t.Errorf("SourceOver with transparent src = %+v, want dst %+v", got, dst)
	}
}

func TestCompositeCopyIgnoresDestination(t *testing.T) {
	src := raster.RGBA{R: 10, A: 128}
	dst := raster.RGBA{G: 200, A: 255}
	got := Composite(Copy, src, dst)
	if got != src {
		t.Errorf("Copy = %+v, want src %+v unchanged", got, src)
	}
}

func TestCompositeDestinationIgnoresSource(t *testing.T) {
	src := raster.RGBA{R: 10, A: 128}
	dst := raster.RGBA{G: 200, A: 255}
	got := Composite(Destination, src, dst)
	if got != dst {
		t.Errorf("Destination = %+v, want dst %+v unchanged", got, dst)
	}
}

func TestCompositeSourceInRequiresBothOpaque(t *testing.T) {
	src := raster.RGBA{R: 255, A: 255}
	dst := raster.RGBA{A: 0}
	got := Composite(SourceIn, src, dst)
	if got.A != 0 {
		t.Errorf("SourceIn over empty dst: alpha = %d, want 0", got.A)
	}
}

func TestCompositeXorIsSymmetric(t *testing.T) {
	a := raster.RGBA{R: 100, A: 200}
	b := raster.RGBA{G: 50, A: 100}
	ab := Composite(Xor, a, b)
	ba := Composite(Xor, b, a)
	if ab.A != ba.A {
		t.Errorf("Xor(a,b).A = %d, Xor(b,a).A = %d, want equal", ab.A, ba.A)
	}
}

func TestCanvasWideSet(t *testing.T) {
	wide := map[Operator]bool{
		SourceIn:        true,
		SourceOut:       true,
		DestinationIn:   true,
		DestinationAtop: true,
		Copy:            true,
		SourceOver:      false,
		DestinationOver: false,
		DestinationOut:  false,
		SourceAtop:      false,
		Xor:             false,
		Destination:     false,
	}
	for op, want := range wide {
		if got := CanvasWide(op); got != want {
			t.Errorf("CanvasWide(%v) = %v, want %v", op, got, want)
		}
	}
}

func TestCompositorForMatchesComposite(t *testing.T) {
	c := CompositorFor(SourceAtop)
	src := raster.RGBA{R: 10, G: 20, B: 30, A: 200}
	dst := raster.RGBA{R: 1, G: 2, B: 3, A: 100}
	if got, want := c(src, dst), Composite(SourceAtop, src, dst); got != want {
		t.Errorf("CompositorFor(SourceAtop)(...) = %+v, want %+v", got, want)
	}
}
