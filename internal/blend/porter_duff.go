// Package blend implements Porter-Duff compositing over non-premultiplied
// 8-bit color, operating directly on internal/raster.RGBA values so it can
// be handed to a raster.Filler as a raster.Compositor.
package blend

import "github.com/gogpu/gg/internal/raster"

// Operator enumerates the Porter-Duff operators the Compositor must
// support. It mirrors the root package's CompositeOperation
// one-for-one; Context translates between the two at the call site so this
// package never has to import the root package.
type Operator int

const (
	SourceOver Operator = iota
	DestinationOver
	SourceIn
	DestinationIn
	SourceOut
	DestinationOut
	SourceAtop
	DestinationAtop
	Xor
	Copy
	Destination
)

// factors returns the source and destination coefficients (Fa, Fb) of the
// classic Porter-Duff compositing equation
//
//	outA   = Sa*Fa + Da*Fb
//	outRGB = (Sc*Sa*Fa + Dc*Da*Fb) / outA
//
// for op, given the source and destination alphas in [0,1].
func factors(op Operator, sa, da float64) (fa, fb float64) {
	switch op {
	case Copy:
		return 1, 0
	case Destination:
		return 0, 1
	case DestinationOver:
		return 1 - da, 1
	case SourceIn:
		return da, 0
	case DestinationIn:
		return 0, sa
	case SourceOut:
		return 1 - da, 0
	case DestinationOut:
		return 0, 1 - sa
	case SourceAtop:
		return da, 1 - sa
	case DestinationAtop:
		return 1 - da, sa
	case Xor:
		return 1 - da, 1 - sa
	case SourceOver:
		fallthrough
	default:
		return 1, 1 - sa
	}
}

// Composite blends src over dst under op. Colors are non-premultiplied on
// both sides of the call: the premultiplied arithmetic Porter-Duff actually
// requires happens internally and the result is un-premultiplied before
// returning, so callers never reason about premultiplied color themselves.
func Composite(op Operator, src, dst raster.RGBA) raster.RGBA {
	sa := float64(src.A) / 255
	da := float64(dst.A) / 255
	fa, fb := factors(op, sa, da)

	outA := sa*fa + da*fb
	if outA <= 0 {
		return raster.RGBA{}
	}

	mix := func(sc, dc uint8) uint8 {
		s := float64(sc) / 255
		d := float64(dc) / 255
		v := (s*sa*fa + d*da*fb) / outA
		return to255(v)
	}

	return raster.RGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: to255(outA),
	}
}

func to255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// CompositorFor adapts op into a raster.Compositor usable by Filler.Fill.
func CompositorFor(op Operator) raster.Compositor {
	return func(src, dst raster.RGBA) raster.RGBA {
		return Composite(op, src, dst)
	}
}

// CanvasWide reports whether op belongs to the set of operators that can
// erase destination pixels outside the shape being painted, and therefore
// require the two-pass canvas-wide compositing strategy. destination-over
// is deliberately excluded.
func CanvasWide(op Operator) bool {
	switch op {
	case SourceIn, SourceOut, DestinationIn, DestinationAtop, Copy:
		return true
	default:
		return false
	}
}
