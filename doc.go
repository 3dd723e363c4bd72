// Package gg provides a software-only, aliased 2D raster graphics engine.
//
// # Overview
//
// gg is a Pure Go 2D graphics library in the fogleman/gg tradition: an
// immediate-mode drawing API similar to HTML Canvas, rendering entirely
// on the CPU into an in-memory Pixmap. There is no GPU path and no
// antialiasing; edges are aliased by design, and color is non-premultiplied
// 8-bit sRGB with no device color management.
//
// # Quick Start
//
//	import "github.com/gogpu/gg"
//
//	dc, _ := gg.NewContext(512, 512)
//
//	dc.SetFillColor(gg.RGB8(255, 0, 0))
//	dc.Arc(256, 256, 100, 0, 2*math.Pi, false)
//	dc.Fill()
//
//	dc.Pixmap().EncodePNG("output.png")
//
// # Architecture
//
//   - Public API: Context, Path, PaintSource, Stroke, Matrix, Point, Pixmap
//   - Internal: raster (scanline polygon filler), stroke (outline
//     expansion), blend (Porter-Duff compositing), clip (1-bit stencil
//     masks), filter (box blur, drop shadow), color (sRGB/linear
//     conversion)
//   - A handful of primitives (axis-aligned rectangles, circles) bypass
//     the general path pipeline entirely via direct rasterizers, tracked
//     by Context.SlowPathHits when they don't apply
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases clockwise (Y grows down)
//
// # Performance
//
// Single-threaded and synchronous throughout: a Context and its Pixmap
// are owned by one goroutine for the duration of any draw. The direct
// rasterizers exist precisely because there is no GPU to fall back on.
package gg
