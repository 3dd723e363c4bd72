package gg

import (
	"math"

	"github.com/gogpu/gg/internal/clip"
)

// directFillCircle paints a filled circle centered at (cx,cy) with integer
// radius r using the midpoint circle algorithm: for each scanline it
// computes the two x-extents directly from the circle equation instead of
// rasterizing a 4-cubic-Bezier approximation through the general polygon
// filler.
func directFillCircle(dest *Pixmap, cx, cy, r int, c Color, m *clip.Mask) {
	if r <= 0 {
		return
	}
	x := r
	y := 0
	err := 0

	span := func(xLeft, xRight, row int) {
		directFillRect(dest, cx+xLeft, cy+row, cx+xRight+1, cy+row+1, c, m)
	}

	for x >= y {
		span(-x, x, y)
		span(-x, x, -y)
		span(-y, y, x)
		span(-y, y, -x)

		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// directStrokeCircle paints a circular ring of the given device-space
// stroke width by solving the circle equation per row for both the inner
// and outer radius, rather than expanding an offset path.
func directStrokeCircle(dest *Pixmap, cx, cy, r, width float64, c Color, m *clip.Mask) {
	if r <= 0 {
		return
	}
	outer := r + width/2
	inner := r - width/2
	if inner < 0 {
		inner = 0
	}
	outer2 := outer * outer
	inner2 := inner * inner

	rowMax := int(math.Ceil(outer))
	for dy := -rowMax; dy <= rowMax; dy++ {
		fy := float64(dy)
		fy2 := fy * fy
		if fy2 > outer2 {
			continue
		}
		outerDx := math.Sqrt(outer2 - fy2)
		row := cy + dy

		if fy2 >= inner2 {
			directFillRect(dest, cx-int(math.Round(outerDx)), row, cx+int(math.Round(outerDx))+1, row+1, c, m)
			continue
		}
		innerDx := math.Sqrt(inner2 - fy2)
		left0, left1 := cx-int(math.Round(outerDx)), cx-int(math.Round(innerDx))
		right0, right1 := cx+int(math.Round(innerDx))+1, cx+int(math.Round(outerDx))+1
		directFillRect(dest, left0, row, left1, row+1, c, m)
		directFillRect(dest, right0, row, right1, row+1, c, m)
	}
}
