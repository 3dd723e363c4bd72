package gg

// applyDash splits an open or closed polyline into the sub-polylines that
// fall within the dash pattern's "on" segments, per the pattern's
// NormalizedOffset. A nil or non-dashed Dash returns points unchanged as
// the sole element.
func applyDash(points []Point, dash *Dash) [][]Point {
	if dash == nil || !dash.IsDashed() || len(points) < 2 {
		return [][]Point{points}
	}

	pattern := dash.effectiveArray()
	patternLen := dash.PatternLength()
	if patternLen <= 0 {
		return [][]Point{points}
	}

	pos := dash.NormalizedOffset()
	idx := 0
	for pos >= pattern[idx] {
		pos -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	on := idx%2 == 0
	remaining := pattern[idx] - pos

	var result [][]Point
	var current []Point
	if on {
		current = append(current, points[0])
	}

	for i := 0; i+1 < len(points); i++ {
		segStart := points[i]
		segEnd := points[i+1]
		segLen := segStart.Distance(segEnd)
		segPos := 0.0

		for segLen-segPos > remaining {
			segPos += remaining
			t := segPos / segLen
			if segLen == 0 {
				t = 1
			}
			splitPt := segStart.Lerp(segEnd, t)

			if on {
				current = append(current, splitPt)
				result = append(result, current)
				current = nil
			} else {
				current = []Point{splitPt}
			}

			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}

		remaining -= segLen - segPos
		if on {
			current = append(current, segEnd)
		}
	}

	if on && len(current) > 1 {
		result = append(result, current)
	}
	return result
}
