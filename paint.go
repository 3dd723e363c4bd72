package gg

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap (no extension).
	LineCapButt LineCap = iota
	// LineCapRound specifies a semicircular line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap (extends by lineWidth/2).
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join, falling back to
	// bevel when the miter length exceeds MiterLimit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled (flat-triangle) join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// CompositeOperation enumerates the Porter-Duff compositing operators the
// Compositor supports. SourceOver is the default.
type CompositeOperation int

const (
	SourceOver CompositeOperation = iota
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

// canvasWide reports whether op belongs to the set of operators that can
// erase pixels outside the source shape and therefore require the
// two-pass canvas-wide compositing strategy. destination-over is
// deliberately excluded from this set.
func (op CompositeOperation) canvasWide() bool {
	switch op {
	case SourceIn, SourceOut, DestinationIn, DestinationAtop, Copy:
		return true
	default:
		return false
	}
}
