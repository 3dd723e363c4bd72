package gg

import "errors"

// Sentinel errors returned at the core's API boundary. Validation errors
// abort the current operation without touching the surface; geometry that
// produces no pixels is a silent no-op, not an error.
var (
	// ErrInvalidDimensions is returned when a width or height is not a
	// positive integer.
	ErrInvalidDimensions = errors.New("gg: invalid dimensions")

	// ErrSurfaceTooLarge is returned when the width or the height exceeds
	// the implementation limit of 16384 pixels.
	ErrSurfaceTooLarge = errors.New("gg: surface too large")

	// ErrSingular is returned by Matrix.Invert when the matrix has no
	// inverse (|ad - bc| < epsilon).
	ErrSingular = errors.New("gg: matrix is singular")

	// ErrIndexSize names a negative radius or similar magnitude argument.
	// No function in this package returns it: Path.ArcTo and Context.ArcTo
	// do not validate r.
	ErrIndexSize = errors.New("gg: negative size argument")

	// ErrTypeError names a numeric argument that is not finite (NaN or
	// +-Inf). No function in this package returns it; coordinates are not
	// checked for finiteness.
	ErrTypeError = errors.New("gg: non-finite numeric argument")

	// ErrInvalidEnum names an unrecognized join/cap/composite operator
	// value. No function in this package returns it; enum values are not
	// range-checked.
	ErrInvalidEnum = errors.New("gg: invalid enum value")

	// ErrSourceRectOutOfBounds is returned by DrawImageSource when the
	// requested source rectangle does not fit inside the source image.
	ErrSourceRectOutOfBounds = errors.New("gg: source rectangle out of bounds")

	// ErrInvalidArgCount is returned by DrawImageLike for malformed ImageLike
	// payloads (data length doesn't match width*height*{3,4}).
	ErrInvalidArgCount = errors.New("gg: invalid argument count")
)
