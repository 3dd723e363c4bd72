// Package filter provides raster image filters used by the shadow pipeline.
//
//   - Box blur (separable, two-pass)
//   - Drop shadow (blur + offset + colorize)
package filter
