package gg

// ClipRect intersects the current clip region with an axis-aligned
// rectangle, without disturbing the path currently under construction.
// Equivalent to building a rectangle path and calling ClipPreserve, but
// doesn't require the caller to save and restore their own path state.
func (c *Context) ClipRect(x, y, w, h float64) {
	saved := c.path
	c.path = NewPath()
	c.path.Rectangle(x, y, w, h)
	c.ClipPreserve()
	c.path = saved
}
