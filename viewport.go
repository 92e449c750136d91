package gles1

// SetViewport stores the viewport rectangle. It is never consulted by the
// rasterizer, which always scans the full framebuffer (§6, §9).
func (c *Context) SetViewport(x, y, width, height int) {
	if width < 0 || height < 0 {
		c.err.set(newError("Viewport", INVALID_VALUE, "negative dimension %dx%d", width, height))
		return
	}
	c.Viewport = Viewport{X: x, Y: y, Width: width, Height: height}
}
