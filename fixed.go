package gles1

// ClearColorx is the fixed-point variant of ClearColorf (§4.1).
func (c *Context) ClearColorx(r, g, b, a int32) {
	c.ClearColorf(fixedToFloat(r), fixedToFloat(g), fixedToFloat(b), fixedToFloat(a))
}

// ClearDepthx is the fixed-point variant of ClearDepthf.
func (c *Context) ClearDepthx(depth int32) {
	c.ClearDepthf(fixedToFloat(depth))
}

// AlphaFuncx is the fixed-point variant of AlphaFunc.
func (c *Context) AlphaFuncx(fn Enum, ref int32) {
	c.AlphaFunc(fn, fixedToFloat(ref))
}
