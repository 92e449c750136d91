package gles1

import (
	"github.com/tinygl/gles1/internal/raster"
)

// CullFace selects which winding DrawArrays discards when culling is
// enabled (§4.1).
func (c *Context) CullFace(mode Enum) {
	switch mode {
	case FRONT, BACK, FRONT_AND_BACK:
		c.CullModeValue = mode
	default:
		c.err.set(newError("CullFace", INVALID_ENUM, "unknown cull mode %#x", mode))
	}
}

// FrontFace selects which winding is considered front-facing.
func (c *Context) FrontFace(mode Enum) {
	switch mode {
	case CW, CCW:
		c.FrontFaceValue = mode
	default:
		c.err.set(newError("FrontFace", INVALID_ENUM, "unknown winding %#x", mode))
	}
}

// AlphaFunc sets the alpha-test comparator and reference value.
func (c *Context) AlphaFunc(fn Enum, ref float32) {
	switch fn {
	case NEVER, LESS, EQUAL, LEQUAL, GREATER, NOTEQUAL, GEQUAL, ALWAYS:
		c.AlphaFuncValue = fn
		c.AlphaRef = clamp01(ref)
	default:
		c.err.set(newError("AlphaFunc", INVALID_ENUM, "unknown comparator %#x", fn))
	}
}

func isBlendFactor(f Enum) bool {
	switch f {
	case ZERO, ONE, SRC_COLOR, ONE_MINUS_SRC_COLOR, DST_COLOR, ONE_MINUS_DST_COLOR,
		SRC_ALPHA, ONE_MINUS_SRC_ALPHA, DST_ALPHA, ONE_MINUS_DST_ALPHA, SRC_ALPHA_SATURATE:
		return true
	}
	return false
}

// BlendFunc sets a single source/dest factor pair applied to all four
// channels.
func (c *Context) BlendFunc(sfactor, dfactor Enum) {
	c.BlendFuncSeparate(sfactor, dfactor, sfactor, dfactor)
}

// BlendFuncSeparate sets independent RGB and alpha source/dest factors
// (§4.7 step 5).
func (c *Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	if !isBlendFactor(srcRGB) || !isBlendFactor(dstRGB) || !isBlendFactor(srcAlpha) || !isBlendFactor(dstAlpha) {
		c.err.set(newError("BlendFuncSeparate", INVALID_ENUM, "unknown blend factor"))
		return
	}
	c.BlendSrcRGB, c.BlendDstRGB = srcRGB, dstRGB
	c.BlendSrcAlpha, c.BlendDstAlpha = srcAlpha, dstAlpha
}

func glCullModeToRaster(mode Enum) raster.CullMode {
	switch mode {
	case FRONT:
		return raster.CullFront
	case FRONT_AND_BACK:
		return raster.CullFrontAndBack
	default:
		return raster.CullBack
	}
}

func glFrontFaceToRaster(mode Enum) raster.FrontFace {
	if mode == CW {
		return raster.FrontFaceCW
	}
	return raster.FrontFaceCCW
}

func isValidDrawMode(mode Enum) bool {
	switch mode {
	case POINTS, LINES, LINE_STRIP, LINE_LOOP, TRIANGLES, TRIANGLE_STRIP, TRIANGLE_FAN:
		return true
	}
	return false
}

func isTriangleMode(mode Enum) bool {
	switch mode {
	case TRIANGLES, TRIANGLE_STRIP, TRIANGLE_FAN:
		return true
	}
	return false
}

// DrawArrays runs the vertex assembler, transformer, primitive assembler
// and rasterizer over count vertices starting at first (§4.3-§4.6).
func (c *Context) DrawArrays(mode Enum, first, count int) {
	if count < 0 {
		c.err.set(newError("DrawArrays", INVALID_VALUE, "negative count %d", count))
		return
	}
	if !isValidDrawMode(mode) {
		c.err.set(newError("DrawArrays", INVALID_ENUM, "unknown primitive mode %#x", mode))
		return
	}
	if c.CullFaceEnabled && c.CullModeValue == FRONT_AND_BACK && isTriangleMode(mode) {
		return
	}
	if c.fb == nil || count == 0 {
		return
	}

	mvp := c.modelViewProjection()
	verts := make([]transformedVertex, count)
	for i := 0; i < count; i++ {
		av := c.assembleVertex(first, i)
		verts[i] = c.transformVertex(mvp, av)
	}

	switch mode {
	case POINTS:
		for _, v := range verts {
			c.drawPoint(v)
		}
	case TRIANGLES:
		for k := 2; k < count; k += 3 {
			c.emitTriangle(verts[k-2], verts[k-1], verts[k])
		}
	case TRIANGLE_STRIP:
		for k := 2; k < count; k++ {
			if k%2 == 0 {
				c.emitTriangle(verts[k-2], verts[k-1], verts[k])
			} else {
				c.emitTriangle(verts[k-1], verts[k-2], verts[k])
			}
		}
	case TRIANGLE_FAN:
		for k := 2; k < count; k++ {
			if k%2 == 0 {
				c.emitTriangle(verts[0], verts[k-1], verts[k])
			} else {
				c.emitTriangle(verts[0], verts[k], verts[k-1])
			}
		}
	case LINES, LINE_STRIP, LINE_LOOP:
		warnUnimplemented("DrawArrays(line modes)")
	}
}

func (c *Context) drawPoint(v transformedVertex) {
	if v.X < -1 || v.Y < -1 || v.X >= 1 || v.Y >= 1 {
		return
	}
	w, h := c.fb.Width, c.fb.Height
	x := int((v.X + 1) * float32(w) / 2)
	y := int((-v.Y + 1) * float32(h) / 2)
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	rgb := framebufferRGBFromColor(v.Color)
	c.fb.SetPixel(x, y, rgb, uint8(clamp01(v.Color[3])*255))
}

func (c *Context) toRasterTriangle(v0, v1, v2 transformedVertex) raster.Triangle {
	return raster.Triangle{
		V0: raster.Vertex{X: v0.X, Y: v0.Y, Color: v0.Color, TexCoord: v0.TexCoord},
		V1: raster.Vertex{X: v1.X, Y: v1.Y, Color: v1.Color, TexCoord: v1.TexCoord},
		V2: raster.Vertex{X: v2.X, Y: v2.Y, Color: v2.Color, TexCoord: v2.TexCoord},
	}
}

// emitTriangle performs face culling (§4.6 step 2) and rasterizes
// surviving triangles through the fragment stage.
func (c *Context) emitTriangle(v0, v1, v2 transformedVertex) {
	tri := c.toRasterTriangle(v0, v1, v2)
	area := raster.TriangleArea(tri.V0, tri.V1, tri.V2)
	if area == 0 {
		return
	}
	if raster.ShouldCull(area, glCullModeToRaster(c.CullModeValue), glFrontFaceToRaster(c.FrontFaceValue), c.CullFaceEnabled) {
		return
	}

	sameColor := v0.Color == v1.Color && v1.Color == v2.Color
	raster.Rasterize(tri, c.fb.Width, c.fb.Height, func(f raster.Fragment) {
		c.shadeFragment(f, tri, sameColor)
	})
}
