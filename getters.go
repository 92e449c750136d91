package gles1

// Pname values for Get*v (§6, SPEC_FULL.md supplement #1). Only the
// subset this Context actually tracks is enumerated; unrecognized names
// latch invalid-enum.
const (
	MATRIX_MODE        Enum = 0x0BA0
	MODELVIEW_MATRIX   Enum = 0x0BA6
	PROJECTION_MATRIX  Enum = 0x0BA7
	TEXTURE_MATRIX     Enum = 0x0BA8
	VIEWPORT           Enum = 0x0BA2
	CULL_FACE_MODE     Enum = 0x0B45
	FRONT_FACE         Enum = 0x0B46
	ALPHA_TEST_FUNC    Enum = 0x0BC1
	ALPHA_TEST_REF     Enum = 0x0BC2
	BLEND_SRC          Enum = 0x0BE1
	BLEND_DST          Enum = 0x0BE0
	COLOR_CLEAR_VALUE  Enum = 0x0C22
	DEPTH_CLEAR_VALUE  Enum = 0x0B73
	STENCIL_CLEAR_VALUE Enum = 0x0B91
	ACTIVE_TEXTURE_PNAME     Enum = 0x84E0
	CLIENT_ACTIVE_TEXTURE_PNAME Enum = 0x84E1
	ARRAY_BUFFER_BINDING        Enum = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING Enum = 0x8895
	TEXTURE_BINDING_2D           Enum = 0x8069
)

// GetIntegerv writes integer-valued state into out (as many components
// as the property has) and returns the component count, or 0 with an
// invalid-enum error for an unrecognized pname.
func (c *Context) GetIntegerv(pname Enum, out []int32) int {
	switch pname {
	case MATRIX_MODE:
		out[0] = int32(c.MatrixModeValue)
		return 1
	case VIEWPORT:
		out[0] = int32(c.Viewport.X)
		out[1] = int32(c.Viewport.Y)
		out[2] = int32(c.Viewport.Width)
		out[3] = int32(c.Viewport.Height)
		return 4
	case CULL_FACE_MODE:
		out[0] = int32(c.CullModeValue)
		return 1
	case FRONT_FACE:
		out[0] = int32(c.FrontFaceValue)
		return 1
	case ALPHA_TEST_FUNC:
		out[0] = int32(c.AlphaFuncValue)
		return 1
	case BLEND_SRC:
		out[0] = int32(c.BlendSrcRGB)
		return 1
	case BLEND_DST:
		out[0] = int32(c.BlendDstRGB)
		return 1
	case STENCIL_CLEAR_VALUE:
		out[0] = int32(c.ClearStencilValue)
		return 1
	case ACTIVE_TEXTURE_PNAME:
		out[0] = int32(TEXTURE0 + uint32(c.ActiveTexture))
		return 1
	case CLIENT_ACTIVE_TEXTURE_PNAME:
		out[0] = int32(TEXTURE0 + uint32(c.ClientActiveTextureUnit))
		return 1
	case ARRAY_BUFFER_BINDING:
		out[0] = int32(c.ArrayBuffer)
		return 1
	case ELEMENT_ARRAY_BUFFER_BINDING:
		out[0] = int32(c.ElementArrayBuffer)
		return 1
	case TEXTURE_BINDING_2D:
		out[0] = int32(c.textureUnits[c.ActiveTexture].Bound)
		return 1
	default:
		c.err.set(newError("GetIntegerv", INVALID_ENUM, "unrecognized pname %#x", pname))
		return 0
	}
}

// GetFloatv writes float-valued state into out and returns the
// component count.
func (c *Context) GetFloatv(pname Enum, out []float32) int {
	switch pname {
	case MODELVIEW_MATRIX:
		copy(out[:16], c.modelViewStack.top()[:])
		return 16
	case PROJECTION_MATRIX:
		copy(out[:16], c.projectionStack.top()[:])
		return 16
	case TEXTURE_MATRIX:
		m := c.textureUnits[c.ActiveTexture].TextureStack.top()
		copy(out[:16], m[:])
		return 16
	case COLOR_CLEAR_VALUE:
		copy(out[:4], c.ClearColor[:])
		return 4
	case DEPTH_CLEAR_VALUE:
		out[0] = c.ClearDepthValue
		return 1
	case ALPHA_TEST_REF:
		out[0] = c.AlphaRef
		return 1
	default:
		c.err.set(newError("GetFloatv", INVALID_ENUM, "unrecognized pname %#x", pname))
		return 0
	}
}

// GetBooleanv writes boolean-valued state into out and returns the
// component count.
func (c *Context) GetBooleanv(pname Enum, out []bool) int {
	switch pname {
	case ALPHA_TEST:
		out[0] = c.AlphaTestEnabled
		return 1
	case BLEND:
		out[0] = c.BlendEnabled
		return 1
	case CULL_FACE:
		out[0] = c.CullFaceEnabled
		return 1
	case TEXTURE_2D:
		out[0] = c.textureUnits[c.ActiveTexture].Enabled
		return 1
	default:
		c.err.set(newError("GetBooleanv", INVALID_ENUM, "unrecognized pname %#x", pname))
		return 0
	}
}

// GetTexParameteriv reads back a stored sampling parameter for the
// active unit's texture target (SPEC_FULL.md supplement #3).
func (c *Context) GetTexParameteriv(target Enum, pname Enum, out []int32) {
	if target != TEXTURE_2D {
		c.err.set(newError("GetTexParameteriv", INVALID_ENUM, "unknown texture target %#x", target))
		return
	}
	unit := c.textureUnits[c.ActiveTexture]
	switch pname {
	case TEXTURE_MAG_FILTER:
		out[0] = int32(unit.MagFilter)
	case TEXTURE_MIN_FILTER:
		out[0] = int32(unit.MinFilter)
	case TEXTURE_WRAP_S:
		out[0] = int32(unit.WrapS)
	case TEXTURE_WRAP_T:
		out[0] = int32(unit.WrapT)
	default:
		c.err.set(newError("GetTexParameteriv", INVALID_ENUM, "unknown parameter %#x", pname))
	}
}

// Hint is a recognized no-op: hints never change rendering behavior in
// this pipeline (SPEC_FULL.md supplement #4).
func (c *Context) Hint(target, mode Enum) {
	warnUnimplemented("Hint")
}
