package gles1

func sizeofType(t Enum) int {
	switch t {
	case BYTE, UNSIGNED_BYTE:
		return 1
	case SHORT, UNSIGNED_SHORT:
		return 2
	case FLOAT, FIXED:
		return 4
	default:
		return 0
	}
}

func (c *Context) setArrayPointer(call string, arr *ClientArray, size int, sizeOK func(int) bool,
	typ Enum, typeOK func(Enum) bool, stride int, pointer []byte) {
	if !sizeOK(size) {
		c.err.set(newError(call, INVALID_VALUE, "unsupported component count %d", size))
		return
	}
	if !typeOK(typ) {
		c.err.set(newError(call, INVALID_ENUM, "unsupported component type %#x", typ))
		return
	}
	if stride < 0 {
		c.err.set(newError(call, INVALID_VALUE, "negative stride %d", stride))
		return
	}
	effective := stride
	if effective == 0 {
		effective = size * sizeofType(typ)
	}
	arr.Size = size
	arr.Type = typ
	arr.Stride = effective
	arr.Pointer = pointer
}

func isVertexNormalTexType(t Enum) bool {
	switch t {
	case BYTE, SHORT, FLOAT, FIXED:
		return true
	}
	return false
}

func isColorType(t Enum) bool {
	switch t {
	case UNSIGNED_BYTE, FLOAT, FIXED:
		return true
	}
	return false
}

// VertexPointer defines the position client array (§3, §4.3). size is
// the component count (2, 3 or 4); unused trailing components default
// to (0,0,0,1).
func (c *Context) VertexPointer(size int, typ Enum, stride int, pointer []byte) {
	c.setArrayPointer("VertexPointer", &c.VertexArray, size,
		func(s int) bool { return s == 2 || s == 3 || s == 4 }, typ, isVertexNormalTexType, stride, pointer)
}

// ColorPointer defines the color client array; size is always 4 in this
// pipeline (§4.3: unused trailing components default to (0,0,0,1), but
// color is consumed as RGBA so only size 4 is meaningful).
func (c *Context) ColorPointer(size int, typ Enum, stride int, pointer []byte) {
	c.setArrayPointer("ColorPointer", &c.ColorArray, size,
		func(s int) bool { return s == 4 }, typ, isColorType, stride, pointer)
}

// NormalPointer defines the normal client array; normals are always
// 3-component. The descriptor is stored, but the assembler does not
// read normals (lighting is a non-goal, §1).
func (c *Context) NormalPointer(typ Enum, stride int, pointer []byte) {
	c.setArrayPointer("NormalPointer", &c.NormalArray, 3,
		func(s int) bool { return s == 3 }, typ, isVertexNormalTexType, stride, pointer)
}

// TexCoordPointer defines the texcoord client array of the current
// client-active texture unit.
func (c *Context) TexCoordPointer(size int, typ Enum, stride int, pointer []byte) {
	unit := c.textureUnits[c.ClientActiveTextureUnit]
	c.setArrayPointer("TexCoordPointer", &unit.TexCoordArray, size,
		func(s int) bool { return s == 2 || s == 3 || s == 4 }, typ, isVertexNormalTexType, stride, pointer)
}

// EnableClientState enables one of {VERTEX_ARRAY, COLOR_ARRAY,
// NORMAL_ARRAY, TEXTURE_COORD_ARRAY}.
func (c *Context) EnableClientState(arr Enum) { c.setClientState("EnableClientState", arr, true) }

// DisableClientState disables one of the client arrays.
func (c *Context) DisableClientState(arr Enum) { c.setClientState("DisableClientState", arr, false) }

func (c *Context) setClientState(call string, arr Enum, enabled bool) {
	switch arr {
	case VERTEX_ARRAY:
		c.VertexArray.Enabled = enabled
	case COLOR_ARRAY:
		c.ColorArray.Enabled = enabled
	case NORMAL_ARRAY:
		c.NormalArray.Enabled = enabled
	case TEXTURE_COORD_ARRAY:
		c.textureUnits[c.ClientActiveTextureUnit].TexCoordArray.Enabled = enabled
	default:
		c.err.set(newError(call, INVALID_ENUM, "unrecognized client array %#x", arr))
	}
}

// ActiveTextureUnit selects the active texture unit for server-side state
// (binding, matrix, enable).
func (c *Context) ActiveTextureUnit(unit Enum) {
	idx, ok := textureUnitIndex(unit)
	if !ok {
		c.err.set(newError("ActiveTexture", INVALID_ENUM, "unknown texture unit %#x", unit))
		return
	}
	c.ActiveTexture = idx
}

// ClientActiveTexture selects the active texture unit for client-array
// setup (§3: independently selectable from ActiveTexture).
func (c *Context) ClientActiveTexture(unit Enum) {
	idx, ok := textureUnitIndex(unit)
	if !ok {
		c.err.set(newError("ClientActiveTexture", INVALID_ENUM, "unknown texture unit %#x", unit))
		return
	}
	c.ClientActiveTextureUnit = idx
}

func textureUnitIndex(unit Enum) (int, bool) {
	switch unit {
	case TEXTURE0:
		return 0, true
	case TEXTURE1:
		return 1, true
	default:
		return 0, false
	}
}
