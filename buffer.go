package gles1

// GenBuffers allocates n new buffer IDs into out (§4.9).
func (c *Context) GenBuffers(n int, out []uint32) {
	if n < 0 || len(out) < n {
		c.err.set(newError("GenBuffers", INVALID_VALUE, "n=%d exceeds output capacity %d", n, len(out)))
		return
	}
	c.buffers.gen(n, out[:n], func() *Buffer { return &Buffer{} })
}

// DeleteBuffers frees the named buffers and clears any binding referring
// to them (§3: "delete clears both the array and element-array
// bindings if they refer to the deleted ID").
func (c *Context) DeleteBuffers(ids []uint32) {
	c.buffers.delete(ids)
	for _, id := range ids {
		if c.ArrayBuffer == id {
			c.ArrayBuffer = 0
		}
		if c.ElementArrayBuffer == id {
			c.ElementArrayBuffer = 0
		}
	}
}

// BindBuffer binds id to target (ARRAY_BUFFER or ELEMENT_ARRAY_BUFFER),
// silently creating a record if id is unknown and nonzero (§4.9, §9).
func (c *Context) BindBuffer(target Enum, id uint32) {
	switch target {
	case ARRAY_BUFFER:
		c.buffers.bind(id, func() *Buffer { return &Buffer{} })
		c.ArrayBuffer = id
	case ELEMENT_ARRAY_BUFFER:
		c.buffers.bind(id, func() *Buffer { return &Buffer{} })
		c.ElementArrayBuffer = id
	default:
		c.err.set(newError("BindBuffer", INVALID_ENUM, "unknown buffer target %#x", target))
	}
}

// IsBuffer reports whether id names a live buffer object.
func (c *Context) IsBuffer(id uint32) bool {
	return c.buffers.exists(id)
}

// BufferData is a recognized no-op: buffer data upload is a non-goal of
// this pipeline (§3); the call is still validated and logged so callers
// relying on it for feedback are not silently ignored.
func (c *Context) BufferData(target Enum, data []byte, usage Enum) {
	switch target {
	case ARRAY_BUFFER, ELEMENT_ARRAY_BUFFER:
		warnUnimplemented("BufferData")
	default:
		c.err.set(newError("BufferData", INVALID_ENUM, "unknown buffer target %#x", target))
	}
}

// BufferSubData is a recognized no-op, see BufferData.
func (c *Context) BufferSubData(target Enum, offset int, data []byte) {
	switch target {
	case ARRAY_BUFFER, ELEMENT_ARRAY_BUFFER:
		warnUnimplemented("BufferSubData")
	default:
		c.err.set(newError("BufferSubData", INVALID_ENUM, "unknown buffer target %#x", target))
	}
}
