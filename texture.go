package gles1

// GenTextures allocates n new texture IDs into out (§4.9, §8: "for all
// i, out[i] > 0 and all elements are pairwise distinct").
func (c *Context) GenTextures(n int, out []uint32) {
	if n < 0 || len(out) < n {
		c.err.set(newError("GenTextures", INVALID_VALUE, "n=%d exceeds output capacity %d", n, len(out)))
		return
	}
	c.textures.gen(n, out[:n], func() *Texture { return &Texture{} })
}

// DeleteTextures frees the named textures and clears any unit binding
// referring to them (§3, §8: "that unit's bound-texture becomes 0").
func (c *Context) DeleteTextures(ids []uint32) {
	c.textures.delete(ids)
	for _, id := range ids {
		for _, unit := range c.textureUnits {
			if unit.Bound == id {
				unit.Bound = 0
			}
		}
	}
}

// BindTexture binds id as the TEXTURE_2D target of the active texture
// unit, silently creating a record if id is unknown and nonzero (§9).
func (c *Context) BindTexture(target Enum, id uint32) {
	if target != TEXTURE_2D {
		c.err.set(newError("BindTexture", INVALID_ENUM, "unknown texture target %#x", target))
		return
	}
	c.textures.bind(id, func() *Texture { return &Texture{} })
	c.textureUnits[c.ActiveTexture].Bound = id
}

// IsTexture reports whether id names a live texture object.
func (c *Context) IsTexture(id uint32) bool {
	return c.textures.exists(id)
}

func isAcceptedFormat(f Enum) bool {
	switch f {
	case RGBA, RGB, ALPHA, LUMINANCE, LUMINANCE_ALPHA:
		return true
	}
	return false
}

// TexImage2D uploads a full image, possibly reallocating storage (§3,
// §6). internalFormat must equal format; level and border must be 0.
func (c *Context) TexImage2D(target Enum, level int, internalFormat Enum, width, height int,
	border int, format Enum, typ Enum, pixels []byte) {
	if target != TEXTURE_2D {
		c.err.set(newError("TexImage2D", INVALID_ENUM, "unknown texture target %#x", target))
		return
	}
	if level != 0 {
		c.err.set(newError("TexImage2D", INVALID_VALUE, "level must be 0, got %d", level))
		return
	}
	if border != 0 {
		c.err.set(newError("TexImage2D", INVALID_VALUE, "border must be 0, got %d", border))
		return
	}
	if width < 0 || height < 0 {
		c.err.set(newError("TexImage2D", INVALID_VALUE, "negative dimension %dx%d", width, height))
		return
	}
	if !isAcceptedFormat(internalFormat) || !isAcceptedFormat(format) {
		warnUnimplemented("TexImage2D(unsupported format)")
		format, internalFormat = RGBA, RGBA
	}
	if internalFormat != format {
		c.err.set(newError("TexImage2D", INVALID_OPERATION, "internalFormat %#x != format %#x", internalFormat, format))
		return
	}
	if typ != UNSIGNED_BYTE {
		warnUnimplemented("TexImage2D(pixel type != UNSIGNED_BYTE)")
	}

	tex := c.textures.lookup(c.textureUnits[c.ActiveTexture].Bound)
	if tex == nil {
		c.err.set(newError("TexImage2D", INVALID_OPERATION, "no texture bound to the active unit"))
		return
	}
	tex.Width = width
	tex.Height = height
	tex.Format = format
	tex.Pixels = make([]byte, width*height*bytesPerPixel(format))
	copy(tex.Pixels, pixels)
}

// TexSubImage2D updates a sub-rectangle of an already-allocated texture
// in place. The region MUST lie entirely inside the texture (§6).
func (c *Context) TexSubImage2D(target Enum, level, xoffset, yoffset, width, height int,
	format Enum, typ Enum, pixels []byte) {
	if target != TEXTURE_2D {
		c.err.set(newError("TexSubImage2D", INVALID_ENUM, "unknown texture target %#x", target))
		return
	}
	tex := c.textures.lookup(c.textureUnits[c.ActiveTexture].Bound)
	if tex == nil || tex.Pixels == nil {
		c.err.set(newError("TexSubImage2D", INVALID_OPERATION, "sub-image upload on an uninitialized texture"))
		return
	}
	if xoffset < 0 || yoffset < 0 || xoffset+width > tex.Width || yoffset+height > tex.Height {
		c.err.set(newError("TexSubImage2D", INVALID_VALUE, "region lies outside the texture bounds"))
		return
	}
	bpp := bytesPerPixel(tex.Format)
	for row := 0; row < height; row++ {
		dstOff := ((yoffset+row)*tex.Width + xoffset) * bpp
		srcOff := row * width * bpp
		copy(tex.Pixels[dstOff:dstOff+width*bpp], pixels[srcOff:srcOff+width*bpp])
	}
}

// TexParameteri sets an integer sampling parameter on the active unit's
// bound texture target.
func (c *Context) TexParameteri(target Enum, pname Enum, param int) {
	if target != TEXTURE_2D {
		c.err.set(newError("TexParameteri", INVALID_ENUM, "unknown texture target %#x", target))
		return
	}
	unit := c.textureUnits[c.ActiveTexture]
	switch pname {
	case TEXTURE_MAG_FILTER:
		unit.MagFilter = Enum(param)
	case TEXTURE_MIN_FILTER:
		unit.MinFilter = Enum(param)
	case TEXTURE_WRAP_S:
		unit.WrapS = Enum(param)
	case TEXTURE_WRAP_T:
		unit.WrapT = Enum(param)
	default:
		c.err.set(newError("TexParameteri", INVALID_ENUM, "unknown parameter %#x", pname))
	}
}
