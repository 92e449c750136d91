package gles1

import (
	"github.com/tinygl/gles1/internal/framebuffer"
	"github.com/tinygl/gles1/internal/raster"
)

func framebufferRGBFromColor(color [4]float32) uint16 {
	r := uint8(clamp01(color[0]) * 255)
	g := uint8(clamp01(color[1]) * 255)
	b := uint8(clamp01(color[2]) * 255)
	return framebuffer.RGBTo565(r, g, b)
}

func interpolate(a, b, c [4]float32, w0, w1, w2 float32) [4]float32 {
	var out [4]float32
	for i := range out {
		out[i] = w0*a[i] + w1*b[i] + w2*c[i]
	}
	return out
}

func passesAlphaTest(fn Enum, a, ref float32) bool {
	switch fn {
	case NEVER:
		return false
	case LESS:
		return a < ref
	case EQUAL:
		return a == ref
	case LEQUAL:
		return a <= ref
	case GREATER:
		return a > ref
	case NOTEQUAL:
		return a != ref
	case GEQUAL:
		return a >= ref
	default: // ALWAYS
		return true
	}
}

// fetchTexel samples tex at normalized coordinates (u, v), clamping to
// [0, 1] (wrap modes are a non-goal, §4.7 step 2) and returns RGBA
// normalized to [0, 1].
func fetchTexel(tex *Texture, u, v float32) [4]float32 {
	u = clamp01(u)
	v = clamp01(v)
	uPx := int(u * float32(tex.Width))
	vPx := int(v * float32(tex.Height))
	if uPx == tex.Width {
		uPx--
	}
	if vPx == tex.Height {
		vPx--
	}
	if uPx < 0 {
		uPx = 0
	}
	if vPx < 0 {
		vPx = 0
	}

	bpp := bytesPerPixel(tex.Format)
	offset := (vPx*tex.Width + uPx) * bpp
	if offset+bpp > len(tex.Pixels) {
		return [4]float32{1, 1, 1, 1}
	}

	// Texels are stored at bytesPerPixel(tex.Format) bytes each and are
	// expanded to RGBA here: RGB gets alpha 255, LUMINANCE replicates
	// into RGB, LUMINANCE_ALPHA also carries its alpha, and ALPHA is
	// white with that alpha.
	var rgba [4]byte
	switch tex.Format {
	case RGBA:
		copy(rgba[:], tex.Pixels[offset:offset+4])
	case RGB:
		copy(rgba[:3], tex.Pixels[offset:offset+3])
		rgba[3] = 255
	case LUMINANCE:
		l := tex.Pixels[offset]
		rgba = [4]byte{l, l, l, 255}
	case LUMINANCE_ALPHA:
		l := tex.Pixels[offset]
		rgba = [4]byte{l, l, l, tex.Pixels[offset+1]}
	case ALPHA:
		rgba = [4]byte{255, 255, 255, tex.Pixels[offset]}
	default:
		copy(rgba[:], tex.Pixels[offset:offset+4])
	}

	return [4]float32{
		float32(rgba[0]) / 255,
		float32(rgba[1]) / 255,
		float32(rgba[2]) / 255,
		float32(rgba[3]) / 255,
	}
}

// shadeFragment implements the fragment stage for one covered pixel
// (§4.7): texture fetch, color modulation, alpha test, blend and
// write-back.
func (c *Context) shadeFragment(f raster.Fragment, tri raster.Triangle, sameColor bool) {
	src := [4]float32{1, 1, 1, 1}

	// f.IX/f.IY are rasterizer-space coordinates (NDC pixel centers, Y
	// increasing upward); the framebuffer stores row 0 at the top, so
	// the Y axis is flipped once here via f.BufIndex, which the
	// rasterizer already computed as (H-iy-1)*W+ix (§4.6 step 7).
	imgX := f.BufIndex % c.fb.Width
	imgY := f.BufIndex / c.fb.Width

	unit := c.textureUnits[c.ActiveTexture]
	if unit.Enabled {
		if tex := c.textures.lookup(unit.Bound); tex != nil && tex.Pixels != nil {
			tc := interpolate(tri.V0.TexCoord, tri.V1.TexCoord, tri.V2.TexCoord, f.W0, f.W1, f.W2)
			texel := fetchTexel(tex, tc[0], tc[1])
			for i := range src {
				src[i] *= texel[i]
			}
		}
	}

	if c.ColorArray.Enabled {
		var vcolor [4]float32
		if sameColor {
			vcolor = tri.V0.Color
		} else {
			vcolor = interpolate(tri.V0.Color, tri.V1.Color, tri.V2.Color, f.W0, f.W1, f.W2)
		}
		for i := range src {
			src[i] *= vcolor[i]
		}
	}

	if c.AlphaTestEnabled && !passesAlphaTest(c.AlphaFuncValue, src[3], c.AlphaRef) {
		return
	}

	if c.BlendEnabled {
		dstRGB565 := c.fb.PixelRGB565(imgX, imgY)
		dr, dg, db := framebuffer.RGBFrom565(dstRGB565)
		dst := [4]float32{
			float32(dr) / 255,
			float32(dg) / 255,
			float32(db) / 255,
			float32(c.fb.PixelAlpha(imgX, imgY)) / 255,
		}
		state := raster.BlendState{
			SrcRGB:   glFactorToRaster(c.BlendSrcRGB),
			DstRGB:   glFactorToRaster(c.BlendDstRGB),
			SrcAlpha: glFactorToRaster(c.BlendSrcAlpha),
			DstAlpha: glFactorToRaster(c.BlendDstAlpha),
		}
		src = raster.Blend(state, src, dst)
	}

	rgb565 := framebufferRGBFromColor(src)
	alpha := uint8(clamp01(src[3]) * 255)
	c.fb.SetPixel(imgX, imgY, rgb565, alpha)
}

func glFactorToRaster(f Enum) raster.BlendFactor {
	switch f {
	case ZERO:
		return raster.Zero
	case ONE:
		return raster.One
	case SRC_COLOR:
		return raster.SrcColor
	case ONE_MINUS_SRC_COLOR:
		return raster.OneMinusSrcColor
	case DST_COLOR:
		return raster.DstColor
	case ONE_MINUS_DST_COLOR:
		return raster.OneMinusDstColor
	case SRC_ALPHA:
		return raster.SrcAlpha
	case ONE_MINUS_SRC_ALPHA:
		return raster.OneMinusSrcAlpha
	case DST_ALPHA:
		return raster.DstAlpha
	case ONE_MINUS_DST_ALPHA:
		return raster.OneMinusDstAlpha
	case SRC_ALPHA_SATURATE:
		return raster.SrcAlphaSaturate
	default:
		return raster.Zero
	}
}
