package gles1

import "github.com/tinygl/gles1/internal/mat4"

// Buffer is a reserved handle with an opaque byte payload (§3: "data
// upload is a non-goal"). The payload exists so a future implementation
// can honor BufferData/BufferSubData without changing the handle model.
type Buffer struct {
	Data []byte
}

// Texture is a 2D texture object: dimensions, declared internal format
// and tightly-packed pixel storage (§3, §6).
type Texture struct {
	Width, Height int
	Format        Enum
	Pixels        []byte // tightly packed, bytesPerPixel(Format) per texel
}

func bytesPerPixel(format Enum) int {
	switch format {
	case RGBA:
		return 4
	case RGB:
		return 3
	case LUMINANCE_ALPHA:
		return 2
	case LUMINANCE, ALPHA:
		return 1
	default:
		return 4
	}
}

// TextureUnit holds everything a fixed-function texture unit owns that
// is not the texture object itself: bindings, the per-unit texture
// matrix stack, the client texcoord array, enable flag and sampling
// parameters (§3).
type TextureUnit struct {
	Enabled bool
	Bound   uint32

	MagFilter, MinFilter Enum
	WrapS, WrapT         Enum

	TexCoordArray ClientArray
	TextureStack  *matrixStack

	Matrix mat4.Mat4 // cached top of TextureStack, refreshed on change
}

func newTextureUnit() *TextureUnit {
	return &TextureUnit{
		MagFilter:    LINEAR,
		MinFilter:    LINEAR,
		WrapS:        REPEAT,
		WrapT:        REPEAT,
		TextureStack: newMatrixStack(textureStackCap),
		Matrix:       mat4.Identity(),
	}
}

// ClientArray is a strided, typed vertex attribute descriptor pointing
// at caller-owned memory (§3, §9: "borrowed pointers whose lifetime is
// the caller's responsibility"). Type is one of BYTE, SHORT, FLOAT or
// FIXED for position, normal and texcoord arrays, and one of
// UNSIGNED_BYTE (scaled by 1/255), FLOAT or FIXED for the color array.
type ClientArray struct {
	Enabled    bool
	Size       int // component count
	Type       Enum
	Stride     int // effective byte stride; a stride of 0 passed to *Pointer is stored as Size*sizeof(Type)
	Pointer    []byte
}

// Viewport is stored but never consulted by the rasterizer (§6, §9).
type Viewport struct {
	X, Y, Width, Height int
}
