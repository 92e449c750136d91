package gles1

// Enum values match the OpenGL ES 1.x wire constants so callers that
// generated bindings against the real API can link against this
// implementation unchanged.
//
//nolint:revive
const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR          = 0
	INVALID_ENUM      = 0x0500
	INVALID_VALUE     = 0x0501
	INVALID_OPERATION = 0x0502
	STACK_OVERFLOW    = 0x0503
	STACK_UNDERFLOW   = 0x0504
	OUT_OF_MEMORY     = 0x0505

	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	FLOAT          = 0x1406
	FIXED          = 0x140C

	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_LOOP      = 0x0002
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006

	CULL_FACE    = 0x0B44
	ALPHA_TEST   = 0x0BC0
	BLEND        = 0x0BE2
	TEXTURE_2D   = 0x0DE1
	DEPTH_TEST   = 0x0B71
	STENCIL_TEST = 0x0B90
	SCISSOR_TEST = 0x0C11
	FOG          = 0x0B60
	LIGHTING     = 0x0B50

	FRONT           = 0x0404
	BACK            = 0x0405
	FRONT_AND_BACK  = 0x0408
	CW              = 0x0900
	CCW             = 0x0901

	NEVER    = 0x0200
	LESS     = 0x0201
	EQUAL    = 0x0202
	LEQUAL   = 0x0203
	GREATER  = 0x0204
	NOTEQUAL = 0x0205
	GEQUAL   = 0x0206
	ALWAYS   = 0x0207

	ZERO                     = 0
	ONE                      = 1
	SRC_COLOR                = 0x0300
	ONE_MINUS_SRC_COLOR      = 0x0301
	SRC_ALPHA                = 0x0302
	ONE_MINUS_SRC_ALPHA      = 0x0303
	DST_ALPHA                = 0x0304
	ONE_MINUS_DST_ALPHA      = 0x0305
	DST_COLOR                = 0x0306
	ONE_MINUS_DST_COLOR      = 0x0307
	SRC_ALPHA_SATURATE       = 0x0308

	MODELVIEW  = 0x1700
	PROJECTION = 0x1701
	TEXTURE    = 0x1702

	VERTEX_ARRAY        = 0x8074
	NORMAL_ARRAY        = 0x8075
	COLOR_ARRAY         = 0x8076
	TEXTURE_COORD_ARRAY = 0x8078

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893

	TEXTURE0 = 0x84C0
	TEXTURE1 = 0x84C1

	ALPHA           = 0x1906
	RGB             = 0x1907
	RGBA            = 0x1908
	LUMINANCE       = 0x1909
	LUMINANCE_ALPHA = 0x190A

	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	NEAREST            = 0x2600
	LINEAR             = 0x2601
	REPEAT             = 0x2901
	CLAMP_TO_EDGE      = 0x812F

	COLOR_BUFFER_BIT   = 0x00004000
	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
)
