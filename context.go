// Package gles1 implements the core of a fixed-function 3D rendering
// pipeline that emulates a legacy OpenGL ES 1.x-class API entirely in
// software: a rendering context state machine plus a rasterizer that
// turns client vertex arrays into framebuffer writes via matrix
// transforms, edge-function triangle setup, texturing, alpha testing
// and blending.
//
// Display presentation, surface/config negotiation and large-buffer
// allocation are narrow external collaborators (see the egl package)
// rather than concerns of this package.
package gles1

import (
	"sync"

	"github.com/tinygl/gles1/egl"
	"github.com/tinygl/gles1/internal/framebuffer"
	"github.com/tinygl/gles1/internal/mat4"
)

// Context aggregates all global rendering state: matrices, bindings,
// client arrays, capabilities, resource tables, the framebuffer store
// and the error latch (§3). There is exactly one Context per process,
// reached through Current; this mirrors the reference implementation's
// process-wide mutable pointer without relying on goroutine-local state
// (§9: "drawing must NOT require thread-local state").
type Context struct {
	err latch

	MatrixModeValue Enum
	modelViewStack  *matrixStack
	projectionStack *matrixStack

	ClearColor               [4]float32
	ClearDepthValue          float32
	ClearStencilValue        int

	ArrayBuffer        uint32
	ElementArrayBuffer uint32

	Viewport Viewport

	CullFaceEnabled bool
	CullModeValue   Enum
	FrontFaceValue  Enum

	BlendEnabled                           bool
	BlendSrcRGB, BlendDstRGB               Enum
	BlendSrcAlpha, BlendDstAlpha           Enum

	AlphaTestEnabled bool
	AlphaFuncValue   Enum
	AlphaRef         float32

	ActiveTexture       int
	ClientActiveTextureUnit int
	textureUnits        [2]*TextureUnit

	VertexArray ClientArray
	ColorArray  ClientArray
	NormalArray ClientArray

	buffers  *handleTable[Buffer]
	textures *handleTable[Texture]

	fb      *framebuffer.Store
	config  framebuffer.Config
	display egl.Display

	noopCaps map[Enum]bool
}

var (
	currentMu sync.Mutex
	current   *Context
)

// NewContext allocates a new, uninitialized Context. It does not own a
// framebuffer until MakeCurrent binds one via a Display and Config.
func NewContext() *Context {
	c := &Context{
		MatrixModeValue: MODELVIEW,
		modelViewStack:  newMatrixStack(modelViewStackCap),
		projectionStack: newMatrixStack(projectionStackCap),
		ClearColor:      [4]float32{0, 0, 0, 0},
		CullModeValue:   BACK,
		FrontFaceValue:  CCW,
		BlendSrcRGB:     ONE,
		BlendDstRGB:     ZERO,
		BlendSrcAlpha:   ONE,
		BlendDstAlpha:   ZERO,
		AlphaFuncValue:  ALWAYS,
		buffers:         newHandleTable[Buffer](),
		textures:        newHandleTable[Texture](),
	}
	c.textureUnits[0] = newTextureUnit()
	c.textureUnits[1] = newTextureUnit()
	return c
}

// MakeCurrent initializes the display for width x height, binds its
// pixel plane as this Context's color buffer, allocates the depth,
// stencil and alpha planes per cfg, sets the viewport to the surface
// dimensions and installs the Context as the process-wide current one
// (§5: "make-current" binds the display's pixel plane as the color
// buffer).
func MakeCurrent(c *Context, d egl.Display, cfg egl.Config, width, height int) error {
	if err := d.Init(width, height); err != nil {
		return err
	}
	c.display = d
	c.config = cfg
	c.fb = framebuffer.New(cfg, width, height)
	if buf := d.Buffer(); len(buf) == width*height {
		// "The Context binds the display's pixel plane as its color
		// buffer during make-current" (§6): draws write straight into
		// the display's backing storage, no copy at swap.
		c.fb.Color = buf
	}
	c.Viewport = Viewport{X: 0, Y: 0, Width: width, Height: height}

	currentMu.Lock()
	current = c
	currentMu.Unlock()
	return nil
}

// Current returns the process-wide current Context, or nil if none has
// been made current yet.
func Current() *Context {
	currentMu.Lock()
	defer currentMu.Unlock()
	return current
}

// GetError fetches and clears the single-latch error sentinel (§7).
func (c *Context) GetError() Enum {
	return c.err.get()
}

// SwapBuffers hands the current color plane to the display and signals
// the frame boundary (§5: "frame_start before, draw+present at swap").
func (c *Context) SwapBuffers() error {
	if c.display == nil {
		return nil
	}
	if err := c.display.Present(); err != nil {
		return err
	}
	c.display.FrameStart()
	return nil
}

// modelViewProjection composes P*MV once per draw (§4.2), column-major.
func (c *Context) modelViewProjection() mat4.Mat4 {
	return mat4.Multiply(*c.projectionStack.top(), *c.modelViewStack.top())
}
