// Package egl is the narrow surface/config negotiation and display
// collaborator the core context binds against: a trivial key/value query
// over a fixed list of configurations plus a four-method handshake with
// whatever owns an actual pixel target (§1, §6: "explicitly out of
// scope ... through narrow interfaces"). Grounded on
// original_source/EGL.cpp's ABCv2_Display/Surface (config list, init /
// swapBuffers), reduced to the single-display, single-context,
// non-double-buffered case this spec describes.
package egl

import "github.com/tinygl/gles1/internal/framebuffer"

// Display is the external collaborator a Context presents its frames to.
// Implementations own whatever actually puts pixels on screen (or in a
// file, or nowhere at all, for headless use); this package never reaches
// past the interface.
type Display interface {
	// Init prepares the display for width x height pixels and reports
	// whether that succeeded. It is idempotent: a
	// Display that is already initialized MUST return without error.
	Init(width, height int) error

	// Buffer returns the pixel plane the Context should treat as its
	// color buffer. Its layout matches framebuffer.Store.Color: one
	// byte-swapped RGB565 word per pixel, row-major, row 0 at the top.
	Buffer() []uint16

	// Present hands the current contents of Buffer to the display
	// hardware (or sink). Called at swap, before FrameStart.
	Present() error

	// FrameStart signals a new frame boundary, called at swap after
	// Present (§5: "frame_start before, draw+present at swap" describes
	// the bracketing around draw calls; this method is the bracket for
	// the NEXT frame).
	FrameStart()
}

// Config mirrors the fixed, ordered configuration list the context
// advertises (§6). It is a type alias of framebuffer.Config so callers
// negotiating a surface and code allocating framebuffer planes share one
// definition.
type Config = framebuffer.Config

// Configs returns the full, ordered list of advertised configurations.
func Configs() []Config {
	return framebuffer.Configs
}

// ChooseConfig returns the index of the first advertised config whose
// channel sizes are each greater than or equal to the requested minimums,
// or -1 if none qualify: a trivial key/value query, no attribute-list
// parsing, no caveat ranking.
func ChooseConfig(minRed, minGreen, minBlue, minAlpha, minDepth, minStencil uint8) int {
	for i, c := range Configs() {
		if c.Red >= minRed && c.Green >= minGreen && c.Blue >= minBlue &&
			c.Alpha >= minAlpha && c.Depth >= minDepth && c.Stencil >= minStencil {
			return i
		}
	}
	return -1
}
