// Package framebuffer owns the pixel, depth, stencil and alpha planes a
// rendering context draws into, plus the fixed set of advertised surface
// configurations. Grounded on original_source/Context.{h,cpp} (plane
// allocation keyed off per-channel bit sizes) and the storage idiom of the
// teacher's hal/software/resource.go Surface/Texture types.
package framebuffer

// Config is an immutable record of framebuffer channel sizes, sample
// count, caveat and the surface/renderable type bitmasks a config
// advertises. It corresponds 1:1 to original_source/Context.h's Config.
type Config struct {
	Red, Green, Blue, Alpha uint8
	Depth, Stencil          uint8
	SampleBuffers, Samples  uint8

	// Caveat is a vendor/driver caveat enum; zero means "none".
	Caveat uint16

	// SurfaceType is a bitmask of renderable surface kinds (window, pbuffer).
	SurfaceType uint8

	// RenderableType is a bitmask of API renderable types (ES1, ...).
	RenderableType uint8
}

// Surface type bits, matching the EGL_WINDOW_BIT / EGL_PBUFFER_BIT values
// the original advertises for every config.
const (
	SurfaceTypeWindow  uint8 = 1 << 0
	SurfaceTypePBuffer uint8 = 1 << 1
)

// RenderableTypeES1 marks a config renderable by this (ES1-class) API.
const RenderableTypeES1 uint8 = 1 << 0

// Configs is the fixed, ordered list of surface configurations this
// library advertises. The order is normative (§6): callers that pick a
// config by index depend on it.
var Configs = []Config{
	{Red: 5, Green: 6, Blue: 5, Alpha: 8, Depth: 0, Stencil: 0, Samples: 0,
		SurfaceType: SurfaceTypeWindow | SurfaceTypePBuffer, RenderableType: RenderableTypeES1},
	{Red: 5, Green: 6, Blue: 5, Alpha: 8, Depth: 16, Stencil: 0, Samples: 0,
		SurfaceType: SurfaceTypeWindow | SurfaceTypePBuffer, RenderableType: RenderableTypeES1},
	{Red: 5, Green: 6, Blue: 5, Alpha: 8, Depth: 16, Stencil: 8, Samples: 0,
		SurfaceType: SurfaceTypeWindow | SurfaceTypePBuffer, RenderableType: RenderableTypeES1},
	{Red: 5, Green: 6, Blue: 5, Alpha: 8, Depth: 0, Stencil: 8, Samples: 0,
		SurfaceType: SurfaceTypeWindow | SurfaceTypePBuffer, RenderableType: RenderableTypeES1},
}
