// Package raster implements the edge-function triangle rasterizer:
// bounding-box scan, barycentric weight computation and face culling.
// It knows nothing about textures, blending or the framebuffer — those
// live in the fragment stage one layer up (gles1 package) — matching the
// teacher's separation between hal/software/raster (pure geometry) and
// its device/command layers (state-driven shading).
//
// Grounded on hal/software/raster/triangle.go and cull.go, re-derived to
// match this spec's exact algorithm (§4.6): no perspective-correct
// attribute interpolation, no top-left fill-rule bias, coverage accepts
// either winding sign.
package raster

// Vertex is a single rasterizer input vertex: NDC position (x, y in
// [-1, 1] after perspective divide), a color and a texture coordinate.
// Color and TexCoord are carried through unchanged so the fragment stage
// can interpolate them with the barycentric weights Rasterize reports.
type Vertex struct {
	X, Y     float32
	Color    [4]float32
	TexCoord [4]float32
}

// Triangle is three vertices in winding order (v0, v1, v2).
type Triangle struct {
	V0, V1, V2 Vertex
}

// CullMode selects which winding is discarded when culling is enabled.
type CullMode uint8

const (
	CullBack CullMode = iota
	CullFront
	CullFrontAndBack
)

// FrontFace selects which winding is considered front-facing.
type FrontFace uint8

const (
	FrontFaceCCW FrontFace = iota
	FrontFaceCW
)

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
