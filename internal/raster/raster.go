package raster

import "github.com/chewxy/math32"

// Fragment is one covered pixel reported by Rasterize: its framebuffer
// index plus the barycentric weights needed to interpolate vertex
// attributes (§4.6 step 7).
type Fragment struct {
	BufIndex int
	IX, IY   int
	W0, W1, W2 float32
}

// FragmentFunc consumes a covered pixel. Returning early from Rasterize
// is not supported; a FragmentFunc that wants to skip shading work for a
// pixel simply does nothing.
type FragmentFunc func(f Fragment)

// Rasterize scans the bounding box of tri against a width x height
// target and invokes fn for every covered pixel, implementing §4.6 steps
// 3-8. Culling (step 2) is the caller's responsibility via ShouldCull,
// checked before calling Rasterize, since it requires state (cull-face
// enable, front-face, cull-mode) this package does not hold.
func Rasterize(tri Triangle, width, height int, fn FragmentFunc) {
	v0, v1, v2 := tri.V0, tri.V1, tri.V2
	area := TriangleArea(v0, v1, v2)
	if area == 0 {
		return
	}

	// Step 3: NDC bounding box, clamped to [-1, 1].
	minX := clamp(min3(v0.X, v1.X, v2.X), -1, 1)
	maxX := clamp(max3(v0.X, v1.X, v2.X), -1, 1)
	minY := clamp(min3(v0.Y, v1.Y, v2.Y), -1, 1)
	maxY := clamp(max3(v0.Y, v1.Y, v2.Y), -1, 1)

	w := float32(width)
	h := float32(height)

	// Step 4: NDC bounds to pixel bounds.
	pxMin := int(math32.Floor((0.5 + 0.5*minX) * w))
	pxMax := int(math32.Ceil((0.5 + 0.5*maxX) * w))
	pyMin := int(math32.Floor((0.5 + 0.5*minY) * h))
	pyMax := int(math32.Ceil((0.5 + 0.5*maxY) * h))

	if pxMin < 0 {
		pxMin = 0
	}
	if pyMin < 0 {
		pyMin = 0
	}
	if pxMax > width {
		pxMax = width
	}
	if pyMax > height {
		pyMax = height
	}

	e12 := NewEdgeFunction(v1.X, v1.Y, v2.X, v2.Y)
	e20 := NewEdgeFunction(v2.X, v2.Y, v0.X, v0.Y)
	e01 := NewEdgeFunction(v0.X, v0.Y, v1.X, v1.Y)

	for iy := pyMin; iy < pyMax; iy++ {
		py := -1 + float32(iy)*2/h
		inRow := false
		for ix := pxMin; ix < pxMax; ix++ {
			px := -1 + float32(ix)*2/w

			w0 := e12.Evaluate(px, py)
			w1 := e20.Evaluate(px, py)
			w2 := e01.Evaluate(px, py)

			// Step 6: coverage test, either winding sign accepted.
			covered := (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0)
			if !covered {
				if inRow {
					// Step 8: row optimization, triangle is convex.
					break
				}
				continue
			}
			inRow = true

			bufIndex := (height-iy-1)*width + ix
			fn(Fragment{
				BufIndex: bufIndex,
				IX:       ix,
				IY:       iy,
				W0:       w0 / area,
				W1:       w1 / area,
				W2:       w2 / area,
			})
		}
	}
}
