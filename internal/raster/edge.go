package raster

// EdgeFunction evaluates the signed area of the parallelogram formed by
// the edge (a, b) and a point p: positive when p is to the left of a->b,
// negative to the right, zero on the line. Grounded on
// hal/software/raster/triangle.go's EdgeFunction, stripped of the
// top-left tie-break bias that file adds for its own fill rule — this
// spec's coverage test (§4.6) accepts a pixel whenever all three weights
// share a sign, ties included.
type EdgeFunction struct {
	ax, ay, bx, by float32
}

// NewEdgeFunction builds the edge function for the directed edge a->b.
func NewEdgeFunction(ax, ay, bx, by float32) EdgeFunction {
	return EdgeFunction{ax: ax, ay: ay, bx: bx, by: by}
}

// Evaluate returns the signed area at point (px, py).
func (e EdgeFunction) Evaluate(px, py float32) float32 {
	return (e.bx-e.ax)*(py-e.ay) - (e.by-e.ay)*(px-e.ax)
}

// TriangleArea returns twice the signed area of the triangle (v0, v1, v2)
// in NDC space; its sign gives the winding direction.
func TriangleArea(v0, v1, v2 Vertex) float32 {
	return (v1.X-v0.X)*(v2.Y-v0.Y) - (v2.X-v0.X)*(v1.Y-v0.Y)
}

// ShouldCull reports whether the triangle must be discarded given the
// current cull mode and front-face winding (§4.6 step 2). A degenerate
// (zero-area) triangle is never culled by this function; callers that
// want to drop degenerate triangles check the area separately.
func ShouldCull(area float32, mode CullMode, front FrontFace, enabled bool) bool {
	if !enabled || area == 0 {
		return false
	}
	isCCW := area > 0
	isFront := isCCW
	if front == FrontFaceCW {
		isFront = !isCCW
	}
	switch mode {
	case CullFrontAndBack:
		return true
	case CullFront:
		return isFront
	default: // CullBack
		return !isFront
	}
}
