package raster

import "testing"

func vtx(x, y float32) Vertex { return Vertex{X: x, Y: y} }

func TestRasterizeOversizedTriangleStaysInBuffer(t *testing.T) {
	const w, h = 4, 4
	tri := Triangle{
		V0: vtx(-2, -2),
		V1: vtx(2, -2),
		V2: vtx(0, 2),
	}
	covered := make(map[int]bool)
	Rasterize(tri, w, h, func(f Fragment) {
		covered[f.BufIndex] = true
	})
	if len(covered) == 0 {
		t.Fatal("expected at least one covered pixel")
	}
	for idx := range covered {
		if idx < 0 || idx >= w*h {
			t.Errorf("buffer index %d out of range", idx)
		}
	}
}

func TestRasterizeDegenerateTriangleProducesNoFragments(t *testing.T) {
	tri := Triangle{V0: vtx(0, 0), V1: vtx(0.5, 0.5), V2: vtx(1, 1)}
	called := false
	Rasterize(tri, 8, 8, func(f Fragment) { called = true })
	if called {
		t.Error("degenerate (collinear) triangle should produce no fragments")
	}
}

func TestRasterizeBufferIndexFlipsY(t *testing.T) {
	// A triangle covering only the top-left NDC quadrant should map to
	// framebuffer rows near the bottom of the index range (Y flip, §4.6
	// step 7: iBuf = (H-iy-1)*W+ix).
	const w, h = 8, 8
	tri := Triangle{
		V0: vtx(-1, 0.5),
		V1: vtx(-0.5, 1),
		V2: vtx(-1, 1),
	}
	minIdx := w * h
	Rasterize(tri, w, h, func(f Fragment) {
		if f.BufIndex < minIdx {
			minIdx = f.BufIndex
		}
	})
	if minIdx == w*h {
		t.Skip("triangle too small to rasterize at this resolution")
	}
	if minIdx >= w*h/2 {
		t.Errorf("expected top NDC rows to map to low buffer indices, got min index %d", minIdx)
	}
}

func TestShouldCull(t *testing.T) {
	tests := []struct {
		name    string
		area    float32
		mode    CullMode
		front   FrontFace
		enabled bool
		want    bool
	}{
		{"disabled never culls", 1, CullBack, FrontFaceCCW, false, false},
		{"CCW front, cull back, CCW tri survives", 1, CullBack, FrontFaceCCW, true, false},
		{"CW tri, cull back, front CCW, gets culled", -1, CullBack, FrontFaceCCW, true, true},
		{"cull front removes CCW when front is CCW", 1, CullFront, FrontFaceCCW, true, true},
		{"front face CW flips the test", -1, CullBack, FrontFaceCW, true, false},
		{"front and back always culls", 1, CullFrontAndBack, FrontFaceCCW, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldCull(tt.area, tt.mode, tt.front, tt.enabled); got != tt.want {
				t.Errorf("ShouldCull(area=%v, mode=%v, front=%v, enabled=%v) = %v, want %v",
					tt.area, tt.mode, tt.front, tt.enabled, got, tt.want)
			}
		})
	}
}

func TestTriangleAreaSign(t *testing.T) {
	ccw := TriangleArea(vtx(-1, -1), vtx(1, -1), vtx(0, 1))
	if ccw <= 0 {
		t.Errorf("expected positive area for CCW triangle, got %v", ccw)
	}
	cw := TriangleArea(vtx(-1, -1), vtx(0, 1), vtx(1, -1))
	if cw >= 0 {
		t.Errorf("expected negative area for CW triangle, got %v", cw)
	}
}
