package gles1

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/tinygl/gles1/internal/framebuffer"
)

func floatBytes(vals ...float32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// TestSolidClear is §8 scenario 1.
func TestSolidClear(t *testing.T) {
	c, _ := newTestContext(2, 2)
	c.ClearColorf(1, 0, 0, 1)
	c.Clear(COLOR_BUFFER_BIT)

	want := framebuffer.SwapBytes(framebuffer.RGBTo565(255, 0, 0))
	if want != 0x00F8 {
		t.Fatalf("sanity check failed: byte-swapped RGBto565(255,0,0) = 0x%04X, want 0x00F8", want)
	}
	for i, got := range c.fb.Color {
		if got != want {
			t.Errorf("pixel %d = 0x%04X, want 0x%04X", i, got, want)
		}
	}
}

// TestAxisAlignedTriangle is §8 scenario 2.
func TestAxisAlignedTriangle(t *testing.T) {
	c, _ := newTestContext(4, 4)
	c.ClearColorf(0, 0, 0, 1)
	c.Clear(COLOR_BUFFER_BIT)

	positions := floatBytes(
		-1, -1, 0,
		1, -1, 0,
		-1, 1, 0,
	)
	colors := floatBytes(
		0, 1, 0, 1,
		0, 1, 0, 1,
		0, 1, 0, 1,
	)
	c.VertexPointer(3, FLOAT, 0, positions)
	c.EnableClientState(VERTEX_ARRAY)
	c.ColorPointer(4, FLOAT, 0, colors)
	c.EnableClientState(COLOR_ARRAY)

	c.DrawArrays(TRIANGLES, 0, 3)

	green := framebuffer.RGBTo565(0, 255, 0)
	clear := framebuffer.RGBTo565(0, 0, 0)

	// Lower-left corner pixel (bottom-left in world maps near buffer row
	// H-1) should be green; the opposite corner should remain clear.
	gotBottomLeft := c.fb.PixelRGB565(0, c.fb.Height-1)
	gotTopRight := c.fb.PixelRGB565(c.fb.Width-1, 0)

	if gotBottomLeft != green {
		t.Errorf("bottom-left pixel = 0x%04X, want green 0x%04X", gotBottomLeft, green)
	}
	if gotTopRight != clear {
		t.Errorf("top-right pixel = 0x%04X, want clear color 0x%04X", gotTopRight, clear)
	}
}

// TestAlphaTestDiscard is §8 scenario 4.
func TestAlphaTestDiscard(t *testing.T) {
	c, _ := newTestContext(4, 4)
	c.ClearColorf(0, 0, 0, 1)
	c.Clear(COLOR_BUFFER_BIT)
	before := make([]uint16, len(c.fb.Color))
	copy(before, c.fb.Color)

	positions := floatBytes(
		-1, -1, 0,
		1, -1, 0,
		-1, 1, 0,
	)
	colors := floatBytes(
		1, 1, 1, 0.25,
		1, 1, 1, 0.25,
		1, 1, 1, 0.25,
	)
	c.VertexPointer(3, FLOAT, 0, positions)
	c.EnableClientState(VERTEX_ARRAY)
	c.ColorPointer(4, FLOAT, 0, colors)
	c.EnableClientState(COLOR_ARRAY)

	c.Enable(ALPHA_TEST)
	c.AlphaFunc(GREATER, 0.5)

	c.DrawArrays(TRIANGLES, 0, 3)

	for i, got := range c.fb.Color {
		if got != before[i] {
			t.Errorf("pixel %d changed to 0x%04X, alpha test should have discarded every fragment", i, got)
		}
	}
}

// TestBlendSrcAlphaOneMinusSrcAlpha is §8 scenario 5.
func TestBlendSrcAlphaOneMinusSrcAlpha(t *testing.T) {
	c, _ := newTestContext(1, 1)
	c.ClearColorf(0, 0, 1, 1)
	c.Clear(COLOR_BUFFER_BIT)

	positions := floatBytes(
		-1, -1, 0,
		1, -1, 0,
		-1, 1, 0,
	)
	colors := floatBytes(
		1, 0, 0, 0.5,
		1, 0, 0, 0.5,
		1, 0, 0, 0.5,
	)
	c.VertexPointer(3, FLOAT, 0, positions)
	c.EnableClientState(VERTEX_ARRAY)
	c.ColorPointer(4, FLOAT, 0, colors)
	c.EnableClientState(COLOR_ARRAY)

	c.Enable(BLEND)
	c.BlendFunc(SRC_ALPHA, ONE_MINUS_SRC_ALPHA)

	c.DrawArrays(TRIANGLES, 0, 3)

	// The expected pixel is RGBTo565(128±2, 0, 128±2): compare the packed
	// 565 fields against the fields that 8-bit inputs 126..130 encode to.
	px := c.fb.PixelRGB565(0, 0)
	r5, g6, b5 := px>>11, px>>5&0x3F, px&0x1F
	lo5, hi5 := framebuffer.RGBTo565(0, 0, 126), framebuffer.RGBTo565(0, 0, 130)
	if r5 < lo5 || r5 > hi5 {
		t.Errorf("red field = %d, want %d..%d (128±2 in 8 bits)", r5, lo5, hi5)
	}
	if g6 != 0 {
		t.Errorf("green field = %d, want 0", g6)
	}
	if b5 < lo5 || b5 > hi5 {
		t.Errorf("blue field = %d, want %d..%d (128±2 in 8 bits)", b5, lo5, hi5)
	}
}

func TestGenTexturesProducesDistinctPositiveIDs(t *testing.T) {
	c := NewContext()
	ids := make([]uint32, 4)
	c.GenTextures(4, ids)
	seen := map[uint32]bool{}
	for _, id := range ids {
		if id == 0 {
			t.Fatalf("GenTextures produced ID 0")
		}
		if seen[id] {
			t.Fatalf("GenTextures produced duplicate ID %d", id)
		}
		seen[id] = true
	}
}

func TestDeleteTexturesClearsBinding(t *testing.T) {
	c := NewContext()
	ids := make([]uint32, 1)
	c.GenTextures(1, ids)
	c.BindTexture(TEXTURE_2D, ids[0])
	if c.textureUnits[c.ActiveTexture].Bound != ids[0] {
		t.Fatalf("texture not bound")
	}
	c.DeleteTextures(ids)
	if c.textureUnits[c.ActiveTexture].Bound != 0 {
		t.Errorf("bound texture after delete = %d, want 0", c.textureUnits[c.ActiveTexture].Bound)
	}
}

// TestTexturedTriangleWithoutColorArrayUsesTexel is a reduced form of §8
// scenario 3: a uniformly yellow 2x2 texture on one triangle, with the
// color array disabled, so the sampled texel is written unmodulated.
func TestTexturedTriangleWithoutColorArrayUsesTexel(t *testing.T) {
	c, _ := newTestContext(2, 2)
	c.ClearColorf(0, 0, 0, 1)
	c.Clear(COLOR_BUFFER_BIT)

	ids := make([]uint32, 1)
	c.GenTextures(1, ids)
	c.BindTexture(TEXTURE_2D, ids[0])
	pixels := []byte{
		255, 255, 0, 255, 255, 255, 0, 255,
		255, 255, 0, 255, 255, 255, 0, 255,
	}
	c.TexImage2D(TEXTURE_2D, 0, RGBA, 2, 2, 0, RGBA, UNSIGNED_BYTE, pixels)
	c.TexParameteri(TEXTURE_2D, TEXTURE_MIN_FILTER, NEAREST)
	c.TexParameteri(TEXTURE_2D, TEXTURE_MAG_FILTER, NEAREST)
	c.Enable(TEXTURE_2D)

	positions := floatBytes(
		-1, -1, 0,
		1, -1, 0,
		-1, 1, 0,
	)
	texCoords := floatBytes(
		0, 1,
		1, 1,
		0, 0,
	)
	c.VertexPointer(3, FLOAT, 0, positions)
	c.EnableClientState(VERTEX_ARRAY)
	c.TexCoordPointer(2, FLOAT, 0, texCoords)
	c.EnableClientState(TEXTURE_COORD_ARRAY)

	c.DrawArrays(TRIANGLES, 0, 3)

	want := framebuffer.RGBTo565(255, 255, 0)
	got := c.fb.PixelRGB565(0, c.fb.Height-1)
	if got != want {
		t.Errorf("bottom-left textured pixel = 0x%04X, want yellow 0x%04X", got, want)
	}
}

func TestDrawArraysCullFrontAndBackDiscardsWholeDraw(t *testing.T) {
	c, _ := newTestContext(2, 2)
	c.ClearColorf(0, 0, 0, 1)
	c.Clear(COLOR_BUFFER_BIT)
	before := make([]uint16, len(c.fb.Color))
	copy(before, c.fb.Color)

	positions := floatBytes(-1, -1, 0, 1, -1, 0, -1, 1, 0)
	c.VertexPointer(3, FLOAT, 0, positions)
	c.EnableClientState(VERTEX_ARRAY)

	c.Enable(CULL_FACE)
	c.CullFace(FRONT_AND_BACK)
	c.DrawArrays(TRIANGLES, 0, 3)

	for i, got := range c.fb.Color {
		if got != before[i] {
			t.Errorf("FRONT_AND_BACK cull should discard the whole draw, pixel %d changed", i)
		}
	}
}
