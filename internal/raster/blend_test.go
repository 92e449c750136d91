package raster

import "testing"

func approxEqual4(a, b [4]float32, eps float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > eps {
			return false
		}
	}
	return true
}

func TestBlendSrcAlphaOneMinusSrcAlpha(t *testing.T) {
	src := [4]float32{0.5, 0.6, 0.7, 0.8}
	dst := [4]float32{0.1, 0.2, 0.3, 0.4}

	// SRC_ALPHA, ONE_MINUS_SRC_ALPHA is the canonical over-blend.
	state := BlendState{
		SrcRGB: SrcAlpha, DstRGB: OneMinusSrcAlpha,
		SrcAlpha: SrcAlpha, DstAlpha: OneMinusSrcAlpha,
	}
	got := Blend(state, src, dst)
	want := [4]float32{
		0.8*0.5 + 0.2*0.1,
		0.8*0.6 + 0.2*0.2,
		0.8*0.7 + 0.2*0.3,
		0.8*0.8 + 0.2*0.4,
	}
	if !approxEqual4(got, want, 0.0001) {
		t.Errorf("Blend(src-alpha) = %v, want %v", got, want)
	}
}

func TestBlendReplace(t *testing.T) {
	src := [4]float32{0.2, 0.4, 0.6, 0.8}
	dst := [4]float32{0.9, 0.9, 0.9, 0.9}
	state := BlendState{SrcRGB: One, DstRGB: Zero, SrcAlpha: One, DstAlpha: Zero}
	got := Blend(state, src, dst)
	if !approxEqual4(got, src, 0.0001) {
		t.Errorf("Blend(ONE, ZERO) = %v, want src %v", got, src)
	}
}

func TestBlendClampsToUnitRange(t *testing.T) {
	src := [4]float32{1, 1, 1, 1}
	dst := [4]float32{1, 1, 1, 1}
	state := BlendState{SrcRGB: One, DstRGB: One, SrcAlpha: One, DstAlpha: One}
	got := Blend(state, src, dst)
	for i, v := range got {
		if v != 1 {
			t.Errorf("channel %d = %v, want clamped 1", i, v)
		}
	}
}

func TestBlendAlphaSaturate(t *testing.T) {
	src := [4]float32{1, 1, 1, 0.3}
	dst := [4]float32{0, 0, 0, 0.5}
	state := BlendState{SrcRGB: SrcAlphaSaturate, DstRGB: One, SrcAlpha: One, DstAlpha: Zero}
	got := Blend(state, src, dst)
	// min(src.a, 1-dst.a) = min(0.3, 0.5) = 0.3
	want := float32(0.3 * 1)
	if d := got[0] - want; d > 0.0001 || d < -0.0001 {
		t.Errorf("SRC_ALPHA_SATURATE channel 0 = %v, want %v", got[0], want)
	}
	// Alpha uses ONE/ZERO, so the result is src.a unchanged.
	if got[3] != src[3] {
		t.Errorf("alpha channel with ONE/ZERO factors = %v, want src alpha %v", got[3], src[3])
	}
}
