package raster

// BlendFactor selects a per-channel blend weight (§4.7 step 5): 11
// entries, no dual-source factors, no constant-color factors — those
// are not part of this pipeline's state.
type BlendFactor uint8

const (
	Zero BlendFactor = iota
	One
	SrcColor
	OneMinusSrcColor
	DstColor
	OneMinusDstColor
	SrcAlpha
	OneMinusSrcAlpha
	DstAlpha
	OneMinusDstAlpha
	SrcAlphaSaturate
)

// BlendState holds the four independently-selectable blend factors
// (§4.7 step 5: separate RGB-source, RGB-dest, alpha-source,
// alpha-dest). There is no BlendOperation field: this pipeline only
// ever adds scaled source and destination, it never subtracts or
// takes a min/max.
type BlendState struct {
	SrcRGB, DstRGB     BlendFactor
	SrcAlpha, DstAlpha BlendFactor
}

func clamp01(v float32) float32 {
	return clamp(v, 0, 1)
}

func applyFactor(f BlendFactor, src, dst [4]float32, channel int) float32 {
	switch f {
	case Zero:
		return 0
	case One:
		return 1
	case SrcColor:
		return src[channel]
	case OneMinusSrcColor:
		return 1 - src[channel]
	case DstColor:
		return dst[channel]
	case OneMinusDstColor:
		return 1 - dst[channel]
	case SrcAlpha:
		return src[3]
	case OneMinusSrcAlpha:
		return 1 - src[3]
	case DstAlpha:
		return dst[3]
	case OneMinusDstAlpha:
		return 1 - dst[3]
	case SrcAlphaSaturate:
		if channel == 3 {
			return 1
		}
		da := 1 - dst[3]
		if src[3] < da {
			return src[3]
		}
		return da
	default:
		return 0
	}
}

// Blend combines src over dst per state, returning the result clamped to
// [0, 1] in each channel (§4.7 step 5).
func Blend(state BlendState, src, dst [4]float32) [4]float32 {
	var out [4]float32
	for ch := 0; ch < 3; ch++ {
		sf := applyFactor(state.SrcRGB, src, dst, ch)
		df := applyFactor(state.DstRGB, src, dst, ch)
		out[ch] = clamp01(sf*src[ch] + df*dst[ch])
	}
	sf := applyFactor(state.SrcAlpha, src, dst, 3)
	df := applyFactor(state.DstAlpha, src, dst, 3)
	out[3] = clamp01(sf*src[3] + df*dst[3])
	return out
}
