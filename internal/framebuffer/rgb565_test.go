package framebuffer

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	// Every 16-bit RGB565 value must survive decode-then-encode, ignoring
	// bits 565 cannot represent (the low 3 bits of R/B, low 2 of G).
	for color := 0; color < 1<<16; color += 7 {
		c := uint16(color)
		r, g, b := RGBFrom565(c)
		got := RGBTo565(r, g, b)
		if got != c {
			t.Fatalf("RGBTo565(RGBFrom565(0x%04X)) = 0x%04X, want 0x%04X", c, got, c)
		}
	}
}

func TestRGBTo565Truncation(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint16
	}{
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
		{255, 255, 255, 0xFFFF},
		{0, 0, 0, 0x0000},
	}
	for _, tt := range tests {
		if got := RGBTo565(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("RGBTo565(%d,%d,%d) = 0x%04X, want 0x%04X", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestSwapBytes(t *testing.T) {
	if got := SwapBytes(0x00F8); got != 0xF800 {
		t.Errorf("SwapBytes(0x00F8) = 0x%04X, want 0xF800", got)
	}
	if got := SwapBytes(SwapBytes(0x1234)); got != 0x1234 {
		t.Errorf("SwapBytes is not self-inverse: got 0x%04X", got)
	}
}
