package foundations

import (
	"math"
	"testing"
)

func colorApprox(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestLumaToRgba(t *testing.T) {
	c := NewLuma(0.5, 1)
	rgba := c.ToRgba()
	if !colorApprox(rgba.R, 0.5) || !colorApprox(rgba.G, 0.5) || !colorApprox(rgba.B, 0.5) {
		t.Errorf("luma(50%%) should be mid gray, got %+v", rgba)
	}
	if c.Space() != "luma" {
		t.Errorf("Space() = %q, want luma", c.Space())
	}
}

func TestRgbaHexRoundTrip(t *testing.T) {
	c := NewRgbaFromBytes(0x12, 0x34, 0x56, 0xff)
	if hex := c.ToHex(); hex != "#123456" {
		t.Errorf("ToHex() = %q, want #123456", hex)
	}
	translucent := NewRgbaFromBytes(0x12, 0x34, 0x56, 0x80)
	if hex := translucent.ToHex(); hex != "#12345680" {
		t.Errorf("ToHex() = %q, want #12345680", hex)
	}
	r, g, b, a := c.ToBytes()
	if r != 0x12 || g != 0x34 || b != 0x56 || a != 0xff {
		t.Errorf("ToBytes() = %02x%02x%02x%02x", r, g, b, a)
	}
}

func TestRgbaClamping(t *testing.T) {
	c := NewRgba(1.5, -0.5, 0.5, 2)
	if c.R != 1 || c.G != 0 || c.B != 0.5 || c.A != 1 {
		t.Errorf("components not clamped: %+v", c)
	}
}

func TestHslRoundTrip(t *testing.T) {
	tests := []Rgba{
		{R: 1, G: 0, B: 0, A: 1},
		{R: 0, G: 1, B: 0, A: 1},
		{R: 0, G: 0, B: 1, A: 1},
		{R: 0.5, G: 0.5, B: 0.5, A: 1},
		{R: 0.2, G: 0.4, B: 0.6, A: 0.5},
	}
	for _, c := range tests {
		back := RgbaToHsl(c).ToRgba()
		if !colorApprox(back.R, c.R) || !colorApprox(back.G, c.G) || !colorApprox(back.B, c.B) || !colorApprox(back.A, c.A) {
			t.Errorf("HSL round trip of %+v gave %+v", c, back)
		}
	}
}

func TestHslHueNormalization(t *testing.T) {
	c := NewHsl(-90, 0.5, 0.5, 1)
	if c.H != 270 {
		t.Errorf("hue -90 should normalize to 270, got %v", c.H)
	}
}

func TestCmykConversions(t *testing.T) {
	red := Rgba{R: 1, G: 0, B: 0, A: 1}
	cmyk := RgbaToCmyk(red)
	if !colorApprox(cmyk.C, 0) || !colorApprox(cmyk.M, 1) || !colorApprox(cmyk.Y, 1) || !colorApprox(cmyk.K, 0) {
		t.Errorf("red in CMYK = %+v", cmyk)
	}
	back := cmyk.ToRgba()
	if !colorApprox(back.R, 1) || !colorApprox(back.G, 0) || !colorApprox(back.B, 0) {
		t.Errorf("CMYK red back to RGBA = %+v", back)
	}

	black := RgbaToCmyk(Rgba{A: 1})
	if !colorApprox(black.K, 1) {
		t.Errorf("black should be pure key, got %+v", black)
	}
}

func TestRgbaToLumaWeights(t *testing.T) {
	white := RgbaToLuma(Rgba{R: 1, G: 1, B: 1, A: 1})
	if !colorApprox(white.L, 1) {
		t.Errorf("white luma = %v, want 1", white.L)
	}
	green := RgbaToLuma(Rgba{G: 1, A: 1})
	if !colorApprox(green.L, 0.7152) {
		t.Errorf("green luma = %v, want the sRGB green weight", green.L)
	}
}

func TestConvertColor(t *testing.T) {
	red := Rgba{R: 1, A: 1}
	for _, space := range []string{"rgb", "luma", "hsl", "cmyk"} {
		converted, err := ConvertColor(red, space)
		if err != nil {
			t.Fatalf("ConvertColor(%s): %v", space, err)
		}
		if converted.Space() != space {
			t.Errorf("converted space = %q, want %q", converted.Space(), space)
		}
	}
	if _, err := ConvertColor(red, "oklab"); err == nil {
		t.Error("unsupported space should error")
	}
}
