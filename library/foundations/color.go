// Color spaces and conversions for Typst.
// Translated from visualize/color.rs

package foundations

import (
	"fmt"
	"math"
)

// Color represents a color value in any supported color space.
type Color interface {
	Value
	// colorMarker is an unexported method to seal the interface.
	colorMarker()
	// Space returns the name of the color space.
	Space() string
	// Alpha returns the alpha (opacity) component.
	Alpha() float64
	// ToRgba converts this color to RGBA.
	ToRgba() Rgba
}

// Ensure all color types implement Color.
var (
	_ Color = Luma{}
	_ Color = Rgba{}
	_ Color = Hsl{}
	_ Color = Cmyk{}
)

// ----------------------------------------------------------------------------
// Luma (Grayscale)
// ----------------------------------------------------------------------------

// Luma represents a grayscale color with lightness and alpha in [0, 1].
type Luma struct {
	L float64
	A float64
}

func (Luma) colorMarker()       {}
func (Luma) Type() Type         { return TypeColor }
func (c Luma) Display() Content { return Content{} }
func (c Luma) Clone() Value     { return c }
func (Luma) isValue()           {}
func (Luma) Space() string      { return "luma" }
func (c Luma) Alpha() float64   { return c.A }

func (c Luma) String() string {
	if c.A == 1.0 {
		return fmt.Sprintf("luma(%d%%)", int(c.L*100))
	}
	return fmt.Sprintf("luma(%d%%, %d%%)", int(c.L*100), int(c.A*100))
}

// ToRgba converts Luma to RGBA: sRGB gray of the same lightness.
func (c Luma) ToRgba() Rgba {
	return Rgba{R: c.L, G: c.L, B: c.L, A: c.A}
}

// NewLuma creates a new Luma color.
func NewLuma(lightness, alpha float64) Luma {
	return Luma{L: clamp01(lightness), A: clamp01(alpha)}
}

// ----------------------------------------------------------------------------
// Rgba (sRGB)
// ----------------------------------------------------------------------------

// Rgba represents a color in the sRGB color space, components in [0, 1].
type Rgba struct {
	R, G, B float64
	A       float64
}

func (Rgba) colorMarker()       {}
func (Rgba) Type() Type         { return TypeColor }
func (c Rgba) Display() Content { return Content{} }
func (c Rgba) Clone() Value     { return c }
func (Rgba) isValue()           {}
func (Rgba) Space() string      { return "rgb" }
func (c Rgba) Alpha() float64   { return c.A }

func (c Rgba) String() string {
	if c.A == 1.0 {
		return fmt.Sprintf("rgb(%d%%, %d%%, %d%%)", int(c.R*100), int(c.G*100), int(c.B*100))
	}
	return fmt.Sprintf("rgb(%d%%, %d%%, %d%%, %d%%)", int(c.R*100), int(c.G*100), int(c.B*100), int(c.A*100))
}

// ToRgba returns itself (identity conversion).
func (c Rgba) ToRgba() Rgba { return c }

// NewRgba creates a new Rgba color.
func NewRgba(r, g, b, a float64) Rgba {
	return Rgba{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// NewRgbaFromBytes creates an Rgba from 0-255 byte values.
func NewRgbaFromBytes(r, g, b, a uint8) Rgba {
	return Rgba{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: float64(a) / 255.0,
	}
}

// ToBytes returns the components as 0-255 bytes.
func (c Rgba) ToBytes() (r, g, b, a uint8) {
	round := func(x float64) uint8 { return uint8(math.Round(clamp01(x) * 255)) }
	return round(c.R), round(c.G), round(c.B), round(c.A)
}

// ToHex formats the color as #rrggbb, or #rrggbbaa when translucent.
func (c Rgba) ToHex() string {
	r, g, b, a := c.ToBytes()
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// ----------------------------------------------------------------------------
// Hsl (Hue / Saturation / Lightness)
// ----------------------------------------------------------------------------

// Hsl represents a color as hue [0, 360), saturation and lightness
// [0, 1], and alpha [0, 1].
type Hsl struct {
	H       float64
	S, L, A float64
}

func (Hsl) colorMarker()       {}
func (Hsl) Type() Type         { return TypeColor }
func (c Hsl) Display() Content { return Content{} }
func (c Hsl) Clone() Value     { return c }
func (Hsl) isValue()           {}
func (Hsl) Space() string      { return "hsl" }
func (c Hsl) Alpha() float64   { return c.A }

func (c Hsl) String() string {
	return fmt.Sprintf("hsl(%ddeg, %d%%, %d%%)", int(c.H), int(c.S*100), int(c.L*100))
}

// ToRgba converts HSL to RGBA.
func (c Hsl) ToRgba() Rgba {
	if c.S == 0 {
		return Rgba{R: c.L, G: c.L, B: c.L, A: c.A}
	}
	var q float64
	if c.L < 0.5 {
		q = c.L * (1 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2*c.L - q
	h := c.H / 360
	return Rgba{
		R: hueToRgb(p, q, h+1.0/3),
		G: hueToRgb(p, q, h),
		B: hueToRgb(p, q, h-1.0/3),
		A: c.A,
	}
}

// NewHsl creates a new Hsl color, normalizing the hue into [0, 360).
func NewHsl(h, s, l, a float64) Hsl {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return Hsl{H: h, S: clamp01(s), L: clamp01(l), A: clamp01(a)}
}

// RgbaToHsl converts RGBA to HSL.
func RgbaToHsl(c Rgba) Hsl {
	maxC := math.Max(c.R, math.Max(c.G, c.B))
	minC := math.Min(c.R, math.Min(c.G, c.B))
	l := (maxC + minC) / 2

	if maxC == minC {
		return Hsl{H: 0, S: 0, L: l, A: c.A}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case c.R:
		h = (c.G - c.B) / d
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	return Hsl{H: h * 60, S: s, L: l, A: c.A}
}

// ----------------------------------------------------------------------------
// Cmyk
// ----------------------------------------------------------------------------

// Cmyk represents a color as cyan/magenta/yellow/key components in
// [0, 1]. CMYK carries no alpha.
type Cmyk struct {
	C, M, Y, K float64
}

func (Cmyk) colorMarker()       {}
func (Cmyk) Type() Type         { return TypeColor }
func (c Cmyk) Display() Content { return Content{} }
func (c Cmyk) Clone() Value     { return c }
func (Cmyk) isValue()           {}
func (Cmyk) Space() string      { return "cmyk" }
func (Cmyk) Alpha() float64     { return 1.0 }

func (c Cmyk) String() string {
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", int(c.C*100), int(c.M*100), int(c.Y*100), int(c.K*100))
}

// ToRgba converts CMYK to RGBA.
func (c Cmyk) ToRgba() Rgba {
	return Rgba{
		R: (1 - c.C) * (1 - c.K),
		G: (1 - c.M) * (1 - c.K),
		B: (1 - c.Y) * (1 - c.K),
		A: 1,
	}
}

// NewCmyk creates a new Cmyk color.
func NewCmyk(c, m, y, k float64) Cmyk {
	return Cmyk{C: clamp01(c), M: clamp01(m), Y: clamp01(y), K: clamp01(k)}
}

// RgbaToCmyk converts RGBA to CMYK, dropping alpha.
func RgbaToCmyk(c Rgba) Cmyk {
	k := 1 - math.Max(c.R, math.Max(c.G, c.B))
	if k >= 1 {
		return Cmyk{K: 1}
	}
	return Cmyk{
		C: (1 - c.R - k) / (1 - k),
		M: (1 - c.G - k) / (1 - k),
		Y: (1 - c.B - k) / (1 - k),
		K: k,
	}
}

// RgbaToLuma converts RGBA to grayscale using the sRGB luminance
// weights.
func RgbaToLuma(c Rgba) Luma {
	return Luma{L: 0.2126*c.R + 0.7152*c.G + 0.0722*c.B, A: c.A}
}

// ConvertColor converts a color to the specified color space.
func ConvertColor(c Color, space string) (Color, error) {
	rgba := c.ToRgba()
	switch space {
	case "rgb":
		return rgba, nil
	case "luma":
		return RgbaToLuma(rgba), nil
	case "hsl":
		return RgbaToHsl(rgba), nil
	case "cmyk":
		return RgbaToCmyk(rgba), nil
	default:
		return nil, fmt.Errorf("unknown color space: %s", space)
	}
}

// clamp01 bounds a component into [0, 1].
func clamp01(x float64) float64 {
	return math.Min(1, math.Max(0, x))
}

// hueToRgb is the shared helper of the HSL conversion.
func hueToRgb(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
