package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an RGB color with components in [0, 1], stored in the sRGB color space
// the way colors are authored (hex literals, color pickers).
type Color struct {
	R, G, B float32
}

// ColorFromHex builds a Color from a 0xRRGGBB literal.
//
// Parameters:
//   - hex: packed 24-bit color
//
// Returns:
//   - Color: the unpacked sRGB color
func ColorFromHex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
	}
}

// ParseHexColor parses "#rrggbb", "rrggbb", or "0xrrggbb" into a Color.
//
// Parameters:
//   - s: the color string
//
// Returns:
//   - Color: the parsed color
//   - error: error if the string is not a 24-bit hex color
func ParseHexColor(s string) (Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if len(trimmed) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return ColorFromHex(uint32(v)), nil
}

// Hex packs the color back into a 0xRRGGBB value, rounding each channel.
func (c Color) Hex() uint32 {
	r := uint32(Clamp(c.R, 0, 1)*255 + 0.5)
	g := uint32(Clamp(c.G, 0, 1)*255 + 0.5)
	b := uint32(Clamp(c.B, 0, 1)*255 + 0.5)
	return r<<16 | g<<8 | b
}

// String returns the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%06x", c.Hex())
}

// Linear converts the sRGB color to linear space for lighting math.
func (c Color) Linear() Color {
	return Color{srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B)}
}

// Array returns the linear-space components, ready to be written into a uniform.
func (c Color) Array() [3]float32 {
	l := c.Linear()
	return [3]float32{l.R, l.G, l.B}
}

// HSL returns hue in [0, 1), saturation, and lightness of the color.
func (c Color) HSL() (h, s, l float32) {
	maxc := max(c.R, c.G, c.B)
	minc := min(c.R, c.G, c.B)
	l = (maxc + minc) / 2
	if maxc == minc {
		return 0, 0, l
	}
	d := maxc - minc
	if l > 0.5 {
		s = d / (2 - maxc - minc)
	} else {
		s = d / (maxc + minc)
	}
	switch maxc {
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
	return h / 6, s, l
}

// ColorFromHSL builds a Color from hue (wrapped into [0, 1)), saturation, and lightness.
func ColorFromHSL(h, s, l float32) Color {
	h = h - float32(math.Floor(float64(h)))
	if s == 0 {
		return Color{l, l, l}
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return Color{
		R: hueToRGB(p, q, h+1.0/3),
		G: hueToRGB(p, q, h),
		B: hueToRGB(p, q, h-1.0/3),
	}
}

// OffsetHue rotates the hue by delta turns, keeping saturation and lightness.
func (c Color) OffsetHue(delta float32) Color {
	h, s, l := c.HSL()
	return ColorFromHSL(h+delta, s, l)
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*6*(2.0/3-t)
	}
	return p
}

func srgbToLinear(c float32) float32 {
	if c < 0.04045 {
		return c * 0.0773993808
	}
	return float32(math.Pow(float64(c)*0.9478672986+0.0521327014, 2.4))
}
