package color

import (
	"fmt"
	"math"
)

// Color is an RGB color with channels in nominal [0, 1].
// Name is set for named palette entries.
type Color struct {
	R, G, B float64
	Name    string
}

// Gray returns the color with all channels set to white.
func Gray(white float64) Color {
	return Color{R: white, G: white, B: white}
}

// FromHSB converts hue, saturation and brightness in [0, 1] to RGB.
func FromHSB(h, s, v float64) Color {
	h = h - math.Floor(h)
	if s <= 0 {
		return Gray(v)
	}

	h6 := h * 6
	i := math.Floor(h6)
	f := h6 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(i) % 6 {
	case 0:
		return Color{R: v, G: t, B: p}
	case 1:
		return Color{R: q, G: v, B: p}
	case 2:
		return Color{R: p, G: v, B: t}
	case 3:
		return Color{R: p, G: q, B: v}
	case 4:
		return Color{R: t, G: p, B: v}
	default:
		return Color{R: v, G: p, B: q}
	}
}

// FromHex parses "#RRGGBB" or "RRGGBB".
func FromHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var r, g, b uint8
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, nil
}

// RGB8 returns the channels clamped and scaled to bytes.
func (c Color) RGB8() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

// Hex renders the color as "#RRGGBB".
func (c Color) Hex() string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func (c Color) String() string {
	if c.Name != "" {
		return c.Name + " " + c.Hex()
	}
	return c.Hex()
}

func toByte(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(math.Round(v * 255))
	}
}
