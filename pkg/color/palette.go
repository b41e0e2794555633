package color

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/lorem/pkg/random"
)

// Palette draws colors.
type Palette interface {
	Color(src *random.Source) Color
}

// PaletteFunc adapts a function to Palette.
type PaletteFunc func(src *random.Source) Color

func (f PaletteFunc) Color(src *random.Source) Color { return f(src) }

// Any draws each RGB channel uniformly from 256 levels.
func Any() Palette {
	return PaletteFunc(func(src *random.Source) Color {
		return Color{
			R: float64(src.IntN(256)) / 255,
			G: float64(src.IntN(256)) / 255,
			B: float64(src.IntN(256)) / 255,
		}
	})
}

// Temperature tints a grayscale palette.
type Temperature string

const (
	Neutral Temperature = "neutral"
	Warm    Temperature = "warm"
	Cool    Temperature = "cool"
)

// Grayscale draws grays. Neutral grays have white in [0.02, 0.98]; warm and
// cool grays shift the channels of a base level in [5/255, 250/255].
func Grayscale(temp Temperature) Palette {
	return PaletteFunc(func(src *random.Source) Color {
		switch temp {
		case Warm:
			d := float64(src.IntN(246)+5) / 255
			return Color{R: d + 0.016, G: d + 0.016, B: d}
		case Cool:
			d := float64(src.IntN(246)+5) / 255
			return Color{R: d - 0.005, G: d + 0.016, B: d + 0.032}
		default:
			return Gray(float64(src.IntN(97)+2) / 100)
		}
	})
}

// SystemColors is the named palette drawn by System.
var SystemColors = []Color{
	{R: 1, G: 59.0 / 255, B: 48.0 / 255, Name: "red"},
	{R: 1, G: 149.0 / 255, B: 0, Name: "orange"},
	{R: 1, G: 204.0 / 255, B: 0, Name: "yellow"},
	{R: 52.0 / 255, G: 199.0 / 255, B: 89.0 / 255, Name: "green"},
	{R: 0, G: 199.0 / 255, B: 190.0 / 255, Name: "mint"},
	{R: 48.0 / 255, G: 176.0 / 255, B: 199.0 / 255, Name: "teal"},
	{R: 50.0 / 255, G: 173.0 / 255, B: 230.0 / 255, Name: "cyan"},
	{R: 0, G: 122.0 / 255, B: 1, Name: "blue"},
	{R: 88.0 / 255, G: 86.0 / 255, B: 214.0 / 255, Name: "indigo"},
	{R: 175.0 / 255, G: 82.0 / 255, B: 222.0 / 255, Name: "purple"},
	{R: 1, G: 45.0 / 255, B: 85.0 / 255, Name: "pink"},
	{R: 162.0 / 255, G: 132.0 / 255, B: 94.0 / 255, Name: "brown"},
}

// System draws one of SystemColors.
func System() Palette {
	return PaletteFunc(func(src *random.Source) Color {
		return SystemColors[src.IntN(len(SystemColors))]
	})
}

const (
	DefaultSaturation = 0.6
	DefaultBrightness = 0.9
)

type hueConfig struct {
	saturation float64
	brightness float64
}

// HueOption configures the Hue palette.
type HueOption func(*hueConfig)

// WithSaturation sets the saturation in [0, 1].
func WithSaturation(s float64) HueOption {
	return func(c *hueConfig) { c.saturation = s }
}

// WithBrightness sets the brightness in [0, 1].
func WithBrightness(b float64) HueOption {
	return func(c *hueConfig) { c.brightness = b }
}

// Hue draws a hue from 361 whole degrees at fixed saturation and brightness.
func Hue(opts ...HueOption) Palette {
	cfg := hueConfig{saturation: DefaultSaturation, brightness: DefaultBrightness}
	for _, opt := range opts {
		opt(&cfg)
	}
	return PaletteFunc(func(src *random.Source) Color {
		return FromHSB(float64(src.IntN(361))/360, cfg.saturation, cfg.brightness)
	})
}

// PaletteNames lists the names accepted by ParsePalette.
var PaletteNames = []string{"any", "grayscale", "warm", "cool", "system", "hue"}

// ParsePalette maps a palette name to a Palette with default options.
func ParsePalette(name string) (Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "any", "rgb":
		return Any(), nil
	case "grayscale", "gray", "neutral":
		return Grayscale(Neutral), nil
	case "warm":
		return Grayscale(Warm), nil
	case "cool":
		return Grayscale(Cool), nil
	case "system":
		return System(), nil
	case "hue":
		return Hue(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
}
