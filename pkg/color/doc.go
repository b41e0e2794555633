// Package color draws placeholder colors from palettes.
//
//	c := color.Hue().Color(random.Default())
//	fmt.Println(c.Hex()) // "#E57A5C"
//
// Palettes are stateless; every call to Color draws a fresh value from the
// given source. Channel values are kept as float64 in nominal [0, 1] and are
// only clamped when rendered with Hex or RGB8, so the slightly out-of-range
// tints of the warm and cool grayscale palettes survive untouched.
package color
