package color

import "errors"

var (
	// ErrInvalidHex is returned for malformed hex color strings.
	ErrInvalidHex = errors.New("color: invalid hex color")

	// ErrUnknownPalette is returned by ParsePalette for unknown names.
	ErrUnknownPalette = errors.New("color: unknown palette")
)
