package image

import "errors"

var (
	// ErrInvalidSize is returned for a non-positive width or height.
	ErrInvalidSize = errors.New("image: width and height must be positive")

	// ErrInvalidBaseURL is returned when the builder base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("image: invalid base url")
)
