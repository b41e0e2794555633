package random

import "errors"

var (
	// ErrEmptyInput is returned when selecting from an empty sequence.
	ErrEmptyInput = errors.New("random: cannot pick from an empty sequence")

	// ErrInvalidRange is returned when a range lower bound exceeds its upper bound.
	ErrInvalidRange = errors.New("random: invalid range, min is greater than max")
)
