package compose

import "errors"

// ErrNegativeCount is returned when a count, or a range lower bound, is negative.
var ErrNegativeCount = errors.New("compose: count must not be negative")
