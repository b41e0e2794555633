package random

import "fmt"

// Range is an inclusive integer range.
type Range struct {
	Min int
	Max int
}

// Between returns the inclusive range [lo, hi].
func Between(lo, hi int) Range {
	return Range{Min: lo, Max: hi}
}

// Single returns a range containing only n.
func Single(n int) Range {
	return Range{Min: n, Max: n}
}

// Validate reports ErrInvalidRange when Min > Max.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Contains reports whether n lies inside the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d...%d", r.Min, r.Max)
}
