// Package compose joins repeated invocations of a value producer into a single
// placeholder string.
//
// The producer is called once per position, so every position can carry a
// different value. Values are joined with a separator, and the terminator is
// appended once after the last value. A zero count yields the empty string.
//
//	s, _ := compose.Compose(src, func() (string, error) { return "x", nil },
//		compose.Exactly(3), "-", ".")
//	// s == "x-x-x."
package compose

import (
	"strings"

	"github.com/dmitrymomot/lorem/pkg/random"
)

// Producer returns one value for a composed string.
type Producer func() (string, error)

// Compose resolves count, invokes p that many times and joins the results.
// Producer errors abort the composition and are returned unchanged.
func Compose(src *random.Source, p Producer, count Count, separator, terminator string) (string, error) {
	n, err := count.Resolve(src)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		v, err := p()
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(v)
	}
	b.WriteString(terminator)

	return b.String(), nil
}

// Repeat wraps a constant value as a Producer.
func Repeat(v string) Producer {
	return func() (string, error) { return v, nil }
}
