// Package random provides the uniform random selection primitives shared by
// every placeholder generator.
//
// A Source wraps a math/rand/v2 generator behind a mutex so a single instance
// can be used from many goroutines. Sources created with New are
// deterministic for a given seed, which makes generated placeholders
// reproducible in tests. NewRandom and Default are seeded from crypto/rand.
//
// # Usage
//
//	src := random.New(42)
//
//	word, err := random.Pick(src, []string{"alpha", "beta", "gamma"})
//	if err != nil {
//		// the slice was empty
//	}
//
//	n, err := src.Int(random.Between(5, 10))
//	if errors.Is(err, random.ErrInvalidRange) {
//		// min was greater than max
//	}
//
// # Error Handling
//
//   - ErrEmptyInput: Pick was called with an empty slice.
//   - ErrInvalidRange: a Range has Min > Max.
package random
