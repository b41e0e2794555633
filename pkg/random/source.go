package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"
)

// Source is a goroutine-safe source of uniform random values.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a deterministic Source for the given seed.
// Two sources created with the same seed produce the same sequence of draws.
func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandom returns a Source seeded from crypto/rand.
// A time-based seed is used only when the crypto source fails.
func NewRandom() *Source {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		binary.LittleEndian.PutUint64(seed[:8], uint64(time.Now().UnixNano()))
	}
	return &Source{rng: rand.New(rand.NewChaCha8(seed))}
}

var defaultSource = sync.OnceValue(NewRandom)

// Default returns the process-wide Source.
func Default() *Source {
	return defaultSource()
}

// IntN returns a uniform value in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Int returns a uniform value inside the inclusive range r.
func (s *Source) Int(r Range) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	span := uint64(r.Max) - uint64(r.Min) + 1

	s.mu.Lock()
	defer s.mu.Unlock()

	// span wraps to zero only for the full int64 domain
	if span == 0 {
		return int(s.rng.Uint64()), nil
	}
	return r.Min + int(s.rng.Uint64N(span)), nil
}

// Float64 returns a uniform value in [0.0, 1.0).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Read fills p with random bytes. It never returns an error.
// This lets a Source feed readers such as uuid.NewRandomFromReader.
func (s *Source) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf [8]byte
	for i := 0; i < len(p); i += len(buf) {
		binary.LittleEndian.PutUint64(buf[:], s.rng.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](s *Source, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	return items[s.IntN(len(items))], nil
}
