package compose

import (
	"fmt"

	"github.com/dmitrymomot/lorem/pkg/random"
)

// Count is the number of values to compose: either a fixed number or an
// inclusive range drawn from once per composition.
type Count struct {
	rng    random.Range
	ranged bool
}

// Exactly composes exactly n values.
func Exactly(n int) Count {
	return Count{rng: random.Single(n)}
}

// Between composes a uniformly drawn number of values in [lo, hi].
func Between(lo, hi int) Count {
	return Count{rng: random.Between(lo, hi), ranged: true}
}

// InRange composes a uniformly drawn number of values inside r.
func InRange(r random.Range) Count {
	return Count{rng: r, ranged: true}
}

// Range returns the inclusive bounds of the count.
func (c Count) Range() random.Range {
	return c.rng
}

// Resolve returns the concrete count, drawing from src when the count is a range.
func (c Count) Resolve(src *random.Source) (int, error) {
	if c.rng.Min < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCount, c.rng.Min)
	}
	if !c.ranged {
		return c.rng.Min, nil
	}
	return src.Int(c.rng)
}

func (c Count) String() string {
	if !c.ranged {
		return fmt.Sprint(c.rng.Min)
	}
	return c.rng.String()
}
