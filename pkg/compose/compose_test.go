package compose_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lorem/pkg/compose"
	"github.com/dmitrymomot/lorem/pkg/random"
)

func TestCompose(t *testing.T) {
	src := random.New(1)

	t.Run("example", func(t *testing.T) {
		s, err := compose.Compose(src, compose.Repeat("x"), compose.Exactly(3), "-", ".")
		require.NoError(t, err)
		assert.Equal(t, "x-x-x.", s)
	})

	t.Run("zero count is empty", func(t *testing.T) {
		for _, sep := range []string{"", " ", ", "} {
			for _, term := range []string{"", ".", "!"} {
				s, err := compose.Compose(src, compose.Repeat("x"), compose.Exactly(0), sep, term)
				require.NoError(t, err)
				assert.Empty(t, s)
			}
		}
	})

	t.Run("segment count and terminator", func(t *testing.T) {
		for n := 1; n <= 20; n++ {
			s, err := compose.Compose(src, compose.Repeat("ab"), compose.Exactly(n), "|", ";")
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(s, ";"))
			assert.Len(t, strings.Split(strings.TrimSuffix(s, ";"), "|"), n)
		}
	})

	t.Run("producer is invoked per position", func(t *testing.T) {
		calls := 0
		p := func() (string, error) {
			calls++
			return string(rune('a' + calls - 1)), nil
		}
		s, err := compose.Compose(src, p, compose.Exactly(4), " ", "")
		require.NoError(t, err)
		assert.Equal(t, 4, calls)
		assert.Equal(t, "a b c d", s)
	})

	t.Run("ranged count stays within range", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			s, err := compose.Compose(src, compose.Repeat("w"), compose.Between(2, 5), " ", "")
			require.NoError(t, err)
			n := len(strings.Fields(s))
			assert.True(t, n >= 2 && n <= 5, "got %d values", n)
		}
	})

	t.Run("invalid range is surfaced", func(t *testing.T) {
		_, err := compose.Compose(src, compose.Repeat("w"), compose.Between(5, 2), " ", "")
		assert.ErrorIs(t, err, random.ErrInvalidRange)
	})

	t.Run("negative count is surfaced", func(t *testing.T) {
		_, err := compose.Compose(src, compose.Repeat("w"), compose.Exactly(-1), " ", "")
		assert.ErrorIs(t, err, compose.ErrNegativeCount)

		_, err = compose.Compose(src, compose.Repeat("w"), compose.Between(-2, 3), " ", "")
		assert.ErrorIs(t, err, compose.ErrNegativeCount)
	})

	t.Run("producer error aborts", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := compose.Compose(src, func() (string, error) { return "", boom }, compose.Exactly(2), " ", "")
		assert.ErrorIs(t, err, boom)
	})
}

func TestCount_String(t *testing.T) {
	assert.Equal(t, "3", compose.Exactly(3).String())
	assert.Equal(t, "2...5", compose.Between(2, 5).String())
	assert.Equal(t, random.Between(1, 4), compose.InRange(random.Between(1, 4)).Range())
}
