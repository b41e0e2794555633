package image_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lorem/pkg/image"
)

func TestURL(t *testing.T) {
	b := image.NewBuilder()
	tests := []struct {
		name      string
		src       image.Source
		w, h      int
		grayscale bool
		want      string
	}{
		{"random", image.Random(), 300, 200, false, "https://picsum.photos/300/200"},
		{"random grayscale", image.Random(), 100, 100, true, "https://picsum.photos/100/100?grayscale"},
		{"seeded", image.Seed("avatar"), 64, 64, false, "https://picsum.photos/seed/avatar/64/64"},
		{"numeric seed", image.Seed(42), 10, 20, true, "https://picsum.photos/seed/42/10/20?grayscale"},
		{"escaped seed", image.Seed("a b/c"), 1, 1, false, "https://picsum.photos/seed/a%20b%2Fc/1/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.URL(tt.src, tt.w, tt.h, tt.grayscale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeededURLIsStable(t *testing.T) {
	b := image.NewBuilder()
	first, err := b.Square(image.Seed("hero"), image.DefaultSize, false)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := b.Square(image.Seed("hero"), image.DefaultSize, false)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, "https://picsum.photos/seed/hero/300/300", first)
}

func TestInvalidSize(t *testing.T) {
	b := image.NewBuilder()
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		_, err := b.URL(image.Random(), size[0], size[1], false)
		assert.ErrorIs(t, err, image.ErrInvalidSize)
	}
}

func TestWithBaseURL(t *testing.T) {
	b := image.NewBuilder(image.WithBaseURL("http://localhost:8080/img/"))
	assert.Equal(t, "http://localhost:8080/img", b.BaseURL())

	got, err := b.URL(image.Random(), 5, 6, false)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/img/5/6", got)

	assert.Equal(t, image.DefaultBaseURL, image.NewBuilder(image.WithBaseURL("  ")).BaseURL())

	_, err = image.NewBuilder(image.WithBaseURL("not a url")).URL(image.Random(), 1, 1, false)
	assert.ErrorIs(t, err, image.ErrInvalidBaseURL)
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "random", image.Random().String())
	assert.Equal(t, "seed(7)", image.Seed(7).String())

	seed, ok := image.Seed("x").Seeded()
	assert.True(t, ok)
	assert.Equal(t, "x", seed)
}
