package lexicon_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lorem/pkg/lexicon"
	"github.com/dmitrymomot/lorem/pkg/logger"
	"github.com/dmitrymomot/lorem/pkg/random"
)

func TestEmbedded(t *testing.T) {
	store := lexicon.Default()
	for _, c := range lexicon.Categories {
		t.Run(c.String(), func(t *testing.T) {
			l := store.Lexicon(c)
			assert.Positive(t, l.Len(), "embedded %s must not be empty", c)
			for _, v := range l.Values() {
				assert.Equal(t, strings.TrimSpace(v), v)
				assert.NotEmpty(t, v)
			}
		})
	}
	assert.Same(t, lexicon.Default(), store)
}

func TestEmbedded_WordsAreSingleLowercaseTokens(t *testing.T) {
	for _, w := range lexicon.Default().Load(lexicon.Words) {
		assert.Equal(t, strings.ToLower(w), w)
		assert.NotContains(t, w, " ")
		assert.NotContains(t, w, ".")
	}
}

func TestNew_ParsesLines(t *testing.T) {
	fsys := fstest.MapFS{
		"words.txt": {Data: []byte("alpha\r\nbeta\n\n  gamma  \n")},
	}
	store := lexicon.New(fsys, lexicon.WithLogger(logger.Nop()))

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, store.Load(lexicon.Words))
}

func TestNew_MissingFileDegrades(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))

	store := lexicon.New(fstest.MapFS{
		"words.txt": {Data: []byte("alpha\n")},
	}, lexicon.WithLogger(log))

	assert.Equal(t, 0, store.Lexicon(lexicon.Tweets).Len())
	assert.Contains(t, buf.String(), "lexicon unavailable")
	assert.Contains(t, buf.String(), `"category":"tweets"`)

	_, err := store.Lexicon(lexicon.Tweets).Pick(random.New(1))
	require.ErrorIs(t, err, lexicon.ErrEmptyLexicon)
	assert.Contains(t, err.Error(), "tweets")
}

func TestNew_EmptyFileDegrades(t *testing.T) {
	store := lexicon.New(fstest.MapFS{
		"words.txt": {Data: []byte("\n\n")},
	}, lexicon.WithLogger(logger.Nop()))

	assert.Equal(t, 0, store.Lexicon(lexicon.Words).Len())
}

func TestWithOverlay(t *testing.T) {
	overlay := fstest.MapFS{
		"words.txt": {Data: []byte("override\n")},
	}
	store := lexicon.Embedded(lexicon.WithOverlay(overlay), lexicon.WithLogger(logger.Nop()))

	assert.Equal(t, []string{"override"}, store.Load(lexicon.Words))
	assert.Equal(t, lexicon.Default().Lexicon(lexicon.FirstNames).Len(), store.Lexicon(lexicon.FirstNames).Len())
}

func TestLexicon_Immutable(t *testing.T) {
	l := lexicon.Of(lexicon.Words, "a", "b")
	values := l.Values()
	values[0] = "changed"

	assert.Equal(t, []string{"a", "b"}, l.Values())
	assert.Equal(t, lexicon.Words, l.Category())

	v, err := lexicon.Of(lexicon.Words, "only").Pick(random.New(1))
	require.NoError(t, err)
	assert.Equal(t, "only", v)
}

func TestStore_UnknownCategory(t *testing.T) {
	l := lexicon.Default().Lexicon(lexicon.Category("colors"))
	assert.Equal(t, 0, l.Len())
}
