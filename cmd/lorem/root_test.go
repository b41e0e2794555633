package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lorem/pkg/compose"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestWordsCount(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "words", "--count", "4", "--seed", "7")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 4)
}

func TestSeedIsReproducible(t *testing.T) {
	t.Parallel()

	for _, sub := range []string{"sentence", "name", "email", "title", "paragraph"} {
		t.Run(sub, func(t *testing.T) {
			t.Parallel()
			first, err := execute(t, sub, "--seed", "42")
			require.NoError(t, err)
			second, err := execute(t, sub, "--seed", "42")
			require.NoError(t, err)
			assert.NotEmpty(t, first)
			assert.Equal(t, first, second)
		})
	}
}

func TestParagraphSeparator(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "paragraph", "-n", "2", "--separator", "|", "--seed", "1")
	require.NoError(t, err)
	assert.Len(t, strings.Split(out, "|"), 2)
}

func TestImage(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "image", "--size", "200", "--image-seed", "cover")
	require.NoError(t, err)
	assert.Equal(t, "https://picsum.photos/seed/cover/200/200", out)

	out, err = execute(t, "image", "--width", "640", "--height", "480", "--grayscale")
	require.NoError(t, err)
	assert.Equal(t, "https://picsum.photos/640/480?grayscale", out)

	_, err = execute(t, "image", "--size", "0")
	assert.Error(t, err)
}

func TestUUID(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "uuid", "-n", "3")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		id, err := uuid.Parse(line)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), id.Version())
	}
}

func TestDate(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "date", "--format", "pattern", "--pattern", "yyyy", "--unit", "day", "--magnitude", "1")
	require.NoError(t, err)
	assert.Len(t, out, 4)

	out, err = execute(t, "date", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "T")
	assert.True(t, strings.HasSuffix(out, "Z"))
}

func TestDateRejectsBadFlags(t *testing.T) {
	t.Parallel()

	cases := [][]string{
		{"date", "--format", "julian"},
		{"date", "--format", "pattern"},
		{"date", "--format", "relative", "--style", "loud"},
		{"date", "--format", "styled", "--date-style", "tiny"},
		{"date", "--unit", "fortnight"},
	}
	for _, args := range cases {
		_, err := execute(t, args...)
		assert.Error(t, err, args)
	}
}

func TestColor(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "color", "--palette", "system", "-n", "2", "--seed", "5")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, "#")
	}

	_, err = execute(t, "color", "--palette", "neon")
	assert.Error(t, err)
}

func TestAge(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "age", "--group", "child", "--seed", "9")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = execute(t, "age", "--group", "toddler")
	assert.Error(t, err)
}

func TestNegativeCountIsRejected(t *testing.T) {
	t.Parallel()

	for _, sub := range []string{"color", "uuid", "words"} {
		t.Run(sub, func(t *testing.T) {
			t.Parallel()
			_, err := execute(t, sub, "-n", "-1")
			assert.ErrorIs(t, err, compose.ErrNegativeCount)
		})
	}

	out, err := execute(t, "uuid", "-n", "0")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestInvalidLocale(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "word", "--locale", "!!")
	assert.Error(t, err)
}
