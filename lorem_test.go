package lorem_test

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lorem"
	"github.com/dmitrymomot/lorem/pkg/color"
	"github.com/dmitrymomot/lorem/pkg/compose"
	"github.com/dmitrymomot/lorem/pkg/date"
	"github.com/dmitrymomot/lorem/pkg/image"
	"github.com/dmitrymomot/lorem/pkg/lexicon"
	"github.com/dmitrymomot/lorem/pkg/logger"
	"github.com/dmitrymomot/lorem/pkg/person"
	"github.com/dmitrymomot/lorem/pkg/random"
)

var fixedNow = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

func newLorem(opts ...lorem.Option) *lorem.Lorem {
	base := []lorem.Option{
		lorem.WithSeed(7),
		lorem.WithClock(func() time.Time { return fixedNow }),
	}
	return lorem.New(append(base, opts...)...)
}

func TestSeededGeneratorsAreReproducible(t *testing.T) {
	a, b := newLorem(), newLorem()

	for i := 0; i < 20; i++ {
		pa, err := a.Paragraph()
		require.NoError(t, err)
		pb, err := b.Paragraph()
		require.NoError(t, err)
		assert.Equal(t, pa, pb)
	}

	ua, err := a.UUID()
	require.NoError(t, err)
	ub, err := b.UUID()
	require.NoError(t, err)
	assert.Equal(t, ua, ub)
	assert.Equal(t, uuid.Version(4), ua.Version())
	assert.Equal(t, a.Date(), b.Date())
}

func TestText(t *testing.T) {
	l := newLorem()

	words, err := l.Words(compose.Between(3, 6))
	require.NoError(t, err)
	n := len(strings.Fields(words))
	assert.GreaterOrEqual(t, n, 3)
	assert.LessOrEqual(t, n, 6)

	title, err := l.Title()
	require.NoError(t, err)
	for _, w := range strings.Fields(title) {
		r, _ := utf8.DecodeRuneInString(w)
		assert.True(t, unicode.IsUpper(r), title)
	}

	title, err = l.TitleOf(compose.Exactly(4))
	require.NoError(t, err)
	assert.Len(t, strings.Fields(title), 4)

	sentence, err := l.Sentence()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(sentence, "."))
	assert.False(t, strings.HasSuffix(sentence, ".."))

	keywords, err := l.KeywordsOf(compose.Exactly(3))
	require.NoError(t, err)
	assert.Len(t, strings.Split(keywords, ", "), 3)

	paragraphs, err := l.Paragraphs(compose.Exactly(2), "\n\n")
	require.NoError(t, err)
	assert.Len(t, strings.Split(paragraphs, "\n\n"), 2)

	empty, err := l.Sentences(compose.Exactly(0), " ")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = l.Words(compose.Between(5, 2))
	assert.ErrorIs(t, err, random.ErrInvalidRange)
}

func TestPerson(t *testing.T) {
	l := newLorem()

	name, err := l.Name()
	require.NoError(t, err)
	assert.Len(t, strings.Split(name, " "), 2)

	email, err := l.Email()
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(email), email)
	assert.Contains(t, email, "@")

	u, err := l.URL()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "http://"))
	assert.True(t, strings.HasSuffix(u, "/"))

	for i := 0; i < 50; i++ {
		age := l.Age(person.Teen)
		assert.GreaterOrEqual(t, age, 13)
		assert.LessOrEqual(t, age, 17)
	}
	assert.Regexp(t, `^\d+$`, l.AgeText(person.Elderly))
	assert.Equal(t, 26, l.AgeFromYear(2000))
	assert.Zero(t, l.AgeFromYear(0))
}

func TestNumbers(t *testing.T) {
	l := newLorem()
	for i := 0; i < 100; i++ {
		y := l.Year()
		assert.GreaterOrEqual(t, y, lorem.MinYear)
		assert.LessOrEqual(t, y, 2026)
	}

	n, err := l.Number(random.Single(5))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = l.YearIn(random.Between(2000, 1990))
	assert.ErrorIs(t, err, random.ErrInvalidRange)
}

func TestCurrentYearDoesNotDraw(t *testing.T) {
	a, b := newLorem(), newLorem()
	assert.Equal(t, 2026, a.CurrentYear())
	assert.Equal(t, 2026, a.CurrentYear())
	assert.Equal(t, b.Year(), a.Year())
}

func TestDates(t *testing.T) {
	l := newLorem()

	lower := fixedNow.AddDate(-20, 0, 0)
	for i := 0; i < 100; i++ {
		d := l.Date()
		assert.False(t, d.Before(lower))
		assert.False(t, d.After(fixedNow))
	}

	w := date.Window{Magnitude: 2, Unit: date.Hour}
	d := l.DateWithin(w)
	assert.False(t, d.Before(fixedNow.Add(-2*time.Hour)))

	assert.Equal(t, fixedNow, l.DateWithin(date.Window{Magnitude: -1, Unit: date.Day}))

	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, l.DateString(date.Pattern("yyyy-MM-dd")))
	assert.Equal(t, "now", l.DateStringWithin(date.Window{Magnitude: 0, Unit: date.Day}, date.Relative(date.RelativeComplete)))
	assert.Equal(t, "2026-10-14T09:30:00Z", l.FormatDate(fixedNow, date.ISO8601()))
	assert.Empty(t, l.DateString(date.Pattern("QQQ")))
}

func TestColorAndImage(t *testing.T) {
	l := newLorem(lorem.WithImageBaseURL("https://img.example.com"))

	c := l.Color(color.System())
	assert.NotEmpty(t, c.Name)

	u, err := l.ImageURL(image.Seed(7), 100, 100, false)
	require.NoError(t, err)
	again, err := l.ImageURL(image.Seed(7), 100, 100, false)
	require.NoError(t, err)
	assert.Equal(t, u, again)
	assert.Equal(t, "https://img.example.com/seed/7/100/100", u)

	sq, err := l.SquareImageURL(image.Random(), 64, true)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/64/64?grayscale", sq)

	_, err = l.ImageURL(image.Random(), 0, 10, false)
	assert.ErrorIs(t, err, image.ErrInvalidSize)
}

func TestEmptyStoreSurfacesErrors(t *testing.T) {
	store := lexicon.New(fstest.MapFS{}, lexicon.WithLogger(logger.Nop()))
	l := newLorem(lorem.WithStore(store))

	_, err := l.Word()
	assert.ErrorIs(t, err, lexicon.ErrEmptyLexicon)
	_, err = l.Name()
	assert.ErrorIs(t, err, lexicon.ErrEmptyLexicon)
	_, err = l.Tweet()
	assert.ErrorIs(t, err, lexicon.ErrEmptyLexicon)
}

func TestPackageHelpers(t *testing.T) {
	assert.NotEmpty(t, lorem.Word())
	assert.NotEmpty(t, lorem.Title())
	assert.NotEmpty(t, lorem.Sentence())
	assert.NotEmpty(t, lorem.Paragraph())
	assert.NotEmpty(t, lorem.Keywords())
	assert.NotEmpty(t, lorem.Tweet())
	assert.NotEmpty(t, lorem.Name())
	assert.NotEmpty(t, lorem.FirstName())
	assert.NotEmpty(t, lorem.LastName())
	assert.Contains(t, lorem.Email(), "@")
	assert.Contains(t, lorem.URL(), "http://")
	assert.GreaterOrEqual(t, lorem.Age(), 18)
	assert.GreaterOrEqual(t, lorem.Year(), lorem.MinYear)
	assert.False(t, lorem.Date().After(time.Now()))
	assert.NotEmpty(t, lorem.DateString(date.ISO8601()))
	assert.Regexp(t, `^#[0-9A-F]{6}$`, lorem.Color().Hex())
	assert.Contains(t, lorem.ImageURL(), "/300/300")
	assert.Same(t, lorem.Default(), lorem.Default())
}
