package lorem

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/lorem/pkg/color"
	"github.com/dmitrymomot/lorem/pkg/compose"
	"github.com/dmitrymomot/lorem/pkg/date"
	"github.com/dmitrymomot/lorem/pkg/image"
	"github.com/dmitrymomot/lorem/pkg/lexicon"
	"github.com/dmitrymomot/lorem/pkg/person"
	"github.com/dmitrymomot/lorem/pkg/random"
	"github.com/dmitrymomot/lorem/pkg/text"
)

// MinYear is the lower bound of Year.
const MinYear = 1900

// Lorem wires the placeholder generators around one random source.
type Lorem struct {
	src     *random.Source
	store   *lexicon.Store
	text    *text.Generator
	person  *person.Generator
	sampler *date.Sampler
	dates   *date.Cache
	images  *image.Builder
	now     func() time.Time
}

type config struct {
	src       *random.Source
	store     *lexicon.Store
	locale    language.Tag
	now       func() time.Time
	imageBase string
	logger    *slog.Logger
	dates     *date.Cache
}

// Option configures a Lorem.
type Option func(*config)

// WithSeed makes every draw reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.src = random.New(seed) }
}

// WithSource sets the random source directly.
func WithSource(src *random.Source) Option {
	return func(c *config) {
		if src != nil {
			c.src = src
		}
	}
}

// WithStore replaces the embedded word lists.
func WithStore(store *lexicon.Store) Option {
	return func(c *config) {
		if store != nil {
			c.store = store
		}
	}
}

// WithLocale sets the language used for title and sentence casing.
func WithLocale(tag language.Tag) Option {
	return func(c *config) { c.locale = tag }
}

// WithClock overrides "now" for dates, ages and years.
// It gives the generator its own formatter cache so relative dates use the same clock.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithImageBaseURL points image URLs at another picsum-compatible endpoint.
func WithImageBaseURL(base string) Option {
	return func(c *config) { c.imageBase = base }
}

// WithLogger sets the logger used by the formatter cache a generator owns.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFormatCache sets the formatter cache used for dates.
func WithFormatCache(cache *date.Cache) Option {
	return func(c *config) {
		if cache != nil {
			c.dates = cache
		}
	}
}

// New creates a generator. Without options it uses the process-wide random
// source, the embedded word lists and the process-wide formatter cache.
func New(opts ...Option) *Lorem {
	cfg := &config{locale: language.Und}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.src == nil {
		cfg.src = random.Default()
	}
	if cfg.store == nil {
		cfg.store = lexicon.Default()
	}
	if cfg.dates == nil {
		if cfg.now != nil || cfg.logger != nil {
			cacheOpts := []date.CacheOption{date.WithClock(cfg.now)}
			if cfg.logger != nil {
				cacheOpts = append(cacheOpts, date.WithLogger(cfg.logger))
			}
			cfg.dates = date.NewCache(cacheOpts...)
		} else {
			cfg.dates = date.Formatters()
		}
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}

	return &Lorem{
		src:     cfg.src,
		store:   cfg.store,
		text:    text.New(cfg.src, cfg.store, text.WithLocale(cfg.locale)),
		person:  person.New(cfg.src, cfg.store, person.WithClock(cfg.now)),
		sampler: date.NewSampler(cfg.src, cfg.now),
		dates:   cfg.dates,
		images:  image.NewBuilder(image.WithBaseURL(cfg.imageBase)),
		now:     cfg.now,
	}
}

// Source returns the random source the generator draws from.
func (l *Lorem) Source() *random.Source { return l.src }

// Word returns one random word.
func (l *Lorem) Word() (string, error) { return l.text.Word() }

// Words returns count space-separated words.
func (l *Lorem) Words(count compose.Count) (string, error) { return l.text.Words(count) }

// Title returns 2 to 5 title-cased words.
func (l *Lorem) Title() (string, error) { return l.text.Title(text.DefaultTitleCount) }

// TitleOf returns count title-cased words.
func (l *Lorem) TitleOf(count compose.Count) (string, error) { return l.text.Title(count) }

// Sentence returns 5 to 10 words, capitalized and ending with ".".
func (l *Lorem) Sentence() (string, error) { return l.text.Sentence() }

// Sentences returns count sentences joined by separator.
func (l *Lorem) Sentences(count compose.Count, separator string) (string, error) {
	return l.text.Sentences(count, separator)
}

// Paragraph returns 2 to 5 sentences.
func (l *Lorem) Paragraph() (string, error) { return l.text.Paragraph() }

// Paragraphs returns count paragraphs joined by separator.
func (l *Lorem) Paragraphs(count compose.Count, separator string) (string, error) {
	return l.text.Paragraphs(count, separator)
}

// Keywords returns 5 to 10 comma-separated words.
func (l *Lorem) Keywords() (string, error) { return l.text.Keywords(text.DefaultKeywordCount) }

// KeywordsOf returns count comma-separated words.
func (l *Lorem) KeywordsOf(count compose.Count) (string, error) { return l.text.Keywords(count) }

// Tweet returns a sample social post.
func (l *Lorem) Tweet() (string, error) { return l.text.Tweet() }

// SymbolName returns an icon name such as "star.fill".
func (l *Lorem) SymbolName() (string, error) { return l.text.SymbolName() }

// FirstName returns a random first name.
func (l *Lorem) FirstName() (string, error) { return l.person.FirstName() }

// LastName returns a random last name.
func (l *Lorem) LastName() (string, error) { return l.person.LastName() }

// Name returns "{first} {last}".
func (l *Lorem) Name() (string, error) { return l.person.Name() }

// Email returns a lower-cased address built from a random name.
func (l *Lorem) Email() (string, error) { return l.person.Email() }

// URL returns "http://{domain}/".
func (l *Lorem) URL() (string, error) { return l.person.URL() }

// Age returns an age inside the group range.
func (l *Lorem) Age(group person.AgeGroup) int { return l.person.Age(group) }

// AgeText returns Age(group) as a decimal string.
func (l *Lorem) AgeText(group person.AgeGroup) string { return strconv.Itoa(l.person.Age(group)) }

// AgeFromYear returns the whole years since January 1 of year, or 0 when
// the year cannot be represented.
func (l *Lorem) AgeFromYear(year int) int { return l.person.AgeFromYear(year) }

// CurrentYear returns the year of the generator clock.
func (l *Lorem) CurrentYear() int { return l.now().Year() }

// Year returns a year between MinYear and the current year.
func (l *Lorem) Year() int {
	y, err := l.YearIn(random.Between(MinYear, l.CurrentYear()))
	if err != nil {
		return l.CurrentYear()
	}
	return y
}

// YearIn returns a year inside r.
func (l *Lorem) YearIn(r random.Range) (int, error) { return l.src.Int(r) }

// Number returns an integer inside r.
func (l *Lorem) Number(r random.Range) (int, error) { return l.src.Int(r) }

// UUID returns a version 4 UUID drawn from the generator source, so seeded
// generators produce reproducible identifiers.
func (l *Lorem) UUID() (uuid.UUID, error) { return uuid.NewRandomFromReader(l.src) }

// Date returns an instant from the last 20 years.
func (l *Lorem) Date() time.Time { return l.sampler.Sample(date.DefaultWindow) }

// DateWithin returns an instant inside w, or now when w is invalid.
func (l *Lorem) DateWithin(w date.Window) time.Time { return l.sampler.Sample(w) }

// DateString renders Date with f.
func (l *Lorem) DateString(f date.Format) string { return l.dates.Render(l.Date(), f) }

// DateStringWithin renders DateWithin(w) with f.
func (l *Lorem) DateStringWithin(w date.Window, f date.Format) string {
	return l.dates.Render(l.DateWithin(w), f)
}

// FormatDate renders t with f through the generator's formatter cache.
func (l *Lorem) FormatDate(t time.Time, f date.Format) string { return l.dates.Render(t, f) }

// Color draws a color from p.
func (l *Lorem) Color(p color.Palette) color.Color { return p.Color(l.src) }

// ImageURL returns a placeholder image URL of the given size.
func (l *Lorem) ImageURL(src image.Source, width, height int, grayscale bool) (string, error) {
	return l.images.URL(src, width, height, grayscale)
}

// SquareImageURL returns a size x size placeholder image URL.
func (l *Lorem) SquareImageURL(src image.Source, size int, grayscale bool) (string, error) {
	return l.images.Square(src, size, grayscale)
}
