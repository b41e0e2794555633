package person

import (
	"strings"
	"time"

	"github.com/dmitrymomot/lorem/pkg/lexicon"
	"github.com/dmitrymomot/lorem/pkg/random"
)

var emailDelimiters = []string{"", ".", "-", "_"}

// Generator produces person and contact placeholders.
type Generator struct {
	src          *random.Source
	firstNames   lexicon.Lexicon
	lastNames    lexicon.Lexicon
	siteDomains  lexicon.Lexicon
	emailDomains lexicon.Lexicon
	now          func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the clock used by AgeFromYear.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New returns a Generator drawing from src and the lexicons in store.
func New(src *random.Source, store *lexicon.Store, opts ...Option) *Generator {
	g := &Generator{
		src:          src,
		firstNames:   store.Lexicon(lexicon.FirstNames),
		lastNames:    store.Lexicon(lexicon.LastNames),
		siteDomains:  store.Lexicon(lexicon.SiteDomains),
		emailDomains: store.Lexicon(lexicon.EmailDomains),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FirstName returns a random given name.
func (g *Generator) FirstName() (string, error) {
	return g.firstNames.Pick(g.src)
}

// LastName returns a random family name.
func (g *Generator) LastName() (string, error) {
	return g.lastNames.Pick(g.src)
}

// Name returns "first last".
func (g *Generator) Name() (string, error) {
	first, err := g.FirstName()
	if err != nil {
		return "", err
	}
	last, err := g.LastName()
	if err != nil {
		return "", err
	}
	return first + " " + last, nil
}

// Email returns a lower-cased "first{delimiter}last@domain" address where the
// delimiter is one of "", ".", "-" or "_".
func (g *Generator) Email() (string, error) {
	first, err := g.FirstName()
	if err != nil {
		return "", err
	}
	last, err := g.LastName()
	if err != nil {
		return "", err
	}
	delim, err := random.Pick(g.src, emailDelimiters)
	if err != nil {
		return "", err
	}
	domain, err := g.emailDomains.Pick(g.src)
	if err != nil {
		return "", err
	}
	return strings.ToLower(first + delim + last + "@" + domain), nil
}

// URL returns "http://{domain}/".
func (g *Generator) URL() (string, error) {
	domain, err := g.siteDomains.Pick(g.src)
	if err != nil {
		return "", err
	}
	return "http://" + domain + "/", nil
}

// Age returns a uniform age inside the group's range.
func (g *Generator) Age(group AgeGroup) int {
	// group ranges are constants with Min <= Max
	n, _ := g.src.Int(group.Range())
	return n
}

// AdultAge returns an age in the Adult range.
func (g *Generator) AdultAge() int {
	return g.Age(Adult)
}

// AgeFromYear returns the whole years elapsed since January 1 of year.
// Years outside [1, 9999] cannot be turned into a date and yield 0.
func (g *Generator) AgeFromYear(year int) int {
	if year < 1 || year > 9999 {
		return 0
	}
	now := g.now()
	birth := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
	return wholeYears(birth, now)
}

func wholeYears(from, to time.Time) int {
	if to.Before(from) {
		return -wholeYears(to, from)
	}
	years := to.Year() - from.Year()
	if to.Before(from.AddDate(years, 0, 0)) {
		years--
	}
	return years
}
