package text

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/lorem/pkg/compose"
	"github.com/dmitrymomot/lorem/pkg/lexicon"
	"github.com/dmitrymomot/lorem/pkg/random"
)

// Default counts and separators.
var (
	DefaultTitleCount         = compose.Between(2, 5)
	DefaultSentenceWords      = compose.Between(5, 10)
	DefaultParagraphLength    = compose.Between(2, 5)
	DefaultKeywordCount       = compose.Between(5, 10)
	DefaultSentenceSeparator  = " "
	DefaultParagraphSeparator = "\n"
)

const (
	wordSeparator    = " "
	keywordSeparator = ", "
	sentenceEnd      = "."
)

// Generator produces placeholder text.
type Generator struct {
	src     *random.Source
	words   lexicon.Lexicon
	tweets  lexicon.Lexicon
	symbols lexicon.Lexicon
	locale  language.Tag
}

// Option configures a Generator.
type Option func(*Generator)

// WithLocale sets the language used for capitalization.
func WithLocale(tag language.Tag) Option {
	return func(g *Generator) { g.locale = tag }
}

// New returns a Generator drawing from src and the lexicons in store.
func New(src *random.Source, store *lexicon.Store, opts ...Option) *Generator {
	g := &Generator{
		src:     src,
		words:   store.Lexicon(lexicon.Words),
		tweets:  store.Lexicon(lexicon.Tweets),
		symbols: store.Lexicon(lexicon.SymbolNames),
		locale:  language.Und,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Word returns one random word.
func (g *Generator) Word() (string, error) {
	return g.words.Pick(g.src)
}

// Words returns count space-separated words.
func (g *Generator) Words(count compose.Count) (string, error) {
	return compose.Compose(g.src, g.Word, count, wordSeparator, "")
}

// Title returns count words with every word capitalized.
func (g *Generator) Title(count compose.Count) (string, error) {
	s, err := g.Words(count)
	if err != nil {
		return "", err
	}
	return cases.Title(g.locale).String(s), nil
}

// Sentence returns 5 to 10 words ending with a period, first letter capitalized.
func (g *Generator) Sentence() (string, error) {
	s, err := compose.Compose(g.src, g.Word, DefaultSentenceWords, wordSeparator, sentenceEnd)
	if err != nil {
		return "", err
	}
	return g.capitalizeFirst(s), nil
}

// Sentences returns count sentences joined by separator.
func (g *Generator) Sentences(count compose.Count, separator string) (string, error) {
	return compose.Compose(g.src, g.Sentence, count, separator, "")
}

// Paragraph returns 2 to 5 sentences separated by a space.
func (g *Generator) Paragraph() (string, error) {
	return g.Sentences(DefaultParagraphLength, DefaultSentenceSeparator)
}

// Paragraphs returns count paragraphs joined by separator.
func (g *Generator) Paragraphs(count compose.Count, separator string) (string, error) {
	return compose.Compose(g.src, g.Paragraph, count, separator, "")
}

// Keywords returns count words joined by ", ".
func (g *Generator) Keywords(count compose.Count) (string, error) {
	return compose.Compose(g.src, g.Word, count, keywordSeparator, "")
}

// Tweet returns a tweet-length placeholder.
func (g *Generator) Tweet() (string, error) {
	return g.tweets.Pick(g.src)
}

// SymbolName returns an SF-Symbols style icon name such as "star.fill".
func (g *Generator) SymbolName() (string, error) {
	return g.symbols.Pick(g.src)
}

func (g *Generator) capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(g.locale).String(s[:size]) + s[size:]
}
