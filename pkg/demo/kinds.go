package demo

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/lorem"
	"github.com/dmitrymomot/lorem/pkg/compose"
	"github.com/dmitrymomot/lorem/pkg/random"
	"github.com/dmitrymomot/lorem/pkg/text"
)

// generator produces the value served for one kind.
type generator func(l *lorem.Lorem, q query) (any, error)

// simple adapts a parameterless generator method.
func simple(f func(*lorem.Lorem) (string, error)) generator {
	return func(l *lorem.Lorem, _ query) (any, error) { return f(l) }
}

var generators = map[string]generator{
	"word":       simple((*lorem.Lorem).Word),
	"tweet":      simple((*lorem.Lorem).Tweet),
	"symbol":     simple((*lorem.Lorem).SymbolName),
	"name":       simple((*lorem.Lorem).Name),
	"first-name": simple((*lorem.Lorem).FirstName),
	"last-name":  simple((*lorem.Lorem).LastName),
	"email":      simple((*lorem.Lorem).Email),
	"url":        simple((*lorem.Lorem).URL),
	"sentence":   simple((*lorem.Lorem).Sentence),
	"paragraph":  simple((*lorem.Lorem).Paragraph),
	"words":      countedWords,
	"title":      countedTitle,
	"keywords":   countedKeywords,
	"sentences":  countedSentences,
	"paragraphs": countedParagraphs,
	"age":        age,
	"year":       year,
	"number":     number,
	"uuid":       newUUID,
	"date":       formattedDate,
	"color":      drawColor,
	"image":      imageURL,
}

// Kinds lists the placeholder kinds served under /api/{kind}.
func Kinds() []string {
	kinds := make([]string, 0, len(generators))
	for k := range generators {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// generate produces one placeholder of kind with l, reading options from q.
func generate(l *lorem.Lorem, kind string, q query) (any, error) {
	gen, ok := generators[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return gen(l, q)
}

func countedWords(l *lorem.Lorem, q query) (any, error) {
	count, err := q.count(compose.Between(3, 8))
	if err != nil {
		return nil, err
	}
	return l.Words(count)
}

func countedTitle(l *lorem.Lorem, q query) (any, error) {
	count, err := q.count(text.DefaultTitleCount)
	if err != nil {
		return nil, err
	}
	return l.TitleOf(count)
}

func countedKeywords(l *lorem.Lorem, q query) (any, error) {
	count, err := q.count(text.DefaultKeywordCount)
	if err != nil {
		return nil, err
	}
	return l.KeywordsOf(count)
}

func countedSentences(l *lorem.Lorem, q query) (any, error) {
	count, err := q.count(compose.Between(2, 4))
	if err != nil {
		return nil, err
	}
	return l.Sentences(count, q.separator(text.DefaultSentenceSeparator))
}

func countedParagraphs(l *lorem.Lorem, q query) (any, error) {
	count, err := q.count(compose.Between(2, 3))
	if err != nil {
		return nil, err
	}
	return l.Paragraphs(count, q.separator(text.DefaultParagraphSeparator))
}

func age(l *lorem.Lorem, q query) (any, error) {
	if q.Has("year") {
		y, err := q.integer("year", 0)
		if err != nil {
			return nil, err
		}
		return l.AgeFromYear(y), nil
	}
	g, err := q.group()
	if err != nil {
		return nil, err
	}
	return l.Age(g), nil
}

func year(l *lorem.Lorem, q query) (any, error) {
	if !q.Has("min") && !q.Has("max") {
		return l.Year(), nil
	}
	lo, err := q.integer("min", lorem.MinYear)
	if err != nil {
		return nil, err
	}
	hi, err := q.integer("max", l.CurrentYear())
	if err != nil {
		return nil, err
	}
	return l.YearIn(random.Between(lo, hi))
}

func number(l *lorem.Lorem, q query) (any, error) {
	lo, err := q.integer("min", 0)
	if err != nil {
		return nil, err
	}
	hi, err := q.integer("max", 100)
	if err != nil {
		return nil, err
	}
	return l.Number(random.Between(lo, hi))
}

func newUUID(l *lorem.Lorem, _ query) (any, error) {
	id, err := l.UUID()
	if err != nil {
		return nil, err
	}
	return id.String(), nil
}

func formattedDate(l *lorem.Lorem, q query) (any, error) {
	w, err := q.window()
	if err != nil {
		return nil, err
	}
	f, err := q.format()
	if err != nil {
		return nil, err
	}
	return l.DateStringWithin(w, f), nil
}

func drawColor(l *lorem.Lorem, q query) (any, error) {
	p, err := q.palette()
	if err != nil {
		return nil, err
	}
	return colorValue(l.Color(p)), nil
}

func imageURL(l *lorem.Lorem, q query) (any, error) {
	src, w, h, gray, err := q.imageSpec()
	if err != nil {
		return nil, err
	}
	return l.ImageURL(src, w, h, gray)
}
