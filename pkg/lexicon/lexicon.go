package lexicon

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/lorem/pkg/random"
)

// Category names a lexicon.
type Category string

// Built-in categories.
const (
	Words        Category = "words"
	FirstNames   Category = "first_names"
	LastNames    Category = "last_names"
	SiteDomains  Category = "site_domains"
	EmailDomains Category = "email_domains"
	Tweets       Category = "tweets"
	SymbolNames  Category = "symbol_names"
)

// Categories lists every built-in category in load order.
var Categories = []Category{Words, FirstNames, LastNames, SiteDomains, EmailDomains, Tweets, SymbolNames}

func (c Category) String() string { return string(c) }

func (c Category) filename() string { return string(c) + ".txt" }

// Lexicon is an immutable ordered list of entries.
type Lexicon struct {
	category Category
	entries  []string
}

// Of builds a lexicon from entries. The slice is copied.
func Of(c Category, entries ...string) Lexicon {
	return Lexicon{category: c, entries: slices.Clone(entries)}
}

func (l Lexicon) Category() Category { return l.category }

func (l Lexicon) Len() int { return len(l.entries) }

// Values returns a copy of the entries.
func (l Lexicon) Values() []string { return slices.Clone(l.entries) }

// Pick returns a uniformly chosen entry.
func (l Lexicon) Pick(src *random.Source) (string, error) {
	v, err := random.Pick(src, l.entries)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrEmptyLexicon, l.category)
	}
	return v, nil
}
