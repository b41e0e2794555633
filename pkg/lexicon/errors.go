package lexicon

import "errors"

// ErrEmptyLexicon is returned when a value is requested from a category with no entries.
var ErrEmptyLexicon = errors.New("lexicon: category is empty")
