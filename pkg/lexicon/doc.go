// Package lexicon loads the static word, name, domain, tweet and symbol lists
// that placeholder generators draw from.
//
// Each Category is backed by a newline-delimited UTF-8 file named
// "<category>.txt". The default Store reads the files embedded in this
// package; New accepts any fs.FS, and WithOverlay lets a directory replace
// individual categories.
//
// Every category is read exactly once when the Store is built and is never
// modified afterwards, so a Store can be shared freely between goroutines.
//
// # Error Handling
//
// Loading never fails. A missing or unreadable file leaves its category empty
// and logs a warning. Generators that need an entry call Lexicon.Pick, which
// returns an error wrapping ErrEmptyLexicon for an empty category.
package lexicon
