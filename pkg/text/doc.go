// Package text generates placeholder words, titles, sentences, paragraphs,
// keywords, tweets and symbol names.
//
// Multi-word values are built with the compose package, so each position
// draws its own word. Counts are compose.Count values: compose.Exactly(n) for
// a fixed number, compose.Between(lo, hi) for a uniformly drawn one.
//
//	g := text.New(random.Default(), lexicon.Default())
//
//	title, _ := g.Title(text.DefaultTitleCount) // "Lorem Dolor Sit"
//	s, _ := g.Sentence()                        // "Ipsum amet elit nunc sed."
//	p, _ := g.Paragraphs(compose.Exactly(2), text.DefaultParagraphSeparator)
//
// Capitalization follows the generator's locale (WithLocale) through
// golang.org/x/text/cases.
package text
