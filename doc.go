// Package lorem generates placeholder content for previews and demo screens:
// words, titles, sentences, paragraphs, keywords, tweets, names, email
// addresses, site URLs, ages, years, dates, colors, UUIDs and placeholder
// image URLs.
//
// Basic Usage:
//
//	fmt.Println(lorem.Title())    // "Dolor Sit Amet"
//	fmt.Println(lorem.Sentence()) // "Lorem ipsum dolor sit amet consectetur."
//	fmt.Println(lorem.Email())    // "olivia.parker@gmail.com"
//
// The package-level helpers use Default, which draws from a non-deterministic
// source. For reproducible output create a generator with a seed:
//
//	l := lorem.New(lorem.WithSeed(42))
//	words, err := l.Words(compose.Between(3, 6))
//
// Helpers that can fail only because a word list is empty return an error
// wrapping lexicon.ErrEmptyLexicon. Invalid ranges surface as
// random.ErrInvalidRange or compose.ErrNegativeCount and are never clamped.
//
// Dates are drawn from a calendar window ending now and rendered through a
// shared formatter cache:
//
//	s := l.DateString(date.Pattern("MMM d, yyyy"))
//
// Rendering never fails; a format that cannot be built or rendered yields "".
//
// Lorem is safe for concurrent use.
package lorem
