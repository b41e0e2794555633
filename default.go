package lorem

import (
	"sync"
	"time"

	"github.com/dmitrymomot/lorem/pkg/color"
	"github.com/dmitrymomot/lorem/pkg/date"
	"github.com/dmitrymomot/lorem/pkg/image"
	"github.com/dmitrymomot/lorem/pkg/person"
)

var defaultLorem = sync.OnceValue(func() *Lorem { return New() })

// Default returns the process-wide generator.
func Default() *Lorem {
	return defaultLorem()
}

// The helpers below draw from Default and drop errors, returning "" when the
// backing word list is empty.

func orEmpty(s string, _ error) string { return s }

// Word returns one random word.
func Word() string { return orEmpty(Default().Word()) }

// Title returns 2 to 5 title-cased words.
func Title() string { return orEmpty(Default().Title()) }

// Sentence returns one sentence.
func Sentence() string { return orEmpty(Default().Sentence()) }

// Paragraph returns one paragraph.
func Paragraph() string { return orEmpty(Default().Paragraph()) }

// Keywords returns 5 to 10 comma-separated words.
func Keywords() string { return orEmpty(Default().Keywords()) }

// Tweet returns a sample social post.
func Tweet() string { return orEmpty(Default().Tweet()) }

// Name returns a full name.
func Name() string { return orEmpty(Default().Name()) }

// FirstName returns a first name.
func FirstName() string { return orEmpty(Default().FirstName()) }

// LastName returns a last name.
func LastName() string { return orEmpty(Default().LastName()) }

// Email returns an email address.
func Email() string { return orEmpty(Default().Email()) }

// URL returns a site URL.
func URL() string { return orEmpty(Default().URL()) }

// Age returns an adult age.
func Age() int { return Default().Age(person.Adult) }

// Year returns a year between MinYear and now.
func Year() int { return Default().Year() }

// Date returns an instant from the last 20 years.
func Date() time.Time { return Default().Date() }

// DateString renders a date from the last 20 years with f.
func DateString(f date.Format) string { return Default().DateString(f) }

// Color returns a color from the hue palette.
func Color() color.Color { return Default().Color(color.Hue()) }

// ImageURL returns a random square placeholder image URL of image.DefaultSize.
func ImageURL() string {
	return orEmpty(Default().SquareImageURL(image.Random(), image.DefaultSize, false))
}
