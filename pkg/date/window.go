package date

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/lorem/pkg/random"
)

// Unit is the calendar unit of a Window.
type Unit int

const (
	Minute Unit = iota
	Hour
	Day
	Week
	Month
	Year
)

var unitNames = map[Unit]string{
	Minute: "minute",
	Hour:   "hour",
	Day:    "day",
	Week:   "week",
	Month:  "month",
	Year:   "year",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

// ParseUnit maps "minute", "hours", "day" ... to a Unit.
func ParseUnit(s string) (Unit, bool) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for u, name := range unitNames {
		if name == s {
			return u, true
		}
	}
	return 0, false
}

// DefaultLocale is the calendar locale used when a Window has none.
const DefaultLocale = "en_US_POSIX"

// DefaultWindow spans the last 20 years.
var DefaultWindow = Window{Magnitude: 20, Unit: Year, Locale: DefaultLocale}

// Window is the sampling range [now - Magnitude*Unit, now].
type Window struct {
	Magnitude int
	Unit      Unit
	Locale    string
}

// LowerBound returns now - Magnitude*Unit using calendar arithmetic.
func (w Window) LowerBound(now time.Time) (time.Time, error) {
	if w.Magnitude < 0 {
		return now, fmt.Errorf("%w: negative magnitude %d", ErrDateConstruction, w.Magnitude)
	}
	if _, err := ParseLocale(w.Locale); err != nil {
		return now, err
	}

	var lower time.Time
	switch w.Unit {
	case Minute, Hour:
		step := time.Minute
		if w.Unit == Hour {
			step = time.Hour
		}
		if int64(w.Magnitude) > int64(1<<63-1)/int64(step) {
			return now, fmt.Errorf("%w: %d %ss overflows", ErrDateConstruction, w.Magnitude, w.Unit)
		}
		lower = now.Add(-time.Duration(w.Magnitude) * step)
	case Day:
		lower = now.AddDate(0, 0, -w.Magnitude)
	case Week:
		lower = now.AddDate(0, 0, -7*w.Magnitude)
	case Month:
		lower = now.AddDate(0, -w.Magnitude, 0)
	case Year:
		lower = now.AddDate(-w.Magnitude, 0, 0)
	default:
		return now, fmt.Errorf("%w: unknown unit %s", ErrDateConstruction, w.Unit)
	}

	if lower.After(now) || lower.Year() < 1 {
		return now, fmt.Errorf("%w: %d %ss before %s", ErrDateConstruction, w.Magnitude, w.Unit, now.Format(time.RFC3339))
	}
	return lower, nil
}

// Sample returns a uniformly drawn instant in [lower, now], in whole seconds
// after the lower bound. It returns now when the window cannot be constructed.
func Sample(src *random.Source, w Window, now time.Time) time.Time {
	lower, err := w.LowerBound(now)
	if err != nil {
		return now
	}

	seconds := now.Unix() - lower.Unix()
	if now.Nanosecond() < lower.Nanosecond() {
		seconds--
	}
	if seconds <= 0 {
		return lower
	}

	offset, err := src.Int(random.Between(0, int(seconds)))
	if err != nil {
		return now
	}
	return time.Unix(lower.Unix()+int64(offset), int64(lower.Nanosecond())).In(now.Location())
}

// ParseLocale parses a calendar locale identifier such as "en_US" or
// "en_US_POSIX". The empty string is the undetermined locale.
func ParseLocale(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return language.Und, nil
	}
	norm := strings.ReplaceAll(s, "_", "-")
	if i := strings.LastIndex(strings.ToLower(norm), "-posix"); i > 0 && i == len(norm)-len("-posix") {
		norm = norm[:i]
	}
	tag, err := language.Parse(norm)
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q: %w", ErrDateConstruction, s, err)
	}
	return tag, nil
}

// Sampler draws instants from windows ending at its clock.
type Sampler struct {
	src *random.Source
	now func() time.Time
}

// NewSampler returns a Sampler over src. A nil clock means time.Now.
func NewSampler(src *random.Source, now func() time.Time) *Sampler {
	if now == nil {
		now = time.Now
	}
	return &Sampler{src: src, now: now}
}

// Sample returns an instant inside w, or now when w cannot be constructed.
func (s *Sampler) Sample(w Window) time.Time {
	return Sample(s.src, w, s.now())
}
