package date

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Formatter renders an instant as a string.
type Formatter interface {
	Format(t time.Time) (string, error)
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(t time.Time) (string, error)

func (f FormatterFunc) Format(t time.Time) (string, error) { return f(t) }

// newFormatter builds the formatter for a non-custom format.
func newFormatter(f Format, now func() time.Time) (Formatter, error) {
	switch f.kind {
	case kindRelative:
		return &relativeFormatter{style: f.relative, now: now}, nil
	case kindStyled:
		return newStyledFormatter(f.date, f.time), nil
	case kindPattern:
		return compilePattern(f.pattern)
	case kindCustom:
		if f.custom == nil {
			return nil, ErrNilFormatter
		}
		return f.custom, nil
	default:
		return &isoFormatter{}, nil
	}
}

type isoFormatter struct{}

func (isoFormatter) Format(t time.Time) (string, error) {
	return t.UTC().Format(time.RFC3339), nil
}

type styledFormatter struct {
	layout string
}

var dateLayouts = map[DateStyle]string{
	DateNumeric:     "1/2/06",
	DateAbbreviated: "Jan 2, 2006",
	DateLong:        "January 2, 2006",
	DateComplete:    "Monday, January 2, 2006",
}

var timeLayouts = map[TimeStyle]string{
	TimeShortened: "3:04 PM",
	TimeStandard:  "3:04:05 PM",
	TimeComplete:  "3:04:05 PM MST",
}

func newStyledFormatter(ds DateStyle, ts TimeStyle) *styledFormatter {
	d, t := dateLayouts[ds], timeLayouts[ts]
	switch {
	case d == "" || t == "":
		return &styledFormatter{layout: d + t}
	case ds == DateLong || ds == DateComplete:
		return &styledFormatter{layout: d + " at " + t}
	default:
		return &styledFormatter{layout: d + ", " + t}
	}
}

func (f styledFormatter) Format(t time.Time) (string, error) {
	if f.layout == "" {
		return "", ErrFormatRender
	}
	return t.Format(f.layout), nil
}

// patternFormatter renders a compiled CLDR-style pattern. Literal text is
// kept apart from Go layout chunks so digits and letters in quotes are never
// read as layout fields.
type patternFormatter struct {
	parts []func(t time.Time) string
}

func (f patternFormatter) Format(t time.Time) (string, error) {
	if len(f.parts) == 0 {
		return "", ErrFormatRender
	}
	var b strings.Builder
	for _, p := range f.parts {
		b.WriteString(p(t))
	}
	return b.String(), nil
}

func layoutPart(layout string) func(time.Time) string {
	return func(t time.Time) string { return t.Format(layout) }
}

func literalPart(s string) func(time.Time) string {
	return func(time.Time) string { return s }
}

// fieldLayout maps a pattern field (letter repeated n times) to a Go layout.
func fieldLayout(letter rune, n int) (func(time.Time) string, bool) {
	switch letter {
	case 'y', 'u':
		if n == 2 {
			return layoutPart("06"), true
		}
		return layoutPart("2006"), true
	case 'M', 'L':
		switch n {
		case 1:
			return layoutPart("1"), true
		case 2:
			return layoutPart("01"), true
		case 3:
			return layoutPart("Jan"), true
		default:
			return layoutPart("January"), true
		}
	case 'd':
		if n == 1 {
			return layoutPart("2"), true
		}
		return layoutPart("02"), true
	case 'D':
		return func(t time.Time) string { return fmt.Sprintf("%0*d", n, t.YearDay()) }, true
	case 'E':
		if n >= 4 {
			return layoutPart("Monday"), true
		}
		return layoutPart("Mon"), true
	case 'H':
		if n == 1 {
			return func(t time.Time) string { return fmt.Sprint(t.Hour()) }, true
		}
		return layoutPart("15"), true
	case 'h':
		if n == 1 {
			return layoutPart("3"), true
		}
		return layoutPart("03"), true
	case 'm':
		if n == 1 {
			return layoutPart("4"), true
		}
		return layoutPart("04"), true
	case 's':
		if n == 1 {
			return layoutPart("5"), true
		}
		return layoutPart("05"), true
	case 'S':
		if n > 9 {
			return nil, false
		}
		frac := "." + strings.Repeat("0", n)
		return func(t time.Time) string { return t.Format(frac)[1:] }, true
	case 'a':
		return layoutPart("PM"), true
	case 'z':
		if n >= 4 {
			return nil, false
		}
		return layoutPart("MST"), true
	case 'Z':
		if n >= 5 {
			return layoutPart("Z07:00"), true
		}
		return layoutPart("-0700"), true
	case 'X':
		switch n {
		case 1:
			return layoutPart("Z07"), true
		case 2:
			return layoutPart("Z0700"), true
		default:
			return layoutPart("Z07:00"), true
		}
	}
	return nil, false
}

// compilePattern turns a CLDR-style pattern into a formatter.
// Text inside single quotes is literal and '' is a single quote.
func compilePattern(pattern string) (Formatter, error) {
	runes := []rune(pattern)
	var (
		parts   []func(time.Time) string
		literal strings.Builder
	)
	flush := func() {
		if literal.Len() > 0 {
			parts = append(parts, literalPart(literal.String()))
			literal.Reset()
		}
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				literal.WriteRune('\'')
				i += 2
				continue
			}
			end := i + 1
			for end < len(runes) && runes[end] != '\'' {
				end++
			}
			if end == len(runes) {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrInvalidPattern, pattern)
			}
			literal.WriteString(string(runes[i+1 : end]))
			i = end + 1
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			n := 1
			for i+n < len(runes) && runes[i+n] == r {
				n++
			}
			part, ok := fieldLayout(r, n)
			if !ok {
				return nil, fmt.Errorf("%w: unsupported field %q in %q", ErrInvalidPattern, strings.Repeat(string(r), n), pattern)
			}
			flush()
			parts = append(parts, part)
			i += n
		default:
			literal.WriteRune(r)
			i++
		}
	}
	flush()

	return &patternFormatter{parts: parts}, nil
}

type relativeUnit struct {
	size  time.Duration
	full  string
	short string
	last  string
	next  string
}

var relativeUnits = []relativeUnit{
	{365 * 24 * time.Hour, "year", "yr.", "last year", "next year"},
	{30 * 24 * time.Hour, "month", "mo.", "last month", "next month"},
	{7 * 24 * time.Hour, "week", "wk.", "last week", "next week"},
	{24 * time.Hour, "day", "day", "yesterday", "tomorrow"},
	{time.Hour, "hour", "hr.", "", ""},
	{time.Minute, "minute", "min.", "", ""},
	{time.Second, "second", "sec.", "", ""},
}

// relativeFormatter renders the distance between t and the clock.
type relativeFormatter struct {
	style RelativeStyle
	now   func() time.Time
}

func (f relativeFormatter) Format(t time.Time) (string, error) {
	d := t.Sub(f.now())
	future := d > 0
	if d < 0 {
		d = -d
	}

	unit := relativeUnits[len(relativeUnits)-1]
	n := int64(d / unit.size)
	for _, u := range relativeUnits {
		if d >= u.size {
			unit, n = u, int64(d/u.size)
			break
		}
	}

	if f.style == RelativeComplete {
		if n == 0 {
			return "now", nil
		}
		if n == 1 && unit.last != "" {
			if future {
				return unit.next, nil
			}
			return unit.last, nil
		}
	}

	name := unit.full
	if f.style == RelativeShortened {
		name = unit.short
	}
	if n != 1 && !strings.HasSuffix(name, ".") {
		name += "s"
	}

	if future {
		return fmt.Sprintf("in %d %s", n, name), nil
	}
	return fmt.Sprintf("%d %s ago", n, name), nil
}
