package date

import "fmt"

// DateStyle controls the date part of a Styled format.
type DateStyle string

const (
	DateOmitted     DateStyle = "omitted"     // no date part
	DateNumeric     DateStyle = "numeric"     // 10/21/15
	DateAbbreviated DateStyle = "abbreviated" // Oct 21, 2015
	DateLong        DateStyle = "long"        // October 21, 2015
	DateComplete    DateStyle = "complete"    // Wednesday, October 21, 2015
)

// TimeStyle controls the time part of a Styled format.
type TimeStyle string

const (
	TimeOmitted   TimeStyle = "omitted"   // no time part
	TimeShortened TimeStyle = "shortened" // 4:29 PM
	TimeStandard  TimeStyle = "standard"  // 4:29:24 PM
	TimeComplete  TimeStyle = "complete"  // 4:29:24 PM PDT
)

// RelativeStyle controls the wording of a Relative format.
type RelativeStyle string

const (
	RelativeShortened RelativeStyle = "shortened" // 2 hr. ago
	RelativeStandard  RelativeStyle = "standard"  // 2 hours ago
	RelativeComplete  RelativeStyle = "complete"  // yesterday
)

type kind int

const (
	kindISO8601 kind = iota
	kindRelative
	kindStyled
	kindPattern
	kindCustom
)

var kindNames = [...]string{"iso8601", "relative", "styled", "pattern", "custom"}

// Format describes how a date is rendered.
// The zero value is ISO8601.
type Format struct {
	kind     kind
	relative RelativeStyle
	date     DateStyle
	time     TimeStyle
	pattern  string
	custom   Formatter
}

// ISO8601 renders "2015-10-21T16:29:24Z" in UTC.
func ISO8601() Format {
	return Format{kind: kindISO8601}
}

// Relative renders the distance to now, such as "3 days ago".
func Relative(style RelativeStyle) Format {
	return Format{kind: kindRelative, relative: style}
}

// Styled renders named date and time styles, such as "10/21/15, 4:29:24 PM".
func Styled(date DateStyle, time TimeStyle) Format {
	return Format{kind: kindStyled, date: date, time: time}
}

// Pattern renders a CLDR-style pattern such as "yyyy-MM-dd HH:mm".
func Pattern(pattern string) Format {
	return Format{kind: kindPattern, pattern: pattern}
}

// Custom renders with a caller-supplied formatter. Custom formats are never cached.
func Custom(f Formatter) Format {
	return Format{kind: kindCustom, custom: f}
}

// Key returns the cache description of the format: "iso8601", the pattern,
// "{date}-{time}" or the relative style name. Custom formats return "custom".
func (f Format) Key() string {
	switch f.kind {
	case kindRelative:
		return string(f.relative)
	case kindStyled:
		return string(f.date) + "-" + string(f.time)
	case kindPattern:
		return f.pattern
	case kindCustom:
		return "custom"
	default:
		return "iso8601"
	}
}

// Cacheable reports whether formatters built for f may be shared.
func (f Format) Cacheable() bool {
	return f.kind != kindCustom
}

func (f Format) String() string {
	return fmt.Sprintf("%s(%s)", kindNames[f.kind], f.Key())
}

// ParseDateStyle accepts the DateStyle names; unknown names report false.
func ParseDateStyle(s string) (DateStyle, bool) {
	switch v := DateStyle(s); v {
	case DateOmitted, DateNumeric, DateAbbreviated, DateLong, DateComplete:
		return v, true
	}
	return DateNumeric, false
}

// ParseTimeStyle accepts the TimeStyle names; unknown names report false.
func ParseTimeStyle(s string) (TimeStyle, bool) {
	switch v := TimeStyle(s); v {
	case TimeOmitted, TimeShortened, TimeStandard, TimeComplete:
		return v, true
	}
	return TimeStandard, false
}

// ParseRelativeStyle accepts the RelativeStyle names; unknown names report false.
func ParseRelativeStyle(s string) (RelativeStyle, bool) {
	switch v := RelativeStyle(s); v {
	case RelativeShortened, RelativeStandard, RelativeComplete:
		return v, true
	}
	return RelativeStandard, false
}
