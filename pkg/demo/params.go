package demo

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrymomot/lorem/pkg/color"
	"github.com/dmitrymomot/lorem/pkg/compose"
	"github.com/dmitrymomot/lorem/pkg/date"
	"github.com/dmitrymomot/lorem/pkg/image"
	"github.com/dmitrymomot/lorem/pkg/person"
)

// Upper bounds of request parameters.
const (
	MaxCount     = 1000 // items per composed placeholder
	MaxImageEdge = 4096 // image width, height and size
	MaxQRSize    = 4096 // QR code edge in pixels
)

// query reads typed placeholder parameters from a request query.
type query struct {
	url.Values
}

func invalid(name, value, reason string) error {
	return fmt.Errorf("%w: %s=%q: %s", ErrInvalidParam, name, value, reason)
}

// bounded reads an integer and rejects values above limit.
func (q query) bounded(name string, def, limit int) (int, error) {
	n, err := q.integer(name, def)
	if err != nil {
		return 0, err
	}
	if n > limit {
		return 0, invalid(name, q.Get(name), "must not exceed "+strconv.Itoa(limit))
	}
	return n, nil
}

func (q query) integer(name string, def int) (int, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalid(name, v, "not an integer")
	}
	return n, nil
}

// flag treats a bare flag (?grayscale) as true.
func (q query) flag(name string) (bool, error) {
	if !q.Has(name) {
		return false, nil
	}
	v := q.Get(name)
	if v == "" {
		return true, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, invalid(name, v, "not a boolean")
	}
	return b, nil
}

// seed returns the ?seed value when present.
func (q query) seed() (uint64, bool, error) {
	v := q.Get("seed")
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false, invalid("seed", v, "not an unsigned integer")
	}
	return n, true, nil
}

// count reads ?count=N or ?min=A&max=B; missing bounds come from def.
func (q query) count(def compose.Count) (compose.Count, error) {
	if q.Has("count") {
		n, err := q.bounded("count", 0, MaxCount)
		if err != nil {
			return compose.Count{}, err
		}
		return compose.Exactly(n), nil
	}
	if !q.Has("min") && !q.Has("max") {
		return def, nil
	}
	r := def.Range()
	lo, err := q.bounded("min", r.Min, MaxCount)
	if err != nil {
		return compose.Count{}, err
	}
	hi, err := q.bounded("max", min(r.Max, MaxCount), MaxCount)
	if err != nil {
		return compose.Count{}, err
	}
	return compose.Between(lo, hi), nil
}

func (q query) separator(def string) string {
	if q.Has("separator") {
		return q.Get("separator")
	}
	return def
}

func (q query) group() (person.AgeGroup, error) {
	v := q.Get("group")
	if v == "" {
		return person.Adult, nil
	}
	g, ok := person.ParseAgeGroup(strings.ToLower(v))
	if !ok {
		return person.Adult, invalid("group", v, "want child, teen, adult or elderly")
	}
	return g, nil
}

func (q query) palette() (color.Palette, error) {
	p, err := color.ParsePalette(q.Get("palette"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParam, err)
	}
	return p, nil
}

func (q query) window() (date.Window, error) {
	w := date.DefaultWindow
	if v := q.Get("unit"); v != "" {
		u, ok := date.ParseUnit(v)
		if !ok {
			return w, invalid("unit", v, "want minute, hour, day, week, month or year")
		}
		w.Unit = u
	}
	magnitude, err := q.integer("magnitude", w.Magnitude)
	if err != nil {
		return w, err
	}
	w.Magnitude = magnitude
	if v := q.Get("locale"); v != "" {
		w.Locale = v
	}
	return w, nil
}

// format reads ?format=iso8601|relative|styled|pattern with its companions
// ?style, ?date_style, ?time_style and ?pattern.
func (q query) format() (date.Format, error) {
	switch v := strings.ToLower(q.Get("format")); v {
	case "", "iso8601":
		return date.ISO8601(), nil
	case "relative":
		style := date.RelativeStandard
		if s := q.Get("style"); s != "" {
			var ok bool
			if style, ok = date.ParseRelativeStyle(s); !ok {
				return date.Format{}, invalid("style", s, "want shortened, standard or complete")
			}
		}
		return date.Relative(style), nil
	case "styled":
		ds, ts := date.DateAbbreviated, date.TimeShortened
		if s := q.Get("date_style"); s != "" {
			var ok bool
			if ds, ok = date.ParseDateStyle(s); !ok {
				return date.Format{}, invalid("date_style", s, "unknown date style")
			}
		}
		if s := q.Get("time_style"); s != "" {
			var ok bool
			if ts, ok = date.ParseTimeStyle(s); !ok {
				return date.Format{}, invalid("time_style", s, "unknown time style")
			}
		}
		return date.Styled(ds, ts), nil
	case "pattern":
		p := q.Get("pattern")
		if p == "" {
			return date.Format{}, invalid("pattern", p, "required with format=pattern")
		}
		return date.Pattern(p), nil
	default:
		return date.Format{}, invalid("format", v, "want iso8601, relative, styled or pattern")
	}
}

// imageSpec reads ?width, ?height or ?size, ?grayscale, and pins the image to
// ?image_seed when present.
func (q query) imageSpec() (src image.Source, width, height int, grayscale bool, err error) {
	size, err := q.bounded("size", image.DefaultSize, MaxImageEdge)
	if err != nil {
		return src, 0, 0, false, err
	}
	if width, err = q.bounded("width", size, MaxImageEdge); err != nil {
		return src, 0, 0, false, err
	}
	if height, err = q.bounded("height", size, MaxImageEdge); err != nil {
		return src, 0, 0, false, err
	}
	if grayscale, err = q.flag("grayscale"); err != nil {
		return src, 0, 0, false, err
	}
	src = image.Random()
	if v := q.Get("image_seed"); v != "" {
		src = image.Seed(v)
	}
	return src, width, height, grayscale, nil
}
