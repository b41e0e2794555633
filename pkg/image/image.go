package image

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultBaseURL is the picsum.photos endpoint.
	DefaultBaseURL = "https://picsum.photos"

	// DefaultSize is the edge of a square placeholder.
	DefaultSize = 300
)

// Source selects a random image or one pinned by a seed.
type Source struct {
	seed   string
	seeded bool
}

// Random lets the endpoint pick a different image per request.
func Random() Source {
	return Source{}
}

// Seed pins the image to v; equal seeds always yield the same URL.
func Seed(v any) Source {
	return Source{seed: fmt.Sprint(v), seeded: true}
}

// Seeded reports whether the source is pinned, and to what.
func (s Source) Seeded() (string, bool) {
	return s.seed, s.seeded
}

func (s Source) String() string {
	if s.seeded {
		return "seed(" + s.seed + ")"
	}
	return "random"
}

// Builder renders image URLs.
type Builder struct {
	base string
}

// Option configures a Builder.
type Option func(*Builder)

// WithBaseURL replaces the endpoint. Empty values are ignored.
func WithBaseURL(base string) Option {
	return func(b *Builder) {
		if base = strings.TrimRight(strings.TrimSpace(base), "/"); base != "" {
			b.base = base
		}
	}
}

// NewBuilder returns a Builder for DefaultBaseURL unless overridden.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{base: DefaultBaseURL}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BaseURL returns the endpoint the builder renders against.
func (b *Builder) BaseURL() string {
	return b.base
}

// URL returns {base}[/seed/{seed}]/{width}/{height}[?grayscale].
func (b *Builder) URL(src Source, width, height int, grayscale bool) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	u, err := url.Parse(b.base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, b.base)
	}

	segments := make([]string, 0, 4)
	if seed, ok := src.Seeded(); ok {
		segments = append(segments, "seed", url.PathEscape(seed))
	}
	segments = append(segments, strconv.Itoa(width), strconv.Itoa(height))

	var sb strings.Builder
	sb.WriteString(b.base)
	for _, s := range segments {
		sb.WriteByte('/')
		sb.WriteString(s)
	}
	if grayscale {
		sb.WriteString("?grayscale")
	}
	return sb.String(), nil
}

// Square returns URL(src, size, size, grayscale).
func (b *Builder) Square(src Source, size int, grayscale bool) (string, error) {
	return b.URL(src, size, size, grayscale)
}
