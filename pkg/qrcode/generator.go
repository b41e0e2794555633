package qrcode

import (
	"encoding/base64"
	"errors"
	stdcolor "image/color"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/lorem/pkg/color"
)

var (
	// ErrEmptyContent is returned when content is empty or only whitespace.
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	// ErrGenerate is returned when the QR code cannot be encoded.
	ErrGenerate = errors.New("qrcode: failed to generate QR code")
)

// DefaultSize is the edge in pixels used when no size is given.
const DefaultSize = 256

// Level is the error recovery level of the code.
type Level = skipqrcode.RecoveryLevel

const (
	Low     = skipqrcode.Low
	Medium  = skipqrcode.Medium
	High    = skipqrcode.High
	Highest = skipqrcode.Highest
)

type options struct {
	size       int
	level      Level
	foreground stdcolor.Color
	background stdcolor.Color
	noBorder   bool
}

// Option configures Generate.
type Option func(*options)

// WithSize sets the image edge in pixels. Non-positive sizes use DefaultSize.
func WithSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.size = px
		}
	}
}

// WithLevel sets the recovery level.
func WithLevel(l Level) Option {
	return func(o *options) { o.level = l }
}

// WithForeground sets the module color.
func WithForeground(c color.Color) Option {
	return func(o *options) { o.foreground = toRGBA(c) }
}

// WithBackground sets the background color.
func WithBackground(c color.Color) Option {
	return func(o *options) { o.background = toRGBA(c) }
}

// WithoutBorder drops the quiet zone around the code.
func WithoutBorder() Option {
	return func(o *options) { o.noBorder = true }
}

// Generate encodes content as a PNG QR code.
func Generate(content string, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	o := options{
		size:       DefaultSize,
		level:      Medium,
		foreground: stdcolor.Black,
		background: stdcolor.White,
	}
	for _, opt := range opts {
		opt(&o)
	}

	q, err := skipqrcode.New(content, o.level)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	q.ForegroundColor = o.foreground
	q.BackgroundColor = o.background
	q.DisableBorder = o.noBorder

	png, err := q.PNG(o.size)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	return png, nil
}

// DataURI encodes content as a "data:image/png;base64,..." string for <img src>.
func DataURI(content string, opts ...Option) (string, error) {
	png, err := Generate(content, opts...)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func toRGBA(c color.Color) stdcolor.RGBA {
	r, g, b := c.RGB8()
	return stdcolor.RGBA{R: r, G: g, B: b, A: 0xff}
}
