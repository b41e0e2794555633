package date

import "errors"

var (
	// ErrDateConstruction is returned when a window lower bound cannot be computed.
	ErrDateConstruction = errors.New("date: cannot construct window lower bound")

	// ErrFormatRender is returned when a formatter produces no output.
	ErrFormatRender = errors.New("date: formatter produced no output")

	// ErrInvalidPattern is returned for patterns with unsupported fields.
	ErrInvalidPattern = errors.New("date: invalid format pattern")

	// ErrNilFormatter is returned for a custom format without a formatter.
	ErrNilFormatter = errors.New("date: custom format has no formatter")
)
