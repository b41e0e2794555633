package demo

import "errors"

var (
	// ErrUnknownKind is returned for /api/{kind} routes with no generator.
	ErrUnknownKind = errors.New("demo: unknown placeholder kind")

	// ErrInvalidParam is returned for malformed query parameters.
	ErrInvalidParam = errors.New("demo: invalid query parameter")

	// ErrInvalidConfig is returned by New for unusable configuration values.
	ErrInvalidConfig = errors.New("demo: invalid configuration")
)
