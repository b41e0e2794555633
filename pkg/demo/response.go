package demo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/lorem/pkg/color"
	"github.com/dmitrymomot/lorem/pkg/compose"
	"github.com/dmitrymomot/lorem/pkg/image"
	"github.com/dmitrymomot/lorem/pkg/lexicon"
	"github.com/dmitrymomot/lorem/pkg/random"
)

// Response is the envelope of every API response.
type Response struct {
	Code  string       `json:"code,omitempty" yaml:"code,omitempty"`
	Data  *Placeholder `json:"data,omitempty" yaml:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty" yaml:"error,omitempty"`
}

// Placeholder is the payload of a successful response.
type Placeholder struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value any    `json:"value" yaml:"value"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// ColorValue is the wire form of a color.
type ColorValue struct {
	Hex  string `json:"hex" yaml:"hex"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

func colorValue(c color.Color) ColorValue {
	return ColorValue{Hex: c.Hex(), Name: c.Name}
}

func wantsYAML(r *http.Request) bool {
	if enc := r.URL.Query().Get("encoding"); enc != "" {
		return strings.EqualFold(enc, "yaml")
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "yaml")
}

func writeResponse(w http.ResponseWriter, r *http.Request, status int, body Response) error {
	if wantsYAML(r) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.WriteHeader(status)
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(body); err != nil {
			return err
		}
		return enc.Close()
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// errorStatus maps an error to its HTTP status and wire code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrUnknownKind):
		return http.StatusNotFound, "unknown_kind"
	case errors.Is(err, ErrInvalidParam),
		errors.Is(err, random.ErrInvalidRange),
		errors.Is(err, compose.ErrNegativeCount),
		errors.Is(err, image.ErrInvalidSize),
		errors.Is(err, color.ErrUnknownPalette):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, lexicon.ErrEmptyLexicon):
		return http.StatusServiceUnavailable, "lexicon_unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
