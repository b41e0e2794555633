package demo_test

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/lorem/pkg/demo"
	"github.com/dmitrymomot/lorem/pkg/lexicon"
	"github.com/dmitrymomot/lorem/pkg/logger"
)

var fixedNow = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

type envelope struct {
	Code string `json:"code" yaml:"code"`
	Data struct {
		Kind  string `json:"kind" yaml:"kind"`
		Value any    `json:"value" yaml:"value"`
	} `json:"data" yaml:"data"`
	Error struct {
		Code    string `json:"code" yaml:"code"`
		Message string `json:"message" yaml:"message"`
	} `json:"error" yaml:"error"`
}

func newApp(t *testing.T, cfg demo.Config, opts ...demo.Option) http.Handler {
	t.Helper()
	base := []demo.Option{
		demo.WithClock(func() time.Time { return fixedNow }),
		demo.WithLogger(logger.Nop()),
	}
	app, err := demo.New(cfg, append(base, opts...)...)
	require.NoError(t, err)
	return app.Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func getJSON(t *testing.T, h http.Handler, target string) (int, envelope) {
	t.Helper()
	rec := get(t, h, target)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestHealthz(t *testing.T) {
	rec := get(t, newApp(t, demo.Config{}), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	rec = get(t, newApp(t, demo.Config{}), "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())
}

func TestPlaceholderKinds(t *testing.T) {
	h := newApp(t, demo.Config{})

	for _, kind := range demo.Kinds() {
		t.Run(kind, func(t *testing.T) {
			status, env := getJSON(t, h, "/api/"+kind)
			require.Equal(t, http.StatusOK, status)
			assert.Equal(t, "ok", env.Code)
			assert.Equal(t, kind, env.Data.Kind)
			assert.NotNil(t, env.Data.Value)
		})
	}
}

func TestPlaceholderParams(t *testing.T) {
	h := newApp(t, demo.Config{})

	_, env := getJSON(t, h, "/api/words?count=4")
	assert.Len(t, strings.Fields(env.Data.Value.(string)), 4)

	_, env = getJSON(t, h, "/api/keywords?min=2&max=2")
	assert.Len(t, strings.Split(env.Data.Value.(string), ", "), 2)

	_, env = getJSON(t, h, "/api/age?group=teen")
	age := env.Data.Value.(float64)
	assert.GreaterOrEqual(t, age, 13.0)
	assert.LessOrEqual(t, age, 17.0)

	_, env = getJSON(t, h, "/api/age?year=2000")
	assert.Equal(t, 26.0, env.Data.Value)

	_, env = getJSON(t, h, "/api/image?image_seed=abc&size=100&grayscale")
	assert.Equal(t, "https://picsum.photos/seed/abc/100/100?grayscale", env.Data.Value)

	_, env = getJSON(t, h, "/api/date?format=pattern&pattern=yyyy")
	assert.Regexp(t, `^20[0-2]\d$`, env.Data.Value)

	_, env = getJSON(t, h, "/api/date?format=relative&style=complete&magnitude=0")
	assert.Equal(t, "now", env.Data.Value)

	_, env = getJSON(t, h, "/api/date?format=styled&date_style=long&time_style=omitted&unit=day&magnitude=0")
	assert.Equal(t, "October 14, 2026", env.Data.Value)

	_, env = getJSON(t, h, "/api/color?palette=system")
	c := env.Data.Value.(map[string]any)
	assert.Regexp(t, `^#[0-9A-F]{6}$`, c["hex"])
	assert.NotEmpty(t, c["name"])

	_, env = getJSON(t, h, "/api/year?min=1990&max=1990")
	assert.Equal(t, 1990.0, env.Data.Value)
}

func TestPlaceholderErrors(t *testing.T) {
	h := newApp(t, demo.Config{})
	tests := []struct {
		target string
		status int
		code   string
	}{
		{"/api/nope", http.StatusNotFound, "unknown_kind"},
		{"/api/words?min=5&max=2", http.StatusBadRequest, "invalid_request"},
		{"/api/words?count=-1", http.StatusBadRequest, "invalid_request"},
		{"/api/words?count=many", http.StatusBadRequest, "invalid_request"},
		{"/api/color?palette=sepia", http.StatusBadRequest, "invalid_request"},
		{"/api/image?size=0", http.StatusBadRequest, "invalid_request"},
		{"/api/date?format=pattern", http.StatusBadRequest, "invalid_request"},
		{"/api/date?unit=fortnight", http.StatusBadRequest, "invalid_request"},
		{"/api/age?group=toddler", http.StatusBadRequest, "invalid_request"},
		{"/api/word?seed=-3", http.StatusBadRequest, "invalid_request"},
		{"/api/image?seed=abc", http.StatusBadRequest, "invalid_request"},
		{"/api/paragraphs?count=100000000", http.StatusBadRequest, "invalid_request"},
		{"/api/words?min=1&max=5000", http.StatusBadRequest, "invalid_request"},
		{"/api/sentences?min=2000", http.StatusBadRequest, "invalid_request"},
		{"/api/image?size=100000", http.StatusBadRequest, "invalid_request"},
		{"/api/image?width=5000&height=10", http.StatusBadRequest, "invalid_request"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			status, env := getJSON(t, h, tt.target)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.NotEmpty(t, env.Error.Message)
			assert.Empty(t, env.Code)
		})
	}
}

func TestSeededRequestsAreReproducible(t *testing.T) {
	h := newApp(t, demo.Config{})

	_, first := getJSON(t, h, "/api/paragraph?seed=9")
	_, second := getJSON(t, h, "/api/paragraph?seed=9")
	assert.Equal(t, first.Data.Value, second.Data.Value)

	_, id := getJSON(t, h, "/api/uuid?seed=1")
	_, err := uuid.Parse(id.Data.Value.(string))
	require.NoError(t, err)
	_, again := getJSON(t, h, "/api/uuid?seed=1")
	assert.Equal(t, id.Data.Value, again.Data.Value)
}

func TestYAMLEncoding(t *testing.T) {
	h := newApp(t, demo.Config{})

	rec := get(t, h, "/api/name?encoding=yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml; charset=utf-8", rec.Header().Get("Content-Type"))

	var env envelope
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "ok", env.Code)
	assert.Equal(t, "name", env.Data.Kind)
	assert.Len(t, strings.Fields(env.Data.Value.(string)), 2)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	req.Header.Set("Accept", "application/yaml")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "unknown_kind", env.Error.Code)
}

func TestSamplePage(t *testing.T) {
	h := newApp(t, demo.Config{ImageBaseURL: "https://img.example.com"})

	rec := get(t, h, "/?seed=3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>")
	assert.Contains(t, body, "https://img.example.com/seed/")
	assert.Contains(t, body, "data:image/png;base64,")
	assert.Contains(t, body, `href="/api/word"`)

	assert.Equal(t, body, get(t, h, "/?seed=3").Body.String())
}

func TestQRCode(t *testing.T) {
	h := newApp(t, demo.Config{})

	rec := get(t, h, "/qr.png?image_seed=7&size=200&palette=system&px=128")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "https://picsum.photos/seed/7/200/200", rec.Header().Get("X-Placeholder-URL"))

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())

	rec = get(t, h, "/qr.png?palette=sepia")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, h, "/qr.png?px=1000000")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestYearWithOnlyLowerBound(t *testing.T) {
	h := newApp(t, demo.Config{})

	for i := range 50 {
		status, env := getJSON(t, h, "/api/year?min=2020&seed="+strconv.Itoa(i))
		require.Equal(t, http.StatusOK, status, env.Error.Message)
		y := env.Data.Value.(float64)
		assert.GreaterOrEqual(t, y, 2020.0)
		assert.LessOrEqual(t, y, 2026.0)
	}

	_, first := getJSON(t, h, "/api/year?min=1950&seed=4")
	_, second := getJSON(t, h, "/api/year?min=1950&seed=4")
	assert.Equal(t, first.Data.Value, second.Data.Value)
}

func TestImageSeedIsIndependentOfGeneratorSeed(t *testing.T) {
	h := newApp(t, demo.Config{})

	_, env := getJSON(t, h, "/api/image?seed=5&image_seed=hero+shot&width=640&height=480")
	assert.Equal(t, "https://picsum.photos/seed/hero%20shot/640/480", env.Data.Value)

	_, env = getJSON(t, h, "/api/image?seed=5&size=64")
	assert.Equal(t, "https://picsum.photos/64/64", env.Data.Value)
}

func TestEmptyLexicon(t *testing.T) {
	store := lexicon.New(fstest.MapFS{}, lexicon.WithLogger(logger.Nop()))
	h := newApp(t, demo.Config{}, demo.WithStore(store))

	status, env := getJSON(t, h, "/api/word")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "lexicon_unavailable", env.Error.Code)

	rec := get(t, h, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "NOT_READY", rec.Body.String())
}

func TestLexiconOverlay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(dir+"/words.txt", "zebra\n"))

	h := newApp(t, demo.Config{LexiconDir: dir})
	_, env := getJSON(t, h, "/api/words?count=3")
	assert.Equal(t, "zebra zebra zebra", env.Data.Value)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  demo.Config
	}{
		{"locale", demo.Config{Locale: "not a locale"}},
		{"seed", demo.Config{Seed: "abc"}},
		{"lexicon dir", demo.Config{LexiconDir: "/definitely/missing/dir"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := demo.New(tt.cfg)
			assert.ErrorIs(t, err, demo.ErrInvalidConfig)
		})
	}
}
