package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/lorem"
	"github.com/dmitrymomot/lorem/pkg/color"
	"github.com/dmitrymomot/lorem/pkg/compose"
	"github.com/dmitrymomot/lorem/pkg/date"
	"github.com/dmitrymomot/lorem/pkg/httpserver"
	"github.com/dmitrymomot/lorem/pkg/image"
	"github.com/dmitrymomot/lorem/pkg/lexicon"
	"github.com/dmitrymomot/lorem/pkg/logger"
	"github.com/dmitrymomot/lorem/pkg/qrcode"
)

// App serves placeholders over HTTP.
type App struct {
	cfg    Config
	log    *slog.Logger
	store  *lexicon.Store
	locale language.Tag
	dates  *date.Cache
	now    func() time.Time
	base   *lorem.Lorem
	page   func(PageParams) templ.Component
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// WithClock overrides "now" for every generator the app creates.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// WithStore replaces the word lists. It takes precedence over Config.LexiconDir.
func WithStore(s *lexicon.Store) Option {
	return func(a *App) {
		if s != nil {
			a.store = s
		}
	}
}

// WithPage replaces the sample screen component.
func WithPage(page func(PageParams) templ.Component) Option {
	return func(a *App) {
		if page != nil {
			a.page = page
		}
	}
}

// New validates cfg and builds the shared generator.
func New(cfg Config, opts ...Option) (*App, error) {
	a := &App{
		cfg:  cfg,
		log:  logger.Nop(),
		now:  time.Now,
		page: DefaultPage,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(logger.Component("demo"))

	a.locale = language.English
	if cfg.Locale != "" {
		tag, err := language.Parse(strings.ReplaceAll(cfg.Locale, "_", "-"))
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("locale %q: %w", cfg.Locale, err))
		}
		a.locale = tag
	}

	if a.store == nil {
		storeOpts := []lexicon.Option{lexicon.WithLogger(a.log)}
		if cfg.LexiconDir != "" {
			if _, err := os.Stat(cfg.LexiconDir); err != nil {
				return nil, errors.Join(ErrInvalidConfig, err)
			}
			storeOpts = append(storeOpts, lexicon.WithOverlay(os.DirFS(cfg.LexiconDir)))
		}
		a.store = lexicon.Embedded(storeOpts...)
	}

	a.dates = date.NewCache(date.WithClock(a.now), date.WithLogger(a.log))

	var seedOpts []lorem.Option
	if cfg.Seed != "" {
		seed, err := strconv.ParseUint(cfg.Seed, 10, 64)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("seed %q: %w", cfg.Seed, err))
		}
		seedOpts = append(seedOpts, lorem.WithSeed(seed))
	}
	a.base = a.generator(seedOpts...)

	return a, nil
}

// generator builds a Lorem sharing the app store, locale, clock and cache.
func (a *App) generator(opts ...lorem.Option) *lorem.Lorem {
	base := []lorem.Option{
		lorem.WithStore(a.store),
		lorem.WithLocale(a.locale),
		lorem.WithClock(a.now),
		lorem.WithImageBaseURL(a.cfg.ImageBaseURL),
		lorem.WithFormatCache(a.dates),
	}
	return lorem.New(append(base, opts...)...)
}

// forRequest returns a seeded generator for ?seed=N, otherwise the shared one.
func (a *App) forRequest(q query) (*lorem.Lorem, error) {
	seed, ok, err := q.seed()
	if err != nil || !ok {
		return a.base, err
	}
	return a.generator(lorem.WithSeed(seed)), nil
}

// Handler returns the application router.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(a.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(a.log, a.lexiconReady))
	r.Get("/api", a.listKinds)
	r.Get("/api/{kind}", a.placeholder)
	r.Get("/qr.png", a.qrCode)
	r.Get("/", a.samplePage)

	return r
}

// lexiconReady fails while the word list is empty.
func (a *App) lexiconReady(context.Context) error {
	if a.store.Lexicon(lexicon.Words).Len() == 0 {
		return fmt.Errorf("%w: %s", lexicon.ErrEmptyLexicon, lexicon.Words)
	}
	return nil
}

// Run serves the application until ctx is done.
func (a *App) Run(ctx context.Context) error {
	srv := httpserver.New(a.cfg.HTTP, httpserver.WithLogger(a.log))
	return srv.Run(ctx, a.Handler())
}

func (a *App) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		a.log.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			logger.Path(r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(time.Since(start)),
		)
	})
}

func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := errorStatus(err)
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	a.log.Log(r.Context(), level, "request failed", logger.Error(err), slog.String("code", code))

	if werr := writeResponse(w, r, status, Response{Error: &ErrorDetail{Code: code, Message: err.Error()}}); werr != nil {
		a.log.ErrorContext(r.Context(), "write response", logger.Error(werr))
	}
}

func (a *App) listKinds(w http.ResponseWriter, r *http.Request) {
	if err := writeResponse(w, r, http.StatusOK, Response{Code: "ok", Data: &Placeholder{Kind: "kinds", Value: Kinds()}}); err != nil {
		a.log.ErrorContext(r.Context(), "write response", logger.Error(err))
	}
}

func (a *App) placeholder(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	q := query{r.URL.Query()}

	l, err := a.forRequest(q)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	value, err := generate(l, kind, q)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	a.log.DebugContext(r.Context(), "placeholder generated", logger.Kind(kind))
	if err := writeResponse(w, r, http.StatusOK, Response{Code: "ok", Data: &Placeholder{Kind: kind, Value: value}}); err != nil {
		a.log.ErrorContext(r.Context(), "write response", logger.Error(err))
	}
}

func (a *App) qrCode(w http.ResponseWriter, r *http.Request) {
	q := query{r.URL.Query()}
	l, err := a.forRequest(q)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	src, width, height, gray, err := q.imageSpec()
	if err != nil {
		a.fail(w, r, err)
		return
	}
	target, err := l.ImageURL(src, width, height, gray)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	var opts []qrcode.Option
	if q.Has("palette") {
		p, err := q.palette()
		if err != nil {
			a.fail(w, r, err)
			return
		}
		opts = append(opts, qrcode.WithForeground(l.Color(p)))
	}
	if q.Has("px") {
		px, err := q.bounded("px", qrcode.DefaultSize, MaxQRSize)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		opts = append(opts, qrcode.WithSize(px))
	}

	png, err := qrcode.Generate(target, opts...)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Placeholder-URL", target)
	_, _ = w.Write(png)
}

func (a *App) samplePage(w http.ResponseWriter, r *http.Request) {
	q := query{r.URL.Query()}
	l, err := a.forRequest(q)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	params, err := a.pageParams(l)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	templ.Handler(a.page(params)).ServeHTTP(w, r)
}

func (a *App) pageParams(l *lorem.Lorem) (PageParams, error) {
	var (
		p   PageParams
		err error
	)
	if p.Title, err = l.Title(); err != nil {
		return p, err
	}
	if p.Author, err = l.Name(); err != nil {
		return p, err
	}
	if p.Email, err = l.Email(); err != nil {
		return p, err
	}
	avatarSeed, err := l.Word()
	if err != nil {
		return p, err
	}
	if p.AvatarURL, err = l.SquareImageURL(image.Seed(avatarSeed), 96, false); err != nil {
		return p, err
	}
	if p.CoverURL, err = l.ImageURL(image.Random(), 720, 240, false); err != nil {
		return p, err
	}
	p.Published = l.DateStringWithin(date.Window{Magnitude: 3, Unit: date.Month}, date.Styled(date.DateLong, date.TimeOmitted))

	paragraphs, err := l.Paragraphs(compose.Between(2, 3), "\n")
	if err != nil {
		return p, err
	}
	p.Paragraphs = strings.Split(paragraphs, "\n")

	keywords, err := l.KeywordsOf(compose.Between(3, 6))
	if err != nil {
		return p, err
	}
	p.Keywords = strings.Split(keywords, ", ")

	accent := l.Color(color.System())
	p.Accent = accent.Hex()
	if p.QRCode, err = qrcode.DataURI(p.CoverURL, qrcode.WithSize(128), qrcode.WithForeground(accent)); err != nil {
		return p, err
	}
	p.Kinds = Kinds()
	return p, nil
}
