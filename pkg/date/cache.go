package date

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/lorem/pkg/cache"
	"github.com/dmitrymomot/lorem/pkg/logger"
)

type cacheKey struct {
	kind kind
	key  string
}

// Cache builds formatters once per distinct format and shares them.
// It is safe for concurrent use.
type Cache struct {
	items  *cache.Memo[cacheKey, Formatter]
	now    func() time.Time
	logger *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithClock sets the clock used by relative formatters.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger used to report render failures.
func WithLogger(l *slog.Logger) CacheOption {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCache creates an empty formatter cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		items:  cache.NewMemo[cacheKey, Formatter](),
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var formatters = sync.OnceValue(func() *Cache { return NewCache() })

// Formatters returns the process-wide formatter cache.
func Formatters() *Cache {
	return formatters()
}

// Formatter returns the formatter for f. Non-custom formats are built on
// first use and the same instance is returned afterwards.
func (c *Cache) Formatter(f Format) (Formatter, error) {
	if !f.Cacheable() {
		return newFormatter(f, c.now)
	}
	return c.items.GetOrCreate(cacheKey{kind: f.kind, key: f.Key()}, func() (Formatter, error) {
		return newFormatter(f, c.now)
	})
}

// Render formats t with f. It returns "" when the formatter cannot be built
// or fails to render.
func (c *Cache) Render(t time.Time, f Format) string {
	fm, err := c.Formatter(f)
	if err != nil {
		c.logger.Debug("date formatter unavailable", slog.String("format", f.String()), logger.Error(err))
		return ""
	}
	s, err := fm.Format(t)
	if err != nil {
		c.logger.Debug("date render failed", slog.String("format", f.String()), logger.Error(err))
		return ""
	}
	return s
}

// Len returns the number of cached formatters.
func (c *Cache) Len() int {
	return c.items.Len()
}
