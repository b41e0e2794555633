package lexicon

import (
	"bufio"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/lorem/pkg/logger"
)

//go:embed data/*.txt
var embedded embed.FS

// Store holds one Lexicon per category.
type Store struct {
	lexicons map[Category]Lexicon
}

// Option configures a Store.
type Option func(*options)

type options struct {
	log     *slog.Logger
	overlay fs.FS
}

// WithLogger sets the logger used to report unavailable categories.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithOverlay reads categories from fsys first; categories missing there
// fall back to the base filesystem.
func WithOverlay(fsys fs.FS) Option {
	return func(o *options) { o.overlay = fsys }
}

// New reads every category from fsys.
func New(fsys fs.FS, opts ...Option) *Store {
	o := &options{log: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	log := o.log.With(logger.Component("lexicon"))

	s := &Store{lexicons: make(map[Category]Lexicon, len(Categories))}
	for _, c := range Categories {
		entries, err := readOverlay(o.overlay, c)
		if err != nil {
			entries, err = read(fsys, c)
		}
		if err != nil {
			log.Warn("lexicon unavailable, using empty list",
				logger.Category(c.String()),
				logger.Path(c.filename()),
				logger.Error(err),
			)
		} else {
			log.Debug("lexicon loaded", logger.Category(c.String()), logger.Entries(len(entries)))
		}
		s.lexicons[c] = Lexicon{category: c, entries: entries}
	}

	return s
}

// Embedded returns a new Store over the lists shipped with the package.
func Embedded(opts ...Option) *Store {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// embed paths are fixed at compile time
		panic(err)
	}
	return New(sub, opts...)
}

var defaultStore = sync.OnceValue(func() *Store { return Embedded() })

// Default returns the process-wide Store over the embedded lists.
func Default() *Store {
	return defaultStore()
}

// Lexicon returns the lexicon for c; unknown categories are empty.
func (s *Store) Lexicon(c Category) Lexicon {
	if l, ok := s.lexicons[c]; ok {
		return l
	}
	return Lexicon{category: c}
}

// Load returns a copy of the entries for c.
func (s *Store) Load(c Category) []string {
	return s.Lexicon(c).Values()
}

func readOverlay(fsys fs.FS, c Category) ([]string, error) {
	if fsys == nil {
		return nil, fs.ErrNotExist
	}
	return read(fsys, c)
}

func read(fsys fs.FS, c Category) ([]string, error) {
	if fsys == nil {
		return nil, fs.ErrNotExist
	}
	f, err := fsys.Open(c.filename())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimSuffix(sc.Text(), "\r"))
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.Join(ErrEmptyLexicon, errors.New(c.filename()+" has no entries"))
	}
	return entries, nil
}
