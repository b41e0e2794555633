package demo

import "github.com/dmitrymomot/lorem/pkg/httpserver"

// Config is loaded from the environment with pkg/config.
type Config struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	Seed         string `env:"LOREM_SEED"`
	Locale       string `env:"LOREM_LOCALE" envDefault:"en"`
	ImageBaseURL string `env:"LOREM_IMAGE_BASE_URL" envDefault:"https://picsum.photos"`
	LexiconDir   string `env:"LOREM_LEXICON_DIR"`

	HTTP httpserver.Config
}
