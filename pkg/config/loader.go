package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/lorem/pkg/cache"
)

type loadedConfigs = cache.Memo[reflect.Type, any]

var (
	loaded atomic.Pointer[loadedConfigs]

	defaultEnvLoaded sync.Once
)

func init() {
	loaded.Store(cache.NewMemo[reflect.Type, any]())
}

// Load parses environment variables into v. Each configuration type is parsed
// once; later calls for the same type copy the cached value.
//
// The default .env file in the working directory is read on first use if it
// exists. Variables already present in the environment win over file values.
//
// Example:
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//		Seed uint64 `env:"LOREM_SEED"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// a missing .env is fine
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	cached, err := loaded.Load().GetOrCreate(reflect.TypeFor[T](), func() (any, error) {
		var fresh T
		if err := Parse(&fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	})
	if err != nil {
		return err
	}

	*v = cached.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Parse fills v from the current environment without touching the cache.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadEnv reads the named .env files into the process environment.
// Files named earlier win for keys defined in several files.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops every cached configuration. It is meant for tests.
func Reset() {
	loaded.Store(cache.NewMemo[reflect.Type, any]())
}
