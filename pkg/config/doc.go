// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` in the working directory is read once, on first Load,
//     when present. LoadEnv reads explicitly named files.
//   - Structs are described with `env` / `envDefault` field tags.
//   - Each configuration type is parsed once and cached for the lifetime of
//     the process; failed parses are not cached.
//
// # Usage
//
//	type Config struct {
//		Env  string `env:"APP_ENV" envDefault:"development"`
//		Seed uint64 `env:"LOREM_SEED"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatalf("parsing env: %v", err)
//	}
//
// Parse bypasses the cache and Reset clears it, which is handy in tests.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – a named .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load` or `Parse`.
package config
