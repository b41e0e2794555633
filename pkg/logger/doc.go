// Package logger builds the structured slog.Logger used by the lorem
// command and demo server, and provides attribute helpers so that keys stay
// consistent across packages.
//
// New assembles a text or JSON slog handler from functional options and wraps
// it with a decorator that injects values carried by a context.Context (for
// example the request id set by the demo router) into every record.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "lorem"),
//		logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	logger.SetAsDefault(log)
//
//	log.Warn("lexicon unavailable", logger.Category("words"), logger.Error(err))
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
