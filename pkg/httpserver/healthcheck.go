package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/lorem/pkg/logger"
)

// Check reports whether a dependency is ready.
type Check func(context.Context) error

// HealthCheckHandler serves liveness and readiness probes.
//
//   - Liveness: with no checks the handler returns 200 OK with body "ALIVE".
//   - Readiness: every check runs with the request context; the handler
//     returns 200 "READY" when all pass and 503 "NOT_READY" otherwise.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Nop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
