// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, health-check handlers and slog lifecycle logging.
//
// Run blocks until the context is cancelled and then shuts the server down
// with http.Server.Shutdown within Config.ShutdownTimeout. Signal handling is
// left to the caller, usually through signal.NotifyContext:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Config carries env tags (HTTP_ADDR, HTTP_READ_TIMEOUT, ...) so it can be
// loaded with pkg/config. Listen and serve errors are wrapped with ErrStart,
// shutdown errors with ErrShutdown.
package httpserver
