package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/dmitrymomot/lorem/pkg/logger"
)

// Server serves one handler until its context is cancelled, then shuts down
// gracefully within Config.ShutdownTimeout.
type Server struct {
	cfg    Config
	logger *slog.Logger
	onStop []func()

	mu  sync.Mutex
	srv *http.Server
	ln  net.Listener
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for lifecycle events. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStopHook registers a callback that runs after the server shuts down.
func WithStopHook(h func()) Option {
	return func(s *Server) {
		if h != nil {
			s.onStop = append(s.onStop, h)
		}
	}
}

// New returns a Server for cfg. Zero fields take DefaultConfig values.
func New(cfg Config, opts ...Option) *Server {
	s := &Server{cfg: cfg.withDefaults(), logger: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the effective configuration.
func (s *Server) Config() Config { return s.cfg }

// Addr returns the bound address once the server is listening, or "".
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Run listens on Config.Addr and serves handler until ctx is done.
// Listen and serve failures are wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	return s.Serve(ctx, ln, handler)
}

// Serve serves handler on ln until ctx is done. It takes ownership of ln.
// A Server serves at most once.
func (s *Server) Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		_ = ln.Close()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	s.srv, s.ln = srv, ln
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "http server started", slog.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.shutdown(context.WithoutCancel(ctx))
		if serveErr := <-errCh; serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			runErr = errors.Join(runErr, ErrStart, serveErr)
		}
	case serveErr := <-errCh:
		if !errors.Is(serveErr, http.ErrServerClosed) {
			runErr = errors.Join(ErrStart, serveErr)
		}
	}

	for _, h := range s.onStop {
		h()
	}
	if runErr != nil {
		s.logger.ErrorContext(ctx, "http server stopped", logger.Error(runErr))
		return runErr
	}
	s.logger.InfoContext(ctx, "http server stopped")
	return nil
}

func (s *Server) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
