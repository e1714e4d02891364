package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/specialistvlad/daysbetween/internal/calendar"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	RateLimit float64 // requests per second per client IP
	Burst     int
}

// Server serves the API for one calendar.
type Server struct {
	cal    calendar.Calendar
	logger *slog.Logger
	limit  rate.Limit
	burst  int

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

// client holds a per-IP rate limiter and the time it was last seen.
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New creates a server. A non-positive rate limit disables limiting.
func New(cal calendar.Calendar, logger *slog.Logger, opts Options) *Server {
	limit := rate.Limit(opts.RateLimit)
	if opts.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}
	return &Server{
		cal:     cal,
		logger:  logger,
		limit:   limit,
		burst:   burst,
		clients: make(map[string]*client),
	}
}

// Handler returns the routes wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(s.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(s.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/health", s.healthHandler)
	router.HandlerFunc(http.MethodGet, "/v1/days", s.daysQueryHandler)
	router.HandlerFunc(http.MethodPost, "/v1/days", s.daysBodyHandler)

	return s.recoverPanic(s.requestID(s.rateLimit(router)))
}

// ListenAndServe serves on the given TCP port until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server starting.", "address", ln.Addr().String(), "range", s.cal.String())
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	s.logger.Debug("HTTP server shut down gracefully.")
	return nil
}
