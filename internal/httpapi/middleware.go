package httpapi

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/daysbetween/internal/ctxlog"
	"golang.org/x/time/rate"
)

const (
	requestIDHeader = "X-Request-ID"
	clientTTL       = 3 * time.Minute
	sweepInterval   = time.Minute
)

// recoverPanic turns a panic in any downstream handler into a 500.
func (s *Server) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				s.serverErrorResponse(w, r, fmt.Errorf("%v", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requestID tags every request with an ID, reusing the caller's
// X-Request-ID when present, and attaches a logger carrying it.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		logger := s.logger.With("request_id", id)
		logger.Debug("Request received.", "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr)
		ctx := ctxlog.WithLogger(r.Context(), logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// rateLimit applies a token bucket per client IP. Entries idle for longer
// than clientTTL are evicted at most once per sweepInterval.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	if s.limit == rate.Inf {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}

		if !s.allow(ip, time.Now()) {
			s.rateLimitExceededResponse(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) allow(ip string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > sweepInterval {
		for addr, c := range s.clients {
			if now.Sub(c.lastSeen) > clientTTL {
				delete(s.clients, addr)
			}
		}
		s.lastSweep = now
	}

	c, found := s.clients[ip]
	if !found {
		c = &client{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}
