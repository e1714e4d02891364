package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/daysbetween/internal/calendar"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts Options) (*Server, *bytes.Buffer) {
	t.Helper()
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(calendar.Default, logger, opts), logs
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&got))
	return got
}

func TestHandler_Days(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "query parameters",
			method:     http.MethodGet,
			target:     "/v1/days?from=2/6/1983&to=22/6/1983",
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"days": float64(19), "from": "2/6/1983", "to": "22/6/1983"},
		},
		{
			name:       "json body",
			method:     http.MethodPost,
			target:     "/v1/days",
			body:       `{"dates": ["8/11/2020", "8/11/1990"]}`,
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"days": float64(10957), "from": "8/11/2020", "to": "8/11/1990"},
		},
		{
			name:       "date out of range",
			method:     http.MethodGet,
			target:     "/v1/days?from=4/5/1852&to=10/12/1938",
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   map[string]any{"error": "could not parse date(s): 4/5/1852"},
		},
		{
			name:       "wrong number of dates",
			method:     http.MethodPost,
			target:     "/v1/days",
			body:       `{"dates": ["1/1/2000", "2/1/2000", "3/1/2000"]}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   map[string]any{"error": "found 3 date(s), exactly two dates are required"},
		},
		{
			name:       "missing query parameter",
			method:     http.MethodGet,
			target:     "/v1/days?from=1/1/2000",
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "the from and to query parameters are required"},
		},
		{
			name:       "empty body",
			method:     http.MethodPost,
			target:     "/v1/days",
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "body must not be empty"},
		},
		{
			name:       "two json values",
			method:     http.MethodPost,
			target:     "/v1/days",
			body:       `{"dates": []}{"dates": []}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "body must only contain a single JSON value"},
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			target:     "/v2/weeks",
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]any{"error": "the requested resource could not be found"},
		},
		{
			name:       "wrong method",
			method:     http.MethodDelete,
			target:     "/v1/days",
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   map[string]any{"error": "the DELETE method is not supported for this resource"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			srv, _ := newTestServer(t, Options{})
			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			// --- Act ---
			srv.Handler().ServeHTTP(rec, req)

			// --- Assert ---
			require.Equal(t, tc.wantStatus, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if diff := cmp.Diff(tc.wantBody, decodeBody(t, rec.Body)); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHandler_UnknownJSONField(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, Options{})
	req := httptest.NewRequest(http.MethodPost, "/v1/days", strings.NewReader(`{"from": "1/1/2000"}`))
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeBody(t, rec.Body)["error"], "unknown field")
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, Options{})
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK\n", rec.Body.String())
}

func TestHandler_RequestID(t *testing.T) {
	t.Parallel()

	srv, logs := newTestServer(t, Options{})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Len(t, rec.Header().Get("X-Request-ID"), 36)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		require.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
		require.Contains(t, logs.String(), "request_id=abc-123")
	})
}

func TestHandler_RateLimit(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, Options{RateLimit: 0.001, Burst: 2})
	handler := srv.Handler()

	var codes []int
	for range 3 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		codes = append(codes, rec.Code)
	}

	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodGet, "/health", nil)
	other.RemoteAddr = "198.51.100.7:4000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	require.Equal(t, http.StatusOK, rec.Code, "limits are tracked per client IP")
}

func TestAllow_EvictsIdleClients(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, Options{RateLimit: 1, Burst: 1})
	start := time.Now()

	require.True(t, srv.allow("192.0.2.1", start))
	require.True(t, srv.allow("192.0.2.2", start.Add(2*time.Minute)))
	require.True(t, srv.allow("192.0.2.2", start.Add(4*time.Minute)))

	srv.mu.Lock()
	defer srv.mu.Unlock()
	require.NotContains(t, srv.clients, "192.0.2.1")
	require.Contains(t, srv.clients, "192.0.2.2")
}

func TestRecoverPanic(t *testing.T) {
	t.Parallel()

	srv, logs := newTestServer(t, Options{})
	handler := srv.recoverPanic(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "close", rec.Header().Get("Connection"))
	require.Contains(t, logs.String(), "boom")
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	srv, _ := newTestServer(t, Options{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	// --- Act ---
	resp, err := http.Get("http://" + ln.Addr().String() + "/v1/days?from=1/1/2021&to=2/2/2021")
	require.NoError(t, err)
	body := decodeBody(t, resp.Body)
	resp.Body.Close()
	cancel()

	// --- Assert ---
	require.Equal(t, float64(31), body["days"])
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}
