package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/synctest"
	"time"

	"github.com/fitevolve/fitevolve/internal/contexthelpers"
	"github.com/fitevolve/fitevolve/internal/errors"
)

type timeoutResponseWriter struct {
	httptest.ResponseRecorder
}

func newTimeoutResponseWriter() *timeoutResponseWriter {
	return &timeoutResponseWriter{
		ResponseRecorder: *httptest.NewRecorder(),
	}
}

// SetWriteDeadline is needed to not get "feature not implemented" error.
func (w *timeoutResponseWriter) SetWriteDeadline(_ time.Time) error {
	return nil
}

func newTestApplication() *application {
	return &application{ //nolint:exhaustruct // this is a test
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		userID: "test-user",
	}
}

func Test_application_timeout(t *testing.T) {
	tests := []struct {
		name     string
		sleep    time.Duration
		timesOut bool
	}{
		{name: "completes within timeout", sleep: 500 * time.Millisecond, timesOut: false},
		{name: "times out", sleep: 3 * time.Second, timesOut: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				app := newTestApplication()
				handler := app.timeout(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					select {
					case <-time.After(tt.sleep):
						w.WriteHeader(http.StatusOK)
					case <-r.Context().Done():
					}
				}))

				req := httptest.NewRequest(http.MethodGet, "/api/healthy", nil)
				w := newTimeoutResponseWriter()

				handler.ServeHTTP(w, req)

				if tt.timesOut {
					if w.Code != http.StatusServiceUnavailable {
						t.Errorf("Expected status 503 on timeout, got %d", w.Code)
					}
					if !strings.Contains(w.Body.String(), "timed out") {
						t.Errorf("Expected timeout message in response body, got: %s", w.Body.String())
					}
				} else if w.Code != http.StatusOK {
					t.Errorf("Expected status 200, got %d", w.Code)
				}
			})
		})
	}
}

func Test_application_commonContext(t *testing.T) {
	app := newTestApplication()
	var gotUser, gotPath string
	handler := app.commonContext(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotUser = contexthelpers.UserID(r.Context())
		gotPath = contexthelpers.CurrentPath(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	if gotUser != "test-user" {
		t.Errorf("user id = %q, want %q", gotUser, "test-user")
	}
	if gotPath != "/api/profile" {
		t.Errorf("current path = %q, want %q", gotPath, "/api/profile")
	}
}

func Test_application_recoverPanic(t *testing.T) {
	app := newTestApplication()
	handler := app.logAndTraceRequest(app.recoverPanic(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(errors.New("boom"))
	})))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/workout", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if body := w.Body.String(); !strings.Contains(body, "internal server error") || !strings.Contains(body, `"traceId":"`) {
		t.Errorf("body = %q, want JSON error with trace id", body)
	}
}

func Test_secureHeaders(t *testing.T) {
	var nonce string
	handler := secureHeaders(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		nonce = contexthelpers.CSPNonce(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if nonce == "" {
		t.Fatal("expected a CSP nonce in the request context")
	}
	if csp := w.Header().Get("Content-Security-Policy"); !strings.Contains(csp, "'nonce-"+nonce+"'") {
		t.Errorf("Content-Security-Policy %q does not carry the nonce", csp)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "deny" {
		t.Errorf("X-Frame-Options = %q, want deny", got)
	}
}
