package e2etest

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/fitevolve/fitevolve/internal/logging"
)

const (
	// LogAddrKey is the log attribute carrying the address the server listens on.
	LogAddrKey = "addr"
	// LogDsnKey is the log attribute carrying the read-write SQLite DSN.
	LogDsnKey = "sqlDsn"

	defaultReadyPath = "/api/healthy"
)

// RunFunc starts a FitEvolve server and blocks until ctx is done. lookupEnv has the signature of [os.LookupEnv].
type RunFunc func(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error

// Server is a FitEvolve server running in the background of a test.
type Server struct {
	url    string
	client *Client
	db     *sql.DB
	stop   context.CancelCauseFunc
	exited chan struct{}
}

type serverConfig struct {
	readyPath string
}

// Option customises StartServer.
type Option func(*serverConfig)

// WithReadyPath overrides the path polled until the server responds.
func WithReadyPath(path string) Option {
	return func(c *serverConfig) { c.readyPath = path }
}

// attrCapture records the first value logged for each watched attribute key.
type attrCapture struct {
	mu     sync.Mutex
	values map[string]string
	found  chan struct{}
}

func newAttrCapture(keys ...string) *attrCapture {
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		values[k] = ""
	}
	return &attrCapture{values: values, found: make(chan struct{})}
}

func (c *attrCapture) replaceAttr(_ []string, a slog.Attr) slog.Attr {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, watched := c.values[a.Key]; !watched || v != "" {
		return a
	}
	c.values[a.Key] = a.Value.String()
	for _, v := range c.values {
		if v == "" {
			return a
		}
	}
	close(c.found)
	return a
}

func (c *attrCapture) get(key string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[key]
}

// StartServer runs the server in the background and returns once it answers HTTP requests. The server is shut down
// when the test finishes.
//
// Server logs go to logSink, usually a testhelpers.NewWriter. run must log the listen address under LogAddrKey and the
// database DSN under LogDsnKey.
func StartServer(
	t *testing.T,
	logSink io.Writer,
	lookupEnv func(string) (string, bool),
	run RunFunc,
	opts ...Option,
) (*Server, error) {
	cfg := serverConfig{readyPath: defaultReadyPath}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, stop := context.WithCancelCause(t.Context())
	exited := make(chan struct{})
	capture := newAttrCapture(LogAddrKey, LogDsnKey)
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: capture.replaceAttr,
	})))

	go func() {
		defer close(exited)
		if err := run(ctx, logger, lookupEnv); err != nil {
			stop(err)
		}
	}()
	abort := func(err error) (*Server, error) {
		stop(nil)
		<-exited
		return nil, err
	}

	select {
	case <-ctx.Done():
		return abort(fmt.Errorf("server exited before listening: %w", context.Cause(ctx)))
	case <-capture.found:
	}

	serverURL := "http://" + capture.get(LogAddrKey)
	client, err := NewClient(serverURL)
	if err != nil {
		return abort(fmt.Errorf("new client: %w", err))
	}
	if err = client.WaitForReady(ctx, cfg.readyPath); err != nil {
		return abort(fmt.Errorf("wait for %s: %w", cfg.readyPath, err))
	}
	db, err := sql.Open("sqlite3", capture.get(LogDsnKey))
	if err != nil {
		return abort(fmt.Errorf("open database: %w", err))
	}

	server := &Server{url: serverURL, client: client, db: db, stop: stop, exited: exited}
	t.Cleanup(server.Shutdown)
	return server, nil
}

// Client is an HTTP client with a cookie jar pointed at the server.
func (s *Server) Client() *Client {
	return s.client
}

func (s *Server) URL() string {
	return s.url
}

// DB is a connection to the server's database for inspecting the stored records.
func (s *Server) DB() *sql.DB {
	return s.db
}

// Shutdown stops the server and waits for run to return. It is safe to call more than once.
func (s *Server) Shutdown() {
	s.stop(nil)
	<-s.exited
	_ = s.db.Close()
}
