package testhelpers

import (
	"bytes"
	"io"
	"sync"
	"testing"
)

// Writer forwards complete lines to t.Log so that server and service logs only show up for failing tests.
type Writer struct {
	tb      testing.TB
	mu      sync.Mutex
	pending []byte
	closed  bool
}

// NewWriter returns a Writer bound to tb. Writing after the test has finished panics, which usually means a server
// outlived its test.
func NewWriter(tb testing.TB) io.Writer {
	w := &Writer{tb: tb}
	tb.Cleanup(w.close)
	return w
}

// Write logs every complete line in p and keeps a trailing partial line until the next newline.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		panic("testhelpers: log written after the test finished, is the server shut down in t.Cleanup?")
	}
	w.pending = append(w.pending, p...)
	for {
		line, rest, found := bytes.Cut(w.pending, []byte{'\n'})
		if !found {
			break
		}
		if len(line) > 0 {
			w.tb.Log(string(line))
		}
		w.pending = rest
	}
	if len(w.pending) == 0 {
		w.pending = nil
	}
	return len(p), nil
}

func (w *Writer) close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) > 0 {
		w.tb.Log(string(w.pending))
	}
	w.pending = nil
	w.closed = true
}
