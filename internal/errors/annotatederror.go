// Package errors is a drop-in replacement for the standard library errors package that annotates errors with
// [slog.Attr] and the source location where they were wrapped.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
)

// New is [errors.New] from the standard library.
func New(text string) error {
	return stderrors.New(text) //nolint:err113 // this is the constructor.
}

// Is is [errors.Is] from the standard library.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is [errors.As] from the standard library.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap is [errors.Unwrap] from the standard library.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join is [errors.Join] from the standard library.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

type sentinelError struct {
	msg string
}

func (e *sentinelError) Error() string {
	return e.msg
}

// NewSentinel creates an error meant to be compared with [Is]. It carries no source location.
func NewSentinel(msg string) error {
	return &sentinelError{msg: msg}
}

type annotatedError struct {
	msg   string
	cause error
	attrs []slog.Attr
	pc    uintptr
	// source overrides pc when the location is known upfront, e.g. for panics.
	source string
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// Wrap annotates err with msg, the caller's source location, and optional attributes that are emitted by
// [SlogError]. Wrapping a nil error returns nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:]) //nolint:mnd // skip runtime.Callers and Wrap.
	return &annotatedError{msg: msg, cause: err, attrs: attrs, pc: pcs[0], source: ""}
}

// DecoratePanic turns a recovered panic value into an error pointing at the line that panicked.
// It must be called from the deferred function that called recover.
func DecoratePanic(excp any) error {
	if excp == nil {
		return nil
	}
	var pcs [32]uintptr
	n := runtime.Callers(1, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var (
		source   string
		inPanic  bool
		frame    runtime.Frame
		more     = true
		panicMsg = fmt.Sprintf("panic: %v", excp)
	)
	for more {
		frame, more = frames.Next()
		if inPanic {
			source = filepath.Base(frame.File) + ":" + strconv.Itoa(frame.Line)
			break
		}
		if frame.Function == "runtime.gopanic" {
			inPanic = true
		}
	}
	var cause error
	if err, ok := excp.(error); ok {
		cause = err
		panicMsg = "panic"
	}
	return &annotatedError{msg: panicMsg, cause: cause, attrs: nil, pc: 0, source: source}
}

// SlogError converts err into a structured log attribute.
//
// The attribute contains the error message, the source location of the outermost annotation and all the
// annotations found in the error chain under the "annotations" group.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}

	var (
		annotations []any
		source      string
	)
	walk(err, func(ae *annotatedError) {
		if source == "" {
			source = ae.source
		}
		if source == "" && ae.pc != 0 {
			source = formatPC(ae.pc)
		}
		for _, attr := range ae.attrs {
			annotations = append(annotations, attr)
		}
	})

	attrs := []any{slog.String("message", err.Error())}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}
	return slog.Group("error", attrs...)
}

// walk visits every annotated error in the chain, including the branches of joined errors.
func walk(err error, visit func(*annotatedError)) {
	for err != nil {
		if ae, ok := err.(*annotatedError); ok { //nolint:errorlint // walking the chain manually.
			visit(ae)
		}
		if joined, ok := err.(interface{ Unwrap() []error }); ok { //nolint:errorlint // same as above.
			for _, e := range joined.Unwrap() {
				walk(e, visit)
			}
			return
		}
		err = stderrors.Unwrap(err)
	}
}

func formatPC(pc uintptr) string {
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.File == "" {
		return ""
	}
	return filepath.Base(frame.File) + ":" + strconv.Itoa(frame.Line)
}
