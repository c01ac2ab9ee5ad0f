// Package apperr defines the error kinds surfaced by the config store, the
// template registry and the project initializer.
//
// Every failure carries a Kind plus enough context (file path, template name)
// to render a single-line message. Callers match kinds with errors.Is against
// the sentinel values, or with KindOf.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind string

const (
	// KindNotConfigured means no config file has been written yet.
	KindNotConfigured Kind = "NOT_CONFIGURED"
	// KindParse means the config file does not match the expected schema.
	KindParse Kind = "PARSE_ERROR"
	// KindIO covers any filesystem failure: read, write, mkdir, copy, delete.
	KindIO Kind = "IO_ERROR"
	// KindNotFound means a referenced template, source file or output is missing.
	KindNotFound Kind = "NOT_FOUND"
	// KindInvalidFormat means the install source lacks the .md extension or a
	// template name is not a single path element.
	KindInvalidFormat Kind = "INVALID_FORMAT"
	// KindTooLarge means the install source exceeds the size limit.
	KindTooLarge Kind = "TOO_LARGE"
	// KindUnsupportedFileType means the install source is a symlink or not a regular file.
	KindUnsupportedFileType Kind = "UNSUPPORTED_FILE_TYPE"
	// KindAlreadyExists means the destination template name is taken.
	KindAlreadyExists Kind = "ALREADY_EXISTS"
)

// Sentinels for errors.Is.
var (
	ErrNotConfigured       = &Error{Kind: KindNotConfigured}
	ErrParse               = &Error{Kind: KindParse}
	ErrIO                  = &Error{Kind: KindIO}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrInvalidFormat       = &Error{Kind: KindInvalidFormat}
	ErrTooLarge            = &Error{Kind: KindTooLarge}
	ErrUnsupportedFileType = &Error{Kind: KindUnsupportedFileType}
	ErrAlreadyExists       = &Error{Kind: KindAlreadyExists}
)

// Error is the structured error type returned by the core packages.
type Error struct {
	Kind    Kind
	Message string
	// Path is the file or directory involved, if any.
	Path string
	// Name is the template name involved, if any.
	Name  string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// New creates an error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithPath records the path involved and returns the error for chaining.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// WithName records the template name involved and returns the error for chaining.
func (e *Error) WithName(name string) *Error {
	e.Name = name
	return e
}

// IO wraps a filesystem failure.
func IO(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindIO, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Parse wraps a config decoding or schema failure.
func Parse(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}
