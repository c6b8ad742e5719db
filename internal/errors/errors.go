// Package errors defines Verdant's structured error type for the
// recoverable error surface: configuration, theme and asset loading, and
// request handling. Programming errors inside the emission passes are
// panics by design and never pass through here; the server maps them to a
// generic 500 at its recovery boundary.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes an error.
type Kind string

const (
	KindConfig   Kind = "config"
	KindTheme    Kind = "theme"
	KindIO       Kind = "io"
	KindRender   Kind = "render"
	KindInternal Kind = "internal"
)

// Error is a structured error with a kind, stable code, and context.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	var parts []string
	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}
	parts = append(parts, e.Message)
	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}
	return result
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches on kind and code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind && e.Code == t.Code
	}
	return false
}

// WithContext attaches a context value and returns the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string, cause error) *Error {
	return &Error{Kind: KindConfig, Code: code, Message: message, Cause: cause}
}

// NewThemeError creates a theme loading error.
func NewThemeError(code, message string, cause error) *Error {
	return &Error{Kind: KindTheme, Code: code, Message: message, Cause: cause}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *Error {
	return &Error{Kind: KindIO, Code: code, Message: message, Cause: cause}
}

// NewRenderError creates a request rendering error.
func NewRenderError(code, message string, cause error) *Error {
	return &Error{Kind: KindRender, Code: code, Message: message, Cause: cause}
}
