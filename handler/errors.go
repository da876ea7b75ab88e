package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error that carries its own response status and message.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError. An empty message defaults to the status text.
func NewHTTPError(code int, message string) HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	return HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest       = NewHTTPError(http.StatusBadRequest, "")
	ErrUnauthorized     = NewHTTPError(http.StatusUnauthorized, "")
	ErrNotFound         = NewHTTPError(http.StatusNotFound, "")
	ErrMethodNotAllowed = NewHTTPError(http.StatusMethodNotAllowed, "")
	ErrInternal         = NewHTTPError(http.StatusInternalServerError, "")
)

// PanicError is a recovered panic together with the stack it was raised on.
type PanicError struct {
	Value any
	stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Stack returns the goroutine stack captured at recovery.
func (e *PanicError) Stack() string {
	return string(e.stack)
}

// errorChain renders err and everything it wraps, one error per line.
func errorChain(err error) string {
	var b strings.Builder
	var walk func(err error, depth int)
	walk = func(err error, depth int) {
		if err == nil {
			return
		}
		fmt.Fprintf(&b, "%s%T: %s\n", strings.Repeat("  ", depth), err, err.Error())
		switch x := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range x.Unwrap() {
				walk(e, depth+1)
			}
		case interface{ Unwrap() error }:
			walk(x.Unwrap(), depth+1)
		}
	}
	walk(err, 0)
	return strings.TrimSuffix(b.String(), "\n")
}
