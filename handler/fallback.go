package handler

import (
	"net/http"
	"runtime/debug"
)

// NotFound forwards ErrNotFound into the error pipeline for unmatched routes.
func NotFound(eh ErrorHandler[Context]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eh(NewContext(w, r), ErrNotFound)
	}
}

// MethodNotAllowed forwards ErrMethodNotAllowed into the error pipeline.
func MethodNotAllowed(eh ErrorHandler[Context]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eh(NewContext(w, r), ErrMethodNotAllowed)
	}
}

// Recover turns a panic in next into a *PanicError handed to eh.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recover(eh ErrorHandler[Context]) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				eh(NewContext(w, r), &PanicError{Value: rec, stack: debug.Stack()})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
