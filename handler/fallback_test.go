package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authgate/handler"
	"github.com/dmitrymomot/authgate/pkg/environment"
)

func TestNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		env       environment.Environment
		wantStack bool
	}{
		{name: "production", env: environment.Production},
		{name: "development", env: environment.Development, wantStack: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eh := handler.NewErrorHandler(nil, handler.WithEnvironment(tt.env))
			rec := httptest.NewRecorder()
			handler.NotFound(eh)(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)

			var body map[string]map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Not Found", body["error"]["message"])
			assert.EqualValues(t, 404, body["error"]["status"])
			_, hasStack := body["error"]["stack"]
			assert.Equal(t, tt.wantStack, hasStack)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	handler.MethodNotAllowed(handler.NewErrorHandler(nil))(rec, httptest.NewRequest(http.MethodDelete, "/signin", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Method Not Allowed","status":405}}`, rec.Body.String())
}

func TestRecover(t *testing.T) {
	t.Parallel()

	eh := handler.NewErrorHandler(nil, handler.WithEnvironment(environment.Development))

	t.Run("panic value", func(t *testing.T) {
		t.Parallel()

		h := handler.Recover(eh)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("kaboom")
		}))
		rec := httptest.NewRecorder()
		require.NotPanics(t, func() { h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil)) })

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var body struct {
			Error handler.ErrorDetail `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "panic: kaboom", body.Error.Message)
		assert.Contains(t, body.Error.Stack, "goroutine")
	})

	t.Run("panic error keeps its kind", func(t *testing.T) {
		t.Parallel()

		eh := handler.NewErrorHandler(nil, handler.WithStatus(errTokenKind, http.StatusUnauthorized))
		h := handler.Recover(eh)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(errTokenKind)
		}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		t.Parallel()

		h := handler.Recover(eh)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))
		assert.PanicsWithError(t, http.ErrAbortHandler.Error(), func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}

func TestPanicError(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	err := &handler.PanicError{Value: cause}
	assert.Equal(t, "panic: cause", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, err.Stack())
}
