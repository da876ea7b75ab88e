package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// Option configures the JSON binder.
type Option func(*jsonBinder)

// WithMaxSize overrides DefaultMaxJSONSize.
func WithMaxSize(n int64) Option {
	return func(b *jsonBinder) {
		if n > 0 {
			b.maxSize = n
		}
	}
}

type jsonBinder struct {
	maxSize int64
}

// JSON returns a binder decoding a JSON object body into v.
//
// Requests with an empty body or a non-JSON content type bind nothing and
// leave v at its zero value, so handlers can answer missing input themselves.
// Unknown fields are ignored. Malformed JSON, trailing data and oversized
// bodies fail with an error wrapping ErrInvalidBody.
func JSON(opts ...Option) func(r *http.Request, v any) error {
	b := &jsonBinder{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(b)
	}

	return func(r *http.Request, v any) error {
		if r.Body == nil || r.Body == http.NoBody || !isJSON(r.Header.Get("Content-Type")) {
			return nil
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, b.maxSize+1))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		if int64(len(body)) > b.maxSize {
			return fmt.Errorf("%w: %w", ErrInvalidBody, ErrBodyTooLarge)
		}
		if len(body) == 0 {
			return nil
		}

		if err := json.Unmarshal(body, v); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			switch {
			case errors.As(err, &syntaxErr):
				return fmt.Errorf("%w: malformed JSON at offset %d", ErrInvalidBody, syntaxErr.Offset)
			case errors.As(err, &typeErr):
				return fmt.Errorf("%w: field %q must be %s", ErrInvalidBody, typeErr.Field, typeErr.Type)
			default:
				return fmt.Errorf("%w: %w", ErrInvalidBody, err)
			}
		}
		return nil
	}
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}
