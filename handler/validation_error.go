package handler

import (
	"net/url"
	"slices"
	"strings"
)

// ValidationError collects per-field input problems. Its presence anywhere in
// an error chain makes the normalizer answer 400.
type ValidationError url.Values

// NewValidationError creates an empty ValidationError.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// FieldError is a shortcut for a ValidationError with a single message.
func FieldError(field, message string) ValidationError {
	v := NewValidationError()
	v.Add(field, message)
	return v
}

// Error lists the first message of every field, sorted by field name.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if msg := e.Get(field); msg != "" {
			parts = append(parts, field+": "+msg)
		}
	}
	return "validation error: " + strings.Join(parts, ", ")
}

// Add appends a message for field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has reports whether field has any messages.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty reports whether no field has been flagged.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
