package binder

import "errors"

var (
	// ErrInvalidBody marks any request body that could not be decoded.
	ErrInvalidBody = errors.New("invalid request body")
	// ErrBodyTooLarge is returned, wrapped with ErrInvalidBody, when the body exceeds the size limit.
	ErrBodyTooLarge = errors.New("request body too large")
)
