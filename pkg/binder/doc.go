// Package binder decodes HTTP request bodies into typed request values for
// handler.Wrap.
//
//	handler.Wrap(h.Signup, handler.WithBinders[handler.Context, auth.Credentials](binder.JSON()))
//
// Decoding failures wrap ErrInvalidBody so the error normalizer can map them
// to 400 with handler.WithStatus.
package binder
