package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrymomot/authgate/handler"
)

// Credentials is the signup and signin request body. Extra fields are ignored.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by both endpoints on success.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries the direct 400 and 401 answers.
type MessageResponse struct {
	Message string `json:"message"`
}

// Authenticator is what the endpoints need from Service.
type Authenticator interface {
	Signup(ctx context.Context, email, password string) (string, error)
	Signin(ctx context.Context, email, password string) (string, error)
}

// Handler exposes Authenticator over HTTP.
type Handler struct {
	auth Authenticator
}

// NewHandler creates the HTTP endpoints for auth.
func NewHandler(auth Authenticator) *Handler {
	return &Handler{auth: auth}
}

// Signup answers 201 {"token"} for a new user.
func (h *Handler) Signup(ctx handler.Context, req Credentials) handler.Response {
	token, err := h.auth.Signup(ctx, req.Email, req.Password)
	return tokenResponse(token, err)
}

// Signin answers 201 {"token"} for valid credentials.
func (h *Handler) Signin(ctx handler.Context, req Credentials) handler.Response {
	token, err := h.auth.Signin(ctx, req.Email, req.Password)
	return tokenResponse(token, err)
}

// Me returns the identity the gate attached to the request.
func (h *Handler) Me(ctx handler.Context, _ struct{}) handler.Response {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}
	return handler.JSON(identity)
}

func tokenResponse(token string, err error) handler.Response {
	switch {
	case err == nil:
		return handler.JSON(TokenResponse{Token: token}, handler.WithJSONStatus(http.StatusCreated))
	case errors.Is(err, ErrMissingCredentials):
		return handler.JSON(MessageResponse{Message: ErrMissingCredentials.Error()}, handler.WithJSONStatus(http.StatusBadRequest))
	case errors.Is(err, ErrInvalidCredentials):
		return handler.JSON(MessageResponse{Message: ErrInvalidCredentials.Error()}, handler.WithJSONStatus(http.StatusUnauthorized))
	default:
		return handler.Error(err)
	}
}
