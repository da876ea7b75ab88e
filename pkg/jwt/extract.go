package jwt

import (
	"net/http"
	"strings"
)

// BearerPrefix is the literal scheme prefix expected in the Authorization header.
const BearerPrefix = "Bearer "

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The prefix match is case-sensitive and includes the single space; surrounding
// whitespace of the token itself is trimmed. ok is false when the header is
// missing or uses another scheme.
func BearerToken(r *http.Request) (token string, ok bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix)), true
}
