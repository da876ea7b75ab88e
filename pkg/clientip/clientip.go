package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders are consulted, in order, when no headers are configured.
var DefaultHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// Resolver finds the originating client address of a request.
// Forwarded headers are only trusted when the service runs behind a proxy
// that sets them; otherwise build the resolver with no headers at all.
type Resolver struct {
	headers []string
}

// New returns a resolver that checks headers in order before falling back
// to the TCP peer address. Pass no headers to use RemoteAddr only.
func New(headers ...string) *Resolver {
	hs := make([]string, 0, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			hs = append(hs, http.CanonicalHeaderKey(h))
		}
	}
	return &Resolver{headers: hs}
}

// Resolve returns the normalized client IP, or an empty string when no
// valid address could be found.
func (r *Resolver) Resolve(req *http.Request) string {
	for _, h := range r.headers {
		// X-Forwarded-For and friends may carry a comma-separated chain;
		// the left-most valid entry is the client.
		for candidate := range strings.SplitSeq(req.Header.Get(h), ",") {
			if ip := normalize(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return normalize(req.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
