// Package session handles the opaque identifier that scopes cart ownership.
// The identifier is a partitioning key, not an authenticated identity: there
// is no server-side session table, expiry, or rotation.
package session

import (
	"net"
	"net/http"

	"github.com/google/uuid"
)

// Mint returns a fresh opaque session token. Clients are expected to store
// the token and attach it to every cart-scoped request.
func Mint() string {
	return uuid.NewString()
}

// FromRequest resolves the session identifier for a cart-scoped request:
// the explicit value when the client sent one, otherwise a key derived from
// the client address so anonymous requests still land in a stable cart.
func FromRequest(explicit string, r *http.Request) string {
	if explicit != "" {
		return explicit
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return r.RemoteAddr
	}
	return host
}
