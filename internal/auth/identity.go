package auth

import (
	"errors"
	"net/http"
	"strings"
)

// ErrNotAuthenticated is returned by RequireIdentity for every request that
// does not carry a valid token, whether the Authorization header was absent,
// malformed, or failed verification. Callers cannot distinguish the cases.
var ErrNotAuthenticated = errors.New("not authenticated")

// Identity is the per-request caller identity. It is derived fresh from the
// Authorization header on every request and never persisted.
type Identity struct {
	UserID        string
	Authenticated bool
}

// Anonymous is the identity of a request with no Authorization header.
var Anonymous = Identity{}

// Resolver derives request identities by verifying bearer tokens.
type Resolver struct {
	codec *Codec
}

func NewResolver(codec *Codec) *Resolver {
	return &Resolver{codec: codec}
}

// Resolve returns the identity presented by r.
//
// No Authorization header yields Anonymous. A header that is present but does
// not verify yields ErrInvalidToken — a bad credential is an error, not a
// downgrade to anonymous.
func (rs *Resolver) Resolve(r *http.Request) (Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return Anonymous, nil
	}

	token := strings.TrimPrefix(header, "Bearer ")
	userID, err := rs.codec.Verify(token)
	if err != nil {
		return Anonymous, err
	}
	return Identity{UserID: userID, Authenticated: true}, nil
}

// RequireIdentity is the single gate protected handlers go through. It
// resolves r and returns the caller's user id, or ErrNotAuthenticated if the
// request is anonymous or carries an invalid token.
func (rs *Resolver) RequireIdentity(r *http.Request) (string, error) {
	ident, err := rs.Resolve(r)
	if err != nil || !ident.Authenticated {
		return "", ErrNotAuthenticated
	}
	return ident.UserID, nil
}
