package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const userIDContextKey contextKey = "userID"

// Middleware provides HTTP middleware gating routes on a valid bearer token.
type Middleware struct {
	resolver *Resolver
}

func NewMiddleware(resolver *Resolver) *Middleware {
	return &Middleware{resolver: resolver}
}

// RequireAuth rejects requests without a valid bearer token with a 401 JSON
// body. On success the caller's user id is set on the request context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.resolver.RequireIdentity(r)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext retrieves the authenticated user id set by RequireAuth.
// Empty outside a RequireAuth-wrapped handler.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDContextKey).(string)
	return id
}

// writeUnauthorized writes a 401 JSON response with {"error": "unauthorized"}.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
