package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"linkfeed/internal/auth"
	"linkfeed/internal/store"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	AuthMiddleware *auth.Middleware
	Codec          *auth.Codec
	UserStore      *store.UserStore
	LinkStore      *store.LinkStore
	VoteStore      *store.VoteStore
}

// NewRouter creates the chi router for the JSON API. Signup, login, and the
// feed are public; posting links and voting require a bearer token.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// All API responses are JSON.
	r.Use(jsonContentType)

	ah := &authHandler{users: deps.UserStore, codec: deps.Codec}
	lh := &linkHandler{links: deps.LinkStore}
	vh := &voteHandler{links: deps.LinkStore, votes: deps.VoteStore}

	r.Post("/signup", ah.Signup)
	r.Post("/login", ah.Login)
	r.Get("/feed", lh.Feed)
	r.Get("/links/{id}", lh.Get)

	r.Group(func(pr chi.Router) {
		pr.Use(deps.AuthMiddleware.RequireAuth)
		pr.Post("/links", lh.Post)
		pr.Post("/links/{id}/vote", vh.Vote)
	})

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
