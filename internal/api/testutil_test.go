package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"linkfeed/internal/api"
	"linkfeed/internal/auth"
	"linkfeed/internal/store"
	"linkfeed/internal/testutil"
)

// testEnv holds all stores and helpers needed for API integration tests.
type testEnv struct {
	Router    http.Handler
	Codec     *auth.Codec
	UserStore *store.UserStore
	LinkStore *store.LinkStore
	VoteStore *store.VoteStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full API router with real stores.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	codec, err := auth.NewCodec("test-secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	resolver := auth.NewResolver(codec)

	us := store.NewUserStore(db)
	ls := store.NewLinkStore(db)
	vs := store.NewVoteStore(db)

	router := api.NewRouter(api.Deps{
		AuthMiddleware: auth.NewMiddleware(resolver),
		Codec:          codec,
		UserStore:      us,
		LinkStore:      ls,
		VoteStore:      vs,
	})

	return &testEnv{
		Router:    router,
		Codec:     codec,
		UserStore: us,
		LinkStore: ls,
		VoteStore: vs,
	}
}

// seedUser creates a user directly in the store with a real password hash
// and returns the record.
func seedUser(t *testing.T, env *testEnv, email, password string) *store.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := env.UserStore.Create(context.Background(), email, "Test User", hash)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// seedToken issues a session token for userID.
func seedToken(t *testing.T, env *testEnv, userID string) string {
	t.Helper()
	token, err := env.Codec.Issue(userID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

// seedLink creates a link posted by userID.
func seedLink(t *testing.T, env *testEnv, url, description, userID string) *store.Link {
	t.Helper()
	l, err := env.LinkStore.Create(context.Background(), url, description, userID)
	if err != nil {
		t.Fatalf("seed link: %v", err)
	}
	return l
}

// authRequest adds a Bearer token to the request.
func authRequest(r *http.Request, token string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

// postJSON builds a POST request with a JSON string body.
func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest("POST", target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// decodeBody decodes the recorder body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}
