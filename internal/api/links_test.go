package api_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"linkfeed/internal/api"
)

func TestPostLink_Created(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "a@x.com", "pw123")
	token := seedToken(t, env, user.ID)

	req := postJSON("/links", `{"url":"https://www.prisma.io","description":"Prisma replaces traditional ORMs"}`)
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp api.LinkResponse
	decodeBody(t, rec, &resp)
	if resp.URL != "https://www.prisma.io" {
		t.Errorf("url = %q", resp.URL)
	}
	if resp.PostedBy != user.ID {
		t.Errorf("posted_by = %q, want %q", resp.PostedBy, user.ID)
	}
}

func TestPostLink_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)

	// No Authorization header at all.
	req := postJSON("/links", `{"url":"https://example.com"}`)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no header: status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	// A garbled token is rejected the same way.
	req = postJSON("/links", `{"url":"https://example.com"}`)
	authRequest(req, "garbled")
	rec = httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbled token: status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestPostLink_MissingURL(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "a@x.com", "pw123")
	token := seedToken(t, env, user.ID)

	req := postJSON("/links", `{"description":"no url"}`)
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetLink_OK(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "a@x.com", "pw123")
	link := seedLink(t, env, "https://example.com", "desc", user.ID)

	req := httptest.NewRequest("GET", "/links/"+link.ID, nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp api.LinkResponse
	decodeBody(t, rec, &resp)
	if resp.ID != link.ID {
		t.Errorf("id = %q, want %q", resp.ID, link.ID)
	}
}

func TestGetLink_NotFound(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("GET", "/links/nonexistent-id", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestFeed_NoFilterReturnsAll(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "a@x.com", "pw123")
	seedLink(t, env, "https://www.prisma.io", "Prisma replaces traditional ORMs", user.ID)
	seedLink(t, env, "https://golang.org", "The Go programming language", user.ID)

	req := httptest.NewRequest("GET", "/feed", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	var resp api.FeedResponse
	decodeBody(t, rec, &resp)
	if len(resp.Links) != 2 || resp.Count != 2 {
		t.Errorf("links = %d, count = %d, want 2/2", len(resp.Links), resp.Count)
	}
}

func TestFeed_Filter(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "a@x.com", "pw123")
	seedLink(t, env, "https://www.prisma.io", "GraphQL ORM", user.ID)
	seedLink(t, env, "https://golang.org", "The Go programming language", user.ID)
	seedLink(t, env, "https://example.com", "all about prisma", user.ID)

	req := httptest.NewRequest("GET", "/feed?filter=prisma", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	var resp api.FeedResponse
	decodeBody(t, rec, &resp)
	if len(resp.Links) != 2 || resp.Count != 2 {
		t.Errorf("links = %d, count = %d, want 2/2", len(resp.Links), resp.Count)
	}
	for _, l := range resp.Links {
		if l.URL == "https://golang.org" {
			t.Error("unfiltered link in response")
		}
	}
}

func TestFeed_CountIgnoresWindow(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "a@x.com", "pw123")
	for i := 0; i < 10; i++ {
		seedLink(t, env, fmt.Sprintf("https://example.com/prisma/%d", i), "prisma post", user.ID)
	}

	req := httptest.NewRequest("GET", "/feed?filter=prisma&first=3", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	var resp api.FeedResponse
	decodeBody(t, rec, &resp)
	if len(resp.Links) != 3 {
		t.Errorf("len(links) = %d, want 3", len(resp.Links))
	}
	if resp.Count != 10 {
		t.Errorf("count = %d, want 10", resp.Count)
	}
}

func TestFeed_BadParams(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{
		"/feed?skip=-1",
		"/feed?first=abc",
		"/feed?orderBy=bogus_KEY",
	} {
		req := httptest.NewRequest("GET", target, nil)
		rec := httptest.NewRecorder()
		env.Router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", target, rec.Code, http.StatusBadRequest)
		}
	}
}
