package api

import "time"

// --- Auth types ---

// SignupRequest is the request body for POST /signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the JSON representation of a user. The password hash is
// intentionally absent.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by signup and login: a session token plus the user
// it identifies.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- Link types ---

// PostLinkRequest is the request body for POST /links.
type PostLinkRequest struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// LinkResponse is the JSON representation of a single link.
type LinkResponse struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	PostedBy    string    `json:"posted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// FeedResponse is the response for GET /feed. Count is the size of the full
// filtered set, independent of the skip/first window applied to Links.
type FeedResponse struct {
	Links []LinkResponse `json:"links"`
	Count int            `json:"count"`
}

// --- Vote types ---

// VoteResponse is the JSON representation of a recorded vote.
type VoteResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	LinkID    string    `json:"link_id"`
	CreatedAt time.Time `json:"created_at"`
}
