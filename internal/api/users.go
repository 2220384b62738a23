package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"linkfeed/internal/auth"
	"linkfeed/internal/metrics"
	"linkfeed/internal/store"
)

// authHandler provides the signup and login endpoints.
type authHandler struct {
	users *store.UserStore
	codec *auth.Codec
}

// Signup registers a new user and returns a session token for it.
// POST /signup
//
// @Summary      Sign up
// @Description  Registers a new account and returns a session token plus the user.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignupRequest  true  "Account to create"
// @Success      201   {object}  AuthResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /signup [post]
func (h *authHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required", "BAD_REQUEST")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "password is required", "BAD_REQUEST")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	user, err := h.users.Create(r.Context(), req.Email, req.Name, hash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "email is already registered", "DUPLICATE_EMAIL")
			return
		}
		log.Printf("api: create user %q: %v", req.Email, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	token, err := h.codec.Issue(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.SignupsTotal.Inc()
	writeJSON(w, http.StatusCreated, AuthResponse{Token: token, User: toUserResponse(user)})
}

// Login verifies credentials and returns a session token.
// POST /login
//
// @Summary      Log in
// @Description  Verifies email and password and returns a session token plus the user.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  AuthResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /login [post]
func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("unknown_user").Inc()
			writeError(w, http.StatusNotFound, "no such user found", "USER_NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("invalid_password").Inc()
		writeError(w, http.StatusUnauthorized, "invalid password", "INVALID_CREDENTIALS")
		return
	}

	token, err := h.codec.Issue(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: toUserResponse(user)})
}

func toUserResponse(u *store.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
