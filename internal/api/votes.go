package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"linkfeed/internal/auth"
	"linkfeed/internal/metrics"
	"linkfeed/internal/store"
)

// voteHandler provides the vote endpoint.
type voteHandler struct {
	links *store.LinkStore
	votes *store.VoteStore
}

// Vote records the authenticated user's vote for a link. Each user may vote
// for a link at most once.
// POST /links/{id}/vote
//
// @Summary      Vote for a link
// @Description  Records one vote by the caller for the link. A second vote for the same link is rejected.
// @Tags         Votes
// @Produce      json
// @Param        id   path      string  true  "Link ID"
// @Success      201  {object}  VoteResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /links/{id}/vote [post]
func (h *voteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	linkID := chi.URLParam(r, "id")
	if _, err := h.links.GetByID(r.Context(), linkID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	voted, err := h.votes.Exists(r.Context(), userID, linkID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	if voted {
		writeError(w, http.StatusConflict, "already voted for link: "+linkID, "DUPLICATE_VOTE")
		return
	}

	vote, err := h.votes.Create(r.Context(), userID, linkID)
	if err != nil {
		// Two concurrent votes can both pass the Exists check; the unique
		// index reports the loser here.
		if errors.Is(err, store.ErrDuplicateVote) {
			writeError(w, http.StatusConflict, "already voted for link: "+linkID, "DUPLICATE_VOTE")
			return
		}
		log.Printf("api: create vote for link %q: %v", linkID, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.VotesTotal.Inc()
	writeJSON(w, http.StatusCreated, VoteResponse{
		ID:        vote.ID,
		UserID:    vote.UserID,
		LinkID:    vote.LinkID,
		CreatedAt: vote.CreatedAt,
	})
}
