package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"linkfeed/internal/auth"
	"linkfeed/internal/metrics"
	"linkfeed/internal/store"
)

// linkHandler provides the feed and link endpoints.
type linkHandler struct {
	links *store.LinkStore
}

// Post creates a new link owned by the authenticated user.
// POST /links
//
// @Summary      Post a link
// @Description  Submits a new link. The caller becomes its poster.
// @Tags         Links
// @Accept       json
// @Produce      json
// @Param        body  body      PostLinkRequest  true  "Link to post"
// @Success      201   {object}  LinkResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /links [post]
func (h *linkHandler) Post(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req PostLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required", "BAD_REQUEST")
		return
	}

	link, err := h.links.Create(r.Context(), req.URL, req.Description, userID)
	if err != nil {
		log.Printf("api: create link %q: %v", req.URL, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.LinksPostedTotal.Inc()
	writeJSON(w, http.StatusCreated, toLinkResponse(link))
}

// Get returns a single link by ID.
// GET /links/{id}
//
// @Summary      Get a link
// @Tags         Links
// @Produce      json
// @Param        id   path      string  true  "Link ID"
// @Success      200  {object}  LinkResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /links/{id} [get]
func (h *linkHandler) Get(w http.ResponseWriter, r *http.Request) {
	link, err := h.links.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toLinkResponse(link))
}

// Feed lists links with optional substring filter, pagination, and ordering.
// The count field always reflects the full filtered set, not the page.
// GET /feed
//
// @Summary      List the feed
// @Description  Lists links. filter matches url or description substrings; skip/first window the results.
// @Tags         Links
// @Produce      json
// @Param        filter   query     string  false  "Substring to match against url or description"
// @Param        skip     query     int     false  "Number of links to skip"
// @Param        first    query     int     false  "Maximum number of links to return"
// @Param        orderBy  query     string  false  "Ordering key, e.g. createdAt_DESC"
// @Success      200      {object}  FeedResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /feed [get]
func (h *linkHandler) Feed(w http.ResponseWriter, r *http.Request) {
	opts, err := parseFeedQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	}

	links, err := h.links.List(r.Context(), opts)
	if err != nil {
		log.Printf("api: list links: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	count, err := h.links.Count(r.Context(), opts.Filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := FeedResponse{Links: make([]LinkResponse, 0, len(links)), Count: count}
	for _, l := range links {
		resp.Links = append(resp.Links, toLinkResponse(l))
	}

	writeJSON(w, http.StatusOK, resp)
}

func toLinkResponse(l *store.Link) LinkResponse {
	return LinkResponse{
		ID:          l.ID,
		URL:         l.URL,
		Description: l.Description,
		PostedBy:    l.PostedBy,
		CreatedAt:   l.CreatedAt,
	}
}
