package api

import (
	"fmt"
	"net/http"
	"strconv"

	"linkfeed/internal/store"
)

// parseFeedQuery extracts filter, skip, first, and orderBy from the query
// string. All parameters are optional; skip and first must be non-negative
// integers and orderBy must be a known ordering key.
func parseFeedQuery(r *http.Request) (store.ListOptions, error) {
	opts := store.ListOptions{
		Filter:  r.URL.Query().Get("filter"),
		OrderBy: r.URL.Query().Get("orderBy"),
	}

	if s := r.URL.Query().Get("skip"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("skip must be a non-negative integer")
		}
		opts.Skip = n
	}

	if f := r.URL.Query().Get("first"); f != "" {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("first must be a non-negative integer")
		}
		opts.First = n
	}

	if opts.OrderBy != "" && !store.ValidOrderKey(opts.OrderBy) {
		return opts, fmt.Errorf("unknown orderBy key %q", opts.OrderBy)
	}

	return opts, nil
}
