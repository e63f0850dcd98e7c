package helpers

import (
	"net/http"
	"strconv"
)

// MaxPageSize caps the limit query parameter.
const MaxPageSize = 100

// ParsePagination reads page and limit from the request query string.
// Missing or invalid values come back as 0 so the service applies its own
// defaults; limit is capped at MaxPageSize.
func ParsePagination(r *http.Request) (page, limit int) {
	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v >= 1 {
		limit = min(v, MaxPageSize)
	}
	return page, limit
}
