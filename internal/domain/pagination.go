package domain

import "math"

// Page sizes used when the caller does not supply a limit.
const (
	DefaultEventPageSize   = 6
	DefaultRelatedPageSize = 3
)

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// NewPaginationParams normalizes page (minimum 1) and pageSize (defaultSize
// when not positive). Page is capped so that Offset cannot overflow; a capped
// page is still past the end of any real result set.
func NewPaginationParams(page, pageSize, defaultSize int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if page-1 > math.MaxInt/pageSize {
		page = math.MaxInt/pageSize + 1
	}
	return PaginationParams{Page: page, PageSize: pageSize}
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// TotalPages returns ceiling(total / PageSize); 0 when PageSize is 0.
func (p PaginationParams) TotalPages(total int) int {
	if p.PageSize <= 0 || total <= 0 {
		return 0
	}
	return (total-1)/p.PageSize + 1
}
