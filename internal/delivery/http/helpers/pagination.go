package helpers

import (
	"net/http"
	"strconv"

	"schedlink/internal/domain"
)

// Pagination defaults for the contact list. The dashboard shows 20 rows per
// page; page_size is capped so a single request cannot pull the whole table.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// positiveQueryInt reads a query parameter as a positive integer, falling
// back to def when the parameter is absent, malformed, or not positive.
func positiveQueryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 1 {
		return def
	}
	return v
}

// ParsePagination reads page and page_size from the query string, clamping
// page_size to MaxPageSize.
func ParsePagination(r *http.Request) domain.PaginationParams {
	params := domain.PaginationParams{
		Page:     positiveQueryInt(r, "page", DefaultPage),
		PageSize: positiveQueryInt(r, "page_size", DefaultPageSize),
	}
	if params.PageSize > MaxPageSize {
		params.PageSize = MaxPageSize
	}
	return params
}

// PaginationMeta is the pagination block of paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta derives the metadata for one page of a total-count query.
// TotalPages rounds up; a zero pageSize yields zero pages.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	meta := PaginationMeta{Page: page, PageSize: pageSize, Total: total}
	if pageSize > 0 {
		meta.TotalPages = (total + pageSize - 1) / pageSize
	}
	return meta
}
