package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"schedlink/internal/domain"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want domain.PaginationParams
	}{
		{"defaults", "/api/contacts", domain.PaginationParams{Page: 1, PageSize: 20}},
		{"explicit", "/api/contacts?page=3&page_size=50", domain.PaginationParams{Page: 3, PageSize: 50}},
		{"page_size clamped", "/api/contacts?page_size=500", domain.PaginationParams{Page: 1, PageSize: 100}},
		{"zero falls back", "/api/contacts?page=0&page_size=0", domain.PaginationParams{Page: 1, PageSize: 20}},
		{"malformed falls back", "/api/contacts?page=abc&page_size=-5", domain.PaginationParams{Page: 1, PageSize: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.want, ParsePagination(r))
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(2, 20, 41)
	assert.Equal(t, PaginationMeta{Page: 2, PageSize: 20, Total: 41, TotalPages: 3}, meta)

	assert.Zero(t, NewPaginationMeta(1, 0, 10).TotalPages)
	assert.Zero(t, NewPaginationMeta(1, 20, 0).TotalPages)
}
