package draws

import (
	"time"

	"github.com/maplecrest/canscore/internal/domain"
)

// paginate slices the full normalized list. Page math always runs against
// the complete set so page counts stay stable across calls. An empty set
// still reports one page, with both direction flags false.
func paginate(records []*domain.DrawRecord, page, limit int, source string) *domain.PaginatedResult {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	totalItems := len(records)
	totalPages := (totalItems + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * limit
	end := start + limit
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	data := records[start:end]
	if len(data) == 0 {
		data = []*domain.DrawRecord{}
	}

	return &domain.PaginatedResult{
		Data: data,
		Pagination: domain.Pagination{
			CurrentPage:     page,
			TotalPages:      totalPages,
			TotalItems:      totalItems,
			ItemsPerPage:    limit,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		},
		Source:      source,
		LastUpdated: time.Now().UTC(),
	}
}
