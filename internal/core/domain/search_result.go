package domain

// Pagination is the metadata block attached to every paginated response.
type Pagination struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

// NewPagination derives the full metadata block from the requested page,
// the effective limit and the total match count. Pages is 0 when nothing
// matched.
func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if total > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

// AppliedFilters echoes the effective filter state back to the caller.
type AppliedFilters struct {
	Applied    bool       `json:"applied"`
	Normalized FilterSpec `json:"query"`
}

// SearchResult is the complete engine response: the page of matching
// property cards, the pagination metadata and the echoed filter state.
type SearchResult struct {
	Items      []PropertyCard
	Pagination Pagination
	Filters    AppliedFilters
}
