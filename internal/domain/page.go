package domain

// Page sizes for the list endpoints.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PaginationParams selects one page of a list query: medspas, a medspa's
// services, or appointments.
type PaginationParams struct {
	Page  int // 1-based
	Limit int // rows per page, at most MaxPageLimit
}

// NewPaginationParams reads the optional page and limit query values.
// Missing or non-positive values take the defaults; an oversized limit is
// clamped rather than rejected.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page > 0 {
		p.Page = *page
	}
	if limit != nil && *limit > 0 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset is the number of rows skipped before this page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
