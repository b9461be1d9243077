package domain

// PaginationParams selects a page of results for admin list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset converts the 1-based page number into a row offset.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}
