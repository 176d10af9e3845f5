package entity

// DefaultPerPage is the page size used by admin listings.
const DefaultPerPage = 20

// ListQuery describes a paginated, searchable listing request.
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
}

// Normalize clamps paging values to sane defaults.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}

	return q
}

// Page is one page of records returned by the record store.
type Page[T any] struct {
	Items      []T
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
}
