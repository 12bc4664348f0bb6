package models

// Pagination selects one page of results. Page is 1-based.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset is the number of rows skipped before this page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// DateRange is an inclusive date filter. A nil bound is open.
type DateRange struct {
	Start *Date
	End   *Date
}

// Bounded reports whether both ends of the range are set.
func (r DateRange) Bounded() bool {
	return r.Start != nil && r.End != nil
}
