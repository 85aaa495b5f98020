// Package paging computes page windows and client-side transaction filters.
package paging

// DefaultPerPage is the page size used when none is configured.
const DefaultPerPage = 10

// MaxPerPage caps the requestable page size.
const MaxPerPage = 100

// Window returns the inclusive zero-indexed row range for a 1-indexed page:
// [(page-1)*perPage, page*perPage-1].
func Window(page, perPage int) (from, to int) {
	from = (page - 1) * perPage
	to = page*perPage - 1
	return from, to
}

// TotalPages returns ceil(total/perPage). A non-positive perPage yields zero.
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// InRange reports whether page is a valid 1-indexed page for the collection.
// Navigation outside [1, totalPages] is a no-op for callers.
func InRange(page int, total int64, perPage int) bool {
	if page < 1 {
		return false
	}
	return page <= TotalPages(total, perPage)
}

// Normalize clamps pagination inputs to sane defaults.
func Normalize(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}
