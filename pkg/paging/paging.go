package paging

// Page slices items into fixed-size pages. Page numbers are 1-based and
// clamped: asking for a page past the end returns the last page, asking for
// anything below 1 returns the first. An empty input yields an empty slice.
func Page[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 || len(items) == 0 {
		return []T{}
	}

	page = Clamp(page, TotalPages(len(items), pageSize))

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns the number of pages needed for total items, at least 1.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Clamp bounds a 1-based page number to [1, totalPages].
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
