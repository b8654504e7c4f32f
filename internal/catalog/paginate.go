package catalog

const maxPageButtons = 5

// Paginate returns the 1-indexed page of items. Pages outside the range
// yield an empty slice.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := min(start+size, len(items))
	return items[start:end]
}

// TotalPages is ceil(n/size).
func TotalPages(n, size int) int {
	if size < 1 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// PageWindow returns at most five page numbers centered on current and
// clamped to [1, total], sliding near the edges.
func PageWindow(current, total int) []int {
	if total < 1 {
		return nil
	}
	start := max(1, current-maxPageButtons/2)
	end := min(total, start+maxPageButtons-1)
	if end-start < maxPageButtons-1 {
		start = max(1, end-maxPageButtons+1)
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// Pagination is the page-button model for one rendering of the table.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	Pages       []int `json:"pages"`
	HasPrev     bool  `json:"has_prev"`
	HasNext     bool  `json:"has_next"`
}

func NewPagination(current, total int) Pagination {
	return Pagination{
		CurrentPage: current,
		TotalPages:  total,
		Pages:       PageWindow(current, total),
		HasPrev:     current > 1,
		HasNext:     current < total,
	}
}

// Visible reports whether the pagination bar is worth drawing.
func (p Pagination) Visible() bool {
	return p.TotalPages > 1
}
