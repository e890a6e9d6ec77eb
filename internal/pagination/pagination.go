package pagination

import "math"

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
}

// Offset returns the index of the first item on the current page. It can
// overflow for huge pages; Paginate checks the page against the item count
// before calling it.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// Paginate cuts the requested page out of an already ordered slice.
func Paginate[T any](items []T, req PageRequest) PageResponse[T] {
	req.Defaults()

	start := len(items)
	if req.Page-1 <= len(items)/req.PageSize {
		start = min(req.Offset(), len(items))
	}
	end := len(items)
	if req.PageSize < end-start {
		end = start + req.PageSize
	}

	page := make([]T, end-start)
	copy(page, items[start:end])

	return PageResponse[T]{
		Data:       page,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalItems: int64(len(items)),
		TotalPages: int(math.Ceil(float64(len(items)) / float64(req.PageSize))),
	}
}
