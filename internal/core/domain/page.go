// internal/core/domain/page.go
package domain

// DefaultPageSize is the fixed page size every table view uses.
const DefaultPageSize = 10

// PageRequest describes one page of a searchable listing. Page is 1-based;
// the zero Search means no filter.
type PageRequest struct {
	Page   int
	Size   int
	Search string
}

// Normalize clamps a request parsed from untrusted query parameters.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	return p
}

// Limit returns the page size.
func (p PageRequest) Limit() int { return p.Size }

// Offset returns the record offset for this page: (page-1) * size.
func (p PageRequest) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

// PageInfo carries the derived pagination state of a fetched page.
type PageInfo struct {
	Page       int    `json:"page"`
	Size       int    `json:"size"`
	Search     string `json:"search,omitempty"`
	TotalCount int    `json:"total_count"`
}

// HasPrev reports whether a previous page exists.
func (p PageInfo) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether records exist beyond this page.
func (p PageInfo) HasNext() bool { return p.TotalCount > p.Size*p.Page }

// TotalPages returns ceil(total/size), floored at 1 so empty listings still
// render as "page 1 of 1".
func (p PageInfo) TotalPages() int {
	if p.Size <= 0 {
		return 1
	}
	pages := p.TotalCount / p.Size
	if p.TotalCount%p.Size > 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages
}
