package pagination

import "gorm.io/gorm"

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 10
	// MaxPageSize caps how many rows any page query can request.
	MaxPageSize = 100
)

// Params holds offset pagination inputs from controllers or services.
// PageIndex is 1-based.
type Params struct {
	PageIndex int
	PageSize  int
}

// Normalize enforces the configured defaults and maximum page size.
func (p Params) Normalize() Params {
	if p.PageIndex <= 0 {
		p.PageIndex = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the normalized params.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.PageIndex - 1) * n.PageSize
}

// Page is a single page of results plus the browsing metadata clients use to
// render pagers.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalCount  int64 `json:"totalCount"`
	PageIndex   int   `json:"pageIndex"`
	PageSize    int   `json:"pageSize"`
	TotalPages  int   `json:"totalPages"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
}

// NewPage assembles page metadata from the already-fetched items and the
// total row count.
func NewPage[T any](items []T, total int64, params Params) Page[T] {
	n := params.Normalize()
	totalPages := int((total + int64(n.PageSize) - 1) / int64(n.PageSize))
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		TotalCount:  total,
		PageIndex:   n.PageIndex,
		PageSize:    n.PageSize,
		TotalPages:  totalPages,
		HasPrevious: n.PageIndex > 1,
		HasNext:     n.PageIndex < totalPages,
	}
}

// Paginate counts the rows behind query, then fetches the requested page into
// a fresh slice. The query must already carry its filters and ordering.
func Paginate[T any](query *gorm.DB, params Params) (Page[T], error) {
	n := params.Normalize()

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	items := []T{}
	if err := query.Offset(n.Offset()).Limit(n.PageSize).Find(&items).Error; err != nil {
		return Page[T]{}, err
	}

	return NewPage(items, total, n), nil
}
