package models

// Pagination is the wire form of page metadata.
type Pagination struct {
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// Page is one page of a server-side collection.
type Page[T any] struct {
	Items       []T
	Total       int
	PageSize    int
	CurrentPage int
	LastPage    int
	From        int
	To          int
}

// NewPage assembles a Page from decoded items and pagination metadata.
// A missing last_page is derived from total and per_page.
func NewPage[T any](items []T, p Pagination) Page[T] {
	last := p.LastPage
	if last == 0 && p.PerPage > 0 {
		last = (p.Total + p.PerPage - 1) / p.PerPage
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		Total:       p.Total,
		PageSize:    p.PerPage,
		CurrentPage: p.CurrentPage,
		LastPage:    last,
		From:        p.From,
		To:          p.To,
	}
}

func (p Page[T]) Empty() bool {
	return len(p.Items) == 0
}

// ListQuery is the (search, page) pair a list fetch is issued for.
type ListQuery struct {
	SearchTerm string
	Page       int
}

func NewListQuery() ListQuery {
	return ListQuery{Page: 1}
}
