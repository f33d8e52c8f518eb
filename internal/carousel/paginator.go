// Package carousel pages through the certificate list.
package carousel

import (
	"github.com/pkg/errors"
)

// ErrPageOutOfRange is returned by Jump for an index outside [0, TotalPages).
var ErrPageOutOfRange = errors.New("page index out of range")

// Paginator is a cyclic index over fixed-size pages of a list.
type Paginator struct {
	page  int
	total int
	size  int
	count int
}

// NewPaginator pages count items pageSize at a time. An empty list still has one
// (empty) page so the current index is always valid.
func NewPaginator(count, pageSize int) Paginator {
	if pageSize < 1 {
		pageSize = 1
	}
	if count < 0 {
		count = 0
	}
	return Paginator{
		total: TotalPages(count, pageSize),
		size:  pageSize,
		count: count,
	}
}

// TotalPages is ceil(count / pageSize), never less than one.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 || count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

func (p Paginator) Page() int       { return p.page }
func (p Paginator) TotalPages() int { return p.total }
func (p Paginator) PageSize() int   { return p.size }

// Next moves one page forward, wrapping to the first page.
func (p *Paginator) Next() int {
	p.page = (p.page + 1) % p.total
	return p.page
}

// Prev moves one page back, wrapping to the last page.
func (p *Paginator) Prev() int {
	p.page = (p.page - 1 + p.total) % p.total
	return p.page
}

// Jump sets the page directly.
func (p *Paginator) Jump(i int) error {
	if i < 0 || i >= p.total {
		return errors.Wrapf(ErrPageOutOfRange, "page %d of %d", i, p.total)
	}
	p.page = i
	return nil
}

// Window returns the [start, end) bounds of the current page within the list.
func (p Paginator) Window() (start, end int) {
	start = p.page * p.size
	if start > p.count {
		start = p.count
	}
	end = start + p.size
	if end > p.count {
		end = p.count
	}
	return start, end
}

// restore puts the paginator on page i, clamping stale indexes from an older list.
func (p *Paginator) restore(i int) {
	if i < 0 || i >= p.total {
		i = 0
	}
	p.page = i
}
