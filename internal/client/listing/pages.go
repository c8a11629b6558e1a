package listing

import (
	"fmt"

	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
)

const maxVisiblePages = 5

// Ellipsis marks a gap in a page window.
const Ellipsis = 0

// Window lists the page links to show around current: at most
// maxVisiblePages consecutive numbers, plus the first and last page when
// they fall outside, separated by Ellipsis where pages are skipped.
func Window(current, last int) []int {
	if last < 1 {
		return nil
	}
	current = min(max(current, 1), last)

	start := max(1, current-maxVisiblePages/2)
	end := min(last, start+maxVisiblePages-1)
	if end-start+1 < maxVisiblePages {
		start = max(1, end-maxVisiblePages+1)
	}

	var out []int
	if start > 1 {
		out = append(out, 1)
		if start > 2 {
			out = append(out, Ellipsis)
		}
	}
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	if end < last {
		if end < last-1 {
			out = append(out, Ellipsis)
		}
		out = append(out, last)
	}
	return out
}

// Bounds returns the 1-based positions of the first and last item of p
// within the whole collection. Both are zero for an empty collection.
func Bounds[T any](p models.Page[T]) (from, to int) {
	if p.Total == 0 || p.PageSize == 0 || p.CurrentPage < 1 {
		return 0, 0
	}
	from = p.PageSize*(p.CurrentPage-1) + 1
	to = min(p.PageSize*p.CurrentPage, p.Total)
	return from, to
}

// Range renders the "Showing X to Y of Z entries" line. It is empty when
// there is nothing to show.
func Range[T any](p models.Page[T]) string {
	from, to := Bounds(p)
	if from == 0 {
		return ""
	}
	return fmt.Sprintf("Showing %d to %d of %d entries", from, to, p.Total)
}
