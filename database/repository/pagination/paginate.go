package pagination

import "math"

type Paginate struct {
	Page     int
	Limit    int
	NumItems int64
}

func (a *Paginate) SetNumItems(number int64) {
	a.NumItems = number
}

func (a *Paginate) GetNumItemsAsInt() int64 {
	return a.NumItems
}

func (a *Paginate) GetNumItemsAsFloat() float64 {
	return float64(a.NumItems)
}

func (a *Paginate) GetLimit() int {
	return a.Limit
}

func (a *Paginate) GetOffset() int {
	return (a.Page - 1) * a.Limit
}

// Clamp records the counted result-set size and normalises the requested
// page: anything below the first page resolves to it, anything beyond the
// last valid page resolves to the last. A page number never errors.
func (a *Paginate) Clamp(numItems int64) {
	a.SetNumItems(numItems)

	if a.Page < MinPage {
		a.Page = MinPage
	}

	if totalPages := a.TotalPages(); a.Page > totalPages {
		a.Page = totalPages
	}
}

// TotalPages never reports fewer than one page: an empty result set still has
// a first page, so clamping a beyond-range request always lands somewhere.
func (a *Paginate) TotalPages() int {
	if a.Limit <= 0 {
		return MinPage
	}

	pages := int(math.Ceil(a.GetNumItemsAsFloat() / float64(a.Limit)))
	if pages < MinPage {
		return MinPage
	}

	return pages
}
