package paginate

import (
	"net/url"
	"strconv"

	"github.com/junle/database/repository/pagination"
)

// MakeFrom reads the page number from the query string. A non-numeric value
// falls back to the first page; out-of-range values are clamped later, once
// the repository knows the item count.
func MakeFrom(url url.Values) pagination.Paginate {
	return NewFrom(url, pagination.DefaultLimit)
}

func NewFrom(url url.Values, limit int) pagination.Paginate {
	page := pagination.MinPage

	if url.Get("page") != "" {
		if tPage, err := strconv.Atoi(url.Get("page")); err == nil {
			page = tPage
		}
	}

	if limit > pagination.MaxLimit || limit < 1 {
		limit = pagination.DefaultLimit
	}

	return pagination.Paginate{
		Page:  page,
		Limit: limit,
	}
}
