package pagination

import "testing"

func TestMakePagination(t *testing.T) {
	p := Paginate{Page: 2, Limit: 2}
	p.SetNumItems(5)

	result := MakePagination([]int{1, 2}, p)

	if result.TotalPages != 3 {
		t.Fatalf("expected 3 pages got %d", result.TotalPages)
	}
	if result.NextPage == nil || *result.NextPage != 3 {
		t.Fatalf("next page mismatch")
	}
	if result.PreviousPage == nil || *result.PreviousPage != 1 {
		t.Fatalf("prev page mismatch")
	}
	if len(result.PageRange) != 3 || result.PageRange[0] != 1 || result.PageRange[2] != 3 {
		t.Fatalf("page range mismatch: %v", result.PageRange)
	}
}

func TestMakePaginationEmptySet(t *testing.T) {
	p := Paginate{Page: 1, Limit: DefaultLimit}
	p.SetNumItems(0)

	result := MakePagination([]int{}, p)

	if result.TotalPages != 1 {
		t.Fatalf("empty sets still count one page, got %d", result.TotalPages)
	}
	if len(result.PageRange) != 1 || result.PageRange[0] != 1 {
		t.Fatalf("empty sets still render a single pager page, got %v", result.PageRange)
	}
	if result.NextPage != nil || result.PreviousPage != nil {
		t.Fatalf("no neighbours expected on an empty set")
	}
}

func TestPaginateClamp(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		numItems int64
		want     int
	}{
		{"zero resolves to first", 0, 90, 1},
		{"negative resolves to first", -3, 90, 1},
		{"beyond last resolves to last", 99, 90, 3},
		{"valid page untouched", 2, 90, 2},
		{"empty set resolves to first", 5, 0, 1},
		{"single short page resolves to it", 9, 10, 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := Paginate{Page: tc.page, Limit: DefaultLimit}
			p.Clamp(tc.numItems)

			if p.Page != tc.want {
				t.Fatalf("expected page %d got %d", tc.want, p.Page)
			}
		})
	}
}

func TestHydratePagination(t *testing.T) {
	src := &Pagination[string]{
		Data:       []string{"a", "bb"},
		Page:       1,
		Total:      2,
		PageSize:   2,
		TotalPages: 1,
		PageRange:  []int{1},
	}

	dst := HydratePagination(src, func(s string) int { return len(s) })

	if len(dst.Data) != 2 || dst.Data[1] != 2 {
		t.Fatalf("unexpected hydration")
	}
	if dst.Total != src.Total || dst.Page != src.Page {
		t.Fatalf("metadata mismatch")
	}
	if len(dst.PageRange) != 1 {
		t.Fatalf("page range not preserved")
	}
}
