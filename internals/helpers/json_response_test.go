package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	cases := []struct {
		name    string
		total   int64
		page    int
		perPage int
		count   int

		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"first of many", 95, 1, 20, 20, 5, true, false},
		{"middle page", 95, 3, 20, 20, 5, true, true},
		{"last partial page", 95, 5, 20, 15, 5, false, true},
		{"single page", 7, 1, 20, 7, 1, false, false},
		{"empty result", 0, 1, 20, 0, 1, false, false},
		{"exact multiple", 40, 2, 20, 20, 2, false, true},
		{"defaults applied", 10, 0, 0, 10, 1, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tc.total, tc.page, tc.perPage, tc.count)
			if p.TotalPages != tc.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.wantTotalPages)
			}
			if p.HasNext != tc.wantHasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tc.wantHasNext)
			}
			if p.HasPrev != tc.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tc.wantHasPrev)
			}
			if p.Count != tc.count {
				t.Errorf("Count = %d, want %d", p.Count, tc.count)
			}
		})
	}
}

func TestStatusToErrorCode(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{400, "BAD_REQUEST"},
		{401, "UNAUTHORIZED"},
		{403, "FORBIDDEN"},
		{404, "NOT_FOUND"},
		{409, "CONFLICT"},
		{422, "VALIDATION_ERROR"},
		{500, "INTERNAL_ERROR"},
		{503, "INTERNAL_ERROR"},
		{418, "ERROR"},
	}

	for _, tc := range cases {
		if got := statusToErrorCode(tc.status); got != tc.want {
			t.Errorf("statusToErrorCode(%d) = %q, want %q", tc.status, got, tc.want)
		}
	}
}
