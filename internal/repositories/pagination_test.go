package repositories

import "testing"

func TestCampaignFilterOffset(t *testing.T) {
	tests := []struct {
		name   string
		filter CampaignFilter
		offset int
	}{
		{"first page", CampaignFilter{Page: 1, Limit: 20}, 0},
		{"second page", CampaignFilter{Page: 2, Limit: 20}, 20},
		{"third page", CampaignFilter{Page: 3, Limit: 20}, 40},
		{"zero page clamps to first", CampaignFilter{Page: 0, Limit: 20}, 0},
		{"zero limit defaults to 20", CampaignFilter{Page: 2, Limit: 0}, 20},
		{"oversized limit defaults to 20", CampaignFilter{Page: 2, Limit: 500}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Offset(); got != tt.offset {
				t.Errorf("Offset() = %d, want %d", got, tt.offset)
			}
		})
	}
}

func TestHasMore(t *testing.T) {
	// total=45, limit=20: page 2 returns items 21-40 and more remain,
	// page 3 returns the final 5.
	if !HasMore(20, 20, 45) {
		t.Error("page 2 of 45 should have more")
	}
	if HasMore(40, 5, 45) {
		t.Error("page 3 of 45 should be the last page")
	}
	if HasMore(0, 0, 0) {
		t.Error("empty result should have no more")
	}
	if !HasMore(0, 20, 21) {
		t.Error("one item past the page should report more")
	}
}

func TestIsValidSort(t *testing.T) {
	for _, sort := range []string{SortLatest, SortEndingSoon, SortPopular} {
		if !IsValidSort(sort) {
			t.Errorf("%q should be a valid sort", sort)
		}
	}
	if IsValidSort("priciest") {
		t.Error("unknown sort key accepted")
	}
}
