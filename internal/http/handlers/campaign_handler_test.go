package handlers

import (
	"testing"

	"github.com/trial-marketplace/backend/internal/repositories"
)

func TestParseCampaignFilter(t *testing.T) {
	filter, err := parseCampaignFilter("2", "50", "recruiting", "ending_soon")
	if err != nil {
		t.Fatalf("valid query rejected: %v", err)
	}
	if filter.Page != 2 || filter.Limit != 50 {
		t.Fatalf("page/limit not carried: got page=%d limit=%d", filter.Page, filter.Limit)
	}
	if filter.Status != "recruiting" {
		t.Fatalf("status not carried into the filter: got %q", filter.Status)
	}
	if filter.Sort != repositories.SortEndingSoon {
		t.Fatalf("sort not carried: got %q", filter.Sort)
	}
}

func TestParseCampaignFilterDefaults(t *testing.T) {
	filter, err := parseCampaignFilter("", "", "", "")
	if err != nil {
		t.Fatalf("empty query rejected: %v", err)
	}
	if filter.Page != 1 || filter.Limit != 20 || filter.Status != "" || filter.Sort != repositories.SortLatest {
		t.Fatalf("unexpected defaults: %+v", filter)
	}

	filter, err = parseCampaignFilter("abc", "xyz", "", "")
	if err != nil {
		t.Fatalf("non-numeric page/limit should fall back, got error: %v", err)
	}
	if filter.Page != 1 || filter.Limit != 20 {
		t.Fatalf("non-numeric page/limit did not fall back: %+v", filter)
	}
}

func TestParseCampaignFilterRejectsUnknownSort(t *testing.T) {
	if _, err := parseCampaignFilter("", "", "", "trending"); err == nil {
		t.Fatal("expected error for unknown sort")
	}
}
