package dto

import (
	"strings"
	"testing"
)

func validCreateCampaign() CreateCampaignRequest {
	return CreateCampaignRequest{
		Title:               "Seoul cafe tasting",
		Description:         "Visit and review our seasonal menu",
		Location:            "Seoul, Mapo-gu",
		Benefits:            "Free menu for two",
		Mission:             "One blog post with five photos",
		RecruitCount:        10,
		RecruitStartDate:    "2026-09-01T00:00:00Z",
		RecruitEndDate:      "2026-09-15T23:59:59Z",
		ExperienceStartDate: "2026-09-20",
		ExperienceEndDate:   "2026-09-30",
	}
}

func TestCreateCampaignValidate(t *testing.T) {
	req := validCreateCampaign()
	parsed, err := req.Validate()
	if err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if !parsed.RecruitEnd.After(parsed.RecruitStart) {
		t.Fatal("parsed recruit window lost its ordering")
	}
}

func TestCreateCampaignValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateCampaignRequest)
	}{
		{"empty title", func(r *CreateCampaignRequest) { r.Title = "" }},
		{"title too long", func(r *CreateCampaignRequest) { r.Title = strings.Repeat("a", 201) }},
		{"location too long", func(r *CreateCampaignRequest) { r.Location = strings.Repeat("a", 501) }},
		{"zero recruit count", func(r *CreateCampaignRequest) { r.RecruitCount = 0 }},
		{"negative recruit count", func(r *CreateCampaignRequest) { r.RecruitCount = -3 }},
		{"recruit end before start", func(r *CreateCampaignRequest) {
			r.RecruitStartDate = "2026-09-15T00:00:00Z"
			r.RecruitEndDate = "2026-09-01T00:00:00Z"
		}},
		{"experience end before start", func(r *CreateCampaignRequest) {
			r.ExperienceStartDate = "2026-09-30"
			r.ExperienceEndDate = "2026-09-20"
		}},
		{"malformed recruit date", func(r *CreateCampaignRequest) { r.RecruitStartDate = "next tuesday" }},
		{"malformed experience date", func(r *CreateCampaignRequest) { r.ExperienceEndDate = "2026/09/30" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateCampaign()
			tt.mutate(&req)
			if _, err := req.Validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

// Offsets must be compared as instants. Lexically the end string sorts before
// the start string here, but in UTC the end is an hour later.
func TestCreateCampaignValidateTimezoneOrdering(t *testing.T) {
	req := validCreateCampaign()
	req.RecruitStartDate = "2026-09-02T00:00:00Z"
	req.RecruitEndDate = "2026-09-01T20:00:00-05:00"
	if _, err := req.Validate(); err != nil {
		t.Fatalf("instant-ordered window rejected: %v", err)
	}
}

func TestUpdateCampaignValidatePartial(t *testing.T) {
	empty := UpdateCampaignRequest{}
	if _, _, err := empty.Validate(); err != nil {
		t.Fatalf("empty partial update rejected: %v", err)
	}

	bad := "2026-09-01T00:00:00Z"
	worse := "2026-08-01T00:00:00Z"
	req := UpdateCampaignRequest{RecruitStartDate: &bad, RecruitEndDate: &worse}
	if _, _, err := req.Validate(); err == nil {
		t.Fatal("expected error when supplied recruit window is inverted")
	}

	only := "2026-08-01T00:00:00Z"
	single := UpdateCampaignRequest{RecruitEndDate: &only}
	start, end, err := single.Validate()
	if err != nil {
		t.Fatalf("single-sided recruit date rejected: %v", err)
	}
	if start != nil || end == nil {
		t.Fatal("expected only the end instant to be parsed")
	}
}

func TestCreateApplicationValidate(t *testing.T) {
	req := CreateApplicationRequest{
		CampaignID: "7f6f2b1e-0000-0000-0000-000000000000",
		Message:    "I run a local food blog and would love to cover this.",
		VisitDate:  "2026-09-22",
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid application rejected: %v", err)
	}

	req.Message = "too short"
	if err := req.Validate(); err == nil {
		t.Fatal("expected error for message under 10 characters")
	}
	req.Message = strings.Repeat("x", 501)
	if err := req.Validate(); err == nil {
		t.Fatal("expected error for message over 500 characters")
	}
	req.Message = strings.Repeat("x", 500)
	req.VisitDate = "22-09-2026"
	if err := req.Validate(); err == nil {
		t.Fatal("expected error for malformed visit date")
	}
}

// Length bounds count characters, not bytes: Hangul is three bytes per
// character in UTF-8.
func TestMessageBoundsCountCharacters(t *testing.T) {
	req := CreateApplicationRequest{
		CampaignID: "7f6f2b1e-0000-0000-0000-000000000000",
		VisitDate:  "2026-09-22",
	}

	req.Message = strings.Repeat("가", 5) // 15 bytes, 5 characters
	if err := req.Validate(); err == nil {
		t.Fatal("5-character message accepted")
	}

	req.Message = strings.Repeat("가", 10)
	if err := req.Validate(); err != nil {
		t.Fatalf("10-character message rejected: %v", err)
	}

	req.Message = strings.Repeat("가", 500) // 1500 bytes, 500 characters
	if err := req.Validate(); err != nil {
		t.Fatalf("500-character message rejected: %v", err)
	}

	req.Message = strings.Repeat("가", 501)
	if err := req.Validate(); err == nil {
		t.Fatal("501-character message accepted")
	}
}

func TestCampaignBoundsCountCharacters(t *testing.T) {
	req := validCreateCampaign()
	req.Title = strings.Repeat("체", 200) // 600 bytes, 200 characters
	req.Location = strings.Repeat("서", 500)
	if _, err := req.Validate(); err != nil {
		t.Fatalf("character-bounded fields rejected: %v", err)
	}

	req.Title = strings.Repeat("체", 201)
	if _, err := req.Validate(); err == nil {
		t.Fatal("201-character title accepted")
	}
}
