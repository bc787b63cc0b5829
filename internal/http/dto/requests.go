package dto

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const dateOnly = "2006-01-02"

// parseDateTime accepts RFC3339 timestamps and bare dates. Comparisons
// downstream happen on the parsed instants, never on the raw strings.
func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q", s)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

type SignupRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
}

func (r *SignupRequest) Validate() error {
	if r.Name == "" || utf8.RuneCountInString(r.Name) > 100 {
		return fmt.Errorf("name is required and must be at most 100 characters")
	}
	if r.Email == "" || len(r.Email) > 254 {
		return fmt.Errorf("email is required")
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAdvertiserProfileRequest struct {
	CompanyName    string `json:"company_name"`
	Location       string `json:"location"`
	Category       string `json:"category"`
	BusinessNumber string `json:"business_number"`
}

func (r *CreateAdvertiserProfileRequest) Validate() error {
	if r.CompanyName == "" || utf8.RuneCountInString(r.CompanyName) > 200 {
		return fmt.Errorf("company_name is required and must be at most 200 characters")
	}
	if r.Location == "" {
		return fmt.Errorf("location is required")
	}
	if r.Category == "" {
		return fmt.Errorf("category is required")
	}
	if r.BusinessNumber == "" {
		return fmt.Errorf("business_number is required")
	}
	return nil
}

type ChannelRequest struct {
	ChannelType string `json:"channel_type"`
	ChannelName string `json:"channel_name"`
	ChannelURL  string `json:"channel_url"`
}

type CreateInfluencerProfileRequest struct {
	BirthDate string           `json:"birth_date"`
	Channels  []ChannelRequest `json:"channels"`
}

func (r *CreateInfluencerProfileRequest) Validate() error {
	if _, err := parseDate(r.BirthDate); err != nil {
		return err
	}
	if len(r.Channels) == 0 {
		return fmt.Errorf("at least one channel is required")
	}
	for _, ch := range r.Channels {
		if ch.ChannelType == "" || ch.ChannelName == "" || ch.ChannelURL == "" {
			return fmt.Errorf("channel_type, channel_name and channel_url are required for every channel")
		}
	}
	return nil
}

type CreateCampaignRequest struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	Location            string `json:"location"`
	Benefits            string `json:"benefits"`
	Mission             string `json:"mission"`
	RecruitCount        int    `json:"recruit_count"`
	RecruitStartDate    string `json:"recruit_start_date"`
	RecruitEndDate      string `json:"recruit_end_date"`
	ExperienceStartDate string `json:"experience_start_date"`
	ExperienceEndDate   string `json:"experience_end_date"`
}

// ParsedCampaignDates carries the validated instants out of Validate so the
// handler never re-parses the raw strings.
type ParsedCampaignDates struct {
	RecruitStart time.Time
	RecruitEnd   time.Time
}

func (r *CreateCampaignRequest) Validate() (*ParsedCampaignDates, error) {
	if r.Title == "" || utf8.RuneCountInString(r.Title) > 200 {
		return nil, fmt.Errorf("title is required and must be at most 200 characters")
	}
	if r.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if r.Location == "" || utf8.RuneCountInString(r.Location) > 500 {
		return nil, fmt.Errorf("location is required and must be at most 500 characters")
	}
	if r.Benefits == "" {
		return nil, fmt.Errorf("benefits is required")
	}
	if r.Mission == "" {
		return nil, fmt.Errorf("mission is required")
	}
	if r.RecruitCount <= 0 {
		return nil, fmt.Errorf("recruit_count must be positive")
	}

	recruitStart, err := parseDateTime(r.RecruitStartDate)
	if err != nil {
		return nil, err
	}
	recruitEnd, err := parseDateTime(r.RecruitEndDate)
	if err != nil {
		return nil, err
	}
	if recruitEnd.Before(recruitStart) {
		return nil, fmt.Errorf("recruit_end_date must not be before recruit_start_date")
	}

	expStart, err := parseDate(r.ExperienceStartDate)
	if err != nil {
		return nil, err
	}
	expEnd, err := parseDate(r.ExperienceEndDate)
	if err != nil {
		return nil, err
	}
	if expEnd.Before(expStart) {
		return nil, fmt.Errorf("experience_end_date must not be before experience_start_date")
	}

	return &ParsedCampaignDates{RecruitStart: recruitStart, RecruitEnd: recruitEnd}, nil
}

type UpdateCampaignRequest struct {
	Title               *string `json:"title,omitempty"`
	Description         *string `json:"description,omitempty"`
	Location            *string `json:"location,omitempty"`
	Benefits            *string `json:"benefits,omitempty"`
	Mission             *string `json:"mission,omitempty"`
	RecruitCount        *int    `json:"recruit_count,omitempty"`
	RecruitStartDate    *string `json:"recruit_start_date,omitempty"`
	RecruitEndDate      *string `json:"recruit_end_date,omitempty"`
	ExperienceStartDate *string `json:"experience_start_date,omitempty"`
	ExperienceEndDate   *string `json:"experience_end_date,omitempty"`
}

// Validate checks only the fields that were supplied. Date ordering across
// a supplied/stored boundary is not enforced here; partial updates keep the
// store's original loose semantics.
func (r *UpdateCampaignRequest) Validate() (start, end *time.Time, err error) {
	if r.Title != nil && (*r.Title == "" || utf8.RuneCountInString(*r.Title) > 200) {
		return nil, nil, fmt.Errorf("title must be non-empty and at most 200 characters")
	}
	if r.Description != nil && *r.Description == "" {
		return nil, nil, fmt.Errorf("description must be non-empty")
	}
	if r.Location != nil && (*r.Location == "" || utf8.RuneCountInString(*r.Location) > 500) {
		return nil, nil, fmt.Errorf("location must be non-empty and at most 500 characters")
	}
	if r.Benefits != nil && *r.Benefits == "" {
		return nil, nil, fmt.Errorf("benefits must be non-empty")
	}
	if r.Mission != nil && *r.Mission == "" {
		return nil, nil, fmt.Errorf("mission must be non-empty")
	}
	if r.RecruitCount != nil && *r.RecruitCount <= 0 {
		return nil, nil, fmt.Errorf("recruit_count must be positive")
	}
	if r.RecruitStartDate != nil {
		t, perr := parseDateTime(*r.RecruitStartDate)
		if perr != nil {
			return nil, nil, perr
		}
		start = &t
	}
	if r.RecruitEndDate != nil {
		t, perr := parseDateTime(*r.RecruitEndDate)
		if perr != nil {
			return nil, nil, perr
		}
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, fmt.Errorf("recruit_end_date must not be before recruit_start_date")
	}
	var expStart, expEnd *time.Time
	if r.ExperienceStartDate != nil {
		t, perr := parseDate(*r.ExperienceStartDate)
		if perr != nil {
			return nil, nil, perr
		}
		expStart = &t
	}
	if r.ExperienceEndDate != nil {
		t, perr := parseDate(*r.ExperienceEndDate)
		if perr != nil {
			return nil, nil, perr
		}
		expEnd = &t
	}
	if expStart != nil && expEnd != nil && expEnd.Before(*expStart) {
		return nil, nil, fmt.Errorf("experience_end_date must not be before experience_start_date")
	}
	return start, end, nil
}

type UpdateCampaignStatusRequest struct {
	Status string `json:"status"`
}

type CreateApplicationRequest struct {
	CampaignID string `json:"campaign_id"`
	Message    string `json:"message"`
	VisitDate  string `json:"visit_date"`
}

func (r *CreateApplicationRequest) Validate() error {
	if n := utf8.RuneCountInString(r.Message); n < 10 || n > 500 {
		return fmt.Errorf("message must be between 10 and 500 characters")
	}
	if _, err := parseDate(r.VisitDate); err != nil {
		return err
	}
	return nil
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

type SelectApplicantsRequest struct {
	SelectedApplicationIDs []string `json:"selected_application_ids"`
}
