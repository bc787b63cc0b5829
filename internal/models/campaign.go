package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses
const (
	CampaignStatusRecruiting         = "recruiting"
	CampaignStatusRecruitEnded       = "recruit_ended"
	CampaignStatusSelectionCompleted = "selection_completed"
	CampaignStatusCancelled          = "cancelled"
)

// Valid state transitions: from -> []to
var ValidCampaignTransitions = map[string][]string{
	CampaignStatusRecruiting:         {CampaignStatusRecruitEnded, CampaignStatusCancelled},
	CampaignStatusRecruitEnded:       {CampaignStatusSelectionCompleted, CampaignStatusCancelled},
	CampaignStatusSelectionCompleted: {},
	CampaignStatusCancelled:          {},
}

func IsValidCampaignTransition(from, to string) bool {
	allowed, ok := ValidCampaignTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

func IsValidCampaignStatus(status string) bool {
	_, ok := ValidCampaignTransitions[status]
	return ok
}

type Campaign struct {
	ID                  uuid.UUID `json:"id"`
	AdvertiserProfileID uuid.UUID `json:"advertiser_profile_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Location            string    `json:"location"`
	Benefits            string    `json:"benefits"`
	Mission             string    `json:"mission"`
	RecruitCount        int       `json:"recruit_count"`
	RecruitStartDate    time.Time `json:"recruit_start_date"`
	RecruitEndDate      time.Time `json:"recruit_end_date"`
	ExperienceStartDate string    `json:"experience_start_date"` // YYYY-MM-DD
	ExperienceEndDate   string    `json:"experience_end_date"`   // YYYY-MM-DD
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CampaignListItem is the projection returned by list endpoints so responses
// stay bounded regardless of description/mission length.
type CampaignListItem struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Location       string    `json:"location"`
	RecruitCount   int       `json:"recruit_count"`
	RecruitEndDate time.Time `json:"recruit_end_date"`
	Status         string    `json:"status"`
}
