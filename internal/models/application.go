package models

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses
const (
	ApplicationStatusSubmitted = "submitted"
	ApplicationStatusSelected  = "selected"
	ApplicationStatusRejected  = "rejected"
)

// IsDecidedApplicationStatus reports whether status is one an advertiser may
// assign; submitted is the insert-only initial state.
func IsDecidedApplicationStatus(status string) bool {
	return status == ApplicationStatusSelected || status == ApplicationStatusRejected
}

type Application struct {
	ID                  uuid.UUID `json:"id"`
	CampaignID          uuid.UUID `json:"campaign_id"`
	InfluencerProfileID uuid.UUID `json:"influencer_profile_id"`
	Message             string    `json:"message"`
	VisitDate           string    `json:"visit_date"` // YYYY-MM-DD
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ApplicationWithCampaign embeds Application and adds the campaign title to
// avoid N+1 queries on the "my applications" listing.
type ApplicationWithCampaign struct {
	Application
	CampaignTitle string `json:"campaign_title"`
}

// ApplicationWithInfluencer attaches applicant identity for the advertiser's
// applicant review screen.
type ApplicationWithInfluencer struct {
	Application
	InfluencerName  string `json:"influencer_name"`
	InfluencerEmail string `json:"influencer_email"`
}
