package models

import (
	"time"

	"github.com/google/uuid"
)

// Verification statuses shared by advertiser profiles and influencer channels.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationFailed   = "failed"
)

// Influencer channel types
const (
	ChannelTypeInstagram = "instagram"
	ChannelTypeYoutube   = "youtube"
	ChannelTypeBlog      = "blog"
	ChannelTypeTiktok    = "tiktok"
)

type AdvertiserProfile struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	CompanyName        string    `json:"company_name"`
	Location           string    `json:"location"`
	Category           string    `json:"category"`
	BusinessNumber     string    `json:"business_number"` // 000-00-00000
	VerificationStatus string    `json:"verification_status"`
	CreatedAt          time.Time `json:"created_at"`
}

type InfluencerProfile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	BirthDate string    `json:"birth_date"` // YYYY-MM-DD
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type InfluencerChannel struct {
	ID                  uuid.UUID `json:"id"`
	InfluencerProfileID uuid.UUID `json:"influencer_profile_id"`
	ChannelType         string    `json:"channel_type"`
	ChannelName         string    `json:"channel_name"`
	ChannelURL          string    `json:"channel_url"`
	VerificationStatus  string    `json:"verification_status"`
	CreatedAt           time.Time `json:"created_at"`
}

// InfluencerProfileWithChannels is the onboarding/profile response shape.
type InfluencerProfileWithChannels struct {
	InfluencerProfile
	Channels []InfluencerChannel `json:"channels"`
}
