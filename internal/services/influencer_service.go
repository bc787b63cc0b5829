package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trial-marketplace/backend/internal/apperr"
	"github.com/trial-marketplace/backend/internal/models"
	"github.com/trial-marketplace/backend/internal/repositories"
	"github.com/trial-marketplace/backend/internal/validation"
)

type InfluencerService struct {
	influencerRepo *repositories.InfluencerRepo
	auditRepo      *repositories.AuditRepo
	log            *zap.Logger
}

func NewInfluencerService(
	influencerRepo *repositories.InfluencerRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *InfluencerService {
	return &InfluencerService{
		influencerRepo: influencerRepo,
		auditRepo:      auditRepo,
		log:            log,
	}
}

type ChannelInput struct {
	ChannelType string
	ChannelName string
	ChannelURL  string
}

type CreateInfluencerProfileInput struct {
	BirthDate string // YYYY-MM-DD
	Channels  []ChannelInput
}

func (s *InfluencerService) CreateProfile(ctx context.Context, userID uuid.UUID, input CreateInfluencerProfileInput) (*models.InfluencerProfileWithChannels, error) {
	if _, err := s.influencerRepo.GetByUserID(ctx, userID); err == nil {
		return nil, apperr.New(409, apperr.CodeProfileAlreadyExists, "influencer profile already exists")
	}

	if !validation.AgeOK(input.BirthDate, time.Now()) {
		return nil, apperr.New(400, apperr.CodeAgeBelowMinimum, "you must be at least 14 years old to register")
	}

	for _, ch := range input.Channels {
		if !validation.ChannelURLOK(ch.ChannelType, ch.ChannelURL) {
			return nil, apperr.New(400, apperr.CodeInvalidChannelURL, "channel URL does not match the selected channel type")
		}
	}

	profile := &models.InfluencerProfile{
		UserID:    userID,
		BirthDate: input.BirthDate,
		Status:    models.VerificationPending,
	}
	if err := s.influencerRepo.CreateProfile(ctx, profile); err != nil {
		return nil, apperr.Wrap(500, apperr.CodeCreationFailed, "failed to create influencer profile", err)
	}

	channels := make([]models.InfluencerChannel, 0, len(input.Channels))
	for _, ch := range input.Channels {
		channel := models.InfluencerChannel{
			InfluencerProfileID: profile.ID,
			ChannelType:         ch.ChannelType,
			ChannelName:         ch.ChannelName,
			ChannelURL:          ch.ChannelURL,
			VerificationStatus:  models.VerificationPending,
		}
		if err := s.influencerRepo.CreateChannel(ctx, &channel); err != nil {
			// roll back the half-created profile so onboarding can be retried
			if delErr := s.influencerRepo.DeleteProfile(ctx, profile.ID); delErr != nil {
				s.log.Error("failed to remove profile after channel insert failure",
					zap.String("profile_id", profile.ID.String()), zap.Error(delErr))
			}
			return nil, apperr.Wrap(500, apperr.CodeCreationFailed, "failed to register channels", err)
		}
		channels = append(channels, channel)
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "influencer_profile_created",
		EntityType:  "influencer_profile",
		EntityID:    &profile.ID,
		Meta:        map[string]any{"channels": len(channels)},
	})

	return &models.InfluencerProfileWithChannels{
		InfluencerProfile: *profile,
		Channels:          channels,
	}, nil
}

func (s *InfluencerService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.InfluencerProfileWithChannels, error) {
	profile, err := s.influencerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.New(404, apperr.CodeProfileNotFound, "influencer profile not found")
	}

	channels, err := s.influencerRepo.GetChannels(ctx, profile.ID)
	if err != nil {
		return nil, apperr.Wrap(500, apperr.CodeFetchError, "failed to fetch channels", err)
	}
	if channels == nil {
		channels = []models.InfluencerChannel{}
	}

	return &models.InfluencerProfileWithChannels{
		InfluencerProfile: *profile,
		Channels:          channels,
	}, nil
}
