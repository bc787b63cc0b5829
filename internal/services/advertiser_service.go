package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trial-marketplace/backend/internal/apperr"
	"github.com/trial-marketplace/backend/internal/models"
	"github.com/trial-marketplace/backend/internal/repositories"
	"github.com/trial-marketplace/backend/internal/validation"
)

type AdvertiserService struct {
	advertiserRepo *repositories.AdvertiserRepo
	auditRepo      *repositories.AuditRepo
	log            *zap.Logger
}

func NewAdvertiserService(
	advertiserRepo *repositories.AdvertiserRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *AdvertiserService {
	return &AdvertiserService{
		advertiserRepo: advertiserRepo,
		auditRepo:      auditRepo,
		log:            log,
	}
}

type CreateAdvertiserProfileInput struct {
	CompanyName    string
	Location       string
	Category       string
	BusinessNumber string
}

func (s *AdvertiserService) CreateProfile(ctx context.Context, userID uuid.UUID, input CreateAdvertiserProfileInput) (*models.AdvertiserProfile, error) {
	if _, err := s.advertiserRepo.GetByUserID(ctx, userID); err == nil {
		return nil, apperr.New(409, apperr.CodeProfileAlreadyExists, "advertiser profile already exists")
	}

	if ok, msg := validation.ValidateBusinessNumber(input.BusinessNumber); !ok {
		return nil, apperr.New(400, apperr.CodeInvalidBusinessNumber, msg)
	}

	taken, err := s.advertiserRepo.ExistsByBusinessNumber(ctx, input.BusinessNumber)
	if err != nil {
		return nil, apperr.Wrap(500, apperr.CodeFetchError, "failed to check business number", err)
	}
	if taken {
		return nil, apperr.New(409, apperr.CodeBusinessNumberExists, "business number is already registered")
	}

	profile := &models.AdvertiserProfile{
		UserID:             userID,
		CompanyName:        input.CompanyName,
		Location:           input.Location,
		Category:           input.Category,
		BusinessNumber:     input.BusinessNumber,
		VerificationStatus: models.VerificationPending,
	}

	if err := s.advertiserRepo.Create(ctx, profile); err != nil {
		return nil, apperr.Wrap(500, apperr.CodeCreationFailed, "failed to create advertiser profile", err)
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "advertiser_profile_created",
		EntityType:  "advertiser_profile",
		EntityID:    &profile.ID,
	})

	return profile, nil
}

func (s *AdvertiserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.AdvertiserProfile, error) {
	profile, err := s.advertiserRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.New(404, apperr.CodeProfileNotFound, "advertiser profile not found")
	}
	return profile, nil
}
