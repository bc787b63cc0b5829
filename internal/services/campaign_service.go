package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/trial-marketplace/backend/internal/apperr"
	"github.com/trial-marketplace/backend/internal/events"
	"github.com/trial-marketplace/backend/internal/models"
	"github.com/trial-marketplace/backend/internal/repositories"
)

type CampaignService struct {
	campaignRepo   *repositories.CampaignRepo
	advertiserRepo *repositories.AdvertiserRepo
	auditRepo      *repositories.AuditRepo
	publisher      events.Publisher
	log            *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	advertiserRepo *repositories.AdvertiserRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo:   campaignRepo,
		advertiserRepo: advertiserRepo,
		auditRepo:      auditRepo,
		publisher:      publisher,
		log:            log,
	}
}

type CreateCampaignInput struct {
	Title               string
	Description         string
	Location            string
	Benefits            string
	Mission             string
	RecruitCount        int
	RecruitStartDate    time.Time
	RecruitEndDate      time.Time
	ExperienceStartDate string
	ExperienceEndDate   string
}

func (s *CampaignService) Create(ctx context.Context, userID uuid.UUID, input CreateCampaignInput) (*models.Campaign, error) {
	profile, err := s.advertiserRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.New(404, apperr.CodeProfileNotFound, "advertiser profile not found")
	}

	campaign := &models.Campaign{
		AdvertiserProfileID: profile.ID,
		Title:               input.Title,
		Description:         input.Description,
		Location:            input.Location,
		Benefits:            input.Benefits,
		Mission:             input.Mission,
		RecruitCount:        input.RecruitCount,
		RecruitStartDate:    input.RecruitStartDate,
		RecruitEndDate:      input.RecruitEndDate,
		ExperienceStartDate: input.ExperienceStartDate,
		ExperienceEndDate:   input.ExperienceEndDate,
		Status:              models.CampaignStatusRecruiting,
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, apperr.Wrap(500, apperr.CodeCreationFailed, "failed to create campaign", err)
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &campaign.ID,
		Meta:        map[string]any{"recruit_count": campaign.RecruitCount},
	})

	return campaign, nil
}

type CampaignPage struct {
	Campaigns []models.CampaignListItem `json:"campaigns"`
	Total     int                       `json:"total"`
	Page      int                       `json:"page"`
	Limit     int                       `json:"limit"`
	HasMore   bool                      `json:"has_more"`
}

func (s *CampaignService) List(ctx context.Context, f repositories.CampaignFilter) (*CampaignPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	items, total, err := s.campaignRepo.List(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(500, apperr.CodeFetchError, "failed to list campaigns", err)
	}
	if items == nil {
		items = []models.CampaignListItem{}
	}

	return &CampaignPage{
		Campaigns: items,
		Total:     total,
		Page:      f.Page,
		Limit:     f.Limit,
		HasMore:   repositories.HasMore(f.Offset(), len(items), total),
	}, nil
}

func (s *CampaignService) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(404, apperr.CodeCampaignNotFound, "campaign not found")
		}
		return nil, apperr.Wrap(500, apperr.CodeFetchError, "failed to fetch campaign", err)
	}
	return campaign, nil
}

func (s *CampaignService) ListMine(ctx context.Context, userID uuid.UUID) ([]models.CampaignListItem, error) {
	profile, err := s.advertiserRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.New(404, apperr.CodeProfileNotFound, "advertiser profile not found")
	}

	items, err := s.campaignRepo.ListByOwner(ctx, profile.ID)
	if err != nil {
		return nil, apperr.Wrap(500, apperr.CodeFetchError, "failed to list campaigns", err)
	}
	if items == nil {
		items = []models.CampaignListItem{}
	}
	return items, nil
}

type UpdateCampaignInput struct {
	Title               *string
	Description         *string
	Location            *string
	Benefits            *string
	Mission             *string
	RecruitCount        *int
	RecruitStartDate    *time.Time
	RecruitEndDate      *time.Time
	ExperienceStartDate *string
	ExperienceEndDate   *string
}

// Update applies the supplied fields only; nil fields keep their stored
// value. Field edits are not gated by campaign status, only the status
// endpoint enforces the transition table.
func (s *CampaignService) Update(ctx context.Context, userID, campaignID uuid.UUID, input UpdateCampaignInput) (*models.Campaign, error) {
	campaign, err := s.ownedCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		campaign.Title = *input.Title
	}
	if input.Description != nil {
		campaign.Description = *input.Description
	}
	if input.Location != nil {
		campaign.Location = *input.Location
	}
	if input.Benefits != nil {
		campaign.Benefits = *input.Benefits
	}
	if input.Mission != nil {
		campaign.Mission = *input.Mission
	}
	if input.RecruitCount != nil {
		campaign.RecruitCount = *input.RecruitCount
	}
	if input.RecruitStartDate != nil {
		campaign.RecruitStartDate = *input.RecruitStartDate
	}
	if input.RecruitEndDate != nil {
		campaign.RecruitEndDate = *input.RecruitEndDate
	}
	if input.ExperienceStartDate != nil {
		campaign.ExperienceStartDate = *input.ExperienceStartDate
	}
	if input.ExperienceEndDate != nil {
		campaign.ExperienceEndDate = *input.ExperienceEndDate
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, apperr.Wrap(500, apperr.CodeUpdateFailed, "failed to update campaign", err)
	}
	return campaign, nil
}

// UpdateStatus moves a campaign through its lifecycle. Every path goes
// through the transition table; the store itself stays a dumb setter.
func (s *CampaignService) UpdateStatus(ctx context.Context, userID, campaignID uuid.UUID, newStatus string) (*models.Campaign, error) {
	if !models.IsValidCampaignStatus(newStatus) {
		return nil, apperr.New(400, apperr.CodeInvalidStatus, fmt.Sprintf("unknown campaign status %q", newStatus))
	}

	campaign, err := s.ownedCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	if !models.IsValidCampaignTransition(campaign.Status, newStatus) {
		return nil, apperr.New(400, apperr.CodeInvalidStatus,
			fmt.Sprintf("cannot change status from %s to %s", campaign.Status, newStatus))
	}

	oldStatus := campaign.Status
	if err := s.campaignRepo.UpdateStatus(ctx, campaignID, newStatus); err != nil {
		return nil, apperr.Wrap(500, apperr.CodeUpdateFailed, "failed to update campaign status", err)
	}
	campaign.Status = newStatus

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      fmt.Sprintf("campaign_status_%s_to_%s", oldStatus, newStatus),
		EntityType:  "campaign",
		EntityID:    &campaign.ID,
		Meta:        map[string]any{"old_status": oldStatus, "new_status": newStatus},
	})

	_ = s.publisher.Publish(ctx, events.StreamCampaign, events.Event{
		Type: events.EventCampaignStatusChanged,
		Payload: map[string]any{
			"campaign_id": campaign.ID.String(),
			"old_status":  oldStatus,
			"new_status":  newStatus,
		},
	})

	return campaign, nil
}

// ownedCampaign resolves the caller's advertiser profile, loads the campaign
// and enforces ownership. Precondition order matches the rest of the service
// layer: profile, then campaign, then owner.
func (s *CampaignService) ownedCampaign(ctx context.Context, userID, campaignID uuid.UUID) (*models.Campaign, error) {
	profile, err := s.advertiserRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.New(404, apperr.CodeProfileNotFound, "advertiser profile not found")
	}

	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(404, apperr.CodeCampaignNotFound, "campaign not found")
		}
		return nil, apperr.Wrap(500, apperr.CodeFetchError, "failed to fetch campaign", err)
	}

	if campaign.AdvertiserProfileID != profile.ID {
		return nil, apperr.New(403, apperr.CodeNotOwner, "you do not own this campaign")
	}
	return campaign, nil
}
