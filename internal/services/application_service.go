package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/trial-marketplace/backend/internal/apperr"
	"github.com/trial-marketplace/backend/internal/events"
	"github.com/trial-marketplace/backend/internal/models"
	"github.com/trial-marketplace/backend/internal/repositories"
)

type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepo
	campaignRepo    *repositories.CampaignRepo
	advertiserRepo  *repositories.AdvertiserRepo
	influencerRepo  *repositories.InfluencerRepo
	auditRepo       *repositories.AuditRepo
	publisher       events.Publisher
	log             *zap.Logger
}

func NewApplicationService(
	applicationRepo *repositories.ApplicationRepo,
	campaignRepo *repositories.CampaignRepo,
	advertiserRepo *repositories.AdvertiserRepo,
	influencerRepo *repositories.InfluencerRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		campaignRepo:    campaignRepo,
		advertiserRepo:  advertiserRepo,
		influencerRepo:  influencerRepo,
		auditRepo:       auditRepo,
		publisher:       publisher,
		log:             log,
	}
}

// Create submits an application. Preconditions run in order, first failure
// wins: influencer profile, campaign exists, campaign recruiting, no
// duplicate application for the (campaign, profile) pair.
func (s *ApplicationService) Create(ctx context.Context, userID, campaignID uuid.UUID, message, visitDate string) (*models.Application, error) {
	profile, err := s.influencerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.New(404, apperr.CodeProfileNotFound, "influencer profile not found, register a profile first")
	}

	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(404, apperr.CodeCampaignNotFound, "campaign not found")
		}
		return nil, apperr.Wrap(500, apperr.CodeFetchError, "failed to fetch campaign", err)
	}

	if campaign.Status != models.CampaignStatusRecruiting {
		return nil, apperr.New(400, apperr.CodeCampaignNotRecruiting, "campaign is not recruiting")
	}

	if _, err := s.applicationRepo.GetByCampaignAndProfile(ctx, campaignID, profile.ID); err == nil {
		return nil, apperr.New(409, apperr.CodeAlreadyApplied, "you have already applied to this campaign")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Wrap(500, apperr.CodeFetchError, "failed to check existing application", err)
	}

	application := &models.Application{
		CampaignID:          campaignID,
		InfluencerProfileID: profile.ID,
		Message:             message,
		VisitDate:           visitDate,
		Status:              models.ApplicationStatusSubmitted,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, apperr.Wrap(500, apperr.CodeCreationFailed, "failed to submit application", err)
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "application_submitted",
		EntityType:  "application",
		EntityID:    &application.ID,
		Meta:        map[string]any{"campaign_id": campaignID.String()},
	})

	_ = s.publisher.Publish(ctx, events.StreamApplication, events.Event{
		Type: events.EventApplicationSubmitted,
		Payload: map[string]any{
			"application_id": application.ID.String(),
			"campaign_id":    campaignID.String(),
		},
	})

	return application, nil
}

func (s *ApplicationService) ListMine(ctx context.Context, userID uuid.UUID) ([]models.ApplicationWithCampaign, error) {
	profile, err := s.influencerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.New(404, apperr.CodeProfileNotFound, "influencer profile not found")
	}

	apps, err := s.applicationRepo.ListByProfile(ctx, profile.ID)
	if err != nil {
		return nil, apperr.Wrap(500, apperr.CodeFetchError, "failed to list applications", err)
	}
	if apps == nil {
		apps = []models.ApplicationWithCampaign{}
	}
	return apps, nil
}

func (s *ApplicationService) ListForCampaign(ctx context.Context, userID, campaignID uuid.UUID) ([]models.ApplicationWithInfluencer, error) {
	if _, err := s.ownedCampaign(ctx, userID, campaignID); err != nil {
		return nil, err
	}

	apps, err := s.applicationRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, apperr.Wrap(500, apperr.CodeFetchError, "failed to list applications", err)
	}
	if apps == nil {
		apps = []models.ApplicationWithInfluencer{}
	}
	return apps, nil
}

type ApplicationStatusProbe struct {
	Applied       bool       `json:"applied"`
	ApplicationID *uuid.UUID `json:"application_id,omitempty"`
	Status        *string    `json:"status,omitempty"`
}

// StatusProbe is an existence check, not a strict fetch: a missing profile
// or application answers applied=false instead of erroring.
func (s *ApplicationService) StatusProbe(ctx context.Context, userID, campaignID uuid.UUID) (*ApplicationStatusProbe, error) {
	profile, err := s.influencerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return &ApplicationStatusProbe{Applied: false}, nil
	}

	application, err := s.applicationRepo.GetByCampaignAndProfile(ctx, campaignID, profile.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &ApplicationStatusProbe{Applied: false}, nil
		}
		return nil, apperr.Wrap(500, apperr.CodeFetchError, "failed to check application", err)
	}

	return &ApplicationStatusProbe{
		Applied:       true,
		ApplicationID: &application.ID,
		Status:        &application.Status,
	}, nil
}

// UpdateStatus changes a single application to selected or rejected. Only
// the owner of the parent campaign may do this; the campaign status itself
// is not checked here, unlike the bulk selection.
func (s *ApplicationService) UpdateStatus(ctx context.Context, userID, applicationID uuid.UUID, newStatus string) (*models.Application, error) {
	if !models.IsDecidedApplicationStatus(newStatus) {
		return nil, apperr.New(400, apperr.CodeInvalidStatus, fmt.Sprintf("status must be selected or rejected, got %q", newStatus))
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(404, apperr.CodeApplicationNotFound, "application not found")
		}
		return nil, apperr.Wrap(500, apperr.CodeFetchError, "failed to fetch application", err)
	}

	if _, err := s.ownedCampaign(ctx, userID, application.CampaignID); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, newStatus); err != nil {
		return nil, apperr.Wrap(500, apperr.CodeUpdateFailed, "failed to update application status", err)
	}
	application.Status = newStatus

	_ = s.publisher.Publish(ctx, events.StreamApplication, events.Event{
		Type: events.EventApplicationStatusChanged,
		Payload: map[string]any{
			"application_id": application.ID.String(),
			"new_status":     newStatus,
		},
	})

	return application, nil
}

type SelectionResult struct {
	Selected int64 `json:"selected"`
	Rejected int64 `json:"rejected"`
}

// SelectApplicants finalizes a campaign: chosen applications become
// selected, all others rejected, and the campaign moves to
// selection_completed, atomically. Requires the campaign to be exactly in
// recruit_ended.
func (s *ApplicationService) SelectApplicants(ctx context.Context, userID, campaignID uuid.UUID, selectedIDs []uuid.UUID) (*SelectionResult, error) {
	if len(selectedIDs) == 0 {
		return nil, apperr.New(400, apperr.CodeInvalidRequest, "selected application ids must not be empty")
	}
	selectedIDs = dedupeIDs(selectedIDs)

	campaign, err := s.ownedCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	if campaign.Status != models.CampaignStatusRecruitEnded {
		return nil, apperr.New(400, apperr.CodeCampaignNotRecruiting, "selection is only possible after recruiting has ended")
	}

	selected, rejected, err := s.applicationRepo.SelectApplicants(ctx, campaignID, selectedIDs)
	if err != nil {
		return nil, apperr.Wrap(500, apperr.CodeUpdateFailed, "failed to finalize selection", err)
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "selection_completed",
		EntityType:  "campaign",
		EntityID:    &campaignID,
		Meta:        map[string]any{"selected": selected, "rejected": rejected},
	})

	_ = s.publisher.Publish(ctx, events.StreamCampaign, events.Event{
		Type: events.EventSelectionCompleted,
		Payload: map[string]any{
			"campaign_id": campaignID.String(),
			"selected":    selected,
			"rejected":    rejected,
		},
	})

	return &SelectionResult{Selected: selected, Rejected: rejected}, nil
}

// ownedCampaign mirrors CampaignService.ownedCampaign for application
// operations that gate on parent-campaign ownership.
func (s *ApplicationService) ownedCampaign(ctx context.Context, userID, campaignID uuid.UUID) (*models.Campaign, error) {
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

// dedupeIDs drops duplicate ids while preserving order so affected-row
// counts match what the caller selected.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
