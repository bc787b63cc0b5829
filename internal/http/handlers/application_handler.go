package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/trial-marketplace/backend/internal/http/dto"
	"github.com/trial-marketplace/backend/internal/middleware"
	"github.com/trial-marketplace/backend/internal/services"
	"go.uber.org/zap"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
	log                *zap.Logger
}

func NewApplicationHandler(applicationService *services.ApplicationService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService, log: log}
}

func (h *ApplicationHandler) CreateApplication(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return badRequest(c, "invalid campaign_id")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	application, err := h.applicationService.Create(c.Context(), middleware.GetUserID(c), campaignID, req.Message, req.VisitDate)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: application})
}

func (h *ApplicationHandler) ListMyApplications(c *fiber.Ctx) error {
	applications, err := h.applicationService.ListMine(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: applications})
}

func (h *ApplicationHandler) ListCampaignApplications(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	applications, err := h.applicationService.ListForCampaign(c.Context(), middleware.GetUserID(c), campaignID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: applications})
}

// GetApplicationStatus answers applied=false rather than 404 when the
// caller has no profile or never applied.
func (h *ApplicationHandler) GetApplicationStatus(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	probe, err := h.applicationService.StatusProbe(c.Context(), middleware.GetUserID(c), campaignID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: probe})
}

func (h *ApplicationHandler) UpdateApplicationStatus(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid application id")
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return badRequest(c, "status is required")
	}

	application, err := h.applicationService.UpdateStatus(c.Context(), middleware.GetUserID(c), applicationID, req.Status)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: application})
}

func (h *ApplicationHandler) SelectApplicants(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	var req dto.SelectApplicantsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(req.SelectedApplicationIDs) == 0 {
		return badRequest(c, "selected_application_ids must not be empty")
	}

	ids := make([]uuid.UUID, 0, len(req.SelectedApplicationIDs))
	for _, raw := range req.SelectedApplicationIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "selected_application_ids contains an invalid id")
		}
		ids = append(ids, id)
	}

	result, err := h.applicationService.SelectApplicants(c.Context(), middleware.GetUserID(c), campaignID, ids)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.SelectionResponse{
		SelectedCount: result.Selected,
		RejectedCount: result.Rejected,
	}})
}
