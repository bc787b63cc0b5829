package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/trial-marketplace/backend/internal/http/dto"
	"github.com/trial-marketplace/backend/internal/middleware"
	"github.com/trial-marketplace/backend/internal/repositories"
	"github.com/trial-marketplace/backend/internal/services"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	dates, err := req.Validate()
	if err != nil {
		return badRequest(c, err.Error())
	}

	campaign, err := h.campaignService.Create(c.Context(), middleware.GetUserID(c), services.CreateCampaignInput{
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		Benefits:            req.Benefits,
		Mission:             req.Mission,
		RecruitCount:        req.RecruitCount,
		RecruitStartDate:    dates.RecruitStart,
		RecruitEndDate:      dates.RecruitEnd,
		ExperienceStartDate: req.ExperienceStartDate,
		ExperienceEndDate:   req.ExperienceEndDate,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

// parseCampaignFilter builds a list filter from raw query values. Bad page
// and limit values fall back to defaults; an unknown sort is an error.
func parseCampaignFilter(page, limit, status, sort string) (repositories.CampaignFilter, error) {
	filter := repositories.CampaignFilter{
		Page:   1,
		Limit:  20,
		Status: status,
		Sort:   repositories.SortLatest,
	}
	if page != "" {
		if n, err := strconv.Atoi(page); err == nil {
			filter.Page = n
		}
	}
	if limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			filter.Limit = n
		}
	}
	if sort != "" {
		if !repositories.IsValidSort(sort) {
			return filter, fmt.Errorf("sort must be one of latest, ending_soon, popular")
		}
		filter.Sort = sort
	}
	return filter, nil
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	filter, err := parseCampaignFilter(c.Query("page"), c.Query("limit"), c.Query("status"), c.Query("sort"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, err := h.campaignService.List(c.Context(), filter)
	if err != nil {
		h.log.Error("list campaigns failed", zap.Error(err))
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: page})
}

func (h *CampaignHandler) ListMyCampaigns(c *fiber.Ctx) error {
	campaigns, err := h.campaignService.ListMine(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	campaign, err := h.campaignService.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	start, end, err := req.Validate()
	if err != nil {
		return badRequest(c, err.Error())
	}

	campaign, err := h.campaignService.Update(c.Context(), middleware.GetUserID(c), id, services.UpdateCampaignInput{
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		Benefits:            req.Benefits,
		Mission:             req.Mission,
		RecruitCount:        req.RecruitCount,
		RecruitStartDate:    start,
		RecruitEndDate:      end,
		ExperienceStartDate: req.ExperienceStartDate,
		ExperienceEndDate:   req.ExperienceEndDate,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) UpdateCampaignStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	var req dto.UpdateCampaignStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return badRequest(c, "status is required")
	}

	campaign, err := h.campaignService.UpdateStatus(c.Context(), middleware.GetUserID(c), id, req.Status)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}
