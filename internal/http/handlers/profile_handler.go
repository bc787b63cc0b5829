package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trial-marketplace/backend/internal/http/dto"
	"github.com/trial-marketplace/backend/internal/middleware"
	"github.com/trial-marketplace/backend/internal/services"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	advertiserService *services.AdvertiserService
	influencerService *services.InfluencerService
	log               *zap.Logger
}

func NewProfileHandler(
	advertiserService *services.AdvertiserService,
	influencerService *services.InfluencerService,
	log *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		advertiserService: advertiserService,
		influencerService: influencerService,
		log:               log,
	}
}

func (h *ProfileHandler) CreateAdvertiserProfile(c *fiber.Ctx) error {
	var req dto.CreateAdvertiserProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	profile, err := h.advertiserService.CreateProfile(c.Context(), middleware.GetUserID(c), services.CreateAdvertiserProfileInput{
		CompanyName:    req.CompanyName,
		Location:       req.Location,
		Category:       req.Category,
		BusinessNumber: req.BusinessNumber,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: profile})
}

func (h *ProfileHandler) GetAdvertiserProfile(c *fiber.Ctx) error {
	profile, err := h.advertiserService.GetProfile(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

func (h *ProfileHandler) CreateInfluencerProfile(c *fiber.Ctx) error {
	var req dto.CreateInfluencerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	channels := make([]services.ChannelInput, 0, len(req.Channels))
	for _, ch := range req.Channels {
		channels = append(channels, services.ChannelInput{
			ChannelType: ch.ChannelType,
			ChannelName: ch.ChannelName,
			ChannelURL:  ch.ChannelURL,
		})
	}

	profile, err := h.influencerService.CreateProfile(c.Context(), middleware.GetUserID(c), services.CreateInfluencerProfileInput{
		BirthDate: req.BirthDate,
		Channels:  channels,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: profile})
}

func (h *ProfileHandler) GetInfluencerProfile(c *fiber.Ctx) error {
	profile, err := h.influencerService.GetProfile(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}
