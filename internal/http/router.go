package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/trial-marketplace/backend/internal/config"
	"github.com/trial-marketplace/backend/internal/http/handlers"
	"github.com/trial-marketplace/backend/internal/middleware"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	campaignHandler *handlers.CampaignHandler,
	applicationHandler *handlers.ApplicationHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Rate limit everything under /api/v1, auth endpoints included.
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Auth (public)
	api.Post("/auth/signup", authHandler.Signup)
	api.Post("/auth/login", authHandler.Login)

	// Campaign browsing is public; anonymous visitors see listings before
	// signing up. /campaigns/my carries its own auth and must be registered
	// before :id so "my" is not captured as a campaign id.
	api.Get("/campaigns", campaignHandler.ListCampaigns)
	api.Get("/campaigns/my", middleware.AuthMiddleware(cfg, log), campaignHandler.ListMyCampaigns)
	api.Get("/campaigns/:id", campaignHandler.GetCampaign)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// User
	protected.Get("/me", authHandler.GetMe)

	// Profiles
	protected.Post("/advertiser/profile", profileHandler.CreateAdvertiserProfile)
	protected.Get("/advertiser/profile", profileHandler.GetAdvertiserProfile)
	protected.Post("/influencer/profile", profileHandler.CreateInfluencerProfile)
	protected.Get("/influencer/profile", profileHandler.GetInfluencerProfile)

	// Campaigns
	protected.Post("/campaigns", campaignHandler.CreateCampaign)
	protected.Patch("/campaigns/:id", campaignHandler.UpdateCampaign)
	protected.Patch("/campaigns/:id/status", campaignHandler.UpdateCampaignStatus)

	// Applications
	protected.Post("/applications", applicationHandler.CreateApplication)
	protected.Get("/applications/my", applicationHandler.ListMyApplications)
	protected.Patch("/applications/:id/status", applicationHandler.UpdateApplicationStatus)
	protected.Get("/campaigns/:id/applications", applicationHandler.ListCampaignApplications)
	protected.Get("/campaigns/:id/application-status", applicationHandler.GetApplicationStatus)
	protected.Post("/campaigns/:id/select-applicants", applicationHandler.SelectApplicants)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
