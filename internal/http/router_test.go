package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/trial-marketplace/backend/internal/config"
	"github.com/trial-marketplace/backend/internal/events"
	"github.com/trial-marketplace/backend/internal/http/handlers"
	"github.com/trial-marketplace/backend/internal/repositories"
	"github.com/trial-marketplace/backend/internal/services"
	"go.uber.org/zap"
)

// newTestApp wires the real router with inert backends: the redis client
// points at a closed port so the limiter fails open, and no request in
// these tests reaches postgres.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := zap.NewNop()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpiration:      time.Hour,
		RateLimitPerMinute: 100,
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})

	userRepo := repositories.NewUserRepo(nil)
	advertiserRepo := repositories.NewAdvertiserRepo(nil)
	influencerRepo := repositories.NewInfluencerRepo(nil)
	campaignRepo := repositories.NewCampaignRepo(nil)
	applicationRepo := repositories.NewApplicationRepo(nil)
	auditRepo := repositories.NewAuditRepo(nil)

	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	authService := services.NewAuthService(cfg, userRepo, log)
	advertiserService := services.NewAdvertiserService(advertiserRepo, auditRepo, log)
	influencerService := services.NewInfluencerService(influencerRepo, auditRepo, log)
	campaignService := services.NewCampaignService(campaignRepo, advertiserRepo, auditRepo, publisher, log)
	applicationService := services.NewApplicationService(applicationRepo, campaignRepo, advertiserRepo, influencerRepo, auditRepo, publisher, log)

	authHandler := handlers.NewAuthHandler(authService, log)
	profileHandler := handlers.NewProfileHandler(advertiserService, influencerService, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	applicationHandler := handlers.NewApplicationHandler(applicationService, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	app := fiber.New()
	SetupRouter(app, cfg, log, rdb, authHandler, profileHandler, campaignHandler, applicationHandler, wsHub)
	return app
}

func TestHealthIsPublic(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil), -1)
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("health returned %d", resp.StatusCode)
	}
}

// Campaign browsing must not require a token. Both requests are shaped to
// be rejected by input validation, proving they reached the handler rather
// than dying in the auth middleware with 401.
func TestCampaignBrowsingIsPublic(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/campaigns?sort=bogus", nil), -1)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("anonymous list got %d, want 400 from the handler", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/campaigns/not-a-uuid", nil), -1)
	if err != nil {
		t.Fatalf("detail request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("anonymous detail got %d, want 400 from the handler", resp.StatusCode)
	}
}

// /campaigns/my stays auth-gated and must win over the public :id route;
// a 400 here would mean "my" was parsed as a campaign id.
func TestMyCampaignsRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/campaigns/my", nil), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("anonymous /campaigns/my got %d, want 401", resp.StatusCode)
	}
}

func TestWriteRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	for _, tt := range []struct {
		method string
		path   string
	}{
		{fiber.MethodGet, "/api/v1/me"},
		{fiber.MethodPost, "/api/v1/campaigns"},
		{fiber.MethodPatch, "/api/v1/campaigns/7f6f2b1e-0000-0000-0000-000000000000/status"},
		{fiber.MethodPost, "/api/v1/applications"},
		{fiber.MethodGet, "/api/v1/applications/my"},
		{fiber.MethodPost, "/api/v1/advertiser/profile"},
	} {
		resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil), -1)
		if err != nil {
			t.Fatalf("%s %s failed: %v", tt.method, tt.path, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("anonymous %s %s got %d, want 401", tt.method, tt.path, resp.StatusCode)
		}
	}
}

// The limiter is mounted on /api/v1 before any route, so the auth endpoints
// sit behind it too. The first /api/v1 use entry in the stack must precede
// the signup route.
func TestRateLimiterCoversAuthRoutes(t *testing.T) {
	app := newTestApp(t)

	for _, stack := range app.Stack() {
		limiterIdx, signupIdx := -1, -1
		for i, route := range stack {
			if route.Path == "/api/v1" && limiterIdx == -1 {
				limiterIdx = i
			}
			if route.Method == fiber.MethodPost && route.Path == "/api/v1/auth/signup" {
				signupIdx = i
			}
		}
		if signupIdx == -1 {
			continue
		}
		if limiterIdx == -1 || limiterIdx > signupIdx {
			t.Fatalf("rate limiter (idx %d) does not precede signup route (idx %d)", limiterIdx, signupIdx)
		}
	}
}
