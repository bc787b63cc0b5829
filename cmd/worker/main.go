package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trial-marketplace/backend/internal/config"
	"github.com/trial-marketplace/backend/internal/db"
	"github.com/trial-marketplace/backend/internal/repositories"
	"github.com/trial-marketplace/backend/internal/services"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	influencerRepo := repositories.NewInfluencerRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	verifier := services.NewChannelVerifier(influencerRepo, auditRepo, cfg.ChannelVerifyTimeoutMS, cfg.ChannelVerifyBatchSize, log)

	log.Info("worker started", zap.Duration("interval", cfg.ChannelVerifyInterval))

	ticker := time.NewTicker(cfg.ChannelVerifyInterval)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// First pass right away so fresh channels are not stuck for a full
	// interval after deploy.
	if err := verifier.RunOnce(ctx); err != nil {
		log.Error("channel verification pass failed", zap.Error(err))
	}

	for {
		select {
		case <-ticker.C:
			if err := verifier.RunOnce(ctx); err != nil {
				log.Error("channel verification pass failed", zap.Error(err))
			}
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}
