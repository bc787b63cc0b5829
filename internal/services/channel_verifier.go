package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/trial-marketplace/backend/internal/models"
	"github.com/trial-marketplace/backend/internal/repositories"
)

// ChannelVerifier probes pending SNS channels: it fetches each channel URL
// and checks the page actually resolves to a titled document. This is a
// liveness check, not an ownership proof.
type ChannelVerifier struct {
	influencerRepo *repositories.InfluencerRepo
	auditRepo      *repositories.AuditRepo
	httpClient     *http.Client
	batchSize      int
	log            *zap.Logger
}

func NewChannelVerifier(
	influencerRepo *repositories.InfluencerRepo,
	auditRepo *repositories.AuditRepo,
	timeoutMS, batchSize int,
	log *zap.Logger,
) *ChannelVerifier {
	return &ChannelVerifier{
		influencerRepo: influencerRepo,
		auditRepo:      auditRepo,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutMS) * time.Millisecond,
		},
		batchSize: batchSize,
		log:       log,
	}
}

// RunOnce verifies one batch of pending channels. Errors on individual
// channels mark that channel failed and move on; only listing errors abort
// the pass.
func (v *ChannelVerifier) RunOnce(ctx context.Context) error {
	channels, err := v.influencerRepo.ListPendingChannels(ctx, v.batchSize)
	if err != nil {
		return err
	}

	for _, ch := range channels {
		status := models.VerificationVerified
		if err := v.probe(ctx, ch.ChannelURL); err != nil {
			v.log.Warn("channel probe failed",
				zap.String("channel_id", ch.ID.String()),
				zap.String("url", ch.ChannelURL),
				zap.Error(err),
			)
			status = models.VerificationFailed
		}

		if err := v.influencerRepo.UpdateChannelStatus(ctx, ch.ID, status); err != nil {
			v.log.Error("failed to update channel status",
				zap.String("channel_id", ch.ID.String()), zap.Error(err))
			continue
		}

		channelID := ch.ID
		_ = v.auditRepo.Log(ctx, models.AuditLog{
			ActorType:  "worker",
			Action:     "channel_" + status,
			EntityType: "influencer_channel",
			EntityID:   &channelID,
			Meta:       map[string]any{"url": ch.ChannelURL},
		})
	}

	return nil
}

func (v *ChannelVerifier) probe(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en;q=0.8")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return err
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return fmt.Errorf("page has no title: %s", url)
	}
	return nil
}
