package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trial-marketplace/backend/internal/models"
)

type InfluencerRepo struct {
	pool *pgxpool.Pool
}

func NewInfluencerRepo(pool *pgxpool.Pool) *InfluencerRepo {
	return &InfluencerRepo{pool: pool}
}

func (r *InfluencerRepo) CreateProfile(ctx context.Context, p *models.InfluencerProfile) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO influencer_profiles (user_id, birth_date, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, p.UserID, p.BirthDate, p.Status).Scan(&p.ID, &p.CreatedAt)
}

// DeleteProfile removes a profile whose channel rows failed to insert, so
// onboarding stays all-or-nothing.
func (r *InfluencerRepo) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM influencer_profiles WHERE id = $1`, id)
	return err
}

func (r *InfluencerRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.InfluencerProfile, error) {
	var p models.InfluencerProfile
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, to_char(birth_date, 'YYYY-MM-DD'), status, created_at
		FROM influencer_profiles WHERE user_id = $1
	`, userID).Scan(&p.ID, &p.UserID, &p.BirthDate, &p.Status, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *InfluencerRepo) CreateChannel(ctx context.Context, ch *models.InfluencerChannel) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO influencer_channels (influencer_profile_id, channel_type, channel_name, channel_url, verification_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, ch.InfluencerProfileID, ch.ChannelType, ch.ChannelName, ch.ChannelURL, ch.VerificationStatus,
	).Scan(&ch.ID, &ch.CreatedAt)
}

func (r *InfluencerRepo) GetChannels(ctx context.Context, profileID uuid.UUID) ([]models.InfluencerChannel, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, influencer_profile_id, channel_type, channel_name, channel_url, verification_status, created_at
		FROM influencer_channels WHERE influencer_profile_id = $1
		ORDER BY created_at
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []models.InfluencerChannel
	for rows.Next() {
		var ch models.InfluencerChannel
		if err := rows.Scan(&ch.ID, &ch.InfluencerProfileID, &ch.ChannelType, &ch.ChannelName,
			&ch.ChannelURL, &ch.VerificationStatus, &ch.CreatedAt); err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return channels, nil
}

// ListPendingChannels returns channels awaiting verification, oldest first,
// for the worker to probe.
func (r *InfluencerRepo) ListPendingChannels(ctx context.Context, limit int) ([]models.InfluencerChannel, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, influencer_profile_id, channel_type, channel_name, channel_url, verification_status, created_at
		FROM influencer_channels WHERE verification_status = 'pending'
		ORDER BY created_at LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []models.InfluencerChannel
	for rows.Next() {
		var ch models.InfluencerChannel
		if err := rows.Scan(&ch.ID, &ch.InfluencerProfileID, &ch.ChannelType, &ch.ChannelName,
			&ch.ChannelURL, &ch.VerificationStatus, &ch.CreatedAt); err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return channels, nil
}

func (r *InfluencerRepo) UpdateChannelStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE influencer_channels SET verification_status = $1 WHERE id = $2`, status, id)
	return err
}
