package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trial-marketplace/backend/internal/models"
)

type AdvertiserRepo struct {
	pool *pgxpool.Pool
}

func NewAdvertiserRepo(pool *pgxpool.Pool) *AdvertiserRepo {
	return &AdvertiserRepo{pool: pool}
}

func (r *AdvertiserRepo) Create(ctx context.Context, p *models.AdvertiserProfile) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO advertiser_profiles (user_id, company_name, location, category, business_number, verification_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, p.UserID, p.CompanyName, p.Location, p.Category, p.BusinessNumber, p.VerificationStatus,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *AdvertiserRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.AdvertiserProfile, error) {
	var p models.AdvertiserProfile
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, company_name, location, category, business_number, verification_status, created_at
		FROM advertiser_profiles WHERE user_id = $1
	`, userID).Scan(&p.ID, &p.UserID, &p.CompanyName, &p.Location, &p.Category,
		&p.BusinessNumber, &p.VerificationStatus, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *AdvertiserRepo) ExistsByBusinessNumber(ctx context.Context, businessNumber string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM advertiser_profiles WHERE business_number = $1)`,
		businessNumber).Scan(&exists)
	return exists, err
}
