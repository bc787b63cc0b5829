package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trial-marketplace/backend/internal/models"
)

type ApplicationRepo struct {
	pool *pgxpool.Pool
}

func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

func (r *ApplicationRepo) Create(ctx context.Context, a *models.Application) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO applications (campaign_id, influencer_profile_id, message, visit_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, a.CampaignID, a.InfluencerProfileID, a.Message, a.VisitDate, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var a models.Application
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, influencer_profile_id, message, to_char(visit_date, 'YYYY-MM-DD'),
		       status, created_at, updated_at
		FROM applications WHERE id = $1
	`, id).Scan(&a.ID, &a.CampaignID, &a.InfluencerProfileID, &a.Message, &a.VisitDate,
		&a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepo) GetByCampaignAndProfile(ctx context.Context, campaignID, profileID uuid.UUID) (*models.Application, error) {
	var a models.Application
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, influencer_profile_id, message, to_char(visit_date, 'YYYY-MM-DD'),
		       status, created_at, updated_at
		FROM applications WHERE campaign_id = $1 AND influencer_profile_id = $2
	`, campaignID, profileID).Scan(&a.ID, &a.CampaignID, &a.InfluencerProfileID, &a.Message,
		&a.VisitDate, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]models.ApplicationWithCampaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.campaign_id, a.influencer_profile_id, a.message, to_char(a.visit_date, 'YYYY-MM-DD'),
		       a.status, a.created_at, a.updated_at, c.title
		FROM applications a
		JOIN campaigns c ON c.id = a.campaign_id
		WHERE a.influencer_profile_id = $1
		ORDER BY a.created_at DESC
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.ApplicationWithCampaign
	for rows.Next() {
		var a models.ApplicationWithCampaign
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.InfluencerProfileID, &a.Message, &a.VisitDate,
			&a.Status, &a.CreatedAt, &a.UpdatedAt, &a.CampaignTitle); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, nil
}

func (r *ApplicationRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.ApplicationWithInfluencer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.campaign_id, a.influencer_profile_id, a.message, to_char(a.visit_date, 'YYYY-MM-DD'),
		       a.status, a.created_at, a.updated_at, u.name, u.email
		FROM applications a
		JOIN influencer_profiles p ON p.id = a.influencer_profile_id
		JOIN users u ON u.id = p.user_id
		WHERE a.campaign_id = $1
		ORDER BY a.created_at DESC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.ApplicationWithInfluencer
	for rows.Next() {
		var a models.ApplicationWithInfluencer
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.InfluencerProfileID, &a.Message, &a.VisitDate,
			&a.Status, &a.CreatedAt, &a.UpdatedAt, &a.InfluencerName, &a.InfluencerEmail); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, nil
}

func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	return err
}

// SelectApplicants finalizes a campaign's selection in one transaction:
// chosen applications become selected, the campaign's remaining applications
// become rejected, and the campaign itself moves to selection_completed.
// Returns the affected-row counts for the two application updates.
func (r *ApplicationRepo) SelectApplicants(ctx context.Context, campaignID uuid.UUID, selectedIDs []uuid.UUID) (int64, int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback(ctx)

	selTag, err := tx.Exec(ctx, `
		UPDATE applications SET status = 'selected', updated_at = now()
		WHERE campaign_id = $1 AND id = ANY($2)
	`, campaignID, selectedIDs)
	if err != nil {
		return 0, 0, err
	}

	rejTag, err := tx.Exec(ctx, `
		UPDATE applications SET status = 'rejected', updated_at = now()
		WHERE campaign_id = $1 AND NOT (id = ANY($2))
	`, campaignID, selectedIDs)
	if err != nil {
		return 0, 0, err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE campaigns SET status = 'selection_completed', updated_at = now() WHERE id = $1
	`, campaignID); err != nil {
		return 0, 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, err
	}
	return selTag.RowsAffected(), rejTag.RowsAffected(), nil
}
