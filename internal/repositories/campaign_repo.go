package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trial-marketplace/backend/internal/models"
)

// Sort keys accepted by List.
const (
	SortLatest     = "latest"
	SortEndingSoon = "ending_soon"
	SortPopular    = "popular"
)

// orderings maps sort keys to ORDER BY clauses. "popular" is literally
// recruit capacity, not an engagement metric.
var orderings = map[string]string{
	SortLatest:     "created_at DESC",
	SortEndingSoon: "recruit_end_date ASC",
	SortPopular:    "recruit_count DESC",
}

func IsValidSort(sort string) bool {
	_, ok := orderings[sort]
	return ok
}

type CampaignFilter struct {
	Status string // empty or "all" means no filter
	Sort   string
	Page   int
	Limit  int
}

// Offset is the zero-based row offset for the filter's page.
func (f CampaignFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.normalizedLimit()
}

func (f CampaignFilter) normalizedLimit() int {
	if f.Limit <= 0 || f.Limit > 100 {
		return 20
	}
	return f.Limit
}

// HasMore reports whether rows remain past this page.
func HasMore(offset, returned, total int) bool {
	return offset+returned < total
}

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (advertiser_profile_id, title, description, location, benefits, mission,
		                       recruit_count, recruit_start_date, recruit_end_date,
		                       experience_start_date, experience_end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`, c.AdvertiserProfileID, c.Title, c.Description, c.Location, c.Benefits, c.Mission,
		c.RecruitCount, c.RecruitStartDate, c.RecruitEndDate,
		c.ExperienceStartDate, c.ExperienceEndDate, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := r.pool.QueryRow(ctx, `
		SELECT id, advertiser_profile_id, title, description, location, benefits, mission,
		       recruit_count, recruit_start_date, recruit_end_date,
		       to_char(experience_start_date, 'YYYY-MM-DD'), to_char(experience_end_date, 'YYYY-MM-DD'),
		       status, created_at, updated_at
		FROM campaigns WHERE id = $1
	`, id).Scan(&c.ID, &c.AdvertiserProfileID, &c.Title, &c.Description, &c.Location,
		&c.Benefits, &c.Mission, &c.RecruitCount, &c.RecruitStartDate, &c.RecruitEndDate,
		&c.ExperienceStartDate, &c.ExperienceEndDate, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns one projection page plus the unpaged total for the filter.
func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.CampaignListItem, int, error) {
	where := ""
	args := []any{}
	if f.Status != "" && f.Status != "all" {
		where = " WHERE status = $1"
		args = append(args, f.Status)
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM campaigns"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	ordering, ok := orderings[f.Sort]
	if !ok {
		ordering = orderings[SortLatest]
	}

	query := fmt.Sprintf(`
		SELECT id, title, location, recruit_count, recruit_end_date, status
		FROM campaigns%s ORDER BY %s LIMIT $%d OFFSET $%d
	`, where, ordering, len(args)+1, len(args)+2)
	args = append(args, f.normalizedLimit(), f.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []models.CampaignListItem
	for rows.Next() {
		var it models.CampaignListItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Location, &it.RecruitCount,
			&it.RecruitEndDate, &it.Status); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	return items, total, nil
}

func (r *CampaignRepo) ListByOwner(ctx context.Context, profileID uuid.UUID) ([]models.CampaignListItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, location, recruit_count, recruit_end_date, status
		FROM campaigns WHERE advertiser_profile_id = $1
		ORDER BY created_at DESC
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CampaignListItem
	for rows.Next() {
		var it models.CampaignListItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Location, &it.RecruitCount,
			&it.RecruitEndDate, &it.Status); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET title = $1, description = $2, location = $3, benefits = $4, mission = $5,
		       recruit_count = $6, recruit_start_date = $7, recruit_end_date = $8,
		       experience_start_date = $9, experience_end_date = $10, updated_at = now()
		WHERE id = $11
	`, c.Title, c.Description, c.Location, c.Benefits, c.Mission,
		c.RecruitCount, c.RecruitStartDate, c.RecruitEndDate,
		c.ExperienceStartDate, c.ExperienceEndDate, c.ID)
	return err
}

func (r *CampaignRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	return err
}
