package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/propelhq/propel-be/internal/domain"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.UserActivity) error
	ListByUser(ctx context.Context, userID int64, params domain.PaginationParams) ([]domain.UserActivity, int64, error)
	CountByUserAndType(ctx context.Context, userID int64, activityType domain.ActivityType) (int64, error)
}

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create appends one immutable row; created_at is server-assigned.
func (r *activityRepository) Create(ctx context.Context, activity *domain.UserActivity) error {
	query := `
		INSERT INTO user_activities (user_id, activity_type, entity_id, entity_type, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return r.db.QueryRowxContext(ctx, query,
		activity.UserID, activity.ActivityType, activity.EntityID,
		activity.EntityType, activity.Data,
	).Scan(&activity.ID, &activity.CreatedAt)
}

func (r *activityRepository) ListByUser(ctx context.Context, userID int64, params domain.PaginationParams) ([]domain.UserActivity, int64, error) {
	params.Normalize()

	var total int64
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM user_activities WHERE user_id = $1`, userID); err != nil {
		return nil, 0, err
	}

	activities := []domain.UserActivity{}
	query := `
		SELECT * FROM user_activities
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	err := r.db.SelectContext(ctx, &activities, query, userID, params.PageSize, params.Offset())
	return activities, total, err
}

func (r *activityRepository) CountByUserAndType(ctx context.Context, userID int64, activityType domain.ActivityType) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM user_activities WHERE user_id = $1 AND activity_type = $2`,
		userID, activityType)
	return count, err
}
