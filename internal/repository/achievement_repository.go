package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/propelhq/propel-be/internal/domain"
)

// UpsertResult reports whether the upsert created the row (first unlock) or
// refreshed an existing one.
type UpsertResult struct {
	Achievement domain.UserAchievement
	Inserted    bool
}

type AchievementRepository interface {
	Upsert(ctx context.Context, userID, badgeID, count int64) (*UpsertResult, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.UserAchievement, error)
	GetByUserWithBadges(ctx context.Context, userID int64) ([]domain.UserAchievementWithBadge, error)
}

type achievementRepository struct {
	db *sqlx.DB
}

func NewAchievementRepository(db *sqlx.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

// Upsert atomically creates or refreshes the (user, badge) row. GREATEST
// keeps count monotonic under concurrent evaluations; the unique index on
// (user_id, badge_id) guarantees at most one row. xmax = 0 distinguishes a
// fresh insert from a conflict update.
func (r *achievementRepository) Upsert(ctx context.Context, userID, badgeID, count int64) (*UpsertResult, error) {
	query := `
		INSERT INTO user_achievements (user_id, badge_id, count, progress)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id, badge_id) DO UPDATE
		SET count = GREATEST(user_achievements.count, EXCLUDED.count),
			progress = GREATEST(user_achievements.progress, EXCLUDED.progress)
		RETURNING id, user_id, badge_id, count, progress, earned_at, (xmax = 0) AS inserted`

	var result UpsertResult
	row := r.db.QueryRowxContext(ctx, query, userID, badgeID, count)
	err := row.Scan(
		&result.Achievement.ID, &result.Achievement.UserID, &result.Achievement.BadgeID,
		&result.Achievement.Count, &result.Achievement.Progress, &result.Achievement.EarnedAt,
		&result.Inserted,
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *achievementRepository) GetByUser(ctx context.Context, userID int64) ([]domain.UserAchievement, error) {
	achievements := []domain.UserAchievement{}
	err := r.db.SelectContext(ctx, &achievements,
		`SELECT * FROM user_achievements WHERE user_id = $1 ORDER BY badge_id`, userID)
	return achievements, err
}

func (r *achievementRepository) GetByUserWithBadges(ctx context.Context, userID int64) ([]domain.UserAchievementWithBadge, error) {
	query := `
		SELECT ua.id, ua.user_id, ua.badge_id, ua.count, ua.progress, ua.earned_at,
			b.id AS "badge.id", b.name AS "badge.name", b.description AS "badge.description",
			b.icon AS "badge.icon", b.category AS "badge.category",
			b.required_count AS "badge.required_count"
		FROM user_achievements ua
		JOIN badges b ON ua.badge_id = b.id
		WHERE ua.user_id = $1
		ORDER BY ua.earned_at DESC, ua.badge_id`

	achievements := []domain.UserAchievementWithBadge{}
	err := r.db.SelectContext(ctx, &achievements, query, userID)
	return achievements, err
}
