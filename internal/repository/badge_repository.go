package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/propelhq/propel-be/internal/domain"
)

type BadgeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Badge, error)
	GetAll(ctx context.Context) ([]domain.Badge, error)
	GetByCategory(ctx context.Context, category domain.ActivityType) ([]domain.Badge, error)
}

type badgeRepository struct {
	db *sqlx.DB
}

func NewBadgeRepository(db *sqlx.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) GetByID(ctx context.Context, id int64) (*domain.Badge, error) {
	var badge domain.Badge
	err := r.db.GetContext(ctx, &badge, `SELECT * FROM badges WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &badge, nil
}

func (r *badgeRepository) GetAll(ctx context.Context) ([]domain.Badge, error) {
	badges := []domain.Badge{}
	err := r.db.SelectContext(ctx, &badges, `SELECT * FROM badges ORDER BY id`)
	return badges, err
}

func (r *badgeRepository) GetByCategory(ctx context.Context, category domain.ActivityType) ([]domain.Badge, error) {
	badges := []domain.Badge{}
	err := r.db.SelectContext(ctx, &badges,
		`SELECT * FROM badges WHERE category = $1 ORDER BY id`, category)
	return badges, err
}
