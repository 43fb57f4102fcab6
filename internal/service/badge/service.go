package badge

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/repository"
)

const catalogCacheKey = "catalog:badges"

type Service interface {
	GetByID(ctx context.Context, id int64) (*domain.Badge, error)
	List(ctx context.Context, category string) ([]domain.Badge, error)
}

type service struct {
	badgeRepo repository.BadgeRepository
	redis     *redis.Client
}

func NewService(badgeRepo repository.BadgeRepository, redis *redis.Client) Service {
	return &service{badgeRepo: badgeRepo, redis: redis}
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Badge, error) {
	badge, err := s.badgeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if badge == nil {
		return nil, domain.ErrBadgeNotFound
	}
	return badge, nil
}

// List serves the catalog, caching the unfiltered list. The catalog is
// seeded once and immutable at runtime, so the cache never needs explicit
// invalidation.
func (s *service) List(ctx context.Context, category string) ([]domain.Badge, error) {
	if category == "" && s.redis != nil {
		if cached, err := s.redis.Get(ctx, catalogCacheKey).Bytes(); err == nil {
			var badges []domain.Badge
			if err := json.Unmarshal(cached, &badges); err == nil {
				return badges, nil
			}
		}
	}

	var badges []domain.Badge
	var err error
	if category != "" {
		badges, err = s.badgeRepo.GetByCategory(ctx, domain.ActivityType(category))
	} else {
		badges, err = s.badgeRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if category == "" && s.redis != nil {
		if encoded, err := json.Marshal(badges); err == nil {
			_ = s.redis.Set(ctx, catalogCacheKey, encoded, 0).Err()
		}
	}
	return badges, nil
}
