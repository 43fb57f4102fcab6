package achievement

import (
	"context"
	"sort"

	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/repository"
)

// Service recomputes activity counts against the badge catalog. Thresholds
// are monotonic counts over an append-only log, so evaluation is idempotent:
// callers invoke it after every relevant write without tracking what changed.
type Service interface {
	CheckAchievements(ctx context.Context, userID int64, activityType domain.ActivityType) ([]domain.Badge, error)
	ListUserAchievements(ctx context.Context, userID int64) ([]domain.UserAchievementWithBadge, error)
}

type service struct {
	badgeRepo       repository.BadgeRepository
	activityRepo    repository.ActivityRepository
	achievementRepo repository.AchievementRepository
	userRepo        repository.UserRepository
}

func NewService(badgeRepo repository.BadgeRepository, activityRepo repository.ActivityRepository, achievementRepo repository.AchievementRepository, userRepo repository.UserRepository) Service {
	return &service{
		badgeRepo:       badgeRepo,
		activityRepo:    activityRepo,
		achievementRepo: achievementRepo,
		userRepo:        userRepo,
	}
}

// CheckAchievements returns the badges newly unlocked by this call, sorted
// by badge id. Already-earned badges get their count/progress refreshed so
// displayed progress stays live past 100%. A category with no badges is a
// no-op, not an error.
func (s *service) CheckAchievements(ctx context.Context, userID int64, activityType domain.ActivityType) ([]domain.Badge, error) {
	candidates, err := s.badgeRepo.GetByCategory(ctx, activityType)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []domain.Badge{}, nil
	}

	activityCount, err := s.activityRepo.CountByUserAndType(ctx, userID, activityType)
	if err != nil {
		return nil, err
	}

	existing, err := s.achievementRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	achieved := make(map[int64]bool, len(existing))
	for _, a := range existing {
		achieved[a.BadgeID] = true
	}

	unlocked := []domain.Badge{}
	for _, badge := range candidates {
		switch {
		case achieved[badge.ID]:
			// Keep the stored count current even after the unlock.
			if _, err := s.achievementRepo.Upsert(ctx, userID, badge.ID, activityCount); err != nil {
				return nil, err
			}
		case activityCount >= badge.RequiredCount:
			result, err := s.achievementRepo.Upsert(ctx, userID, badge.ID, activityCount)
			if err != nil {
				return nil, err
			}
			// A concurrent evaluation may have inserted the row first; only
			// the call that actually created it reports the unlock.
			if result.Inserted {
				unlocked = append(unlocked, badge)
			}
		}
		// Below threshold and not yet achieved: no row. In-progress state is
		// computed on read, not persisted.
	}

	sort.Slice(unlocked, func(i, j int) bool { return unlocked[i].ID < unlocked[j].ID })
	return unlocked, nil
}

func (s *service) ListUserAchievements(ctx context.Context, userID int64) ([]domain.UserAchievementWithBadge, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.achievementRepo.GetByUserWithBadges(ctx, userID)
}
