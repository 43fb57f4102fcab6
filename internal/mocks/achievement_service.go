package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/propelhq/propel-be/internal/domain"
)

type AchievementService struct {
	mock.Mock
}

func (m *AchievementService) CheckAchievements(ctx context.Context, userID int64, activityType domain.ActivityType) ([]domain.Badge, error) {
	args := m.Called(ctx, userID, activityType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Badge), args.Error(1)
}

func (m *AchievementService) ListUserAchievements(ctx context.Context, userID int64) ([]domain.UserAchievementWithBadge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserAchievementWithBadge), args.Error(1)
}
