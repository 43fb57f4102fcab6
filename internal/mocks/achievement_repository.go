package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/repository"
)

type AchievementRepository struct {
	mock.Mock
}

func (m *AchievementRepository) Upsert(ctx context.Context, userID, badgeID, count int64) (*repository.UpsertResult, error) {
	args := m.Called(ctx, userID, badgeID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.UpsertResult), args.Error(1)
}

func (m *AchievementRepository) GetByUser(ctx context.Context, userID int64) ([]domain.UserAchievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserAchievement), args.Error(1)
}

func (m *AchievementRepository) GetByUserWithBadges(ctx context.Context, userID int64) ([]domain.UserAchievementWithBadge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserAchievementWithBadge), args.Error(1)
}
