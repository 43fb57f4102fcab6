package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/propelhq/propel-be/internal/domain"
)

type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Create(ctx context.Context, activity *domain.UserActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *ActivityRepository) ListByUser(ctx context.Context, userID int64, params domain.PaginationParams) ([]domain.UserActivity, int64, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.UserActivity), args.Get(1).(int64), args.Error(2)
}

func (m *ActivityRepository) CountByUserAndType(ctx context.Context, userID int64, activityType domain.ActivityType) (int64, error) {
	args := m.Called(ctx, userID, activityType)
	return args.Get(0).(int64), args.Error(1)
}
