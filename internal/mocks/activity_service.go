package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/propelhq/propel-be/internal/domain"
)

type ActivityService struct {
	mock.Mock
}

func (m *ActivityService) Record(ctx context.Context, input domain.RecordActivityInput) (*domain.UserActivity, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserActivity), args.Error(1)
}

func (m *ActivityService) ListByUser(ctx context.Context, userID int64, params domain.PaginationParams) (domain.PaginatedResponse[domain.UserActivity], error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(domain.PaginatedResponse[domain.UserActivity]), args.Error(1)
}
