package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/propelhq/propel-be/internal/domain"
)

type BadgeRepository struct {
	mock.Mock
}

func (m *BadgeRepository) GetByID(ctx context.Context, id int64) (*domain.Badge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Badge), args.Error(1)
}

func (m *BadgeRepository) GetAll(ctx context.Context) ([]domain.Badge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Badge), args.Error(1)
}

func (m *BadgeRepository) GetByCategory(ctx context.Context, category domain.ActivityType) ([]domain.Badge, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Badge), args.Error(1)
}
