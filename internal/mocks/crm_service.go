package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/propelhq/propel-be/internal/domain"
)

type CRMService struct {
	mock.Mock
}

func (m *CRMService) Connections(ctx context.Context) domain.CRMConnections {
	args := m.Called(ctx)
	return args.Get(0).(domain.CRMConnections)
}

func (m *CRMService) Connect(ctx context.Context, provider string) (*domain.CRMConnectResult, error) {
	args := m.Called(ctx, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CRMConnectResult), args.Error(1)
}

func (m *CRMService) Clients(ctx context.Context, provider string) ([]domain.CRMClientRecord, error) {
	args := m.Called(ctx, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CRMClientRecord), args.Error(1)
}
