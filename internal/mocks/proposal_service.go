package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/repository"
	"github.com/propelhq/propel-be/internal/service/proposal"
)

type ProposalService struct {
	mock.Mock
}

func (m *ProposalService) Create(ctx context.Context, input domain.CreateProposalInput) (*proposal.CreateResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*proposal.CreateResult), args.Error(1)
}

func (m *ProposalService) GetByID(ctx context.Context, id int64) (*domain.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

func (m *ProposalService) List(ctx context.Context, filter repository.ProposalFilter) ([]domain.Proposal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Proposal), args.Error(1)
}

func (m *ProposalService) Update(ctx context.Context, id int64, input domain.UpdateProposalInput) (*domain.Proposal, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

func (m *ProposalService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProposalService) Export(ctx context.Context, id int64, format domain.ExportFormat) (*domain.ExportResult, error) {
	args := m.Called(ctx, id, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportResult), args.Error(1)
}

func (m *ProposalService) Send(ctx context.Context, id int64) (*proposal.SendResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*proposal.SendResult), args.Error(1)
}
