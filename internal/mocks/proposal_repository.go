package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/repository"
)

type ProposalRepository struct {
	mock.Mock
}

func (m *ProposalRepository) Create(ctx context.Context, proposal *domain.Proposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *ProposalRepository) GetByID(ctx context.Context, id int64) (*domain.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

func (m *ProposalRepository) List(ctx context.Context, filter repository.ProposalFilter) ([]domain.Proposal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Proposal), args.Error(1)
}

func (m *ProposalRepository) Update(ctx context.Context, proposal *domain.Proposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *ProposalRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ProposalRepository) UpdateStatus(ctx context.Context, id int64, status domain.ProposalStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *ProposalRepository) CountByClientID(ctx context.Context, clientID int64) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProposalRepository) CountByTemplateID(ctx context.Context, templateID int64) (int64, error) {
	args := m.Called(ctx, templateID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProposalRepository) Recent(ctx context.Context, limit int) ([]domain.RecentProposal, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecentProposal), args.Error(1)
}

func (m *ProposalRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}
