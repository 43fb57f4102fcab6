package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/propelhq/propel-be/internal/domain"
)

type ArchiveService struct {
	mock.Mock
}

func (m *ArchiveService) Store(ctx context.Context, proposalID int64, result *domain.ExportResult) (string, error) {
	args := m.Called(ctx, proposalID, result)
	return args.String(0), args.Error(1)
}

func (m *ArchiveService) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}
