package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/propelhq/propel-be/internal/domain"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendProposal(ctx context.Context, toEmail, contactName string, proposal *domain.Proposal, attachment *domain.ExportResult) error {
	args := m.Called(ctx, toEmail, contactName, proposal, attachment)
	return args.Error(0)
}
