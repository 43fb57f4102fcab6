package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/propelhq/propel-be/internal/domain"
)

type DocumentService struct {
	mock.Mock
}

func (m *DocumentService) Export(ctx context.Context, proposal *domain.Proposal, format domain.ExportFormat, client *domain.Client, tmpl *domain.Template) (*domain.ExportResult, error) {
	args := m.Called(ctx, proposal, format, client, tmpl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportResult), args.Error(1)
}

func (m *DocumentService) RenderHTML(proposal *domain.Proposal, client *domain.Client, tmpl *domain.Template) ([]byte, error) {
	args := m.Called(proposal, client, tmpl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
