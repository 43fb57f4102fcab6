package crm

import (
	"context"

	"github.com/propelhq/propel-be/internal/domain"
)

// Service mocks the external CRM surface. It serves static provider data so
// the import flow can be exercised end to end; real integration is out of
// scope.
type Service interface {
	Connections(ctx context.Context) domain.CRMConnections
	Connect(ctx context.Context, provider string) (*domain.CRMConnectResult, error)
	Clients(ctx context.Context, provider string) ([]domain.CRMClientRecord, error)
}

type service struct{}

func NewService() Service {
	return &service{}
}

var providers = []domain.CRMProvider{
	{ID: "hubspot", Name: "HubSpot", Logo: "hubspot"},
	{ID: "salesforce", Name: "Salesforce", Logo: "salesforce"},
	{ID: "pipedrive", Name: "Pipedrive", Logo: "pipedrive"},
}

func knownProvider(id string) bool {
	for _, p := range providers {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *service) Connections(ctx context.Context) domain.CRMConnections {
	return domain.CRMConnections{
		Connected:     false,
		AvailableCRMs: providers,
	}
}

func (s *service) Connect(ctx context.Context, provider string) (*domain.CRMConnectResult, error) {
	if !knownProvider(provider) {
		return nil, domain.ErrUnknownCRMProvider
	}
	return &domain.CRMConnectResult{
		Connected: true,
		Provider:  provider,
		Message:   "Successfully connected to " + provider,
	}, nil
}

func (s *service) Clients(ctx context.Context, provider string) ([]domain.CRMClientRecord, error) {
	if !knownProvider(provider) {
		return nil, domain.ErrUnknownCRMProvider
	}

	return []domain.CRMClientRecord{
		{
			CRMID:        "crm-1",
			CompanyName:  "TechSolutions Inc.",
			Industry:     "Technology",
			Address:      "123 Tech Plaza",
			City:         "San Francisco",
			State:        "CA",
			PostalCode:   "94105",
			ContactName:  "John Smith",
			ContactTitle: "CTO",
			Email:        "john@techsolutions.example",
			Phone:        "(555) 123-4567",
			CRMSource:    provider,
		},
		{
			CRMID:        "crm-2",
			CompanyName:  "Evergreen Healthcare",
			Industry:     "Healthcare",
			Address:      "456 Medical Drive",
			City:         "Boston",
			State:        "MA",
			PostalCode:   "02115",
			ContactName:  "Alice Johnson",
			ContactTitle: "Procurement Director",
			Email:        "alice@evergreen.example",
			Phone:        "(555) 987-6543",
			CRMSource:    provider,
		},
	}, nil
}
