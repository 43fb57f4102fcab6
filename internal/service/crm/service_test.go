package crm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/service/crm"
)

func TestConnections(t *testing.T) {
	svc := crm.NewService()

	conns := svc.Connections(context.Background())

	assert.False(t, conns.Connected)
	require.Len(t, conns.AvailableCRMs, 3)
	assert.Equal(t, "hubspot", conns.AvailableCRMs[0].ID)
}

func TestConnect(t *testing.T) {
	svc := crm.NewService()

	result, err := svc.Connect(context.Background(), "salesforce")
	require.NoError(t, err)
	assert.True(t, result.Connected)
	assert.Equal(t, "salesforce", result.Provider)

	_, err = svc.Connect(context.Background(), "zoho")
	assert.ErrorIs(t, err, domain.ErrUnknownCRMProvider)
}

func TestClients(t *testing.T) {
	svc := crm.NewService()

	records, err := svc.Clients(context.Background(), "hubspot")
	require.NoError(t, err)
	require.NotEmpty(t, records)
	for _, r := range records {
		assert.Equal(t, "hubspot", r.CRMSource)
		assert.NotEmpty(t, r.CRMID)
		assert.NotEmpty(t, r.CompanyName)
	}

	_, err = svc.Clients(context.Background(), "zoho")
	assert.ErrorIs(t, err, domain.ErrUnknownCRMProvider)
}
