package client_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/propelhq/propel-be/internal/config"
	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/mocks"
	"github.com/propelhq/propel-be/internal/service/client"
)

type clientFixture struct {
	clientRepo     *mocks.ClientRepository
	proposalRepo   *mocks.ProposalRepository
	activitySvc    *mocks.ActivityService
	achievementSvc *mocks.AchievementService
	crmSvc         *mocks.CRMService
	svc            client.Service
}

func newClientFixture() *clientFixture {
	f := &clientFixture{
		clientRepo:     new(mocks.ClientRepository),
		proposalRepo:   new(mocks.ProposalRepository),
		activitySvc:    new(mocks.ActivityService),
		achievementSvc: new(mocks.AchievementService),
		crmSvc:         new(mocks.CRMService),
	}
	cfg := &config.Config{DefaultUserID: 1}
	f.svc = client.NewService(f.clientRepo, f.proposalRepo, f.activitySvc, f.achievementSvc, f.crmSvc, cfg)
	return f
}

func TestClientCreate_TracksActivity(t *testing.T) {
	f := newClientFixture()
	ctx := context.Background()

	industry := "Software"
	input := domain.CreateClientInput{CompanyName: "Acme Corp", Industry: &industry}

	f.clientRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Client) bool {
		return c.CompanyName == "Acme Corp" && c.Industry != nil && *c.Industry == "Software"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Client).ID = 11
	}).Return(nil).Once()

	f.activitySvc.On("Record", ctx, mock.MatchedBy(func(in domain.RecordActivityInput) bool {
		return in.UserID == 1 && in.ActivityType == domain.ActivityClientManagement &&
			in.EntityID != nil && *in.EntityID == 11
	})).Return(&domain.UserActivity{ID: 1}, nil).Once()

	unlocked := []domain.Badge{{ID: 4, Name: "First Client"}}
	f.achievementSvc.On("CheckAchievements", ctx, int64(1), domain.ActivityClientManagement).Return(unlocked, nil).Once()

	result, err := f.svc.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), result.Client.ID)
	require.NotNil(t, result.Achievements)
	assert.Equal(t, unlocked, result.Achievements.Badges)
	f.activitySvc.AssertExpectations(t)
}

func TestClientCreate_TrackingFailureIsSwallowed(t *testing.T) {
	f := newClientFixture()
	ctx := context.Background()

	f.clientRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	f.activitySvc.On("Record", ctx, mock.Anything).Return(nil, errors.New("log table gone")).Once()

	result, err := f.svc.Create(ctx, domain.CreateClientInput{CompanyName: "Acme Corp"})

	require.NoError(t, err)
	assert.Nil(t, result.Achievements)
	f.achievementSvc.AssertNotCalled(t, "CheckAchievements", mock.Anything, mock.Anything, mock.Anything)
}

func TestClientGetByID_NotFound(t *testing.T) {
	f := newClientFixture()
	ctx := context.Background()

	f.clientRepo.On("GetByID", ctx, int64(99)).Return(nil, nil).Once()

	got, err := f.svc.GetByID(ctx, 99)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	f := newClientFixture()
	ctx := context.Background()

	email := "old@acme.example"
	existing := &domain.Client{ID: 5, CompanyName: "Acme Corp", Email: &email}
	f.clientRepo.On("GetByID", ctx, int64(5)).Return(existing, nil).Once()

	newName := "Acme Holdings"
	f.clientRepo.On("Update", ctx, mock.MatchedBy(func(c *domain.Client) bool {
		return c.CompanyName == "Acme Holdings" && c.Email != nil && *c.Email == "old@acme.example"
	})).Return(nil).Once()

	updated, err := f.svc.Update(ctx, 5, domain.UpdateClientInput{CompanyName: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", updated.CompanyName)
	f.clientRepo.AssertExpectations(t)
}

func TestClientDelete_RefusedWhileReferenced(t *testing.T) {
	f := newClientFixture()
	ctx := context.Background()

	f.proposalRepo.On("CountByClientID", ctx, int64(5)).Return(int64(2), nil).Once()

	err := f.svc.Delete(ctx, 5)

	assert.ErrorIs(t, err, domain.ErrClientInUse)
	f.clientRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestClientDelete_NotFound(t *testing.T) {
	f := newClientFixture()
	ctx := context.Background()

	f.proposalRepo.On("CountByClientID", ctx, int64(5)).Return(int64(0), nil).Once()
	f.clientRepo.On("Delete", ctx, int64(5)).Return(false, nil).Once()

	err := f.svc.Delete(ctx, 5)

	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientDelete_Success(t *testing.T) {
	f := newClientFixture()
	ctx := context.Background()

	f.proposalRepo.On("CountByClientID", ctx, int64(5)).Return(int64(0), nil).Once()
	f.clientRepo.On("Delete", ctx, int64(5)).Return(true, nil).Once()

	assert.NoError(t, f.svc.Delete(ctx, 5))
}

func TestImportFromCRM(t *testing.T) {
	f := newClientFixture()
	ctx := context.Background()

	records := []domain.CRMClientRecord{
		{CompanyName: "TechSolutions Inc.", Industry: "Technology", Email: "info@techsolutions.example", CRMSource: "hubspot", CRMID: "hs-001"},
		{CompanyName: "Evergreen Healthcare", Industry: "Healthcare", CRMSource: "hubspot", CRMID: "hs-002"},
	}
	f.crmSvc.On("Clients", ctx, "hubspot").Return(records, nil).Once()

	var nextID int64
	f.clientRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		nextID++
		args.Get(1).(*domain.Client).ID = nextID
	}).Return(nil).Twice()

	f.activitySvc.On("Record", ctx, mock.MatchedBy(func(in domain.RecordActivityInput) bool {
		return in.ActivityType == domain.ActivityCRMIntegration
	})).Return(&domain.UserActivity{ID: 9}, nil).Once()
	f.achievementSvc.On("CheckAchievements", ctx, int64(1), domain.ActivityCRMIntegration).Return([]domain.Badge{}, nil).Once()

	result, err := f.svc.ImportFromCRM(ctx, "hubspot")

	require.NoError(t, err)
	require.Len(t, result.Clients, 2)
	assert.Equal(t, "TechSolutions Inc.", result.Clients[0].CompanyName)
	require.NotNil(t, result.Clients[0].CRMSource)
	assert.Equal(t, "hubspot", *result.Clients[0].CRMSource)
	assert.Nil(t, result.Achievements)
	f.clientRepo.AssertExpectations(t)
	f.activitySvc.AssertExpectations(t)
}

func TestImportFromCRM_UnknownProvider(t *testing.T) {
	f := newClientFixture()
	ctx := context.Background()

	f.crmSvc.On("Clients", ctx, "zoho").Return(nil, domain.ErrUnknownCRMProvider).Once()

	result, err := f.svc.ImportFromCRM(ctx, "zoho")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUnknownCRMProvider)
}
