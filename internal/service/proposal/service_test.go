package proposal_test

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
	"github.com/propelhq/propel-be/internal/service/proposal"
)

type proposalFixture struct {
	proposalRepo   *mocks.ProposalRepository
	clientRepo     *mocks.ClientRepository
	templateRepo   *mocks.TemplateRepository
	activitySvc    *mocks.ActivityService
	achievementSvc *mocks.AchievementService
	documentSvc    *mocks.DocumentService
	emailSvc       *mocks.EmailService
	archiveSvc     *mocks.ArchiveService
	svc            proposal.Service
}

func newProposalFixture() *proposalFixture {
	f := &proposalFixture{
		proposalRepo:   new(mocks.ProposalRepository),
		clientRepo:     new(mocks.ClientRepository),
		templateRepo:   new(mocks.TemplateRepository),
		activitySvc:    new(mocks.ActivityService),
		achievementSvc: new(mocks.AchievementService),
		documentSvc:    new(mocks.DocumentService),
		emailSvc:       new(mocks.EmailService),
		archiveSvc:     new(mocks.ArchiveService),
	}
	cfg := &config.Config{DefaultUserID: 1}
	f.svc = proposal.NewService(
		f.proposalRepo, f.clientRepo, f.templateRepo,
		f.activitySvc, f.achievementSvc,
		f.documentSvc, f.emailSvc, f.archiveSvc, cfg,
	)
	return f
}

func (f *proposalFixture) expectTracking(ctx context.Context, activityType domain.ActivityType, badges []domain.Badge) {
	f.activitySvc.On("Record", ctx, mock.MatchedBy(func(in domain.RecordActivityInput) bool {
		return in.ActivityType == activityType && in.UserID == 1
	})).Return(&domain.UserActivity{ID: 1}, nil).Once()
	f.achievementSvc.On("CheckAchievements", ctx, int64(1), activityType).Return(badges, nil).Once()
}

func TestProposalCreate_DefaultsToDraft(t *testing.T) {
	f := newProposalFixture()
	ctx := context.Background()

	f.clientRepo.On("GetByID", ctx, int64(9)).Return(&domain.Client{ID: 9, CompanyName: "Acme Corp"}, nil).Once()
	f.templateRepo.On("GetByID", ctx, int64(3)).Return(&domain.Template{ID: 3, Name: "Consulting Proposal"}, nil).Once()
	f.proposalRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Proposal) bool {
		return p.Status == domain.StatusDraft && p.Title == "Cloud Migration Phase 1"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Proposal).ID = 42
	}).Return(nil).Once()

	f.expectTracking(ctx, domain.ActivityProposalCreation, []domain.Badge{{ID: 1, Name: "First Proposal"}})

	result, err := f.svc.Create(ctx, domain.CreateProposalInput{
		Title:      "Cloud Migration Phase 1",
		ClientID:   9,
		TemplateID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.Proposal.ID)
	assert.Equal(t, domain.StatusDraft, result.Proposal.Status)
	require.NotNil(t, result.Achievements)
	assert.Len(t, result.Achievements.Badges, 1)
	// No amount, so no revenue activity.
	f.activitySvc.AssertNumberOfCalls(t, "Record", 1)
}

func TestProposalCreate_PricedProposalCountsRevenue(t *testing.T) {
	f := newProposalFixture()
	ctx := context.Background()

	f.clientRepo.On("GetByID", ctx, int64(9)).Return(&domain.Client{ID: 9}, nil).Once()
	f.templateRepo.On("GetByID", ctx, int64(3)).Return(&domain.Template{ID: 3}, nil).Once()
	f.proposalRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	f.expectTracking(ctx, domain.ActivityProposalCreation, []domain.Badge{{ID: 1}})
	f.expectTracking(ctx, domain.ActivityRevenue, []domain.Badge{{ID: 8}})

	amount := "12500.00"
	result, err := f.svc.Create(ctx, domain.CreateProposalInput{
		Title:      "Cloud Migration Phase 1",
		ClientID:   9,
		TemplateID: 3,
		Amount:     &amount,
	})

	require.NoError(t, err)
	require.NotNil(t, result.Achievements)
	assert.Len(t, result.Achievements.Badges, 2)
	f.activitySvc.AssertExpectations(t)
}

func TestProposalCreate_ZeroAmountSkipsRevenue(t *testing.T) {
	f := newProposalFixture()
	ctx := context.Background()

	f.clientRepo.On("GetByID", ctx, int64(9)).Return(&domain.Client{ID: 9}, nil).Once()
	f.templateRepo.On("GetByID", ctx, int64(3)).Return(&domain.Template{ID: 3}, nil).Once()
	f.proposalRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	f.expectTracking(ctx, domain.ActivityProposalCreation, nil)

	amount := "0"
	_, err := f.svc.Create(ctx, domain.CreateProposalInput{
		Title:      "Cloud Migration Phase 1",
		ClientID:   9,
		TemplateID: 3,
		Amount:     &amount,
	})

	require.NoError(t, err)
	f.activitySvc.AssertNumberOfCalls(t, "Record", 1)
}

func TestProposalCreate_MissingClient(t *testing.T) {
	f := newProposalFixture()
	ctx := context.Background()

	f.clientRepo.On("GetByID", ctx, int64(9)).Return(nil, nil).Once()

	result, err := f.svc.Create(ctx, domain.CreateProposalInput{Title: "Cloud Migration", ClientID: 9, TemplateID: 3})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
	f.proposalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProposalCreate_InvalidStatus(t *testing.T) {
	f := newProposalFixture()
	ctx := context.Background()

	f.clientRepo.On("GetByID", ctx, int64(9)).Return(&domain.Client{ID: 9}, nil).Once()
	f.templateRepo.On("GetByID", ctx, int64(3)).Return(&domain.Template{ID: 3}, nil).Once()

	result, err := f.svc.Create(ctx, domain.CreateProposalInput{
		Title:      "Cloud Migration Phase 1",
		ClientID:   9,
		TemplateID: 3,
		Status:     domain.ProposalStatus("archived"),
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestProposalUpdate_ValidatesNewReferences(t *testing.T) {
	f := newProposalFixture()
	ctx := context.Background()

	existing := &domain.Proposal{ID: 42, Title: "Cloud Migration Phase 1", ClientID: 9, TemplateID: 3, Status: domain.StatusDraft}
	f.proposalRepo.On("GetByID", ctx, int64(42)).Return(existing, nil).Once()

	newClientID := int64(77)
	f.clientRepo.On("GetByID", ctx, newClientID).Return(nil, nil).Once()

	result, err := f.svc.Update(ctx, 42, domain.UpdateProposalInput{ClientID: &newClientID})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
	f.proposalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProposalUpdate_PatchesFields(t *testing.T) {
	f := newProposalFixture()
	ctx := context.Background()

	existing := &domain.Proposal{ID: 42, Title: "Old Title Here", ClientID: 9, TemplateID: 3, Status: domain.StatusDraft}
	f.proposalRepo.On("GetByID", ctx, int64(42)).Return(existing, nil).Once()
	f.proposalRepo.On("Update", ctx, mock.MatchedBy(func(p *domain.Proposal) bool {
		return p.Title == "Revised Cloud Migration" && p.Status == domain.StatusApproved
	})).Return(nil).Once()

	title := "Revised Cloud Migration"
	status := domain.StatusApproved
	updated, err := f.svc.Update(ctx, 42, domain.UpdateProposalInput{Title: &title, Status: &status})

	require.NoError(t, err)
	assert.Equal(t, "Revised Cloud Migration", updated.Title)
	assert.Equal(t, domain.StatusApproved, updated.Status)
}

func TestProposalExport_ArchivesAndTracks(t *testing.T) {
	f := newProposalFixture()
	ctx := context.Background()

	stored := &domain.Proposal{ID: 42, Title: "Cloud Migration Phase 1", ClientID: 9, TemplateID: 3}
	f.proposalRepo.On("GetByID", ctx, int64(42)).Return(stored, nil).Once()
	f.clientRepo.On("GetByID", ctx, int64(9)).Return(&domain.Client{ID: 9}, nil).Once()
	f.templateRepo.On("GetByID", ctx, int64(3)).Return(&domain.Template{ID: 3}, nil).Once()

	exported := &domain.ExportResult{
		Buffer:      []byte("%PDF"),
		Filename:    "proposal_42_cloud_migration_phase_1.pdf",
		ContentType: "application/pdf",
	}
	f.documentSvc.On("Export", ctx, stored, domain.FormatPDF, mock.Anything, mock.Anything).Return(exported, nil).Once()

	f.archiveSvc.On("Enabled").Return(true).Once()
	f.archiveSvc.On("Store", ctx, int64(42), exported).Return("exports/2026/03/42/abc_proposal.pdf", nil).Once()

	f.expectTracking(ctx, domain.ActivityDocumentExport, nil)

	result, err := f.svc.Export(ctx, 42, domain.FormatPDF)

	require.NoError(t, err)
	assert.Equal(t, exported, result)
	f.archiveSvc.AssertExpectations(t)
	f.activitySvc.AssertExpectations(t)
}

func TestProposalExport_ArchiveFailureIgnored(t *testing.T) {
	f := newProposalFixture()
	ctx := context.Background()

	stored := &domain.Proposal{ID: 42, Title: "Cloud Migration Phase 1", ClientID: 9, TemplateID: 3}
	f.proposalRepo.On("GetByID", ctx, int64(42)).Return(stored, nil).Once()
	f.clientRepo.On("GetByID", ctx, int64(9)).Return(&domain.Client{ID: 9}, nil).Once()
	f.templateRepo.On("GetByID", ctx, int64(3)).Return(&domain.Template{ID: 3}, nil).Once()

	exported := &domain.ExportResult{Buffer: []byte("<html>"), Filename: "proposal_42_cloud_migration_phase_1.html", ContentType: "text/html; charset=utf-8"}
	f.documentSvc.On("Export", ctx, stored, domain.FormatHTML, mock.Anything, mock.Anything).Return(exported, nil).Once()

	f.archiveSvc.On("Enabled").Return(true).Once()
	f.archiveSvc.On("Store", ctx, int64(42), exported).Return("", errors.New("bucket gone")).Once()

	f.expectTracking(ctx, domain.ActivityDocumentExport, nil)

	result, err := f.svc.Export(ctx, 42, domain.FormatHTML)

	require.NoError(t, err)
	assert.Equal(t, exported, result)
}

func TestProposalSend(t *testing.T) {
	f := newProposalFixture()
	ctx := context.Background()

	email := "cto@acme.example"
	contact := "Dana Reyes"
	stored := &domain.Proposal{ID: 42, Title: "Cloud Migration Phase 1", ClientID: 9, TemplateID: 3, Status: domain.StatusDraft}
	f.proposalRepo.On("GetByID", ctx, int64(42)).Return(stored, nil).Once()
	f.clientRepo.On("GetByID", ctx, int64(9)).Return(&domain.Client{ID: 9, CompanyName: "Acme Corp", Email: &email, ContactName: &contact}, nil).Once()
	f.templateRepo.On("GetByID", ctx, int64(3)).Return(&domain.Template{ID: 3}, nil).Once()

	exported := &domain.ExportResult{Buffer: []byte("%PDF"), Filename: "proposal_42_cloud_migration_phase_1.pdf", ContentType: "application/pdf"}
	f.documentSvc.On("Export", ctx, stored, domain.FormatPDF, mock.Anything, mock.Anything).Return(exported, nil).Once()
	f.emailSvc.On("SendProposal", ctx, email, contact, stored, exported).Return(nil).Once()
	f.proposalRepo.On("UpdateStatus", ctx, int64(42), domain.StatusSent).Return(nil).Once()

	f.expectTracking(ctx, domain.ActivityProposalSent, nil)

	result, err := f.svc.Send(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, email, result.SentTo)
	assert.Equal(t, domain.StatusSent, result.Proposal.Status)
	f.emailSvc.AssertExpectations(t)
	f.proposalRepo.AssertExpectations(t)
}

func TestProposalSend_MissingEmail(t *testing.T) {
	f := newProposalFixture()
	ctx := context.Background()

	stored := &domain.Proposal{ID: 42, ClientID: 9, TemplateID: 3}
	f.proposalRepo.On("GetByID", ctx, int64(42)).Return(stored, nil).Once()
	f.clientRepo.On("GetByID", ctx, int64(9)).Return(&domain.Client{ID: 9, CompanyName: "Acme Corp"}, nil).Once()

	result, err := f.svc.Send(ctx, 42)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrClientEmailMissing)
	f.emailSvc.AssertNotCalled(t, "SendProposal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProposalSend_EmailFailureLeavesStatus(t *testing.T) {
	f := newProposalFixture()
	ctx := context.Background()

	email := "cto@acme.example"
	stored := &domain.Proposal{ID: 42, ClientID: 9, TemplateID: 3, Status: domain.StatusDraft}
	f.proposalRepo.On("GetByID", ctx, int64(42)).Return(stored, nil).Once()
	f.clientRepo.On("GetByID", ctx, int64(9)).Return(&domain.Client{ID: 9, Email: &email}, nil).Once()
	f.templateRepo.On("GetByID", ctx, int64(3)).Return(&domain.Template{ID: 3}, nil).Once()

	exported := &domain.ExportResult{Buffer: []byte("%PDF")}
	f.documentSvc.On("Export", ctx, stored, domain.FormatPDF, mock.Anything, mock.Anything).Return(exported, nil).Once()
	f.emailSvc.On("SendProposal", ctx, email, "", stored, exported).Return(errors.New("resend outage")).Once()

	result, err := f.svc.Send(ctx, 42)

	assert.Nil(t, result)
	assert.Error(t, err)
	f.proposalRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestProposalDelete_NotFound(t *testing.T) {
	f := newProposalFixture()
	ctx := context.Background()

	f.proposalRepo.On("Delete", ctx, int64(42)).Return(false, nil).Once()

	assert.ErrorIs(t, f.svc.Delete(ctx, 42), domain.ErrProposalNotFound)
}
