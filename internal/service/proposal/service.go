package proposal

import (
	"context"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/propelhq/propel-be/internal/config"
	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/repository"
	"github.com/propelhq/propel-be/internal/service/achievement"
	"github.com/propelhq/propel-be/internal/service/activity"
	"github.com/propelhq/propel-be/internal/service/archive"
	"github.com/propelhq/propel-be/internal/service/document"
	"github.com/propelhq/propel-be/internal/service/email"
)

type CreateResult struct {
	Proposal     *domain.Proposal
	Achievements *domain.AchievementNotice
}

type SendResult struct {
	Proposal     *domain.Proposal
	SentTo       string
	Achievements *domain.AchievementNotice
}

type Service interface {
	Create(ctx context.Context, input domain.CreateProposalInput) (*CreateResult, error)
	GetByID(ctx context.Context, id int64) (*domain.Proposal, error)
	List(ctx context.Context, filter repository.ProposalFilter) ([]domain.Proposal, error)
	Update(ctx context.Context, id int64, input domain.UpdateProposalInput) (*domain.Proposal, error)
	Delete(ctx context.Context, id int64) error
	Export(ctx context.Context, id int64, format domain.ExportFormat) (*domain.ExportResult, error)
	Send(ctx context.Context, id int64) (*SendResult, error)
}

type service struct {
	proposalRepo   repository.ProposalRepository
	clientRepo     repository.ClientRepository
	templateRepo   repository.TemplateRepository
	activitySvc    activity.Service
	achievementSvc achievement.Service
	documentSvc    document.Service
	emailSvc       email.Service
	archiveSvc     archive.Service
	cfg            *config.Config
}

func NewService(
	proposalRepo repository.ProposalRepository,
	clientRepo repository.ClientRepository,
	templateRepo repository.TemplateRepository,
	activitySvc activity.Service,
	achievementSvc achievement.Service,
	documentSvc document.Service,
	emailSvc email.Service,
	archiveSvc archive.Service,
	cfg *config.Config,
) Service {
	return &service{
		proposalRepo:   proposalRepo,
		clientRepo:     clientRepo,
		templateRepo:   templateRepo,
		activitySvc:    activitySvc,
		achievementSvc: achievementSvc,
		documentSvc:    documentSvc,
		emailSvc:       emailSvc,
		archiveSvc:     archiveSvc,
		cfg:            cfg,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateProposalInput) (*CreateResult, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}

	tmpl, err := s.templateRepo.GetByID(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, domain.ErrTemplateNotFound
	}

	status := input.Status
	if status == "" {
		status = domain.StatusDraft
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	proposal := &domain.Proposal{
		Title:      input.Title,
		ClientID:   input.ClientID,
		TemplateID: input.TemplateID,
		Status:     status,
		Amount:     input.Amount,
		Content:    input.Content,
	}

	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, err
	}

	badges := s.track(ctx, domain.ActivityProposalCreation, proposal.ID, "proposal",
		map[string]interface{}{"proposalId": proposal.ID, "title": proposal.Title})

	// A priced proposal also counts toward revenue achievements.
	if amount, ok := positiveAmount(proposal.Amount); ok {
		revenueBadges := s.track(ctx, domain.ActivityRevenue, proposal.ID, "proposal",
			map[string]interface{}{"proposalId": proposal.ID, "amount": amount})
		badges = append(badges, revenueBadges...)
	}

	return &CreateResult{
		Proposal:     proposal,
		Achievements: domain.NewAchievementNotice(badges),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Proposal, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, domain.ErrProposalNotFound
	}
	return proposal, nil
}

func (s *service) List(ctx context.Context, filter repository.ProposalFilter) ([]domain.Proposal, error) {
	return s.proposalRepo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id int64, input domain.UpdateProposalInput) (*domain.Proposal, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, domain.ErrProposalNotFound
	}

	if input.Title != nil {
		proposal.Title = *input.Title
	}
	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrClientNotFound
		}
		proposal.ClientID = *input.ClientID
	}
	if input.TemplateID != nil {
		tmpl, err := s.templateRepo.GetByID(ctx, *input.TemplateID)
		if err != nil {
			return nil, err
		}
		if tmpl == nil {
			return nil, domain.ErrTemplateNotFound
		}
		proposal.TemplateID = *input.TemplateID
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		proposal.Status = *input.Status
	}
	if input.Amount != nil {
		proposal.Amount = input.Amount
	}
	if input.Content != nil {
		proposal.Content = input.Content
	}

	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.proposalRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrProposalNotFound
	}
	return nil
}

// Export renders the proposal in the requested format. The client and
// template are optional inputs to the renderer; a dangling reference falls
// back to placeholder values instead of failing the export.
func (s *service) Export(ctx context.Context, id int64, format domain.ExportFormat) (*domain.ExportResult, error) {
	proposal, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, proposal.ClientID)
	if err != nil {
		return nil, err
	}
	tmpl, err := s.templateRepo.GetByID(ctx, proposal.TemplateID)
	if err != nil {
		return nil, err
	}

	result, err := s.documentSvc.Export(ctx, proposal, format, client, tmpl)
	if err != nil {
		return nil, err
	}

	if s.archiveSvc.Enabled() {
		if _, err := s.archiveSvc.Store(ctx, proposal.ID, result); err != nil {
			log.Warn().Err(err).Int64("proposal_id", proposal.ID).Msg("failed to archive export")
		}
	}

	s.track(ctx, domain.ActivityDocumentExport, proposal.ID, "proposal",
		map[string]interface{}{"proposalId": proposal.ID, "format": string(format)})

	return result, nil
}

// Send emails the proposal as a PDF attachment to the client contact and
// marks the proposal sent.
func (s *service) Send(ctx context.Context, id int64) (*SendResult, error) {
	proposal, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, proposal.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if client.Email == nil || *client.Email == "" {
		return nil, domain.ErrClientEmailMissing
	}

	tmpl, err := s.templateRepo.GetByID(ctx, proposal.TemplateID)
	if err != nil {
		return nil, err
	}

	result, err := s.documentSvc.Export(ctx, proposal, domain.FormatPDF, client, tmpl)
	if err != nil {
		return nil, err
	}

	contactName := ""
	if client.ContactName != nil {
		contactName = *client.ContactName
	}
	if err := s.emailSvc.SendProposal(ctx, *client.Email, contactName, proposal, result); err != nil {
		return nil, err
	}

	if err := s.proposalRepo.UpdateStatus(ctx, proposal.ID, domain.StatusSent); err != nil {
		return nil, err
	}
	proposal.Status = domain.StatusSent

	badges := s.track(ctx, domain.ActivityProposalSent, proposal.ID, "proposal",
		map[string]interface{}{"proposalId": proposal.ID, "sentTo": *client.Email})

	return &SendResult{
		Proposal:     proposal,
		SentTo:       *client.Email,
		Achievements: domain.NewAchievementNotice(badges),
	}, nil
}

func (s *service) track(ctx context.Context, activityType domain.ActivityType, entityID int64, entityType string, data map[string]interface{}) []domain.Badge {
	input := domain.RecordActivityInput{
		UserID:       s.cfg.DefaultUserID,
		ActivityType: activityType,
		EntityID:     &entityID,
		EntityType:   &entityType,
		Data:         data,
	}

	if _, err := s.activitySvc.Record(ctx, input); err != nil {
		log.Warn().Err(err).Str("activity_type", string(activityType)).Msg("failed to record activity")
		return nil
	}

	badges, err := s.achievementSvc.CheckAchievements(ctx, s.cfg.DefaultUserID, activityType)
	if err != nil {
		log.Warn().Err(err).Str("activity_type", string(activityType)).Msg("failed to evaluate achievements")
		return nil
	}
	return badges
}

func positiveAmount(amount *string) (float64, bool) {
	if amount == nil || *amount == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(*amount, 64)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
