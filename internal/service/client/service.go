package client

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/propelhq/propel-be/internal/config"
	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/repository"
	"github.com/propelhq/propel-be/internal/service/achievement"
	"github.com/propelhq/propel-be/internal/service/activity"
	"github.com/propelhq/propel-be/internal/service/crm"
)

type CreateResult struct {
	Client       *domain.Client
	Achievements *domain.AchievementNotice
}

type ImportResult struct {
	Clients      []domain.Client
	Achievements *domain.AchievementNotice
}

type Service interface {
	Create(ctx context.Context, input domain.CreateClientInput) (*CreateResult, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, id int64, input domain.UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
	ImportFromCRM(ctx context.Context, provider string) (*ImportResult, error)
}

type service struct {
	clientRepo     repository.ClientRepository
	proposalRepo   repository.ProposalRepository
	activitySvc    activity.Service
	achievementSvc achievement.Service
	crmSvc         crm.Service
	cfg            *config.Config
}

func NewService(clientRepo repository.ClientRepository, proposalRepo repository.ProposalRepository, activitySvc activity.Service, achievementSvc achievement.Service, crmSvc crm.Service, cfg *config.Config) Service {
	return &service{
		clientRepo:     clientRepo,
		proposalRepo:   proposalRepo,
		activitySvc:    activitySvc,
		achievementSvc: achievementSvc,
		crmSvc:         crmSvc,
		cfg:            cfg,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateClientInput) (*CreateResult, error) {
	client := &domain.Client{
		CompanyName:  input.CompanyName,
		Industry:     input.Industry,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
		ContactName:  input.ContactName,
		ContactTitle: input.ContactTitle,
		Email:        input.Email,
		Phone:        input.Phone,
		CRMSource:    input.CRMSource,
		CRMID:        input.CRMID,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	badges := s.track(ctx, domain.ActivityClientManagement, client.ID, "client",
		map[string]interface{}{"clientId": client.ID, "companyName": client.CompanyName})

	return &CreateResult{
		Client:       client,
		Achievements: domain.NewAchievementNotice(badges),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

func (s *service) List(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.GetAll(ctx)
}

func (s *service) Update(ctx context.Context, id int64, input domain.UpdateClientInput) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}

	if input.CompanyName != nil {
		client.CompanyName = *input.CompanyName
	}
	if input.Industry != nil {
		client.Industry = input.Industry
	}
	if input.Address != nil {
		client.Address = input.Address
	}
	if input.City != nil {
		client.City = input.City
	}
	if input.State != nil {
		client.State = input.State
	}
	if input.PostalCode != nil {
		client.PostalCode = input.PostalCode
	}
	if input.ContactName != nil {
		client.ContactName = input.ContactName
	}
	if input.ContactTitle != nil {
		client.ContactTitle = input.ContactTitle
	}
	if input.Email != nil {
		client.Email = input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete refuses to remove a client that proposals still reference.
func (s *service) Delete(ctx context.Context, id int64) error {
	references, err := s.proposalRepo.CountByClientID(ctx, id)
	if err != nil {
		return err
	}
	if references > 0 {
		return domain.ErrClientInUse
	}

	deleted, err := s.clientRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrClientNotFound
	}
	return nil
}

func (s *service) ImportFromCRM(ctx context.Context, provider string) (*ImportResult, error) {
	records, err := s.crmSvc.Clients(ctx, provider)
	if err != nil {
		return nil, err
	}

	imported := make([]domain.Client, 0, len(records))
	for _, record := range records {
		record := record
		client := &domain.Client{
			CompanyName:  record.CompanyName,
			Industry:     optional(record.Industry),
			Address:      optional(record.Address),
			City:         optional(record.City),
			State:        optional(record.State),
			PostalCode:   optional(record.PostalCode),
			ContactName:  optional(record.ContactName),
			ContactTitle: optional(record.ContactTitle),
			Email:        optional(record.Email),
			Phone:        optional(record.Phone),
			CRMSource:    &record.CRMSource,
			CRMID:        &record.CRMID,
		}
		if err := s.clientRepo.Create(ctx, client); err != nil {
			return nil, err
		}
		imported = append(imported, *client)
	}

	badges := s.track(ctx, domain.ActivityCRMIntegration, 0, "crm_import",
		map[string]interface{}{"provider": provider, "imported": len(imported)})

	return &ImportResult{
		Clients:      imported,
		Achievements: domain.NewAchievementNotice(badges),
	}, nil
}

// track logs the activity and re-evaluates badges for its category. The CRUD
// write already succeeded, so failures here are logged, never surfaced.
func (s *service) track(ctx context.Context, activityType domain.ActivityType, entityID int64, entityType string, data map[string]interface{}) []domain.Badge {
	input := domain.RecordActivityInput{
		UserID:       s.cfg.DefaultUserID,
		ActivityType: activityType,
		EntityType:   &entityType,
		Data:         data,
	}
	if entityID > 0 {
		input.EntityID = &entityID
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

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
