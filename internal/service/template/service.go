package template

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/propelhq/propel-be/internal/config"
	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/repository"
	"github.com/propelhq/propel-be/internal/service/achievement"
	"github.com/propelhq/propel-be/internal/service/activity"
)

const listCacheKey = "catalog:templates"

type CreateResult struct {
	Template     *domain.Template
	Achievements *domain.AchievementNotice
}

type Service interface {
	Create(ctx context.Context, input domain.CreateTemplateInput) (*CreateResult, error)
	GetByID(ctx context.Context, id int64) (*domain.Template, error)
	List(ctx context.Context, category string) ([]domain.Template, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	templateRepo   repository.TemplateRepository
	proposalRepo   repository.ProposalRepository
	activitySvc    activity.Service
	achievementSvc achievement.Service
	redis          *redis.Client
	cfg            *config.Config
}

func NewService(templateRepo repository.TemplateRepository, proposalRepo repository.ProposalRepository, activitySvc activity.Service, achievementSvc achievement.Service, redis *redis.Client, cfg *config.Config) Service {
	return &service{
		templateRepo:   templateRepo,
		proposalRepo:   proposalRepo,
		activitySvc:    activitySvc,
		achievementSvc: achievementSvc,
		redis:          redis,
		cfg:            cfg,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateTemplateInput) (*CreateResult, error) {
	template := &domain.Template{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Content:     input.Content,
		IsDefault:   input.IsDefault,
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	// The full-list cache is stale the moment a template is written.
	if s.redis != nil {
		_ = s.redis.Del(ctx, listCacheKey).Err()
	}

	badges := s.track(ctx, template)

	return &CreateResult{
		Template:     template,
		Achievements: domain.NewAchievementNotice(badges),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Template, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, domain.ErrTemplateNotFound
	}
	return template, nil
}

func (s *service) List(ctx context.Context, category string) ([]domain.Template, error) {
	// Only the unfiltered list is cached; category queries hit the store.
	if category == "" && s.redis != nil {
		if cached, err := s.redis.Get(ctx, listCacheKey).Bytes(); err == nil {
			var templates []domain.Template
			if err := json.Unmarshal(cached, &templates); err == nil {
				return templates, nil
			}
		}
	}

	templates, err := s.templateRepo.List(ctx, category)
	if err != nil {
		return nil, err
	}

	if category == "" && s.redis != nil {
		if encoded, err := json.Marshal(templates); err == nil {
			_ = s.redis.Set(ctx, listCacheKey, encoded, 0).Err()
		}
	}
	return templates, nil
}

// Delete refuses to remove a template that proposals still reference. Seeded
// defaults can be deleted like any other template once nothing uses them.
func (s *service) Delete(ctx context.Context, id int64) error {
	references, err := s.proposalRepo.CountByTemplateID(ctx, id)
	if err != nil {
		return err
	}
	if references > 0 {
		return domain.ErrTemplateInUse
	}

	deleted, err := s.templateRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTemplateNotFound
	}

	if s.redis != nil {
		_ = s.redis.Del(ctx, listCacheKey).Err()
	}
	return nil
}

func (s *service) track(ctx context.Context, template *domain.Template) []domain.Badge {
	entityType := "template"
	input := domain.RecordActivityInput{
		UserID:       s.cfg.DefaultUserID,
		ActivityType: domain.ActivityTemplateUsage,
		EntityID:     &template.ID,
		EntityType:   &entityType,
		Data:         map[string]interface{}{"templateId": template.ID, "name": template.Name},
	}

	if _, err := s.activitySvc.Record(ctx, input); err != nil {
		log.Warn().Err(err).Msg("failed to record template activity")
		return nil
	}

	badges, err := s.achievementSvc.CheckAchievements(ctx, s.cfg.DefaultUserID, domain.ActivityTemplateUsage)
	if err != nil {
		log.Warn().Err(err).Msg("failed to evaluate achievements")
		return nil
	}
	return badges
}
