package activity

import (
	"context"
	"encoding/json"

	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/repository"
)

// Service appends immutable activity facts. The log is the source of truth
// for achievement evaluation, so rows are never updated or deleted.
type Service interface {
	Record(ctx context.Context, input domain.RecordActivityInput) (*domain.UserActivity, error)
	ListByUser(ctx context.Context, userID int64, params domain.PaginationParams) (domain.PaginatedResponse[domain.UserActivity], error)
}

type service struct {
	activityRepo repository.ActivityRepository
}

func NewService(activityRepo repository.ActivityRepository) Service {
	return &service{activityRepo: activityRepo}
}

func (s *service) Record(ctx context.Context, input domain.RecordActivityInput) (*domain.UserActivity, error) {
	if !input.ActivityType.Valid() {
		return nil, domain.ErrUnknownActivityType
	}

	var data json.RawMessage
	if input.Data != nil {
		encoded, err := json.Marshal(input.Data)
		if err != nil {
			return nil, err
		}
		data = encoded
	}

	activity := &domain.UserActivity{
		UserID:       input.UserID,
		ActivityType: input.ActivityType,
		EntityID:     input.EntityID,
		EntityType:   input.EntityType,
		Data:         data,
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *service) ListByUser(ctx context.Context, userID int64, params domain.PaginationParams) (domain.PaginatedResponse[domain.UserActivity], error) {
	params.Normalize()
	activities, total, err := s.activityRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.UserActivity]{}, err
	}
	return domain.NewPaginatedResponse(activities, params.Page, params.PageSize, total), nil
}
