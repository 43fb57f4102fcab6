package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/repository"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 60 * time.Second
)

type Service interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type service struct {
	clientRepo   repository.ClientRepository
	templateRepo repository.TemplateRepository
	proposalRepo repository.ProposalRepository
	redis        *redis.Client
}

func NewService(clientRepo repository.ClientRepository, templateRepo repository.TemplateRepository, proposalRepo repository.ProposalRepository, redis *redis.Client) Service {
	return &service{
		clientRepo:   clientRepo,
		templateRepo: templateRepo,
		proposalRepo: proposalRepo,
		redis:        redis,
	}
}

func (s *service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var stats domain.DashboardStats
			if err := json.Unmarshal(cached, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	templates, err := s.templateRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	byStatus, err := s.proposalRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.proposalRepo.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, count := range byStatus {
		total += count
	}

	stats := &domain.DashboardStats{
		TotalClients:      int64(len(clients)),
		TotalTemplates:    int64(len(templates)),
		TotalProposals:    total,
		ProposalsByStatus: byStatus,
		RecentProposals:   recent,
	}

	if s.redis != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, statsCacheKey, encoded, statsCacheTTL).Err()
		}
	}
	return stats, nil
}
