package dashboard

import (
	"context"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository"
	apperrors "github.com/vetcarehq/vetclinic-api/pkg/errors"
)

type Service struct {
	repo repository.DashboardRepository
}

func NewService(repo repository.DashboardRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Stats(ctx context.Context, ownerID int64) (*model.DashboardStats, error) {
	stats, err := s.repo.Counts(ctx, ownerID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return stats, nil
}
