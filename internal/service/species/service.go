package species

import (
	"context"
	"errors"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository"
	"github.com/vetcarehq/vetclinic-api/internal/validation"
	apperrors "github.com/vetcarehq/vetclinic-api/pkg/errors"
)

type Service struct {
	repo          repository.SpeciesRepository
	consultations repository.ConsultationRepository
	validator     *validation.Validator
}

func NewService(repo repository.SpeciesRepository, consultations repository.ConsultationRepository, validator *validation.Validator) *Service {
	return &Service{
		repo:          repo,
		consultations: consultations,
		validator:     validator,
	}
}

func (s *Service) List(ctx context.Context, ownerID int64, filter *model.SpeciesFilter) ([]*model.Species, error) {
	list, err := s.repo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id int64) (*model.Species, error) {
	species, err := s.repo.Get(ctx, ownerID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("species")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return species, nil
}

func (s *Service) Create(ctx context.Context, ownerID int64, req *model.SpeciesRequest) (*model.Species, error) {
	if fields := s.validator.Validate(req); fields != nil {
		return nil, apperrors.Validation(fields)
	}

	species := &model.Species{
		Name:             req.Name,
		Description:      req.Description,
		IsActive:         req.IsActive,
		CommonIssues:     req.CommonIssues,
		CareInstructions: req.CareInstructions,
		CreatedDate:      model.Today(),
		OwnerID:          ownerID,
	}
	if err := s.repo.Create(ctx, species); err != nil {
		return nil, apperrors.Internal(err)
	}
	return species, nil
}

func (s *Service) Update(ctx context.Context, ownerID int64, req *model.SpeciesRequest) error {
	if fields := s.validator.Validate(req); fields != nil {
		return apperrors.Validation(fields)
	}

	species := &model.Species{
		ID:               req.ID,
		Name:             req.Name,
		Description:      req.Description,
		IsActive:         req.IsActive,
		CommonIssues:     req.CommonIssues,
		CareInstructions: req.CareInstructions,
		OwnerID:          ownerID,
	}
	err := s.repo.Update(ctx, species)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("species")
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// Delete removes a species unless a consultation still references it.
func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	count, err := s.consultations.CountBySpecies(ctx, ownerID, id)
	if err != nil {
		return apperrors.Internal(err)
	}
	if count > 0 {
		return apperrors.Conflict("species cannot be deleted: it is referenced by existing consultations")
	}

	err = s.repo.Delete(ctx, ownerID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("species")
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
