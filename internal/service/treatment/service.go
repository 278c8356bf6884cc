package treatment

import (
	"context"
	"errors"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository"
	"github.com/vetcarehq/vetclinic-api/internal/validation"
	apperrors "github.com/vetcarehq/vetclinic-api/pkg/errors"
)

type Service struct {
	repo          repository.TreatmentRepository
	consultations repository.ConsultationRepository
	plans         repository.HealthPlanRepository
	validator     *validation.Validator
}

func NewService(repo repository.TreatmentRepository, consultations repository.ConsultationRepository,
	plans repository.HealthPlanRepository, validator *validation.Validator) *Service {
	return &Service{
		repo:          repo,
		consultations: consultations,
		plans:         plans,
		validator:     validator,
	}
}

func (s *Service) List(ctx context.Context, ownerID int64, filter *model.TreatmentFilter) ([]*model.Treatment, error) {
	list, err := s.repo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id int64) (*model.Treatment, error) {
	treatment, err := s.repo.Get(ctx, ownerID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("treatment")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return treatment, nil
}

func (s *Service) Create(ctx context.Context, ownerID int64, req *model.TreatmentRequest) (*model.Treatment, error) {
	if fields := s.validator.Validate(req); fields != nil {
		return nil, apperrors.Validation(fields)
	}

	treatment := &model.Treatment{
		Name:                 req.Name,
		Description:          req.Description,
		DefaultCost:          req.DefaultCost,
		MedicalRequirements:  req.MedicalRequirements,
		PostTreatmentCare:    req.PostTreatmentCare,
		TypicalMedication:    req.TypicalMedication,
		EstimatedTimeMinutes: req.EstimatedTimeMinutes,
		IconName:             req.IconName,
		ColorCode:            req.ColorCode,
		IsActive:             req.IsActive,
		CreatedDate:          model.Today(),
		OwnerID:              ownerID,
	}
	if err := s.repo.Create(ctx, treatment); err != nil {
		return nil, apperrors.Internal(err)
	}
	return treatment, nil
}

func (s *Service) Update(ctx context.Context, ownerID int64, req *model.TreatmentRequest) error {
	if fields := s.validator.Validate(req); fields != nil {
		return apperrors.Validation(fields)
	}

	treatment := &model.Treatment{
		ID:                   req.ID,
		Name:                 req.Name,
		Description:          req.Description,
		DefaultCost:          req.DefaultCost,
		MedicalRequirements:  req.MedicalRequirements,
		PostTreatmentCare:    req.PostTreatmentCare,
		TypicalMedication:    req.TypicalMedication,
		EstimatedTimeMinutes: req.EstimatedTimeMinutes,
		IconName:             req.IconName,
		ColorCode:            req.ColorCode,
		IsActive:             req.IsActive,
		OwnerID:              ownerID,
	}
	err := s.repo.Update(ctx, treatment)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("treatment")
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// Delete removes a treatment unless a consultation or health plan still
// references it.
func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	consultCount, err := s.consultations.CountByTreatment(ctx, ownerID, id)
	if err != nil {
		return apperrors.Internal(err)
	}
	if consultCount > 0 {
		return apperrors.Conflict("treatment cannot be deleted: it is referenced by existing consultations")
	}

	planCount, err := s.plans.CountByTreatment(ctx, ownerID, id)
	if err != nil {
		return apperrors.Internal(err)
	}
	if planCount > 0 {
		return apperrors.Conflict("treatment cannot be deleted: it is referenced by existing health plans")
	}

	err = s.repo.Delete(ctx, ownerID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("treatment")
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
