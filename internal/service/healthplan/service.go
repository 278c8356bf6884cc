package healthplan

import (
	"context"
	"errors"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository"
	"github.com/vetcarehq/vetclinic-api/internal/validation"
	apperrors "github.com/vetcarehq/vetclinic-api/pkg/errors"
)

type Service struct {
	repo       repository.HealthPlanRepository
	treatments repository.TreatmentRepository
	validator  *validation.Validator
}

func NewService(repo repository.HealthPlanRepository, treatments repository.TreatmentRepository,
	validator *validation.Validator) *Service {
	return &Service{
		repo:       repo,
		treatments: treatments,
		validator:  validator,
	}
}

func (s *Service) List(ctx context.Context, ownerID int64, filter *model.HealthPlanFilter) ([]*model.HealthPlan, error) {
	list, err := s.repo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id int64) (*model.HealthPlan, error) {
	plan, err := s.repo.Get(ctx, ownerID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("health plan")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return plan, nil
}

// validate collects the declarative field rules plus the date ordering
// rule, which validator tags cannot express on the Date type.
func (s *Service) validate(req *model.HealthPlanRequest) []apperrors.FieldError {
	fields := s.validator.Validate(req)
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && !req.EndDate.After(req.StartDate) {
		fields = append(fields, apperrors.FieldError{
			Field:   "endDate",
			Message: "must be after startDate",
		})
	}
	return fields
}

func (s *Service) checkTreatment(ctx context.Context, ownerID, treatmentID int64) (*model.Treatment, error) {
	treatment, err := s.treatments.Get(ctx, ownerID, treatmentID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ValidationMsg("treatmentId does not reference one of your treatments")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return treatment, nil
}

func (s *Service) Create(ctx context.Context, ownerID int64, req *model.HealthPlanRequest) (*model.HealthPlan, error) {
	if fields := s.validate(req); fields != nil {
		return nil, apperrors.Validation(fields)
	}

	treatment, err := s.checkTreatment(ctx, ownerID, req.TreatmentID)
	if err != nil {
		return nil, err
	}

	plan := &model.HealthPlan{
		Name:                req.Name,
		TreatmentID:         req.TreatmentID,
		Description:         req.Description,
		Cost:                req.Cost,
		DurationMonths:      req.DurationMonths,
		VisitsIncluded:      req.VisitsIncluded,
		IncludesEmergencies: req.IncludesEmergencies,
		DiscountPercentage:  req.DiscountPercentage,
		CoverageDetails:     req.CoverageDetails,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		IsActive:            req.IsActive,
		OwnerID:             ownerID,
	}
	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, apperrors.Internal(err)
	}

	plan.TreatmentName = treatment.Name
	return plan, nil
}

func (s *Service) Update(ctx context.Context, ownerID int64, req *model.HealthPlanRequest) error {
	if fields := s.validate(req); fields != nil {
		return apperrors.Validation(fields)
	}

	if _, err := s.checkTreatment(ctx, ownerID, req.TreatmentID); err != nil {
		return err
	}

	plan := &model.HealthPlan{
		ID:                  req.ID,
		Name:                req.Name,
		TreatmentID:         req.TreatmentID,
		Description:         req.Description,
		Cost:                req.Cost,
		DurationMonths:      req.DurationMonths,
		VisitsIncluded:      req.VisitsIncluded,
		IncludesEmergencies: req.IncludesEmergencies,
		DiscountPercentage:  req.DiscountPercentage,
		CoverageDetails:     req.CoverageDetails,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		IsActive:            req.IsActive,
		OwnerID:             ownerID,
	}
	err := s.repo.Update(ctx, plan)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("health plan")
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	err := s.repo.Delete(ctx, ownerID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("health plan")
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
