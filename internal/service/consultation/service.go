package consultation

import (
	"context"
	"errors"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository"
	"github.com/vetcarehq/vetclinic-api/internal/validation"
	apperrors "github.com/vetcarehq/vetclinic-api/pkg/errors"
)

type Service struct {
	repo       repository.ConsultationRepository
	species    repository.SpeciesRepository
	treatments repository.TreatmentRepository
	validator  *validation.Validator
}

func NewService(repo repository.ConsultationRepository, species repository.SpeciesRepository,
	treatments repository.TreatmentRepository, validator *validation.Validator) *Service {
	return &Service{
		repo:       repo,
		species:    species,
		treatments: treatments,
		validator:  validator,
	}
}

func (s *Service) List(ctx context.Context, ownerID int64, filter *model.ConsultationFilter) ([]*model.Consultation, error) {
	list, err := s.repo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id int64) (*model.Consultation, error) {
	consultation, err := s.repo.Get(ctx, ownerID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("consultation")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return consultation, nil
}

// checkReferences verifies both foreign keys point at rows owned by the
// caller. Runs after field validation, before any write; the first failing
// reference short-circuits.
func (s *Service) checkReferences(ctx context.Context, ownerID int64, req *model.ConsultationRequest) (*model.Species, *model.Treatment, error) {
	species, err := s.species.Get(ctx, ownerID, req.SpeciesID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, apperrors.ValidationMsg("speciesId does not reference one of your species")
	}
	if err != nil {
		return nil, nil, apperrors.Internal(err)
	}

	treatment, err := s.treatments.Get(ctx, ownerID, req.TreatmentID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, apperrors.ValidationMsg("treatmentId does not reference one of your treatments")
	}
	if err != nil {
		return nil, nil, apperrors.Internal(err)
	}

	return species, treatment, nil
}

func (s *Service) Create(ctx context.Context, ownerID int64, req *model.ConsultationRequest) (*model.Consultation, error) {
	if fields := s.validator.Validate(req); fields != nil {
		return nil, apperrors.Validation(fields)
	}

	species, treatment, err := s.checkReferences(ctx, ownerID, req)
	if err != nil {
		return nil, err
	}

	consultation := &model.Consultation{
		SpeciesID:        req.SpeciesID,
		TreatmentID:      req.TreatmentID,
		PetName:          req.PetName,
		OwnerName:        req.OwnerName,
		ContactInfo:      req.ContactInfo,
		Cost:             req.Cost,
		Description:      req.Description,
		TreatmentNotes:   req.TreatmentNotes,
		Prescription:     req.Prescription,
		ConsultationDate: req.ConsultationDate,
		FollowUpDate:     req.FollowUpDate,
		OwnerID:          ownerID,
	}
	if err := s.repo.Create(ctx, consultation); err != nil {
		return nil, apperrors.Internal(err)
	}

	// The reference checks already loaded the related rows; reuse them for
	// the enrichment fields instead of re-reading.
	consultation.SpeciesName = species.Name
	consultation.TreatmentName = treatment.Name
	return consultation, nil
}

func (s *Service) Update(ctx context.Context, ownerID int64, req *model.ConsultationRequest) error {
	if fields := s.validator.Validate(req); fields != nil {
		return apperrors.Validation(fields)
	}

	if _, _, err := s.checkReferences(ctx, ownerID, req); err != nil {
		return err
	}

	consultation := &model.Consultation{
		ID:               req.ID,
		SpeciesID:        req.SpeciesID,
		TreatmentID:      req.TreatmentID,
		PetName:          req.PetName,
		OwnerName:        req.OwnerName,
		ContactInfo:      req.ContactInfo,
		Cost:             req.Cost,
		Description:      req.Description,
		TreatmentNotes:   req.TreatmentNotes,
		Prescription:     req.Prescription,
		ConsultationDate: req.ConsultationDate,
		FollowUpDate:     req.FollowUpDate,
		OwnerID:          ownerID,
	}
	err := s.repo.Update(ctx, consultation)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("consultation")
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	err := s.repo.Delete(ctx, ownerID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("consultation")
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
