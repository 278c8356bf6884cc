package repository

import (
	"context"
	"errors"

	"github.com/vetcarehq/vetclinic-api/internal/model"
)

// ErrNotFound is returned when a row is absent under the caller's ownership.
// Cross-tenant probing is indistinguishable from absence.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned by UserRepository.Create on a unique
// constraint violation for the email column.
var ErrDuplicateEmail = errors.New("email already registered")

// All repository interfaces in one file. Every operation takes the owner id
// of the authenticated user and touches only that owner's rows.
type (
	SpeciesRepository interface {
		List(ctx context.Context, ownerID int64, filter *model.SpeciesFilter) ([]*model.Species, error)
		Get(ctx context.Context, ownerID, id int64) (*model.Species, error)
		Create(ctx context.Context, species *model.Species) error
		Update(ctx context.Context, species *model.Species) error
		Delete(ctx context.Context, ownerID, id int64) error
	}

	TreatmentRepository interface {
		List(ctx context.Context, ownerID int64, filter *model.TreatmentFilter) ([]*model.Treatment, error)
		Get(ctx context.Context, ownerID, id int64) (*model.Treatment, error)
		Create(ctx context.Context, treatment *model.Treatment) error
		Update(ctx context.Context, treatment *model.Treatment) error
		Delete(ctx context.Context, ownerID, id int64) error
	}

	// ConsultationRepository eager-loads species and treatment names on
	// reads so responses can be enriched without extra round trips.
	ConsultationRepository interface {
		List(ctx context.Context, ownerID int64, filter *model.ConsultationFilter) ([]*model.Consultation, error)
		Get(ctx context.Context, ownerID, id int64) (*model.Consultation, error)
		Create(ctx context.Context, consultation *model.Consultation) error
		Update(ctx context.Context, consultation *model.Consultation) error
		Delete(ctx context.Context, ownerID, id int64) error
		CountBySpecies(ctx context.Context, ownerID, speciesID int64) (int64, error)
		CountByTreatment(ctx context.Context, ownerID, treatmentID int64) (int64, error)
	}

	HealthPlanRepository interface {
		List(ctx context.Context, ownerID int64, filter *model.HealthPlanFilter) ([]*model.HealthPlan, error)
		Get(ctx context.Context, ownerID, id int64) (*model.HealthPlan, error)
		Create(ctx context.Context, plan *model.HealthPlan) error
		Update(ctx context.Context, plan *model.HealthPlan) error
		Delete(ctx context.Context, ownerID, id int64) error
		CountByTreatment(ctx context.Context, ownerID, treatmentID int64) (int64, error)
	}

	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		GetByEmail(ctx context.Context, email string) (*model.User, error)
	}

	DashboardRepository interface {
		Counts(ctx context.Context, ownerID int64) (*model.DashboardStats, error)
	}
)
