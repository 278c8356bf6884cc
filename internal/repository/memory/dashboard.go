package memory

import (
	"context"

	"github.com/vetcarehq/vetclinic-api/internal/model"
)

type DashboardRepo struct {
	species       *SpeciesRepo
	treatments    *TreatmentRepo
	consultations *ConsultationRepo
	plans         *HealthPlanRepo
}

func NewDashboardRepo(species *SpeciesRepo, treatments *TreatmentRepo, consultations *ConsultationRepo, plans *HealthPlanRepo) *DashboardRepo {
	return &DashboardRepo{
		species:       species,
		treatments:    treatments,
		consultations: consultations,
		plans:         plans,
	}
}

func (r *DashboardRepo) Counts(ctx context.Context, ownerID int64) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{}

	if list, err := r.species.List(ctx, ownerID, nil); err == nil {
		stats.TotalSpecies = int64(len(list))
	}
	if list, err := r.treatments.List(ctx, ownerID, nil); err == nil {
		stats.TotalTreatments = int64(len(list))
	}
	if list, err := r.consultations.List(ctx, ownerID, nil); err == nil {
		stats.TotalConsultations = int64(len(list))
	}
	if list, err := r.plans.List(ctx, ownerID, nil); err == nil {
		stats.TotalHealthPlans = int64(len(list))
	}
	return stats, nil
}
