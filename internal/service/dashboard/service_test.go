package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository/memory"
)

func TestStatsCountsPerOwner(t *testing.T) {
	ctx := context.Background()

	speciesRepo := memory.NewSpeciesRepo()
	treatmentRepo := memory.NewTreatmentRepo()
	consultationRepo := memory.NewConsultationRepo(speciesRepo, treatmentRepo)
	planRepo := memory.NewHealthPlanRepo(treatmentRepo)
	svc := NewService(memory.NewDashboardRepo(speciesRepo, treatmentRepo, consultationRepo, planRepo))

	species := &model.Species{Name: "Canine", Description: "Dogs", OwnerID: 1}
	require.NoError(t, speciesRepo.Create(ctx, species))
	require.NoError(t, speciesRepo.Create(ctx, &model.Species{Name: "Feline", Description: "Cats", OwnerID: 1}))

	treatment := &model.Treatment{Name: "Checkup", Description: "Routine", EstimatedTimeMinutes: 30, OwnerID: 1}
	require.NoError(t, treatmentRepo.Create(ctx, treatment))

	require.NoError(t, consultationRepo.Create(ctx, &model.Consultation{
		SpeciesID: species.ID, TreatmentID: treatment.ID, PetName: "Rex", OwnerID: 1,
	}))

	// Another tenant's data must not leak into the counts.
	require.NoError(t, speciesRepo.Create(ctx, &model.Species{Name: "Avian", Description: "Birds", OwnerID: 2}))

	stats, err := svc.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalSpecies)
	assert.Equal(t, int64(1), stats.TotalTreatments)
	assert.Equal(t, int64(1), stats.TotalConsultations)
	assert.Equal(t, int64(0), stats.TotalHealthPlans)
}

func TestStatsEmptyOwner(t *testing.T) {
	speciesRepo := memory.NewSpeciesRepo()
	treatmentRepo := memory.NewTreatmentRepo()
	consultationRepo := memory.NewConsultationRepo(speciesRepo, treatmentRepo)
	planRepo := memory.NewHealthPlanRepo(treatmentRepo)
	svc := NewService(memory.NewDashboardRepo(speciesRepo, treatmentRepo, consultationRepo, planRepo))

	stats, err := svc.Stats(context.Background(), 7)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalSpecies)
	assert.Zero(t, stats.TotalConsultations)
}
