package treatment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository/memory"
	"github.com/vetcarehq/vetclinic-api/internal/validation"
	apperrors "github.com/vetcarehq/vetclinic-api/pkg/errors"
)

const owner int64 = 1

type fixture struct {
	svc           *Service
	species       *memory.SpeciesRepo
	consultations *memory.ConsultationRepo
	plans         *memory.HealthPlanRepo
}

func newFixture() *fixture {
	speciesRepo := memory.NewSpeciesRepo()
	treatmentRepo := memory.NewTreatmentRepo()
	consultationRepo := memory.NewConsultationRepo(speciesRepo, treatmentRepo)
	planRepo := memory.NewHealthPlanRepo(treatmentRepo)
	return &fixture{
		svc:           NewService(treatmentRepo, consultationRepo, planRepo, validation.New()),
		species:       speciesRepo,
		consultations: consultationRepo,
		plans:         planRepo,
	}
}

func validRequest() *model.TreatmentRequest {
	return &model.TreatmentRequest{
		Name:                 "Vaccination",
		Description:          "Annual shots",
		DefaultCost:          45,
		EstimatedTimeMinutes: 20,
		IsActive:             true,
	}
}

func TestCreateStampsOwnerAndDate(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Create(context.Background(), owner, validRequest())
	require.NoError(t, err)
	assert.Equal(t, owner, created.OwnerID)
	assert.False(t, created.CreatedDate.IsZero())
	assert.Nil(t, created.IconName)
}

func TestCreateRejectsZeroDuration(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.EstimatedTimeMinutes = 0
	_, err := f.svc.Create(context.Background(), owner, req)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "estimatedTimeMinutes", appErr.Fields[0].Field)
}

func TestDeleteBlockedByConsultation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, owner, validRequest())
	require.NoError(t, err)

	species := &model.Species{Name: "Canine", Description: "Dogs", OwnerID: owner}
	require.NoError(t, f.species.Create(ctx, species))
	require.NoError(t, f.consultations.Create(ctx, &model.Consultation{
		SpeciesID:   species.ID,
		TreatmentID: created.ID,
		PetName:     "Rex",
		OwnerID:     owner,
	}))

	err = f.svc.Delete(ctx, owner, created.ID)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrConflict, appErr.Code)
	assert.Contains(t, appErr.Message, "consultations")
}

func TestDeleteBlockedByHealthPlan(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, owner, validRequest())
	require.NoError(t, err)

	require.NoError(t, f.plans.Create(ctx, &model.HealthPlan{
		Name:        "Gold",
		TreatmentID: created.ID,
		OwnerID:     owner,
	}))

	err = f.svc.Delete(ctx, owner, created.ID)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrConflict, appErr.Code)
	assert.Contains(t, appErr.Message, "health plans")
}

func TestDeleteUnreferenced(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, owner, validRequest())
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, owner, created.ID))
	_, err = f.svc.Get(ctx, owner, created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOptionalFieldsRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	icon := "syringe"
	color := "#FF8800"
	req := validRequest()
	req.IconName = &icon
	req.ColorCode = &color

	created, err := f.svc.Create(ctx, owner, req)
	require.NoError(t, err)

	got, err := f.svc.Get(ctx, owner, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.IconName)
	assert.Equal(t, "syringe", *got.IconName)
	require.NotNil(t, got.ColorCode)
	assert.Equal(t, "#FF8800", *got.ColorCode)
}
