package healthplan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository/memory"
	"github.com/vetcarehq/vetclinic-api/internal/validation"
	apperrors "github.com/vetcarehq/vetclinic-api/pkg/errors"
)

const (
	ownerA int64 = 1
	ownerB int64 = 2
)

func newFixture(t *testing.T) (*Service, int64) {
	t.Helper()
	treatmentRepo := memory.NewTreatmentRepo()
	planRepo := memory.NewHealthPlanRepo(treatmentRepo)

	treatment := &model.Treatment{Name: "Dental cleaning", Description: "Full cleaning", EstimatedTimeMinutes: 45, OwnerID: ownerA}
	require.NoError(t, treatmentRepo.Create(context.Background(), treatment))

	return NewService(planRepo, treatmentRepo, validation.New()), treatment.ID
}

func validRequest(treatmentID int64) *model.HealthPlanRequest {
	return &model.HealthPlanRequest{
		Name:               "Gold",
		TreatmentID:        treatmentID,
		Description:        "Yearly dental coverage",
		Cost:               300,
		DurationMonths:     12,
		VisitsIncluded:     4,
		DiscountPercentage: 10,
		StartDate:          model.NewDate(2024, time.January, 1),
		EndDate:            model.NewDate(2024, time.December, 31),
		IsActive:           true,
	}
}

func TestCreateEnrichesTreatmentName(t *testing.T) {
	svc, treatmentID := newFixture(t)

	created, err := svc.Create(context.Background(), ownerA, validRequest(treatmentID))
	require.NoError(t, err)
	assert.Equal(t, "Dental cleaning", created.TreatmentName)
}

func TestCreateRejectsEndDateNotAfterStart(t *testing.T) {
	svc, treatmentID := newFixture(t)

	req := validRequest(treatmentID)
	req.EndDate = req.StartDate
	_, err := svc.Create(context.Background(), ownerA, req)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "endDate", appErr.Fields[0].Field)
	assert.Equal(t, "must be after startDate", appErr.Fields[0].Message)
}

func TestCreateCombinesFieldAndDateErrors(t *testing.T) {
	svc, treatmentID := newFixture(t)

	req := validRequest(treatmentID)
	req.Name = ""
	req.EndDate = model.NewDate(2023, time.December, 31)
	_, err := svc.Create(context.Background(), ownerA, req)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
	assert.Len(t, appErr.Fields, 2)
}

func TestCreateRejectsForeignTreatment(t *testing.T) {
	svc, treatmentID := newFixture(t)

	_, err := svc.Create(context.Background(), ownerB, validRequest(treatmentID))
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "treatmentId")
}

func TestUpdateRoundTrip(t *testing.T) {
	svc, treatmentID := newFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, ownerA, validRequest(treatmentID))
	require.NoError(t, err)

	req := validRequest(treatmentID)
	req.ID = created.ID
	req.Name = "Platinum"
	req.VisitsIncluded = 8
	require.NoError(t, svc.Update(ctx, ownerA, req))

	got, err := svc.Get(ctx, ownerA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Platinum", got.Name)
	assert.Equal(t, 8, got.VisitsIncluded)
	assert.Equal(t, "Dental cleaning", got.TreatmentName)
}

func TestDeleteCrossTenantIsNotFound(t *testing.T) {
	svc, treatmentID := newFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, ownerA, validRequest(treatmentID))
	require.NoError(t, err)

	err = svc.Delete(ctx, ownerB, created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
