package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository/memory"
	"github.com/vetcarehq/vetclinic-api/internal/validation"
	"github.com/vetcarehq/vetclinic-api/pkg/auth"
	apperrors "github.com/vetcarehq/vetclinic-api/pkg/errors"
	"github.com/vetcarehq/vetclinic-api/pkg/security"
)

func newTestService() *Service {
	jwtSvc := auth.NewJWTService("test-secret", "vetclinic-api", "vetclinic-clients", time.Hour)
	return NewService(memory.NewUserRepo(), jwtSvc, security.NewBcryptHasher(4), validation.New())
}

func registerRequest() *model.RegisterRequest {
	return &model.RegisterRequest{
		Email:           "vet@clinic.test",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, registerRequest()))

	resp, err := svc.Login(ctx, &model.LoginRequest{Email: "vet@clinic.test", Password: "supersecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.Expiration.After(time.Now()))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, registerRequest()))

	err := svc.Register(ctx, registerRequest())
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrAlreadyExists, appErr.Code)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc := newTestService()

	req := registerRequest()
	req.ConfirmPassword = "different"
	err := svc.Register(context.Background(), req)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, registerRequest()))

	_, err := svc.Login(ctx, &model.LoginRequest{Email: "vet@clinic.test", Password: "wrong-password"})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), &model.LoginRequest{Email: "nobody@clinic.test", Password: "whatever"})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
	// Unknown email reads identically to a bad password.
	assert.Equal(t, "invalid credentials", appErr.Message)
}
