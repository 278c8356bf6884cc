package client

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authhandler "github.com/vetcarehq/vetclinic-api/internal/handler/auth"
	specieshandler "github.com/vetcarehq/vetclinic-api/internal/handler/species"
	"github.com/vetcarehq/vetclinic-api/internal/middleware"
	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository/memory"
	authservice "github.com/vetcarehq/vetclinic-api/internal/service/auth"
	speciesservice "github.com/vetcarehq/vetclinic-api/internal/service/species"
	"github.com/vetcarehq/vetclinic-api/internal/validation"
	"github.com/vetcarehq/vetclinic-api/pkg/auth"
	"github.com/vetcarehq/vetclinic-api/pkg/security"
)

// newTestStack runs the real handlers over memory repositories and returns
// a client pointed at them.
func newTestStack(t *testing.T, tokenExpiry time.Duration) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	speciesRepo := memory.NewSpeciesRepo()
	treatmentRepo := memory.NewTreatmentRepo()
	consultationRepo := memory.NewConsultationRepo(speciesRepo, treatmentRepo)
	userRepo := memory.NewUserRepo()

	validator := validation.New()
	jwtSvc := auth.NewJWTService("test-secret", "iss", "aud", tokenExpiry)

	engine := gin.New()
	api := engine.Group("/api/v1")
	authhandler.NewHandler(authservice.NewService(userRepo, jwtSvc, security.NewBcryptHasher(4), validator)).RegisterRoutes(api)

	secured := api.Group("", middleware.NewAuthMiddleware(jwtSvc).Authenticate())
	specieshandler.NewHandler(speciesservice.NewService(speciesRepo, consultationRepo, validator)).RegisterRoutes(secured)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	c, err := New(&Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func signUp(t *testing.T, c *Client) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, c.Register(ctx, "vet@clinic.test", "supersecret"))
	require.NoError(t, c.Login(ctx, "vet@clinic.test", "supersecret"))
}

func TestLoginStartsSession(t *testing.T) {
	c := newTestStack(t, time.Hour)

	assert.False(t, c.Session().IsAuthenticated())
	signUp(t, c)

	assert.True(t, c.Session().IsAuthenticated())
	assert.Equal(t, "vet@clinic.test", c.Session().Email())
	assert.True(t, c.Session().ExpiresAt().After(time.Now()))
}

func TestLoginBadCredentials(t *testing.T) {
	c := newTestStack(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Register(ctx, "vet@clinic.test", "supersecret"))

	err := c.Login(ctx, "vet@clinic.test", "wrong-password")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.False(t, c.Session().IsAuthenticated())
}

func TestRegisterDuplicateSurfacesConflict(t *testing.T) {
	c := newTestStack(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Register(ctx, "vet@clinic.test", "supersecret"))

	err := c.Register(ctx, "vet@clinic.test", "supersecret")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 409, apiErr.StatusCode)
}

func TestStoreMirrorsServerState(t *testing.T) {
	c := newTestStack(t, time.Hour)
	signUp(t, c)
	ctx := context.Background()

	store := c.Species()
	require.NoError(t, store.Load(ctx))
	assert.True(t, store.Loaded())
	assert.Empty(t, store.Items())

	created, err := store.Create(ctx, &model.SpeciesRequest{
		Name: "Canine", Description: "Dogs", IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	require.Len(t, store.Items(), 1)

	updated, err := store.Update(ctx, created.ID, &model.SpeciesRequest{
		ID: created.ID, Name: "Feline", Description: "Cats", IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Feline", updated.Name)
	// The re-fetch keeps server-computed fields in the cache.
	assert.True(t, updated.CreatedDate.Equal(created.CreatedDate))
	require.Len(t, store.Items(), 1)
	assert.Equal(t, "Feline", store.Items()[0].Name)

	require.NoError(t, store.Delete(ctx, created.ID))
	assert.Empty(t, store.Items())
	assert.NoError(t, store.Err())
}

func TestStoreGetFallsBackToServer(t *testing.T) {
	c := newTestStack(t, time.Hour)
	signUp(t, c)
	ctx := context.Background()

	store := c.Species()
	created, err := store.Create(ctx, &model.SpeciesRequest{
		Name: "Canine", Description: "Dogs", IsActive: true,
	})
	require.NoError(t, err)

	// A second store starts cold and fetches by id.
	cold := c.Species()
	got, err := cold.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Canine", got.Name)
}

func TestStoreSurfacesValidationErrors(t *testing.T) {
	c := newTestStack(t, time.Hour)
	signUp(t, c)

	store := c.Species()
	_, err := store.Create(context.Background(), &model.SpeciesRequest{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Len(t, apiErr.Fields, 2)
	assert.ErrorIs(t, store.Err(), err)
}

func TestExpiredTokenEndsSession(t *testing.T) {
	c := newTestStack(t, 50*time.Millisecond)
	signUp(t, c)

	expired := false
	c.Session().OnExpired(func() { expired = true })

	time.Sleep(100 * time.Millisecond)

	err := c.Species().Refresh(context.Background(), nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.True(t, expired)
	assert.False(t, c.Session().IsAuthenticated())
}

func TestLogoutClearsSession(t *testing.T) {
	c := newTestStack(t, time.Hour)
	signUp(t, c)

	c.Logout()
	assert.False(t, c.Session().IsAuthenticated())

	err := c.Species().Refresh(context.Background(), nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
}
