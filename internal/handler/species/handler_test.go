package species

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetcarehq/vetclinic-api/internal/handler"
	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository/memory"
	speciesservice "github.com/vetcarehq/vetclinic-api/internal/service/species"
	"github.com/vetcarehq/vetclinic-api/internal/validation"
)

func setupRouter(ownerID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)

	speciesRepo := memory.NewSpeciesRepo()
	treatmentRepo := memory.NewTreatmentRepo()
	consultationRepo := memory.NewConsultationRepo(speciesRepo, treatmentRepo)
	svc := speciesservice.NewService(speciesRepo, consultationRepo, validation.New())

	engine := gin.New()
	api := engine.Group("/api/v1", func(c *gin.Context) {
		c.Set(handler.ContextOwnerID, ownerID)
	})
	NewHandler(svc).RegisterRoutes(api)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"name":        "Canine",
		"description": "Dogs of all breeds",
		"isActive":    true,
	}
}

func TestCreateReturnsCreatedWithLocation(t *testing.T) {
	engine := setupRouter(1)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/species", validBody())
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/v1/species/1", w.Header().Get("Location"))

	var created model.Species
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Canine", created.Name)
	assert.False(t, created.CreatedDate.IsZero())
}

func TestCreateValidationFailureListsFields(t *testing.T) {
	engine := setupRouter(1)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/species", map[string]any{"isActive": true})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Message)
	assert.Len(t, resp.Fields, 2)
}

func TestGetUnknownIsNotFound(t *testing.T) {
	engine := setupRouter(1)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/species/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetInvalidID(t *testing.T) {
	engine := setupRouter(1)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/species/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid id", resp.Message)
}

func TestUpdatePathPayloadIDMismatch(t *testing.T) {
	engine := setupRouter(1)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/species", validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	body := validBody()
	body["id"] = 2
	w = doJSON(t, engine, http.MethodPut, "/api/v1/species/1", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "path id does not match payload id", resp.Message)
}

func TestUpdateReturnsNoContent(t *testing.T) {
	engine := setupRouter(1)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/species", validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	body := validBody()
	body["id"] = 1
	body["name"] = "Feline"
	w = doJSON(t, engine, http.MethodPut, "/api/v1/species/1", body)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/species/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got model.Species
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Feline", got.Name)
}

func TestDeleteReturnsNoContentThenNotFound(t *testing.T) {
	engine := setupRouter(1)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/species", validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/species/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/species/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListScopedToOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	speciesRepo := memory.NewSpeciesRepo()
	treatmentRepo := memory.NewTreatmentRepo()
	consultationRepo := memory.NewConsultationRepo(speciesRepo, treatmentRepo)
	svc := speciesservice.NewService(speciesRepo, consultationRepo, validation.New())

	engine := gin.New()
	var currentOwner int64
	api := engine.Group("/api/v1", func(c *gin.Context) {
		c.Set(handler.ContextOwnerID, currentOwner)
	})
	NewHandler(svc).RegisterRoutes(api)

	currentOwner = 1
	w := doJSON(t, engine, http.MethodPost, "/api/v1/species", validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	currentOwner = 2
	w = doJSON(t, engine, http.MethodGet, "/api/v1/species", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []model.Species
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)

	// And the probing tenant cannot fetch it by id either.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/species/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
