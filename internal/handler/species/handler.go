package species

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetcarehq/vetclinic-api/internal/handler"
	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/service/species"
)

type Handler struct {
	service *species.Service
}

func NewHandler(service *species.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/species")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

func parseFilter(c *gin.Context) *model.SpeciesFilter {
	filter := &model.SpeciesFilter{
		Search:     c.Query("search"),
		ActiveOnly: c.Query("activeOnly") == "true",
	}
	if d, err := model.ParseDate(c.Query("dateFrom")); err == nil {
		filter.DateFrom = &d
	}
	if d, err := model.ParseDate(c.Query("dateTo")); err == nil {
		filter.DateTo = &d
	}
	return filter
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), handler.OwnerID(c), parseFilter(c))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	species, err := h.service.Get(c.Request.Context(), handler.OwnerID(c), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, species)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.SpeciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.ErrorResponse{Message: "invalid request body"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), handler.OwnerID(c), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/species/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	var req model.SpeciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.ErrorResponse{Message: "invalid request body"})
		return
	}
	if req.ID != id {
		c.JSON(http.StatusBadRequest, handler.ErrorResponse{Message: "path id does not match payload id"})
		return
	}

	if err := h.service.Update(c.Request.Context(), handler.OwnerID(c), &req); err != nil {
		handler.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), handler.OwnerID(c), id); err != nil {
		handler.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
