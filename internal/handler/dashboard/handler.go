package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetcarehq/vetclinic-api/internal/handler"
	"github.com/vetcarehq/vetclinic-api/internal/service/dashboard"
)

type Handler struct {
	service *dashboard.Service
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard/stats", h.Stats)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), handler.OwnerID(c))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
