package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetcarehq/vetclinic-api/internal/handler"
	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/service/auth"
)

type Handler struct {
	service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/auth")
	{
		group.POST("/login", h.Login)
		group.POST("/register", h.Register)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.ErrorResponse{Message: "invalid request body"})
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := h.service.Register(c.Request.Context(), &req); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user created successfully"})
}
