package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/vetcarehq/vetclinic-api/pkg/errors"
)

// ContextOwnerID is the gin context key under which the auth middleware
// stores the authenticated user's id.
const ContextOwnerID = "ownerID"

// ErrorResponse is the error body returned to clients. Fields is populated
// for validation failures only.
type ErrorResponse struct {
	Message string                 `json:"message"`
	Fields  []apperrors.FieldError `json:"fields,omitempty"`
}

// OwnerID returns the authenticated subject set by the auth middleware.
func OwnerID(c *gin.Context) int64 {
	return c.GetInt64(ContextOwnerID)
}

// ParseID parses the :id path parameter.
func ParseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
		return 0, false
	}
	return id, true
}

// Error writes err as an HTTP response. Internal errors keep their cause
// server-side; the client only sees a generic message.
func Error(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.Internal(err)
	}

	if appErr.Code == apperrors.ErrInternal {
		log.Error().
			Err(appErr.Unwrap()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("request failed")
	}

	c.JSON(appErr.StatusCode(), ErrorResponse{
		Message: appErr.Message,
		Fields:  appErr.Fields,
	})
}
