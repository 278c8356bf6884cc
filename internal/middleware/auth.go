package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"

	"github.com/vetcarehq/vetclinic-api/internal/handler"
	"github.com/vetcarehq/vetclinic-api/pkg/auth"
)

const claimsCacheTTL = 5 * time.Minute

type AuthMiddleware struct {
	jwtSvc auth.JWTService
	// claims of recently verified tokens, so hot clients skip signature
	// checks. Entries never outlive the token's own expiry.
	claims *gocache.Cache
}

func NewAuthMiddleware(jwtSvc auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSvc: jwtSvc,
		claims: gocache.New(claimsCacheTTL, 2*claimsCacheTTL),
	}
}

// Authenticate verifies the bearer token and sets the owner id in context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, handler.ErrorResponse{Message: "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, handler.ErrorResponse{Message: "invalid authorization format"})
			c.Abort()
			return
		}

		claims, err := m.lookup(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, handler.ErrorResponse{Message: "invalid token"})
			c.Abort()
			return
		}

		c.Set(handler.ContextOwnerID, claims.UserID)
		c.Next()
	}
}

func (m *AuthMiddleware) lookup(token string) (*auth.Claims, error) {
	if cached, ok := m.claims.Get(token); ok {
		claims := cached.(*auth.Claims)
		if time.Now().Before(claims.ExpiresAt) {
			return claims, nil
		}
		m.claims.Delete(token)
	}

	claims, err := m.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	ttl := claimsCacheTTL
	if remaining := time.Until(claims.ExpiresAt); remaining < ttl {
		ttl = remaining
	}
	if ttl > 0 {
		m.claims.Set(token, claims, ttl)
	}
	return claims, nil
}
