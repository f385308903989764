package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/agri-ledger/internal/services"
)

const (
	farmerCodeKey    = "farmer_code"
	TestFarmerHeader = "X-Test-Farmer"
)

type AuthMiddleware struct {
	tokenService *services.TokenService
	testMode     bool
}

func NewAuthMiddleware(tokenService *services.TokenService, testMode bool) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		testMode:     testMode,
	}
}

// RequireAuth resolves the calling farmer from a bearer token. In test mode
// the farmer code is taken from the X-Test-Farmer header instead.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.testMode {
			code := c.GetHeader(TestFarmerHeader)
			if code == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": TestFarmerHeader + " header required in test mode"})
				return
			}
			c.Set(farmerCodeKey, code)
			c.Next()
			return
		}

		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}

		claims, err := m.tokenService.ValidateToken(c.Request.Context(), strings.TrimSpace(raw))
		switch {
		case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrExpiredToken):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(farmerCodeKey, claims.FarmerCode)
		c.Next()
	}
}

// GetFarmerCode returns the farmer resolved by RequireAuth, or "".
func GetFarmerCode(c *gin.Context) string {
	return c.GetString(farmerCodeKey)
}
