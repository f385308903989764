package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware admits farmers whose code is listed in ADMIN_FARMERS.
type AdminMiddleware struct {
	admins map[string]struct{}
}

func NewAdminMiddleware(adminFarmers []string) *AdminMiddleware {
	admins := make(map[string]struct{}, len(adminFarmers))
	for _, code := range adminFarmers {
		if code != "" {
			admins[code] = struct{}{}
		}
	}
	return &AdminMiddleware{admins: admins}
}

// RequireAdmin must run after RequireAuth.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		code := GetFarmerCode(c)
		if code == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if _, ok := m.admins[code]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
