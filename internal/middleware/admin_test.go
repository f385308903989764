package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminRouter(admins ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := NewAuthMiddleware(nil, true)
	r := gin.New()
	r.GET("/admin", auth.RequireAuth(), NewAdminMiddleware(admins).RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, GetFarmerCode(c))
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name   string
		admins []string
		farmer string
		want   int
	}{
		{"listed admin", []string{"FMR-ADMN"}, "FMR-ADMN", http.StatusOK},
		{"not listed", []string{"FMR-ADMN"}, "FMR-USER", http.StatusForbidden},
		{"empty entries ignored", []string{""}, "FMR-USER", http.StatusForbidden},
		{"no header", []string{"FMR-ADMN"}, "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.farmer != "" {
				req.Header.Set(TestFarmerHeader, tt.farmer)
			}
			w := httptest.NewRecorder()
			adminRouter(tt.admins...).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestGetFarmerCode_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetFarmerCode(c))
}
