package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiresIn(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"24h", 24 * time.Hour, false},
		{"7d", 7 * 24 * time.Hour, false},
		{"90m", 90 * time.Minute, false},
		{"xd", 0, true},
		{"soon", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseExpiresIn(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenAPI_CreateListDelete(t *testing.T) {
	env := setupAPI(t, true)
	farmer, _ := env.register(t, "9400000001", "3")

	w := env.do(t, request{
		method: http.MethodPost,
		path:   "/api/v1/tokens",
		farmer: farmer,
		body:   map[string]any{"expires_in": "7d"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, decode[IssuedTokenResponse](t, w).Token)

	w = env.do(t, request{method: http.MethodGet, path: "/api/v1/tokens", farmer: farmer})
	require.Equal(t, http.StatusOK, w.Code)
	tokens := decode[[]APITokenResponse](t, w)
	// registration token plus the one above
	require.Len(t, tokens, 2)

	w = env.do(t, request{method: http.MethodDelete, path: fmt.Sprintf("/api/v1/tokens/%d", tokens[0].ID), farmer: farmer})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, request{method: http.MethodGet, path: "/api/v1/tokens", farmer: farmer})
	assert.Len(t, decode[[]APITokenResponse](t, w), 1)
}

func TestTokenAPI_RejectsBadExpiry(t *testing.T) {
	env := setupAPI(t, true)
	farmer, _ := env.register(t, "9400000002", "3")

	for _, expiry := range []string{"soon", "-5h", "0d"} {
		w := env.do(t, request{
			method: http.MethodPost,
			path:   "/api/v1/tokens",
			farmer: farmer,
			body:   map[string]any{"expires_in": expiry},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, expiry)
	}
}

func TestBearerAuth(t *testing.T) {
	env := setupAPI(t, false)
	farmer, token := env.register(t, "9400000003", "3")

	w := env.do(t, request{method: http.MethodGet, path: "/api/v1/farmer", bearer: token})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, farmer, decode[ProfileResponse](t, w).FarmerCode)

	w = env.do(t, request{method: http.MethodGet, path: "/api/v1/farmer"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, request{method: http.MethodGet, path: "/api/v1/farmer", bearer: "not-a-jwt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// the test header is ignored outside test mode
	w = env.do(t, request{method: http.MethodGet, path: "/api/v1/farmer", farmer: farmer})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
