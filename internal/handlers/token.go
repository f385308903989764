package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/agri-ledger/internal/middleware"
	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/services"
)

type TokenHandler struct {
	tokenService *services.TokenService
}

func NewTokenHandler(tokenService *services.TokenService) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

type CreateTokenRequest struct {
	ExpiresIn string `json:"expires_in" binding:"required" example:"30d"`
}

type IssuedTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type APITokenResponse struct {
	ID        uint   `json:"id"`
	ExpiresAt string `json:"expires_at"`
	CreatedAt string `json:"created_at"`
}

// parseExpiresIn accepts Go durations plus a whole-day suffix such as 7d.
func parseExpiresIn(s string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, err
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}

func toAPITokenResponse(t models.APIToken) APITokenResponse {
	return APITokenResponse{
		ID:        t.ID,
		ExpiresAt: t.ExpiresAt.Format(time.RFC3339),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

// CreateToken godoc
// @Summary Issue an API token
// @Description Issue another bearer token for the authenticated farmer, e.g. for a field device
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTokenRequest true "Lifetime such as 24h, 7d or 30d"
// @Success 201 {object} IssuedTokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /tokens [post]
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var req CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	ttl, err := parseExpiresIn(strings.TrimSpace(req.ExpiresIn))
	switch {
	case err != nil:
		badRequest(c, "expires_in must look like 24h or 30d")
		return
	case ttl <= 0:
		badRequest(c, "expires_in must be positive")
		return
	}

	issuedAt := time.Now()
	token, err := h.tokenService.GenerateToken(c.Request.Context(), middleware.GetFarmerCode(c), ttl)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, IssuedTokenResponse{
		Token:     token,
		ExpiresAt: issuedAt.Add(ttl).Format(time.RFC3339),
	})
}

// ListTokens godoc
// @Summary List API tokens
// @Description Tokens issued to the authenticated farmer, newest first. Token values are not returned.
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Success 200 {array} APITokenResponse
// @Failure 401 {object} ErrorResponse
// @Router /tokens [get]
func (h *TokenHandler) ListTokens(c *gin.Context) {
	tokens, err := h.tokenService.ListFarmerTokens(c.Request.Context(), middleware.GetFarmerCode(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]APITokenResponse, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, toAPITokenResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

// DeleteToken godoc
// @Summary Revoke an API token
// @Description Revoke one of the authenticated farmer's tokens
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Param id path int true "Token ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /tokens/{id} [delete]
func (h *TokenHandler) DeleteToken(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "invalid token ID")
		return
	}

	if err := h.tokenService.DeleteToken(c.Request.Context(), uint(id), middleware.GetFarmerCode(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "token revoked"})
}
