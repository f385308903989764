package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/agri-ledger/internal/repository"
	"github.com/h4ks-com/agri-ledger/internal/services"
)

type AdminHandler struct {
	farmerRepo   *repository.FarmerRepository
	tokenService *services.TokenService
}

func NewAdminHandler(farmerRepo *repository.FarmerRepository, tokenService *services.TokenService) *AdminHandler {
	return &AdminHandler{
		farmerRepo:   farmerRepo,
		tokenService: tokenService,
	}
}

type PurgeTokensResponse struct {
	Message string `json:"message"`
	Purged  int64  `json:"purged"`
}

// ListFarmers godoc
// @Summary List all farmers (Admin)
// @Description Every registered farmer profile
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} FarmerResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/farmers [get]
func (h *AdminHandler) ListFarmers(c *gin.Context) {
	farmers, err := h.farmerRepo.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]FarmerResponse, len(farmers))
	for i := range farmers {
		response[i] = toFarmerResponse(&farmers[i])
	}

	c.JSON(http.StatusOK, response)
}

// PurgeExpiredTokens godoc
// @Summary Purge expired tokens (Admin)
// @Description Delete every API token past its expiry
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PurgeTokensResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/tokens/expired [delete]
func (h *AdminHandler) PurgeExpiredTokens(c *gin.Context) {
	purged, err := h.tokenService.PurgeExpired(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PurgeTokensResponse{Message: "expired tokens purged", Purged: purged})
}
