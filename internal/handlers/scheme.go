package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/agri-ledger/internal/middleware"
	"github.com/h4ks-com/agri-ledger/internal/services"
)

type SchemeHandler struct {
	schemeService *services.SchemeService
}

func NewSchemeHandler(schemeService *services.SchemeService) *SchemeHandler {
	return &SchemeHandler{schemeService: schemeService}
}

// ListSchemes godoc
// @Summary List scheme recommendations
// @Description Government schemes suggested for the authenticated farmer, newest first
// @Tags schemes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} SchemeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /schemes [get]
func (h *SchemeHandler) ListSchemes(c *gin.Context) {
	recs, err := h.schemeService.ListForFarmer(c.Request.Context(), middleware.GetFarmerCode(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSchemeResponses(recs))
}
