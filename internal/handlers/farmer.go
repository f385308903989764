package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/agri-ledger/internal/middleware"
	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/services"
	"github.com/shopspring/decimal"
)

const registrationTokenTTL = 30 * 24 * time.Hour

type FarmerHandler struct {
	farmerService *services.FarmerService
	tokenService  *services.TokenService
}

func NewFarmerHandler(farmerService *services.FarmerService, tokenService *services.TokenService) *FarmerHandler {
	return &FarmerHandler{farmerService: farmerService, tokenService: tokenService}
}

type RegisterFarmerRequest struct {
	Phone         string          `json:"phone" binding:"required"`
	Name          string          `json:"name"`
	TotalLandArea decimal.Decimal `json:"total_land_area" swaggertype:"string" example:"10.5"`
	State         string          `json:"state"`
	District      string          `json:"district"`
	Category      string          `json:"category" example:"GENERAL"`
	HasKCC        bool            `json:"has_kcc"`
	Language      string          `json:"language" example:"en"`
}

type RegisterFarmerResponse struct {
	Farmer    FarmerResponse `json:"farmer"`
	Token     string         `json:"token"`
	ExpiresAt string         `json:"expires_at"`
}

type UpdateFarmerRequest struct {
	Name          *string          `json:"name"`
	TotalLandArea *decimal.Decimal `json:"total_land_area" swaggertype:"string"`
	State         *string          `json:"state"`
	District      *string          `json:"district"`
	Category      *string          `json:"category"`
	HasKCC        *bool            `json:"has_kcc"`
	Language      *string          `json:"language"`
}

type ProfileResponse struct {
	FarmerResponse
	FreeLand string `json:"free_land"`
}

type DashboardResponse struct {
	Farmer         FarmerResponse    `json:"farmer"`
	FreeLand       string            `json:"free_land"`
	ActiveCrops    []CycleResponse   `json:"active_crops"`
	RecentExpenses []ExpenseResponse `json:"recent_expenses"`
	Schemes        []SchemeResponse  `json:"schemes"`
}

// Register godoc
// @Summary Register a farmer
// @Description Create a farmer profile and return a bearer token for it
// @Tags farmers
// @Accept json
// @Produce json
// @Param request body RegisterFarmerRequest true "Farmer details"
// @Success 201 {object} RegisterFarmerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /farmers [post]
func (h *FarmerHandler) Register(c *gin.Context) {
	var req RegisterFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	farmer, err := h.farmerService.Register(c.Request.Context(), services.RegisterFarmerInput{
		RegistrationKey: req.Phone,
		Name:            req.Name,
		TotalLandArea:   req.TotalLandArea,
		State:           req.State,
		District:        req.District,
		Category:        models.Category(req.Category),
		HasKCC:          req.HasKCC,
		Language:        req.Language,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokenService.GenerateToken(c.Request.Context(), farmer.FarmerCode, registrationTokenTTL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterFarmerResponse{
		Farmer:    toFarmerResponse(farmer),
		Token:     token,
		ExpiresAt: time.Now().Add(registrationTokenTTL).Format(time.RFC3339),
	})
}

// GetProfile godoc
// @Summary Get farmer profile
// @Description Profile of the authenticated farmer with current free land
// @Tags farmers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /farmer [get]
func (h *FarmerHandler) GetProfile(c *gin.Context) {
	code := middleware.GetFarmerCode(c)

	farmer, err := h.farmerService.GetFarmer(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	free, err := h.farmerService.FreeLand(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{FarmerResponse: toFarmerResponse(farmer), FreeLand: money(free)})
}

// UpdateProfile godoc
// @Summary Update farmer profile
// @Description Change profile fields. Shrinking land below the area of active crops is rejected.
// @Tags farmers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateFarmerRequest true "Fields to change"
// @Success 200 {object} FarmerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} InsufficientLandResponse
// @Router /farmer [put]
func (h *FarmerHandler) UpdateProfile(c *gin.Context) {
	var req UpdateFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	input := services.UpdateFarmerInput{
		Name:          req.Name,
		TotalLandArea: req.TotalLandArea,
		State:         req.State,
		District:      req.District,
		HasKCC:        req.HasKCC,
		Language:      req.Language,
	}
	if req.Category != nil {
		category := models.Category(*req.Category)
		input.Category = &category
	}

	farmer, err := h.farmerService.UpdateProfile(c.Request.Context(), middleware.GetFarmerCode(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toFarmerResponse(farmer))
}

// Dashboard godoc
// @Summary Farmer dashboard
// @Description Active crops, five latest expenses, five newest schemes and free land
// @Tags farmers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard [get]
func (h *FarmerHandler) Dashboard(c *gin.Context) {
	dash, err := h.farmerService.Dashboard(c.Request.Context(), middleware.GetFarmerCode(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Farmer:         toFarmerResponse(dash.Farmer),
		FreeLand:       money(dash.FreeLand),
		ActiveCrops:    toCycleResponses(dash.ActiveCrops),
		RecentExpenses: toExpenseResponses(dash.RecentExpenses),
		Schemes:        toSchemeResponses(dash.Schemes),
	})
}
