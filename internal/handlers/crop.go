package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/agri-ledger/internal/middleware"
	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/services"
	"github.com/shopspring/decimal"
)

type CropHandler struct {
	cropService *services.CropService
}

func NewCropHandler(cropService *services.CropService) *CropHandler {
	return &CropHandler{cropService: cropService}
}

type StartCycleRequest struct {
	CropName  string          `json:"crop_name" binding:"required" example:"Wheat"`
	AreaUsed  decimal.Decimal `json:"area_used" swaggertype:"string" example:"2.5"`
	StartDate string          `json:"start_date" example:"2025-11-01"`
	Notes     string          `json:"notes"`
}

type UpdateCycleRequest struct {
	CropName  *string          `json:"crop_name"`
	AreaUsed  *decimal.Decimal `json:"area_used" swaggertype:"string"`
	StartDate *string          `json:"start_date"`
	Notes     *string          `json:"notes"`
}

type LogExpenseRequest struct {
	ItemName   string          `json:"item_name" binding:"required" example:"Urea"`
	Cost       decimal.Decimal `json:"cost" swaggertype:"string" example:"1250.00"`
	Date       string          `json:"date" example:"2025-11-15"`
	ReceiptRef string          `json:"receipt_ref"`
}

type HarvestRequest struct {
	QuantityProduced decimal.Decimal `json:"quantity_produced" swaggertype:"string" example:"42"`
	SellingPrice     decimal.Decimal `json:"selling_price" swaggertype:"string" example:"95000"`
	DateSold         string          `json:"date_sold" example:"2026-04-10"`
	ReceiptRef       string          `json:"receipt_ref"`
}

type cycleURI struct {
	ID uint `uri:"id" binding:"required"`
}

// ListCycles godoc
// @Summary List crop cycles
// @Description Crop cycles of the authenticated farmer, newest first
// @Tags crops
// @Produce json
// @Security BearerAuth
// @Param status query string false "ACTIVE or HARVESTED"
// @Success 200 {array} CycleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /crops [get]
func (h *CropHandler) ListCycles(c *gin.Context) {
	status := models.CycleStatus(strings.ToUpper(c.Query("status")))
	if status != "" && status != models.StatusActive && status != models.StatusHarvested {
		badRequest(c, "status must be ACTIVE or HARVESTED")
		return
	}

	cycles, err := h.cropService.ListCycles(c.Request.Context(), middleware.GetFarmerCode(c), status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCycleResponses(cycles))
}

// StartCycle godoc
// @Summary Start a crop cycle
// @Description Allocate land to a new ACTIVE crop cycle. Rejected with 409 when the farmer lacks free land.
// @Tags crops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StartCycleRequest true "Cycle details"
// @Success 201 {object} CycleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} InsufficientLandResponse
// @Router /crops [post]
func (h *CropHandler) StartCycle(c *gin.Context) {
	var req StartCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	start, err := parseOptionalDate(req.StartDate)
	if err != nil {
		badRequest(c, "start_date must be YYYY-MM-DD")
		return
	}

	cycle, err := h.cropService.StartCycle(c.Request.Context(), middleware.GetFarmerCode(c), services.StartCycleInput{
		CropName:  req.CropName,
		AreaUsed:  req.AreaUsed,
		StartDate: start,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCycleResponse(cycle, false))
}

// GetCycle godoc
// @Summary Get a crop cycle
// @Description Cycle with its expenses, yield and totals
// @Tags crops
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cycle ID"
// @Success 200 {object} CycleResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /crops/{id} [get]
func (h *CropHandler) GetCycle(c *gin.Context) {
	var uri cycleURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "invalid cycle ID")
		return
	}

	cycle, err := h.cropService.GetCycle(c.Request.Context(), middleware.GetFarmerCode(c), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCycleResponse(cycle, true))
}

// UpdateCycle godoc
// @Summary Update a crop cycle
// @Description Change name, area, start date or notes. Area changes are checked against free land.
// @Tags crops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cycle ID"
// @Param request body UpdateCycleRequest true "Fields to change"
// @Success 200 {object} CycleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} InsufficientLandResponse
// @Router /crops/{id} [put]
func (h *CropHandler) UpdateCycle(c *gin.Context) {
	var uri cycleURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "invalid cycle ID")
		return
	}

	var req UpdateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	input := services.UpdateCycleInput{
		CropName: req.CropName,
		AreaUsed: req.AreaUsed,
		Notes:    req.Notes,
	}
	if req.StartDate != nil {
		start, err := parseOptionalDate(*req.StartDate)
		if err != nil || start.IsZero() {
			badRequest(c, "start_date must be YYYY-MM-DD")
			return
		}
		input.StartDate = &start
	}

	cycle, err := h.cropService.UpdateCycle(c.Request.Context(), middleware.GetFarmerCode(c), uri.ID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCycleResponse(cycle, true))
}

// LogExpense godoc
// @Summary Log an expense
// @Description Record spending against a crop cycle
// @Tags crops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cycle ID"
// @Param request body LogExpenseRequest true "Expense details"
// @Success 201 {object} ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /crops/{id}/expenses [post]
func (h *CropHandler) LogExpense(c *gin.Context) {
	var uri cycleURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "invalid cycle ID")
		return
	}

	var req LogExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		badRequest(c, "date must be YYYY-MM-DD")
		return
	}

	expense, err := h.cropService.LogExpense(c.Request.Context(), middleware.GetFarmerCode(c), uri.ID, services.ExpenseInput{
		ItemName:   req.ItemName,
		Cost:       req.Cost,
		Date:       date,
		ReceiptRef: req.ReceiptRef,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

// Harvest godoc
// @Summary Harvest a crop cycle
// @Description Record the yield and close the cycle. Frees its land. A cycle can be harvested once.
// @Tags crops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cycle ID"
// @Param request body HarvestRequest true "Yield details"
// @Success 200 {object} CycleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /crops/{id}/harvest [post]
func (h *CropHandler) Harvest(c *gin.Context) {
	var uri cycleURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "invalid cycle ID")
		return
	}

	var req HarvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	sold, err := parseOptionalDate(req.DateSold)
	if err != nil {
		badRequest(c, "date_sold must be YYYY-MM-DD")
		return
	}

	cycle, err := h.cropService.Harvest(c.Request.Context(), middleware.GetFarmerCode(c), uri.ID, services.HarvestInput{
		QuantityProduced: req.QuantityProduced,
		SellingPrice:     req.SellingPrice,
		DateSold:         sold,
		ReceiptRef:       req.ReceiptRef,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCycleResponse(cycle, true))
}
