package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/agri-ledger/internal/services"
	"github.com/shopspring/decimal"
)

type ForecastHandler struct {
	forecastService *services.ForecastService
}

func NewForecastHandler(forecastService *services.ForecastService) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

type ForecastFiguresResponse struct {
	AvgExpensePerAcre string `json:"avg_expense_per_acre"`
	AvgIncomePerAcre  string `json:"avg_income_per_acre"`
	AvgProfitPerAcre  string `json:"avg_profit_per_acre"`
	EstimatedExpense  string `json:"estimated_expense"`
	EstimatedIncome   string `json:"estimated_income"`
	EstimatedProfit   string `json:"estimated_profit"`
	ROIPercentage     string `json:"roi_percentage"`
	CycleCount        int    `json:"cycle_count"`
	DataSource        string `json:"data_source"`
}

// ForecastResponse flattens the figures into the top level when a forecast
// was found and carries only a message otherwise.
type ForecastResponse struct {
	CropName string `json:"crop_name"`
	Area     string `json:"area"`
	Found    bool   `json:"found"`
	Message  string `json:"message,omitempty"`
	*ForecastFiguresResponse
}

// Forecast godoc
// @Summary Forecast a crop
// @Description Projected expense, income, profit and ROI for planting area acres. Local harvest history is preferred over the curated per-acre table.
// @Tags forecast
// @Produce json
// @Param crop query string true "Crop name"
// @Param area query string false "Area in acres (default 1)"
// @Success 200 {object} ForecastResponse
// @Failure 400 {object} ErrorResponse
// @Router /forecast [get]
func (h *ForecastHandler) Forecast(c *gin.Context) {
	area, err := parseDecimal(c.Query("area"), decimal.NewFromInt(1))
	if err != nil {
		badRequest(c, "area must be a number")
		return
	}

	forecast, err := h.forecastService.Forecast(c.Request.Context(), c.Query("crop"), area)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toForecastResponse(forecast))
}

func toForecastResponse(f *services.Forecast) ForecastResponse {
	resp := ForecastResponse{
		CropName: f.CropName,
		Area:     money(f.Area),
		Found:    f.Found,
		Message:  f.Message,
	}
	if f.Figures != nil {
		resp.ForecastFiguresResponse = &ForecastFiguresResponse{
			AvgExpensePerAcre: money(f.Figures.AvgExpensePerAcre),
			AvgIncomePerAcre:  money(f.Figures.AvgIncomePerAcre),
			AvgProfitPerAcre:  money(f.Figures.AvgProfitPerAcre),
			EstimatedExpense:  money(f.Figures.EstimatedExpense),
			EstimatedIncome:   money(f.Figures.EstimatedIncome),
			EstimatedProfit:   money(f.Figures.EstimatedProfit),
			ROIPercentage:     f.Figures.ROIPercentage.StringFixed(1),
			CycleCount:        f.Figures.CycleCount,
			DataSource:        f.Figures.DataSource,
		}
	}
	return resp
}
