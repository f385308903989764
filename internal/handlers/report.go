package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/agri-ledger/internal/middleware"
	"github.com/h4ks-com/agri-ledger/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type FinancialSummaryResponse struct {
	Farmer          FarmerResponse    `json:"farmer"`
	RecentCycles    []CycleResponse   `json:"recent_cycles"`
	RecentExpenses  []ExpenseResponse `json:"recent_expenses"`
	TotalIncome     string            `json:"total_income"`
	TotalExpense    string            `json:"total_expense"`
	NetProfit       string            `json:"net_profit"`
	CropCount       int               `json:"crop_count"`
	ActiveCropCount int               `json:"active_crop_count"`
	CreditScore     int               `json:"credit_score"`
	ReportDate      string            `json:"report_date"`
}

// FinancialSummary godoc
// @Summary Financial summary
// @Description Printable statement with lifetime totals, recent activity and credit score
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} FinancialSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /report [get]
func (h *ReportHandler) FinancialSummary(c *gin.Context) {
	summary, err := h.reportService.FinancialSummary(c.Request.Context(), middleware.GetFarmerCode(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, FinancialSummaryResponse{
		Farmer:          toFarmerResponse(summary.Farmer),
		RecentCycles:    toCycleResponses(summary.RecentCycles),
		RecentExpenses:  toExpenseResponses(summary.RecentExpenses),
		TotalIncome:     money(summary.TotalIncome),
		TotalExpense:    money(summary.TotalExpense),
		NetProfit:       money(summary.NetProfit),
		CropCount:       summary.CropCount,
		ActiveCropCount: summary.ActiveCropCount,
		CreditScore:     summary.CreditScore,
		ReportDate:      formatDate(summary.ReportDate),
	})
}
