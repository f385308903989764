package handlers

import (
	"time"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/services"
)

type FarmerResponse struct {
	FarmerCode    string `json:"farmer_code"`
	Name          string `json:"name"`
	TotalLandArea string `json:"total_land_area"`
	State         string `json:"state"`
	District      string `json:"district"`
	Category      string `json:"category"`
	HasKCC        bool   `json:"has_kcc"`
	Language      string `json:"language"`
	CreatedAt     string `json:"created_at"`
}

type ExpenseResponse struct {
	ID         uint   `json:"id"`
	CycleID    uint   `json:"cycle_id"`
	CropName   string `json:"crop_name,omitempty"`
	ItemName   string `json:"item_name"`
	Cost       string `json:"cost"`
	Date       string `json:"date"`
	ReceiptRef string `json:"receipt_ref,omitempty"`
}

type YieldResponse struct {
	QuantityProduced string `json:"quantity_produced"`
	SellingPrice     string `json:"selling_price"`
	DateSold         string `json:"date_sold"`
	ReceiptRef       string `json:"receipt_ref,omitempty"`
}

type CycleResponse struct {
	ID           uint              `json:"id"`
	CropName     string            `json:"crop_name"`
	AreaUsed     string            `json:"area_used"`
	StartDate    string            `json:"start_date"`
	Status       string            `json:"status"`
	Notes        string            `json:"notes,omitempty"`
	ExpenseTotal string            `json:"expense_total"`
	IncomeTotal  string            `json:"income_total"`
	Profit       string            `json:"profit"`
	Expenses     []ExpenseResponse `json:"expenses,omitempty"`
	Yield        *YieldResponse    `json:"yield,omitempty"`
}

type SchemeResponse struct {
	ID                  uint   `json:"id"`
	SchemeName          string `json:"scheme_name"`
	Description         string `json:"description"`
	Benefits            string `json:"benefits"`
	EligibilityCriteria string `json:"eligibility_criteria"`
	Link                string `json:"link"`
	CreatedAt           string `json:"created_at"`
}

func toFarmerResponse(f *models.Farmer) FarmerResponse {
	return FarmerResponse{
		FarmerCode:    f.FarmerCode,
		Name:          f.Name,
		TotalLandArea: money(f.TotalLandArea),
		State:         f.State,
		District:      f.District,
		Category:      string(f.Category),
		HasKCC:        f.HasKCC,
		Language:      f.Language,
		CreatedAt:     f.CreatedAt.Format(time.RFC3339),
	}
}

func toExpenseResponse(e *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:         e.ID,
		CycleID:    e.CycleID,
		CropName:   e.Cycle.CropName,
		ItemName:   e.ItemName,
		Cost:       money(e.Cost),
		Date:       formatDate(e.Date),
		ReceiptRef: e.ReceiptRef,
	}
}

func toExpenseResponses(expenses []models.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = toExpenseResponse(&expenses[i])
	}
	return out
}

// toCycleResponse includes line items only when withDetail is set.
func toCycleResponse(c *models.CropCycle, withDetail bool) CycleResponse {
	totals := services.TotalsForCycle(c)
	resp := CycleResponse{
		ID:           c.ID,
		CropName:     c.CropName,
		AreaUsed:     money(c.AreaUsed),
		StartDate:    formatDate(c.StartDate),
		Status:       string(c.Status),
		Notes:        c.Notes,
		ExpenseTotal: money(totals.ExpenseTotal),
		IncomeTotal:  money(totals.IncomeTotal),
		Profit:       money(totals.Profit()),
	}
	if withDetail {
		resp.Expenses = toExpenseResponses(c.Expenses)
	}
	if c.Yield != nil {
		resp.Yield = &YieldResponse{
			QuantityProduced: money(c.Yield.QuantityProduced),
			SellingPrice:     money(c.Yield.SellingPrice),
			DateSold:         formatDate(c.Yield.DateSold),
			ReceiptRef:       c.Yield.ReceiptRef,
		}
	}
	return resp
}

func toCycleResponses(cycles []models.CropCycle) []CycleResponse {
	out := make([]CycleResponse, len(cycles))
	for i := range cycles {
		out[i] = toCycleResponse(&cycles[i], false)
	}
	return out
}

func toSchemeResponses(schemes []models.SchemeRecommendation) []SchemeResponse {
	out := make([]SchemeResponse, len(schemes))
	for i, s := range schemes {
		out[i] = SchemeResponse{
			ID:                  s.ID,
			SchemeName:          s.SchemeName,
			Description:         s.Description,
			Benefits:            s.Benefits,
			EligibilityCriteria: s.EligibilityCriteria,
			Link:                s.Link,
			CreatedAt:           s.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}
