package services

import (
	"context"
	"strings"

	"github.com/h4ks-com/agri-ledger/internal/catalog"
	"github.com/shopspring/decimal"
)

const (
	SourceHistorical = "historical"
	SourceEstimated  = "estimated"

	NoForecastMessage = "No historical or estimated data available for this crop."
)

var hundred = decimal.NewFromInt(100)

// ForecastFigures holds unrounded amounts for the requested area.
type ForecastFigures struct {
	AvgExpensePerAcre decimal.Decimal
	AvgIncomePerAcre  decimal.Decimal
	AvgProfitPerAcre  decimal.Decimal
	EstimatedExpense  decimal.Decimal
	EstimatedIncome   decimal.Decimal
	EstimatedProfit   decimal.Decimal
	ROIPercentage     decimal.Decimal
	CycleCount        int
	DataSource        string
}

// Forecast carries Figures only when Found is true.
type Forecast struct {
	CropName string
	Area     decimal.Decimal
	Found    bool
	Figures  *ForecastFigures
	Message  string
}

type ForecastService struct {
	finance *FinanceService
	catalog *catalog.Catalog
}

func NewForecastService(finance *FinanceService, cat *catalog.Catalog) *ForecastService {
	return &ForecastService{finance: finance, catalog: cat}
}

// Forecast projects cost and revenue for planting area acres of cropName.
// Local harvest history wins over the curated per-acre table.
func (s *ForecastService) Forecast(ctx context.Context, cropName string, area decimal.Decimal) (*Forecast, error) {
	cropName = strings.TrimSpace(cropName)
	if cropName == "" {
		return nil, ErrCropNameRequired
	}
	if !area.IsPositive() {
		return nil, ErrInvalidArea
	}

	result := &Forecast{CropName: cropName, Area: area}

	agg, ok, err := s.finance.HistoricalAggregate(ctx, cropName)
	if err != nil {
		return nil, err
	}
	if ok {
		figures := scale(agg.Rates(), area)
		figures.CycleCount = agg.CycleCount
		figures.DataSource = SourceHistorical
		result.Found = true
		result.Figures = figures
		return result, nil
	}

	if est, ok := s.catalog.Estimate(cropName); ok {
		figures := scale(Rates{
			ExpensePerAcre: est.Expense,
			IncomePerAcre:  est.Income,
			ProfitPerAcre:  est.Income.Sub(est.Expense),
		}, area)
		figures.DataSource = SourceEstimated
		result.Found = true
		result.Figures = figures
		return result, nil
	}

	result.Message = NoForecastMessage
	return result, nil
}

func scale(r Rates, area decimal.Decimal) *ForecastFigures {
	roi := decimal.Zero
	if !r.ExpensePerAcre.IsZero() {
		roi = r.ProfitPerAcre.Div(r.ExpensePerAcre).Mul(hundred)
	}
	return &ForecastFigures{
		AvgExpensePerAcre: r.ExpensePerAcre,
		AvgIncomePerAcre:  r.IncomePerAcre,
		AvgProfitPerAcre:  r.ProfitPerAcre,
		EstimatedExpense:  r.ExpensePerAcre.Mul(area),
		EstimatedIncome:   r.IncomePerAcre.Mul(area),
		EstimatedProfit:   r.ProfitPerAcre.Mul(area),
		ROIPercentage:     roi,
	}
}
