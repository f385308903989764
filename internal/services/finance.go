package services

import (
	"context"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/repository"
	"github.com/shopspring/decimal"
)

type CycleTotals struct {
	ExpenseTotal decimal.Decimal
	IncomeTotal  decimal.Decimal
}

func (t CycleTotals) Profit() decimal.Decimal {
	return t.IncomeTotal.Sub(t.ExpenseTotal)
}

// TotalsForCycle needs the cycle's Expenses and Yield loaded.
func TotalsForCycle(cycle *models.CropCycle) CycleTotals {
	totals := CycleTotals{ExpenseTotal: decimal.Zero, IncomeTotal: decimal.Zero}
	for _, e := range cycle.Expenses {
		totals.ExpenseTotal = totals.ExpenseTotal.Add(e.Cost)
	}
	if cycle.Yield != nil {
		totals.IncomeTotal = cycle.Yield.SellingPrice
	}
	return totals
}

type Aggregate struct {
	TotalExpense    decimal.Decimal
	TotalIncome     decimal.Decimal
	TotalArea       decimal.Decimal
	CycleCount      int
	CyclesWithYield int
}

type Rates struct {
	ExpensePerAcre decimal.Decimal
	IncomePerAcre  decimal.Decimal
	ProfitPerAcre  decimal.Decimal
}

// Rates returns per-acre figures. A zero-area aggregate yields zero rates.
func (a Aggregate) Rates() Rates {
	if !a.TotalArea.IsPositive() {
		return Rates{ExpensePerAcre: decimal.Zero, IncomePerAcre: decimal.Zero, ProfitPerAcre: decimal.Zero}
	}

	expense := a.TotalExpense.Div(a.TotalArea)
	income := decimal.Zero
	if a.CyclesWithYield > 0 {
		income = a.TotalIncome.Div(a.TotalArea)
	}
	return Rates{
		ExpensePerAcre: expense,
		IncomePerAcre:  income,
		ProfitPerAcre:  income.Sub(expense),
	}
}

type FarmerTotals struct {
	TotalIncome     decimal.Decimal
	TotalExpense    decimal.Decimal
	CropCount       int
	ActiveCropCount int
}

func (t FarmerTotals) NetProfit() decimal.Decimal {
	return t.TotalIncome.Sub(t.TotalExpense)
}

// FinanceService aggregates money across cycles. All reads; nothing here
// takes a lock.
type FinanceService struct {
	cropRepo *repository.CropRepository
}

func NewFinanceService(cropRepo *repository.CropRepository) *FinanceService {
	return &FinanceService{cropRepo: cropRepo}
}

func (s *FinanceService) CropHistory(ctx context.Context, cropName string) ([]models.CropCycle, error) {
	return s.cropRepo.HarvestedByCropName(ctx, cropName)
}

// HistoricalAggregate sums every harvested cycle of cropName. ok is false
// when no land was ever recorded for the crop.
func (s *FinanceService) HistoricalAggregate(ctx context.Context, cropName string) (Aggregate, bool, error) {
	cycles, err := s.CropHistory(ctx, cropName)
	if err != nil {
		return Aggregate{}, false, err
	}

	agg := aggregateCycles(cycles)
	return agg, agg.CycleCount > 0 && agg.TotalArea.IsPositive(), nil
}

func (s *FinanceService) FarmerTotals(ctx context.Context, farmerID uint) (FarmerTotals, error) {
	cycles, err := s.cropRepo.ListByFarmer(ctx, farmerID, "")
	if err != nil {
		return FarmerTotals{}, err
	}
	return totalsForFarmer(cycles), nil
}

func aggregateCycles(cycles []models.CropCycle) Aggregate {
	agg := Aggregate{
		TotalExpense: decimal.Zero,
		TotalIncome:  decimal.Zero,
		TotalArea:    decimal.Zero,
	}
	for i := range cycles {
		t := TotalsForCycle(&cycles[i])
		agg.TotalExpense = agg.TotalExpense.Add(t.ExpenseTotal)
		agg.TotalIncome = agg.TotalIncome.Add(t.IncomeTotal)
		agg.TotalArea = agg.TotalArea.Add(cycles[i].AreaUsed)
		agg.CycleCount++
		if cycles[i].Yield != nil {
			agg.CyclesWithYield++
		}
	}
	return agg
}

func totalsForFarmer(cycles []models.CropCycle) FarmerTotals {
	totals := FarmerTotals{TotalIncome: decimal.Zero, TotalExpense: decimal.Zero}
	for i := range cycles {
		t := TotalsForCycle(&cycles[i])
		totals.TotalIncome = totals.TotalIncome.Add(t.IncomeTotal)
		totals.TotalExpense = totals.TotalExpense.Add(t.ExpenseTotal)
		totals.CropCount++
		if cycles[i].IsActive() {
			totals.ActiveCropCount++
		}
	}
	return totals
}
