package services

import (
	"context"
	"time"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	reportCycleLimit   = 10
	reportExpenseLimit = 10
)

// FinancialSummary is everything a printable farmer statement needs.
type FinancialSummary struct {
	Farmer          *models.Farmer
	RecentCycles    []models.CropCycle
	RecentExpenses  []models.Expense
	TotalIncome     decimal.Decimal
	TotalExpense    decimal.Decimal
	NetProfit       decimal.Decimal
	CropCount       int
	ActiveCropCount int
	CreditScore     int
	ReportDate      time.Time
}

type ReportService struct {
	farmerRepo  *repository.FarmerRepository
	cropRepo    *repository.CropRepository
	expenseRepo *repository.ExpenseRepository
	finance     *FinanceService
}

func NewReportService(
	farmerRepo *repository.FarmerRepository,
	cropRepo *repository.CropRepository,
	expenseRepo *repository.ExpenseRepository,
	finance *FinanceService,
) *ReportService {
	return &ReportService{
		farmerRepo:  farmerRepo,
		cropRepo:    cropRepo,
		expenseRepo: expenseRepo,
		finance:     finance,
	}
}

func (s *ReportService) FinancialSummary(ctx context.Context, farmerCode string) (*FinancialSummary, error) {
	farmer, err := s.farmerRepo.FindByCode(ctx, farmerCode)
	if err != nil {
		return nil, err
	}
	if farmer == nil {
		return nil, ErrFarmerNotFound
	}

	summary := &FinancialSummary{Farmer: farmer, ReportDate: time.Now()}
	var totals FarmerTotals

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cycles, err := s.cropRepo.RecentByFarmer(gctx, farmer.ID, reportCycleLimit)
		summary.RecentCycles = cycles
		return err
	})
	g.Go(func() error {
		expenses, err := s.expenseRepo.RecentByFarmer(gctx, farmer.ID, reportExpenseLimit)
		summary.RecentExpenses = expenses
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.finance.FarmerTotals(gctx, farmer.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary.TotalIncome = totals.TotalIncome
	summary.TotalExpense = totals.TotalExpense
	summary.NetProfit = totals.NetProfit()
	summary.CropCount = totals.CropCount
	summary.ActiveCropCount = totals.ActiveCropCount
	summary.CreditScore = CreditScore(totals.CropCount, totals.ActiveCropCount, summary.NetProfit)

	return summary, nil
}
