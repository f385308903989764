package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_FinancialSummary(t *testing.T) {
	env := setupTestEnv(t)
	farmer := env.registerFarmer(t, "10")

	env.recordSeason(t, farmer, "Wheat", "2", []string{"4000"}, "10000")
	env.recordSeason(t, farmer, "Rice", "3", []string{"3000"}, "6000")
	env.recordSeason(t, farmer, "Maize", "4", []string{"1000"}, "")

	summary, err := env.reports.FinancialSummary(context.Background(), farmer.FarmerCode)
	require.NoError(t, err)

	assert.Equal(t, farmer.FarmerCode, summary.Farmer.FarmerCode)
	assert.Len(t, summary.RecentCycles, 3)
	assert.Len(t, summary.RecentExpenses, 3)
	assert.True(t, summary.TotalIncome.Equal(dec("16000")))
	assert.True(t, summary.TotalExpense.Equal(dec("8000")))
	assert.True(t, summary.NetProfit.Equal(dec("8000")))
	assert.Equal(t, 3, summary.CropCount)
	assert.Equal(t, 1, summary.ActiveCropCount)
	assert.Equal(t, 55, summary.CreditScore)
	assert.False(t, summary.ReportDate.IsZero())
}

func TestReportService_LimitsRecentRows(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	farmer := env.registerFarmer(t, "100")

	for i := 0; i < 12; i++ {
		cycle := env.startCycle(t, farmer, "Wheat", "1")
		_, err := env.crops.LogExpense(ctx, farmer.FarmerCode, cycle.ID, ExpenseInput{ItemName: "Seeds", Cost: dec("10")})
		require.NoError(t, err)
	}

	summary, err := env.reports.FinancialSummary(ctx, farmer.FarmerCode)
	require.NoError(t, err)

	assert.Len(t, summary.RecentCycles, 10)
	assert.Len(t, summary.RecentExpenses, 10)
	assert.Equal(t, 12, summary.CropCount)
	assert.Equal(t, 12, summary.ActiveCropCount)
	assert.True(t, summary.TotalExpense.Equal(dec("120")))
	assert.True(t, summary.NetProfit.IsNegative())
	assert.Equal(t, 100, summary.CreditScore)
}

func TestReportService_UnknownFarmer(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.reports.FinancialSummary(context.Background(), "FMR-ZZZZ")
	assert.ErrorIs(t, err, ErrFarmerNotFound)
}
