package importer

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoRecords(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	farmer := DemoFarmer{Name: "Test", Phone: "demo1", Land: decimal.NewFromInt(10), Years: 2}

	records := DemoRecords(rand.New(rand.NewPCG(1, 2)), farmer, now)
	require.Len(t, records, 8)

	for i, rec := range records {
		assert.Equal(t, now.AddDate(0, 0, -30*3*i).Format("2006-01-02"), rec.StartDate)
		assert.True(t, rec.AreaUsed.GreaterThanOrEqual(decimal.NewFromInt(2)), rec.AreaUsed)
		assert.True(t, rec.AreaUsed.LessThanOrEqual(decimal.NewFromInt(5)), rec.AreaUsed)
		assert.GreaterOrEqual(t, len(rec.Expenses), 3)
		assert.LessOrEqual(t, len(rec.Expenses), 8)

		if i >= 2 {
			require.NotNil(t, rec.Harvest, "only recent cycles may stay active")
		}
		if rec.Harvest != nil {
			var total decimal.Decimal
			for _, e := range rec.Expenses {
				total = total.Add(e.Cost)
			}
			assert.True(t, rec.Harvest.SellingPrice.GreaterThan(total), "demo seasons are profitable")
		}

		_, err := rec.toInput()
		assert.NoError(t, err)
	}
}

func TestDemoRecords_Deterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	farmer := DemoFarmers[0]

	a := DemoRecords(rand.New(rand.NewPCG(7, 7)), farmer, now)
	b := DemoRecords(rand.New(rand.NewPCG(7, 7)), farmer, now)
	assert.Equal(t, a, b)
}

func TestDemoRecords_SmallFarmUsesMinimumArea(t *testing.T) {
	farmer := DemoFarmer{Land: decimal.NewFromInt(3), Years: 1}

	for _, rec := range DemoRecords(rand.New(rand.NewPCG(3, 4)), farmer, time.Now()) {
		assert.Equal(t, "2", rec.AreaUsed.String())
	}
}
