package importer

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// DemoFarmer describes one seeded account.
type DemoFarmer struct {
	Name  string
	Phone string
	Land  decimal.Decimal
	Years float64
}

var DemoFarmers = []DemoFarmer{
	{"Ram Singh", "demo9876543210", decimal.RequireFromString("25.5"), 5},
	{"Shyam Kumar", "demo9876543211", decimal.RequireFromString("15"), 3},
	{"Lakshmi Devi", "demo9876543212", decimal.RequireFromString("10.5"), 2},
	{"Ganesh Patil", "demo9876543213", decimal.RequireFromString("30"), 4},
	{"Sunita Sharma", "demo9876543214", decimal.RequireFromString("8"), 1},
	{"Rajesh Yadav", "demo9876543215", decimal.RequireFromString("20"), 3.5},
	{"Priya Reddy", "demo9876543216", decimal.RequireFromString("12.5"), 1.5},
	{"Vijay Verma", "demo9876543217", decimal.RequireFromString("18"), 2.5},
}

var demoCrops = []string{"Wheat", "Rice", "Maize", "Cotton", "Sugarcane", "Potato", "Tomato", "Onion"}

var demoExpenses = []struct {
	name     string
	min, max float64
}{
	{"Seeds", 500, 5000},
	{"Fertilizer", 1000, 8000},
	{"Pesticide", 800, 4000},
	{"Labor", 2000, 15000},
	{"Irrigation", 1500, 6000},
	{"Equipment Rental", 3000, 10000},
}

// DemoRecords generates one cycle every three months of the farmer's history,
// newest first. Cycles started in the last six months may still be ACTIVE.
func DemoRecords(rng *rand.Rand, farmer DemoFarmer, now time.Time) []Record {
	months := int(farmer.Years * 12)
	maxArea := min(8.0, farmer.Land.InexactFloat64()/2)

	var records []Record
	for offset := 0; offset < months; offset += 3 {
		start := now.AddDate(0, 0, -30*offset)
		area := 2.0
		if maxArea > area {
			area = 2.0 + rng.Float64()*(maxArea-2.0)
		}

		rec := Record{
			CropName:  demoCrops[rng.IntN(len(demoCrops))],
			AreaUsed:  decimal.NewFromFloat(area).Round(2),
			StartDate: start.Format("2006-01-02"),
		}

		total := decimal.Zero
		for range 3 + rng.IntN(6) {
			kind := demoExpenses[rng.IntN(len(demoExpenses))]
			cost := decimal.NewFromFloat(kind.min + rng.Float64()*(kind.max-kind.min)).Round(2)
			rec.Expenses = append(rec.Expenses, ExpenseRecord{
				ItemName: kind.name,
				Cost:     cost,
				Date:     start.AddDate(0, 0, rng.IntN(61)).Format("2006-01-02"),
			})
			total = total.Add(cost)
		}

		active := offset < 6 && rng.Float64() < 0.3
		if !active {
			multiplier := decimal.NewFromFloat(1.3 + rng.Float64()*1.5)
			rec.Harvest = &HarvestRecord{
				QuantityProduced: decimal.NewFromFloat(area * (100 + rng.Float64()*400)).Round(2),
				SellingPrice:     total.Mul(multiplier).Round(2),
				DateSold:         start.AddDate(0, 0, 90+rng.IntN(31)).Format("2006-01-02"),
			}
		}

		records = append(records, rec)
	}
	return records
}
