package importer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type recordingImporter struct {
	inputs []services.ImportCycleInput
	failOn map[string]error
}

func (r *recordingImporter) ImportCycle(_ context.Context, _ string, input services.ImportCycleInput) (*models.CropCycle, error) {
	if err, ok := r.failOn[input.Cycle.CropName]; ok {
		return nil, err
	}
	r.inputs = append(r.inputs, input)
	return &models.CropCycle{CropName: input.Cycle.CropName}, nil
}

func buildWorkbook(t *testing.T, cycles, expenses [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", CyclesSheet))
	for i, row := range cycles {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow(CyclesSheet, cellRef, &row))
	}

	if expenses != nil {
		_, err := f.NewSheet(ExpensesSheet)
		require.NoError(t, err)
		for i, row := range expenses {
			cellRef, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			row := row
			require.NoError(t, f.SetSheetRow(ExpensesSheet, cellRef, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadXLSX(t *testing.T) {
	buf := buildWorkbook(t,
		[][]interface{}{
			{"Ref", "Crop Name", "Area Used", "Start Date", "Notes", "Quantity Produced", "Selling Price", "Date Sold"},
			{"c1", "Wheat", 2, "2024-11-01", "rabi", 40, 10000, "2025-04-10"},
			{"c2", "Rice", "1.5", "2025-06-15"},
			{},
		},
		[][]interface{}{
			{"ref", "item_name", "cost", "date"},
			{"c1", "Seeds", 1500, "2024-11-02"},
			{"c1", "Urea", "2,500", "2024-12-01"},
			{"c2", "Labour", 800, "2025-06-20"},
		},
	)

	records, err := ReadXLSX(buf)
	require.NoError(t, err)
	require.Len(t, records, 2)

	wheat := records[0]
	assert.Equal(t, "Wheat", wheat.CropName)
	assert.True(t, wheat.AreaUsed.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, "rabi", wheat.Notes)
	require.NotNil(t, wheat.Harvest)
	assert.True(t, wheat.Harvest.SellingPrice.Equal(decimal.NewFromInt(10000)))
	require.Len(t, wheat.Expenses, 2)
	assert.True(t, wheat.Expenses[1].Cost.Equal(decimal.NewFromInt(2500)))

	rice := records[1]
	assert.Nil(t, rice.Harvest)
	assert.True(t, rice.AreaUsed.Equal(decimal.RequireFromString("1.5")))
	require.Len(t, rice.Expenses, 1)
}

func TestReadXLSX_UnknownRef(t *testing.T) {
	buf := buildWorkbook(t,
		[][]interface{}{{"ref", "crop_name", "area_used"}, {"c1", "Wheat", 1}},
		[][]interface{}{{"ref", "item_name", "cost"}, {"zz", "Seeds", 10}},
	)

	_, err := ReadXLSX(buf)
	assert.ErrorContains(t, err, "unknown cycle ref")
}

func TestReadXLSX_MissingCropColumn(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{{"area_used"}, {1}}, nil)

	_, err := ReadXLSX(buf)
	assert.ErrorContains(t, err, "crop_name")
}

func TestWriteTemplate_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))

	records, err := ReadXLSX(&buf)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadJSON(t *testing.T) {
	payload := `[
	  {"crop_name": "Wheat", "area_used": "2", "start_date": "2024-11-01",
	   "expenses": [{"item_name": "Seeds", "cost": 1500, "date": "02-11-2024"}],
	   "harvest": {"quantity_produced": 40, "selling_price": "10000.50", "date_sold": "2025-04-10"}},
	  {"crop_name": "Rice", "area_used": 1.25}
	]`

	records, err := ReadJSON(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].Harvest.SellingPrice.Equal(decimal.RequireFromString("10000.50")))
	assert.True(t, records[1].AreaUsed.Equal(decimal.RequireFromString("1.25")))
}

func TestReadFile_Dispatch(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "cycles.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"crop_name":"Wheat","area_used":1}]`), 0o600))
	records, err := ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	csvPath := filepath.Join(dir, "cycles.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("crop_name\nWheat\n"), 0o600))
	_, err = ReadFile(csvPath)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"2024-11-02", "02-11-2024", "02/11/2024", "2024/11/02", "45598"} {
		got, err := parseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s parsed as %s", in, got)
	}

	empty, err := parseDate("  ")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = parseDate("next tuesday")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestImporter_RunSkipsFailedRecords(t *testing.T) {
	land := &services.InsufficientLandError{FreeLand: decimal.NewFromInt(1)}
	crops := &recordingImporter{failOn: map[string]error{"Rice": land}}
	im := New(crops, zap.NewNop())

	records := []Record{
		{CropName: "Wheat", AreaUsed: decimal.NewFromInt(2), Harvest: &HarvestRecord{SellingPrice: decimal.NewFromInt(9)}},
		{CropName: "Rice", AreaUsed: decimal.NewFromInt(5)},
		{CropName: "Maize", AreaUsed: decimal.NewFromInt(1), StartDate: "soon"},
		{CropName: "Jowar", AreaUsed: decimal.NewFromInt(1)},
	}

	res, err := im.Run(context.Background(), "FMR-AB12", records, false)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, 2, res.Errors[0].Row)
	assert.ErrorIs(t, res.Errors[0], services.ErrInsufficientLand)
	assert.ErrorIs(t, res.Errors[1], ErrInvalidDate)

	require.Len(t, crops.inputs, 2)
	assert.NotNil(t, crops.inputs[0].Harvest)
}

func TestImporter_StrictStopsAtFirstFailure(t *testing.T) {
	crops := &recordingImporter{failOn: map[string]error{"Rice": services.ErrInvalidArea}}
	im := New(crops, zap.NewNop())

	records := []Record{{CropName: "Wheat"}, {CropName: "Rice"}, {CropName: "Maize"}}

	res, err := im.Run(context.Background(), "FMR-AB12", records, true)
	require.Error(t, err)

	var rowErr RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 2, rowErr.Row)
	assert.Equal(t, 1, res.Imported)
	assert.Len(t, crops.inputs, 1)
}

func TestImporter_UnknownFarmerAborts(t *testing.T) {
	crops := &recordingImporter{failOn: map[string]error{"Wheat": services.ErrFarmerNotFound}}
	im := New(crops, zap.NewNop())

	_, err := im.Run(context.Background(), "FMR-NONE", []Record{{CropName: "Wheat"}, {CropName: "Rice"}}, false)
	assert.ErrorIs(t, err, services.ErrFarmerNotFound)
	assert.Empty(t, crops.inputs)
}
