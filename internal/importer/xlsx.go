package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	CyclesSheet   = "Cycles"
	ExpensesSheet = "Expenses"
)

var (
	cycleColumns   = []string{"ref", "crop_name", "area_used", "start_date", "notes", "quantity_produced", "selling_price", "date_sold", "receipt_ref"}
	expenseColumns = []string{"ref", "item_name", "cost", "date", "receipt_ref"}
)

// ReadXLSX reads a workbook with a Cycles sheet and an optional Expenses
// sheet. Columns are found by header name; expense rows join their cycle on
// ref. A cycle row with a selling price is treated as harvested.
func ReadXLSX(r io.Reader) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	cycleSheet := CyclesSheet
	if idx, err := f.GetSheetIndex(CyclesSheet); err != nil || idx < 0 {
		cycleSheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(cycleSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", cycleSheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := headerIndex(rows[0])
	if _, ok := col["crop_name"]; !ok {
		return nil, fmt.Errorf("sheet %s: missing crop_name column", cycleSheet)
	}

	var records []Record
	byRef := map[string]int{}

	for i, row := range rows[1:] {
		line := i + 2
		if isBlank(row) {
			continue
		}

		rec := Record{
			Ref:       cell(row, col, "ref"),
			CropName:  cell(row, col, "crop_name"),
			StartDate: cell(row, col, "start_date"),
			Notes:     cell(row, col, "notes"),
		}
		if rec.AreaUsed, err = decimalCell(row, col, "area_used"); err != nil {
			return nil, fmt.Errorf("sheet %s row %d: %w", cycleSheet, line, err)
		}

		if price := cell(row, col, "selling_price"); price != "" {
			h := &HarvestRecord{
				DateSold:   cell(row, col, "date_sold"),
				ReceiptRef: cell(row, col, "receipt_ref"),
			}
			if h.SellingPrice, err = decimalCell(row, col, "selling_price"); err != nil {
				return nil, fmt.Errorf("sheet %s row %d: %w", cycleSheet, line, err)
			}
			if h.QuantityProduced, err = decimalCell(row, col, "quantity_produced"); err != nil {
				return nil, fmt.Errorf("sheet %s row %d: %w", cycleSheet, line, err)
			}
			rec.Harvest = h
		}

		if rec.Ref != "" {
			byRef[rec.Ref] = len(records)
		}
		records = append(records, rec)
	}

	if idx, err := f.GetSheetIndex(ExpensesSheet); err == nil && idx >= 0 {
		if err := readExpenses(f, records, byRef); err != nil {
			return nil, err
		}
	}

	return records, nil
}

func readExpenses(f *excelize.File, records []Record, byRef map[string]int) error {
	rows, err := f.GetRows(ExpensesSheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", ExpensesSheet, err)
	}
	if len(rows) == 0 {
		return nil
	}

	col := headerIndex(rows[0])
	for i, row := range rows[1:] {
		line := i + 2
		if isBlank(row) {
			continue
		}

		ref := cell(row, col, "ref")
		idx, ok := byRef[ref]
		if !ok {
			return fmt.Errorf("sheet %s row %d: unknown cycle ref %q", ExpensesSheet, line, ref)
		}

		cost, err := decimalCell(row, col, "cost")
		if err != nil {
			return fmt.Errorf("sheet %s row %d: %w", ExpensesSheet, line, err)
		}
		records[idx].Expenses = append(records[idx].Expenses, ExpenseRecord{
			ItemName:   cell(row, col, "item_name"),
			Cost:       cost,
			Date:       cell(row, col, "date"),
			ReceiptRef: cell(row, col, "receipt_ref"),
		})
	}
	return nil
}

// WriteTemplate writes an empty workbook with the expected sheets and headers.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CyclesSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(ExpensesSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(CyclesSheet, "A1", &cycleColumns); err != nil {
		return err
	}
	if err := f.SetSheetRow(ExpensesSheet, "A1", &expenseColumns); err != nil {
		return err
	}
	return f.Write(w)
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		if key != "" {
			idx[key] = i
		}
	}
	return idx
}

func cell(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func decimalCell(row []string, col map[string]int, name string) (decimal.Decimal, error) {
	v := strings.ReplaceAll(cell(row, col, name), ",", "")
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q", name, v)
	}
	return d, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// excelSerialToTime drops the time of day; import dates are calendar days.
func excelSerialToTime(serial float64) (time.Time, error) {
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
