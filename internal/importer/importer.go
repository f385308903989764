// Package importer loads historical crop cycles from spreadsheets or JSON and
// writes them through the crop service, one transaction per record.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/services"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported import format")
	ErrInvalidDate       = errors.New("invalid date")
)

type ExpenseRecord struct {
	ItemName   string          `json:"item_name"`
	Cost       decimal.Decimal `json:"cost"`
	Date       string          `json:"date"`
	ReceiptRef string          `json:"receipt_ref"`
}

type HarvestRecord struct {
	QuantityProduced decimal.Decimal `json:"quantity_produced"`
	SellingPrice     decimal.Decimal `json:"selling_price"`
	DateSold         string          `json:"date_sold"`
	ReceiptRef       string          `json:"receipt_ref"`
}

// Record is one crop cycle as it appears in an import file. Ref only links
// spreadsheet expense rows to their cycle.
type Record struct {
	Ref       string          `json:"ref,omitempty"`
	CropName  string          `json:"crop_name"`
	AreaUsed  decimal.Decimal `json:"area_used"`
	StartDate string          `json:"start_date"`
	Notes     string          `json:"notes"`
	Expenses  []ExpenseRecord `json:"expenses"`
	Harvest   *HarvestRecord  `json:"harvest"`
}

// CycleImporter is the write side the importer needs.
type CycleImporter interface {
	ImportCycle(ctx context.Context, farmerCode string, input services.ImportCycleInput) (*models.CropCycle, error)
}

type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

type Result struct {
	Imported int
	Skipped  int
	Errors   []RowError
}

type Importer struct {
	crops CycleImporter
	log   *zap.Logger
}

func New(crops CycleImporter, log *zap.Logger) *Importer {
	return &Importer{crops: crops, log: log}
}

// Run imports records for farmerCode. In strict mode the first failing record
// stops the run; records already written stay written.
func (im *Importer) Run(ctx context.Context, farmerCode string, records []Record, strict bool) (Result, error) {
	var res Result

	for i, rec := range records {
		row := i + 1

		input, err := rec.toInput()
		if err == nil {
			_, err = im.crops.ImportCycle(ctx, farmerCode, input)
		}
		if err != nil {
			rowErr := RowError{Row: row, Err: err}
			if strict || errors.Is(err, services.ErrFarmerNotFound) {
				return res, rowErr
			}
			im.log.Warn("Skipped import record",
				zap.Int("record", row),
				zap.String("crop", rec.CropName),
				zap.Error(err))
			res.Skipped++
			res.Errors = append(res.Errors, rowErr)
			continue
		}
		res.Imported++
	}

	im.log.Info("Import complete",
		zap.String("farmer", farmerCode),
		zap.Int("imported", res.Imported),
		zap.Int("skipped", res.Skipped))

	return res, nil
}

// ReadFile picks the decoder from the file extension.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON(f)
	case ".xlsx", ".xlsm":
		return ReadXLSX(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func ReadJSON(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return records, nil
}

func (rec Record) toInput() (services.ImportCycleInput, error) {
	start, err := parseDate(rec.StartDate)
	if err != nil {
		return services.ImportCycleInput{}, fmt.Errorf("start date: %w", err)
	}

	input := services.ImportCycleInput{
		Cycle: services.StartCycleInput{
			CropName:  rec.CropName,
			AreaUsed:  rec.AreaUsed,
			StartDate: start,
			Notes:     rec.Notes,
		},
	}

	for _, e := range rec.Expenses {
		date, err := parseDate(e.Date)
		if err != nil {
			return services.ImportCycleInput{}, fmt.Errorf("expense %q date: %w", e.ItemName, err)
		}
		input.Expenses = append(input.Expenses, services.ExpenseInput{
			ItemName:   e.ItemName,
			Cost:       e.Cost,
			Date:       date,
			ReceiptRef: e.ReceiptRef,
		})
	}

	if rec.Harvest != nil {
		sold, err := parseDate(rec.Harvest.DateSold)
		if err != nil {
			return services.ImportCycleInput{}, fmt.Errorf("date sold: %w", err)
		}
		input.Harvest = &services.HarvestInput{
			QuantityProduced: rec.Harvest.QuantityProduced,
			SellingPrice:     rec.Harvest.SellingPrice,
			DateSold:         sold,
			ReceiptRef:       rec.Harvest.ReceiptRef,
		}
	}

	return input, nil
}

var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006", "2006/01/02", time.RFC3339}

// parseDate accepts ISO and day-first dates plus raw spreadsheet serial
// numbers. Empty means "let the service pick today".
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return excelSerialToTime(serial)
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
