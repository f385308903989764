package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/h4ks-com/agri-ledger/internal/importer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importFile   string
	importFarmer string
	templateFile string
	strictMode   bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import crop cycles from a spreadsheet or JSON file",
	Long: `Import historical or ongoing crop cycles for one farmer.

Accepted formats are .xlsx workbooks with "Cycles" and "Expenses" sheets
(see --template) and JSON files shaped like:
[
  {"crop_name": "Wheat", "area_used": "2.5", "start_date": "2024-11-01",
   "expenses": [{"item_name": "Seeds", "cost": "1800", "date": "2024-11-02"}],
   "harvest": {"quantity_produced": "40", "selling_price": "52000", "date_sold": "2025-04-10"}}
]

Cycles with a harvest are stored as HARVESTED and take no land. Cycles
without one are ACTIVE and must fit the farmer's free land; records that do
not fit are skipped. Use --strict to stop at the first failing record.`,
	Example: `  agriledger import -f cycles.xlsx --farmer FMR-1A2B
  agriledger import -f cycles.json --farmer FMR-1A2B --strict
  agriledger import --template cycles.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if templateFile != "" {
			return writeTemplate(templateFile)
		}
		return runImport(cmd)
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "File to import (.xlsx or .json)")
	importCmd.Flags().StringVar(&importFarmer, "farmer", "", "Farmer code that owns the imported cycles")
	importCmd.Flags().StringVar(&templateFile, "template", "", "Write an empty import workbook to this path and exit")
	importCmd.Flags().BoolVar(&strictMode, "strict", false, "Fail on the first record that cannot be imported")
}

func runImport(cmd *cobra.Command) error {
	if importFile == "" || importFarmer == "" {
		return errors.New("--file and --farmer are required")
	}

	records, err := importer.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", importFile, err)
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	a.log.Info("Starting import",
		zap.String("file", importFile),
		zap.String("farmer", importFarmer),
		zap.Int("records", len(records)))

	res, err := importer.New(a.crops, a.log).Run(cmd.Context(), importFarmer, records, strictMode)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cycles, skipped %d\n", res.Imported, res.Skipped)
	for _, rowErr := range res.Errors {
		fmt.Fprintf(cmd.OutOrStdout(), "  %v\n", rowErr)
	}
	return nil
}

func writeTemplate(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := importer.WriteTemplate(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write template: %w", err)
	}
	return f.Close()
}
