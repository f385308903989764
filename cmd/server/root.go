package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agriledger",
	Short: "Agri Ledger - farm record keeping and credit scoring",
	Long: `Agri Ledger keeps crop, expense and harvest records for farmers.

It provides a REST API for land allocation, profitability forecasts, market
prices and a creditworthiness score built from a farmer's own history.

Run 'agriledger serve' to start the server, 'agriledger import' to load
crop cycles from a file, or 'agriledger seed' to create demo data.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, importCmd, seedCmd)
}
