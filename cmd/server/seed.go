package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/h4ks-com/agri-ledger/internal/importer"
	"github.com/h4ks-com/agri-ledger/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const demoTokenTTL = 30 * 24 * time.Hour

var seedValue uint64

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create demo farmers with crop history",
	Long: `Create eight demo farmers with one to five years of crop cycles,
expenses and harvests. Farmers that already exist are left untouched, so
the command can be re-run safely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

func init() {
	seedCmd.Flags().Uint64Var(&seedValue, "seed", 0, "Random seed (0 picks one from the clock)")
}

func runSeed(cmd *cobra.Command) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if seedValue == 0 {
		seedValue = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seedValue, seedValue))
	imp := importer.New(a.crops, a.log)
	now := time.Now().UTC()

	out := cmd.OutOrStdout()
	for _, demo := range importer.DemoFarmers {
		farmer, err := a.farmers.Register(ctx, services.RegisterFarmerInput{
			RegistrationKey: demo.Phone,
			Name:            demo.Name,
			TotalLandArea:   demo.Land,
		})
		if errors.Is(err, services.ErrFarmerExists) {
			a.log.Info("Demo farmer already exists", zap.String("phone", demo.Phone))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", demo.Name, err)
		}

		res, err := imp.Run(ctx, farmer.FarmerCode, importer.DemoRecords(rng, demo, now), false)
		if err != nil {
			return err
		}

		token, err := a.tokens.GenerateToken(ctx, farmer.FarmerCode, demoTokenTTL)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s (%s): %d cycles\n  token: %s\n", demo.Name, farmer.FarmerCode, res.Imported, token)
	}

	return nil
}
