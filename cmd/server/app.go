package main

import (
	"context"
	"fmt"

	"github.com/h4ks-com/agri-ledger/internal/catalog"
	"github.com/h4ks-com/agri-ledger/internal/config"
	"github.com/h4ks-com/agri-ledger/internal/database"
	"github.com/h4ks-com/agri-ledger/internal/logging"
	"github.com/h4ks-com/agri-ledger/internal/market"
	"github.com/h4ks-com/agri-ledger/internal/repository"
	"github.com/h4ks-com/agri-ledger/internal/schemes"
	"github.com/h4ks-com/agri-ledger/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds everything the subcommands share.
type app struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB

	farmerRepo *repository.FarmerRepository

	tokens    *services.TokenService
	farmers   *services.FarmerService
	crops     *services.CropService
	schemes   *services.SchemeService
	forecasts *services.ForecastService
	prices    *services.PriceService
	reports   *services.ReportService
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(db, log); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load crop catalog: %w", err)
	}

	var recommender schemes.Recommender = schemes.Noop{}
	if cfg.Gemini.APIKey != "" {
		recommender, err = schemes.NewGeminiRecommender(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, err
		}
	} else {
		log.Info("GEMINI_API_KEY not set, scheme recommendations disabled")
	}

	var live market.Source
	if cfg.Market.APIKey != "" {
		live = market.NewDataGovSource(cfg.Market.URL, cfg.Market.APIKey, cfg.Market.Timeout)
	} else {
		log.Info("MARKET_API_KEY not set, using average market rates only")
	}

	farmerRepo := repository.NewFarmerRepository(db)
	cropRepo := repository.NewCropRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	yieldRepo := repository.NewYieldRepository(db)
	schemeRepo := repository.NewSchemeRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	allocator := services.NewLandAllocator(cropRepo)
	schemeService := services.NewSchemeService(schemeRepo, farmerRepo, recommender, cfg.Gemini.Timeout, log)
	finance := services.NewFinanceService(cropRepo)
	cropService := services.NewCropService(farmerRepo, cropRepo, expenseRepo, yieldRepo, allocator, schemeService, db, log,
		cfg.Ledger.AllowPostHarvestExpenses)

	return &app{
		cfg:        cfg,
		log:        log,
		db:         db,
		farmerRepo: farmerRepo,
		tokens:     services.NewTokenService(tokenRepo, farmerRepo, cfg.JWT.Secret),
		farmers:    services.NewFarmerService(farmerRepo, cropRepo, expenseRepo, schemeRepo, allocator, db, log),
		crops:      cropService,
		schemes:    schemeService,
		forecasts:  services.NewForecastService(finance, cat),
		prices:     services.NewPriceService(live, cat, log),
		reports:    services.NewReportService(farmerRepo, cropRepo, expenseRepo, finance),
	}, nil
}

// Close waits for background scheme fetches before releasing the database.
func (a *app) Close() {
	a.schemes.Wait()
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
	a.log.Sync()
}
