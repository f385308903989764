package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/agri-ledger/internal/handlers"
	"github.com/h4ks-com/agri-ledger/internal/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.cfg.JWT.Secret == "" && !a.cfg.TestMode {
		return errors.New("JWT_SECRET is required outside test mode")
	}

	gin.SetMode(a.cfg.GinMode)

	router := handlers.NewRouter(handlers.Handlers{
		Farmers:  handlers.NewFarmerHandler(a.farmers, a.tokens),
		Crops:    handlers.NewCropHandler(a.crops),
		Forecast: handlers.NewForecastHandler(a.forecasts),
		Market:   handlers.NewMarketHandler(a.prices),
		Reports:  handlers.NewReportHandler(a.reports),
		Schemes:  handlers.NewSchemeHandler(a.schemes),
		Tokens:   handlers.NewTokenHandler(a.tokens),
		Admin:    handlers.NewAdminHandler(a.farmerRepo, a.tokens),
	},
		middleware.NewAuthMiddleware(a.tokens, a.cfg.TestMode),
		middleware.NewAdminMiddleware(a.cfg.AdminFarmers),
		a.log,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.cfg.Port),
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		a.log.Info("Starting agriledger server", zap.String("addr", server.Addr))
		if a.cfg.TestMode {
			a.log.Warn("TEST MODE ENABLED - authentication bypassed")
		}
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	a.log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
