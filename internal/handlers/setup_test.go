package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/agri-ledger/internal/catalog"
	"github.com/h4ks-com/agri-ledger/internal/database"
	"github.com/h4ks-com/agri-ledger/internal/middleware"
	"github.com/h4ks-com/agri-ledger/internal/repository"
	"github.com/h4ks-com/agri-ledger/internal/schemes"
	"github.com/h4ks-com/agri-ledger/internal/services"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAdmin = "FMR-ADMN"

type apiEnv struct {
	router *gin.Engine
}

func setupAPI(t *testing.T, testMode bool) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, zap.NewNop()))

	cat, err := catalog.Default()
	require.NoError(t, err)

	log := zap.NewNop()
	farmerRepo := repository.NewFarmerRepository(db)
	cropRepo := repository.NewCropRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	yieldRepo := repository.NewYieldRepository(db)
	schemeRepo := repository.NewSchemeRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	allocator := services.NewLandAllocator(cropRepo)
	schemeService := services.NewSchemeService(schemeRepo, farmerRepo, schemes.Noop{}, time.Second, log)
	t.Cleanup(schemeService.Wait)
	farmerService := services.NewFarmerService(farmerRepo, cropRepo, expenseRepo, schemeRepo, allocator, db, log)
	cropService := services.NewCropService(farmerRepo, cropRepo, expenseRepo, yieldRepo, allocator, schemeService, db, log, false)
	finance := services.NewFinanceService(cropRepo)
	tokenService := services.NewTokenService(tokenRepo, farmerRepo, "test-secret")

	router := NewRouter(Handlers{
		Farmers:  NewFarmerHandler(farmerService, tokenService),
		Crops:    NewCropHandler(cropService),
		Forecast: NewForecastHandler(services.NewForecastService(finance, cat)),
		Market:   NewMarketHandler(services.NewPriceService(nil, cat, log)),
		Reports:  NewReportHandler(services.NewReportService(farmerRepo, cropRepo, expenseRepo, finance)),
		Schemes:  NewSchemeHandler(schemeService),
		Tokens:   NewTokenHandler(tokenService),
		Admin:    NewAdminHandler(farmerRepo, tokenService),
	},
		middleware.NewAuthMiddleware(tokenService, testMode),
		middleware.NewAdminMiddleware([]string{testAdmin}),
		log,
	)

	return &apiEnv{router: router}
}

type request struct {
	method string
	path   string
	body   any
	farmer string
	bearer string
}

func (e *apiEnv) do(t *testing.T, r request) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if r.body != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(r.body))
	}

	req := httptest.NewRequest(r.method, r.path, &body)
	req.Header.Set("Content-Type", "application/json")
	if r.farmer != "" {
		req.Header.Set(middleware.TestFarmerHeader, r.farmer)
	}
	if r.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+r.bearer)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// register creates a farmer through the API and returns its code and token.
func (e *apiEnv) register(t *testing.T, phone, land string) (string, string) {
	t.Helper()
	w := e.do(t, request{
		method: http.MethodPost,
		path:   "/api/v1/farmers",
		body:   map[string]any{"phone": phone, "name": "Test Farmer", "total_land_area": land, "state": "Punjab", "district": "Ludhiana"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[RegisterFarmerResponse](t, w)
	return resp.Farmer.FarmerCode, resp.Token
}

// startCycle creates a cycle and returns its ID.
func (e *apiEnv) startCycle(t *testing.T, farmer, crop, area string) uint {
	t.Helper()
	w := e.do(t, request{
		method: http.MethodPost,
		path:   "/api/v1/crops",
		farmer: farmer,
		body:   map[string]any{"crop_name": crop, "area_used": area, "start_date": "2025-06-01"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[CycleResponse](t, w).ID
}
