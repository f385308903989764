package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/h4ks-com/agri-ledger/internal/catalog"
	"github.com/h4ks-com/agri-ledger/internal/database"
	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/repository"
	"github.com/h4ks-com/agri-ledger/internal/schemes"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	farmerRepo  *repository.FarmerRepository
	cropRepo    *repository.CropRepository
	expenseRepo *repository.ExpenseRepository
	schemeRepo  *repository.SchemeRepository
	tokenRepo   *repository.TokenRepository
	allocator   *LandAllocator
	farmers     *FarmerService
	crops       *CropService
	schemes     *SchemeService
	finance     *FinanceService
	forecasts   *ForecastService
	reports     *ReportService
	recommender *stubRecommender
}

type envOptions struct {
	dsn                      string
	allowPostHarvestExpenses bool
	recommender              *stubRecommender
}

func withPostHarvestExpenses() func(*envOptions) {
	return func(o *envOptions) { o.allowPostHarvestExpenses = true }
}

func withRecommender(r *stubRecommender) func(*envOptions) {
	return func(o *envOptions) { o.recommender = r }
}

func withDSN(dsn string) func(*envOptions) {
	return func(o *envOptions) { o.dsn = dsn }
}

func setupTestEnv(t *testing.T, opts ...func(*envOptions)) *testEnv {
	t.Helper()

	o := envOptions{dsn: ":memory:", recommender: &stubRecommender{}}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := database.Connect(o.dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, zap.NewNop()))

	cat, err := catalog.Default()
	require.NoError(t, err)

	log := zap.NewNop()
	env := &testEnv{
		db:          db,
		farmerRepo:  repository.NewFarmerRepository(db),
		cropRepo:    repository.NewCropRepository(db),
		expenseRepo: repository.NewExpenseRepository(db),
		schemeRepo:  repository.NewSchemeRepository(db),
		tokenRepo:   repository.NewTokenRepository(db),
		recommender: o.recommender,
	}
	yieldRepo := repository.NewYieldRepository(db)

	env.allocator = NewLandAllocator(env.cropRepo)
	env.schemes = NewSchemeService(env.schemeRepo, env.farmerRepo, o.recommender, time.Second, log)
	env.farmers = NewFarmerService(env.farmerRepo, env.cropRepo, env.expenseRepo, env.schemeRepo, env.allocator, db, log)
	env.crops = NewCropService(env.farmerRepo, env.cropRepo, env.expenseRepo, yieldRepo, env.allocator, env.schemes, db, log, o.allowPostHarvestExpenses)
	env.finance = NewFinanceService(env.cropRepo)
	env.forecasts = NewForecastService(env.finance, cat)
	env.reports = NewReportService(env.farmerRepo, env.cropRepo, env.expenseRepo, env.finance)

	t.Cleanup(env.schemes.Wait)

	return env
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var registrationSeq atomic.Int64

func (e *testEnv) registerFarmer(t *testing.T, land string) *models.Farmer {
	t.Helper()
	farmer, err := e.farmers.Register(context.Background(), RegisterFarmerInput{
		RegistrationKey: fmt.Sprintf("98765%05d", registrationSeq.Add(1)),
		Name:            "Test Farmer",
		TotalLandArea:   dec(land),
		State:           "Punjab",
		District:        "Ludhiana",
	})
	require.NoError(t, err)
	return farmer
}

func (e *testEnv) startCycle(t *testing.T, farmer *models.Farmer, crop, area string) *models.CropCycle {
	t.Helper()
	cycle, err := e.crops.StartCycle(context.Background(), farmer.FarmerCode, StartCycleInput{
		CropName: crop,
		AreaUsed: dec(area),
	})
	require.NoError(t, err)
	return cycle
}

func (e *testEnv) freeLand(t *testing.T, farmer *models.Farmer) decimal.Decimal {
	t.Helper()
	free, err := e.farmers.FreeLand(context.Background(), farmer.FarmerCode)
	require.NoError(t, err)
	return free
}

// stubRecommender returns recs (or err) and counts calls. A non-nil block
// channel makes it wait for the channel or the context.
type stubRecommender struct {
	mu          sync.Mutex
	recs        []schemes.Recommendation
	err         error
	shouldPanic bool
	block       chan struct{}
	calls       int
}

func (s *stubRecommender) Recommend(ctx context.Context, _ schemes.FarmerSnapshot, _ schemes.CycleSnapshot) ([]schemes.Recommendation, error) {
	s.mu.Lock()
	s.calls++
	recs, err, panics, block := s.recs, s.err, s.shouldPanic, s.block
	s.mu.Unlock()

	if panics {
		panic("recommender exploded")
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return recs, err
}

func (s *stubRecommender) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var errRecommenderDown = errors.New("recommender unavailable")
