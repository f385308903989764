package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/schemes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func sampleRecommendations(n int) []schemes.Recommendation {
	out := make([]schemes.Recommendation, n)
	for i := range out {
		out[i] = schemes.Recommendation{
			SchemeName:      fmt.Sprintf("Scheme %d", i+1),
			Description:     "Support for small farmers",
			Benefits:        "Rs 6000 per year",
			ApplicationLink: "https://pmkisan.gov.in",
		}
	}
	return out
}

func TestSchemeService_StoresRecommendationsAfterCropStart(t *testing.T) {
	rec := &stubRecommender{recs: sampleRecommendations(3)}
	env := setupTestEnv(t, withRecommender(rec))
	farmer := env.registerFarmer(t, "10")

	env.startCycle(t, farmer, "Wheat", "2")
	env.schemes.Wait()

	assert.Equal(t, 1, rec.callCount())

	stored, err := env.schemes.ListForFarmer(context.Background(), farmer.FarmerCode)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	for _, s := range stored {
		assert.True(t, s.Active)
		assert.Equal(t, farmer.ID, s.FarmerID)
		assert.Equal(t, "https://pmkisan.gov.in", s.Link)
	}
}

func TestSchemeService_CapsAtFive(t *testing.T) {
	rec := &stubRecommender{recs: sampleRecommendations(9)}
	env := setupTestEnv(t, withRecommender(rec))
	farmer := env.registerFarmer(t, "10")
	cycle := &models.CropCycle{CropName: "Rice", AreaUsed: dec("1")}

	n, err := env.schemes.Recommend(context.Background(), farmer, cycle)
	require.NoError(t, err)
	assert.Equal(t, schemes.MaxRecommendations, n)
}

func TestSchemeService_BlankNameBecomesUnknown(t *testing.T) {
	rec := &stubRecommender{recs: []schemes.Recommendation{{Description: "nameless"}}}
	env := setupTestEnv(t, withRecommender(rec))
	farmer := env.registerFarmer(t, "10")

	_, err := env.schemes.Recommend(context.Background(), farmer, &models.CropCycle{CropName: "Rice"})
	require.NoError(t, err)

	stored, err := env.schemes.ListForFarmer(context.Background(), farmer.FarmerCode)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Unknown Scheme", stored[0].SchemeName)
}

func TestSchemeService_FailuresNeverFailCropStart(t *testing.T) {
	tests := []struct {
		name string
		rec  *stubRecommender
	}{
		{"error", &stubRecommender{err: errRecommenderDown}},
		{"panic", &stubRecommender{shouldPanic: true}},
		{"empty", &stubRecommender{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t, withRecommender(tt.rec))
			farmer := env.registerFarmer(t, "10")

			cycle := env.startCycle(t, farmer, "Wheat", "2")
			env.schemes.Wait()

			assert.Equal(t, 1, tt.rec.callCount())
			assert.True(t, cycle.IsActive())

			stored, err := env.schemes.ListForFarmer(context.Background(), farmer.FarmerCode)
			require.NoError(t, err)
			assert.Empty(t, stored)
		})
	}
}

func TestSchemeService_RecommendRecoversPanic(t *testing.T) {
	env := setupTestEnv(t, withRecommender(&stubRecommender{shouldPanic: true}))
	farmer := env.registerFarmer(t, "10")

	_, err := env.schemes.Recommend(context.Background(), farmer, &models.CropCycle{CropName: "Rice"})
	assert.ErrorContains(t, err, "panicked")
}

func TestSchemeService_SlowRecommenderDoesNotBlockCropStart(t *testing.T) {
	ignore := goleak.IgnoreCurrent()

	rec := &stubRecommender{block: make(chan struct{})}
	env := setupTestEnv(t, withRecommender(rec))
	farmer := env.registerFarmer(t, "10")

	// returns while the recommender is still blocked
	env.startCycle(t, farmer, "Wheat", "2")
	env.startCycle(t, farmer, "Rice", "2")
	assert.True(t, env.freeLand(t, farmer).Equal(dec("6")))

	close(rec.block)
	env.schemes.Wait()
	assert.Equal(t, 2, rec.callCount())

	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	goleak.VerifyNone(t, ignore)
}

func TestSchemeService_TimeoutIsLoggedNotReturned(t *testing.T) {
	// never unblocked: the fetch ends on its own timeout
	rec := &stubRecommender{block: make(chan struct{})}
	env := setupTestEnv(t, withRecommender(rec))
	farmer := env.registerFarmer(t, "10")

	cycle := env.startCycle(t, farmer, "Wheat", "2")
	env.schemes.Wait()

	assert.NotZero(t, cycle.ID)
	stored, err := env.schemes.ListForFarmer(context.Background(), farmer.FarmerCode)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSchemeService_ListNewestFirst(t *testing.T) {
	env := setupTestEnv(t)
	farmer := env.registerFarmer(t, "10")

	first := []models.SchemeRecommendation{{FarmerID: farmer.ID, SchemeName: "Old", Active: true}}
	second := []models.SchemeRecommendation{{FarmerID: farmer.ID, SchemeName: "New", Active: true}}
	require.NoError(t, env.schemeRepo.CreateBatch(context.Background(), first))
	require.NoError(t, env.schemeRepo.CreateBatch(context.Background(), second))

	stored, err := env.schemes.ListForFarmer(context.Background(), farmer.FarmerCode)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "New", stored[0].SchemeName)
}
