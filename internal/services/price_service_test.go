package services

import (
	"context"
	"errors"
	"testing"

	"github.com/h4ks-com/agri-ledger/internal/catalog"
	"github.com/h4ks-com/agri-ledger/internal/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	prices []market.Price
	err    error
	got    market.Query
}

func (f *fakeSource) Name() string { return "fake feed" }

func (f *fakeSource) Fetch(_ context.Context, q market.Query) ([]market.Price, error) {
	f.got = q
	return f.prices, f.err
}

func setupPriceService(t *testing.T, src market.Source) *PriceService {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewPriceService(src, cat, zap.NewNop())
}

func livePrices(n int) []market.Price {
	out := make([]market.Price, n)
	for i := range out {
		out[i] = market.Price{
			Market:     "Khanna",
			MinPrice:   dec("2000"),
			MaxPrice:   dec("2300"),
			ModalPrice: dec("2150"),
			Unit:       "Quintal",
		}
	}
	return out
}

func TestPriceService_LiveRowsTruncated(t *testing.T) {
	src := &fakeSource{prices: livePrices(8)}
	svc := setupPriceService(t, src)

	res, err := svc.Lookup(context.Background(), market.Query{Crop: " Wheat ", District: "Ludhiana"})
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, "fake feed", res.Source)
	assert.Equal(t, "Ludhiana", res.District)
	assert.Len(t, res.Prices, 5)
	assert.Equal(t, "Wheat", src.got.Crop)
}

func TestPriceService_LiveDefaultsDistrict(t *testing.T) {
	svc := setupPriceService(t, &fakeSource{prices: livePrices(1)})

	res, err := svc.Lookup(context.Background(), market.Query{Crop: "Wheat"})
	require.NoError(t, err)
	assert.Equal(t, "All India", res.District)
}

func TestPriceService_FallsBackOnError(t *testing.T) {
	svc := setupPriceService(t, &fakeSource{err: errors.New("status 503")})

	res, err := svc.Lookup(context.Background(), market.Query{Crop: "wheat", District: "Karnal"})
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, FallbackSourceName, res.Source)
	require.Len(t, res.Prices, 1)
	assert.Equal(t, "Karnal", res.Prices[0].Market)
	assert.True(t, res.Prices[0].ModalPrice.Equal(dec("2275")))
	assert.Equal(t, "Quintal", res.Prices[0].Unit)
}

func TestPriceService_FallsBackOnEmptyFeed(t *testing.T) {
	svc := setupPriceService(t, &fakeSource{prices: []market.Price{}})

	res, err := svc.Lookup(context.Background(), market.Query{Crop: "Cotton"})
	require.NoError(t, err)

	assert.Equal(t, FallbackSourceName, res.Source)
	assert.Equal(t, "All India", res.District)
	assert.Equal(t, "Average Market", res.Prices[0].Market)
}

func TestPriceService_WithoutLiveSource(t *testing.T) {
	svc := setupPriceService(t, nil)

	res, err := svc.Lookup(context.Background(), market.Query{Crop: "Onion"})
	require.NoError(t, err)
	assert.Equal(t, FallbackSourceName, res.Source)
	assert.True(t, res.Found)
}

func TestPriceService_NoData(t *testing.T) {
	svc := setupPriceService(t, &fakeSource{err: context.DeadlineExceeded})

	res, err := svc.Lookup(context.Background(), market.Query{Crop: "Durian"})
	require.NoError(t, err)

	assert.False(t, res.Found)
	assert.Equal(t, NoPriceSourceName, res.Source)
	assert.Equal(t, "Unknown", res.District)
	assert.NotNil(t, res.Prices)
	assert.Empty(t, res.Prices)
}

func TestPriceService_RequiresCrop(t *testing.T) {
	svc := setupPriceService(t, nil)

	_, err := svc.Lookup(context.Background(), market.Query{Crop: " "})
	assert.ErrorIs(t, err, ErrCropNameRequired)
}
