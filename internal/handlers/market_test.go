package handlers

import (
	"net/http"
	"testing"

	"github.com/h4ks-com/agri-ledger/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketAPI_Fallback(t *testing.T) {
	env := setupAPI(t, true)

	w := env.do(t, request{method: http.MethodGet, path: "/api/v1/market/prices?crop=wheat"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[PriceLookupResponse](t, w)
	assert.True(t, resp.Found)
	assert.Equal(t, services.FallbackSourceName, resp.Source)
	assert.Equal(t, "All India", resp.District)
	require.Len(t, resp.Prices, 1)
	assert.Equal(t, "Average Market", resp.Prices[0].Market)
	assert.Equal(t, "2275.00", resp.Prices[0].ModalPrice)
	assert.Equal(t, "Quintal", resp.Prices[0].Unit)
}

func TestMarketAPI_FallbackUsesDistrictAsMarket(t *testing.T) {
	env := setupAPI(t, true)

	w := env.do(t, request{method: http.MethodGet, path: "/api/v1/market/prices?crop=Rice&district=Karnal"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[PriceLookupResponse](t, w)
	assert.Equal(t, "Karnal", resp.District)
	require.Len(t, resp.Prices, 1)
	assert.Equal(t, "Karnal", resp.Prices[0].Market)
}

func TestMarketAPI_NoData(t *testing.T) {
	env := setupAPI(t, true)

	w := env.do(t, request{method: http.MethodGet, path: "/api/v1/market/prices?crop=Durian"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"prices":[]`)

	resp := decode[PriceLookupResponse](t, w)
	assert.False(t, resp.Found)
	assert.Equal(t, services.NoPriceSourceName, resp.Source)
	assert.Equal(t, "Unknown", resp.District)
}

func TestMarketAPI_RequiresCrop(t *testing.T) {
	env := setupAPI(t, true)

	w := env.do(t, request{method: http.MethodGet, path: "/api/v1/market/prices"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
