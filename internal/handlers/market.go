package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/agri-ledger/internal/market"
	"github.com/h4ks-com/agri-ledger/internal/services"
)

type MarketHandler struct {
	priceService *services.PriceService
}

func NewMarketHandler(priceService *services.PriceService) *MarketHandler {
	return &MarketHandler{priceService: priceService}
}

type PriceRowResponse struct {
	Market     string `json:"market"`
	MinPrice   string `json:"min_price"`
	MaxPrice   string `json:"max_price"`
	ModalPrice string `json:"modal_price"`
	Unit       string `json:"unit"`
}

type PriceLookupResponse struct {
	Crop     string             `json:"crop"`
	District string             `json:"district"`
	Prices   []PriceRowResponse `json:"prices"`
	Source   string             `json:"source"`
	Found    bool               `json:"found"`
}

// Prices godoc
// @Summary Market prices
// @Description Current mandi prices for a crop. Falls back to average market rates when the live feed is unavailable.
// @Tags market
// @Produce json
// @Param crop query string true "Crop name"
// @Param district query string false "District"
// @Param state query string false "State"
// @Success 200 {object} PriceLookupResponse
// @Failure 400 {object} ErrorResponse
// @Router /market/prices [get]
func (h *MarketHandler) Prices(c *gin.Context) {
	lookup, err := h.priceService.Lookup(c.Request.Context(), market.Query{
		Crop:     c.Query("crop"),
		District: c.Query("district"),
		State:    c.Query("state"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	rows := make([]PriceRowResponse, len(lookup.Prices))
	for i, p := range lookup.Prices {
		rows[i] = PriceRowResponse{
			Market:     p.Market,
			MinPrice:   money(p.MinPrice),
			MaxPrice:   money(p.MaxPrice),
			ModalPrice: money(p.ModalPrice),
			Unit:       p.Unit,
		}
	}

	c.JSON(http.StatusOK, PriceLookupResponse{
		Crop:     lookup.Crop,
		District: lookup.District,
		Prices:   rows,
		Source:   lookup.Source,
		Found:    lookup.Found,
	})
}
