package services

import (
	"context"
	"strings"

	"github.com/h4ks-com/agri-ledger/internal/catalog"
	"github.com/h4ks-com/agri-ledger/internal/market"
	"go.uber.org/zap"
)

const (
	maxLivePrices = 5

	FallbackSourceName = "MSP / Average Market Rates"
	NoPriceSourceName  = "No data available"
)

type PriceLookup struct {
	Crop     string         `json:"crop"`
	District string         `json:"district"`
	Prices   []market.Price `json:"prices"`
	Source   string         `json:"source"`
	Found    bool           `json:"found"`
}

// PriceService answers price queries from the live feed when one is
// configured and from the curated table otherwise.
type PriceService struct {
	live    market.Source
	catalog *catalog.Catalog
	log     *zap.Logger
}

// NewPriceService accepts a nil live source.
func NewPriceService(live market.Source, cat *catalog.Catalog, log *zap.Logger) *PriceService {
	return &PriceService{live: live, catalog: cat, log: log}
}

func (s *PriceService) Lookup(ctx context.Context, q market.Query) (*PriceLookup, error) {
	q.Crop = strings.TrimSpace(q.Crop)
	q.District = strings.TrimSpace(q.District)
	q.State = strings.TrimSpace(q.State)
	if q.Crop == "" {
		return nil, ErrCropNameRequired
	}

	if s.live != nil {
		prices, err := s.live.Fetch(ctx, q)
		switch {
		case err != nil:
			s.log.Warn("Live price feed failed, using fallback",
				zap.String("source", s.live.Name()),
				zap.String("crop", q.Crop),
				zap.Error(err))
		case len(prices) > 0:
			if len(prices) > maxLivePrices {
				prices = prices[:maxLivePrices]
			}
			return &PriceLookup{
				Crop:     q.Crop,
				District: orDefault(q.District, "All India"),
				Prices:   prices,
				Source:   s.live.Name(),
				Found:    true,
			}, nil
		}
	}

	if p, ok := s.catalog.Price(q.Crop); ok {
		return &PriceLookup{
			Crop:     q.Crop,
			District: orDefault(q.District, "All India"),
			Prices: []market.Price{{
				Market:     orDefault(q.District, "Average Market"),
				MinPrice:   p.Min,
				MaxPrice:   p.Max,
				ModalPrice: p.Modal,
				Unit:       p.Unit,
			}},
			Source: FallbackSourceName,
			Found:  true,
		}, nil
	}

	return &PriceLookup{
		Crop:     q.Crop,
		District: orDefault(q.District, "Unknown"),
		Prices:   []market.Price{},
		Source:   NoPriceSourceName,
		Found:    false,
	}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
