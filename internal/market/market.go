// Package market talks to live commodity price feeds.
package market

import (
	"context"

	"github.com/shopspring/decimal"
)

type Query struct {
	Crop     string
	District string
	State    string
}

type Price struct {
	Market      string          `json:"market"`
	MinPrice    decimal.Decimal `json:"min_price"`
	MaxPrice    decimal.Decimal `json:"max_price"`
	ModalPrice  decimal.Decimal `json:"modal_price"`
	Unit        string          `json:"unit"`
	State       string          `json:"state,omitempty"`
	ArrivalDate string          `json:"arrival_date,omitempty"`
}

// Source fetches current prices for a crop. An empty slice with a nil error
// means the feed answered but had no rows.
type Source interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]Price, error)
}
