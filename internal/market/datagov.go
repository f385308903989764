package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DataGovSourceName = "data.gov.in (Live)"

// DataGovSource queries the data.gov.in daily mandi price resource.
type DataGovSource struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewDataGovSource(endpoint, apiKey string, timeout time.Duration) *DataGovSource {
	return &DataGovSource{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *DataGovSource) Name() string { return DataGovSourceName }

type dataGovResponse struct {
	Records []dataGovRecord `json:"records"`
}

type dataGovRecord struct {
	State       string      `json:"state"`
	District    string      `json:"district"`
	Market      string      `json:"market"`
	Commodity   string      `json:"commodity"`
	ArrivalDate string      `json:"arrival_date"`
	MinPrice    flexNumber `json:"min_price"`
	MaxPrice    flexNumber `json:"max_price"`
	ModalPrice  flexNumber `json:"modal_price"`
}

// flexNumber accepts both `2100` and `"2100"`; the feed sends either
// depending on the resource version.
type flexNumber string

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	*n = flexNumber(strings.Trim(string(b), `"`))
	return nil
}

func (s *DataGovSource) Fetch(ctx context.Context, q Query) ([]Price, error) {
	params := url.Values{}
	params.Set("api-key", s.apiKey)
	params.Set("format", "json")
	params.Set("limit", "10")
	params.Set("filters[commodity]", titleCase(q.Crop))
	if q.District != "" {
		params.Set("filters[district]", titleCase(q.District))
	}
	if q.State != "" {
		params.Set("filters[state]", titleCase(q.State))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build market request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("market request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market feed returned status %d", resp.StatusCode)
	}

	var out dataGovResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode market response: %w", err)
	}

	prices := make([]Price, 0, len(out.Records))
	for _, r := range out.Records {
		market := r.Market
		if market == "" {
			market = "Unknown"
		}
		prices = append(prices, Price{
			Market:      market,
			MinPrice:    parseNumber(r.MinPrice),
			MaxPrice:    parseNumber(r.MaxPrice),
			ModalPrice:  parseNumber(r.ModalPrice),
			Unit:        "Quintal",
			State:       r.State,
			ArrivalDate: r.ArrivalDate,
		})
	}
	return prices, nil
}

// Anything unparseable counts as zero.
func parseNumber(n flexNumber) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(string(n)))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
