// Package catalog holds the curated reference tables shipped with the
// binary: fallback market prices and per-acre cost/revenue estimates.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type PriceRange struct {
	Min   decimal.Decimal
	Max   decimal.Decimal
	Modal decimal.Decimal
	Unit  string
}

// Estimate is a per-acre expense/income pair.
type Estimate struct {
	Expense decimal.Decimal
	Income  decimal.Decimal
}

type Catalog struct {
	prices    map[string]PriceRange
	estimates map[string]Estimate
}

type rawCatalog struct {
	Prices map[string]struct {
		Min   string `yaml:"min"`
		Max   string `yaml:"max"`
		Modal string `yaml:"modal"`
		Unit  string `yaml:"unit"`
	} `yaml:"prices"`
	Estimates map[string]struct {
		Expense string `yaml:"expense"`
		Income  string `yaml:"income"`
	} `yaml:"estimates"`
}

// Default parses the embedded tables.
func Default() (*Catalog, error) {
	return Parse(catalogYAML)
}

func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{
		prices:    make(map[string]PriceRange, len(raw.Prices)),
		estimates: make(map[string]Estimate, len(raw.Estimates)),
	}

	for crop, p := range raw.Prices {
		pr := PriceRange{Unit: p.Unit}
		var err error
		if pr.Min, err = decimal.NewFromString(p.Min); err != nil {
			return nil, fmt.Errorf("crop %s: invalid min price: %w", crop, err)
		}
		if pr.Max, err = decimal.NewFromString(p.Max); err != nil {
			return nil, fmt.Errorf("crop %s: invalid max price: %w", crop, err)
		}
		if pr.Modal, err = decimal.NewFromString(p.Modal); err != nil {
			return nil, fmt.Errorf("crop %s: invalid modal price: %w", crop, err)
		}
		c.prices[normalize(crop)] = pr
	}

	for crop, e := range raw.Estimates {
		var est Estimate
		var err error
		if est.Expense, err = decimal.NewFromString(e.Expense); err != nil {
			return nil, fmt.Errorf("crop %s: invalid expense: %w", crop, err)
		}
		if est.Income, err = decimal.NewFromString(e.Income); err != nil {
			return nil, fmt.Errorf("crop %s: invalid income: %w", crop, err)
		}
		c.estimates[normalize(crop)] = est
	}

	return c, nil
}

func (c *Catalog) Price(crop string) (PriceRange, bool) {
	p, ok := c.prices[normalize(crop)]
	return p, ok
}

func (c *Catalog) Estimate(crop string) (Estimate, bool) {
	e, ok := c.estimates[normalize(crop)]
	return e, ok
}

func normalize(crop string) string {
	return strings.ToLower(strings.TrimSpace(crop))
}
