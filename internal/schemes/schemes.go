// Package schemes fetches government scheme suggestions for a farmer's new
// crop cycle from a generative model.
package schemes

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

const MaxRecommendations = 5

type FarmerSnapshot struct {
	State         string
	District      string
	Category      string
	TotalLandArea string
	HasKCC        bool
}

type CycleSnapshot struct {
	CropName  string
	StartDate time.Time
	AreaUsed  string
}

type Recommendation struct {
	SchemeName          string `json:"scheme_name"`
	Description         string `json:"description"`
	Benefits            string `json:"benefits"`
	EligibilityCriteria string `json:"eligibility_criteria"`
	ApplicationLink     string `json:"application_link"`
}

type Recommender interface {
	Recommend(ctx context.Context, farmer FarmerSnapshot, cycle CycleSnapshot) ([]Recommendation, error)
}

// Noop is used when no model is configured.
type Noop struct{}

func (Noop) Recommend(context.Context, FarmerSnapshot, CycleSnapshot) ([]Recommendation, error) {
	return nil, nil
}

type recommendationList struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// ParseRecommendations decodes a `{"recommendations": [...]}` payload.
// Malformed or empty input yields an empty list, never an error.
func ParseRecommendations(raw string) []Recommendation {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var list recommendationList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []Recommendation{}
	}

	out := make([]Recommendation, 0, MaxRecommendations)
	for _, r := range list.Recommendations {
		if len(out) == MaxRecommendations {
			break
		}
		r.SchemeName = strings.TrimSpace(r.SchemeName)
		if r.SchemeName == "" {
			r.SchemeName = "Unknown Scheme"
		}
		out = append(out, r)
	}
	return out
}
