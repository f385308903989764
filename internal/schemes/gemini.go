package schemes

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type GeminiRecommender struct {
	client *genai.Client
	model  string
}

func NewGeminiRecommender(ctx context.Context, apiKey, model string) (*GeminiRecommender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiRecommender{client: client, model: model}, nil
}

func (g *GeminiRecommender) Recommend(ctx context.Context, farmer FarmerSnapshot, cycle CycleSnapshot) ([]Recommendation, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(BuildPrompt(farmer, cycle)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema(),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("Gemini generate failed: %w", err)
	}

	return ParseRecommendations(resp.Text()), nil
}

func responseSchema() *genai.Schema {
	str := &genai.Schema{Type: genai.TypeString}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recommendations": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"scheme_name":          str,
						"description":          str,
						"benefits":             str,
						"eligibility_criteria": str,
						"application_link":     str,
					},
					Required: []string{"scheme_name", "description", "benefits", "eligibility_criteria", "application_link"},
				},
			},
		},
		Required: []string{"recommendations"},
	}
}

func BuildPrompt(farmer FarmerSnapshot, cycle CycleSnapshot) string {
	kcc := "No"
	if farmer.HasKCC {
		kcc = "Yes"
	}

	var b strings.Builder
	b.WriteString("Act as a government agricultural officer.\n")
	b.WriteString("Review this farmer's profile and the crop they just planted.\n")
	b.WriteString("Return a list of 3-5 relevant government schemes (Central or State) that they can apply for right now.\n\n")
	b.WriteString("FARMER DATA:\n")
	fmt.Fprintf(&b, "- State: %s\n", orUnspecified(farmer.State))
	fmt.Fprintf(&b, "- District: %s\n", orUnspecified(farmer.District))
	fmt.Fprintf(&b, "- Category: %s\n", farmer.Category)
	fmt.Fprintf(&b, "- Land Area: %s acres\n", farmer.TotalLandArea)
	fmt.Fprintf(&b, "- Has KCC: %s\n\n", kcc)
	b.WriteString("CROP DATA:\n")
	fmt.Fprintf(&b, "- Crop: %s\n", cycle.CropName)
	fmt.Fprintf(&b, "- Season Date: %s\n", cycle.StartDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "- Area: %s acres\n\n", cycle.AreaUsed)
	b.WriteString("Provide schemes with complete details including official application links.\n")
	b.WriteString("Focus on schemes that are currently active and accepting applications.\n")
	return b.String()
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}
