package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"google.golang.org/genai"
)

// TrustScoreInput describes a supplier's track record.
type TrustScoreInput struct {
	FulfillmentRate  float64 `json:"fulfillmentRate"`
	DeliveryFeedback string  `json:"deliveryFeedback"`
	PricingStability float64 `json:"pricingStability"`
}

// TrustScoreOutput is a 0-100 score with its justification.
type TrustScoreOutput struct {
	TrustScore    float64 `json:"trustScore"`
	Justification string  `json:"justification"`
}

// WishlistInput is a vendor's daily menu.
type WishlistInput struct {
	DailyMenu string `json:"dailyMenu"`
}

// WishlistOutput lists raw materials with quantities, e.g. "Potatoes (10kg)".
type WishlistOutput struct {
	Wishlist []string `json:"wishlist"`
}

// RecommendSuppliersInput captures what a vendor is looking for.
type RecommendSuppliersInput struct {
	VendorLocation           string `json:"vendorLocation"`
	PreferredPriceRange      string `json:"preferredPriceRange"`
	HistoricalQualityRatings string `json:"historicalQualityRatings"`
	DailyMenu                string `json:"dailyMenu"`
}

// SupplierRecommendation is one suggested supplier.
type SupplierRecommendation struct {
	SupplierName     string  `json:"supplierName"`
	Location         string  `json:"location"`
	Price            string  `json:"price"`
	TrustScore       float64 `json:"trustScore"`
	QualityRating    string  `json:"qualityRating"`
	SuitabilityScore float64 `json:"suitabilityScore"`
}

// RecommendSuppliersOutput holds the suggested suppliers.
type RecommendSuppliersOutput struct {
	SupplierRecommendations []SupplierRecommendation `json:"supplierRecommendations"`
}

var trustScoreFlow = flow[TrustScoreInput, TrustScoreOutput]{
	name: "trust_score",
	prompt: template.Must(template.New("trust_score").Parse(`You are an AI assistant that generates a trust score for suppliers.

Given the following information about a supplier, generate a trust score between 0 and 100, and provide a justification for the score.

Fulfillment Rate: {{.FulfillmentRate}}
Delivery Feedback: {{.DeliveryFeedback}}
Pricing Stability: {{.PricingStability}}
`)),
	schema: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"trustScore":    {Type: genai.TypeNumber, Description: "The generated trust score for the supplier (0 to 100)."},
			"justification": {Type: genai.TypeString, Description: "The justification for the generated trust score."},
		},
		Required: []string{"trustScore", "justification"},
	},
	validateInput: func(in TrustScoreInput) error {
		if in.FulfillmentRate < 0 || in.FulfillmentRate > 1 {
			return errors.New("fulfillmentRate must be between 0 and 1")
		}
		if in.PricingStability < 0 || in.PricingStability > 1 {
			return errors.New("pricingStability must be between 0 and 1")
		}
		if strings.TrimSpace(in.DeliveryFeedback) == "" {
			return errors.New("deliveryFeedback is required")
		}
		return nil
	},
	validateOutput: func(out TrustScoreOutput) error {
		if out.TrustScore < 0 || out.TrustScore > 100 {
			return fmt.Errorf("trustScore %v out of range", out.TrustScore)
		}
		if strings.TrimSpace(out.Justification) == "" {
			return errors.New("justification is empty")
		}
		return nil
	},
}

var wishlistFlow = flow[WishlistInput, WishlistOutput]{
	name: "wishlist",
	prompt: template.Must(template.New("wishlist").Parse(`You are an AI assistant that helps street food vendors create a shopping list. Given the vendor's daily menu, generate a wishlist of raw materials with estimated quantities.

Daily Menu: {{.DailyMenu}}

Generate a wishlist of items. For example: "Potatoes (10kg)", "Gram Flour (Besan) (5kg)".
`)),
	schema: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"wishlist": {
				Type:        genai.TypeArray,
				Description: "A list of raw materials with quantities needed for the menu.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"wishlist"},
	},
	validateInput: func(in WishlistInput) error {
		if strings.TrimSpace(in.DailyMenu) == "" {
			return errors.New("dailyMenu is required")
		}
		return nil
	},
	validateOutput: func(out WishlistOutput) error {
		if out.Wishlist == nil {
			return errors.New("wishlist is missing")
		}
		return nil
	},
}

var recommendSuppliersFlow = flow[RecommendSuppliersInput, RecommendSuppliersOutput]{
	name: "recommend_suppliers",
	prompt: template.Must(template.New("recommend_suppliers").Parse(`You are an AI assistant helping vendors find the best suppliers for their raw materials.

Based on the vendor's location, preferred price range, historical quality ratings, and daily menu, recommend a list of suppliers.

Vendor Location: {{.VendorLocation}}
Preferred Price Range: {{.PreferredPriceRange}}
Historical Quality Ratings: {{.HistoricalQualityRatings}}
Daily Menu: {{.DailyMenu}}

Return a list of suppliers with their name, location, price, trust score, quality rating, and suitability score based on the daily menu.
`)),
	schema: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"supplierRecommendations": {
				Type:        genai.TypeArray,
				Description: "A list of recommended suppliers.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"supplierName":     {Type: genai.TypeString, Description: "The name of the supplier."},
						"location":         {Type: genai.TypeString, Description: "The location of the supplier."},
						"price":            {Type: genai.TypeString, Description: "The price of the supplier's products."},
						"trustScore":       {Type: genai.TypeNumber, Description: "The trust score of the supplier."},
						"qualityRating":    {Type: genai.TypeString, Description: "The quality rating of the supplier."},
						"suitabilityScore": {Type: genai.TypeNumber, Description: "How suitable the supplier is for the vendor's daily menu."},
					},
					Required: []string{"supplierName", "location", "price", "trustScore", "qualityRating", "suitabilityScore"},
				},
			},
		},
		Required: []string{"supplierRecommendations"},
	},
	validateInput: func(in RecommendSuppliersInput) error {
		if strings.TrimSpace(in.VendorLocation) == "" {
			return errors.New("vendorLocation is required")
		}
		if strings.TrimSpace(in.DailyMenu) == "" {
			return errors.New("dailyMenu is required")
		}
		return nil
	},
	validateOutput: func(out RecommendSuppliersOutput) error {
		if out.SupplierRecommendations == nil {
			return errors.New("supplierRecommendations is missing")
		}
		for i, r := range out.SupplierRecommendations {
			if strings.TrimSpace(r.SupplierName) == "" {
				return fmt.Errorf("supplierRecommendations[%d]: supplierName is empty", i)
			}
		}
		return nil
	},
}

// TrustScore rates a supplier from its fulfillment, feedback and pricing history.
func (a *Assistant) TrustScore(ctx context.Context, in TrustScoreInput) (TrustScoreOutput, error) {
	return run(ctx, a, trustScoreFlow, in)
}

// Wishlist derives a raw-material shopping list from a daily menu.
func (a *Assistant) Wishlist(ctx context.Context, in WishlistInput) (WishlistOutput, error) {
	return run(ctx, a, wishlistFlow, in)
}

// RecommendSuppliers suggests suppliers matching the vendor's needs.
func (a *Assistant) RecommendSuppliers(ctx context.Context, in RecommendSuppliersInput) (RecommendSuppliersOutput, error) {
	return run(ctx, a, recommendSuppliersFlow, in)
}
