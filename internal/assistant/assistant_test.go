package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	out      string
	err      error
	prompt   string
	schema   *genai.Schema
	deadline bool
	calls    int
}

func (f *fakeGenerator) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error) {
	f.calls++
	f.prompt = prompt
	f.schema = schema
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.out), nil
}

func TestTrustScore(t *testing.T) {
	gen := &fakeGenerator{out: `{"trustScore":87,"justification":"reliable deliveries"}`}
	a := New(gen, time.Second)
	out, err := a.TrustScore(context.Background(), TrustScoreInput{
		FulfillmentRate:  0.95,
		DeliveryFeedback: "always on time",
		PricingStability: 0.8,
	})
	require.NoError(t, err)
	assert.Equal(t, 87.0, out.TrustScore)
	assert.Equal(t, "reliable deliveries", out.Justification)
	assert.Contains(t, gen.prompt, "Fulfillment Rate: 0.95")
	assert.Contains(t, gen.prompt, "Delivery Feedback: always on time")
	assert.Contains(t, gen.prompt, "Pricing Stability: 0.8")
	assert.Equal(t, []string{"trustScore", "justification"}, gen.schema.Required)
	assert.True(t, gen.deadline)
}

func TestTrustScoreInvalidInputSkipsGenerator(t *testing.T) {
	gen := &fakeGenerator{}
	a := New(gen, 0)
	_, err := a.TrustScore(context.Background(), TrustScoreInput{FulfillmentRate: 1.5, DeliveryFeedback: "ok"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, 0, gen.calls)
}

func TestTrustScoreOutOfRangeOutput(t *testing.T) {
	a := New(&fakeGenerator{out: `{"trustScore":140,"justification":"x"}`}, 0)
	_, err := a.TrustScore(context.Background(), TrustScoreInput{FulfillmentRate: 0.5, DeliveryFeedback: "ok", PricingStability: 0.5})
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}

func TestWishlist(t *testing.T) {
	gen := &fakeGenerator{out: `{"wishlist":["Potatoes (10kg)","Gram Flour (Besan) (5kg)"]}`}
	a := New(gen, 0)
	out, err := a.Wishlist(context.Background(), WishlistInput{DailyMenu: "Samosa, Pakora"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Potatoes (10kg)", "Gram Flour (Besan) (5kg)"}, out.Wishlist)
	assert.Contains(t, gen.prompt, "Daily Menu: Samosa, Pakora")
	assert.False(t, gen.deadline)
}

func TestWishlistMalformedOutput(t *testing.T) {
	a := New(&fakeGenerator{out: `not json`}, 0)
	_, err := a.Wishlist(context.Background(), WishlistInput{DailyMenu: "Vada Pav"})
	assert.True(t, errors.Is(err, ErrInvalidOutput))

	a = New(&fakeGenerator{out: `{}`}, 0)
	_, err = a.Wishlist(context.Background(), WishlistInput{DailyMenu: "Vada Pav"})
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}

func TestRecommendSuppliers(t *testing.T) {
	gen := &fakeGenerator{out: `{"supplierRecommendations":[{"supplierName":"Fresh Farms","location":"Pune","price":"₹₹","trustScore":92,"qualityRating":"4.5","suitabilityScore":0.9}]}`}
	a := New(gen, 0)
	out, err := a.RecommendSuppliers(context.Background(), RecommendSuppliersInput{
		VendorLocation:           "Pune",
		PreferredPriceRange:      "low",
		HistoricalQualityRatings: "4+",
		DailyMenu:                "Misal Pav",
	})
	require.NoError(t, err)
	require.Len(t, out.SupplierRecommendations, 1)
	assert.Equal(t, "Fresh Farms", out.SupplierRecommendations[0].SupplierName)
	assert.Equal(t, 92.0, out.SupplierRecommendations[0].TrustScore)
	assert.Contains(t, gen.prompt, "Vendor Location: Pune")
	assert.Contains(t, gen.prompt, "Daily Menu: Misal Pav")
}

func TestRecommendSuppliersRejectsUnnamedSupplier(t *testing.T) {
	a := New(&fakeGenerator{out: `{"supplierRecommendations":[{"supplierName":""}]}`}, 0)
	_, err := a.RecommendSuppliers(context.Background(), RecommendSuppliersInput{VendorLocation: "Delhi", DailyMenu: "Chaat"})
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}

func TestGeneratorErrorWrapped(t *testing.T) {
	boom := errors.New("quota exceeded")
	a := New(&fakeGenerator{err: boom}, 0)
	_, err := a.Wishlist(context.Background(), WishlistInput{DailyMenu: "Idli"})
	assert.True(t, errors.Is(err, boom))
	assert.False(t, errors.Is(err, ErrInvalidOutput))
}

func TestNewGeminiGeneratorRequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "")
	assert.Error(t, err)
}
