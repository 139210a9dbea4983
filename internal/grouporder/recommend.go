package grouporder

import "github.com/fairyhunter13/vendor-supply-hub/internal/model"

const (
	recommendedGrowth   = 3
	recommendationLimit = 10
	predictedPriceDrop  = 20
)

// Recommendations suggests suppliers, a target group size and a price-drop prediction.
//
// The prediction is binary and intentionally differs from milestone.DiscountFor.
func (s *Service) Recommendations() model.Recommendation {
	st := s.store.Read()
	rec := model.Recommendation{
		RecommendedSuppliers: st.Vendors,
		RecommendedGroupSize: st.VendorCount,
	}
	if st.VendorCount < recommendationLimit {
		rec.RecommendedGroupSize = st.VendorCount + recommendedGrowth
		rec.PriceDropPrediction = predictedPriceDrop
	}
	return rec
}
