// Package milestone maps a group-order vendor count to its discount tier.
package milestone

import "github.com/fairyhunter13/vendor-supply-hub/internal/model"

// Tier is a vendor-count threshold and the discount percentage it unlocks.
type Tier struct {
	MinVendors int `json:"minVendors"`
	Discount   int `json:"discount"`
}

var tiers = []Tier{
	{MinVendors: 0, Discount: 0},
	{MinVendors: 5, Discount: 10},
	{MinVendors: 10, Discount: 20},
}

// Tiers returns the tier table ordered by MinVendors.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// DiscountFor returns the discount percentage for n joined vendors.
// Thresholds are inclusive on the lower bound.
func DiscountFor(n int) int {
	switch {
	case n >= 10:
		return 20
	case n >= 5:
		return 10
	default:
		return 0
	}
}

// Next returns the next milestone for n vendors, or nil once the top tier is reached.
func Next(n int) *model.Milestone {
	switch {
	case n < 5:
		return &model.Milestone{VendorsNeeded: 5 - n, Discount: 10}
	case n < 10:
		return &model.Milestone{VendorsNeeded: 10 - n, Discount: 20}
	default:
		return nil
	}
}
