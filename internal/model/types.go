// Package model defines domain types used by the service.
package model

// GroupOrderState is the live state of the group order.
//
// Vendors is not validated against VendorCount; callers keep them consistent.
type GroupOrderState struct {
	VendorCount   int      `json:"vendorCount" yaml:"vendorCount"`
	OrderTotal    float64  `json:"orderTotal" yaml:"orderTotal"`
	TimeRemaining string   `json:"timeRemaining" yaml:"timeRemaining"`
	Vendors       []string `json:"vendors" yaml:"vendors"`
}

// GroupOrderPatch is a partial update. Nil fields are left untouched.
type GroupOrderPatch struct {
	VendorCount   *int
	OrderTotal    *float64
	TimeRemaining *string
	Vendors       *[]string
}

// Empty reports whether the patch carries no fields.
func (p GroupOrderPatch) Empty() bool {
	return p.VendorCount == nil && p.OrderTotal == nil && p.TimeRemaining == nil && p.Vendors == nil
}

// Milestone is the next vendor-count threshold and the discount it unlocks.
type Milestone struct {
	VendorsNeeded int `json:"vendorsNeeded"`
	Discount      int `json:"discount"`
}

// GroupOrderStatus is the state plus derived discount fields.
type GroupOrderStatus struct {
	VendorCount   int        `json:"vendorCount"`
	PriceDrop     int        `json:"priceDrop"`
	NextMilestone *Milestone `json:"nextMilestone"`
	OrderTotal    float64    `json:"orderTotal"`
	TimeRemaining string     `json:"timeRemaining"`
	Vendors       []string   `json:"vendors"`
}

// GroupOrderUpdate acknowledges an update with the raw post-update fields.
type GroupOrderUpdate struct {
	Success       bool     `json:"success"`
	VendorCount   int      `json:"vendorCount"`
	OrderTotal    float64  `json:"orderTotal"`
	TimeRemaining string   `json:"timeRemaining"`
	Vendors       []string `json:"vendors"`
}

// Recommendation is the group-order suggestion derived from current state.
type Recommendation struct {
	RecommendedSuppliers []string `json:"recommendedSuppliers"`
	RecommendedGroupSize int      `json:"recommendedGroupSize"`
	PriceDropPrediction  int      `json:"priceDropPrediction"`
}

// Alert is a vendor-facing notification.
type Alert struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
